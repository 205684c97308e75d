package loxconfigs

import (
	"github.com/reusee/lox/cmds"
	"github.com/reusee/lox/configs"
	"github.com/reusee/lox/vars"
)

// MaxErrors caps how many diagnostics one pass renders. Zero means no
// cap. Scanning itself always drains the full sequence.
type MaxErrors int

var maxErrorsFlag = cmds.Var[int]("-max-errors")

func (Module) MaxErrors(
	loader configs.Loader,
) MaxErrors {
	return MaxErrors(vars.FirstNonZero(
		*maxErrorsFlag,
		configs.First[int](loader, "max_errors"),
	))
}
