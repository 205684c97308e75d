package loxconfigs

import (
	"os"
	"path/filepath"

	"github.com/reusee/lox/cmds"
	"github.com/reusee/lox/configs"
	"github.com/reusee/lox/vars"
)

// HistoryFile is the REPL history file path.
type HistoryFile string

var historyFlag = cmds.Var[string]("-history")

func (Module) HistoryFile(
	loader configs.Loader,
) HistoryFile {
	if path := vars.FirstNonZero(
		*historyFlag,
		configs.First[string](loader, "history_file"),
	); path != "" {
		return HistoryFile(path)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return HistoryFile(filepath.Join(home, ".lox_history"))
}
