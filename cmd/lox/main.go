package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/reusee/dscope"
	"github.com/reusee/lox/cmds"
	"github.com/reusee/lox/debugs"
	"github.com/reusee/lox/logs"
	"github.com/reusee/lox/loxconfigs"
	"github.com/reusee/lox/modes"
)

var tapFlag = cmds.Switch("-tap")

func main() {
	args := cmds.Execute(os.Args[1:])
	ctx := context.Background()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		logger logs.Logger,
		newSpan logs.NewSpan,
		prompt loxconfigs.Prompt,
		historyFile loxconfigs.HistoryFile,
		maxErrors loxconfigs.MaxErrors,
		tap debugs.Tap,
	) {
		opts := runOptions{
			logger:    logger,
			maxErrors: maxErrors,
			tap:       tap,
		}

		switch len(args) {

		case 0:
			ctx, _ := newSpan(ctx, "")
			runREPL(ctx, string(prompt), string(historyFile), opts)

		case 1:
			ctx, _ := newSpan(ctx, "")
			if err := runFile(ctx, args[0], opts); err != nil {
				os.Stderr.WriteString(err.Error())
				os.Stderr.WriteString("\n")
				os.Exit(1)
			}

		default:
			fmt.Printf("Usage: %s [script]\n", filepath.Base(os.Args[0]))
			os.Exit(64)
		}
	})
}
