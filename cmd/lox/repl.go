package main

import (
	"context"
	"fmt"
	"os"

	"github.com/chzyer/readline"
)

func runREPL(ctx context.Context, prompt string, historyFile string, opts runOptions) {
	fmt.Println("// Repl mode //")

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      prompt,
		HistoryFile: historyFile,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil { // Ctrl-C or Ctrl-D
			break
		}
		if line == "" {
			continue
		}
		// no location label in REPL mode
		runScript(ctx, line, "", opts)
	}
}
