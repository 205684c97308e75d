package main

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/lox/debugs"
	"github.com/reusee/lox/diag"
	"github.com/reusee/lox/logs"
	"github.com/reusee/lox/loxconfigs"
	"github.com/reusee/lox/scan"
)

type runOptions struct {
	logger    logs.Logger
	maxErrors loxconfigs.MaxErrors
	tap       debugs.Tap
}

func runFile(ctx context.Context, path string, opts runOptions) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	opts.logger.InfoContext(ctx, "run file",
		"path", path,
		"bytes", len(content),
	)

	n := runScript(ctx, string(content), path, opts)
	if n > 0 {
		return logs.WrapSpan(ctx, fmt.Errorf("%d lexical errors in %s", n, path))
	}
	return nil
}

// runScript scans one buffer, prints its tokens, renders its diagnostics,
// and reports how many errors the pass surfaced.
func runScript(ctx context.Context, source string, location string, opts runOptions) int {
	scanner := scan.New(source, location)
	tokens, errs := diag.Drain(scanner.Scan())

	if *tapFlag {
		opts.tap(ctx, "scan", map[string]any{
			"source": source,
			"tokens": tokens,
			"errors": errs,
		})
	}

	for _, token := range tokens {
		fmt.Println(token)
	}

	src := diag.NewSource(location, source)
	shown := errs
	if max := int(opts.maxErrors); max > 0 && len(shown) > max {
		shown = shown[:max]
	}
	for _, e := range shown {
		fmt.Fprint(os.Stderr, diag.Render(src, e))
	}
	if len(errs) > len(shown) {
		fmt.Fprintf(os.Stderr, "... and %d more\n", len(errs)-len(shown))
	}

	return len(errs)
}
