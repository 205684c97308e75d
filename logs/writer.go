package logs

import (
	"io"
	"os"
)

type Writer io.Writer

// Stderr, so diagnostics and token output on stdout stay clean.
func (Module) Writer() Writer {
	return os.Stderr
}
