package diag

import (
	"iter"

	"github.com/reusee/lox/scan"
)

// Drain pulls the full sequence, separating tokens from errors. This is
// the collect-all policy: scanning is never stopped early, so a single
// pass reports every diagnostic.
func Drain(seq iter.Seq2[scan.Token, error]) ([]scan.Token, []*scan.Error) {
	var tokens []scan.Token
	var errs []*scan.Error
	for token, err := range seq {
		if err != nil {
			errs = append(errs, err.(*scan.Error))
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens, errs
}
