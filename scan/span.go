package scan

// Span is an inclusive range of character indices into the source.
// Indices count Unicode scalar values, not bytes.
type Span struct {
	Start int
	End   int
}

func (s Span) Len() int {
	return s.End - s.Start + 1
}
