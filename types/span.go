package types

// Span is a half-open range of rune offsets into a request text.
type Span struct {
	Begin int32
	End   int32
}

func (span Span) Pair() []int32 {
	return []int32{span.Begin, span.End}
}

func (span Span) Len() int {
	return int(span.End - span.Begin)
}

// Text returns the covered runes, or false if the span falls outside them.
func (span Span) Text(runes []rune) (string, bool) {
	if span.Begin < 0 || span.Begin > span.End || int(span.End) > len(runes) {
		return "", false
	}
	return string(runes[span.Begin:span.End]), true
}
