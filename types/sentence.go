package types

// Sentence is one unit of a pipeline request.
type Sentence struct {
	Span
	Index    int
	Text     string
	Result   string
	Polarity Polarity
	Err      error
}

func (sent *Sentence) Output() string {
	if sent.Err != nil {
		return sent.Text
	}
	return sent.Result
}
