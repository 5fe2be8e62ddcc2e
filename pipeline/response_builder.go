package pipeline

import (
	"sort"
	"strings"

	"teinei.dev/flip/types"
)

type ResponseBuilder func(in <-chan types.Sentence, request Request, direction types.Direction) <-chan types.ToggleResponse

// NewToggleResult restores reading order and rebuilds the document text.
// Text between sentences is copied from the request unchanged.
func NewToggleResult() ResponseBuilder {
	return func(in <-chan types.Sentence, request Request, direction types.Direction) <-chan types.ToggleResponse {
		out := make(chan types.ToggleResponse)

		go func() {
			defer close(out)
			var sentences []types.Sentence
			for sent := range in {
				sentences = append(sentences, sent)
			}
			sort.Slice(sentences, func(i, j int) bool {
				return sentences[i].Index < sentences[j].Index
			})

			response := types.ToggleResponse{
				DocId:     request.Tid,
				Direction: direction,
				Sentences: make([]types.SentenceSection, len(sentences)),
			}

			runes := []rune(request.Text)
			var text strings.Builder
			offset := int32(0)
			for i, sent := range sentences {
				text.WriteString(string(runes[offset:sent.Begin]))
				text.WriteString(sent.Output())
				offset = sent.End

				section := types.SentenceSection{
					Id:       sent.Index,
					Span:     sent.Span.Pair(),
					Text:     sent.Text,
					Result:   sent.Output(),
					Polarity: sent.Polarity.Name(),
				}
				if sent.Err != nil {
					section.Error = sent.Err.Error()
				}
				response.Sentences[i] = section
			}
			text.WriteString(string(runes[offset:]))
			response.Text = text.String()

			out <- response
		}()

		return out
	}
}
