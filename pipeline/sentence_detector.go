package pipeline

import (
	"unicode"

	"teinei.dev/flip/types"
)

var sentenceTerminators = map[rune]bool{
	'。': true,
	'！': true,
	'？': true,
	'!': true,
	'?': true,
}

// closing brackets and quotes stay with the sentence they end
var sentenceClosers = map[rune]bool{
	'」': true,
	'』': true,
	'）': true,
	')': true,
}

type SentenceDetector func(in <-chan string) <-chan types.Sentence

// NewSentenceDetector splits text on sentence terminators and line breaks.
// Begin and End are rune offsets into the text; blank spans are skipped.
func NewSentenceDetector() SentenceDetector {
	return func(in <-chan string) <-chan types.Sentence {
		out := make(chan types.Sentence)
		go func() {
			defer close(out)
			for text := range in {
				for _, sent := range DetectSentences(text) {
					out <- sent
				}
			}
		}()
		return out
	}
}

func DetectSentences(text string) []types.Sentence {
	runes := []rune(text)
	var sentences []types.Sentence

	emit := func(begin, end int) {
		for begin < end && unicode.IsSpace(runes[begin]) {
			begin++
		}
		for end > begin && unicode.IsSpace(runes[end-1]) {
			end--
		}
		if begin == end {
			return
		}
		span := types.Span{Begin: int32(begin), End: int32(end)}
		sentText, _ := span.Text(runes)
		sentences = append(sentences, types.Sentence{
			Span:  span,
			Index: len(sentences),
			Text:  sentText,
		})
	}

	begin := 0
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '\n' || r == '\r':
			emit(begin, i)
			begin = i + 1
		case sentenceTerminators[r]:
			end := i + 1
			for end < len(runes) && (sentenceTerminators[runes[end]] || sentenceClosers[runes[end]]) {
				end++
			}
			emit(begin, end)
			begin = end
			i = end - 1
		}
	}
	emit(begin, len(runes))
	return sentences
}
