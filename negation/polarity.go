package negation

import (
	"errors"
	"fmt"

	"teinei.dev/flip/analyzer"
	"teinei.dev/flip/conjugation"
	"teinei.dev/flip/types"
)

var (
	// errors
	InternalInconsistencyError error = errors.New("polarity rewriter: internal inconsistency")
	UnsupportedSentenceError   error = errors.New("polarity rewriter: sentence is not a polite predicate")
)

// TransformPolarity flips a polite sentence between affirmative and negative.
// An empty parse yields an empty string and no error.
func TransformPolarity(analyze analyzer.MorphologicalAnalyzer, sentence string) (string, error) {
	return Transform(analyze, sentence, types.DirectionToggle)
}

// Transform rewrites sentence so that it ends up with the polarity selected by direction.
// A sentence that already has the requested polarity is returned as is.
func Transform(analyze analyzer.MorphologicalAnalyzer, sentence string, direction types.Direction) (string, error) {
	if !direction.IsValid() {
		return "", fmt.Errorf("%w: %q", types.WrongDirectionError, direction)
	}

	morphemes := analyze(sentence)
	if len(morphemes) == 0 {
		return "", nil
	}

	body, trailing := splitTrailingSymbols(morphemes)
	if !isPolitePredicate(body) {
		return "", fmt.Errorf("%w: %q", UnsupportedSentenceError, sentence)
	}

	current := Classify(body)
	if direction.Target(current) == current {
		return sentence, nil
	}

	result, err := Rewrite(body, current)
	if err != nil {
		return "", err
	}
	return result + trailing, nil
}

// DetectPolarity classifies a sentence without rewriting it.
func DetectPolarity(analyze analyzer.MorphologicalAnalyzer, sentence string) (types.Polarity, error) {
	morphemes := analyze(sentence)
	if len(morphemes) == 0 {
		return types.PolarityUnknown, nil
	}

	body, _ := splitTrailingSymbols(morphemes)
	if !isPolitePredicate(body) {
		return types.PolarityUnknown, fmt.Errorf("%w: %q", UnsupportedSentenceError, sentence)
	}
	return Classify(body), nil
}

// Rewrite inverts a sequence already classified as current.
func Rewrite(morphemes []types.Morpheme, current types.Polarity) (string, error) {
	switch current {
	case types.PolarityNegative:
		return ToAffirmative(morphemes)
	case types.PolarityAffirmative:
		return ToNegative(morphemes)
	default:
		return "", fmt.Errorf("%w: cannot rewrite %s polarity", InternalInconsistencyError, current.Name())
	}
}

func splitTrailingSymbols(morphemes []types.Morpheme) ([]types.Morpheme, string) {
	end := len(morphemes)
	for end > 0 && morphemes[end-1].Class.Kind == types.ClassSymbol {
		end--
	}
	return morphemes[:end], types.JoinSurfaces(morphemes[end:])
}

func isPolitePredicate(morphemes []types.Morpheme) bool {
	n := len(morphemes)
	if n == 0 {
		return false
	}

	last := &morphemes[n-1]
	if politeEndingC(last) {
		// 寒かったです: です after the past auxiliary has no polite negative
		return !(isAux(last, lemmaDesu) && n > 1 && isAux(&morphemes[n-2], lemmaTa))
	}
	return isAux(last, lemmaTa) && n > 1 && pastPoliteEndingC(&morphemes[n-2])
}

func toForm(m *types.Morpheme, to conjugation.Form) (string, error) {
	converted, err := conjugation.Convert(m.Surface, m.Conjugation.Kind, m.Conjugation.Form, to)
	if err != nil {
		return "", fmt.Errorf("%w: %w", InternalInconsistencyError, err)
	}
	return converted, nil
}

func unsupportedKindError(m *types.Morpheme) error {
	return fmt.Errorf("%w: %w: %q (%s)", InternalInconsistencyError, conjugation.UnsupportedKindError, m.Surface, m.Conjugation.Kind)
}

func unexpectedMorphemeError(m *types.Morpheme, after string) error {
	if m == nil {
		return fmt.Errorf("%w: sentence ends before %s", InternalInconsistencyError, after)
	}
	return fmt.Errorf("%w: unexpected %s %q before %s", InternalInconsistencyError, m.Class.Kind.Name(), m.Basic, after)
}
