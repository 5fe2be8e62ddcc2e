package negation

import (
	"teinei.dev/flip/conjugation"
	"teinei.dev/flip/types"
)

// ToNegative rewrites an affirmative polite sentence into its negative counterpart.
// Callers must pass a sequence Classify reports as affirmative.
func ToNegative(morphemes []types.Morpheme) (string, error) {
	stack := newMorphemeStack(morphemes)
	last := stack.pop()

	switch {
	case last == nil:
		return "", unexpectedMorphemeError(nil, "end of sentence")
	case isAux(last, lemmaDesu):
		return negativeFromDesu(stack)
	case isAux(last, lemmaMasu):
		return negativeFromMasu(stack)
	case isAux(last, lemmaTa):
		return negativeFromPast(stack)
	default:
		return "", unexpectedMorphemeError(last, "end of sentence")
	}
}

func negativeFromDesu(stack *morphemeStack) (string, error) {
	m := stack.pop()
	switch {
	case m == nil:
		return suffixDewaArimasen, nil
	case adjectiveC(m):
		continuous, err := toForm(m, conjugation.FormContinuous)
		if err != nil {
			return "", err
		}
		return stack.render(continuous, suffixArimasen), nil
	default:
		return stack.render(m.Surface, suffixDewaArimasen), nil
	}
}

func negativeFromMasu(stack *morphemeStack) (string, error) {
	m := stack.pop()
	if m == nil {
		return suffixMasen, nil
	}
	if !conjugation.Supports(m.Conjugation.Kind) {
		return "", unsupportedKindError(m)
	}
	continuous, err := toForm(m, conjugation.FormContinuous)
	if err != nil {
		return "", err
	}
	return stack.render(continuous, suffixMasen), nil
}

func negativeFromPast(stack *morphemeStack) (string, error) {
	m := stack.pop()
	switch {
	case m == nil:
		return "", unexpectedMorphemeError(nil, lemmaTa)
	case isAux(m, lemmaDesu):
		return stack.render(suffixDewaArimasenDeshita), nil
	case isAux(m, lemmaMasu):
		verb := stack.pop()
		if verb == nil {
			return suffixMasendeshita, nil
		}
		return stack.render(verb.Surface, suffixMasendeshita), nil
	default:
		return "", unexpectedMorphemeError(m, lemmaTa)
	}
}
