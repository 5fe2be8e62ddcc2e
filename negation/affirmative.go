package negation

import (
	"teinei.dev/flip/conjugation"
	"teinei.dev/flip/types"
)

// ToAffirmative rewrites a negative polite sentence into its affirmative counterpart.
// Callers must pass a sequence Classify reports as negative.
func ToAffirmative(morphemes []types.Morpheme) (string, error) {
	stack := newMorphemeStack(morphemes)
	last := stack.pop()

	switch {
	case last == nil:
		return "", unexpectedMorphemeError(nil, "end of sentence")
	case isAux(last, lemmaN):
		return affirmativeFromN(stack)
	case isAux(last, lemmaDesu):
		return affirmativeFromNaiDesu(stack)
	case isAux(last, lemmaTa):
		return affirmativeFromPast(stack)
	default:
		return "", unexpectedMorphemeError(last, "end of sentence")
	}
}

// 〜ません
func affirmativeFromN(stack *morphemeStack) (string, error) {
	m := stack.pop()
	if m == nil {
		return "", nil
	}
	if !isAux(m, lemmaMasu) {
		return stack.render(m.Surface), nil
	}

	m = stack.pop()
	switch {
	case m == nil:
		return suffixMasu, nil
	case existenceVerbC(m):
		return affirmativeFromExistence(stack)
	default:
		return stack.render(m.Surface, suffixMasu), nil
	}
}

// 〜ないです
func affirmativeFromNaiDesu(stack *morphemeStack) (string, error) {
	m := stack.pop()
	if m == nil || !isAux(m, lemmaNai) {
		return "", unexpectedMorphemeError(m, lemmaDesu)
	}
	return affirmativeFromExistence(stack)
}

// 〜ませんでした
func affirmativeFromPast(stack *morphemeStack) (string, error) {
	after := lemmaTa
	for _, expected := range []string{lemmaDesu, lemmaN, lemmaMasu} {
		m := stack.pop()
		if m == nil || !isAux(m, expected) {
			return "", unexpectedMorphemeError(m, after)
		}
		after = expected
	}
	return stack.render(suffixMashita), nil
}

// handles what precedes a negated ある or ない
func affirmativeFromExistence(stack *morphemeStack) (string, error) {
	m := stack.pop()
	switch {
	case m == nil:
		return suffixArimasu, nil
	case isParticle(m, lemmaHa):
		return affirmativeFromTopic(stack), nil
	case contractedCopulaC(m):
		return stack.render(suffixDesu), nil
	case adjectiveC(m):
		basic, err := toForm(m, conjugation.FormBasic)
		if err != nil {
			return "", err
		}
		return stack.render(basic, suffixDesu), nil
	default:
		return stack.render(m.Surface, suffixArimasu), nil
	}
}

// では collapses into the copula, any other topic keeps はあります.
func affirmativeFromTopic(stack *morphemeStack) string {
	m := stack.pop()
	switch {
	case m == nil:
		return suffixHaArimasu
	case copulaDeC(m):
		return stack.render(suffixDesu)
	default:
		return stack.render(m.Surface, suffixHaArimasu)
	}
}
