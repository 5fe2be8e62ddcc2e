package fsm

import (
	"teinei.dev/flip/types"
)

type Condition func(morpheme *types.Morpheme) bool

func AnyCondition(morpheme *types.Morpheme) bool {
	return true
}

// NewLemmaCondition matches a word class together with its dictionary form.
func NewLemmaCondition(kind types.ClassKind, basic string) Condition {
	return func(morpheme *types.Morpheme) bool {
		return morpheme.Is(kind, basic)
	}
}

func NewClassCondition(kind types.ClassKind) Condition {
	return func(morpheme *types.Morpheme) bool {
		return morpheme.Class.Kind == kind
	}
}

func NewLemmaSetCondition(kind types.ClassKind, set map[string]bool) Condition {
	return func(morpheme *types.Morpheme) bool {
		return morpheme.Class.Kind == kind && set[morpheme.Basic]
	}
}

func NewDisjointCondition(conditions ...Condition) Condition {
	return func(morpheme *types.Morpheme) bool {
		for _, cond := range conditions {
			if cond(morpheme) {
				return true
			}
		}
		return false
	}
}
