package types

import (
	"strings"

	"teinei.dev/flip/conjugation"
)

type ClassKind int8

const (
	ClassOther ClassKind = iota
	ClassVerb
	ClassAuxiliaryVerb
	ClassAdjective
	ClassPostpositional
	ClassNoun
	ClassAdverb
	ClassSymbol
)

func (kind ClassKind) Name() string {
	switch kind {
	case ClassVerb:
		return "verb"
	case ClassAuxiliaryVerb:
		return "auxiliary verb"
	case ClassAdjective:
		return "adjective"
	case ClassPostpositional:
		return "postpositional"
	case ClassNoun:
		return "noun"
	case ClassAdverb:
		return "adverb"
	case ClassSymbol:
		return "symbol"
	default:
		return "other"
	}
}

// WordClass is a part of speech with an optional sub-kind (自立, 係助詞, ...).
type WordClass struct {
	Kind ClassKind
	Sub  string
}

type Morpheme struct {
	Surface     string
	Basic       string
	Class       WordClass
	Conjugation conjugation.Conjugation
}

// Is reports whether the morpheme has the given class kind and lemma.
func (m Morpheme) Is(kind ClassKind, basic string) bool {
	return m.Class.Kind == kind && m.Basic == basic
}

func JoinSurfaces(morphemes []Morpheme) string {
	var sb strings.Builder
	for _, m := range morphemes {
		sb.WriteString(m.Surface)
	}
	return sb.String()
}
