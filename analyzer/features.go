package analyzer

import (
	"teinei.dev/flip/conjugation"
	"teinei.dev/flip/types"
)

// IPADIC feature layout
const (
	posIdx = iota
	pos1Idx
	pos2Idx
	pos3Idx
	inflectionTypeIdx
	inflectionFormIdx
	baseFormIdx
)

const (
	Verb           = "動詞"
	AuxiliaryVerb  = "助動詞"
	Adjective      = "形容詞"
	Postpositional = "助詞"
	Noun           = "名詞"
	Adverb         = "副詞"
	Symbol         = "記号"

	undefined = "*"
)

func classKind(pos string) types.ClassKind {
	switch pos {
	case Verb:
		return types.ClassVerb
	case AuxiliaryVerb:
		return types.ClassAuxiliaryVerb
	case Adjective:
		return types.ClassAdjective
	case Postpositional:
		return types.ClassPostpositional
	case Noun:
		return types.ClassNoun
	case Adverb:
		return types.ClassAdverb
	case Symbol:
		return types.ClassSymbol
	default:
		return types.ClassOther
	}
}

func feature(features []string, idx int) string {
	if idx >= len(features) || features[idx] == undefined {
		return ""
	}
	return features[idx]
}

func toMorpheme(surface string, features []string) types.Morpheme {
	basic := feature(features, baseFormIdx)
	if basic == "" {
		basic = surface
	}

	kind := conjugation.Kind(feature(features, inflectionTypeIdx))
	if kind == "" {
		kind = conjugation.NoKind
	}

	return types.Morpheme{
		Surface: surface,
		Basic:   basic,
		Class: types.WordClass{
			Kind: classKind(feature(features, posIdx)),
			Sub:  feature(features, pos1Idx),
		},
		Conjugation: conjugation.Conjugation{
			Kind: kind,
			Form: conjugation.ParseForm(feature(features, inflectionFormIdx)),
		},
	}
}
