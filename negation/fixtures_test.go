package negation

import (
	"teinei.dev/flip/analyzer"
	"teinei.dev/flip/conjugation"
	"teinei.dev/flip/types"
)

const (
	adjectiveKind conjugation.Kind = "形容詞・アウオ段"
	godanMaKind   conjugation.Kind = "五段・マ行"
	godanRaKind   conjugation.Kind = "五段・ラ行"
	ichidanKind   conjugation.Kind = "一段"
)

func adj(surface, basic string, form conjugation.Form) types.Morpheme {
	return types.Morpheme{
		Surface:     surface,
		Basic:       basic,
		Class:       types.WordClass{Kind: types.ClassAdjective, Sub: "自立"},
		Conjugation: conjugation.Conjugation{Kind: adjectiveKind, Form: form},
	}
}

func verb(surface, basic string, kind conjugation.Kind, form conjugation.Form) types.Morpheme {
	return types.Morpheme{
		Surface:     surface,
		Basic:       basic,
		Class:       types.WordClass{Kind: types.ClassVerb, Sub: "自立"},
		Conjugation: conjugation.Conjugation{Kind: kind, Form: form},
	}
}

func aux(surface, basic string) types.Morpheme {
	return types.Morpheme{
		Surface:     surface,
		Basic:       basic,
		Class:       types.WordClass{Kind: types.ClassAuxiliaryVerb},
		Conjugation: conjugation.Conjugation{Kind: conjugation.NoKind},
	}
}

func particle(surface string) types.Morpheme {
	return types.Morpheme{
		Surface:     surface,
		Basic:       surface,
		Class:       types.WordClass{Kind: types.ClassPostpositional},
		Conjugation: conjugation.Conjugation{Kind: conjugation.NoKind},
	}
}

func noun(surface string) types.Morpheme {
	return types.Morpheme{
		Surface:     surface,
		Basic:       surface,
		Class:       types.WordClass{Kind: types.ClassNoun, Sub: "形容動詞語幹"},
		Conjugation: conjugation.Conjugation{Kind: conjugation.NoKind},
	}
}

func symbol(surface string) types.Morpheme {
	return types.Morpheme{
		Surface:     surface,
		Basic:       surface,
		Class:       types.WordClass{Kind: types.ClassSymbol, Sub: "句点"},
		Conjugation: conjugation.Conjugation{Kind: conjugation.NoKind},
	}
}

func aru() types.Morpheme {
	return verb("あり", "ある", godanRaKind, conjugation.FormContinuous)
}

func masen() []types.Morpheme {
	return []types.Morpheme{aux("ませ", "ます"), aux("ん", "ん")}
}

func join(parts ...[]types.Morpheme) []types.Morpheme {
	var result []types.Morpheme
	for _, part := range parts {
		result = append(result, part...)
	}
	return result
}

func seq(morphemes ...types.Morpheme) []types.Morpheme {
	return morphemes
}

// IPADIC-shaped parses
var negativeFixtures = map[string][]types.Morpheme{
	"寒くないです":       seq(adj("寒く", "寒い", conjugation.FormContinuous), aux("ない", "ない"), aux("です", "です")),
	"寒くありません":      join(seq(adj("寒く", "寒い", conjugation.FormContinuous), aru()), masen()),
	"寒くはありません":     join(seq(adj("寒く", "寒い", conjugation.FormContinuous), particle("は"), aru()), masen()),
	"静かではありません":    join(seq(noun("静か"), particle("で"), particle("は"), aru()), masen()),
	"静かじゃありません":    join(seq(noun("静か"), particle("じゃ"), aru()), masen()),
	"読みません":        join(seq(verb("読み", "読む", godanMaKind, conjugation.FormContinuous)), masen()),
	"読んでいません":      join(seq(verb("読ん", "読む", godanMaKind, conjugation.FormContinuousTa), particle("で"), verb("い", "いる", ichidanKind, conjugation.FormContinuous)), masen()),
	"読んでいませんでした":   join(seq(verb("読ん", "読む", godanMaKind, conjugation.FormContinuousTa), particle("で"), verb("い", "いる", ichidanKind, conjugation.FormContinuous)), masen(), seq(aux("でし", "です"), aux("た", "た"))),
	"静かではありませんでした": join(seq(noun("静か"), particle("で"), particle("は"), aru()), masen(), seq(aux("でし", "です"), aux("た", "た"))),
}

var affirmativeFixtures = map[string][]types.Morpheme{
	"寒いです":    seq(adj("寒い", "寒い", conjugation.FormBasic), aux("です", "です")),
	"静かです":    seq(noun("静か"), aux("です", "です")),
	"読みます":    seq(verb("読み", "読む", godanMaKind, conjugation.FormContinuous), aux("ます", "ます")),
	"読んでいます":  seq(verb("読ん", "読む", godanMaKind, conjugation.FormContinuousTa), particle("で"), verb("い", "いる", ichidanKind, conjugation.FormContinuous), aux("ます", "ます")),
	"読んでいました": seq(verb("読ん", "読む", godanMaKind, conjugation.FormContinuousTa), particle("で"), verb("い", "いる", ichidanKind, conjugation.FormContinuous), aux("まし", "ます"), aux("た", "た")),
	"静かでした":   seq(noun("静か"), aux("でし", "です"), aux("た", "た")),
	"寒いです。":   seq(adj("寒い", "寒い", conjugation.FormBasic), aux("です", "です"), symbol("。")),
	"寒い":      seq(adj("寒い", "寒い", conjugation.FormBasic)),
	"寒かったです":  seq(adj("寒かっ", "寒い", conjugation.FormContinuousTa), aux("た", "た"), aux("です", "です")),
	"。":       seq(symbol("。")),
}

// fixtureAnalyzer serves the parses above and nothing for unknown text.
func fixtureAnalyzer() analyzer.MorphologicalAnalyzer {
	return func(text string) []types.Morpheme {
		if morphemes, ok := negativeFixtures[text]; ok {
			return morphemes
		}
		return affirmativeFixtures[text]
	}
}
