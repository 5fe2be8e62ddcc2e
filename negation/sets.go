package negation

import (
	"teinei.dev/flip/fsm"
	"teinei.dev/flip/types"
)

// dictionary forms matched at the end of a polite predicate
const (
	lemmaN    = "ん"
	lemmaMasu = "ます"
	lemmaDesu = "です"
	lemmaTa   = "た"
	lemmaNai  = "ない"
	lemmaAru  = "ある"
	lemmaHa   = "は"
	lemmaDe   = "で"
	lemmaDa   = "だ"
	lemmaJa   = "じゃ"
)

const (
	suffixDesu                = "です"
	suffixMasu                = "ます"
	suffixMashita             = "ました"
	suffixArimasu             = "あります"
	suffixHaArimasu           = "はあります"
	suffixArimasen            = "ありません"
	suffixDewaArimasen        = "ではありません"
	suffixMasen               = "ません"
	suffixMasendeshita        = "ませんでした"
	suffixDewaArimasenDeshita = "ではありませんでした"
)

func getPoliteEndings() map[string]bool {
	return map[string]bool{
		lemmaDesu: true,
		lemmaMasu: true,
		lemmaN:    true,
	}
}

func getPastPoliteEndings() map[string]bool {
	return map[string]bool{
		lemmaDesu: true,
		lemmaMasu: true,
	}
}

func isAux(m *types.Morpheme, basic string) bool {
	return m.Is(types.ClassAuxiliaryVerb, basic)
}

func isParticle(m *types.Morpheme, basic string) bool {
	return m.Is(types.ClassPostpositional, basic)
}

// ある shows up as an independent verb or, with some dictionaries, as an auxiliary.
var existenceVerbC = fsm.NewDisjointCondition(
	fsm.NewLemmaCondition(types.ClassVerb, lemmaAru),
	fsm.NewLemmaCondition(types.ClassAuxiliaryVerb, lemmaAru),
)

// で of では is a case particle or the continuative of だ.
var copulaDeC = fsm.NewDisjointCondition(
	fsm.NewLemmaCondition(types.ClassPostpositional, lemmaDe),
	fsm.NewLemmaCondition(types.ClassAuxiliaryVerb, lemmaDa),
)

var contractedCopulaC fsm.Condition = func(m *types.Morpheme) bool {
	if m.Surface != lemmaJa {
		return false
	}
	return m.Class.Kind == types.ClassPostpositional || m.Class.Kind == types.ClassAuxiliaryVerb
}

var adjectiveC = fsm.NewClassCondition(types.ClassAdjective)

var politeEndingC = fsm.NewLemmaSetCondition(types.ClassAuxiliaryVerb, getPoliteEndings())

var pastPoliteEndingC = fsm.NewLemmaSetCondition(types.ClassAuxiliaryVerb, getPastPoliteEndings())
