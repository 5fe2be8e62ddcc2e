package conjugation

// paradigm maps a form onto the ending that follows the invariant stem.
type paradigm map[Form]string

func adjectiveParadigm() paradigm {
	return paradigm{
		FormBasic:          "い",
		FormContinuous:     "く",
		FormContinuousTa:   "かっ",
		FormImperfectiveU:  "かろ",
		FormImperfectiveNu: "から",
		FormConditional:    "けれ",
		FormImperative:     "かれ",
		FormAttributive:    "き",
	}
}

// godanParadigm builds a 五段 paradigm from the kana of the row, listed in
// basic, continuous, continuous-ta, imperfective, imperfective-u, conditional order.
func godanParadigm(basic, continuous, continuousTa, imperfective, imperfectiveU, conditional string) paradigm {
	return paradigm{
		FormBasic:         basic,
		FormContinuous:    continuous,
		FormContinuousTa:  continuousTa,
		FormImperfective:  imperfective,
		FormImperfectiveU: imperfectiveU,
		FormConditional:   conditional,
		FormImperative:    conditional,
	}
}

var paradigms = map[Kind]paradigm{
	"形容詞・アウオ段": adjectiveParadigm(),
	"形容詞・イ段":   adjectiveParadigm(),
	"形容詞・イイ": {
		FormBasic:         "いい",
		FormContinuous:    "よく",
		FormContinuousTa:  "よかっ",
		FormImperfectiveU: "よかろ",
		FormConditional:   "よけれ",
	},

	"五段・カ行イ音便":   godanParadigm("く", "き", "い", "か", "こ", "け"),
	"五段・カ行促音便":   godanParadigm("く", "き", "っ", "か", "こ", "け"),
	"五段・カ行促音便ユク": godanParadigm("く", "き", "っ", "か", "こ", "け"),
	"五段・ガ行":      godanParadigm("ぐ", "ぎ", "い", "が", "ご", "げ"),
	"五段・サ行":      godanParadigm("す", "し", "し", "さ", "そ", "せ"),
	"五段・タ行":      godanParadigm("つ", "ち", "っ", "た", "と", "て"),
	"五段・ナ行":      godanParadigm("ぬ", "に", "ん", "な", "の", "ね"),
	"五段・バ行":      godanParadigm("ぶ", "び", "ん", "ば", "ぼ", "べ"),
	"五段・マ行":      godanParadigm("む", "み", "ん", "ま", "も", "め"),
	"五段・ラ行":      godanParadigm("る", "り", "っ", "ら", "ろ", "れ"),
	"五段・ラ行アル":    godanParadigm("る", "り", "っ", "ら", "ろ", "れ"),
	"五段・ワ行促音便":   godanParadigm("う", "い", "っ", "わ", "お", "え"),
	"五段・ワ行ウ音便":   godanParadigm("う", "い", "う", "わ", "お", "え"),
	"五段・ラ行特殊": {
		FormBasic:         "る",
		FormContinuous:    "い",
		FormContinuousTa:  "っ",
		FormImperfective:  "ら",
		FormImperfectiveU: "ろ",
		FormConditional:   "れ",
		FormImperative:    "い",
	},

	"一段": {
		FormBasic:         "る",
		FormContinuous:    "",
		FormContinuousTa:  "",
		FormImperfective:  "",
		FormImperfectiveU: "よ",
		FormConditional:   "れ",
		FormImperative:    "ろ",
	},
	"一段・クレル": {
		FormBasic:        "る",
		FormContinuous:   "",
		FormContinuousTa: "",
		FormImperfective: "",
		FormConditional:  "れ",
		FormImperative:   "",
	},

	"カ変・来ル": {
		FormBasic:         "る",
		FormContinuous:    "",
		FormContinuousTa:  "",
		FormImperfective:  "",
		FormImperfectiveU: "よ",
		FormConditional:   "れ",
		FormImperative:    "い",
	},
	"カ変・クル": {
		FormBasic:         "くる",
		FormContinuous:    "き",
		FormContinuousTa:  "き",
		FormImperfective:  "こ",
		FormImperfectiveU: "こよ",
		FormConditional:   "くれ",
		FormImperative:    "こい",
	},

	"サ変・スル": {
		FormBasic:         "する",
		FormContinuous:    "し",
		FormContinuousTa:  "し",
		FormImperfective:  "し",
		FormImperfectiveU: "しよ",
		FormConditional:   "すれ",
		FormImperative:    "しろ",
	},
	"サ変・−スル": {
		FormBasic:         "する",
		FormContinuous:    "し",
		FormContinuousTa:  "し",
		FormImperfective:  "し",
		FormImperfectiveU: "しよ",
		FormConditional:   "すれ",
		FormImperative:    "しろ",
	},
	"サ変・−ズル": {
		FormBasic:         "ずる",
		FormContinuous:    "じ",
		FormContinuousTa:  "じ",
		FormImperfective:  "じ",
		FormImperfectiveU: "じよ",
		FormConditional:   "ずれ",
		FormImperative:    "じろ",
	},
}

func lookupParadigm(kind Kind) (paradigm, bool) {
	p, ok := paradigms[kind]
	return p, ok
}
