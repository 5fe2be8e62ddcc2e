package conjugation

import "strings"

type Form int8

const (
	FormUnknown Form = iota
	// 基本形
	FormBasic
	// 連用形 for verbs, 連用テ接続 for adjectives: the stem that takes ます or ありません.
	FormContinuous
	// 連用タ接続
	FormContinuousTa
	// 未然形
	FormImperfective
	// 未然ウ接続
	FormImperfectiveU
	// 未然ヌ接続
	FormImperfectiveNu
	// 仮定形
	FormConditional
	// 命令ｅ, 命令ｒｏ, 命令ｙｏ, 命令ｉ
	FormImperative
	// 体言接続
	FormAttributive
)

func (f Form) Name() string {
	switch f {
	case FormBasic:
		return "basic"
	case FormContinuous:
		return "continuous"
	case FormContinuousTa:
		return "continuous-ta"
	case FormImperfective:
		return "imperfective"
	case FormImperfectiveU:
		return "imperfective-u"
	case FormImperfectiveNu:
		return "imperfective-nu"
	case FormConditional:
		return "conditional"
	case FormImperative:
		return "imperative"
	case FormAttributive:
		return "attributive"
	default:
		return "unknown"
	}
}

// ParseForm maps an IPADIC 活用形 string onto a Form.
func ParseForm(ipadic string) Form {
	switch {
	case ipadic == "基本形":
		return FormBasic
	case ipadic == "連用形", ipadic == "連用テ接続":
		return FormContinuous
	case ipadic == "連用タ接続":
		return FormContinuousTa
	case ipadic == "未然形":
		return FormImperfective
	case ipadic == "未然ウ接続":
		return FormImperfectiveU
	case ipadic == "未然ヌ接続":
		return FormImperfectiveNu
	case ipadic == "仮定形":
		return FormConditional
	case strings.HasPrefix(ipadic, "命令"):
		return FormImperative
	case ipadic == "体言接続":
		return FormAttributive
	default:
		return FormUnknown
	}
}
