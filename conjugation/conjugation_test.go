package conjugation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	cases := []struct {
		name    string
		surface string
		kind    Kind
		from    Form
		to      Form
		want    string
	}{
		{"adjective continuous to basic", "寒く", "形容詞・アウオ段", FormContinuous, FormBasic, "寒い"},
		{"adjective basic to continuous", "寒い", "形容詞・アウオ段", FormBasic, FormContinuous, "寒く"},
		{"i-row adjective", "美しい", "形容詞・イ段", FormBasic, FormContinuous, "美しく"},
		{"ii adjective", "いい", "形容詞・イイ", FormBasic, FormContinuous, "よく"},
		{"ii adjective back", "かっこよく", "形容詞・イイ", FormContinuous, FormBasic, "かっこいい"},
		{"adjective past stem", "寒かっ", "形容詞・アウオ段", FormContinuousTa, FormBasic, "寒い"},
		{"godan ma basic to continuous", "読む", "五段・マ行", FormBasic, FormContinuous, "読み"},
		{"godan ka onbin", "書い", "五段・カ行イ音便", FormContinuousTa, FormContinuous, "書き"},
		{"godan ra special", "なさる", "五段・ラ行特殊", FormBasic, FormContinuous, "なさい"},
		{"godan wa", "買う", "五段・ワ行促音便", FormBasic, FormImperfective, "買わ"},
		{"ichidan", "食べる", "一段", FormBasic, FormContinuous, "食べ"},
		{"ichidan back", "い", "一段", FormContinuous, FormBasic, "いる"},
		{"kuru kana", "くる", "カ変・クル", FormBasic, FormContinuous, "き"},
		{"suru compound", "勉強する", "サ変・スル", FormBasic, FormContinuous, "勉強し"},
		{"zuru", "信ずる", "サ変・−ズル", FormBasic, FormContinuous, "信じ"},
		{"identity for verb", "読み", "五段・マ行", FormContinuous, FormContinuous, "読み"},
		{"identity for non-inflecting", "静か", NoKind, FormUnknown, FormUnknown, "静か"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Convert(tc.surface, tc.kind, tc.from, tc.to)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestConvertErrors(t *testing.T) {
	cases := []struct {
		name    string
		surface string
		kind    Kind
		from    Form
		to      Form
		want    error
	}{
		{"unknown kind", "寒く", "文語・ベシ", FormContinuous, FormBasic, UnsupportedKindError},
		{"non-inflecting kind", "静か", NoKind, FormUnknown, FormBasic, UnsupportedKindError},
		{"missing form", "いい", "形容詞・イイ", FormBasic, FormAttributive, UnsupportedFormError},
		{"unknown source form", "寒う", "形容詞・アウオ段", FormUnknown, FormBasic, UnsupportedFormError},
		{"surface mismatch", "寒い", "形容詞・アウオ段", FormContinuous, FormBasic, SurfaceMismatchError},
		{"empty surface", "", "一段", FormContinuous, FormBasic, SurfaceMismatchError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Convert(tc.surface, tc.kind, tc.from, tc.to)
			require.Error(t, err)
			require.True(t, errors.Is(err, tc.want), "got %v", err)

			var convErr *ConversionError
			require.True(t, errors.As(err, &convErr))
			require.Equal(t, tc.surface, convErr.Surface)
		})
	}
}

func TestParseForm(t *testing.T) {
	require.Equal(t, FormBasic, ParseForm("基本形"))
	require.Equal(t, FormContinuous, ParseForm("連用形"))
	require.Equal(t, FormContinuous, ParseForm("連用テ接続"))
	require.Equal(t, FormContinuousTa, ParseForm("連用タ接続"))
	require.Equal(t, FormImperative, ParseForm("命令ｅ"))
	require.Equal(t, FormUnknown, ParseForm("*"))
	require.Equal(t, FormUnknown, ParseForm("連用ゴザイ接続"))
}

func TestSupports(t *testing.T) {
	require.True(t, Supports("五段・ラ行アル"))
	require.False(t, Supports(NoKind))
}
