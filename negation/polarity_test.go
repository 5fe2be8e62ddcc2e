package negation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"teinei.dev/flip/conjugation"
	"teinei.dev/flip/types"
)

var toAffirmativeCases = map[string]string{
	"寒くないです":       "寒いです",
	"寒くありません":      "寒いです",
	"寒くはありません":     "寒くはあります",
	"静かではありません":    "静かです",
	"静かじゃありません":    "静かです",
	"読みません":        "読みます",
	"読んでいません":      "読んでいます",
	"読んでいませんでした":   "読んでいました",
	"静かではありませんでした": "静かではありました",
}

var toNegativeCases = map[string]string{
	"寒いです":    "寒くありません",
	"静かです":    "静かではありません",
	"読みます":    "読みません",
	"読んでいます":  "読んでいません",
	"読んでいました": "読んでいませんでした",
	"静かでした":   "静かではありませんでした",
}

func TestClassify(t *testing.T) {
	for sentence, morphemes := range negativeFixtures {
		t.Run(sentence, func(t *testing.T) {
			require.Equal(t, types.PolarityNegative, Classify(morphemes))
		})
	}
	for sentence, morphemes := range affirmativeFixtures {
		t.Run(sentence, func(t *testing.T) {
			require.Equal(t, types.PolarityAffirmative, Classify(morphemes))
		})
	}
}

func TestClassifyPartialTails(t *testing.T) {
	cases := map[string][]types.Morpheme{
		"empty":         nil,
		"lone です":       seq(aux("です", "です")),
		"です after noun": seq(noun("静か"), aux("です", "です")),
		"broken past":   seq(aux("ませ", "ます"), aux("でし", "です"), aux("た", "た")),
		"ない without です": seq(adj("寒く", "寒い", conjugation.FormContinuous), aux("ない", "ない")),
		"ん as verb":     seq(verb("ん", "ん", conjugation.NoKind, conjugation.FormUnknown)),
	}
	for name, morphemes := range cases {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, types.PolarityAffirmative, Classify(morphemes))
		})
	}

	// past chain needs the whole four morpheme window
	require.Equal(t, types.PolarityNegative, Classify(join(masen(), seq(aux("でし", "です"), aux("た", "た")))))
}

func TestToAffirmative(t *testing.T) {
	for sentence, expected := range toAffirmativeCases {
		t.Run(sentence, func(t *testing.T) {
			result, err := ToAffirmative(negativeFixtures[sentence])
			require.NoError(t, err)
			require.Equal(t, expected, result)
		})
	}
}

func TestToAffirmativeExhaustedStack(t *testing.T) {
	cases := []struct {
		name      string
		morphemes []types.Morpheme
		expected  string
	}{
		{"bare ません", masen(), "ます"},
		{"bare ありません", join(seq(aru()), masen()), "あります"},
		{"bare はありません", join(seq(particle("は"), aru()), masen()), "はあります"},
		{"bare ないです", seq(aux("ない", "ない"), aux("です", "です")), "あります"},
		{"bare ん", seq(aux("ん", "ん")), ""},
		{"plain ん keeps stem", seq(verb("知ら", "知る", godanRaKind, conjugation.FormImperfective), aux("ん", "ん")), "知ら"},
		{"noun ないです", seq(noun("学生"), particle("じゃ"), aux("ない", "ない"), aux("です", "です")), "学生です"},
		{"topic ないです", seq(noun("静か"), particle("で"), particle("は"), aux("ない", "ない"), aux("です", "です")), "静かです"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			result, err := ToAffirmative(c.morphemes)
			require.NoError(t, err)
			require.Equal(t, c.expected, result)
		})
	}
}

func TestToNegative(t *testing.T) {
	for sentence, expected := range toNegativeCases {
		t.Run(sentence, func(t *testing.T) {
			result, err := ToNegative(affirmativeFixtures[sentence])
			require.NoError(t, err)
			require.Equal(t, expected, result)
		})
	}

	t.Run("bare endings", func(t *testing.T) {
		cases := []struct {
			morphemes []types.Morpheme
			expected  string
		}{
			{seq(aux("です", "です")), "ではありません"},
			{seq(aux("ます", "ます")), "ません"},
			{seq(aux("まし", "ます"), aux("た", "た")), "ませんでした"},
		}
		for _, c := range cases {
			result, err := ToNegative(c.morphemes)
			require.NoError(t, err)
			require.Equal(t, c.expected, result)
		}
	})
}

func TestRewritersRejectForeignTails(t *testing.T) {
	for sentence, morphemes := range affirmativeFixtures {
		if sentence == "寒いです。" || sentence == "。" || sentence == "寒い" {
			continue
		}
		t.Run("affirmative "+sentence, func(t *testing.T) {
			_, err := ToAffirmative(morphemes)
			require.True(t, errors.Is(err, InternalInconsistencyError), "error: %v", err)
		})
	}

	for _, sentence := range []string{"寒くありません", "読みません", "静かじゃありません"} {
		morphemes := negativeFixtures[sentence]
		t.Run("negative "+sentence, func(t *testing.T) {
			_, err := ToNegative(morphemes)
			require.True(t, errors.Is(err, InternalInconsistencyError), "error: %v", err)
		})
	}

	_, err := ToAffirmative(nil)
	require.True(t, errors.Is(err, InternalInconsistencyError))
	_, err = ToNegative(nil)
	require.True(t, errors.Is(err, InternalInconsistencyError))
}

func TestConversionFailureIsInternal(t *testing.T) {
	broken := seq(adj("寒い", "寒い", conjugation.FormBasic), aux("です", "です"))
	broken[0].Conjugation.Kind = "形容詞・未知"

	_, err := ToNegative(broken)
	require.True(t, errors.Is(err, InternalInconsistencyError))
	require.True(t, errors.Is(err, conjugation.UnsupportedKindError))

	var conversionErr *conjugation.ConversionError
	require.True(t, errors.As(err, &conversionErr))
	require.Equal(t, "寒い", conversionErr.Surface)

	_, err = ToNegative(seq(noun("学生"), aux("ます", "ます")))
	require.True(t, errors.Is(err, InternalInconsistencyError))
}

func TestMasuRejectsUnknownKindBeforeConverting(t *testing.T) {
	for name, morphemes := range map[string][]types.Morpheme{
		"noun":         seq(noun("学生"), aux("ます", "ます")),
		"unknown verb": seq(verb("読み", "読む", "五段・未知", conjugation.FormContinuous), aux("ます", "ます")),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ToNegative(morphemes)
			require.True(t, errors.Is(err, InternalInconsistencyError), "error: %v", err)
			require.True(t, errors.Is(err, conjugation.UnsupportedKindError), "error: %v", err)

			var conversionErr *conjugation.ConversionError
			require.False(t, errors.As(err, &conversionErr))
		})
	}
}

func TestPastPoliteAdjectiveIsUnsupported(t *testing.T) {
	morphemes := affirmativeFixtures["寒かったです"]
	require.False(t, isPolitePredicate(morphemes))
	require.True(t, isPolitePredicate(negativeFixtures["読んでいませんでした"]))

	_, err := DetectPolarity(fixtureAnalyzer(), "寒かったです")
	require.True(t, errors.Is(err, UnsupportedSentenceError))
}

func TestTransformPolarity(t *testing.T) {
	analyze := fixtureAnalyzer()

	for sentence, expected := range toAffirmativeCases {
		result, err := TransformPolarity(analyze, sentence)
		require.NoError(t, err)
		require.Equal(t, expected, result)
	}
	for sentence, expected := range toNegativeCases {
		result, err := TransformPolarity(analyze, sentence)
		require.NoError(t, err)
		require.Equal(t, expected, result)
	}

	t.Run("empty parse", func(t *testing.T) {
		result, err := TransformPolarity(analyze, "")
		require.NoError(t, err)
		require.Empty(t, result)

		result, err = TransformPolarity(analyze, "解析できない")
		require.NoError(t, err)
		require.Empty(t, result)
	})

	t.Run("trailing symbols", func(t *testing.T) {
		result, err := TransformPolarity(analyze, "寒いです。")
		require.NoError(t, err)
		require.Equal(t, "寒くありません。", result)
	})

	t.Run("unsupported", func(t *testing.T) {
		for _, sentence := range []string{"寒い", "。", "寒かったです"} {
			_, err := TransformPolarity(analyze, sentence)
			require.True(t, errors.Is(err, UnsupportedSentenceError), "sentence %q", sentence)
			require.False(t, errors.Is(err, InternalInconsistencyError))
		}
	})
}

func TestTransformDirection(t *testing.T) {
	analyze := fixtureAnalyzer()

	result, err := Transform(analyze, "寒いです", types.DirectionAffirmative)
	require.NoError(t, err)
	require.Equal(t, "寒いです", result)

	result, err = Transform(analyze, "寒いです", types.DirectionNegative)
	require.NoError(t, err)
	require.Equal(t, "寒くありません", result)

	result, err = Transform(analyze, "読みません", types.DirectionNegative)
	require.NoError(t, err)
	require.Equal(t, "読みません", result)

	result, err = Transform(analyze, "読みません", types.DirectionAffirmative)
	require.NoError(t, err)
	require.Equal(t, "読みます", result)

	_, err = Transform(analyze, "寒いです", types.Direction("sideways"))
	require.True(t, errors.Is(err, types.WrongDirectionError))
}

func TestDetectPolarity(t *testing.T) {
	analyze := fixtureAnalyzer()

	polarity, err := DetectPolarity(analyze, "寒くはありません")
	require.NoError(t, err)
	require.Equal(t, types.PolarityNegative, polarity)

	polarity, err = DetectPolarity(analyze, "寒いです。")
	require.NoError(t, err)
	require.Equal(t, types.PolarityAffirmative, polarity)

	polarity, err = DetectPolarity(analyze, "")
	require.NoError(t, err)
	require.Equal(t, types.PolarityUnknown, polarity)

	_, err = DetectPolarity(analyze, "寒い")
	require.True(t, errors.Is(err, UnsupportedSentenceError))
}

func TestRewriteDoesNotMutateInput(t *testing.T) {
	morphemes := negativeFixtures["読んでいませんでした"]
	before := append([]types.Morpheme(nil), morphemes...)

	_, err := Rewrite(morphemes, types.PolarityNegative)
	require.NoError(t, err)
	require.Equal(t, before, morphemes)

	_, err = Rewrite(morphemes, types.PolarityUnknown)
	require.True(t, errors.Is(err, InternalInconsistencyError))
}
