package analyzer

import (
	"errors"
	"sync"

	"github.com/ikawaha/kagome-dict/dict"
	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
	"teinei.dev/flip/logger"
	"teinei.dev/flip/types"
)

var (
	// errors
	WrongModeError error = errors.New("morphological analyzer: wrong tokenizer mode")
)

// MorphologicalAnalyzer segments text into morphemes in reading order.
// The result is empty when nothing could be parsed.
type MorphologicalAnalyzer func(text string) []types.Morpheme

type Params struct {
	Mode           string `json:"mode"`
	UserDictionary string `json:"user_dictionary"`
}

func ParamsFromConfiguration(cfg types.Configuration) Params {
	return Params{
		Mode:           cfg.Analyzer.Mode,
		UserDictionary: cfg.Analyzer.UserDictionary,
	}
}

func NewMorphologicalAnalyzer(params Params) (MorphologicalAnalyzer, error) {
	analyzerLogger := logger.NewLogger("Morphological analyzer")

	mode, err := parseMode(params.Mode)
	if err != nil {
		return nil, err
	}

	options := []tokenizer.Option{tokenizer.OmitBosEos()}
	if params.UserDictionary != "" {
		udict, err := dict.NewUserDict(params.UserDictionary)
		if err != nil {
			analyzerLogger.Err(err).
				Str("user_dictionary", params.UserDictionary).
				Msg("Failed to load user dictionary")
			return nil, err
		}
		options = append(options, tokenizer.UserDict(udict))
	}

	t, err := tokenizer.New(ipa.Dict(), options...)
	if err != nil {
		analyzerLogger.Err(err).Msg("Failed to create kagome tokenizer")
		return nil, err
	}
	analyzerLogger.Debug().Interface("params", params).Msg("Morphological analyzer is ready")

	return func(text string) []types.Morpheme {
		if text == "" {
			return nil
		}
		tokens := t.Analyze(text, mode)
		morphemes := make([]types.Morpheme, 0, len(tokens))
		for _, token := range tokens {
			if token.Class == tokenizer.DUMMY || token.Surface == "" {
				continue
			}
			morphemes = append(morphemes, toMorpheme(token.Surface, token.Features()))
		}
		return morphemes
	}, nil
}

func parseMode(mode string) (tokenizer.TokenizeMode, error) {
	switch mode {
	case "", types.AnalyzerModeNormal:
		return tokenizer.Normal, nil
	case types.AnalyzerModeSearch:
		return tokenizer.Search, nil
	case types.AnalyzerModeExtended:
		return tokenizer.Extended, nil
	default:
		return tokenizer.Normal, WrongModeError
	}
}

var defaultAnalyzer MorphologicalAnalyzer
var defaultAnalyzerErr error
var defaultAnalyzerInitializer sync.Once

// Default returns a process-wide analyzer with the plain IPA dictionary.
// It is built once on first use and never mutated afterwards.
func Default() (MorphologicalAnalyzer, error) {
	defaultAnalyzerInitializer.Do(func() {
		defaultAnalyzer, defaultAnalyzerErr = NewMorphologicalAnalyzer(Params{Mode: types.AnalyzerModeNormal})
	})
	return defaultAnalyzer, defaultAnalyzerErr
}
