package pipeline

import (
	"encoding/json"

	"teinei.dev/flip/analyzer"
	"teinei.dev/flip/logger"
	"teinei.dev/flip/types"
)

// Pipeline returns the JSON encoded types.ToggleResponse for a request.
type Pipeline func(request Request) <-chan string

type Params struct {
	Configuration types.Configuration `json:"configuration"`
	// Analyzer overrides the one built from Configuration. Sentences it
	// rewrites are cached only under a CacheNamespace naming its setup.
	Analyzer       analyzer.MorphologicalAnalyzer `json:"-"`
	CacheNamespace uint64                         `json:"cache_namespace,omitempty"`
	Cache          Cache                          `json:"-"`
}

func New(params Params) (Pipeline, error) {
	pplnLogger := logger.NewLogger("Toggle pipeline")
	errLogger := pplnLogger.With().Caller().Logger()
	pplnLogger.Info().
		Interface("params", params).
		Msg("Starting toggle pipeline (see parameters in 'params' field)")

	cfg := params.Configuration
	if err := cfg.Validate(); err != nil {
		errLogger.Err(err).Interface("configuration", cfg).Msg("Invalid configuration")
		return nil, err
	}

	cache := params.Cache
	namespace := params.CacheNamespace
	if namespace == 0 {
		namespace = cfg.GetHashCode()
	}

	analyze := params.Analyzer
	if analyze == nil {
		var err error
		analyze, err = analyzer.NewMorphologicalAnalyzer(analyzer.ParamsFromConfiguration(cfg))
		if err != nil {
			errLogger.Err(err).
				Interface("analyzer", cfg.Analyzer).
				Msg("Failed to create morphological analyzer")
			return nil, err
		}
	} else if cache != nil && params.CacheNamespace == 0 {
		pplnLogger.Warn().Msg("Analyzer given without a cache namespace, sentence cache disabled")
		cache = nil
	}

	sentenceDetector := NewSentenceDetector()
	toggler := NewPolarityToggler(analyze, cache, namespace)
	toggleResult := NewToggleResult()

	return func(request Request) <-chan string {
		responseChan := make(chan string)
		reqLogger := pplnLogger.With().Str("tid", request.Tid).Logger()
		reqLogger.Info().Msg("Started toggle pipeline")

		direction := request.Direction
		if direction == "" {
			direction = cfg.Pipeline.Direction
		}

		go func() {
			defer close(responseChan)
			in := make(chan string)

			sentences := sentenceDetector(in)
			toggled := toggler(sentences, direction)
			result := toggleResult(toggled, request, direction)

			in <- request.Text
			close(in)

			response := <-result
			buf, err := json.Marshal(response)
			if err != nil {
				reqLogger.Err(err).Caller().Msg("Failed to marshall response")
				return
			}
			reqLogger.Info().
				Int("sentences", len(response.Sentences)).
				Msg("Finished toggle pipeline")
			responseChan <- string(buf)
		}()

		return responseChan
	}, nil
}
