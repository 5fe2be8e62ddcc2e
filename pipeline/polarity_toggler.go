package pipeline

import (
	"errors"
	"sync"

	"github.com/rs/zerolog"
	"teinei.dev/flip/analyzer"
	"teinei.dev/flip/logger"
	"teinei.dev/flip/negation"
	"teinei.dev/flip/types"
)

type PolarityToggler func(in <-chan types.Sentence, direction types.Direction) <-chan types.Sentence

// NewPolarityToggler rewrites every sentence concurrently. A nil cache disables caching.
// Sentences that cannot be rewritten keep their text and carry the error.
func NewPolarityToggler(analyze analyzer.MorphologicalAnalyzer, cache Cache, namespace uint64) PolarityToggler {
	togglerLogger := logger.NewLogger("Polarity toggler")

	return func(in <-chan types.Sentence, direction types.Direction) <-chan types.Sentence {
		out := make(chan types.Sentence)

		go func() {
			defer close(out)
			var wg sync.WaitGroup
			for sent := range in {
				wg.Add(1)
				go func(sent types.Sentence) {
					defer wg.Done()
					toggleSentence(&sent, direction, analyze, cache, namespace, &togglerLogger)
					out <- sent
				}(sent)
			}
			wg.Wait()
		}()

		return out
	}
}

func toggleSentence(
	sent *types.Sentence,
	direction types.Direction,
	analyze analyzer.MorphologicalAnalyzer,
	cache Cache,
	namespace uint64,
	togglerLogger *zerolog.Logger,
) {
	sentLogger := togglerLogger.With().Int("sentence", sent.Index).Logger()

	var key string
	if cache != nil {
		key = cacheKey(namespace, direction, sent.Text)
		value, ok, err := cache.Get(key)
		switch {
		case err != nil:
			sentLogger.Warn().Err(err).Msg("Failed to read sentence cache")
		case ok:
			if err := decodeCachedSentence(value, sent); err == nil {
				return
			}
			sentLogger.Warn().Str("key", key).Msg("Dropping malformed cache entry")
		}
	}

	current, err := negation.DetectPolarity(analyze, sent.Text)
	if err == nil && current != types.PolarityUnknown {
		sent.Result, err = negation.Transform(analyze, sent.Text, direction)
	}
	switch {
	case errors.Is(err, negation.InternalInconsistencyError):
		sentLogger.Error().Err(err).Str("text", sent.Text).Msg("Rewriter disagrees with classifier")
		sent.Err = err
		return
	case err != nil:
		sentLogger.Debug().Err(err).Str("text", sent.Text).Msg("Sentence left unchanged")
		sent.Err = err
		return
	case current == types.PolarityUnknown:
		sent.Result = sent.Text
		sent.Polarity = types.PolarityUnknown
		return
	}
	sent.Polarity = direction.Target(current)

	if cache == nil {
		return
	}
	value, err := encodeCachedSentence(sent)
	if err == nil {
		err = cache.Set(key, value)
	}
	if err != nil {
		sentLogger.Warn().Err(err).Msg("Failed to write sentence cache")
	}
}
