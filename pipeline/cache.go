package pipeline

import (
	"encoding/json"
	"fmt"

	"teinei.dev/flip/types"
	"teinei.dev/flip/utils"
)

// Cache keeps rewritten sentences between requests. Implementations must be safe for concurrent use.
type Cache interface {
	Get(key string) (string, bool, error)
	Set(key string, value string) error
}

type cachedSentence struct {
	Result   string         `json:"result"`
	Polarity types.Polarity `json:"polarity"`
}

// cacheKey separates entries by analyzer setup and direction.
func cacheKey(namespace uint64, direction types.Direction, text string) string {
	return fmt.Sprintf("flip:%x:%s:%x", namespace, direction, utils.HashString(text))
}

func encodeCachedSentence(sent *types.Sentence) (string, error) {
	b, err := json.Marshal(cachedSentence{Result: sent.Result, Polarity: sent.Polarity})
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeCachedSentence(value string, sent *types.Sentence) error {
	var cached cachedSentence
	if err := json.Unmarshal([]byte(value), &cached); err != nil {
		return err
	}
	sent.Result = cached.Result
	sent.Polarity = cached.Polarity
	return nil
}
