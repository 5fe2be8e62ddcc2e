package negation

import (
	"teinei.dev/flip/types"
)

// morphemeStack pops from the end of a sentence without touching the caller's slice.
type morphemeStack struct {
	morphemes []types.Morpheme
}

func newMorphemeStack(morphemes []types.Morpheme) *morphemeStack {
	return &morphemeStack{morphemes: morphemes}
}

// pop returns nil once the stack is exhausted.
func (s *morphemeStack) pop() *types.Morpheme {
	if len(s.morphemes) == 0 {
		return nil
	}
	last := s.morphemes[len(s.morphemes)-1]
	s.morphemes = s.morphemes[:len(s.morphemes)-1]
	return &last
}

// prefix concatenates the surfaces still on the stack in reading order.
func (s *morphemeStack) prefix() string {
	return types.JoinSurfaces(s.morphemes)
}

func (s *morphemeStack) render(parts ...string) string {
	result := s.prefix()
	for _, part := range parts {
		result += part
	}
	return result
}
