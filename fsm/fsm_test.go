package fsm

import (
	"testing"

	"github.com/stretchr/testify/require"
	"teinei.dev/flip/types"
)

func aux(basic string) types.Morpheme {
	return types.Morpheme{Surface: basic, Basic: basic, Class: types.WordClass{Kind: types.ClassAuxiliaryVerb}}
}

func TestConditions(t *testing.T) {
	desu := aux("です")
	noun := types.Morpheme{Surface: "静か", Basic: "静か", Class: types.WordClass{Kind: types.ClassNoun}}

	require.True(t, NewLemmaCondition(types.ClassAuxiliaryVerb, "です")(&desu))
	require.False(t, NewLemmaCondition(types.ClassAuxiliaryVerb, "ます")(&desu))
	require.False(t, NewLemmaCondition(types.ClassNoun, "です")(&desu))
	require.True(t, NewClassCondition(types.ClassNoun)(&noun))
	require.True(t, NewLemmaSetCondition(types.ClassAuxiliaryVerb, map[string]bool{"です": true, "ます": true})(&desu))

	either := NewDisjointCondition(NewClassCondition(types.ClassNoun), NewLemmaCondition(types.ClassAuxiliaryVerb, "です"))
	require.True(t, either(&desu))
	require.True(t, either(&noun))
	require.False(t, either(&types.Morpheme{Basic: "ます", Class: types.WordClass{Kind: types.ClassAuxiliaryVerb}}))
}

func TestRunBackward(t *testing.T) {
	machine := Machine{
		"START": {
			{Cond: NewLemmaCondition(types.ClassAuxiliaryVerb, "た"), Dst: "TA"},
			{Cond: AnyCondition, Dst: "NO"},
		},
		"TA": {
			{Cond: NewLemmaCondition(types.ClassAuxiliaryVerb, "ます"), Dst: "YES"},
			{Cond: AnyCondition, Dst: "NO"},
		},
	}
	final := map[string]bool{"YES": true, "NO": true}

	state, done := machine.RunBackward([]types.Morpheme{aux("ます"), aux("た")}, "START", final, 4)
	require.True(t, done)
	require.Equal(t, "YES", state)

	state, done = machine.RunBackward([]types.Morpheme{aux("た")}, "START", final, 4)
	require.False(t, done)
	require.Equal(t, "TA", state)

	state, done = machine.RunBackward([]types.Morpheme{aux("ます"), aux("た")}, "START", final, 1)
	require.False(t, done)
	require.Equal(t, "TA", state)

	state, done = machine.RunBackward(nil, "START", final, 4)
	require.False(t, done)
	require.Equal(t, "START", state)
}

func TestInputPanicsOnMissingState(t *testing.T) {
	m := aux("た")
	require.Panics(t, func() { Machine{}.Input(&m, "NOWHERE") })
}
