package negation

import (
	"teinei.dev/flip/fsm"
	"teinei.dev/flip/types"
)

const maxLookback = 4

const (
	// states
	startState       = "START"
	desuState        = "DESU"
	taState          = "TA"
	taDesuState      = "TA_DESU"
	taDesuNState     = "TA_DESU_N"
	negativeState    = "NEGATIVE"
	affirmativeState = "AFFIRMATIVE"
)

// The machine reads the sentence tail right to left.
func getPolarityMachine() fsm.Machine {
	nC := fsm.NewLemmaCondition(types.ClassAuxiliaryVerb, lemmaN)
	desuC := fsm.NewLemmaCondition(types.ClassAuxiliaryVerb, lemmaDesu)
	masuC := fsm.NewLemmaCondition(types.ClassAuxiliaryVerb, lemmaMasu)
	taC := fsm.NewLemmaCondition(types.ClassAuxiliaryVerb, lemmaTa)
	naiC := fsm.NewLemmaCondition(types.ClassAuxiliaryVerb, lemmaNai)

	return fsm.Machine{
		startState: []fsm.MachineRule{
			{Cond: nC, Dst: negativeState},
			{Cond: desuC, Dst: desuState},
			{Cond: taC, Dst: taState},
			{Cond: fsm.AnyCondition, Dst: affirmativeState},
		},
		desuState: []fsm.MachineRule{
			{Cond: naiC, Dst: negativeState},
			{Cond: fsm.AnyCondition, Dst: affirmativeState},
		},
		taState: []fsm.MachineRule{
			{Cond: desuC, Dst: taDesuState},
			{Cond: fsm.AnyCondition, Dst: affirmativeState},
		},
		taDesuState: []fsm.MachineRule{
			{Cond: nC, Dst: taDesuNState},
			{Cond: fsm.AnyCondition, Dst: affirmativeState},
		},
		taDesuNState: []fsm.MachineRule{
			{Cond: masuC, Dst: negativeState},
			{Cond: fsm.AnyCondition, Dst: affirmativeState},
		},
	}
}

var polarityMachine = getPolarityMachine()

var finalStates = map[string]bool{
	negativeState:    true,
	affirmativeState: true,
}

// Classify reports whether a polite sentence is currently negative.
// Anything that is not a complete negative tail, the empty sequence included, is affirmative.
func Classify(morphemes []types.Morpheme) types.Polarity {
	state, _ := polarityMachine.RunBackward(morphemes, startState, finalStates, maxLookback)
	if state == negativeState {
		return types.PolarityNegative
	}
	return types.PolarityAffirmative
}
