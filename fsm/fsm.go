package fsm

import (
	"errors"
	"fmt"

	"teinei.dev/flip/types"
)

type MachineRule struct {
	Dst  string
	Cond Condition
}

type Machine map[string][]MachineRule

func (fsm Machine) Input(morpheme *types.Morpheme, currentState string) string {
	rules, isOk := fsm[currentState]
	if !isOk {
		errTxt := fmt.Sprintf("Wrong rule: there is no transitions from '%s' state", currentState)
		panic(errors.New(errTxt))
	}

	for _, rule := range rules {
		if rule.Cond(morpheme) {
			return rule.Dst
		}
	}

	return currentState
}

// RunBackward feeds at most maxSteps morphemes to the machine starting from the
// end of the sequence and stops as soon as a state in final is reached.
// It returns the last state and whether that state is final.
func (fsm Machine) RunBackward(morphemes []types.Morpheme, startState string, final map[string]bool, maxSteps int) (string, bool) {
	state := startState
	for i, steps := len(morphemes)-1, 0; i >= 0 && steps < maxSteps; i, steps = i-1, steps+1 {
		state = fsm.Input(&morphemes[i], state)
		if final[state] {
			return state, true
		}
	}
	return state, final[state]
}
