package pipeline

import "teinei.dev/flip/types"

type Request struct {
	Text      string          `json:"text"`
	Tid       string          `json:"tid"`
	Direction types.Direction `json:"direction"`
}
