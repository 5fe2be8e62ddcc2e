package worker

import (
	"encoding/json"
	"errors"
	"fmt"
	"path"

	"teinei.dev/flip/types"
)

const senderName = "flip"

var MalformedPipelineResponseError = errors.New("toggle worker: malformed pipeline response")

// toggleSummary is what the sequencer and the task status learn about a rewritten document.
type toggleSummary struct {
	Direction       types.Direction `json:"direction"`
	Sentences       int             `json:"sentences"`
	FailedSentences int             `json:"failed_sentences"`
}

func summarize(result string) (toggleSummary, error) {
	var response types.ToggleResponse
	if err := json.Unmarshal([]byte(result), &response); err != nil {
		return toggleSummary{}, fmt.Errorf("%w: %v", MalformedPipelineResponseError, err)
	}
	summary := toggleSummary{
		Direction: response.Direction,
		Sentences: len(response.Sentences),
	}
	for _, section := range response.Sentences {
		if section.Error != "" {
			summary.FailedSentences++
		}
	}
	return summary, nil
}

func resultsFileKey(task *Task) string {
	return path.Join(
		"processed",
		"documents",
		task.toggleTask.DocID,
		fmt.Sprintf("%s.flip_results.json", task.redisKey),
	)
}

// sequencerReply echoes the incoming message, signed by this worker and
// carrying the summary when the document was rewritten.
func sequencerReply(task *Task) Message {
	reply := *task.message
	reply.Sender = senderName
	reply.Summary = task.summary
	return reply
}
