package tasks

import (
	"teinei.dev/flip/redis"
	"teinei.dev/flip/types"
)

const TogglesDB redis.DB = 2

// ToggleTask describes one text file of a document to be rewritten.
type ToggleTask struct {
	DocID        string             `json:"document_id"`
	JobID        string             `json:"job_id"`
	TextFileKey  string             `json:"text_file_key"`
	Direction    types.Direction    `json:"direction"`
	TaskStatuses ToggleTaskStatuses `json:"task_statuses"`
}

type ToggleTaskStatuses struct {
	Flip ToggleTaskInfo `json:"flip"`
}

type ToggleTaskInfo struct {
	ResultsFileKey string     `json:"results_file_key"`
	StartedAt      *string    `json:"started_at"`
	CompletedAt    *string    `json:"completed_at"`
	Attempts       int        `json:"attempts"`
	Status         TaskStatus `json:"status"`
	Dependencies   []string   `json:"dependencies"`
	ErrorMessages  []string   `json:"error_messages"`

	// filled in once the text has been rewritten
	Direction       types.Direction `json:"direction,omitempty"`
	Sentences       int             `json:"sentences"`
	FailedSentences int             `json:"failed_sentences"`
}

type ToggleTasks struct {
	client redis.Client
}

func (tasks ToggleTasks) Get(redisKey string) (*ToggleTask, error) {
	var task ToggleTask
	err := tasks.client.GetDocument(redisKey, &task)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (tasks ToggleTasks) Update(redisKey string, updateFunc func(task *ToggleTask)) error {
	var task ToggleTask
	return tasks.client.UpdateDocument(redisKey, &task, func() {
		updateFunc(&task)
	})
}
