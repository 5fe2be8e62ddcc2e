package tasks

import (
	"teinei.dev/flip/redis"
	"teinei.dev/flip/types"
)

const JobsDB redis.DB = 1

// JobTask holds the job-wide switches a toggle worker honours.
type JobTask struct {
	UserCanceled           bool `json:"user_canceled"`
	StopDocumentsOnFailure bool `json:"stop_documents_on_failure"`

	// Direction applies to every toggle task of the job that does not set its own.
	Direction types.Direction `json:"direction"`
}

// DirectionFor picks the direction a toggle task runs with. An empty result
// leaves the choice to the pipeline configuration.
func (job *JobTask) DirectionFor(task *ToggleTask) types.Direction {
	if task.Direction != "" {
		return task.Direction
	}
	return job.Direction
}

type JobTasks struct {
	client redis.Client
}

func (jobs JobTasks) GetCached(jobID string) (*JobTask, error) {
	var job JobTask
	if err := jobs.client.GetDocument(cachedPropertiesKey(jobID), &job); err != nil {
		return nil, err
	}
	return &job, nil
}
