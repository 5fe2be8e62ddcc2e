package tasks

import (
	"teinei.dev/flip/redis"
)

const DocumentsDB redis.DB = 0

type DocumentTask struct {
	FailedTasks   []string            `json:"failed_tasks"`
	FailedToggles map[string][]string `json:"failed_toggles"`
}

// DocumentTaskCached is the subset of a document task other services poll.
type DocumentTaskCached struct {
	FailedTasks []string `json:"failed_tasks"`
}

type DocumentTasks struct {
	client redis.Client
}

func (tasks DocumentTasks) Get(redisKey string) (*DocumentTask, error) {
	var task DocumentTask
	err := tasks.client.GetDocument(redisKey, &task)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (tasks DocumentTasks) GetCached(redisKey string) (*DocumentTaskCached, error) {
	var task DocumentTaskCached
	err := tasks.client.GetDocument(cachedPropertiesKey(redisKey), &task)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// Update changes the document task and mirrors the cached properties.
func (tasks DocumentTasks) Update(redisKey string, updateFunc func(task *DocumentTask)) error {
	var task DocumentTask
	err := tasks.client.UpdateDocument(redisKey, &task, func() {
		if task.FailedToggles == nil {
			task.FailedToggles = make(map[string][]string)
		}
		updateFunc(&task)
	})
	if err != nil {
		return err
	}
	return tasks.client.MergeDocument(cachedPropertiesKey(redisKey), cachedFromDocument(&task))
}

func cachedFromDocument(task *DocumentTask) DocumentTaskCached {
	return DocumentTaskCached{FailedTasks: task.FailedTasks}
}
