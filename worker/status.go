package worker

import (
	"fmt"
	"time"

	"teinei.dev/flip/tasks"
)

const RFC3339Micro = "2006-01-02T15:04:05.000000-07:00"

// statusChange is one step of a toggle task's life cycle.
type statusChange struct {
	status tasks.TaskStatus
	apply  func(info *tasks.ToggleTaskInfo)
}

func getFormattedNow() *string {
	now := time.Now().UTC().Format(RFC3339Micro)
	return &now
}

func taskStarted() statusChange {
	return statusChange{
		status: tasks.TaskStatusStarted,
		apply: func(info *tasks.ToggleTaskInfo) {
			info.Status = tasks.TaskStatusStarted
			info.Attempts++
			info.StartedAt = getFormattedNow()
			info.CompletedAt = nil
		},
	}
}

// taskFinishedEarly covers every outcome decided before the text is touched.
func taskFinishedEarly(status tasks.TaskStatus, messages ...string) statusChange {
	return statusChange{
		status: status,
		apply: func(info *tasks.ToggleTaskInfo) {
			info.Status = status
			info.StartedAt = getFormattedNow()
			info.CompletedAt = info.StartedAt
			info.Attempts++
			info.ErrorMessages = append(info.ErrorMessages, messages...)
		},
	}
}

func taskCanceled(messages ...string) statusChange {
	return taskFinishedEarly(tasks.TaskStatusCanceled, messages...)
}

func taskRejected(reason error) statusChange {
	return taskFinishedEarly(tasks.TaskStatusCompletedFailure, reason.Error())
}

func taskExceededRetries(attempts, maxRetries int) statusChange {
	return taskFinishedEarly(
		tasks.TaskStatusCompletedFailure,
		fmt.Sprintf("Task has exceeded retries. (Attempts: %d, max retries: %d )", attempts+1, maxRetries),
	)
}

func taskFailed(err error) statusChange {
	return statusChange{
		status: tasks.TaskStatusFailed,
		apply: func(info *tasks.ToggleTaskInfo) {
			info.Status = tasks.TaskStatusFailed
			info.CompletedAt = getFormattedNow()
			info.ErrorMessages = append(info.ErrorMessages, err.Error())
		},
	}
}

// taskCompleted keeps an earlier terminal status, a redelivered message must not overwrite it.
func taskCompleted(resultsKey string, summary toggleSummary) statusChange {
	return statusChange{
		status: tasks.TaskStatusCompletedSuccess,
		apply: func(info *tasks.ToggleTaskInfo) {
			if !info.Status.Complete() {
				info.Status = tasks.TaskStatusCompletedSuccess
			}
			info.CompletedAt = getFormattedNow()
			info.ResultsFileKey = resultsKey
			info.Direction = summary.Direction
			info.Sentences = summary.Sentences
			info.FailedSentences = summary.FailedSentences
		},
	}
}
