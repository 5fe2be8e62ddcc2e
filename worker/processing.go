package worker

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/streadway/amqp"
	"teinei.dev/flip/pipeline"
	"teinei.dev/flip/tasks"
	"teinei.dev/flip/types"
	"teinei.dev/flip/utils"
)

var (
	// errors
	EmptyPipelineResponseError = errors.New("toggle worker: pipeline closed without a response")
	UnknownDirectionError      = errors.New("toggle worker: unknown direction")
	DocumentTaskNotFoundError  = errors.New("toggle worker: document task not found")
)

type Message struct {
	WorkType string         `json:"work_type"`
	RedisKey string         `json:"redis_key"`
	Sender   string         `json:"sender"`
	Version  string         `json:"version"`
	Summary  *toggleSummary `json:"toggle_summary,omitempty"`
}

type Task struct {
	delivery   *amqp.Delivery
	message    *Message
	redisKey   string
	toggleTask *tasks.ToggleTask
	// resolved from the task and its job, empty means the pipeline default
	direction  types.Direction
	summary    *toggleSummary
	taskLogger *zerolog.Logger
}

func (worker *Worker) processMessage(delivery *amqp.Delivery) {
	rejectLogger := worker.workerLogger.With().Str("message_id", delivery.MessageId).Logger()
	task, err := worker.createTask(delivery)
	if err != nil {
		rejectLogger.Err(err).Str("body", string(delivery.Body)).Msg("Failed to create task for delivery")
		worker.rmq.reject(delivery, &rejectLogger)
		return
	}
	if err = worker.processTask(task); err != nil {
		worker.rmq.reject(delivery, &rejectLogger)
		return
	}
	if err = worker.rmq.replyToSequencer(task); err != nil {
		task.taskLogger.Err(err).Msg("Could not reply to sequencer")
		worker.rmq.reject(delivery, &rejectLogger)
		return
	}
	if err = worker.rmq.ack(delivery); err != nil {
		task.taskLogger.Err(err).Msg("Failed to acknowledge delivery")
	}
	task.taskLogger.Info().Msg("Finished processing RMQ message")
}

func (worker *Worker) createTask(delivery *amqp.Delivery) (*Task, error) {
	var message Message
	if err := json.Unmarshal(delivery.Body, &message); err != nil {
		return nil, fmt.Errorf("failed to unmarshal message: %w", err)
	}
	toggleTask, err := worker.redis.getToggleTask(message.RedisKey)
	if err != nil {
		return nil, fmt.Errorf("failed to query toggle task %q: %w", message.RedisKey, err)
	}
	taskLogger := worker.workerLogger.With().
		Str("tid", message.RedisKey).
		Str("document_id", toggleTask.DocID).
		Logger()
	return &Task{
		delivery:   delivery,
		message:    &message,
		redisKey:   message.RedisKey,
		toggleTask: toggleTask,
		taskLogger: &taskLogger,
	}, nil
}

// processTask returns an error only when the delivery has to be retried.
func (worker *Worker) processTask(task *Task) error {
	proceed, err := worker.shouldPerformTask(task)
	if err != nil {
		task.taskLogger.Err(err).Msg("Could not decide whether to run task")
		return err
	}
	if !proceed {
		return nil
	}
	if err = worker.redis.updateStatus(task, taskStarted()); err != nil {
		task.taskLogger.Err(err).Msg("Failed to mark task as started")
		return err
	}

	resultsKey, summary, err := worker.toggleDocument(task)
	if err != nil {
		task.taskLogger.Err(err).Msg("Toggling document failed")
		return worker.redis.updateStatus(task, taskFailed(err))
	}
	task.summary = &summary
	task.taskLogger.Info().
		Int("sentences", summary.Sentences).
		Int("failed_sentences", summary.FailedSentences).
		Msg("Saved results, marking task as complete")
	if err = worker.redis.updateStatus(task, taskCompleted(resultsKey, summary)); err != nil {
		task.taskLogger.Err(err).Msg("Failed to mark task as complete")
		return err
	}
	return nil
}

func (worker *Worker) toggleDocument(task *Task) (resultsKey string, summary toggleSummary, err error) {
	defer utils.RecoverWithError(&err)
	task.taskLogger.Info().
		Int("attempt", task.toggleTask.TaskStatuses.Flip.Attempts+1).
		Msg("Toggling document")

	text, err := worker.s3.downloadText(task)
	if err != nil {
		return "", toggleSummary{}, fmt.Errorf("failed to fetch text from s3: %w", err)
	}
	result, ok := <-worker.ppln(pipeline.Request{
		Tid:       task.redisKey,
		Text:      string(text),
		Direction: task.direction,
	})
	if !ok {
		return "", toggleSummary{}, EmptyPipelineResponseError
	}
	if summary, err = summarize(result); err != nil {
		return "", toggleSummary{}, err
	}
	if resultsKey, err = worker.s3.uploadResults(task, result); err != nil {
		return "", toggleSummary{}, fmt.Errorf("failed to upload results: %w", err)
	}
	return resultsKey, summary, nil
}

func (worker *Worker) shouldPerformTask(task *Task) (bool, error) {
	taskInfo := task.toggleTask.TaskStatuses.Flip
	taskLogger := task.taskLogger

	if taskInfo.Status.Complete() {
		taskLogger.Info().Str("status", string(taskInfo.Status)).
			Msg("Task is already done (might indicate issue acking message with RMQ). Sending back to Sequencer.")
		return false, nil
	}
	job, err := worker.redis.getJobTask(task)
	if err != nil {
		return false, fmt.Errorf("failed to query job task: %w", err)
	}
	if job.UserCanceled {
		taskLogger.Info().Msg("Job was canceled. Sending back to Sequencer.")
		return false, worker.redis.updateStatus(task, taskCanceled())
	}

	task.direction = job.DirectionFor(task.toggleTask)
	*taskLogger = taskLogger.With().Str("direction", string(task.direction)).Logger()
	if task.direction != "" && !task.direction.IsValid() {
		reason := fmt.Errorf("%w: %q", UnknownDirectionError, task.direction)
		taskLogger.Warn().Err(reason).Msg("Task can never succeed. Sending back to Sequencer.")
		if err := worker.redis.markDocumentFailed(task); err != nil {
			return false, err
		}
		return false, worker.redis.updateStatus(task, taskRejected(reason))
	}

	if job.StopDocumentsOnFailure {
		docTask, err := worker.redis.getDocTask(task)
		if err != nil {
			return false, err
		}
		if docTask == nil {
			return false, DocumentTaskNotFoundError
		}
		if len(docTask.FailedTasks) > 0 {
			failedTask := docTask.FailedTasks[0]
			taskLogger.Info().Str("failed_task", failedTask).
				Msg("Document already failed elsewhere. Sending back to Sequencer.")
			return false, worker.redis.updateStatus(task, taskCanceled(fmt.Sprintf(
				"Task was marked as %q because the document has failed in the %q worker and won't be processed successfully.",
				tasks.TaskStatusCanceled,
				failedTask,
			)))
		}
	}

	if taskInfo.Attempts >= worker.config.TaskMaxRetries {
		taskLogger.Info().Int("attempts", taskInfo.Attempts).Msg("Task has exceeded retries. Sending back to Sequencer.")
		if err := worker.redis.markDocumentFailed(task); err != nil {
			return false, err
		}
		return false, worker.redis.updateStatus(task, taskExceededRetries(taskInfo.Attempts, worker.config.TaskMaxRetries))
	}
	return true, nil
}
