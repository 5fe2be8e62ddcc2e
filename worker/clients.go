package worker

import (
	"encoding/json"

	"github.com/rs/zerolog"
	"github.com/streadway/amqp"
	"teinei.dev/flip/rmq"
	"teinei.dev/flip/s3client"
	"teinei.dev/flip/tasks"
)

type redisTransactions interface {
	getToggleTask(redisKey string) (*tasks.ToggleTask, error)
	getJobTask(task *Task) (*tasks.JobTask, error)
	getDocTask(task *Task) (*tasks.DocumentTaskCached, error)
	updateStatus(task *Task, change statusChange) error
	markDocumentFailed(task *Task) error
	close()
}

type s3Transactions interface {
	downloadText(task *Task) ([]byte, error)
	uploadResults(task *Task, result string) (string, error)
	close()
}

type rmqTransactions interface {
	deliveries() <-chan amqp.Delivery
	requestErrors() <-chan *amqp.Error
	responseErrors() <-chan *amqp.Error
	replyToSequencer(task *Task) error
	ack(delivery *amqp.Delivery) error
	reject(delivery *amqp.Delivery, taskLogger *zerolog.Logger)
	close()
}

type tasksStore struct {
	client *tasks.Client
}

func (store *tasksStore) getToggleTask(redisKey string) (*tasks.ToggleTask, error) {
	return store.client.Toggles.Get(redisKey)
}

func (store *tasksStore) getJobTask(task *Task) (*tasks.JobTask, error) {
	return store.client.Jobs.GetCached(task.toggleTask.JobID)
}

func (store *tasksStore) getDocTask(task *Task) (*tasks.DocumentTaskCached, error) {
	return store.client.Documents.GetCached(task.toggleTask.DocID)
}

func (store *tasksStore) updateStatus(task *Task, change statusChange) error {
	return store.client.Toggles.Update(task.redisKey, func(toggleTask *tasks.ToggleTask) {
		change.apply(&toggleTask.TaskStatuses.Flip)
	})
}

// markDocumentFailed lets the other workers of the document stop early.
func (store *tasksStore) markDocumentFailed(task *Task) error {
	return store.client.Documents.Update(task.toggleTask.DocID, func(docTask *tasks.DocumentTask) {
		docTask.FailedTasks = append(docTask.FailedTasks, senderName)
		docTask.FailedToggles[task.redisKey] = append(docTask.FailedToggles[task.redisKey], senderName)
	})
}

func (store *tasksStore) close() {
	store.client.Close()
}

type textStorage struct {
	client *s3client.Client
}

func (storage *textStorage) downloadText(task *Task) ([]byte, error) {
	return storage.client.Download(task.toggleTask.TextFileKey)
}

func (storage *textStorage) uploadResults(task *Task, result string) (string, error) {
	key := resultsFileKey(task)
	if _, err := storage.client.Upload([]byte(result), key); err != nil {
		return "", err
	}
	return key, nil
}

func (storage *textStorage) close() {
	storage.client.Close()
}

type taskQueue struct {
	client *rmq.Client
}

func (queue *taskQueue) deliveries() <-chan amqp.Delivery {
	return queue.client.Deliveries
}

func (queue *taskQueue) requestErrors() <-chan *amqp.Error {
	return queue.client.ReqChanErrors
}

func (queue *taskQueue) responseErrors() <-chan *amqp.Error {
	return queue.client.RespChanErrors
}

func (queue *taskQueue) replyToSequencer(task *Task) error {
	body, err := json.Marshal(sequencerReply(task))
	if err != nil {
		return err
	}
	return queue.client.SendMessageToSequencer(amqp.Publishing{
		ContentType:   task.delivery.ContentType,
		CorrelationId: task.delivery.CorrelationId,
		MessageId:     task.delivery.MessageId,
		Body:          body,
	})
}

func (queue *taskQueue) ack(delivery *amqp.Delivery) error {
	return delivery.Ack(false)
}

// reject requeues a delivery once; a redelivered one is dropped.
func (queue *taskQueue) reject(delivery *amqp.Delivery, taskLogger *zerolog.Logger) {
	requeue := !delivery.Redelivered
	taskLogger.Info().Bool("requeue", requeue).Msg("Rejecting delivery")
	if err := delivery.Reject(requeue); err != nil {
		taskLogger.Err(err).Bool("requeue", requeue).Msg("Failed to reject delivery")
	}
}

func (queue *taskQueue) close() {
	queue.client.Close()
}
