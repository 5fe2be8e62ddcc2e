package worker

import (
	"errors"

	"github.com/rs/zerolog"
	"github.com/streadway/amqp"
	"teinei.dev/flip/pipeline"
	"teinei.dev/flip/tasks"
)

const defaultPipelineResult = `{"docId":"toggle-1","direction":"toggle","text":"寒くありません。","sentences":[` +
	`{"id":0,"span":[0,5],"text":"寒いです。","result":"寒くありません。","polarity":"negative"}]}`

type failingMethod struct {
	fail bool
}

type withValue struct {
	fail          bool
	returnedValue interface{}
}

type pipelineMock struct {
	ppln    pipeline.Pipeline
	config  pipelineMockConfig
	calls   pipelineCall
	request pipeline.Request
}

type pipelineMockConfig struct {
	fail   bool
	result string
}

type pipelineCall struct {
	pipeline bool
}

func getPipelineMock(config pipelineMockConfig) *pipelineMock {
	if config.result == "" {
		config.result = defaultPipelineResult
	}
	mock := &pipelineMock{config: config}
	mock.ppln = func(request pipeline.Request) <-chan string {
		mock.calls.pipeline = true
		mock.request = request
		ch := make(chan string, 1)
		if !mock.config.fail {
			ch <- mock.config.result
		}
		close(ch)
		return ch
	}
	return mock
}

type redisMock struct {
	config redisMockConfig
	calls  redisMockCalls

	// status of the toggle task after every recorded change
	info tasks.ToggleTaskInfo
}

type redisMockConfig struct {
	getToggleTask      withValue
	getJobTask         withValue
	getDocTask         withValue
	markDocumentFailed failingMethod
	failOnStatus       tasks.TaskStatus
}

type redisMockCalls struct {
	getToggleTask      bool
	getJobTask         bool
	getDocTask         bool
	markDocumentFailed bool
	statuses           []tasks.TaskStatus
}

func (mock *redisMock) getToggleTask(redisKey string) (*tasks.ToggleTask, error) {
	mock.calls.getToggleTask = true
	if mock.config.getToggleTask.fail {
		return nil, errors.New("failed to get toggle task")
	}
	task, _ := mock.config.getToggleTask.returnedValue.(tasks.ToggleTask)
	mock.info = task.TaskStatuses.Flip
	return &task, nil
}

func (mock *redisMock) getJobTask(task *Task) (*tasks.JobTask, error) {
	mock.calls.getJobTask = true
	if mock.config.getJobTask.fail {
		return nil, errors.New("failed to get job task")
	}
	job, _ := mock.config.getJobTask.returnedValue.(tasks.JobTask)
	return &job, nil
}

func (mock *redisMock) getDocTask(task *Task) (*tasks.DocumentTaskCached, error) {
	mock.calls.getDocTask = true
	if mock.config.getDocTask.fail {
		return nil, errors.New("failed to get doc task")
	}
	doc, _ := mock.config.getDocTask.returnedValue.(tasks.DocumentTaskCached)
	return &doc, nil
}

func (mock *redisMock) updateStatus(task *Task, change statusChange) error {
	mock.calls.statuses = append(mock.calls.statuses, change.status)
	if mock.config.failOnStatus == change.status {
		return errors.New("failed to update toggle task")
	}
	change.apply(&mock.info)
	return nil
}

func (mock *redisMock) markDocumentFailed(task *Task) error {
	mock.calls.markDocumentFailed = true
	if mock.config.markDocumentFailed.fail {
		return errors.New("failed to update document task")
	}
	return nil
}

func (mock *redisMock) close() {}

type s3Mock struct {
	config      s3MockConfig
	calls       s3MockCalls
	savedResult string
}

type s3MockConfig struct {
	downloadText  withValue
	uploadResults failingMethod
}

type s3MockCalls struct {
	downloadText  bool
	uploadResults bool
}

func (mock *s3Mock) downloadText(task *Task) ([]byte, error) {
	mock.calls.downloadText = true
	if mock.config.downloadText.fail {
		return nil, errors.New("failed to load from s3")
	}
	if text, ok := mock.config.downloadText.returnedValue.([]byte); ok {
		return text, nil
	}
	return []byte("寒いです。"), nil
}

func (mock *s3Mock) uploadResults(task *Task, result string) (string, error) {
	mock.calls.uploadResults = true
	if mock.config.uploadResults.fail {
		return "", errors.New("failed to upload results")
	}
	mock.savedResult = result
	return resultsFileKey(task), nil
}

func (mock *s3Mock) close() {}

type rmqMock struct {
	config  rmqMockConfig
	calls   rmqMockCalls
	replies []Message
}

type rmqMockConfig struct {
	replyToSequencer failingMethod
	ack              failingMethod
}

type rmqMockCalls struct {
	replyToSequencer bool
	ack              bool
	reject           bool
}

func (mock *rmqMock) deliveries() <-chan amqp.Delivery {
	return nil
}

func (mock *rmqMock) requestErrors() <-chan *amqp.Error {
	return nil
}

func (mock *rmqMock) responseErrors() <-chan *amqp.Error {
	return nil
}

func (mock *rmqMock) replyToSequencer(task *Task) error {
	mock.calls.replyToSequencer = true
	if mock.config.replyToSequencer.fail {
		return errors.New("failed to reply to sequencer")
	}
	mock.replies = append(mock.replies, sequencerReply(task))
	return nil
}

func (mock *rmqMock) ack(delivery *amqp.Delivery) error {
	mock.calls.ack = true
	if mock.config.ack.fail {
		return errors.New("failed to acknowledge delivery")
	}
	return nil
}

func (mock *rmqMock) reject(delivery *amqp.Delivery, taskLogger *zerolog.Logger) {
	mock.calls.reject = true
}

func (mock *rmqMock) close() {}
