package worker

import (
	"fmt"
	"sync"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"teinei.dev/flip/logger"
	"teinei.dev/flip/pipeline"
	"teinei.dev/flip/rmq"
	"teinei.dev/flip/s3client"
	"teinei.dev/flip/tasks"
)

type Config struct {
	TaskMaxRetries int `envconfig:"FLIP_RETRY_TASK_COUNT_MAX" default:"3"`
}

// Worker consumes toggle tasks from RMQ, rewrites the document text found in S3
// and reports back through Redis and the sequencer queue.
type Worker struct {
	config       Config
	redis        redisTransactions
	s3           s3Transactions
	rmq          rmqTransactions
	ppln         pipeline.Pipeline
	inFlight     sync.WaitGroup
	workerLogger *zerolog.Logger
}

func New(ppln pipeline.Pipeline) (*Worker, error) {
	workerLogger := logger.NewLogger("Toggle worker")

	var config Config
	if err := envconfig.Process("", &config); err != nil {
		workerLogger.Err(err).Msg("Could not read config")
		return nil, err
	}

	worker := &Worker{
		config:       config,
		ppln:         ppln,
		workerLogger: &workerLogger,
	}
	for _, connect := range []func() error{
		worker.refreshRMQClient,
		worker.refreshS3Client,
		worker.refreshRedisClients,
	} {
		if err := connect(); err != nil {
			worker.Close()
			return nil, err
		}
	}
	return worker, nil
}

// StartWorker blocks until the RMQ connection is lost for good. Messages
// already taken off the queue are finished before the clients are closed.
func (worker *Worker) StartWorker() error {
	defer worker.Close()
	defer worker.inFlight.Wait()

	for {
		var reason string
		var cause error
		select {
		case delivery, ok := <-worker.rmq.deliveries():
			if ok {
				worker.inFlight.Add(1)
				go func() {
					defer worker.inFlight.Done()
					worker.processMessage(&delivery)
				}()
				continue
			}
			reason = "deliveries channel closed"
		case rmqErr := <-worker.rmq.responseErrors():
			if rmqErr == nil {
				continue
			}
			reason, cause = "response connection failed", rmqErr
		case rmqErr := <-worker.rmq.requestErrors():
			if rmqErr == nil {
				continue
			}
			reason, cause = "request connection failed", rmqErr
		}

		worker.workerLogger.Err(cause).Str("reason", reason).Msg("Lost RMQ connection, refreshing client")
		if err := worker.refreshRMQClient(); err != nil {
			return fmt.Errorf("%s and refresh failed: %w", reason, err)
		}
	}
}

func (worker *Worker) Close() {
	if worker.redis != nil {
		worker.redis.close()
	}
	if worker.s3 != nil {
		worker.s3.close()
	}
	if worker.rmq != nil {
		worker.rmq.close()
	}
}

// refresh swaps in a freshly connected client; the previous one is closed
// only once its replacement is up.
func (worker *Worker) refresh(name string, connect func() (closer func(), err error)) error {
	clientLogger := worker.workerLogger.With().Str("client", name).Logger()
	clientLogger.Info().Msg("Refreshing client")
	closePrevious, err := connect()
	if err != nil {
		clientLogger.Err(err).Msg("Failed to refresh client")
		return err
	}
	if closePrevious != nil {
		closePrevious()
	}
	clientLogger.Info().Msg("Refreshed client")
	return nil
}

func (worker *Worker) refreshRedisClients() error {
	return worker.refresh("redis", func() (func(), error) {
		tasksClient, err := tasks.NewClient()
		if err != nil {
			return nil, err
		}
		previous := worker.redis
		worker.redis = &tasksStore{&tasksClient}
		if previous == nil {
			return nil, nil
		}
		return previous.close, nil
	})
}

func (worker *Worker) refreshRMQClient() error {
	return worker.refresh("rmq", func() (func(), error) {
		rmqClient, err := rmq.NewClient()
		if err != nil {
			return nil, err
		}
		previous := worker.rmq
		worker.rmq = &taskQueue{rmqClient}
		if previous == nil {
			return nil, nil
		}
		return previous.close, nil
	})
}

func (worker *Worker) refreshS3Client() error {
	return worker.refresh("s3", func() (func(), error) {
		s3Client, err := s3client.New()
		if err != nil {
			return nil, err
		}
		previous := worker.s3
		worker.s3 = &textStorage{s3Client}
		if previous == nil {
			return nil, nil
		}
		return previous.close, nil
	})
}
