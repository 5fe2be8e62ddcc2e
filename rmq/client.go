package rmq

import (
	"fmt"
	"net/url"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"github.com/streadway/amqp"
	"teinei.dev/flip/logger"
)

type Config struct {
	Host                    string `envconfig:"FLIP_RMQ_HOST" required:"true"`
	Port                    string `envconfig:"FLIP_RMQ_PORT" required:"true"`
	Username                string `envconfig:"FLIP_RMQ_USERNAME" required:"true"`
	Password                string `envconfig:"FLIP_RMQ_PASSWORD" required:"true"`
	VHost                   string `envconfig:"FLIP_RMQ_VHOST" default:""`
	Exchange                string `envconfig:"FLIP_RMQ_EXCHANGE" default:"flip-default-exchange"`
	MaxParallelRequestCount int    `envconfig:"FLIP_MQ_MAX_PARALLEL_REQUESTS" default:"5"`
	TaskQueue               string `envconfig:"FLIP_TASK_QUEUE" required:"true"`
	SequencerTaskQueue      string `envconfig:"FLIP_SEQUENCER_TASK_QUEUE" required:"true"`
}

// Client consumes toggle tasks on one connection and replies to the sequencer on another.
type Client struct {
	Deliveries     <-chan amqp.Delivery
	ReqChanErrors  <-chan *amqp.Error
	RespChanErrors <-chan *amqp.Error
	config         Config
	reqConn        *amqp.Connection
	respConn       *amqp.Connection
	respChannel    *amqp.Channel
	rmqLogger      *zerolog.Logger
}

func NewClient() (*Client, error) {
	rmqLogger := logger.NewLogger("RMQ client")
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		rmqLogger.Error().Err(err).Msg("Could not read env config")
		return nil, err
	}

	amqpURL := getURL(config)
	respConn, respChannel, err := setup(amqpURL)
	if err != nil {
		return nil, fmt.Errorf("failed response connection: %w", err)
	}
	reqConn, reqChannel, err := setup(amqpURL)
	if err != nil {
		_ = respConn.Close()
		return nil, fmt.Errorf("failed request connection: %w", err)
	}

	q, err := reqChannel.QueueDeclarePassive(
		config.TaskQueue, // name
		true,             // durable
		false,            // delete when unused
		false,            // exclusive
		false,            // no-wait
		nil,              // arguments
	)
	if err != nil {
		return nil, fmt.Errorf("declare %s: %w", config.TaskQueue, err)
	}
	if err := reqChannel.QueueBind(
		config.TaskQueue,
		config.TaskQueue,
		config.Exchange,
		false,
		nil); err != nil {
		return nil, fmt.Errorf("bind %s: %w", config.TaskQueue, err)
	}
	if err := reqChannel.Qos(config.MaxParallelRequestCount, 0, false); err != nil {
		return nil, fmt.Errorf("qos: %w", err)
	}

	deliveries, err := reqChannel.Consume(
		q.Name,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("consume deliveries: %w", err)
	}
	reqChanErrors := reqChannel.NotifyClose(make(chan *amqp.Error))
	respChanErrors := respChannel.NotifyClose(make(chan *amqp.Error))

	rmqLogger.Info().Str("queue", q.Name).Msg("Consuming toggle tasks")
	return &Client{
		Deliveries:     deliveries,
		ReqChanErrors:  reqChanErrors,
		RespChanErrors: respChanErrors,
		config:         config,
		reqConn:        reqConn,
		respConn:       respConn,
		respChannel:    respChannel,
		rmqLogger:      &rmqLogger,
	}, nil
}

func (c *Client) SendMessageToSequencer(msg amqp.Publishing) error {
	return c.respChannel.Publish(
		c.config.Exchange,
		c.config.SequencerTaskQueue,
		false,
		false,
		msg)
}

func (c *Client) Close() {
	_ = c.reqConn.Close()
	_ = c.respConn.Close()
}

// getURL escapes credentials so that passwords with reserved characters survive.
func getURL(config Config) string {
	u := url.URL{
		Scheme: "amqp",
		User:   url.UserPassword(config.Username, config.Password),
		Host:   fmt.Sprintf("%s:%s", config.Host, config.Port),
		Path:   "/" + config.VHost,
	}
	return u.String()
}

func setup(amqpURL string) (*amqp.Connection, *amqp.Channel, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, err
	}
	return conn, ch, nil
}
