package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bsm/redislock"
	jsonpatch "github.com/evanphx/json-patch"
	"github.com/go-redis/redis/v8"
	"github.com/kelseyhightower/envconfig"
)

type DB int
type ReleaseLock func() error

var (
	// errors
	DocumentNotFoundError error = errors.New("redis: document not found")
)

type Client struct {
	client         redis.UniversalClient
	lockExpiration time.Duration
}

var ctx = context.Background()

type Config struct {
	LockExpirationSeconds   int     `envconfig:"FLIP_REDIS_LOCK_EXPIRATION" default:"3"`
	Host                    string  `envconfig:"FLIP_REDIS_HOST" required:"true"`
	Port                    string  `envconfig:"FLIP_REDIS_PORT" required:"true"`
	HASentinelPort          string  `envconfig:"FLIP_REDIS_HA_SENTINEL_PORT" default:"26379"`
	HASentinelMasterName    string  `envconfig:"FLIP_REDIS_HA_MASTER_NAME" default:"mymaster"`
	Password                string  `envconfig:"FLIP_REDIS_AUTH_PASSWORD" default:""`
	AuthRequired            bool    `envconfig:"FLIP_REDIS_AUTH_REQUIRED" default:"false"`
	HAMode                  bool    `envconfig:"FLIP_REDIS_HA_MODE" default:"false"`
	HASentinelSocketTimeout float32 `envconfig:"FLIP_REDIS_SOCKET_TIMEOUT" default:"0.5"`
}

func NewClient(db DB) (Client, error) {
	cfg, err := readEnvironment()
	if err != nil {
		return Client{}, err
	}
	return NewClientFromConfig(cfg, db), nil
}

func NewClientFromConfig(cfg *Config, db DB) Client {
	var client redis.UniversalClient
	if cfg.HAMode {
		client = CreateClusterClient(cfg, db)
	} else {
		client = CreateClient(cfg, db)
	}
	return Client{
		client:         client,
		lockExpiration: time.Duration(cfg.LockExpirationSeconds) * time.Second,
	}
}

func CreateClusterClient(cfg *Config, db DB) *redis.ClusterClient {
	addr := fmt.Sprintf("%s:%s", cfg.Host, cfg.HASentinelPort)
	timeout := time.Duration(float64(cfg.HASentinelSocketTimeout) * float64(time.Second))
	options := redis.FailoverOptions{
		SentinelAddrs: []string{addr},
		ReadTimeout:   timeout,
		WriteTimeout:  timeout,
		MaxRetries:    6,
		DB:            int(db),
		MasterName:    cfg.HASentinelMasterName,
	}
	if cfg.AuthRequired {
		options.Password = cfg.Password
	}
	return redis.NewFailoverClusterClient(&options)
}

func CreateClient(cfg *Config, db DB) *redis.Client {
	addr := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)
	options := redis.Options{
		Addr:       addr,
		MaxRetries: 6,
		DB:         int(db),
	}
	if cfg.AuthRequired {
		options.Password = cfg.Password
	}
	return redis.NewClient(&options)
}

func (client *Client) getRaw(redisKey string) ([]byte, error) {
	b, err := client.client.Get(ctx, redisKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %s", DocumentNotFoundError, redisKey)
	}
	return b, err
}

// GetDocument decodes the JSON document stored under redisKey into doc.
// Fields doc does not declare are ignored.
func (client *Client) GetDocument(redisKey string, doc interface{}) error {
	b, err := client.getRaw(redisKey)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, doc)
}

// UpdateDocument loads doc, applies update and writes back only the fields update changed.
// Fields of the stored document that doc does not declare survive the update.
func (client *Client) UpdateDocument(redisKey string, doc interface{}, update func()) (err error) {
	releaseLock, err := client.Lock(redisKey)
	if err != nil {
		return err
	}
	defer func() {
		if releaseErr := releaseLock(); err == nil {
			err = releaseErr
		}
	}()

	raw, err := client.getRaw(redisKey)
	if err != nil {
		return err
	}
	if err = json.Unmarshal(raw, doc); err != nil {
		return err
	}
	before, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	update()
	after, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	merged, err := applyChanges(raw, before, after)
	if err != nil {
		return err
	}
	return client.client.Set(ctx, redisKey, merged, 0).Err()
}

// MergeDocument merges doc into the document stored under redisKey, creating it when absent.
func (client *Client) MergeDocument(redisKey string, doc interface{}) error {
	patch, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	raw, err := client.getRaw(redisKey)
	if errors.Is(err, DocumentNotFoundError) {
		raw = []byte("{}")
	} else if err != nil {
		return err
	}
	merged, err := jsonpatch.MergePatch(raw, patch)
	if err != nil {
		return err
	}
	return client.client.Set(ctx, redisKey, merged, 0).Err()
}

func (client *Client) Lock(redisKey string) (ReleaseLock, error) {
	lockCl := redislock.New(client.client)
	str := redislock.LimitRetry(redislock.LinearBackoff(time.Second), 20)
	lockKey := fmt.Sprintf("lock:%s", redisKey)
	lock, err := lockCl.Obtain(ctx, lockKey, client.lockExpiration, &redislock.Options{RetryStrategy: str})
	if err != nil {
		return nil, err
	}
	return func() error {
		return lock.Release(ctx)
	}, nil
}

func (client *Client) Close() error {
	return client.client.Close()
}

// applyChanges replays the difference between before and after onto raw.
func applyChanges(raw, before, after []byte) ([]byte, error) {
	patch, err := jsonpatch.CreateMergePatch(before, after)
	if err != nil {
		return nil, err
	}
	return jsonpatch.MergePatch(raw, patch)
}

func readEnvironment() (*Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
