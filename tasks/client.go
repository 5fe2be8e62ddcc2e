package tasks

import (
	"fmt"

	"teinei.dev/flip/redis"
)

type Client struct {
	Documents DocumentTasks
	Toggles   ToggleTasks
	Jobs      JobTasks
}

// NewClient is a preferred way for working with task documents
func NewClient() (Client, error) {
	docRedisClient, err := redis.NewClient(DocumentsDB)
	if err != nil {
		return Client{}, err
	}
	jobsRedisClient, err := redis.NewClient(JobsDB)
	if err != nil {
		return Client{}, err
	}
	togglesRedisClient, err := redis.NewClient(TogglesDB)
	if err != nil {
		return Client{}, err
	}
	return Client{
		Documents: DocumentTasks{client: docRedisClient},
		Jobs:      JobTasks{client: jobsRedisClient},
		Toggles:   ToggleTasks{client: togglesRedisClient},
	}, nil
}

func (client *Client) Close() {
	_ = client.Toggles.client.Close()
	_ = client.Documents.client.Close()
	_ = client.Jobs.client.Close()
}

func cachedPropertiesKey(redisKey string) string {
	return fmt.Sprintf("%s-cached-properties", redisKey)
}
