package notify

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
)

// Redis broadcasts notifications as JSON on the "course:<id>" Redis channel.
type Redis struct {
	client *redis.Client
}

func NewRedis(addr string) *Redis {
	return &Redis{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func (r *Redis) Publish(ctx context.Context, courseID string, n Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return err
	}
	return r.client.Publish(ctx, channelName(courseID), payload).Err()
}

func (r *Redis) Close() error {
	return r.client.Close()
}
