package publisher

import (
	"context"
	"encoding/base64"
	"strconv"

	"math/rand"

	"github.com/redis/go-redis/v9"
)

// Options configures the Redis publisher.
type Options struct {
	Addr            string
	DB              int
	StreamPrefix    string
	StreamCount     int
	StreamMaxLength int
}

// RedisPublisher implements Publisher using Redis streams
type RedisPublisher struct {
	client *redis.Client
	ctx    context.Context
	opts   Options
}

// NewRedisPublisher creates a new Redis publisher
func NewRedisPublisher(ctx context.Context, opts Options) *RedisPublisher {
	if opts.StreamCount < 1 {
		opts.StreamCount = 1
	}

	client := redis.NewClient(&redis.Options{
		Addr: opts.Addr,
		DB:   opts.DB,
	})

	return &RedisPublisher{
		client: client,
		ctx:    ctx,
		opts:   opts,
	}
}

// Publish publishes a record to one of the rotated Redis streams.
// The payload is base64 encoded before publishing.
func (p *RedisPublisher) Publish(key string, message []byte) error {
	encodedMessage := base64.StdEncoding.EncodeToString(message)

	// Rotate across streamCount streams: prefix:0 ~ prefix:N-1
	stream := p.opts.StreamPrefix + ":" + strconv.Itoa(rand.Intn(p.opts.StreamCount))

	return p.client.XAdd(p.ctx, &redis.XAddArgs{
		Stream: stream,
		Values: map[string]interface{}{
			key: encodedMessage,
		},
	}).Err()
}

// TrimStreams trims all streams to the configured maximum length
func (p *RedisPublisher) TrimStreams() error {
	if p.opts.StreamMaxLength <= 0 {
		return nil
	}

	pattern := p.opts.StreamPrefix + ":*"
	streams, err := p.client.Keys(p.ctx, pattern).Result()
	if err != nil {
		return err
	}

	for _, stream := range streams {
		if err := p.client.XTrimMaxLen(p.ctx, stream, int64(p.opts.StreamMaxLength)).Err(); err != nil {
			return err
		}
	}

	return nil
}

// Close closes the Redis connection
func (p *RedisPublisher) Close() error {
	return p.client.Close()
}
