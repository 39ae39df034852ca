package publisher

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

// This test requires a running Redis instance
// If Redis is not available, the test will be skipped
func TestRedisPublisher(t *testing.T) {
	ctx := context.Background()

	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   0,
	})
	defer client.Close()

	if _, err := client.Ping(ctx).Result(); err != nil {
		t.Skip("Redis is not available, skipping test")
	}

	publisher := NewRedisPublisher(ctx, Options{
		Addr:            "localhost:6379",
		DB:              0,
		StreamPrefix:    "test_sales",
		StreamCount:     1,
		StreamMaxLength: 10,
	})
	defer publisher.Close()

	err := client.XGroupCreateMkStream(ctx, "test_sales:0", "test_group", "$").Err()
	if err != nil && !strings.Contains(err.Error(), "BUSYGROUP") {
		t.Fatal(err)
	}

	messages := make(chan string, 1)
	go func() {
		message, err := client.XReadGroup(ctx, &redis.XReadGroupArgs{
			Streams:  []string{"test_sales:0", ">"},
			Group:    "test_group",
			Consumer: "test_consumer",
			Block:    0,
		}).Result()
		assert.NoError(t, err)
		messages <- message[0].Messages[0].Values["무신사"].(string)
	}()

	time.Sleep(100 * time.Millisecond)

	payload := []byte(`{"brand":"무신사","status":"sale"}`)
	assert.NoError(t, publisher.Publish("무신사", payload))

	select {
	case got := <-messages:
		decoded, err := base64.StdEncoding.DecodeString(got)
		assert.NoError(t, err)
		assert.JSONEq(t, string(payload), string(decoded))
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for published record")
	}

	assert.NoError(t, publisher.TrimStreams())
	client.Del(ctx, "test_sales:0")
}
