// Package queuex provides the Redis-backed work queue used by the worker:
// named FIFO lists with a blocking head dequeue and a tail enqueue.
package queuex

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Queue is a client for named Redis list queues.
type Queue struct {
	rdb *redis.Client
}

// New creates a queue client on top of an existing Redis connection.
func New(rdb *redis.Client) *Queue {
	return &Queue{rdb: rdb}
}

// Dequeue blocks until a payload is available on the named queue or the
// timeout expires. A timeout is not an error: it returns (nil, nil), as does
// cancellation of ctx, so the caller's loop can re-check its stop condition.
func (q *Queue) Dequeue(ctx context.Context, queue string, timeout time.Duration) ([]byte, error) {
	result, err := q.rdb.BLPop(ctx, timeout, queue).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		if ctx.Err() != nil {
			return nil, nil
		}
		return nil, queueErrors.NewWithCause(ErrDequeue, err).WithDetail("queue", queue)
	}

	// result[0] is the list key, result[1] the payload.
	return []byte(result[1]), nil
}

// Enqueue appends a payload to the tail of the named queue. It never blocks;
// it fails only on transport error.
func (q *Queue) Enqueue(ctx context.Context, queue string, payload []byte) error {
	if err := q.rdb.RPush(ctx, queue, payload).Err(); err != nil {
		return queueErrors.NewWithCause(ErrEnqueue, err).WithDetail("queue", queue)
	}
	return nil
}

// Len returns the current depth of the named queue.
func (q *Queue) Len(ctx context.Context, queue string) (int64, error) {
	n, err := q.rdb.LLen(ctx, queue).Result()
	if err != nil {
		return 0, queueErrors.NewWithCause(ErrLen, err).WithDetail("queue", queue)
	}
	return n, nil
}
