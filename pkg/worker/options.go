package worker

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Options configures the consumption loop.
type Options struct {
	Queue           string
	DeadLetterQueue string

	// MaxRetries is the attempt budget per job. A job whose retry counter
	// reaches it is dead-lettered.
	MaxRetries int

	// DequeueTimeout bounds the blocking dequeue; it is the maximum latency
	// between a shutdown signal and the loop observing it.
	DequeueTimeout time.Duration

	// PollInterval is the pause after a queue transport error before the
	// next dequeue attempt.
	PollInterval time.Duration

	Logger *logrus.Entry
}

func defaultOptions() Options {
	return Options{
		Queue:           "docuchain:documents:queue",
		DeadLetterQueue: "docuchain:documents:dlq",
		MaxRetries:      3,
		DequeueTimeout:  5 * time.Second,
		PollInterval:    time.Second,
		Logger:          logrus.WithField("component", "worker"),
	}
}

// Option is a functional option for configuring the worker.
type Option func(*Options)

// WithQueues sets the work queue and dead-letter queue names.
func WithQueues(queue, deadLetterQueue string) Option {
	return func(o *Options) {
		o.Queue = queue
		o.DeadLetterQueue = deadLetterQueue
	}
}

// WithMaxRetries sets the attempt budget per job.
func WithMaxRetries(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxRetries = n
		}
	}
}

// WithDequeueTimeout sets the timeout passed to the blocking dequeue call.
func WithDequeueTimeout(d time.Duration) Option {
	return func(o *Options) {
		if d > 0 {
			o.DequeueTimeout = d
		}
	}
}

// WithPollInterval sets the pause after a dequeue transport error.
func WithPollInterval(d time.Duration) Option {
	return func(o *Options) {
		if d > 0 {
			o.PollInterval = d
		}
	}
}

// WithLogger sets the log entry the worker logs through.
func WithLogger(log *logrus.Entry) Option {
	return func(o *Options) {
		if log != nil {
			o.Logger = log
		}
	}
}
