// cmd/worker/container.go
//
// Composition root. Owns infrastructure (Postgres pool, Redis connection)
// and wires the queue, status store, and generation client into the worker.
package main

import (
	"context"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/docuchain/docworker/pkg/config"
	"github.com/docuchain/docworker/pkg/docstore"
	"github.com/docuchain/docworker/pkg/genapi"
	"github.com/docuchain/docworker/pkg/queuex"
	"github.com/docuchain/docworker/pkg/worker"
)

// Container holds shared infrastructure and the composed worker.
type Container struct {
	Config *config.Config

	DB    *sqlx.DB
	Redis *redis.Client

	Queue  *queuex.Queue
	Worker *worker.Worker
}

func NewContainer(cfg *config.Config) *Container {
	logrus.Info("🔧 Initializing worker container...")

	c := &Container{Config: cfg}

	c.initInfrastructure()
	c.initWorker()

	logrus.Info("✅ Worker container initialized")
	return c
}

func (c *Container) initInfrastructure() {
	// 1. Redis. Losing the queue connection at startup is the one fatal
	// condition of this process.
	redisOpts, err := redis.ParseURL(c.Config.Redis.URL)
	if err != nil {
		logrus.Fatalf("Invalid REDIS_URL: %v", err)
	}
	c.Redis = redis.NewClient(redisOpts)
	if err := c.Redis.Ping(context.Background()).Err(); err != nil {
		logrus.Fatalf("Failed to connect to Redis: %v (Redis is required)", err)
	}
	logrus.Info("  ✅ Redis connected")

	// 2. Database pool. Each job checks a connection out of this pool.
	db, err := sqlx.Connect("postgres", c.Config.Database.URL)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	db.SetMaxOpenConns(c.Config.Database.MaxOpenConns)
	db.SetMaxIdleConns(c.Config.Database.MaxIdleConns)
	db.SetConnMaxLifetime(c.Config.Database.ConnMaxLifetime)
	c.DB = db
	logrus.Info("  ✅ Database connected")
}

func (c *Container) initWorker() {
	c.Queue = queuex.New(c.Redis)

	generator := genapi.NewClient(c.Config.Backend.BaseURL, nil)
	store := statusStore{store: docstore.New(c.DB)}

	c.Worker = worker.New(c.Queue, store, generator,
		worker.WithQueues(c.Config.Worker.Queue, c.Config.Worker.DeadLetterQueue),
		worker.WithMaxRetries(c.Config.Worker.MaxRetries),
		worker.WithDequeueTimeout(c.Config.Worker.DequeueTimeout),
		worker.WithPollInterval(c.Config.Worker.PollInterval),
	)
}

func (c *Container) Cleanup() {
	logrus.Info("🧹 Cleaning up resources...")

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			logrus.Errorf("Error closing database: %v", err)
		} else {
			logrus.Info("  ✅ Database connection closed")
		}
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			logrus.Errorf("Error closing Redis: %v", err)
		} else {
			logrus.Info("  ✅ Redis connection closed")
		}
	}
}

// statusStore adapts the concrete docstore to the worker's store interface.
type statusStore struct {
	store *docstore.Store
}

func (s statusStore) Acquire(ctx context.Context) (worker.StatusSession, error) {
	return s.store.Acquire(ctx)
}
