// Package worker implements the document-generation consumption loop: one
// logical consumer that blocks on the work queue, processes at most one job
// at a time, and resolves every processing failure into either a tail
// re-enqueue or a dead-letter.
package worker

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/docuchain/docworker/pkg/docjob"
)

// Queue provides blocking dequeue and tail enqueue against named FIFO
// queues. Dequeue returns (nil, nil) on timeout or cancellation.
type Queue interface {
	Dequeue(ctx context.Context, queue string, timeout time.Duration) ([]byte, error)
	Enqueue(ctx context.Context, queue string, payload []byte) error
}

// StatusSession is one checked-out store connection scoped to one job.
type StatusSession interface {
	MarkProcessing(ctx context.Context, documentID string) error
	MarkCompleted(ctx context.Context, documentID, pdfPath string) error
	MarkFailed(ctx context.Context, documentID, errMsg string) error
	Close() error
}

// StatusStore hands out per-job status sessions.
type StatusStore interface {
	Acquire(ctx context.Context) (StatusSession, error)
}

// Generator performs the actual document generation and returns the produced
// PDF path.
type Generator interface {
	Generate(ctx context.Context, job *docjob.Job) (string, error)
}

// Worker consumes document-generation jobs until its context is cancelled.
type Worker struct {
	queue     Queue
	store     StatusStore
	generator Generator
	opts      Options
	log       *logrus.Entry
}

// New creates a worker. Options default to the standard queue names, three
// attempts, and a 5 second dequeue timeout.
func New(queue Queue, store StatusStore, generator Generator, options ...Option) *Worker {
	opts := defaultOptions()
	for _, o := range options {
		o(&opts)
	}
	return &Worker{
		queue:     queue,
		store:     store,
		generator: generator,
		opts:      opts,
		log:       opts.Logger,
	}
}

// Run blocks, processing jobs until ctx is cancelled. Cancellation is
// observed only between jobs, at the dequeue suspension point: an in-flight
// job always completes its status write and retry/dead-letter resolution
// before Run returns. The dequeue timeout bounds shutdown latency.
func (w *Worker) Run(ctx context.Context) error {
	w.log.WithFields(logrus.Fields{
		"queue": w.opts.Queue,
		"dlq":   w.opts.DeadLetterQueue,
	}).Info("worker started")

	for {
		select {
		case <-ctx.Done():
			w.log.Info("worker stopping")
			return nil
		default:
		}

		if err := w.runOnce(ctx); err != nil {
			if ctx.Err() != nil {
				continue
			}
			w.log.WithError(err).Error("dequeue failed")
			select {
			case <-ctx.Done():
			case <-time.After(w.opts.PollInterval):
			}
		}
	}
}

// runOnce waits for one payload and carries it through decode, processing,
// and failure resolution. It returns an error only for queue transport
// failures; every per-job outcome is handled here.
func (w *Worker) runOnce(ctx context.Context) error {
	payload, err := w.queue.Dequeue(ctx, w.opts.Queue, w.opts.DequeueTimeout)
	if err != nil {
		return err
	}
	if payload == nil {
		return nil
	}

	log := w.log.WithField("attempt_id", uuid.NewString())
	log.Infof("picked job payload: %s", truncate(payload, 200))

	job, err := docjob.Decode(payload)
	if err != nil {
		// Terminal for the payload: never retried, never dead-lettered.
		log.WithError(err).Errorf("discarding invalid job payload: %s", truncate(payload, 200))
		return nil
	}
	log = log.WithField("document_id", job.DocumentID)

	// Detached from cancellation so a shutdown signal never abandons the
	// job mid-processing.
	jobCtx := context.WithoutCancel(ctx)
	if err := w.process(jobCtx, job); err != nil {
		w.resolveFailure(jobCtx, log, job, err)
		return nil
	}

	log.Info("document processed")
	return nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n])
}
