package worker

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/docuchain/docworker/pkg/docjob"
)

// resolveFailure is the retry coordinator: every fully-decoded job that
// failed processing ends up either back on the work queue tail or on the
// dead-letter queue. Tail re-enqueueing trades strict ordering for fairness;
// there is no delay between attempts.
func (w *Worker) resolveFailure(ctx context.Context, log *logrus.Entry, job *docjob.Job, cause error) {
	job.Retries++

	if job.Retries >= w.opts.MaxRetries {
		job.Error = cause.Error()
		job.FailedAt = time.Now().Unix()

		payload, err := job.Encode()
		if err != nil {
			log.WithError(err).Error("could not encode dead-letter payload, job lost")
			return
		}
		if err := w.queue.Enqueue(ctx, w.opts.DeadLetterQueue, payload); err != nil {
			log.WithError(err).Error("dead-letter enqueue failed, job lost")
			return
		}
		log.WithError(cause).Errorf("job moved to dead-letter queue after %d attempts", job.Retries)
		return
	}

	payload, err := job.Encode()
	if err != nil {
		log.WithError(err).Error("could not encode retry payload, job lost")
		return
	}
	if err := w.queue.Enqueue(ctx, w.opts.Queue, payload); err != nil {
		log.WithError(err).Error("retry enqueue failed, job lost")
		return
	}
	log.WithError(cause).Warnf("job failed, retrying (%d/%d)", job.Retries, w.opts.MaxRetries)
}
