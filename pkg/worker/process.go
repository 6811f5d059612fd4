package worker

import (
	"context"

	"github.com/docuchain/docworker/pkg/docjob"
)

// process executes one job end-to-end against a single store session. On any
// failure it makes a best-effort write of the failed status; that write's own
// error is logged and swallowed so it never masks the original failure,
// which is returned for the retry coordinator to resolve.
func (w *Worker) process(ctx context.Context, job *docjob.Job) error {
	sess, err := w.store.Acquire(ctx)
	if err != nil {
		return err
	}
	defer sess.Close()

	if err := w.generate(ctx, sess, job); err != nil {
		if werr := sess.MarkFailed(ctx, job.DocumentID, err.Error()); werr != nil {
			w.log.WithError(werr).
				WithField("document_id", job.DocumentID).
				Warn("could not record failed status")
		}
		return err
	}
	return nil
}

// generate walks the status transitions of one attempt:
// processing -> completed, with the generation call in between.
func (w *Worker) generate(ctx context.Context, sess StatusSession, job *docjob.Job) error {
	if err := sess.MarkProcessing(ctx, job.DocumentID); err != nil {
		return err
	}

	pdfPath, err := w.generator.Generate(ctx, job)
	if err != nil {
		return err
	}

	return sess.MarkCompleted(ctx, job.DocumentID, pdfPath)
}
