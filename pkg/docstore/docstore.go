// Package docstore updates the durable per-document status record in
// Postgres. The record itself is created upstream when the document is
// submitted; the worker only moves its status forward and attaches the
// generation outcome.
package docstore

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Status is the document lifecycle state recorded in the documents table.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// Store hands out per-job sessions backed by a shared connection pool.
type Store struct {
	db *sqlx.DB
}

// New creates a store on top of an existing database pool.
func New(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// Acquire checks a single connection out of the pool for the duration of one
// job. The caller must Close the session on every exit path.
func (s *Store) Acquire(ctx context.Context) (*Session, error) {
	conn, err := s.db.Connx(ctx)
	if err != nil {
		return nil, storeErrors.NewWithCause(ErrAcquire, err)
	}
	return &Session{conn: conn}, nil
}

// Session is one checked-out connection scoped to one job. Each Mark call is
// a single statement committed immediately.
type Session struct {
	conn *sqlx.Conn
}

// MarkProcessing records that generation for the document has started.
func (s *Session) MarkProcessing(ctx context.Context, documentID string) error {
	_, err := s.conn.ExecContext(ctx,
		`UPDATE documents SET status = $1 WHERE document_id = $2`,
		StatusProcessing, documentID)
	if err != nil {
		return storeErrors.NewWithCause(ErrUpdateStatus, err).WithDetail("document_id", documentID)
	}
	return nil
}

// MarkCompleted records a successful generation and the produced PDF path.
func (s *Session) MarkCompleted(ctx context.Context, documentID, pdfPath string) error {
	_, err := s.conn.ExecContext(ctx,
		`UPDATE documents SET status = $1, pdf_path = $2 WHERE document_id = $3`,
		StatusCompleted, pdfPath, documentID)
	if err != nil {
		return storeErrors.NewWithCause(ErrUpdateStatus, err).WithDetail("document_id", documentID)
	}
	return nil
}

// MarkFailed records a failed generation attempt and its error message.
func (s *Session) MarkFailed(ctx context.Context, documentID, errMsg string) error {
	_, err := s.conn.ExecContext(ctx,
		`UPDATE documents SET status = $1, error_message = $2 WHERE document_id = $3`,
		StatusFailed, errMsg, documentID)
	if err != nil {
		return storeErrors.NewWithCause(ErrUpdateStatus, err).WithDetail("document_id", documentID)
	}
	return nil
}

// Close returns the session's connection to the pool.
func (s *Session) Close() error {
	return s.conn.Close()
}
