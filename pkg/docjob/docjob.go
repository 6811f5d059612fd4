// Package docjob defines the document-generation job record carried through
// the work queue and the codec that validates raw queue payloads.
package docjob

import "encoding/json"

// Job is one unit of requested work: a document to generate. It lives on the
// queue, not in the database; the durable document record is keyed by
// DocumentID and owned by the status store.
type Job struct {
	DocumentID   string         `json:"documentId"`
	Template     string         `json:"template"`
	Placeholders map[string]any `json:"placeholders,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"`

	// Retries counts completed failed attempts. Only the retry coordinator
	// mutates it.
	Retries int `json:"retries"`

	// Error and FailedAt are set only when the job is moved to the
	// dead-letter queue.
	Error    string `json:"error,omitempty"`
	FailedAt int64  `json:"failed_at,omitempty"`
}

// wireJob mirrors Job on the wire, additionally accepting the snake_case
// document id emitted by older producers.
type wireJob struct {
	DocumentID      string         `json:"documentId"`
	DocumentIDSnake string         `json:"document_id"`
	Template        string         `json:"template"`
	Placeholders    map[string]any `json:"placeholders"`
	Metadata        map[string]any `json:"metadata"`
	Retries         int            `json:"retries"`
	Error           string         `json:"error"`
	FailedAt        int64          `json:"failed_at"`
}

// Decode parses and validates a raw queue payload.
//
// Failures are terminal for the payload: a payload that is not a JSON object
// fails with ErrMalformedPayload, and one missing documentId or template
// fails with ErrMissingRequiredField. Neither is retried or dead-lettered.
func Decode(payload []byte) (*Job, error) {
	var w wireJob
	if err := json.Unmarshal(payload, &w); err != nil {
		return nil, jobErrors.NewWithCause(ErrMalformedPayload, err)
	}

	documentID := w.DocumentID
	if documentID == "" {
		documentID = w.DocumentIDSnake
	}
	if documentID == "" {
		return nil, jobErrors.New(ErrMissingRequiredField).WithDetail("field", "documentId")
	}
	if w.Template == "" {
		return nil, jobErrors.New(ErrMissingRequiredField).WithDetail("field", "template")
	}

	placeholders := w.Placeholders
	if placeholders == nil {
		placeholders = map[string]any{}
	}
	metadata := w.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}

	return &Job{
		DocumentID:   documentID,
		Template:     w.Template,
		Placeholders: placeholders,
		Metadata:     metadata,
		Retries:      w.Retries,
		Error:        w.Error,
		FailedAt:     w.FailedAt,
	}, nil
}

// Encode serializes the job for re-enqueueing or dead-lettering. The output
// always uses the camelCase documentId field.
func (j *Job) Encode() ([]byte, error) {
	data, err := json.Marshal(j)
	if err != nil {
		return nil, jobErrors.NewWithCause(ErrEncode, err).WithDetail("document_id", j.DocumentID)
	}
	return data, nil
}
