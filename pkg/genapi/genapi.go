// Package genapi calls the backend's internal document-generation endpoint.
// The service is opaque to the worker: one synchronous POST per job, and any
// non-success outcome is a processing failure for the retry coordinator to
// resolve.
package genapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/docuchain/docworker/pkg/docjob"
)

const (
	generatePath = "/api/v1/documents/internal/generate"

	// DefaultTimeout bounds one generation call. Rendering large documents
	// can take minutes.
	DefaultTimeout = 300 * time.Second
)

// Client talks to the generation service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a generation client for the given backend base URL. Pass
// nil to use a default http.Client with DefaultTimeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

type generateRequest struct {
	DocumentID   string         `json:"documentId"`
	Template     string         `json:"template"`
	Placeholders map[string]any `json:"placeholders"`
	Metadata     map[string]any `json:"metadata"`
}

type generateResponse struct {
	PDFPath string `json:"pdf_path"`
}

// Generate asks the backend to render the document and returns the produced
// PDF path. Transport errors, timeouts, non-2xx responses, and responses
// without a pdf_path are all generation failures.
func (c *Client) Generate(ctx context.Context, job *docjob.Job) (string, error) {
	body, err := json.Marshal(generateRequest{
		DocumentID:   job.DocumentID,
		Template:     job.Template,
		Placeholders: job.Placeholders,
		Metadata:     job.Metadata,
	})
	if err != nil {
		return "", genErrors.NewWithCause(ErrRequest, err).WithDetail("document_id", job.DocumentID)
	}

	url := c.baseURL + generatePath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", genErrors.NewWithCause(ErrRequest, err).WithDetail("url", url)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", genErrors.NewWithCause(ErrRequest, err).
			WithDetail("document_id", job.DocumentID).
			WithDetail("url", url)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", genErrors.NewWithCause(ErrResponse, err).WithDetail("document_id", job.DocumentID)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", genErrors.New(ErrStatus).
			WithDetail("document_id", job.DocumentID).
			WithDetail("status_code", resp.StatusCode).
			WithDetail("body", truncate(respBody, 200))
	}

	var result generateResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", genErrors.NewWithCause(ErrResponse, err).WithDetail("document_id", job.DocumentID)
	}
	if result.PDFPath == "" {
		return "", genErrors.New(ErrResponse).
			WithDetail("document_id", job.DocumentID).
			WithDetail("reason", "response missing pdf_path")
	}

	return result.PDFPath, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n])
}
