package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RequestIDPrefix prefixes every download request ID
const RequestIDPrefix = "batch-"

// DownloadRequest is an ordered snapshot of references selected for download.
type DownloadRequest struct {
	ID         string
	References []string
	CreatedAt  time.Time
}

// NewDownloadRequest copies refs so later changes to the caller's slice do not
// reach the worker.
func NewDownloadRequest(refs []string) *DownloadRequest {
	snapshot := make([]string, len(refs))
	copy(snapshot, refs)

	return &DownloadRequest{
		ID:         generateRequestID(),
		References: snapshot,
		CreatedAt:  time.Now(),
	}
}

// Len returns the number of references in the request
func (r *DownloadRequest) Len() int {
	return len(r.References)
}

// ItemResult is the outcome of downloading one reference.
type ItemResult struct {
	Reference  string
	Status     TaskStatus
	Err        error
	StartedAt  time.Time
	FinishedAt time.Time
}

// Failed reports whether the item ended with an error
func (ir ItemResult) Failed() bool {
	return ir.Status == TaskStatusError
}

// Elapsed returns how long the download took
func (ir ItemResult) Elapsed() time.Duration {
	if ir.FinishedAt.IsZero() || ir.StartedAt.IsZero() {
		return 0
	}
	return ir.FinishedAt.Sub(ir.StartedAt)
}

// BatchReport collects the item results of one processed request, in order.
type BatchReport struct {
	RequestID string
	Items     []ItemResult
}

// Total returns the number of processed references
func (br *BatchReport) Total() int {
	return len(br.Items)
}

// Failed returns the number of failed references
func (br *BatchReport) Failed() int {
	failed := 0
	for _, item := range br.Items {
		if item.Failed() {
			failed++
		}
	}
	return failed
}

// Succeeded returns the number of completed references
func (br *BatchReport) Succeeded() int {
	return br.Total() - br.Failed()
}

// Summary returns a short "N succeeded, K failed" description
func (br *BatchReport) Summary() string {
	return fmt.Sprintf("%d succeeded, %d failed", br.Succeeded(), br.Failed())
}

// generateRequestID generates a unique request ID
func generateRequestID() string {
	return RequestIDPrefix + uuid.NewString()
}
