package model

import "fmt"

// SearchFailure wraps any error raised while searching. The whole search is
// discarded when it occurs.
type SearchFailure struct {
	Query string
	Err   error
}

func (e *SearchFailure) Error() string {
	return fmt.Sprintf("An error occurred while searching: %v", e.Err)
}

func (e *SearchFailure) Unwrap() error { return e.Err }

// DownloadFailure wraps the error of a single reference in a batch.
type DownloadFailure struct {
	Reference string
	Err       error
}

func (e *DownloadFailure) Error() string {
	return fmt.Sprintf("Error downloading %s: %v", e.Reference, e.Err)
}

func (e *DownloadFailure) Unwrap() error { return e.Err }
