package download

import (
	"context"

	"github.com/ytget/yt-search-downloader/internal/model"
)

// Fetcher downloads a single reference to local disk.
type Fetcher interface {
	Download(ctx context.Context, reference string) error
}

// Downloader defines the interface for the download service.
type Downloader interface {
	// Submit queues a snapshot of refs and returns immediately
	Submit(refs []string) (*model.DownloadRequest, error)

	// Events delivers worker notifications; it is closed by Close
	Events() <-chan Event

	// Pending returns the number of queued requests not yet started
	Pending() int

	// Close stops the worker and waits for it to exit
	Close()
}
