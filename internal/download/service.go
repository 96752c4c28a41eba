package download

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/ytget/yt-search-downloader/internal/model"
)

// DefaultEventBuffer is the capacity of the events channel
const DefaultEventBuffer = 64

var (
	// ErrEmptyRequest is returned when no references were submitted
	ErrEmptyRequest = errors.New("no references to download")

	// ErrServiceClosed is returned when submitting after Close
	ErrServiceClosed = errors.New("download service is closed")
)

// Service queues download requests and processes them on one worker goroutine.
type Service struct {
	fetcher Fetcher

	mu     sync.Mutex
	queue  []*model.DownloadRequest
	closed bool

	newJobChan chan struct{}
	events     chan Event

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a download service and starts its worker
func NewService(fetcher Fetcher) *Service {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Service{
		fetcher:    fetcher,
		queue:      make([]*model.DownloadRequest, 0),
		newJobChan: make(chan struct{}, 1),
		events:     make(chan Event, DefaultEventBuffer),
		ctx:        ctx,
		cancel:     cancel,
		done:       make(chan struct{}),
	}

	go s.run()
	return s
}

// Submit queues a copy of refs and signals the worker
func (s *Service) Submit(refs []string) (*model.DownloadRequest, error) {
	if len(refs) == 0 {
		return nil, ErrEmptyRequest
	}

	req := model.NewDownloadRequest(refs)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, ErrServiceClosed
	}
	s.queue = append(s.queue, req)
	pending := len(s.queue)
	s.mu.Unlock()

	log.Printf("Queued download request %s with %d references (%d pending)", req.ID, req.Len(), pending)

	select {
	case s.newJobChan <- struct{}{}:
	default:
		// Signal already pending
	}

	return req, nil
}

// Events returns the worker notification channel
func (s *Service) Events() <-chan Event {
	return s.events
}

// Pending returns the number of queued requests not yet started
func (s *Service) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}

// Close cancels in-flight work, waits for the worker and closes Events
func (s *Service) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()

	s.cancel()
	<-s.done
}

// run is the worker loop
func (s *Service) run() {
	defer close(s.done)
	defer close(s.events)

	for {
		req := s.next()
		if req == nil {
			select {
			case <-s.newJobChan:
				continue
			case <-s.ctx.Done():
				return
			}
		}

		if s.ctx.Err() != nil {
			return
		}
		s.processRequest(s.ctx, req)
	}
}

// next pops the oldest queued request
func (s *Service) next() *model.DownloadRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.queue) == 0 {
		return nil
	}
	req := s.queue[0]
	s.queue = s.queue[1:]
	return req
}

// processRequest downloads every reference in order. Item failures are
// reported and skipped; the completion event is always sent last.
func (s *Service) processRequest(ctx context.Context, req *model.DownloadRequest) *model.BatchReport {
	log.Printf("Starting download request %s (%d references)", req.ID, req.Len())
	s.emit(Event{Kind: EventBatchStarted, RequestID: req.ID})

	report := &model.BatchReport{
		RequestID: req.ID,
		Items:     make([]model.ItemResult, 0, req.Len()),
	}

	for _, ref := range req.References {
		item := s.downloadItem(ctx, ref)
		report.Items = append(report.Items, item)

		kind := EventItemCompleted
		if item.Failed() {
			kind = EventItemFailed
		}
		itemCopy := item
		s.emit(Event{Kind: kind, RequestID: req.ID, Item: &itemCopy})
	}

	log.Printf("Finished download request %s: %s", req.ID, report.Summary())
	s.emit(Event{Kind: EventBatchCompleted, RequestID: req.ID, Report: report})
	return report
}

// downloadItem fetches one reference and records its outcome
func (s *Service) downloadItem(ctx context.Context, ref string) model.ItemResult {
	item := model.ItemResult{
		Reference: ref,
		Status:    model.TaskStatusDownloading,
		StartedAt: time.Now(),
	}

	err := s.fetcher.Download(ctx, ref)
	item.FinishedAt = time.Now()

	if err != nil {
		item.Status = model.TaskStatusError
		item.Err = &model.DownloadFailure{Reference: ref, Err: err}
		log.Printf("Download failed for %s: %v", ref, err)
		return item
	}

	item.Status = model.TaskStatusCompleted
	log.Printf("Downloaded %s in %s", ref, item.Elapsed().Round(time.Millisecond))
	return item
}

// emit delivers an event unless the service is shutting down
func (s *Service) emit(ev Event) {
	select {
	case s.events <- ev:
	case <-s.ctx.Done():
	}
}
