package download

import "github.com/ytget/yt-search-downloader/internal/model"

// EventKind identifies a worker notification
type EventKind int

const (
	// EventBatchStarted is sent when the worker picks up a request
	EventBatchStarted EventKind = iota

	// EventItemCompleted is sent after a reference downloaded successfully
	EventItemCompleted

	// EventItemFailed is sent after a reference failed; the batch continues
	EventItemFailed

	// EventBatchCompleted is sent exactly once per request after its last item
	EventBatchCompleted
)

// String returns a readable name for the kind
func (k EventKind) String() string {
	switch k {
	case EventBatchStarted:
		return "BatchStarted"
	case EventItemCompleted:
		return "ItemCompleted"
	case EventItemFailed:
		return "ItemFailed"
	case EventBatchCompleted:
		return "BatchCompleted"
	default:
		return "Unknown"
	}
}

// Event is a notification from the worker goroutine.
type Event struct {
	Kind      EventKind
	RequestID string
	Item      *model.ItemResult  // set for item events
	Report    *model.BatchReport // set for EventBatchCompleted
}
