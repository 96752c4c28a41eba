package download

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ytget/yt-search-downloader/internal/model"
)

const eventTimeout = 2 * time.Second

type fakeFetcher struct {
	mu       sync.Mutex
	calls    []string
	failures map[string]error
	gate     chan struct{} // when set, each download waits for a value
}

func (f *fakeFetcher) Download(ctx context.Context, reference string) error {
	if f.gate != nil {
		select {
		case <-f.gate:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	f.mu.Lock()
	f.calls = append(f.calls, reference)
	f.mu.Unlock()

	return f.failures[reference]
}

func (f *fakeFetcher) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.calls))
	copy(out, f.calls)
	return out
}

// collectUntil reads events until n batch completions were seen
func collectUntil(t *testing.T, events <-chan Event, n int) []Event {
	t.Helper()

	var got []Event
	completed := 0
	timeout := time.After(eventTimeout)
	for completed < n {
		select {
		case ev, ok := <-events:
			if !ok {
				t.Fatalf("events channel closed after %d events", len(got))
			}
			got = append(got, ev)
			if ev.Kind == EventBatchCompleted {
				completed++
			}
		case <-timeout:
			t.Fatalf("timed out waiting for %d batch completions, got %d events", n, len(got))
		}
	}
	return got
}

func countKind(events []Event, kind EventKind) int {
	n := 0
	for _, ev := range events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

func TestSubmit_Empty(t *testing.T) {
	service := NewService(&fakeFetcher{})
	defer service.Close()

	req, err := service.Submit(nil)
	if !errors.Is(err, ErrEmptyRequest) {
		t.Errorf("Expected ErrEmptyRequest, got %v", err)
	}
	if req != nil {
		t.Error("Expected no request for empty submission")
	}
}

func TestSubmit_ProcessesInOrder(t *testing.T) {
	fetcher := &fakeFetcher{}
	service := NewService(fetcher)
	defer service.Close()

	req, err := service.Submit([]string{"ref1", "ref2"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	events := collectUntil(t, service.Events(), 1)

	calls := fetcher.Calls()
	if len(calls) != 2 || calls[0] != "ref1" || calls[1] != "ref2" {
		t.Fatalf("Expected ref1 then ref2, got %v", calls)
	}

	if countKind(events, EventBatchCompleted) != 1 {
		t.Errorf("Expected exactly one completion event, got %d", countKind(events, EventBatchCompleted))
	}

	last := events[len(events)-1]
	if last.Kind != EventBatchCompleted {
		t.Fatalf("Expected completion to be the last event, got %s", last.Kind)
	}
	if last.RequestID != req.ID {
		t.Errorf("Expected request ID %s, got %s", req.ID, last.RequestID)
	}
	if last.Report.Total() != 2 || last.Report.Failed() != 0 {
		t.Errorf("Unexpected report: %s", last.Report.Summary())
	}
}

func TestSubmit_FailureDoesNotStopBatch(t *testing.T) {
	cause := errors.New("HTTP Error 403: Forbidden")
	fetcher := &fakeFetcher{failures: map[string]error{"ref1": cause}}
	service := NewService(fetcher)
	defer service.Close()

	if _, err := service.Submit([]string{"ref1", "ref2"}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	events := collectUntil(t, service.Events(), 1)

	if calls := fetcher.Calls(); len(calls) != 2 {
		t.Fatalf("Expected both references to be attempted, got %v", calls)
	}

	var failed []Event
	for _, ev := range events {
		if ev.Kind == EventItemFailed {
			failed = append(failed, ev)
		}
	}
	if len(failed) != 1 {
		t.Fatalf("Expected one failure event, got %d", len(failed))
	}

	var failure *model.DownloadFailure
	if !errors.As(failed[0].Item.Err, &failure) || failure.Reference != "ref1" {
		t.Errorf("Expected DownloadFailure for ref1, got %v", failed[0].Item.Err)
	}
	if !errors.Is(failed[0].Item.Err, cause) {
		t.Error("Expected failure to wrap the fetcher error")
	}

	if countKind(events, EventItemCompleted) != 1 {
		t.Errorf("Expected one completed item, got %d", countKind(events, EventItemCompleted))
	}

	last := events[len(events)-1]
	if last.Kind != EventBatchCompleted {
		t.Fatalf("Expected completion after the failure, got %s", last.Kind)
	}
	if last.Report.Failed() != 1 || last.Report.Succeeded() != 1 {
		t.Errorf("Unexpected report: %s", last.Report.Summary())
	}
}

func TestSubmit_AllFail(t *testing.T) {
	fetcher := &fakeFetcher{failures: map[string]error{
		"a": errors.New("a"),
		"b": errors.New("b"),
		"c": errors.New("c"),
	}}
	service := NewService(fetcher)
	defer service.Close()

	if _, err := service.Submit([]string{"a", "b", "c"}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	events := collectUntil(t, service.Events(), 1)
	if countKind(events, EventItemFailed) != 3 {
		t.Errorf("Expected 3 failures, got %d", countKind(events, EventItemFailed))
	}
	if countKind(events, EventBatchCompleted) != 1 {
		t.Errorf("Expected one completion, got %d", countKind(events, EventBatchCompleted))
	}
}

func TestSubmit_SnapshotIsolation(t *testing.T) {
	fetcher := &fakeFetcher{gate: make(chan struct{})}
	service := NewService(fetcher)
	defer service.Close()

	refs := []string{"ref1", "ref2"}
	if _, err := service.Submit(refs); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	refs[0] = "changed"
	refs[1] = "changed"

	fetcher.gate <- struct{}{}
	fetcher.gate <- struct{}{}
	collectUntil(t, service.Events(), 1)

	calls := fetcher.Calls()
	if len(calls) != 2 || calls[0] != "ref1" || calls[1] != "ref2" {
		t.Errorf("Worker must use the submitted snapshot, got %v", calls)
	}
}

func TestSubmit_BatchesAreSerialized(t *testing.T) {
	fetcher := &fakeFetcher{gate: make(chan struct{})}
	service := NewService(fetcher)
	defer service.Close()

	first, err := service.Submit([]string{"a1", "a2"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	second, err := service.Submit([]string{"b1"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	for i := 0; i < 3; i++ {
		fetcher.gate <- struct{}{}
	}

	events := collectUntil(t, service.Events(), 2)

	calls := fetcher.Calls()
	expected := []string{"a1", "a2", "b1"}
	if len(calls) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, calls)
	}
	for i := range expected {
		if calls[i] != expected[i] {
			t.Fatalf("Expected %v, got %v", expected, calls)
		}
	}

	// The first batch must complete before the second one starts
	var order []string
	for _, ev := range events {
		if ev.Kind == EventBatchStarted || ev.Kind == EventBatchCompleted {
			order = append(order, ev.Kind.String()+":"+ev.RequestID)
		}
	}
	want := []string{
		"BatchStarted:" + first.ID,
		"BatchCompleted:" + first.ID,
		"BatchStarted:" + second.ID,
		"BatchCompleted:" + second.ID,
	}
	if len(order) != len(want) {
		t.Fatalf("Expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("Expected %v, got %v", want, order)
		}
	}
}

func TestClose(t *testing.T) {
	fetcher := &fakeFetcher{gate: make(chan struct{})}
	service := NewService(fetcher)

	if _, err := service.Submit([]string{"ref1"}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	closed := make(chan struct{})
	go func() {
		service.Close()
		close(closed)
	}()

	select {
	case <-closed:
	case <-time.After(eventTimeout):
		t.Fatal("Close did not return while a download was blocked")
	}

	// Events must be closed once the worker exits
	timeout := time.After(eventTimeout)
drain:
	for {
		select {
		case _, ok := <-service.Events():
			if !ok {
				break drain
			}
		case <-timeout:
			t.Fatal("events channel was not closed")
		}
	}

	if _, err := service.Submit([]string{"ref2"}); !errors.Is(err, ErrServiceClosed) {
		t.Errorf("Expected ErrServiceClosed, got %v", err)
	}

	// Second close is a no-op
	service.Close()
}

func TestPending(t *testing.T) {
	fetcher := &fakeFetcher{gate: make(chan struct{})}
	service := NewService(fetcher)
	defer service.Close()

	if _, err := service.Submit([]string{"a"}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, err := service.Submit([]string{"b"}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Worker picks up the first request and blocks on the gate
	deadline := time.Now().Add(eventTimeout)
	for service.Pending() != 1 {
		if time.Now().After(deadline) {
			t.Fatalf("Expected 1 pending request, got %d", service.Pending())
		}
		time.Sleep(10 * time.Millisecond)
	}

	fetcher.gate <- struct{}{}
	fetcher.gate <- struct{}{}
	collectUntil(t, service.Events(), 2)

	if service.Pending() != 0 {
		t.Errorf("Expected empty queue, got %d", service.Pending())
	}
}

func TestEventKind_String(t *testing.T) {
	tests := []struct {
		kind     EventKind
		expected string
	}{
		{EventBatchStarted, "BatchStarted"},
		{EventItemCompleted, "ItemCompleted"},
		{EventItemFailed, "ItemFailed"},
		{EventBatchCompleted, "BatchCompleted"},
		{EventKind(42), "Unknown"},
	}

	for _, test := range tests {
		if got := test.kind.String(); got != test.expected {
			t.Errorf("EventKind(%d).String() = %s, expected %s", test.kind, got, test.expected)
		}
	}
}
