package download

// Package download implements the background download worker. Requests are
// queued and processed one at a time by a single goroutine; references inside
// a request are fetched strictly in order. Outcomes are published as events on
// a channel so the UI can apply them on its own goroutine.
