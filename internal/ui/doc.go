package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It owns the search box, the multi-select results list and the two action
// buttons, forwards download events onto the UI goroutine and reports them
// through modal notifications. All UI strings are localized via Localization.
