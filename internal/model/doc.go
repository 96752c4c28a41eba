package model

// Package model defines domain data structures shared by the search, download
// and UI layers: search results, download requests, per-item outcomes and the
// error kinds surfaced to the user. Values are plain structs so they can be
// copied across goroutines without sharing state.
