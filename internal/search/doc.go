package search

// Package search turns a free-text query into a list of results. It owns the
// empty-query rule, the result cap, playlist-link routing and the wrapping of
// extraction errors into model.SearchFailure.
