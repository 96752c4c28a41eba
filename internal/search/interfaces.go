package search

import (
	"context"

	"github.com/ytget/yt-search-downloader/internal/model"
)

// Searcher runs a keyword search against the video platform.
type Searcher interface {
	Search(ctx context.Context, query string, limit int) ([]model.SearchResult, error)
}

// PlaylistLister lists the entries behind a playlist link.
type PlaylistLister interface {
	ListPlaylist(ctx context.Context, url string, limit int) ([]model.SearchResult, error)
}
