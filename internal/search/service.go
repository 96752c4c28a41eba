package search

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/ytget/yt-search-downloader/internal/model"
	"github.com/ytget/yt-search-downloader/internal/platform"
)

// DefaultTimeout bounds a single search call
const DefaultTimeout = 60 * time.Second

// Service handles search operations
type Service struct {
	searcher  Searcher
	playlists PlaylistLister
	limit     int
	timeout   time.Duration
}

// NewService creates a search service returning at most limit results.
// playlists may be nil, in which case playlist links are searched as keywords.
func NewService(searcher Searcher, playlists PlaylistLister, limit int) *Service {
	if limit <= 0 {
		limit = platform.DefaultSearchLimit
	}
	return &Service{
		searcher:  searcher,
		playlists: playlists,
		limit:     limit,
		timeout:   DefaultTimeout,
	}
}

// SetTimeout sets the timeout for a single search
func (s *Service) SetTimeout(timeout time.Duration) {
	s.timeout = timeout
}

// Limit returns the maximum number of results per search
func (s *Service) Limit() int {
	return s.limit
}

// Search returns the results for query in response order. An empty query is a
// no-op returning no results and no error. Any failure discards partial
// results and is returned as *model.SearchFailure.
func (s *Service) Search(ctx context.Context, query string) ([]model.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	started := time.Now()

	var (
		results []model.SearchResult
		err     error
	)
	if s.playlists != nil && platform.IsPlaylistURL(query) {
		log.Printf("Listing playlist: %s", query)
		results, err = s.playlists.ListPlaylist(ctx, query, s.limit)
	} else {
		log.Printf("Searching: %q (limit %d)", query, s.limit)
		results, err = s.searcher.Search(ctx, query, s.limit)
	}

	if err != nil {
		log.Printf("Search failed for %q: %v", query, err)
		return nil, &model.SearchFailure{Query: query, Err: err}
	}

	if len(results) > s.limit {
		results = results[:s.limit]
	}

	log.Printf("Search for %q returned %d results in %s", query, len(results), time.Since(started).Round(time.Millisecond))
	return results, nil
}
