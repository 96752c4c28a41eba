package platform

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	ytget "github.com/ytget/ytdlp/v2"
	"github.com/ytget/ytdlp/v2/client"

	"github.com/ytget/yt-search-downloader/internal/model"
)

// Timeout constants
const (
	DefaultParseTimeout   = 60 * time.Second
	DefaultRequestTimeout = 15 * time.Second
	DefaultRequestRetries = 3
)

// URL parameters and separators
const (
	PlaylistParam  = "list="
	ParamSeparator = "&"
)

// PlaylistLister lists the entries of a YouTube playlist without yt-dlp.
type PlaylistLister struct {
	timeout    time.Duration
	httpClient *http.Client
}

// NewPlaylistLister creates a lister identifying itself with userAgent
func NewPlaylistLister(userAgent string) *PlaylistLister {
	c := client.NewWith(client.Config{
		Timeout:   DefaultRequestTimeout,
		Retries:   DefaultRequestRetries,
		UserAgent: userAgent,
	})
	return &PlaylistLister{
		timeout:    DefaultParseTimeout,
		httpClient: c.HTTPClient,
	}
}

// SetTimeout sets the timeout for listing operations
func (p *PlaylistLister) SetTimeout(timeout time.Duration) {
	p.timeout = timeout
}

// ListPlaylist returns up to limit playlist entries as search results.
func (p *PlaylistLister) ListPlaylist(ctx context.Context, rawURL string, limit int) ([]model.SearchResult, error) {
	playlistID, err := ExtractPlaylistID(rawURL)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	d := ytget.New().WithHTTPClient(p.httpClient)
	items, err := d.GetPlaylistItemsAll(ctx, playlistID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist items: %w", err)
	}

	results := make([]model.SearchResult, 0, len(items))
	for _, it := range items {
		if limit > 0 && len(results) >= limit {
			break
		}
		results = append(results, model.NewSearchResult(it.Title, fmt.Sprintf(YouTubeVideoURLTemplate, it.VideoID)))
	}
	return results, nil
}

// IsPlaylistURL reports whether query is an http(s) link carrying a playlist ID
func IsPlaylistURL(query string) bool {
	query = strings.TrimSpace(query)
	if !strings.Contains(query, PlaylistParam) {
		return false
	}
	parsed, err := url.Parse(query)
	if err != nil {
		return false
	}
	return parsed.Scheme == "http" || parsed.Scheme == "https"
}

// ExtractPlaylistID extracts the playlist ID from a playlist URL. Supported forms:
//   - https://www.youtube.com/watch?v=VIDEO_ID&list=PLAYLIST_ID&index=1
//   - https://www.youtube.com/playlist?list=PLAYLIST_ID
func ExtractPlaylistID(rawURL string) (string, error) {
	parts := strings.SplitN(rawURL, PlaylistParam, 2)
	if len(parts) < 2 {
		return "", fmt.Errorf("URL does not contain playlist parameter: %s", rawURL)
	}

	playlistID := parts[1]
	if idx := strings.Index(playlistID, ParamSeparator); idx >= 0 {
		playlistID = playlistID[:idx]
	}
	playlistID = strings.TrimSpace(playlistID)

	if playlistID == "" {
		return "", fmt.Errorf("empty playlist ID in URL: %s", rawURL)
	}
	return playlistID, nil
}
