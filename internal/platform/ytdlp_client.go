package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/lrstanley/go-ytdlp"

	"github.com/ytget/yt-search-downloader/internal/model"
)

// Search constants
const (
	SearchPrefix       = "ytsearch"
	DefaultSearchLimit = 100
)

// Download defaults
const (
	DefaultVideoFormat      = "18" // 360p progressive MP4
	DefaultFilenameTemplate = "%(title)s.%(ext)s"
)

// URL templates
const (
	YouTubeVideoURLTemplate = "https://www.youtube.com/watch?v=%s"
)

// YTDLPClient is the extraction client backed by the yt-dlp executable.
type YTDLPClient struct {
	outputDir string
	format    string
	template  string
}

// NewYTDLPClient creates a client writing downloads into outputDir with the
// given format selector and filename template.
func NewYTDLPClient(outputDir, format, template string) *YTDLPClient {
	if format == "" {
		format = DefaultVideoFormat
	}
	if template == "" {
		template = DefaultFilenameTemplate
	}
	return &YTDLPClient{
		outputDir: outputDir,
		format:    format,
		template:  template,
	}
}

// OutputTemplate returns the full yt-dlp output template
func (c *YTDLPClient) OutputTemplate() string {
	return filepath.Join(c.outputDir, c.template)
}

// Search runs a flat, metadata-only search capped at limit entries.
func (c *YTDLPClient) Search(ctx context.Context, query string, limit int) ([]model.SearchResult, error) {
	target := searchTarget(query, limit)

	dl := ytdlp.New().
		FlatPlaylist().
		SkipDownload().
		PrintJSON()

	res, err := dl.Run(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("yt-dlp search failed: %w", err)
	}

	return parseSearchOutput(res.Stdout)
}

// Download fetches reference into the output directory.
func (c *YTDLPClient) Download(ctx context.Context, reference string) error {
	dl := ytdlp.New().
		Format(c.format).
		Output(c.OutputTemplate()).
		NoPlaylist().
		Quiet()

	if _, err := dl.Run(ctx, reference); err != nil {
		return fmt.Errorf("yt-dlp download failed: %w", err)
	}
	return nil
}

// EnsureYTDLP resolves the yt-dlp executable, downloading it when it is not
// already available.
func EnsureYTDLP(ctx context.Context) error {
	if _, err := ytdlp.Install(ctx, nil); err != nil {
		return fmt.Errorf("failed to install yt-dlp: %w", err)
	}
	log.Printf("yt-dlp is available")
	return nil
}

// searchTarget builds the yt-dlp search pseudo-URL
func searchTarget(query string, limit int) string {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	return fmt.Sprintf("%s%d:%s", SearchPrefix, limit, strings.TrimSpace(query))
}

// flatEntry matches the fields yt-dlp prints for a flat search entry
type flatEntry struct {
	ID         string      `json:"id"`
	Title      string      `json:"title"`
	URL        string      `json:"url"`
	WebpageURL string      `json:"webpage_url"`
	Entries    []flatEntry `json:"entries"`
}

// reference picks the best locator available for the entry
func (e flatEntry) reference() string {
	switch {
	case e.URL != "":
		return e.URL
	case e.WebpageURL != "":
		return e.WebpageURL
	case e.ID != "":
		return fmt.Sprintf(YouTubeVideoURLTemplate, e.ID)
	}
	return ""
}

// parseSearchOutput parses JSON-lines output into results, keeping order. A
// line that is not valid JSON or an entry without a locator fails the whole
// parse.
func parseSearchOutput(output string) ([]model.SearchResult, error) {
	results := make([]model.SearchResult, 0)

	lines := strings.Split(strings.TrimSpace(output), "\n")
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var entry flatEntry
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			return nil, fmt.Errorf("malformed search output on line %d: %w", i+1, err)
		}

		// A single playlist-shaped document carries its results in entries
		entries := []flatEntry{entry}
		if len(entry.Entries) > 0 {
			entries = entry.Entries
		}

		for _, e := range entries {
			ref := e.reference()
			if ref == "" {
				return nil, fmt.Errorf("search entry %q on line %d has no reference", e.Title, i+1)
			}
			results = append(results, model.NewSearchResult(e.Title, ref))
		}
	}

	return results, nil
}
