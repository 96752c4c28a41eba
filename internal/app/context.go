package app

import (
	"context"
	"fmt"
	"log"

	"fyne.io/fyne/v2"

	"github.com/ytget/yt-search-downloader/internal/config"
	"github.com/ytget/yt-search-downloader/internal/download"
	"github.com/ytget/yt-search-downloader/internal/model"
	"github.com/ytget/yt-search-downloader/internal/platform"
	"github.com/ytget/yt-search-downloader/internal/search"
)

// Searcher is the search operation used by the UI
type Searcher interface {
	Search(ctx context.Context, query string) ([]model.SearchResult, error)
}

// Context holds the services shared by the UI. It is built once at startup
// and passed to every component that needs it.
type Context struct {
	Settings    *config.Settings
	Search      Searcher
	Downloads   download.Downloader
	DownloadDir string
}

// NewContext wires an explicit set of services
func NewContext(settings *config.Settings, searcher Searcher, downloads download.Downloader, downloadDir string) *Context {
	return &Context{
		Settings:    settings,
		Search:      searcher,
		Downloads:   downloads,
		DownloadDir: downloadDir,
	}
}

// Bootstrap builds the production context: settings from preferences, the
// output directory, the yt-dlp client, playlist lister and both services.
func Bootstrap(fyneApp fyne.App, version string) (*Context, error) {
	settings := config.NewSettings(fyneApp)

	downloadDir := settings.GetDownloadDirectory()
	if err := platform.CreateDirectoryIfNotExists(downloadDir); err != nil {
		return nil, fmt.Errorf("failed to ensure downloads dir %s: %w", downloadDir, err)
	}

	client := platform.NewYTDLPClient(downloadDir, settings.GetVideoFormat(), settings.GetFilenameTemplate())
	lister := platform.NewPlaylistLister("yt-search-downloader/" + version)

	searchSvc := search.NewService(client, lister, settings.GetSearchLimit())
	downloadSvc := download.NewService(client)

	log.Printf("Downloads go to %s (format %s, search limit %d)",
		client.OutputTemplate(), settings.GetVideoFormat(), searchSvc.Limit())

	return NewContext(settings, searchSvc, downloadSvc, downloadDir), nil
}

// Close releases the background services
func (c *Context) Close() {
	if c.Downloads != nil {
		c.Downloads.Close()
	}
}
