package config

import (
	"strings"

	"fyne.io/fyne/v2"

	"github.com/ytget/yt-search-downloader/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyDownloadDir      = "download_directory"
	KeySearchLimit      = "search_limit"
	KeyVideoFormat      = "video_format"
	KeyFilenameTemplate = "filename_template"
	KeyLanguage         = "app_language"
)

// Default values
const (
	DefaultDownloadDir      = "downloads"
	DefaultSearchLimit      = platform.DefaultSearchLimit
	DefaultVideoFormat      = platform.DefaultVideoFormat
	DefaultFilenameTemplate = platform.DefaultFilenameTemplate
	DefaultLanguage         = "system"
)

// Search limit bounds
const (
	MinSearchLimit = 1
	MaxSearchLimit = 500
)

// Settings reads application configuration from Fyne preferences. Values that
// are not stored fall back to the defaults above; only the language is
// written back by the application.
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDownloadDirectory returns the output directory for downloads
func (s *Settings) GetDownloadDirectory() string {
	dir := strings.TrimSpace(s.app.Preferences().String(KeyDownloadDir))
	if dir == "" {
		return DefaultDownloadDir
	}
	return dir
}

// GetSearchLimit returns the maximum number of results per search
func (s *Settings) GetSearchLimit() int {
	value := s.app.Preferences().Int(KeySearchLimit)
	if value == 0 {
		return DefaultSearchLimit
	}
	if value < MinSearchLimit {
		return MinSearchLimit
	}
	if value > MaxSearchLimit {
		return MaxSearchLimit
	}
	return value
}

// GetVideoFormat returns the yt-dlp format selector used for downloads
func (s *Settings) GetVideoFormat() string {
	format := strings.TrimSpace(s.app.Preferences().String(KeyVideoFormat))
	if format == "" {
		return DefaultVideoFormat
	}
	return format
}

// GetFilenameTemplate returns the yt-dlp filename template
func (s *Settings) GetFilenameTemplate() string {
	template := strings.TrimSpace(s.app.Preferences().String(KeyFilenameTemplate))
	if template == "" {
		return DefaultFilenameTemplate
	}
	return template
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}
