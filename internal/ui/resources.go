package ui

import (
	"fyne.io/fyne/v2"
)

const (
	AppIcon = "yt-search-downloader.png"
)

// LoadLogoResource loads the window icon from the working directory.
// Missing icons are not an error for callers; they keep the default one.
func LoadLogoResource() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}
