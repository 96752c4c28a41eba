package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"

	"github.com/ytget/yt-search-downloader/internal/app"
	"github.com/ytget/yt-search-downloader/internal/platform"
	"github.com/ytget/yt-search-downloader/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.yt-search-downloader"
	AppName = "YT Search Downloader"

	WindowWidth  = 900
	WindowHeight = 600

	// yt-dlp may have to be fetched on first start
	InstallTimeout = 5 * time.Minute
)

func main() {
	log.Printf("%s v%s starting...", AppName, version)

	myApp := fyneapp.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	if logo, err := ui.LoadLogoResource(); err == nil {
		myApp.SetIcon(logo)
		myWindow.SetIcon(logo)
	}

	appCtx, err := app.Bootstrap(myApp, version)
	if err != nil {
		log.Printf("Startup failed: %v", err)
		dialog.ShowError(err, myWindow)
		myWindow.ShowAndRun()
		return
	}

	installCtx, cancelInstall := context.WithTimeout(context.Background(), InstallTimeout)
	go func() {
		defer cancelInstall()
		if err := platform.EnsureYTDLP(installCtx); err != nil {
			log.Printf("yt-dlp is not available yet: %v", err)
		}
	}()

	rootUI := ui.NewRootUI(myWindow, myApp, appCtx)
	rootUI.ListenForDownloads()

	myWindow.SetOnClosed(func() {
		cancelInstall()
		appCtx.Close()
	})

	myWindow.ShowAndRun()
}
