package ui

import (
	"context"
	"log"
	"sort"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-search-downloader/internal/app"
	"github.com/ytget/yt-search-downloader/internal/download"
	"github.com/ytget/yt-search-downloader/internal/model"
	"github.com/ytget/yt-search-downloader/internal/platform"
)

// RootUI represents the main UI structure. Every field below is owned by the
// UI goroutine; background work reaches it only through runOnMain.
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	appCtx       *app.Context
	localization *Localization
	notifier     Notifier

	searchEntry *widget.Entry
	searchBtn   *widget.Button
	downloadBtn *widget.Button
	resultsList *widget.List

	results  []model.SearchResult
	selected map[int]bool

	searching bool
	searchSeq int

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSpinner   *widget.ProgressBarInfinite

	baseCtx context.Context

	// runOnMain schedules f on the UI goroutine, runAsync runs f off it.
	runOnMain func(f func())
	runAsync  func(f func())
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, fyneApp fyne.App, appCtx *app.Context) *RootUI {
	localization := NewLocalization()
	if appCtx.Settings != nil {
		localization.SetLanguage(appCtx.Settings.GetLanguage())
	}

	ui := &RootUI{
		window:       window,
		app:          fyneApp,
		appCtx:       appCtx,
		localization: localization,
		notifier:     newDialogNotifier(window),
		selected:     make(map[int]bool),
		baseCtx:      context.Background(),
		runOnMain:    fyne.Do,
		runAsync:     func(f func()) { go f() },
	}

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.searchEntry = widget.NewEntry()
	ui.searchEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterQuery))
	// Enter in the query field behaves like the Search button
	ui.searchEntry.OnSubmitted = func(string) {
		ui.onSearch()
	}

	ui.searchBtn = widget.NewButton(ui.localization.GetText(KeySearch), ui.onSearch)
	ui.searchBtn.Importance = widget.HighImportance

	ui.downloadBtn = widget.NewButton(ui.localization.GetText(KeyDownloadSelected), ui.onDownloadSelected)

	ui.resultsList = widget.NewList(
		func() int { return len(ui.results) },
		ui.createResultItem,
		ui.updateResultItem,
	)
	// Clicking anywhere on a line toggles it, the list's own selection is not used
	ui.resultsList.OnSelected = func(id widget.ListItemID) {
		ui.resultsList.Unselect(id)
		ui.onToggleResult(id, !ui.selected[id])
		ui.resultsList.RefreshItem(id)
	}

	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Truncation = fyne.TextTruncateEllipsis
	ui.notificationSpinner = widget.NewProgressBarInfinite()
	ui.notificationSpinner.Hide()
	ui.notificationContainer = container.NewBorder(nil, nil, ui.notificationSpinner, nil, ui.notificationLabel)
	ui.notificationContainer.Hide()

	searchRow := container.NewBorder(nil, nil, nil, ui.searchBtn, ui.searchEntry)
	top := container.NewVBox(searchRow, ui.notificationContainer)
	bottom := container.NewBorder(nil, nil, nil, ui.downloadBtn, widget.NewSeparator())

	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.window.SetContent(container.NewBorder(top, bottom, nil, nil, ui.resultsList))
	ui.window.Canvas().Focus(ui.searchEntry)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	openItem := fyne.NewMenuItem(IconFolder+" "+ui.localization.GetText(KeyOpenDownloads), ui.onOpenDownloads)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	codes := make([]string, 0, len(availableLanguages))
	for code := range availableLanguages {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		langCode := code
		langItem := fyne.NewMenuItem(availableLanguages[code], func() {
			ui.onLanguageChange(langCode)
		})

		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), openItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)

	if ui.appCtx.Settings != nil {
		ui.appCtx.Settings.SetLanguage(langCode)
	}

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.searchEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterQuery))
	ui.searchBtn.SetText(ui.localization.GetText(KeySearch))
	ui.downloadBtn.SetText(ui.localization.GetText(KeyDownloadSelected))
}

// onOpenDownloads reveals the output directory in the platform file manager
func (ui *RootUI) onOpenDownloads() {
	if err := platform.OpenDirectory(ui.appCtx.DownloadDir); err != nil {
		log.Printf("Failed to open %s: %v", ui.appCtx.DownloadDir, err)
		ui.showNotification(IconError+" "+ui.localization.GetText(KeyErrorOpeningFolder)+": "+err.Error(), false)
	}
}

// onSearch clears the current results and, for a non-empty query, runs the
// search in the background. Results are applied on the UI goroutine.
func (ui *RootUI) onSearch() {
	if ui.searching {
		return
	}

	query := strings.TrimSpace(ui.searchEntry.Text)
	ui.setResults(nil)

	if query == "" {
		ui.hideNotification()
		return
	}

	ui.searchSeq++
	seq := ui.searchSeq
	ui.setSearching(true)
	ui.showNotification(IconSearch+" "+ui.localization.GetText(KeySearching), true)

	log.Printf("Searching for %q", query)

	ui.runAsync(func() {
		results, err := ui.appCtx.Search.Search(ui.baseCtx, query)
		ui.runOnMain(func() {
			ui.applySearchResults(seq, results, err)
		})
	})
}

// applySearchResults replaces the list with the outcome of search seq
func (ui *RootUI) applySearchResults(seq int, results []model.SearchResult, err error) {
	if seq != ui.searchSeq {
		log.Printf("Dropping stale search response #%d", seq)
		return
	}
	ui.setSearching(false)

	if err != nil {
		ui.setResults(nil)
		ui.hideNotification()
		ui.notifier.ShowError(err)
		return
	}

	ui.setResults(results)
	if len(results) == 0 {
		ui.showNotification(ui.localization.GetText(KeyNoResults), false)
		return
	}
	ui.showNotification(ui.localization.Format(KeyResultsFound, len(results)), false)
}

// setSearching toggles the in-flight state of the search controls
func (ui *RootUI) setSearching(searching bool) {
	ui.searching = searching
	if searching {
		ui.searchBtn.Disable()
	} else {
		ui.searchBtn.Enable()
	}
}

// setResults replaces the list contents and clears the selection
func (ui *RootUI) setResults(results []model.SearchResult) {
	ui.results = results
	ui.selected = make(map[int]bool)
	ui.resultsList.UnselectAll()
	ui.resultsList.Refresh()
	ui.resultsList.ScrollToTop()
}

func (ui *RootUI) createResultItem() fyne.CanvasObject {
	return NewResultRow(ui.onToggleResult)
}

func (ui *RootUI) updateResultItem(id widget.ListItemID, item fyne.CanvasObject) {
	row, ok := item.(*ResultRow)
	if !ok || id < 0 || id >= len(ui.results) {
		return
	}
	row.Update(id, ui.results[id], ui.selected[id])
}

// onToggleResult records a row being ticked or unticked
func (ui *RootUI) onToggleResult(id widget.ListItemID, checked bool) {
	if id < 0 || id >= len(ui.results) {
		return
	}
	if checked {
		ui.selected[id] = true
	} else {
		delete(ui.selected, id)
	}
	if !ui.searching {
		ui.showNotification(ui.localization.Format(KeySelectedCount, len(ui.selected)), false)
	}
}

// selectedReferences returns the ticked references in list order
func (ui *RootUI) selectedReferences() []string {
	ids := make([]int, 0, len(ui.selected))
	for id := range ui.selected {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	refs := make([]string, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, ui.results[id].Reference)
	}
	return refs
}

// onDownloadSelected hands the current selection to the download service
func (ui *RootUI) onDownloadSelected() {
	refs := ui.selectedReferences()
	if len(refs) == 0 {
		ui.notifier.ShowInfo(ui.localization.GetText(KeyInfo), ui.localization.GetText(KeySelectAtLeastOne))
		return
	}

	req, err := ui.appCtx.Downloads.Submit(refs)
	if err != nil {
		ui.notifier.ShowError(err)
		return
	}

	log.Printf("Submitted download request %s with %d references", req.ID, req.Len())
	ui.notifier.ShowInfo(ui.localization.GetText(KeyDownloadStartedTitle), ui.localization.GetText(KeyDownloadStarted))
}

// ListenForDownloads starts forwarding download events to the UI goroutine.
// It returns when the download service closes its events channel.
func (ui *RootUI) ListenForDownloads() {
	events := ui.appCtx.Downloads.Events()
	go func() {
		for ev := range events {
			ui.runOnMain(func() {
				ui.handleDownloadEvent(ev)
			})
		}
		log.Printf("Download event stream closed")
	}()
}

// handleDownloadEvent reports a worker notification. Runs on the UI goroutine.
func (ui *RootUI) handleDownloadEvent(ev download.Event) {
	switch ev.Kind {
	case download.EventBatchStarted:
		if !ui.searching {
			ui.showNotification(IconPlay+" "+ui.localization.GetText(KeyDownloadStartedTitle), true)
		}

	case download.EventItemCompleted:
		if ev.Item != nil {
			log.Printf("Request %s: %s done", ev.RequestID, ev.Item.Reference)
		}

	case download.EventItemFailed:
		if ev.Item == nil || ev.Item.Err == nil {
			return
		}
		ui.notifier.ShowError(ev.Item.Err)

	case download.EventBatchCompleted:
		ui.onBatchCompleted(ev.Report)
	}
}

// onBatchCompleted shows the single completion message of a request
func (ui *RootUI) onBatchCompleted(report *model.BatchReport) {
	message := ui.localization.GetText(KeyAllDownloadsCompleted)
	if report != nil && report.Failed() > 0 {
		message += LineBreak + ui.localization.Format(KeyBatchSummary, report.Succeeded(), report.Failed())
	}

	if !ui.searching {
		summary := IconDone + " " + ui.localization.GetText(KeyAllDownloadsCompleted)
		if report != nil {
			summary += MiddleDotSeparator + ui.localization.Format(KeyBatchSummary, report.Succeeded(), report.Failed())
		}
		ui.showNotification(summary, false)
	}

	ui.notifier.ShowInfo(ui.localization.GetText(KeySuccess), message)

	if ui.app != nil {
		ui.app.SendNotification(fyne.NewNotification(ui.localization.GetText(KeyAppTitle), message))
	}
}

// showNotification displays a message in the notification panel under the query input.
// When spinning is true, a spinner is shown to indicate background activity.
func (ui *RootUI) showNotification(message string, spinning bool) {
	ui.notificationLabel.SetText(message)
	if spinning {
		ui.notificationSpinner.Show()
	} else {
		ui.notificationSpinner.Hide()
	}
	ui.notificationContainer.Show()
	ui.notificationContainer.Refresh()
}

// hideNotification hides the notification panel.
func (ui *RootUI) hideNotification() {
	ui.notificationSpinner.Hide()
	ui.notificationContainer.Hide()
}
