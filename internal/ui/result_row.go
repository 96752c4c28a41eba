package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-search-downloader/internal/model"
)

// ResultRow is one line of the results list: a selection check followed by
// the fixed-width "title | reference" text. Rows are recycled by the list,
// so the row only remembers which index it currently shows.
type ResultRow struct {
	widget.BaseWidget

	id        widget.ListItemID
	check     *widget.Check
	lineLabel *widget.Label

	onToggle func(id widget.ListItemID, checked bool)
}

// NewResultRow creates an empty row; onToggle is called when the user ticks it
func NewResultRow(onToggle func(id widget.ListItemID, checked bool)) *ResultRow {
	rr := &ResultRow{
		id:       -1,
		onToggle: onToggle,
	}
	rr.ExtendBaseWidget(rr)
	rr.createUI()
	return rr
}

func (rr *ResultRow) createUI() {
	rr.check = widget.NewCheck("", rr.onCheckChanged)

	rr.lineLabel = widget.NewLabel("")
	rr.lineLabel.TextStyle = fyne.TextStyle{Monospace: true}
	rr.lineLabel.Truncation = fyne.TextTruncateEllipsis
}

// Update binds the row to a result. The check is set without firing onToggle.
func (rr *ResultRow) Update(id widget.ListItemID, result model.SearchResult, checked bool) {
	rr.id = id
	rr.lineLabel.SetText(result.DisplayLine())

	rr.check.OnChanged = nil
	rr.check.SetChecked(checked)
	rr.check.OnChanged = rr.onCheckChanged
}

// Checked reports whether the row is ticked
func (rr *ResultRow) Checked() bool {
	return rr.check.Checked
}

// Text returns the rendered line
func (rr *ResultRow) Text() string {
	return rr.lineLabel.Text
}

func (rr *ResultRow) onCheckChanged(checked bool) {
	if rr.onToggle == nil || rr.id < 0 {
		return
	}
	rr.onToggle(rr.id, checked)
}

// CreateRenderer creates the widget renderer
func (rr *ResultRow) CreateRenderer() fyne.WidgetRenderer {
	return &resultRowRenderer{row: rr}
}

// resultRowRenderer lays out the check pinned left and the line filling the rest
type resultRowRenderer struct {
	row    *ResultRow
	layout *fyne.Container
}

func (r *resultRowRenderer) Layout(size fyne.Size) {
	if r.layout == nil {
		r.createLayout()
	}
	r.layout.Resize(size)
}

func (r *resultRowRenderer) MinSize() fyne.Size {
	if r.layout == nil {
		r.createLayout()
	}
	size := r.layout.MinSize()
	if size.Width < RowMinWidth {
		size.Width = RowMinWidth
	}
	if size.Height < RowMinHeight {
		size.Height = RowMinHeight
	}
	return size
}

func (r *resultRowRenderer) Refresh() {
	if r.layout == nil {
		r.createLayout()
	}
	r.layout.Refresh()
}

func (r *resultRowRenderer) Objects() []fyne.CanvasObject {
	if r.layout == nil {
		r.createLayout()
	}
	return []fyne.CanvasObject{r.layout}
}

func (r *resultRowRenderer) Destroy() {}

func (r *resultRowRenderer) createLayout() {
	r.layout = container.NewBorder(nil, nil, r.row.check, nil, r.row.lineLabel)
}
