package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

// Notifier shows modal messages to the user. It must be called on the UI goroutine.
type Notifier interface {
	ShowError(err error)
	ShowInfo(title, message string)
}

// dialogNotifier renders notifications as modal dialogs on a window
type dialogNotifier struct {
	window fyne.Window
}

func newDialogNotifier(window fyne.Window) *dialogNotifier {
	return &dialogNotifier{window: window}
}

func (n *dialogNotifier) ShowError(err error) {
	dialog.ShowError(err, n.window)
}

func (n *dialogNotifier) ShowInfo(title, message string) {
	dialog.ShowInformation(title, message, n.window)
}
