package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/vidget/media-downloader/internal/model"
)

// progressToast is the bottom-right popup showing the one in-flight or
// just-finished download. It appears when a download starts and disappears
// when the terminal state is dismissed.
type progressToast struct {
	localization *Localization
	window       fyne.Window
	onCancel     func()

	fileName *widget.Label
	bar      *widget.ProgressBar
	status   *widget.Label
	cancel   *widget.Button
	popup    *widget.PopUp
}

func newProgressToast(localization *Localization, window fyne.Window, onCancel func()) *progressToast {
	t := &progressToast{
		localization: localization,
		window:       window,
		onCancel:     onCancel,
		fileName:     widget.NewLabel(""),
		bar:          widget.NewProgressBar(),
		status:       widget.NewLabel(""),
	}

	t.fileName.TextStyle = fyne.TextStyle{Bold: true}
	t.fileName.Truncation = fyne.TextTruncateEllipsis
	t.bar.Max = 100
	t.cancel = widget.NewButton(localization.GetText(KeyCancel), func() {
		t.onCancel()
	})

	content := container.NewVBox(
		t.fileName,
		t.bar,
		container.NewBorder(nil, nil, t.status, t.cancel),
	)

	t.popup = widget.NewPopUp(content, window.Canvas())

	return t
}

// Update reflects the given download state, nil hides the toast
func (t *progressToast) Update(d *model.Download) {
	if d == nil {
		t.popup.Hide()
		return
	}

	t.fileName.SetText(d.GetDisplayFileName())
	t.bar.SetValue(d.Progress)

	switch d.Status {
	case model.StatusCompleted:
		t.status.SetText(t.localization.GetText(KeyCompleted))
		t.cancel.Hide()
	case model.StatusError, model.StatusCancelled:
		t.status.SetText(t.localization.GetText(KeyFailed))
		t.cancel.Hide()
	default:
		t.status.SetText(fmt.Sprintf("%d%%", d.Percent()))
		t.cancel.Show()
	}

	t.reposition()
	t.popup.Show()
}

// reposition anchors the toast to the bottom-right corner
func (t *progressToast) reposition() {
	canvasSize := t.window.Canvas().Size()
	t.popup.Resize(fyne.NewSize(ToastWidth, t.popup.MinSize().Height))
	t.popup.Move(fyne.NewPos(
		canvasSize.Width-ToastWidth-ToastMargin,
		canvasSize.Height-t.popup.MinSize().Height-ToastMargin,
	))
}
