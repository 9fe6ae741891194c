package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/vidget/media-downloader/internal/model"
)

// historyPanel lists the signed-in user's past downloads, newest first.
// It is only shown while a user is signed in and has at least one item.
type historyPanel struct {
	localization *Localization
	onClear      func()

	items   []model.HistoryItem
	list    *widget.List
	content *fyne.Container
}

func newHistoryPanel(localization *Localization, onClear func()) *historyPanel {
	p := &historyPanel{
		localization: localization,
		onClear:      onClear,
	}

	p.list = widget.NewList(
		func() int { return len(p.items) },
		func() fyne.CanvasObject {
			title := widget.NewLabel("")
			title.TextStyle = fyne.TextStyle{Bold: true}
			title.Truncation = fyne.TextTruncateEllipsis
			detail := widget.NewLabel("")
			return container.NewVBox(title, detail)
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id >= len(p.items) {
				return
			}
			item := p.items[id]
			box := obj.(*fyne.Container)
			box.Objects[0].(*widget.Label).SetText(item.VideoTitle)
			box.Objects[1].(*widget.Label).SetText(fmt.Sprintf("%s • %s.%s • %s",
				item.Timestamp.Format("02/01/2006 15:04"),
				item.Format.Quality,
				strings.ToLower(item.Format.Format),
				item.Format.Size))
		},
	)

	header := widget.NewLabel(localization.GetText(KeyHistoryTitle))
	header.TextStyle = fyne.TextStyle{Bold: true}

	clear := widget.NewButton(localization.GetText(KeyClearHistory), func() {
		p.onClear()
	})

	p.content = container.NewBorder(
		container.NewBorder(nil, nil, header, clear),
		nil, nil, nil,
		p.list,
	)
	p.content.Hide()

	return p
}

// SetItems replaces the displayed history snapshot. The panel hides itself
// when the snapshot is empty.
func (p *historyPanel) SetItems(items []model.HistoryItem) {
	p.items = items
	p.list.Refresh()
	if len(items) == 0 {
		p.content.Hide()
	} else {
		p.content.Show()
	}
}
