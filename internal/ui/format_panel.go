package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/vidget/media-downloader/internal/model"
)

// formatPanel presents the static quality/format catalog in a Video/Audio
// tab pair. Each quality row has a format dropdown and a download button.
type formatPanel struct {
	localization *Localization
	onDownload   func(model.DownloadFormat)

	downloadButtons []*widget.Button
	content         *fyne.Container
}

func newFormatPanel(localization *Localization, onDownload func(model.DownloadFormat)) *formatPanel {
	p := &formatPanel{
		localization: localization,
		onDownload:   onDownload,
	}

	tabs := container.NewAppTabs(
		container.NewTabItem(localization.GetText(KeyVideoTab), p.buildCatalog(model.VideoQualityOptions())),
		container.NewTabItem(localization.GetText(KeyAudioTab), p.buildCatalog(model.AudioQualityOptions())),
	)

	p.content = container.NewVBox(tabs)
	p.content.Hide()

	return p
}

// buildCatalog renders one quality option per row
func (p *formatPanel) buildCatalog(options []model.QualityOption) fyne.CanvasObject {
	rows := container.NewVBox()
	for _, opt := range options {
		rows.Add(p.buildRow(opt))
	}
	return rows
}

func (p *formatPanel) buildRow(opt model.QualityOption) fyne.CanvasObject {
	quality := widget.NewLabel(opt.Quality)
	quality.TextStyle = fyne.TextStyle{Bold: true}

	formats := make([]string, 0, len(opt.Formats))
	for _, fd := range opt.Formats {
		formats = append(formats, fd.Format)
	}

	formatSelect := widget.NewSelect(formats, nil)
	formatSelect.SetSelected(formats[0])

	size := widget.NewLabel(opt.Formats[0].Size)
	formatSelect.OnChanged = func(format string) {
		if df, ok := opt.Select(format); ok {
			size.SetText(df.Size)
		}
	}

	download := widget.NewButton(p.localization.GetText(KeyDownload), func() {
		if df, ok := opt.Select(formatSelect.Selected); ok {
			p.onDownload(df)
		}
	})
	download.Importance = widget.HighImportance
	p.downloadButtons = append(p.downloadButtons, download)

	return container.NewBorder(nil, nil,
		container.NewHBox(quality, formatSelect, size), download)
}

// Show makes the catalog visible
func (p *formatPanel) Show() {
	p.content.Show()
}

// Hide hides the catalog
func (p *formatPanel) Hide() {
	p.content.Hide()
}

// SetDownloadsEnabled toggles all download buttons, used to block a second
// download while one is in flight
func (p *formatPanel) SetDownloadsEnabled(enabled bool) {
	for _, b := range p.downloadButtons {
		if enabled {
			b.Enable()
		} else {
			b.Disable()
		}
	}
}
