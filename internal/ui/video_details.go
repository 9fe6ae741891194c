package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/vidget/media-downloader/internal/model"
)

// videoDetailsPanel shows the metadata of the current video: thumbnail,
// title, channel, view/like counts, upload date and description
type videoDetailsPanel struct {
	localization *Localization

	thumbnail   *canvas.Image
	title       *widget.Label
	channel     *widget.Label
	stats       *widget.Label
	description *widget.Label

	content *fyne.Container
}

func newVideoDetailsPanel(localization *Localization) *videoDetailsPanel {
	p := &videoDetailsPanel{
		localization: localization,
		thumbnail:    canvas.NewImageFromResource(nil),
		title:        widget.NewLabel(""),
		channel:      widget.NewLabel(""),
		stats:        widget.NewLabel(""),
		description:  widget.NewLabel(""),
	}

	p.thumbnail.FillMode = canvas.ImageFillContain
	p.thumbnail.SetMinSize(fyne.NewSize(320, 180))
	p.title.TextStyle = fyne.TextStyle{Bold: true}
	p.title.Wrapping = fyne.TextWrapWord
	p.description.Wrapping = fyne.TextWrapWord

	p.content = container.NewVBox(
		p.thumbnail,
		p.title,
		p.channel,
		p.stats,
		p.description,
	)
	p.content.Hide()

	return p
}

// SetVideo updates the panel with new metadata and makes it visible
func (p *videoDetailsPanel) SetVideo(info *model.VideoInfo) {
	p.title.SetText(info.Title)
	p.channel.SetText(fmt.Sprintf("%s: %s", p.localization.GetText(KeyChannel), info.Channel))
	p.stats.SetText(fmt.Sprintf("%s %s • %s %s • %s %s • %s",
		formatCount(info.Views), p.localization.GetText(KeyViews),
		formatCount(info.Likes), p.localization.GetText(KeyLikes),
		p.localization.GetText(KeyUploaded), info.UploadDate,
		info.Duration))
	p.description.SetText(info.Description)

	p.loadThumbnail(info.ThumbnailURL)
	p.content.Show()
}

// Clear hides the panel and drops the displayed metadata
func (p *videoDetailsPanel) Clear() {
	p.content.Hide()
	p.thumbnail.Resource = nil
	p.thumbnail.Refresh()
}

// loadThumbnail fetches the thumbnail in the background so the metadata
// shows immediately
func (p *videoDetailsPanel) loadThumbnail(url string) {
	p.thumbnail.Resource = nil
	p.thumbnail.Refresh()

	go func() {
		res, err := fyne.LoadResourceFromURLString(url)
		if err != nil {
			return
		}
		fyne.Do(func() {
			p.thumbnail.Resource = res
			p.thumbnail.Refresh()
		})
	}()
}

// formatCount renders a count with dot separators, e.g. 1.234.567
func formatCount(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}

	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, c)
	}
	return string(out)
}
