package model

import (
	"fmt"
	"strings"
)

// Title length shown in the progress toast before truncation
const displayTitleMax = 30

// Download represents the one in-flight (or terminal but not yet dismissed)
// simulated download. At most one Download exists at any instant.
type Download struct {
	Format     DownloadFormat
	VideoTitle string
	Progress   float64 // 0 to 100
	Status     DownloadStatus
}

// GetDisplayFileName returns the pseudo file name shown in the progress
// toast, e.g. "My Video Titl... - 720p.mp4"
func (d *Download) GetDisplayFileName() string {
	title := d.VideoTitle
	if runes := []rune(title); len(runes) > displayTitleMax {
		title = string(runes[:displayTitleMax])
	}
	return fmt.Sprintf("%s... - %s.%s", title, d.Format.Quality, strings.ToLower(d.Format.Format))
}

// Percent returns the progress rounded down to a whole percentage for display
func (d *Download) Percent() int {
	return int(d.Progress)
}
