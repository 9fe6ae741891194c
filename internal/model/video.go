package model

import (
	"fmt"
	"net/url"
)

// Thumbnail dimensions used for every generated thumbnail URL
const (
	ThumbnailWidth  = 1280
	ThumbnailHeight = 720
)

// VideoInfo represents the metadata of a single video. A VideoInfo is
// immutable once produced; each new search replaces it wholesale.
type VideoInfo struct {
	ID           string
	ThumbnailURL string
	Title        string
	Channel      string
	Duration     string // MM:SS or HH:MM:SS
	UploadDate   string // YYYY-MM-DD
	Views        int64
	Likes        int64
	Description  string
}

// ThumbnailURL builds a deterministic placeholder thumbnail URL from a seed
// string
func ThumbnailURL(seed string) string {
	return fmt.Sprintf("https://picsum.photos/seed/%s/%d/%d",
		url.PathEscape(seed), ThumbnailWidth, ThumbnailHeight)
}

// MockVideoInfo returns the fixed metadata record used by the plain-search
// path. The same record is returned on every call; the path exists to
// exercise the loading state, not to vary output.
func MockVideoInfo() *VideoInfo {
	return &VideoInfo{
		ID:           "dQw4w9WgXcQ",
		ThumbnailURL: ThumbnailURL("youtubedl"),
		Title:        "Título do Vídeo de Exemplo - Lorem Ipsum Dolor Sit Amet Consectetur",
		Channel:      "Canal de Exemplo",
		Duration:     "03:32",
		UploadDate:   "2023-10-26",
		Views:        1234567,
		Likes:        98765,
		Description: "Esta é uma descrição de exemplo para o vídeo. Lorem ipsum dolor " +
			"sit amet, consectetur adipiscing elit. Sed do eiusmod tempor incididunt " +
			"ut labore et dolore magna aliqua.",
	}
}
