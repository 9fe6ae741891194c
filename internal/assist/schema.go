package assist

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/vidget/media-downloader/internal/model"
)

// The completion must answer with exactly these seven fields. Anything
// else -- missing fields, wrong types, unknown fields, wrapping text --
// fails closed.
type videoPayload struct {
	Title       *string `json:"title"`
	Channel     *string `json:"channel"`
	Duration    *string `json:"duration"`
	UploadDate  *string `json:"uploadDate"`
	Views       *int64  `json:"views"`
	Likes       *int64  `json:"likes"`
	Description *string `json:"description"`
}

const maxDescriptionLen = 200

var (
	durationRegex   = regexp.MustCompile(`^(\d{1,2}:)?\d{1,2}:\d{2}$`)
	uploadDateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// parseVideoJSON decodes a completion answer into a VideoInfo, synthesizing
// the identifier and thumbnail from the title
func parseVideoJSON(text string) (*model.VideoInfo, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.DisallowUnknownFields()

	var payload videoPayload
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	// A single JSON object and nothing after it
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("trailing content after JSON object")
	}

	if err := payload.validate(); err != nil {
		return nil, err
	}

	return &model.VideoInfo{
		ID:           newVideoID(),
		ThumbnailURL: model.ThumbnailURL(*payload.Title),
		Title:        *payload.Title,
		Channel:      *payload.Channel,
		Duration:     *payload.Duration,
		UploadDate:   *payload.UploadDate,
		Views:        *payload.Views,
		Likes:        *payload.Likes,
		Description:  *payload.Description,
	}, nil
}

func (p *videoPayload) validate() error {
	required := map[string]bool{
		"title":       p.Title != nil && *p.Title != "",
		"channel":     p.Channel != nil && *p.Channel != "",
		"duration":    p.Duration != nil,
		"uploadDate":  p.UploadDate != nil,
		"views":       p.Views != nil,
		"likes":       p.Likes != nil,
		"description": p.Description != nil,
	}
	for field, present := range required {
		if !present {
			return fmt.Errorf("missing required field %q", field)
		}
	}

	if !durationRegex.MatchString(*p.Duration) {
		return fmt.Errorf("duration %q is not MM:SS or HH:MM:SS", *p.Duration)
	}
	if !uploadDateRegex.MatchString(*p.UploadDate) {
		return fmt.Errorf("uploadDate %q is not YYYY-MM-DD", *p.UploadDate)
	}
	if utf8.RuneCountInString(*p.Description) > maxDescriptionLen {
		return fmt.Errorf("description exceeds %d characters", maxDescriptionLen)
	}

	return nil
}
