package model

import "testing"

func TestVideoQualityOptions(t *testing.T) {
	options := VideoQualityOptions()

	if len(options) != 4 {
		t.Fatalf("Expected 4 video quality options, got %d", len(options))
	}

	expectedQualities := []string{"1080p", "720p", "480p", "360p"}
	for i, quality := range expectedQualities {
		if options[i].Quality != quality {
			t.Errorf("Expected quality %s at index %d, got %s", quality, i, options[i].Quality)
		}
		if options[i].Type != MediaTypeVideo {
			t.Errorf("Expected video type for %s, got %s", quality, options[i].Type)
		}
		if len(options[i].Formats) == 0 {
			t.Errorf("Expected at least one format for %s", quality)
		}
	}
}

func TestAudioQualityOptions(t *testing.T) {
	options := AudioQualityOptions()

	if len(options) != 4 {
		t.Fatalf("Expected 4 audio quality options, got %d", len(options))
	}

	for _, option := range options {
		if option.Type != MediaTypeAudio {
			t.Errorf("Expected audio type for %s, got %s", option.Quality, option.Type)
		}
	}

	if options[3].Quality != "Best" || options[3].Formats[0].Format != "M4A" {
		t.Errorf("Expected Best/M4A as last audio option, got %s/%s",
			options[3].Quality, options[3].Formats[0].Format)
	}
}

func TestQualityOption_Select(t *testing.T) {
	option := QualityOption{
		Quality: "720p",
		Type:    MediaTypeVideo,
		Formats: []FormatDetail{{Format: "MP4", Size: "75 MB"}},
	}

	format, ok := option.Select("MP4")
	if !ok {
		t.Fatal("Expected MP4 to be selectable from 720p option")
	}

	if format.Quality != "720p" || format.Format != "MP4" || format.Size != "75 MB" || format.Type != MediaTypeVideo {
		t.Errorf("Unexpected selection: %+v", format)
	}

	if _, ok := option.Select("WEBM"); ok {
		t.Error("Expected selection of unknown format to fail")
	}
}
