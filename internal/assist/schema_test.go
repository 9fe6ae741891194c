package assist

import (
	"strings"
	"testing"
)

const validPayload = `{
	"title": "Lofi Hip Hop Radio",
	"channel": "Lofi Girl",
	"duration": "1:23:45",
	"uploadDate": "2022-07-12",
	"views": 1200000,
	"likes": 45000,
	"description": "Beats to relax/study to."
}`

func TestParseVideoJSON_Valid(t *testing.T) {
	info, err := parseVideoJSON(validPayload)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if info.Title != "Lofi Hip Hop Radio" {
		t.Errorf("Expected title to be parsed, got %q", info.Title)
	}
	if info.Channel != "Lofi Girl" || info.Views != 1200000 || info.Likes != 45000 {
		t.Errorf("Unexpected parsed fields: %+v", info)
	}
	if !strings.HasPrefix(info.ID, "ai-") {
		t.Errorf("Expected synthesized ai- identifier, got %q", info.ID)
	}
	if !strings.Contains(info.ThumbnailURL, "picsum.photos/seed/") {
		t.Errorf("Expected thumbnail synthesized from title, got %q", info.ThumbnailURL)
	}
}

func TestParseVideoJSON_ShortDuration(t *testing.T) {
	payload := strings.Replace(validPayload, "1:23:45", "03:32", 1)
	info, err := parseVideoJSON(payload)
	if err != nil {
		t.Fatalf("Expected MM:SS duration to be accepted, got %v", err)
	}
	if info.Duration != "03:32" {
		t.Errorf("Expected duration 03:32, got %q", info.Duration)
	}
}

func TestParseVideoJSON_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "not json", input: "no video found, sorry"},
		{name: "wrapping text", input: "Here is the video:\n" + validPayload},
		{name: "trailing text", input: validPayload + "\nHope that helps!"},
		{name: "trailing object", input: validPayload + " {}"},
		{name: "missing title", input: `{"channel":"c","duration":"01:00","uploadDate":"2023-01-01","views":1,"likes":1,"description":"d"}`},
		{name: "empty title", input: strings.Replace(validPayload, `"Lofi Hip Hop Radio"`, `""`, 1)},
		{name: "unknown field", input: strings.Replace(validPayload, `"views"`, `"viewCount"`, 1)},
		{name: "extra field", input: strings.Replace(validPayload, `}`, `, "url": "https://x"}`, 1)},
		{name: "views as string", input: strings.Replace(validPayload, "1200000", `"1200000"`, 1)},
		{name: "views as float", input: strings.Replace(validPayload, "1200000", "1.2e6", 1)},
		{name: "bad duration", input: strings.Replace(validPayload, "1:23:45", "ninety minutes", 1)},
		{name: "bad upload date", input: strings.Replace(validPayload, "2022-07-12", "12/07/2022", 1)},
		{name: "long description", input: strings.Replace(validPayload, "Beats to relax/study to.", strings.Repeat("a", 201), 1)},
		{name: "json array", input: "[" + validPayload + "]"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := parseVideoJSON(test.input); err == nil {
				t.Errorf("Expected parse of %q payload to fail", test.name)
			}
		})
	}
}

func TestParseVideoJSON_DescriptionBoundary(t *testing.T) {
	payload := strings.Replace(validPayload, "Beats to relax/study to.", strings.Repeat("é", 200), 1)
	if _, err := parseVideoJSON(payload); err != nil {
		t.Errorf("Expected a 200-rune description to be accepted, got %v", err)
	}
}
