package model

// MediaType distinguishes video formats from audio-only formats
type MediaType string

const (
	MediaTypeVideo MediaType = "video"
	MediaTypeAudio MediaType = "audio"
)

// String returns the string representation of MediaType
func (mt MediaType) String() string {
	return string(mt)
}

// FormatDetail is a single container/size pair, e.g. {MP4, 128 MB}
type FormatDetail struct {
	Format string
	Size   string
}

// QualityOption is one quality level together with all of its available
// format options
type QualityOption struct {
	Quality string
	Type    MediaType
	Formats []FormatDetail
}

// DownloadFormat is the user's final selection to be "downloaded":
// one (quality, format) pair picked from the catalog at click time
type DownloadFormat struct {
	Quality string
	Format  string
	Size    string
	Type    MediaType
}

// The catalog is static. It is not derived from video metadata; every video
// shows the same quality/format table.
var (
	videoQualityOptions = []QualityOption{
		{Quality: "1080p", Type: MediaTypeVideo, Formats: []FormatDetail{{Format: "MP4", Size: "128 MB"}}},
		{Quality: "720p", Type: MediaTypeVideo, Formats: []FormatDetail{{Format: "MP4", Size: "75 MB"}}},
		{Quality: "480p", Type: MediaTypeVideo, Formats: []FormatDetail{{Format: "MP4", Size: "42 MB"}}},
		{Quality: "360p", Type: MediaTypeVideo, Formats: []FormatDetail{{Format: "MP4", Size: "25 MB"}}},
	}

	audioQualityOptions = []QualityOption{
		{Quality: "320kbps", Type: MediaTypeAudio, Formats: []FormatDetail{{Format: "MP3", Size: "8.5 MB"}}},
		{Quality: "256kbps", Type: MediaTypeAudio, Formats: []FormatDetail{{Format: "MP3", Size: "6.8 MB"}}},
		{Quality: "128kbps", Type: MediaTypeAudio, Formats: []FormatDetail{{Format: "MP3", Size: "3.4 MB"}}},
		{Quality: "Best", Type: MediaTypeAudio, Formats: []FormatDetail{{Format: "M4A", Size: "5.1 MB"}}},
	}
)

// VideoQualityOptions returns the static video format catalog
func VideoQualityOptions() []QualityOption {
	return videoQualityOptions
}

// AudioQualityOptions returns the static audio format catalog
func AudioQualityOptions() []QualityOption {
	return audioQualityOptions
}

// Select builds the DownloadFormat for a chosen format of this quality
// option. It returns false when the format label is not in the option.
func (qo QualityOption) Select(format string) (DownloadFormat, bool) {
	for _, fd := range qo.Formats {
		if fd.Format == format {
			return DownloadFormat{
				Quality: qo.Quality,
				Format:  fd.Format,
				Size:    fd.Size,
				Type:    qo.Type,
			}, true
		}
	}
	return DownloadFormat{}, false
}
