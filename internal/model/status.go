package model

// DownloadStatus represents the status of a simulated download
type DownloadStatus string

const (
	// StatusDownloading means the progress bar is still advancing
	StatusDownloading DownloadStatus = "Downloading"

	// StatusCompleted means the download reached 100%
	StatusCompleted DownloadStatus = "Completed"

	// StatusCancelled means the download was cancelled by user
	StatusCancelled DownloadStatus = "Cancelled"

	// StatusError means the download failed. The simulator never enters this
	// state on its own; it is reserved for a real download backend.
	StatusError DownloadStatus = "Error"
)

// String returns the string representation of DownloadStatus
func (ds DownloadStatus) String() string {
	return string(ds)
}

// IsActive returns true if the download is still in progress
func (ds DownloadStatus) IsActive() bool {
	return ds == StatusDownloading
}

// IsTerminal returns true if the download is in a terminal state
// (completed, cancelled, or error)
func (ds DownloadStatus) IsTerminal() bool {
	return ds == StatusCompleted || ds == StatusCancelled || ds == StatusError
}
