package model

import "testing"

func TestDownloadStatus_IsActive(t *testing.T) {
	tests := []struct {
		status   DownloadStatus
		expected bool
	}{
		{StatusDownloading, true},
		{StatusCompleted, false},
		{StatusCancelled, false},
		{StatusError, false},
	}

	for _, test := range tests {
		result := test.status.IsActive()
		if result != test.expected {
			t.Errorf("DownloadStatus(%s).IsActive() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestDownloadStatus_IsTerminal(t *testing.T) {
	tests := []struct {
		status   DownloadStatus
		expected bool
	}{
		{StatusDownloading, false},
		{StatusCompleted, true},
		{StatusCancelled, true},
		{StatusError, true},
	}

	for _, test := range tests {
		result := test.status.IsTerminal()
		if result != test.expected {
			t.Errorf("DownloadStatus(%s).IsTerminal() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestDownloadStatus_String(t *testing.T) {
	status := StatusDownloading
	expected := "Downloading"
	result := status.String()

	if result != expected {
		t.Errorf("DownloadStatus.String() = %s, expected %s", result, expected)
	}
}
