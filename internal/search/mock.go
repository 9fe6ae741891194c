package search

import (
	"context"
	"time"

	"github.com/vidget/media-downloader/internal/model"
)

// FetchDelay is the simulated network latency of the mock resolver
const FetchDelay = 1500 * time.Millisecond

// MockFetcher returns a fixed metadata record after a simulated delay. It
// exists to exercise the loading state of the UI; the output never varies
// and the fetch never fails.
type MockFetcher struct {
	delay time.Duration
}

// NewMockFetcher creates a mock fetcher with the default simulated delay
func NewMockFetcher() *MockFetcher {
	return &MockFetcher{delay: FetchDelay}
}

// NewMockFetcherWithDelay creates a mock fetcher with a custom delay.
// Tests use a zero delay.
func NewMockFetcherWithDelay(delay time.Duration) *MockFetcher {
	return &MockFetcher{delay: delay}
}

// Fetch returns the fixed VideoInfo record. The context cancels the
// simulated wait, not any real work.
func (f *MockFetcher) Fetch(ctx context.Context) (*model.VideoInfo, error) {
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return model.MockVideoInfo(), nil
}
