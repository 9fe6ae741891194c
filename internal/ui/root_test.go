package ui

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	"github.com/vidget/media-downloader/internal/assist"
	"github.com/vidget/media-downloader/internal/model"
	"github.com/vidget/media-downloader/internal/progress"
	"github.com/vidget/media-downloader/internal/search"
)

// stubProvider reports a settled signed-out state immediately
type stubProvider struct {
	callback func(*model.Identity)
}

func (p *stubProvider) Subscribe(callback func(*model.Identity)) func() {
	p.callback = callback
	callback(nil)
	return func() {}
}

func (p *stubProvider) IsLoading() bool               { return false }
func (p *stubProvider) SignIn(context.Context) error  { return nil }
func (p *stubProvider) SignOut(context.Context) error { return nil }

func newTestRootUI(t *testing.T) *RootUI {
	t.Helper()

	a := test.NewApp()
	w := a.NewWindow("test")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	simulator := progress.NewSimulator(logger)
	t.Cleanup(simulator.Close)

	// The long fetch delay keeps searches pending for the whole test
	ui := NewRootUI(w, a, logger,
		search.NewMockFetcherWithDelay(time.Hour), assist.NewClient(""), simulator,
		nil, &stubProvider{})
	t.Cleanup(ui.Close)

	return ui
}

func TestRootUI_SearchBlockedWhileLoading(t *testing.T) {
	ui := newTestRootUI(t)

	ui.queryEntry.SetText("https://youtube.com/watch?v=abc123")
	ui.loading.Show()

	gen := ui.searchGen.Load()
	ui.onSearch()
	if ui.searchGen.Load() != gen {
		t.Error("Expected search to be ignored while another is in flight")
	}

	ui.onSmartSearch()
	if ui.searchGen.Load() != gen {
		t.Error("Expected smart search to be ignored while another is in flight")
	}

	ui.session = &assist.Session{}
	ui.refineEntry.SetText("newer")
	ui.onRefine()
	if ui.searchGen.Load() != gen {
		t.Error("Expected refine to be ignored while another is in flight")
	}
}

func TestRootUI_SearchStartsWhenIdle(t *testing.T) {
	ui := newTestRootUI(t)

	ui.queryEntry.SetText("https://youtube.com/watch?v=abc123")

	gen := ui.searchGen.Load()
	ui.onSearch()
	if ui.searchGen.Load() != gen+1 {
		t.Error("Expected an idle search to start a new generation")
	}
}

func TestRootUI_QueryEditClearsNotice(t *testing.T) {
	ui := newTestRootUI(t)

	ui.queryEntry.SetText("not a url")
	ui.onSearch()
	if !ui.notice.Visible() {
		t.Fatal("Expected an invalid URL to show the error notice")
	}

	ui.queryEntry.SetText("not a url, edited")
	if ui.notice.Visible() {
		t.Error("Expected editing the query to clear the error notice")
	}
}

func TestRootUI_CompletionDuringIdentityChange(t *testing.T) {
	ui := newTestRootUI(t)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			ui.onDownloadComplete(model.Download{
				VideoTitle: "title",
				Format:     model.DownloadFormat{Quality: "720p", Format: "MP4"},
				Progress:   100,
				Status:     model.StatusCompleted,
			})
		}
	}()

	for i := 0; i < 200; i++ {
		ui.onIdentityChange(&model.Identity{UID: "user-1", DisplayName: "User"})
		ui.onIdentityChange(nil)
	}
	<-done
}
