package main

import (
	"log/slog"
	"os"

	"fyne.io/fyne/v2/app"

	"github.com/vidget/media-downloader/internal/assist"
	"github.com/vidget/media-downloader/internal/auth"
	"github.com/vidget/media-downloader/internal/config"
	"github.com/vidget/media-downloader/internal/progress"
	"github.com/vidget/media-downloader/internal/search"
	"github.com/vidget/media-downloader/internal/ui"
)

// Minimal entrypoint without the history database, useful for quick local
// runs of the prototype.
func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	env := config.FromEnv()

	myApp := app.NewWithID("com.vidget.media-downloader")
	myWindow := myApp.NewWindow("Media Downloader")
	myWindow.Resize(ui.DefaultWindowSize)

	simulator := progress.NewSimulator(logger)
	provider := auth.NewGoogleProvider(env.GoogleClientID, env.GoogleClientSecret, logger)

	rootUI := ui.NewRootUI(myWindow, myApp, logger,
		search.NewMockFetcher(), assist.NewClient(env.OpenAIAPIKey), simulator, nil, provider)
	myWindow.SetCloseIntercept(func() {
		rootUI.Close()
		simulator.Close()
		myWindow.Close()
	})

	myWindow.ShowAndRun()
}
