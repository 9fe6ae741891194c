package main

import (
	"fmt"
	"log/slog"
	"os"

	"fyne.io/fyne/v2/app"

	"github.com/vidget/media-downloader/internal/assist"
	"github.com/vidget/media-downloader/internal/auth"
	"github.com/vidget/media-downloader/internal/config"
	"github.com/vidget/media-downloader/internal/history"
	"github.com/vidget/media-downloader/internal/progress"
	"github.com/vidget/media-downloader/internal/search"
	"github.com/vidget/media-downloader/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.vidget.media-downloader"
	AppName = "Media Downloader"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	logger.Info("starting", "app", AppName, "version", version)

	env := config.FromEnv()

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(ui.DefaultWindowSize)

	// Initialize services
	fetcher := search.NewMockFetcher()
	assistant := assist.NewClient(env.OpenAIAPIKey)
	simulator := progress.NewSimulator(logger)
	provider := auth.NewGoogleProvider(env.GoogleClientID, env.GoogleClientSecret, logger)

	// History is optional, the app runs without a database
	var store *history.Store
	if env.HistoryEnabled() {
		pg, err := history.NewPostgres(history.PostgresInfo{
			Host:     env.PostgresHost,
			Port:     env.PostgresPort,
			User:     env.PostgresUser,
			Password: env.PostgresPassword,
			Database: env.PostgresDatabase,
		})
		if err != nil {
			logger.Error("history store unavailable", "error", err)
		} else {
			store = history.NewStore(pg, logger)
		}
	}

	// Create and setup UI
	rootUI := ui.NewRootUI(myWindow, myApp, logger, fetcher, assistant, simulator, store, provider)
	myWindow.SetCloseIntercept(func() {
		rootUI.Close()
		simulator.Close()
		myWindow.Close()
	})

	// Show and run
	myWindow.ShowAndRun()
}
