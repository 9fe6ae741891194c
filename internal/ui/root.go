package ui

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/vidget/media-downloader/internal/assist"
	"github.com/vidget/media-downloader/internal/auth"
	"github.com/vidget/media-downloader/internal/config"
	"github.com/vidget/media-downloader/internal/history"
	"github.com/vidget/media-downloader/internal/model"
	"github.com/vidget/media-downloader/internal/progress"
	"github.com/vidget/media-downloader/internal/search"
)

// RootUI represents the main UI structure
type RootUI struct {
	window fyne.Window
	app    fyne.App
	logger *slog.Logger

	settings     *config.Settings
	localization *Localization

	fetcher   *search.MockFetcher
	assistant *assist.Client
	simulator *progress.Simulator
	store     *history.Store // nil when history is disabled
	provider  auth.Provider

	// UI components
	queryEntry  *widget.Entry
	searchBtn   *widget.Button
	smartBtn    *widget.Button
	refineEntry *widget.Entry
	refineBtn   *widget.Button
	refineRow   *fyne.Container
	notice      *widget.Label
	loading     *widget.ProgressBarInfinite
	details     *videoDetailsPanel
	formats     *formatPanel
	toast       *progressToast
	historyView *historyPanel
	authView    *authArea

	// State. The identity is read from the simulator's callback goroutine,
	// everything else stays confined to the Fyne thread.
	videoInfo    *model.VideoInfo
	session      *assist.Session
	identity     atomic.Pointer[model.Identity]
	historyItems []model.HistoryItem
	searchGen    atomic.Int64
	historyStop  func()
	authUnsub    func()
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, logger *slog.Logger,
	fetcher *search.MockFetcher, assistant *assist.Client, simulator *progress.Simulator,
	store *history.Store, provider auth.Provider) *RootUI {

	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		logger:       logger,
		settings:     settings,
		localization: localization,
		fetcher:      fetcher,
		assistant:    assistant,
		simulator:    simulator,
		store:        store,
		provider:     provider,
	}

	app.Settings().SetTheme(NewAppTheme(settings.GetAppearance()))
	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.simulator.SetUpdateCallback(ui.onDownloadUpdate)
	ui.simulator.SetCompletionCallback(ui.onDownloadComplete)

	ui.setupUI()
	ui.authUnsub = ui.provider.Subscribe(ui.onIdentityChange)

	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.queryEntry = widget.NewEntry()
	ui.queryEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterQuery))
	ui.queryEntry.OnChanged = ui.onQueryChanged
	ui.queryEntry.OnSubmitted = func(string) { ui.onSearch() }

	ui.searchBtn = widget.NewButton(ui.localization.GetText(KeySearch), ui.onSearch)
	ui.searchBtn.Importance = widget.HighImportance
	ui.smartBtn = widget.NewButton(ui.localization.GetText(KeySmartSearch), ui.onSmartSearch)

	searchRow := container.NewBorder(nil, nil, nil,
		container.NewHBox(ui.searchBtn, ui.smartBtn), ui.queryEntry)

	ui.refineEntry = widget.NewEntry()
	ui.refineEntry.SetPlaceHolder(ui.localization.GetText(KeyRefinePlaceholder))
	ui.refineEntry.OnSubmitted = func(string) { ui.onRefine() }
	ui.refineBtn = widget.NewButton(ui.localization.GetText(KeyRefine), ui.onRefine)
	ui.refineRow = container.NewBorder(nil, nil, nil, ui.refineBtn, ui.refineEntry)
	ui.refineRow.Hide()

	ui.notice = widget.NewLabel("")
	ui.notice.Importance = widget.DangerImportance
	ui.notice.Wrapping = fyne.TextWrapWord
	ui.notice.Hide()

	ui.loading = widget.NewProgressBarInfinite()
	ui.loading.Hide()

	ui.details = newVideoDetailsPanel(ui.localization)
	ui.formats = newFormatPanel(ui.localization, ui.onDownload)
	ui.toast = newProgressToast(ui.localization, ui.window, ui.onCancelDownload)
	ui.historyView = newHistoryPanel(ui.localization, ui.onClearHistory)
	ui.authView = newAuthArea(ui.localization, ui.onSignIn, ui.onSignOut)

	tagline := widget.NewLabel(ui.localization.GetText(KeyTagline))
	tagline.Wrapping = fyne.TextWrapWord

	header := container.NewBorder(nil, nil, tagline, ui.authView.content)

	disclaimer := widget.NewLabel(ui.localization.GetText(KeyDisclaimer))
	disclaimer.TextStyle = fyne.TextStyle{Italic: true}

	main := container.NewVBox(
		header,
		ui.authView.Hint(),
		searchRow,
		ui.refineRow,
		ui.notice,
		ui.loading,
		ui.details.content,
		ui.formats.content,
	)

	content := container.NewBorder(nil, disclaimer, nil, nil,
		container.NewHSplit(container.NewVScroll(main), ui.historyView.content))

	ui.window.SetContent(content)
	ui.createMenu()

	// Re-apply state after a rebuild (language or theme change)
	if ui.videoInfo != nil {
		ui.details.SetVideo(ui.videoInfo)
		ui.formats.Show()
	}
	if ui.session != nil {
		ui.refineRow.Show()
	}
	if !ui.provider.IsLoading() {
		ui.authView.SetIdentity(ui.identity.Load())
	}
	ui.historyView.SetItems(ui.historyItems)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
	)

	ui.window.SetMainMenu(mainMenu)
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, func() {
		ui.app.Settings().SetTheme(NewAppTheme(ui.settings.GetAppearance()))
		ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
		ui.setupUI()
	}).Show()
}

// onQueryChanged resets the assisted search session as soon as the query is
// edited, the conversation no longer matches what is on screen. A stale
// error notice disappears with the edit too.
func (ui *RootUI) onQueryChanged(string) {
	ui.hideNotice()
	if ui.session != nil {
		ui.session = nil
		ui.refineRow.Hide()
	}
}

// onSearch handles the plain link search
func (ui *RootUI) onSearch() {
	if ui.isBusy() {
		return
	}
	ui.hideNotice()

	query := ui.queryEntry.Text
	if !search.IsVideoURL(query) {
		ui.showError(KeyErrInvalidURL)
		return
	}

	gen := ui.searchGen.Add(1)
	ui.session = nil
	ui.refineRow.Hide()
	ui.setLoading(true)

	go func() {
		info, err := ui.fetcher.Fetch(context.Background())

		fyne.Do(func() {
			if gen != ui.searchGen.Load() {
				return
			}
			ui.setLoading(false)
			if err != nil {
				return
			}
			ui.showVideo(info)
		})
	}()
}

// onSmartSearch handles the AI assisted search
func (ui *RootUI) onSmartSearch() {
	if ui.isBusy() {
		return
	}
	ui.hideNotice()

	query := ui.queryEntry.Text
	if query == "" {
		ui.showError(KeyErrEmptySmartQuery)
		return
	}

	gen := ui.searchGen.Add(1)
	ui.setLoading(true)

	go func() {
		sess, info, err := ui.assistant.Initiate(context.Background(), query)

		fyne.Do(func() {
			if gen != ui.searchGen.Load() {
				return
			}
			ui.setLoading(false)
			if err != nil {
				ui.logger.Error("assisted search failed", "error", err)
				ui.session = nil
				ui.videoInfo = nil
				ui.details.Clear()
				ui.formats.Hide()
				ui.refineRow.Hide()
				ui.showError(KeyErrSmartSearch)
				return
			}
			ui.session = sess
			ui.showVideo(info)
			ui.refineRow.Show()
			ui.refineEntry.SetText("")
		})
	}()
}

// onRefine sends a follow-up instruction on the current assisted session
func (ui *RootUI) onRefine() {
	if ui.isBusy() {
		return
	}
	ui.hideNotice()

	if ui.session == nil {
		ui.showError(KeyErrNoSession)
		return
	}

	prompt := ui.refineEntry.Text
	if prompt == "" {
		return
	}

	gen := ui.searchGen.Add(1)
	sess := ui.session
	ui.setLoading(true)

	go func() {
		info, err := ui.assistant.Refine(context.Background(), sess, prompt)

		fyne.Do(func() {
			if gen != ui.searchGen.Load() {
				return
			}
			ui.setLoading(false)
			if err != nil {
				if errors.Is(err, assist.ErrNoSession) {
					ui.showError(KeyErrNoSession)
					return
				}
				// The session and the current result stay on screen, only
				// the failed instruction is dropped
				ui.logger.Error("refine failed", "error", err)
				ui.showError(KeyErrRefine)
				return
			}
			ui.showVideo(info)
			ui.refineEntry.SetText("")
		})
	}()
}

// onDownload starts the simulated download for the chosen format
func (ui *RootUI) onDownload(format model.DownloadFormat) {
	if ui.videoInfo == nil || ui.isBusy() {
		return
	}

	if err := ui.simulator.Start(format, ui.videoInfo.Title); err != nil {
		ui.logger.Warn("download not started", "error", err)
		return
	}

	ui.setSearchEnabled(false)
	ui.formats.SetDownloadsEnabled(false)
}

// onCancelDownload stops the in-flight download, keeping its progress
func (ui *RootUI) onCancelDownload() {
	ui.simulator.Cancel()
}

// onDownloadUpdate runs on the simulator goroutine, nil means the terminal
// state was dismissed
func (ui *RootUI) onDownloadUpdate(d *model.Download) {
	fyne.Do(func() {
		ui.toast.Update(d)
		if d == nil || !d.Status.IsActive() {
			ui.setSearchEnabled(true)
			ui.formats.SetDownloadsEnabled(true)
		}
	})
}

// onDownloadComplete records the finished download in the signed-in user's
// history. It runs on the simulator goroutine, so the identity is read
// through the atomic pointer, not the Fyne thread.
func (ui *RootUI) onDownloadComplete(d model.Download) {
	identity := ui.identity.Load()
	if identity == nil || ui.store == nil {
		return
	}

	go func() {
		if err := ui.store.Add(context.Background(), identity.UID, d.VideoTitle, d.Format); err != nil {
			ui.logger.Error("failed to record download", "error", err)
		}
	}()
}

// onClearHistory removes all history items of the signed-in user
func (ui *RootUI) onClearHistory() {
	identity := ui.identity.Load()
	if identity == nil || ui.store == nil {
		return
	}

	go func() {
		if err := ui.store.ClearAll(context.Background(), identity.UID); err != nil {
			ui.logger.Error("failed to clear history", "error", err)
			fyne.Do(func() { ui.showError(KeyErrClearHistory) })
		}
	}()
}

// onSignIn starts the sign-in flow in the background
func (ui *RootUI) onSignIn() {
	go func() {
		err := ui.provider.SignIn(context.Background())
		if err == nil {
			return
		}
		if errors.Is(err, auth.ErrNotConfigured) {
			fyne.Do(func() {
				dialog.ShowError(errors.New(ui.localization.GetText(KeyErrAuthUnavailable)), ui.window)
			})
			return
		}
		ui.logger.Error("sign-in failed", "error", err)
	}()
}

// onSignOut drops the current identity
func (ui *RootUI) onSignOut() {
	go func() {
		if err := ui.provider.SignOut(context.Background()); err != nil {
			ui.logger.Error("sign-out failed", "error", err)
		}
	}()
}

// onIdentityChange runs whenever the identity provider reports a new state.
// It swaps the history subscription to the new user.
func (ui *RootUI) onIdentityChange(identity *model.Identity) {
	fyne.Do(func() {
		ui.identity.Store(identity)
		ui.authView.SetIdentity(identity)

		if ui.historyStop != nil {
			ui.historyStop()
			ui.historyStop = nil
		}
		ui.historyItems = nil
		ui.historyView.SetItems(nil)

		if identity == nil || ui.store == nil {
			return
		}

		stop, err := ui.store.Subscribe(identity.UID, ui.onHistorySnapshot)
		if err != nil {
			ui.logger.Error("history subscription failed", "error", err)
			ui.showError(KeyErrLoadHistory)
			return
		}
		ui.historyStop = stop
	})
}

// onHistorySnapshot runs on the subscription goroutine with a fresh full
// snapshot
func (ui *RootUI) onHistorySnapshot(items []model.HistoryItem) {
	fyne.Do(func() {
		ui.historyItems = items
		ui.historyView.SetItems(items)
	})
}

// showVideo replaces the displayed metadata and reveals the format catalog
func (ui *RootUI) showVideo(info *model.VideoInfo) {
	ui.videoInfo = info
	ui.details.SetVideo(info)
	ui.formats.Show()
}

// isDownloading reports whether a download is still advancing
func (ui *RootUI) isDownloading() bool {
	d := ui.simulator.Current()
	return d != nil && d.Status.IsActive()
}

// isBusy reports whether a download or a search is in flight. Enter in the
// entry fields can reach the handlers even while their buttons are disabled.
func (ui *RootUI) isBusy() bool {
	return ui.isDownloading() || ui.loading.Visible()
}

func (ui *RootUI) setLoading(loading bool) {
	if loading {
		ui.loading.Show()
		ui.searchBtn.Disable()
		ui.smartBtn.Disable()
		ui.refineBtn.Disable()
	} else {
		ui.loading.Hide()
		ui.setSearchEnabled(true)
	}
}

func (ui *RootUI) setSearchEnabled(enabled bool) {
	if enabled {
		ui.searchBtn.Enable()
		ui.smartBtn.Enable()
		ui.refineBtn.Enable()
	} else {
		ui.searchBtn.Disable()
		ui.smartBtn.Disable()
		ui.refineBtn.Disable()
	}
}

// showError displays a localized message in the notice panel under the
// search row
func (ui *RootUI) showError(key string) {
	ui.notice.SetText(ui.localization.GetText(key))
	ui.notice.Show()
}

func (ui *RootUI) hideNotice() {
	ui.notice.Hide()
}

// Close releases subscriptions held by the UI
func (ui *RootUI) Close() {
	if ui.historyStop != nil {
		ui.historyStop()
	}
	if ui.authUnsub != nil {
		ui.authUnsub()
	}
}
