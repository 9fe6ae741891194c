package progress

import (
	"errors"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/vidget/media-downloader/internal/model"
)

// Timing of the simulation
const (
	// TickInterval is how often the progress counter advances
	TickInterval = 200 * time.Millisecond

	// ClearDelay is how long a terminal download stays visible before the
	// state is discarded
	ClearDelay = 3000 * time.Millisecond
)

// Per-tick progress increment: uniformly random in [StepMin, StepMin+StepSpan)
const (
	StepMin  = 2.0
	StepSpan = 5.0
)

// MaxProgress is the clamp value; reaching it completes the download
const MaxProgress = 100.0

// ErrDownloadActive is returned when a download is started while another
// one exists, active or terminal but not yet dismissed.
var ErrDownloadActive = errors.New("a download is already in progress")

// ErrSimulatorClosed is returned when starting on a closed simulator
var ErrSimulatorClosed = errors.New("simulator is closed")

// Simulator owns the single simulated download. It advances the progress
// counter on clock ticks, maps terminal states to outcomes, and clears the
// state after the terminal display window.
type Simulator struct {
	mu        sync.Mutex
	clock     Clock
	randFloat func() float64 // uniform [0, 1)
	logger    *slog.Logger

	current    *model.Download
	ticker     Ticker
	tickerDone chan struct{}
	clearTimer Timer
	closed     bool

	onUpdate   func(*model.Download) // nil download means "no active download"
	onComplete func(model.Download)
}

// NewSimulator creates a simulator on the wall clock
func NewSimulator(logger *slog.Logger) *Simulator {
	return NewSimulatorWithClock(NewRealClock(), rand.Float64, logger)
}

// NewSimulatorWithClock creates a simulator with an explicit clock and
// random source. Tests pass a virtual clock and a fixed randFloat.
func NewSimulatorWithClock(clock Clock, randFloat func() float64, logger *slog.Logger) *Simulator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Simulator{
		clock:     clock,
		randFloat: randFloat,
		logger:    logger,
	}
}

// SetUpdateCallback sets the callback invoked on every state change. The
// callback receives a copy of the state, or nil once the state is cleared.
func (s *Simulator) SetUpdateCallback(callback func(*model.Download)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUpdate = callback
}

// SetCompletionCallback sets the callback invoked exactly once when a
// download reaches Completed
func (s *Simulator) SetCompletionCallback(callback func(model.Download)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onComplete = callback
}

// Current returns a copy of the live download state, or nil when there is
// no active download
func (s *Simulator) Current() *model.Download {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	snapshot := *s.current
	return &snapshot
}

// Start begins a new simulated download. It is rejected while any download
// state exists, so a terminal-but-undismissed download cannot be superseded.
func (s *Simulator) Start(format model.DownloadFormat, videoTitle string) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSimulatorClosed
	}
	if s.current != nil {
		s.mu.Unlock()
		return ErrDownloadActive
	}

	s.current = &model.Download{
		Format:     format,
		VideoTitle: videoTitle,
		Progress:   0,
		Status:     model.StatusDownloading,
	}

	s.ticker = s.clock.NewTicker(TickInterval)
	s.tickerDone = make(chan struct{})
	go s.run(s.ticker, s.tickerDone)

	snapshot := *s.current
	s.mu.Unlock()

	s.logger.Info("download started",
		"title", videoTitle, "quality", format.Quality, "format", format.Format)
	s.notify(&snapshot)
	return nil
}

// Cancel transitions an active download to Cancelled. Progress is frozen at
// its last value; cancelling a terminal or absent download is a no-op.
func (s *Simulator) Cancel() {
	s.mu.Lock()
	if s.current == nil || !s.current.Status.IsActive() {
		s.mu.Unlock()
		return
	}

	s.current.Status = model.StatusCancelled
	s.stopTickingLocked()
	s.scheduleClearLocked()
	snapshot := *s.current
	s.mu.Unlock()

	s.logger.Info("download cancelled", "progress", snapshot.Progress)
	s.notify(&snapshot)
}

// Close tears down both timers so no orphaned callback mutates state after
// disposal. Used on app shutdown and in test harnesses.
func (s *Simulator) Close() {
	s.mu.Lock()
	s.closed = true
	s.stopTickingLocked()
	if s.clearTimer != nil {
		s.clearTimer.Stop()
		s.clearTimer = nil
	}
	s.current = nil
	s.mu.Unlock()
}

// run consumes ticker events until the download leaves the Downloading state
func (s *Simulator) run(ticker Ticker, done chan struct{}) {
	for {
		select {
		case <-ticker.C():
			s.tick()
		case <-done:
			return
		}
	}
}

// tick advances the percentage by a uniformly random step and completes the
// download on the tick where it first reaches the clamp value
func (s *Simulator) tick() {
	s.mu.Lock()
	if s.current == nil || !s.current.Status.IsActive() {
		// Stale tick after cancel or teardown; progress must not change
		s.mu.Unlock()
		return
	}

	next := s.current.Progress + StepMin + s.randFloat()*StepSpan
	if next >= MaxProgress {
		s.current.Progress = MaxProgress
		s.current.Status = model.StatusCompleted
		s.stopTickingLocked()
		s.scheduleClearLocked()

		snapshot := *s.current
		onComplete := s.onComplete
		s.mu.Unlock()

		s.logger.Info("download completed", "title", snapshot.VideoTitle)
		s.notify(&snapshot)
		if onComplete != nil {
			onComplete(snapshot)
		}
		return
	}

	s.current.Progress = next
	snapshot := *s.current
	s.mu.Unlock()

	s.notify(&snapshot)
}

// clearTerminal discards the terminal state once the display window passed
func (s *Simulator) clearTerminal() {
	s.mu.Lock()
	if s.closed || s.current == nil || !s.current.Status.IsTerminal() {
		s.mu.Unlock()
		return
	}
	s.current = nil
	s.clearTimer = nil
	s.mu.Unlock()

	s.notify(nil)
}

func (s *Simulator) stopTickingLocked() {
	if s.ticker != nil {
		s.ticker.Stop()
		s.ticker = nil
	}
	if s.tickerDone != nil {
		close(s.tickerDone)
		s.tickerDone = nil
	}
}

func (s *Simulator) scheduleClearLocked() {
	s.clearTimer = s.clock.AfterFunc(ClearDelay, s.clearTerminal)
}

// notify calls the update callback if set
func (s *Simulator) notify(d *model.Download) {
	s.mu.Lock()
	callback := s.onUpdate
	s.mu.Unlock()
	if callback != nil {
		callback(d)
	}
}
