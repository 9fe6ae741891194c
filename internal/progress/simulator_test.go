package progress

import (
	"sync"
	"testing"
	"time"

	"github.com/vidget/media-downloader/internal/model"
)

// fakeClock is a manually-advanced virtual clock. Tick() delivers one tick
// to every live ticker; Advance() fires due one-shot timers synchronously.
type fakeClock struct {
	mu      sync.Mutex
	now     time.Duration
	tickers []*fakeTicker
	timers  []*fakeTimer
}

type fakeTicker struct {
	ch      chan time.Time
	stopped bool
}

func (ft *fakeTicker) C() <-chan time.Time { return ft.ch }
func (ft *fakeTicker) Stop()               { ft.stopped = true }

type fakeTimer struct {
	deadline time.Duration
	f        func()
	stopped  bool
	fired    bool
}

func (ft *fakeTimer) Stop() bool {
	ft.stopped = true
	return !ft.fired
}

func newFakeClock() *fakeClock {
	return &fakeClock{}
}

func (fc *fakeClock) NewTicker(d time.Duration) Ticker {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	ticker := &fakeTicker{ch: make(chan time.Time, 1)}
	fc.tickers = append(fc.tickers, ticker)
	return ticker
}

func (fc *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	timer := &fakeTimer{deadline: fc.now + d, f: f}
	fc.timers = append(fc.timers, timer)
	return timer
}

// Tick delivers one tick to all live tickers
func (fc *fakeClock) Tick() {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	for _, ticker := range fc.tickers {
		if !ticker.stopped {
			select {
			case ticker.ch <- time.Time{}:
			default:
			}
		}
	}
}

// Advance moves virtual time forward and fires every due timer
func (fc *fakeClock) Advance(d time.Duration) {
	fc.mu.Lock()
	fc.now += d
	var due []*fakeTimer
	for _, timer := range fc.timers {
		if !timer.stopped && !timer.fired && timer.deadline <= fc.now {
			timer.fired = true
			due = append(due, timer)
		}
	}
	fc.mu.Unlock()

	for _, timer := range due {
		timer.f()
	}
}

// testHarness bundles a simulator on a fake clock with a channel of updates
type testHarness struct {
	sim     *Simulator
	clock   *fakeClock
	updates chan *model.Download
}

func newTestHarness(t *testing.T, randFloat func() float64) *testHarness {
	t.Helper()
	if randFloat == nil {
		randFloat = func() float64 { return 0 } // fixed step of exactly StepMin
	}

	clock := newFakeClock()
	sim := NewSimulatorWithClock(clock, randFloat, nil)

	updates := make(chan *model.Download, 128)
	sim.SetUpdateCallback(func(d *model.Download) {
		updates <- d
	})

	t.Cleanup(sim.Close)
	return &testHarness{sim: sim, clock: clock, updates: updates}
}

func (h *testHarness) waitUpdate(t *testing.T) *model.Download {
	t.Helper()
	select {
	case d := <-h.updates:
		return d
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for an update")
		return nil
	}
}

func (h *testHarness) expectNoUpdate(t *testing.T) {
	t.Helper()
	select {
	case d := <-h.updates:
		t.Fatalf("Expected no update, got %+v", d)
	case <-time.After(50 * time.Millisecond):
	}
}

func (h *testHarness) tickAndWait(t *testing.T) *model.Download {
	t.Helper()
	h.clock.Tick()
	return h.waitUpdate(t)
}

var testFormat = model.DownloadFormat{
	Quality: "720p", Format: "MP4", Size: "75 MB", Type: model.MediaTypeVideo,
}

func TestSimulator_Start(t *testing.T) {
	h := newTestHarness(t, nil)

	if err := h.sim.Start(testFormat, "Example Video"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	d := h.waitUpdate(t)
	if d == nil {
		t.Fatal("Expected an initial update")
	}
	if d.Status != model.StatusDownloading || d.Progress != 0 {
		t.Errorf("Expected Downloading at 0%%, got %s at %.1f", d.Status, d.Progress)
	}
	if d.Format != testFormat || d.VideoTitle != "Example Video" {
		t.Errorf("Unexpected download state: %+v", d)
	}
}

func TestSimulator_StartWhileActive(t *testing.T) {
	h := newTestHarness(t, nil)

	if err := h.sim.Start(testFormat, "First"); err != nil {
		t.Fatalf("First start failed: %v", err)
	}
	h.waitUpdate(t)

	if err := h.sim.Start(testFormat, "Second"); err != ErrDownloadActive {
		t.Fatalf("Expected ErrDownloadActive, got %v", err)
	}

	// The existing state must be unchanged
	if current := h.sim.Current(); current == nil || current.VideoTitle != "First" {
		t.Errorf("Expected first download to survive, got %+v", current)
	}
}

func TestSimulator_StartWhileTerminalUndismissed(t *testing.T) {
	h := newTestHarness(t, nil)

	if err := h.sim.Start(testFormat, "Example"); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	h.waitUpdate(t)
	h.sim.Cancel()
	h.waitUpdate(t)

	// Cancelled but not yet cleared: still rejected
	if err := h.sim.Start(testFormat, "Another"); err != ErrDownloadActive {
		t.Fatalf("Expected ErrDownloadActive while terminal state is displayed, got %v", err)
	}
}

func TestSimulator_ProgressMonotonicAndClamped(t *testing.T) {
	h := newTestHarness(t, nil) // step is exactly 2.0

	if err := h.sim.Start(testFormat, "Example"); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	h.waitUpdate(t)

	previous := 0.0
	for i := 0; i < 49; i++ {
		d := h.tickAndWait(t)
		if d.Progress <= previous {
			t.Fatalf("Progress not increasing at tick %d: %.1f -> %.1f", i+1, previous, d.Progress)
		}
		if d.Progress >= MaxProgress {
			t.Fatalf("Reached 100%% too early at tick %d", i+1)
		}
		if d.Status != model.StatusDownloading {
			t.Fatalf("Expected Downloading before tick 50, got %s", d.Status)
		}
		previous = d.Progress
	}

	// Tick 50 carries the progress from 98 to the clamp value
	d := h.tickAndWait(t)
	if d.Progress != MaxProgress {
		t.Errorf("Expected progress clamped exactly at 100, got %.3f", d.Progress)
	}
	if d.Status != model.StatusCompleted {
		t.Errorf("Expected Completed on the tick reaching 100, got %s", d.Status)
	}
}

func TestSimulator_LargeStepClamped(t *testing.T) {
	// randFloat just below 1.0: step close to StepMin+StepSpan
	h := newTestHarness(t, func() float64 { return 0.999999 })

	if err := h.sim.Start(testFormat, "Example"); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	h.waitUpdate(t)

	var last *model.Download
	for i := 0; i < 20; i++ {
		last = h.tickAndWait(t)
		if last.Progress > MaxProgress {
			t.Fatalf("Progress exceeded 100: %.3f", last.Progress)
		}
		if last.Status == model.StatusCompleted {
			break
		}
	}

	if last.Status != model.StatusCompleted || last.Progress != MaxProgress {
		t.Errorf("Expected completion clamped at 100, got %s at %.3f", last.Status, last.Progress)
	}
}

func TestSimulator_Cancel(t *testing.T) {
	h := newTestHarness(t, nil)

	if err := h.sim.Start(testFormat, "Example"); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	h.waitUpdate(t)

	h.tickAndWait(t)
	frozen := h.tickAndWait(t).Progress

	h.sim.Cancel()
	d := h.waitUpdate(t)
	if d.Status != model.StatusCancelled {
		t.Fatalf("Expected Cancelled immediately, got %s", d.Status)
	}
	if d.Progress != frozen {
		t.Errorf("Expected progress frozen at %.1f, got %.1f", frozen, d.Progress)
	}

	// No tick after cancellation may alter progress
	h.clock.Tick()
	h.expectNoUpdate(t)
	if current := h.sim.Current(); current.Progress != frozen {
		t.Errorf("Progress changed after cancel: %.1f", current.Progress)
	}
}

func TestSimulator_CancelWithoutActiveDownload(t *testing.T) {
	h := newTestHarness(t, nil)

	h.sim.Cancel()
	h.expectNoUpdate(t)
}

func TestSimulator_TerminalStateCleared(t *testing.T) {
	h := newTestHarness(t, nil)

	if err := h.sim.Start(testFormat, "Example"); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	h.waitUpdate(t)
	h.sim.Cancel()
	h.waitUpdate(t)

	// Just before the display window ends: still present
	h.clock.Advance(ClearDelay - time.Millisecond)
	h.expectNoUpdate(t)
	if h.sim.Current() == nil {
		t.Fatal("Terminal state cleared too early")
	}

	h.clock.Advance(time.Millisecond)
	if d := h.waitUpdate(t); d != nil {
		t.Errorf("Expected nil update on clear, got %+v", d)
	}
	if h.sim.Current() != nil {
		t.Error("Expected no active download after the clear delay")
	}

	// A new download may start now
	if err := h.sim.Start(testFormat, "Next"); err != nil {
		t.Errorf("Expected start to succeed after clear, got %v", err)
	}
}

func TestSimulator_CompletionCallback(t *testing.T) {
	h := newTestHarness(t, func() float64 { return 0.999999 })

	var mu sync.Mutex
	var completions []model.Download
	h.sim.SetCompletionCallback(func(d model.Download) {
		mu.Lock()
		completions = append(completions, d)
		mu.Unlock()
	})

	if err := h.sim.Start(testFormat, "Example"); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	h.waitUpdate(t)

	for {
		if d := h.tickAndWait(t); d.Status == model.StatusCompleted {
			break
		}
	}
	// Extra ticks after completion must not re-fire the callback
	h.clock.Tick()
	h.expectNoUpdate(t)

	mu.Lock()
	defer mu.Unlock()
	if len(completions) != 1 {
		t.Fatalf("Expected exactly one completion callback, got %d", len(completions))
	}
	if completions[0].VideoTitle != "Example" || completions[0].Format != testFormat {
		t.Errorf("Completion carries wrong state: %+v", completions[0])
	}
}

func TestSimulator_CancelDoesNotComplete(t *testing.T) {
	h := newTestHarness(t, nil)

	completed := false
	h.sim.SetCompletionCallback(func(model.Download) { completed = true })

	if err := h.sim.Start(testFormat, "Example"); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	h.waitUpdate(t)
	h.sim.Cancel()
	h.waitUpdate(t)

	h.clock.Advance(ClearDelay)
	h.waitUpdate(t)

	if completed {
		t.Error("Completion callback fired for a cancelled download")
	}
}

func TestSimulator_Close(t *testing.T) {
	h := newTestHarness(t, nil)

	if err := h.sim.Start(testFormat, "Example"); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	h.waitUpdate(t)

	h.sim.Close()

	// Neither ticks nor the clear timer may fire after teardown
	h.clock.Tick()
	h.clock.Advance(ClearDelay * 2)
	h.expectNoUpdate(t)

	if err := h.sim.Start(testFormat, "After close"); err != ErrSimulatorClosed {
		t.Errorf("Expected ErrSimulatorClosed, got %v", err)
	}
}
