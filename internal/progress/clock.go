package progress

import "time"

// Ticker delivers repeating ticks until stopped
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Timer is a one-shot scheduled function call
type Timer interface {
	Stop() bool
}

// Clock abstracts time so the state machine can be driven by a virtual
// clock in tests
type Clock interface {
	NewTicker(d time.Duration) Ticker
	AfterFunc(d time.Duration, f func()) Timer
}

// realClock is the wall-clock implementation used in production
type realClock struct{}

// NewRealClock returns a Clock backed by the time package
func NewRealClock() Clock {
	return realClock{}
}

type realTicker struct {
	t *time.Ticker
}

func (rt realTicker) C() <-chan time.Time { return rt.t.C }
func (rt realTicker) Stop()               { rt.t.Stop() }

func (realClock) NewTicker(d time.Duration) Ticker {
	return realTicker{t: time.NewTicker(d)}
}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
