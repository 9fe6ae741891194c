package progress

// Package progress implements the simulated download as an explicit state
// machine, independent of any UI framework. A repeating tick advances the
// percentage, terminal states are cleared after a fixed delay, and all
// changes are pushed to the UI through an update callback. Time is injected
// through a Clock so tests run on a virtual clock.
