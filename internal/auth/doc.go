package auth

// Package auth adapts the external identity provider. It exposes the current
// signed-in identity (or its absence) as a subscription, plus sign-in and
// sign-out actions that delegate to the provider. Provider failures are
// logged, not surfaced, except the not-configured case which callers must
// report to the user immediately.
