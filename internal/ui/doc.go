package ui

// Package ui contains the Fyne-based desktop user interface: the search
// form, video details and format selection panels, the progress toast, the
// history panel, and sign-in controls. All UI strings are localized via
// Localization.
