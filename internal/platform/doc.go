package platform

// Package platform contains OS integration glue: opening URLs in the system
// browser for the sign-in flow.
