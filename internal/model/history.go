package model

import "time"

// HistoryItem represents one past (mock) download of a signed-in user.
// Items are append-only; the only deletion is a bulk clear.
type HistoryItem struct {
	ID         string
	VideoTitle string
	Format     DownloadFormat
	Timestamp  time.Time // assigned by the store server, not the client
}

// Identity is the signed-in user as reported by the external identity
// provider. All fields are read-only to this application.
type Identity struct {
	UID         string
	DisplayName string
	PhotoURL    string
	Email       string
}
