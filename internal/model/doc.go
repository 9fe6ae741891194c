package model

// Package model defines domain data structures used across the app: video
// metadata, the format catalog, download progress state, history records, and
// identity. Structures are designed for direct binding in the UI and explicit
// state transitions.
