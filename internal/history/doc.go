package history

// Package history persists past (mock) downloads per user in Postgres and
// exposes a live, newest-first view of them. Appends are best-effort;
// deletion only happens as a bulk clear. Change notifications ride on
// LISTEN/NOTIFY so every subscriber always receives a full ordered snapshot,
// never incremental diffs.
