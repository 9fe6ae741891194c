package search

// Package search implements the plain-search path: link validation and the
// mock metadata fetcher that stands in for a real resolver. No network
// access happens here.
