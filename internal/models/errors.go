// Package models defines the document model and typed errors for the
// scraping pipeline, so every failure path is enumerable by the caller.
package models

import "fmt"

// InvalidURLError means the input failed URL validation before any
// network activity took place.
type InvalidURLError struct {
	URL string
}

func (e *InvalidURLError) Error() string {
	return fmt.Sprintf("invalid URL %q: missing scheme or host", e.URL)
}

// TransportError represents a DNS, connection, or timeout failure.
// No HTTP response was obtained.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// BadStatusError means a response was obtained but its status code
// indicates failure. The body is discarded.
type BadStatusError struct {
	URL        string
	StatusCode int
}

func (e *BadStatusError) Error() string {
	return fmt.Sprintf("HTTP %d for URL %s", e.StatusCode, e.URL)
}

// ParseError means the retrieved body could not be turned into a usable
// document tree. Rare, since parsing is lenient.
type ParseError struct {
	URL string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing content from %s: %v", e.URL, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
