/*
Package grocery defines the core domain entities for tracking grocery item frequencies.
*/
package grocery

import "errors"

// HistogramMarker is the character repeated once per occurrence in a histogram bar.
const HistogramMarker = "*"

// ErrIOUnavailable reports that an item source or backup destination could not be
// opened, read or written.
var ErrIOUnavailable = errors.New("io unavailable")

/*
ItemFrequency represents a grocery item and the number of times it appeared
in the input. This is a core domain entity.
*/
type ItemFrequency struct {
	Item  string
	Count int
}

// HistogramBar pairs an item with its rendered bar.
type HistogramBar struct {
	Item string
	Bar  string
}
