package ports

import (
	"io"

	"github.com/AntonioJCosta/grocerytracker/internal/core/domain/grocery"
)

/*
FrequencyStore defines the read-only view over aggregated item counts.
All ordered results are sorted by item name in ascending byte order.
*/
type FrequencyStore interface {
	// GetFrequency returns the count for the exact item name, or 0 if it never appeared.
	GetFrequency(item string) int

	// AllFrequencies returns every item with its count.
	AllFrequencies() []grocery.ItemFrequency

	// RenderHistogram returns one bar per item, in the same order as AllFrequencies.
	RenderHistogram() []grocery.HistogramBar

	// WriteBackup writes one "<item> <count>" line per item to w.
	WriteBackup(w io.Writer) error

	// Len returns the number of distinct items.
	Len() int
}
