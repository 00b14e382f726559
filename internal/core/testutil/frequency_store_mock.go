package testutil

import (
	"io"

	"github.com/AntonioJCosta/grocerytracker/internal/core/domain/grocery"
	"github.com/AntonioJCosta/grocerytracker/internal/core/ports"
)

// MockFrequencyStore is a mock implementation of the ports.FrequencyStore interface.
type MockFrequencyStore struct {
	GetFrequencyFunc    func(item string) int
	AllFrequenciesFunc  func() []grocery.ItemFrequency
	RenderHistogramFunc func() []grocery.HistogramBar
	WriteBackupFunc     func(w io.Writer) error
	LenFunc             func() int

	// Queried records every item passed to GetFrequency.
	Queried []string
}

// GetFrequency mocks the GetFrequency method.
func (m *MockFrequencyStore) GetFrequency(item string) int {
	m.Queried = append(m.Queried, item)
	if m.GetFrequencyFunc != nil {
		return m.GetFrequencyFunc(item)
	}
	return 0
}

// AllFrequencies mocks the AllFrequencies method.
func (m *MockFrequencyStore) AllFrequencies() []grocery.ItemFrequency {
	if m.AllFrequenciesFunc != nil {
		return m.AllFrequenciesFunc()
	}
	return nil
}

// RenderHistogram mocks the RenderHistogram method.
func (m *MockFrequencyStore) RenderHistogram() []grocery.HistogramBar {
	if m.RenderHistogramFunc != nil {
		return m.RenderHistogramFunc()
	}
	return nil
}

// WriteBackup mocks the WriteBackup method.
func (m *MockFrequencyStore) WriteBackup(w io.Writer) error {
	if m.WriteBackupFunc != nil {
		return m.WriteBackupFunc(w)
	}
	return nil
}

// Len mocks the Len method.
func (m *MockFrequencyStore) Len() int {
	if m.LenFunc != nil {
		return m.LenFunc()
	}
	return 0
}

var _ ports.FrequencyStore = (*MockFrequencyStore)(nil)
