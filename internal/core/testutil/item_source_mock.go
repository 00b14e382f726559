package testutil

import (
	"io"

	"github.com/AntonioJCosta/grocerytracker/internal/core/ports"
)

// MockItemSource is a mock implementation of the ports.ItemSource interface.
type MockItemSource struct {
	OpenFunc                func() (io.ReadCloser, error)
	GetSourceIdentifierFunc func() string
}

// Open mocks the Open method.
func (m *MockItemSource) Open() (io.ReadCloser, error) {
	if m.OpenFunc != nil {
		return m.OpenFunc()
	}
	// Default behavior: an empty source.
	return io.NopCloser(eofReader{}), nil
}

// GetSourceIdentifier mocks the GetSourceIdentifier method.
func (m *MockItemSource) GetSourceIdentifier() string {
	if m.GetSourceIdentifierFunc != nil {
		return m.GetSourceIdentifierFunc()
	}
	return "mock source"
}

type eofReader struct{}

func (eofReader) Read([]byte) (int, error) { return 0, io.EOF }

var _ ports.ItemSource = (*MockItemSource)(nil)
