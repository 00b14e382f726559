package testutil

import (
	"bytes"
	"io"

	"github.com/AntonioJCosta/grocerytracker/internal/core/ports"
)

// MockBackupDestination is a mock implementation of the ports.BackupDestination interface.
// Without a CreateFunc it records everything written into Written.
type MockBackupDestination struct {
	CreateFunc                   func() (io.WriteCloser, error)
	GetDestinationIdentifierFunc func() string

	Written     bytes.Buffer
	CreateCalls int
}

// Create mocks the Create method. Each call truncates Written, like a real file.
func (m *MockBackupDestination) Create() (io.WriteCloser, error) {
	m.CreateCalls++
	if m.CreateFunc != nil {
		return m.CreateFunc()
	}
	m.Written.Reset()
	return nopWriteCloser{&m.Written}, nil
}

// GetDestinationIdentifier mocks the GetDestinationIdentifier method.
func (m *MockBackupDestination) GetDestinationIdentifier() string {
	if m.GetDestinationIdentifierFunc != nil {
		return m.GetDestinationIdentifierFunc()
	}
	return "mock destination"
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

var _ ports.BackupDestination = (*MockBackupDestination)(nil)
