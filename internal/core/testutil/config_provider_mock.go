package testutil

import "github.com/AntonioJCosta/grocerytracker/internal/core/ports"

// MockConfigProvider is a mock implementation of the ports.ConfigProvider interface.
type MockConfigProvider struct {
	LoadFunc            func() (ports.Settings, error)
	GetConfigSourceFunc func() string
}

// Load mocks the Load method.
func (m *MockConfigProvider) Load() (ports.Settings, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc()
	}
	return ports.Settings{}, nil
}

// GetConfigSource mocks the GetConfigSource method.
func (m *MockConfigProvider) GetConfigSource() string {
	if m.GetConfigSourceFunc != nil {
		return m.GetConfigSourceFunc()
	}
	return "mock config"
}

var _ ports.ConfigProvider = (*MockConfigProvider)(nil)
