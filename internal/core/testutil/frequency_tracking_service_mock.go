package testutil

import "github.com/AntonioJCosta/grocerytracker/internal/core/ports"

// MockFrequencyTrackingService is a mock implementation of the ports.FrequencyTrackingService interface.
type MockFrequencyTrackingService struct {
	LoadItemsFunc func() (ports.LoadResult, error)
	BackupFunc    func(store ports.FrequencyStore) (string, error)

	LoadCalls   int
	BackupCalls int
}

// LoadItems mocks the LoadItems method.
func (m *MockFrequencyTrackingService) LoadItems() (ports.LoadResult, error) {
	m.LoadCalls++
	if m.LoadItemsFunc != nil {
		return m.LoadItemsFunc()
	}
	return ports.LoadResult{Store: &MockFrequencyStore{}}, nil
}

// Backup mocks the Backup method.
func (m *MockFrequencyTrackingService) Backup(store ports.FrequencyStore) (string, error) {
	m.BackupCalls++
	if m.BackupFunc != nil {
		return m.BackupFunc(store)
	}
	return "mock destination", nil
}

var _ ports.FrequencyTrackingService = (*MockFrequencyTrackingService)(nil)
