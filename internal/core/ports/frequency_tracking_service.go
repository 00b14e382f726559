package ports

// LoadResult holds a loaded store together with where it came from.
type LoadResult struct {
	Store         FrequencyStore
	SourceDetails string
}

// FrequencyTrackingService defines the contract used by the handlers to obtain a
// store and persist it.
type FrequencyTrackingService interface {
	// LoadItems always returns a usable store. A non-nil error means the source was
	// unavailable or only partially read; the store then holds whatever was counted.
	LoadItems() (LoadResult, error)

	// Backup persists the store and returns a user-facing description of the destination.
	Backup(store FrequencyStore) (string, error)
}
