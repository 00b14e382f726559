package ports

import "io"

// ItemSource defines the contract for opening a stream of newline-separated item names.
type ItemSource interface {
	Open() (io.ReadCloser, error)
	GetSourceIdentifier() string
}

// BackupDestination defines the contract for creating (or truncating) a backup target.
type BackupDestination interface {
	Create() (io.WriteCloser, error)
	GetDestinationIdentifier() string
}
