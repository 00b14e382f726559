package itemfile

import (
	"fmt"
	"io"
	"os"

	"github.com/AntonioJCosta/grocerytracker/internal/core/domain/grocery"
	"github.com/AntonioJCosta/grocerytracker/internal/core/ports"
)

/*
FileItemSource provides access to a grocery list stored in a plain text file.
It implements the ports.ItemSource interface.
*/
type FileItemSource struct {
	Path             string // As configured; may be relative to the working directory
	sourceIdentifier string
}

// NewFileItemSource creates a new FileItemSource. The file is not opened until Open is called.
func NewFileItemSource(path string) (ports.ItemSource, error) {
	if path == "" {
		return nil, fmt.Errorf("input file path cannot be empty")
	}
	return &FileItemSource{
		Path:             path,
		sourceIdentifier: fmt.Sprintf("File: %s", toUserFriendlyPath(path)),
	}, nil
}

// Open implements the ports.ItemSource interface.
func (s *FileItemSource) Open() (io.ReadCloser, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", grocery.ErrIOUnavailable, err)
	}
	return f, nil
}

// GetSourceIdentifier implements the ports.ItemSource interface.
func (s *FileItemSource) GetSourceIdentifier() string {
	return s.sourceIdentifier
}

/*
FileBackupDestination writes backups to a plain text file, replacing any
previous content. It implements the ports.BackupDestination interface.
*/
type FileBackupDestination struct {
	Path                  string
	destinationIdentifier string
}

// NewFileBackupDestination creates a new FileBackupDestination.
func NewFileBackupDestination(path string) (ports.BackupDestination, error) {
	if path == "" {
		return nil, fmt.Errorf("backup file path cannot be empty")
	}
	return &FileBackupDestination{
		Path:                  path,
		destinationIdentifier: fmt.Sprintf("File: %s", toUserFriendlyPath(path)),
	}, nil
}

// Create implements the ports.BackupDestination interface.
func (d *FileBackupDestination) Create() (io.WriteCloser, error) {
	f, err := os.OpenFile(d.Path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", grocery.ErrIOUnavailable, err)
	}
	return f, nil
}

// GetDestinationIdentifier implements the ports.BackupDestination interface.
func (d *FileBackupDestination) GetDestinationIdentifier() string {
	return d.destinationIdentifier
}
