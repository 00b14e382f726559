package frequencytracking

import (
	"errors"
	"fmt"

	"github.com/AntonioJCosta/grocerytracker/internal/core/domain/grocery"
	"github.com/AntonioJCosta/grocerytracker/internal/core/ports"
	"github.com/AntonioJCosta/grocerytracker/internal/core/services/frequencystore"
	"github.com/rs/zerolog"
)

type service struct {
	source      ports.ItemSource
	destination ports.BackupDestination
	logger      zerolog.Logger
}

// NewService creates a new frequency tracking service.
// It panics if source or destination are nil.
func NewService(src ports.ItemSource, dst ports.BackupDestination, logger zerolog.Logger) ports.FrequencyTrackingService {
	if src == nil {
		panic("item source cannot be nil")
	}
	if dst == nil {
		panic("backup destination cannot be nil")
	}
	return &service{
		source:      src,
		destination: dst,
		logger:      logger.With().Str("component", "frequencytracking").Logger(),
	}
}

// LoadItems implements the ports.FrequencyTrackingService interface.
func (s *service) LoadItems() (ports.LoadResult, error) {
	sourceID := s.source.GetSourceIdentifier()
	store, err := frequencystore.LoadFrom(s.source)
	result := ports.LoadResult{Store: store, SourceDetails: sourceID}
	if err != nil {
		s.logger.Debug().Err(err).Str("source", sourceID).Int("items", store.Len()).Msg("loading items failed")
		return result, fmt.Errorf("could not load items: %w", err)
	}
	s.logger.Info().Str("source", sourceID).Int("items", store.Len()).Msg("items loaded")
	return result, nil
}

// Backup implements the ports.FrequencyTrackingService interface.
func (s *service) Backup(store ports.FrequencyStore) (string, error) {
	destID := s.destination.GetDestinationIdentifier()
	if store == nil {
		return destID, fmt.Errorf("no frequency store to back up")
	}

	w, err := s.destination.Create()
	if err != nil {
		if !errors.Is(err, grocery.ErrIOUnavailable) {
			err = fmt.Errorf("%w: %w", grocery.ErrIOUnavailable, err)
		}
		s.logger.Debug().Err(err).Str("destination", destID).Msg("opening backup failed")
		return destID, fmt.Errorf("could not open backup %s: %w", destID, err)
	}

	writeErr := store.WriteBackup(w)
	if closeErr := w.Close(); closeErr != nil && writeErr == nil {
		writeErr = fmt.Errorf("%w: closing: %w", grocery.ErrIOUnavailable, closeErr)
	}
	if writeErr != nil {
		s.logger.Debug().Err(writeErr).Str("destination", destID).Msg("writing backup failed")
		return destID, fmt.Errorf("could not write backup %s: %w", destID, writeErr)
	}

	s.logger.Info().Str("destination", destID).Int("items", store.Len()).Msg("backup written")
	return destID, nil
}
