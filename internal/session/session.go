// Package session ties one in-memory inventory to the location it is loaded
// from and saved to.
package session

import (
	"cdinv/internal/inventory"
	"cdinv/internal/logging"
	"cdinv/internal/storage"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Session owns the catalog for a single run of the program. Reload and
// Save are the only operations that touch storage.
type Session struct {
	id       string
	location string
	gateway  storage.Gateway
	catalog  *inventory.Catalog
	fresh    bool
	logger   *slog.Logger
}

// Open builds a session and performs the initial load. A location that
// does not exist yet yields an empty catalog rather than an error.
func Open(location string, gw storage.Gateway, logger *slog.Logger) (*Session, error) {
	id := uuid.NewString()
	s := &Session{
		id:       id,
		location: location,
		gateway:  gw,
		catalog:  inventory.NewCatalog(),
		logger: logging.Component(logger, "session").With(
			logging.String(logging.FieldSessionID, id),
			logging.String(logging.FieldLocation, location),
		),
	}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Location() string {
	return s.location
}

func (s *Session) Catalog() *inventory.Catalog {
	return s.catalog
}

// Fresh reports whether the last reload found no stored inventory.
func (s *Session) Fresh() bool {
	return s.fresh
}

// Reload replaces the catalog with the stored inventory, discarding unsaved
// changes. When nothing is stored the catalog is emptied and nil is
// returned. Any other failure leaves the catalog as it was.
func (s *Session) Reload() error {
	records, err := s.gateway.Load(s.location)
	switch {
	case errors.Is(err, storage.ErrStorageUnavailable):
		s.logger.Info("no stored inventory, starting empty", logging.Error(err))
		s.catalog.Clear()
		s.fresh = true
		return nil
	case err != nil:
		s.logger.Error("inventory reload failed", logging.Error(err))
		return fmt.Errorf("reload inventory: %w", err)
	}

	s.catalog.Replace(records)
	s.fresh = false
	s.logger.Info("inventory loaded", logging.Int(logging.FieldCount, len(records)))
	return nil
}

// Save writes the whole catalog to the session location.
func (s *Session) Save() error {
	records := s.catalog.List()
	if err := s.gateway.Save(s.location, records); err != nil {
		s.logger.Error("inventory save failed", logging.Error(err))
		return fmt.Errorf("save inventory: %w", err)
	}

	s.catalog.MarkClean()
	s.fresh = false
	s.logger.Info("inventory saved", logging.Int(logging.FieldCount, len(records)))
	return nil
}
