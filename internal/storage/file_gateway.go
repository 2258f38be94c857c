package storage

import (
	"cdinv/internal/inventory"
	"cdinv/internal/logging"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
)

// FileGateway stores the inventory as a single file written through a
// Codec. Save holds an exclusive advisory lock on "<location>.lock" and
// creates it if needed. Load holds the shared lock only when that file
// already exists.
type FileGateway struct {
	codec  Codec
	logger *slog.Logger
}

func NewFileGateway(codec Codec, logger *slog.Logger) *FileGateway {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &FileGateway{codec: codec, logger: logger}
}

func lockPath(location string) string {
	return location + ".lock"
}

func (g *FileGateway) Load(location string) ([]inventory.Record, error) {
	f, err := os.Open(location)
	if err != nil {
		return nil, unavailable(location, err)
	}
	defer f.Close()

	if unlock := g.readLock(location); unlock != nil {
		defer unlock()
	}

	records, err := g.codec.Decode(f)
	if err != nil {
		return nil, corrupt(location, err)
	}

	g.logger.Debug("inventory loaded",
		logging.String(logging.FieldLocation, location),
		logging.Int(logging.FieldCount, len(records)))
	return records, nil
}

// readLock takes the shared lock when a writer has already created the lock
// file, so reads never leave a new lock file behind. It returns nil when no
// lock is held.
func (g *FileGateway) readLock(location string) func() {
	path := lockPath(location)
	if _, err := os.Stat(path); err != nil {
		return nil
	}

	lock := flock.New(path)
	if err := lock.RLock(); err != nil {
		// A read-only directory cannot hold the lock; reading is still safe
		// for a single process.
		g.logger.Warn("inventory read without lock",
			logging.String(logging.FieldLocation, location),
			logging.Error(err))
		return nil
	}
	return func() { _ = lock.Unlock() }
}

// Save writes records to a temporary sibling file and renames it over
// location, so a failed save leaves the previous content in place.
func (g *FileGateway) Save(location string, records []inventory.Record) error {
	dir := filepath.Dir(location)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return writeFailed(location, err)
	}

	lock := flock.New(lockPath(location))
	if err := lock.Lock(); err != nil {
		return writeFailed(location, fmt.Errorf("acquire lock: %w", err))
	}
	defer lock.Unlock()

	tmpPath := location + "." + uuid.NewString() + ".tmp"
	if err := g.writeFile(tmpPath, records); err != nil {
		_ = os.Remove(tmpPath)
		return writeFailed(location, err)
	}
	if err := os.Rename(tmpPath, location); err != nil {
		_ = os.Remove(tmpPath)
		return writeFailed(location, err)
	}

	g.logger.Debug("inventory saved",
		logging.String(logging.FieldLocation, location),
		logging.Int(logging.FieldCount, len(records)))
	return nil
}

func (g *FileGateway) writeFile(path string, records []inventory.Record) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	if err := g.codec.Encode(f, records); err != nil {
		return fmt.Errorf("encode inventory: %w", err)
	}
	return f.Sync()
}
