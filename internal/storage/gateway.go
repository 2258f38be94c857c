package storage

import (
	"cdinv/internal/inventory"
	"cdinv/internal/logging"
	"log/slog"
	"path/filepath"
	"strings"
)

type Gateway interface {
	Load(location string) ([]inventory.Record, error)
	Save(location string, records []inventory.Record) error
}

type Backend string

const (
	BackendBinary Backend = "binary"
	BackendYAML   Backend = "yaml"
	BackendSQLite Backend = "sqlite"
)

func BackendFor(location string) Backend {
	switch strings.ToLower(filepath.Ext(location)) {
	case ".yaml", ".yml":
		return BackendYAML
	case ".db", ".sqlite", ".sqlite3":
		return BackendSQLite
	default:
		return BackendBinary
	}
}

// ForLocation returns the gateway that understands location's format.
func ForLocation(location string, logger *slog.Logger) Gateway {
	backend := BackendFor(location)
	logger = logging.Component(logger, "storage").With(logging.String(logging.FieldBackend, string(backend)))

	switch backend {
	case BackendYAML:
		return NewFileGateway(YAMLCodec{}, logger)
	case BackendSQLite:
		return NewSQLiteGateway(logger)
	default:
		return NewFileGateway(BinaryCodec{}, logger)
	}
}
