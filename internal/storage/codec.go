package storage

import (
	"cdinv/internal/inventory"
	"io"
)

// Codec converts a complete record sequence to and from bytes. Decode must
// consume the whole stream and either return every record or an error.
type Codec interface {
	Encode(w io.Writer, records []inventory.Record) error
	Decode(r io.Reader) ([]inventory.Record, error)
}
