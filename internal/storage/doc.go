// Package storage persists a whole inventory to a named location and reads
// it back.
//
// A location is a file path. Its extension picks the backend: ".yaml" and
// ".yml" use a YAML document, ".db", ".sqlite" and ".sqlite3" use a SQLite
// database, and anything else uses the length-prefixed binary format. Every
// backend stores the full record sequence in order; there is no append or
// partial update.
//
// Load distinguishes a location that does not exist (ErrStorageUnavailable)
// from one whose content cannot be decoded (ErrStorageCorrupt). Save failures
// match ErrStorageWriteFailed. File handles, locks and database connections
// are released before either call returns.
//
// File backends keep a "<location>.lock" file next to the inventory. Save
// creates it. Load only locks when it is already there, so reading an
// inventory never adds files to its directory.
package storage
