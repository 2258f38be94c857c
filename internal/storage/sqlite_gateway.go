package storage

import (
	"cdinv/internal/inventory"
	"cdinv/internal/logging"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const recordsSchema = `CREATE TABLE IF NOT EXISTS records (
	position INTEGER PRIMARY KEY,
	id       INTEGER NOT NULL,
	title    TEXT    NOT NULL,
	artist   TEXT    NOT NULL
)`

// SQLiteGateway stores the inventory as rows of a "records" table, ordered
// by position. Save rewrites the whole table inside one transaction.
type SQLiteGateway struct {
	logger *slog.Logger
}

func NewSQLiteGateway(logger *slog.Logger) *SQLiteGateway {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &SQLiteGateway{logger: logger}
}

func openDB(location string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", location)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// One connection keeps the pragma and the transaction on the same handle.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply pragma: %w", err)
	}
	return db, nil
}

func (g *SQLiteGateway) Load(location string) ([]inventory.Record, error) {
	// sqlite creates missing files on open; a load must not.
	if _, err := os.Stat(location); err != nil {
		return nil, unavailable(location, err)
	}

	db, err := openDB(location)
	if err != nil {
		return nil, corrupt(location, err)
	}
	defer db.Close()

	var tables int
	row := db.QueryRow("SELECT COUNT(1) FROM sqlite_master WHERE type = 'table' AND name = 'records'")
	if err := row.Scan(&tables); err != nil {
		return nil, corrupt(location, err)
	}
	if tables == 0 {
		return []inventory.Record{}, nil
	}

	records, err := queryRecords(db)
	if err != nil {
		return nil, corrupt(location, err)
	}

	g.logger.Debug("inventory loaded",
		logging.String(logging.FieldLocation, location),
		logging.Int(logging.FieldCount, len(records)))
	return records, nil
}

func queryRecords(db *sql.DB) ([]inventory.Record, error) {
	rows, err := db.Query("SELECT id, title, artist FROM records ORDER BY position")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []inventory.Record{}
	for rows.Next() {
		var r inventory.Record
		if err := rows.Scan(&r.ID, &r.Title, &r.Artist); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func (g *SQLiteGateway) Save(location string, records []inventory.Record) error {
	if err := os.MkdirAll(filepath.Dir(location), 0o755); err != nil {
		return writeFailed(location, err)
	}

	db, err := openDB(location)
	if err != nil {
		return writeFailed(location, err)
	}
	defer db.Close()

	if _, err := db.Exec(recordsSchema); err != nil {
		return writeFailed(location, fmt.Errorf("init schema: %w", err))
	}
	if err := replaceRecords(db, records); err != nil {
		return writeFailed(location, err)
	}

	g.logger.Debug("inventory saved",
		logging.String(logging.FieldLocation, location),
		logging.Int(logging.FieldCount, len(records)))
	return nil
}

func replaceRecords(db *sql.DB, records []inventory.Record) (err error) {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			err = errors.Join(err, tx.Rollback())
		}
	}()

	if _, err := tx.Exec("DELETE FROM records"); err != nil {
		return fmt.Errorf("clear records: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO records (position, id, title, artist) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range records {
		if _, err := stmt.Exec(i, r.ID, r.Title, r.Artist); err != nil {
			return fmt.Errorf("insert record %d: %w", r.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
