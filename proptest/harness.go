package proptest

import (
	"cdinv/internal/inventory"
	"cdinv/internal/logging"
	"cdinv/internal/session"
	"cdinv/internal/storage"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"pgregory.net/rapid"
)

const (
	minRecords        = 0
	maxRecords        = 20
	typicalMinRecords = 1
	typicalMaxRecords = 10
)

type Harness struct {
	T   *rapid.T
	Dir string
}

// Location draws an inventory file name inside the iteration directory,
// so every backend gets exercised.
func (h *Harness) Location() string {
	return filepath.Join(h.Dir, "inventory"+extensionGen.Draw(h.T, "ext"))
}

func (h *Harness) GenRecord() inventory.Record {
	return recordGen().Draw(h.T, "record")
}

type SessionHarness struct {
	Harness
	Session *session.Session
}

func (h *SessionHarness) Catalog() *inventory.Catalog {
	return h.Session.Catalog()
}

func (h *SessionHarness) MustAdd(r inventory.Record) {
	if err := h.Catalog().Add(strconv.Itoa(r.ID), r.Title, r.Artist); err != nil {
		h.T.Fatalf("failed to add record %v: %v", r, err)
	}
}

func (h *SessionHarness) AddRecords(minCount, maxCount int) []inventory.Record {
	added := recordsGen(minCount, maxCount).Draw(h.T, "records")
	for _, r := range added {
		h.MustAdd(r)
	}
	return added
}

// Reopen starts a second session on the same location, as a later run
// of the program would.
func (h *SessionHarness) Reopen() *session.Session {
	logger := logging.NewNop()
	location := h.Session.Location()
	sess, err := session.Open(location, storage.ForLocation(location, logger), logger)
	if err != nil {
		h.T.Fatalf("failed to reopen session: %v", err)
	}
	return sess
}

func newIterDir(tempDir string, rt *rapid.T) string {
	iterDir := filepath.Join(tempDir, iterDirGen.Draw(rt, "iterDir"))
	if err := os.MkdirAll(iterDir, 0o755); err != nil {
		rt.Fatalf("failed to create iter dir: %v", err)
	}
	return iterDir
}

func RunWithSession(t *testing.T, fn func(h *SessionHarness)) {
	tempDir := t.TempDir()
	rapid.Check(t, func(rt *rapid.T) {
		iterDir := newIterDir(tempDir, rt)
		base := Harness{T: rt, Dir: iterDir}

		location := base.Location()
		// Iteration directories can repeat across rapid runs.
		_ = os.Remove(location)

		logger := logging.NewNop()
		sess, err := session.Open(location, storage.ForLocation(location, logger), logger)
		if err != nil {
			rt.Fatalf("failed to open session: %v", err)
		}

		fn(&SessionHarness{Harness: base, Session: sess})
	})
}

func RunBasic(t *testing.T, fn func(h *Harness)) {
	tempDir := t.TempDir()
	rapid.Check(t, func(rt *rapid.T) {
		fn(&Harness{T: rt, Dir: newIterDir(tempDir, rt)})
	})
}
