package proptest

import (
	"cdinv/internal/inventory"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"pgregory.net/rapid"
)

func assertRecordsEqual(t *rapid.T, inv string, expected, actual []inventory.Record) {
	t.Helper()
	if diff := cmp.Diff(expected, actual, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("[%s] violated: records mismatch (-want +got):\n%s", inv, diff)
	}
}

func assertPrefix(t *rapid.T, prefix, records []inventory.Record) {
	t.Helper()
	if len(records) < len(prefix) {
		t.Fatalf("[%s] violated: %d records, want at least %d", InvAddAppends, len(records), len(prefix))
	}
	assertRecordsEqual(t, InvAddAppends, prefix, records[:len(prefix)])
}

// withoutFirst is the reference for Delete: records minus the first one
// carrying id.
func withoutFirst(records []inventory.Record, id int) ([]inventory.Record, bool) {
	for i, r := range records {
		if r.ID == id {
			out := make([]inventory.Record, 0, len(records)-1)
			out = append(out, records[:i]...)
			return append(out, records[i+1:]...), true
		}
	}
	return records, false
}

func ids(records []inventory.Record) []int {
	out := make([]int, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}
