package proptest

import (
	"cdinv/internal/inventory"

	"pgregory.net/rapid"
)

const (
	InvLenEqualsListLen   = "len-equals-list"
	InvAllMatchesList     = "all-matches-list"
	InvFindIsFirstMatch   = "find-first-match"
	InvAddAppends         = "add-appends"
	InvDeleteFirstMatch   = "delete-first-match"
	InvDeleteMissNoChange = "delete-miss-unchanged"
	InvInvalidAddNoChange = "invalid-add-unchanged"
	InvModelConsistent    = "model-consistent"
	InvSaveLoadRoundTrip  = "save-load-round-trip"
	InvMissingLoadsEmpty  = "missing-loads-empty"
)

func verifyStructuralInvariants(t *rapid.T, cat *inventory.Catalog) {
	list := cat.List()

	if cat.Len() != len(list) {
		t.Fatalf("[%s] violated: Len()=%d but len(List())=%d", InvLenEqualsListLen, cat.Len(), len(list))
	}

	seen := make(map[int]bool)
	for i, r := range cat.All() {
		if i >= len(list) || list[i] != r {
			t.Fatalf("[%s] violated at position %d", InvAllMatchesList, i)
		}
		if seen[r.ID] {
			continue
		}
		seen[r.ID] = true
		found, ok := cat.Find(r.ID)
		if !ok || found != r {
			t.Fatalf("[%s] violated: Find(%d)=%v,%v want %v", InvFindIsFirstMatch, r.ID, found, ok, r)
		}
	}
}
