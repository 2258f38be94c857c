package proptest

import (
	"cdinv/internal/inventory"
	"errors"
	"strconv"
	"testing"

	"pgregory.net/rapid"
)

func TestProperty_Add_ValidIDAppends(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		before := recordsGen(minRecords, maxRecords).Draw(rt, "before")
		cat := inventory.NewCatalog(before...)

		idText := idTextGen().Draw(rt, "idText")
		title := textGen.Draw(rt, "title")
		artist := textGen.Draw(rt, "artist")

		if err := cat.Add(idText, title, artist); err != nil {
			rt.Fatalf("Add(%q) failed: %v", idText, err)
		}

		after := cat.List()
		assertPrefix(rt, before, after)
		if len(after) != len(before)+1 {
			rt.Fatalf("[%s] violated: len %d, want %d", InvAddAppends, len(after), len(before)+1)
		}

		want, _ := inventory.ParseID(idText)
		last := after[len(after)-1]
		if last != inventory.NewRecord(want, title, artist) {
			rt.Fatalf("[%s] violated: appended %v", InvAddAppends, last)
		}
		if !cat.Dirty() {
			rt.Fatalf("catalog not dirty after Add")
		}
		verifyStructuralInvariants(rt, cat)
	})
}

func TestProperty_Add_InvalidIDLeavesCatalog(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		before := recordsGen(minRecords, maxRecords).Draw(rt, "before")
		cat := inventory.NewCatalog(before...)

		idText := invalidIDTextGen().Draw(rt, "idText")
		err := cat.Add(idText, "title", "artist")
		if err == nil {
			rt.Fatalf("Add(%q) succeeded, want error", idText)
		}
		if !errors.Is(err, inventory.ErrInvalidID) {
			rt.Fatalf("Add(%q) error %v does not match ErrInvalidID", idText, err)
		}

		var verr *inventory.ValidationError
		if !errors.As(err, &verr) || verr.Field != "id" {
			rt.Fatalf("Add(%q) error %#v is not an id ValidationError", idText, err)
		}

		assertRecordsEqual(rt, InvInvalidAddNoChange, before, cat.List())
		if cat.Dirty() {
			rt.Fatalf("[%s] violated: catalog dirty after failed Add", InvInvalidAddNoChange)
		}
	})
}

func TestProperty_Delete_RemovesFirstMatch(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		before := recordsGen(typicalMinRecords, maxRecords).Draw(rt, "before")
		cat := inventory.NewCatalog(before...)

		id := rapid.SampledFrom(ids(before)).Draw(rt, "id")
		want, _ := withoutFirst(before, id)

		if !cat.Delete(id) {
			rt.Fatalf("[%s] violated: Delete(%d) reported miss", InvDeleteFirstMatch, id)
		}
		assertRecordsEqual(rt, InvDeleteFirstMatch, want, cat.List())
		verifyStructuralInvariants(rt, cat)
	})
}

func TestProperty_Delete_MissIsNoOp(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		before := recordsGen(minRecords, maxRecords).Draw(rt, "before")
		cat := inventory.NewCatalog(before...)

		id := rapid.IntRange(1000, 2000).Draw(rt, "absentID")
		if cat.Delete(id) {
			rt.Fatalf("[%s] violated: Delete(%d) reported hit", InvDeleteMissNoChange, id)
		}
		assertRecordsEqual(rt, InvDeleteMissNoChange, before, cat.List())
		if cat.Dirty() {
			rt.Fatalf("[%s] violated: catalog dirty after missed Delete", InvDeleteMissNoChange)
		}
	})
}

func TestProperty_AddThenDelete_RestoresLen(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		before := recordsGen(minRecords, maxRecords).Draw(rt, "before")
		cat := inventory.NewCatalog(before...)

		id := rapid.IntRange(1000, 2000).Draw(rt, "freshID")
		if err := cat.Add(strconv.Itoa(id), "t", "a"); err != nil {
			rt.Fatalf("Add failed: %v", err)
		}
		if !cat.Delete(id) {
			rt.Fatalf("Delete(%d) missed freshly added record", id)
		}
		assertRecordsEqual(rt, InvDeleteFirstMatch, before, cat.List())
	})
}

func TestProperty_List_IsACopy(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		before := recordsGen(typicalMinRecords, maxRecords).Draw(rt, "before")
		cat := inventory.NewCatalog(before...)

		list := cat.List()
		list[0].Title = list[0].Title + "!"

		assertRecordsEqual(rt, InvLenEqualsListLen, before, cat.List())
	})
}

func TestProperty_ParseID_MatchesAtoi(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		id := idGen().Draw(rt, "id")
		got, err := inventory.ParseID(" " + strconv.Itoa(id) + "\t")
		if err != nil {
			rt.Fatalf("ParseID(%d) failed: %v", id, err)
		}
		if got != id {
			rt.Fatalf("ParseID(%d) = %d", id, got)
		}
	})
}

func TestProperty_ParseID_GroupedAndScripts(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		id := rapid.IntRange(-1_000_000, 1_000_000).Draw(rt, "id")
		zero := rapid.SampledFrom([]rune{'0', '٠', '۰', '०', '０'}).Draw(rt, "zero")
		text := shiftDigits(groupDigits(strconv.Itoa(id)), zero)

		got, err := inventory.ParseID(text)
		if err != nil {
			rt.Fatalf("ParseID(%q) failed: %v", text, err)
		}
		if got != id {
			rt.Fatalf("ParseID(%q) = %d, want %d", text, got, id)
		}
	})
}
