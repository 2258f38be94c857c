package inventory_test

import (
	"cdinv/internal/inventory"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Add(t *testing.T) {
	t.Run("appends record with parsed ID", func(t *testing.T) {
		cat := inventory.NewCatalog()

		err := cat.Add("1", "Abbey Road", "The Beatles")

		require.NoError(t, err)
		assert.Equal(t, []inventory.Record{{ID: 1, Title: "Abbey Road", Artist: "The Beatles"}}, cat.List())
	})

	t.Run("appends to the end without reordering", func(t *testing.T) {
		cat := inventory.NewCatalog(
			inventory.NewRecord(5, "Kind of Blue", "Miles Davis"),
			inventory.NewRecord(2, "Blue", "Joni Mitchell"),
		)

		require.NoError(t, cat.Add("3", "Rumours", "Fleetwood Mac"))

		records := cat.List()
		require.Len(t, records, 3)
		assert.Equal(t, 5, records[0].ID)
		assert.Equal(t, 2, records[1].ID)
		assert.Equal(t, inventory.NewRecord(3, "Rumours", "Fleetwood Mac"), records[2])
	})

	t.Run("trims whitespace around ID", func(t *testing.T) {
		cat := inventory.NewCatalog()

		require.NoError(t, cat.Add("  42 ", "Title", "Artist"))

		assert.Equal(t, 42, cat.List()[0].ID)
	})

	t.Run("accepts grouped and non-ASCII digits", func(t *testing.T) {
		cat := inventory.NewCatalog()

		require.NoError(t, cat.Add("1_000", "Grouped", "A"))
		require.NoError(t, cat.Add("١٢", "Arabic-Indic", "B"))

		assert.Equal(t, []int{1000, 12}, []int{cat.List()[0].ID, cat.List()[1].ID})
	})

	t.Run("allows duplicate IDs", func(t *testing.T) {
		cat := inventory.NewCatalog()

		require.NoError(t, cat.Add("7", "First", "A"))
		require.NoError(t, cat.Add("7", "Second", "B"))

		assert.Equal(t, 2, cat.Len())
	})

	t.Run("keeps empty title and artist", func(t *testing.T) {
		cat := inventory.NewCatalog()

		require.NoError(t, cat.Add("1", "", ""))

		assert.Equal(t, inventory.NewRecord(1, "", ""), cat.List()[0])
	})

	t.Run("rejects non-integer ID without changing catalog", func(t *testing.T) {
		for _, input := range []string{"", "abc", "1.5", "12a", "one", "0x10", "1 2"} {
			cat := inventory.NewCatalog(inventory.NewRecord(1, "Abbey Road", "The Beatles"))

			err := cat.Add(input, "Title", "Artist")

			assert.ErrorIs(t, err, inventory.ErrInvalidID, "input %q", input)
			var verr *inventory.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, "id", verr.Field)
			assert.Equal(t, input, verr.Value)
			assert.Equal(t, 1, cat.Len())
			assert.False(t, cat.Dirty())
		}
	})

	t.Run("marks catalog dirty", func(t *testing.T) {
		cat := inventory.NewCatalog()

		require.NoError(t, cat.Add("1", "Title", "Artist"))

		assert.True(t, cat.Dirty())
	})
}

func TestCatalog_Delete(t *testing.T) {
	t.Run("removes only the first matching record", func(t *testing.T) {
		cat := inventory.NewCatalog(
			inventory.NewRecord(7, "First", "A"),
			inventory.NewRecord(7, "Second", "B"),
		)

		removed := cat.Delete(7)

		assert.True(t, removed)
		assert.Equal(t, []inventory.Record{inventory.NewRecord(7, "Second", "B")}, cat.List())
	})

	t.Run("reports miss and leaves catalog unchanged", func(t *testing.T) {
		original := []inventory.Record{
			inventory.NewRecord(1, "Abbey Road", "The Beatles"),
			inventory.NewRecord(2, "Thriller", "Michael Jackson"),
		}
		cat := inventory.NewCatalog(original...)

		removed := cat.Delete(99)

		assert.False(t, removed)
		assert.Equal(t, original, cat.List())
		assert.False(t, cat.Dirty())
	})

	t.Run("reports miss on empty catalog", func(t *testing.T) {
		cat := inventory.NewCatalog()

		assert.False(t, cat.Delete(1))
		assert.Equal(t, 0, cat.Len())
	})

	t.Run("removes record from the middle", func(t *testing.T) {
		cat := inventory.NewCatalog(
			inventory.NewRecord(1, "a", "a"),
			inventory.NewRecord(2, "b", "b"),
			inventory.NewRecord(3, "c", "c"),
		)

		require.True(t, cat.Delete(2))

		assert.Equal(t, []inventory.Record{
			inventory.NewRecord(1, "a", "a"),
			inventory.NewRecord(3, "c", "c"),
		}, cat.List())
	})
}

func TestCatalog_List(t *testing.T) {
	t.Run("returns a copy", func(t *testing.T) {
		cat := inventory.NewCatalog(inventory.NewRecord(1, "Abbey Road", "The Beatles"))

		records := cat.List()
		records[0].Title = "changed"

		assert.Equal(t, "Abbey Road", cat.List()[0].Title)
	})

	t.Run("is repeatable", func(t *testing.T) {
		cat := inventory.NewCatalog(
			inventory.NewRecord(2, "b", "b"),
			inventory.NewRecord(1, "a", "a"),
		)

		assert.Equal(t, cat.List(), cat.List())
	})

	t.Run("all yields records in order", func(t *testing.T) {
		cat := inventory.NewCatalog(
			inventory.NewRecord(2, "b", "b"),
			inventory.NewRecord(1, "a", "a"),
		)

		var ids []int
		for i, r := range cat.All() {
			assert.Equal(t, len(ids), i)
			ids = append(ids, r.ID)
		}

		assert.Equal(t, []int{2, 1}, ids)
	})

	t.Run("all stops early", func(t *testing.T) {
		cat := inventory.NewCatalog(
			inventory.NewRecord(1, "a", "a"),
			inventory.NewRecord(2, "b", "b"),
		)

		count := 0
		for range cat.All() {
			count++
			break
		}

		assert.Equal(t, 1, count)
	})
}

func TestCatalog_Find(t *testing.T) {
	t.Run("returns first match", func(t *testing.T) {
		cat := inventory.NewCatalog(
			inventory.NewRecord(7, "First", "A"),
			inventory.NewRecord(7, "Second", "B"),
		)

		r, ok := cat.Find(7)

		require.True(t, ok)
		assert.Equal(t, "First", r.Title)
	})

	t.Run("reports miss", func(t *testing.T) {
		cat := inventory.NewCatalog()

		_, ok := cat.Find(7)

		assert.False(t, ok)
	})
}

func TestCatalog_Replace(t *testing.T) {
	t.Run("discards previous records and clears dirty flag", func(t *testing.T) {
		cat := inventory.NewCatalog(inventory.NewRecord(1, "old", "old"))
		require.NoError(t, cat.Add("2", "unsaved", "unsaved"))

		cat.Replace([]inventory.Record{inventory.NewRecord(9, "new", "new")})

		assert.Equal(t, []inventory.Record{inventory.NewRecord(9, "new", "new")}, cat.List())
		assert.False(t, cat.Dirty())
	})

	t.Run("does not alias the given slice", func(t *testing.T) {
		records := []inventory.Record{inventory.NewRecord(1, "a", "a")}
		cat := inventory.NewCatalog()

		cat.Replace(records)
		records[0].Title = "changed"

		assert.Equal(t, "a", cat.List()[0].Title)
	})

	t.Run("clear empties the catalog", func(t *testing.T) {
		cat := inventory.NewCatalog(inventory.NewRecord(1, "a", "a"))

		cat.Clear()

		assert.Equal(t, 0, cat.Len())
		assert.Empty(t, cat.List())
	})
}

func TestEndToEndScenario(t *testing.T) {
	cat := inventory.NewCatalog()

	require.NoError(t, cat.Add("1", "Abbey Road", "The Beatles"))
	require.NoError(t, cat.Add("2", "Thriller", "Michael Jackson"))
	require.True(t, cat.Delete(1))

	assert.Equal(t, []inventory.Record{{ID: 2, Title: "Thriller", Artist: "Michael Jackson"}}, cat.List())
}
