package inventory

import (
	"iter"
	"slices"
)

// Catalog is the ordered, in-memory table of records for one session.
// Insertion order is display order and decides which duplicate ID is
// removed first. A Catalog is not safe for concurrent use.
type Catalog struct {
	records []Record
	dirty   bool
}

func NewCatalog(records ...Record) *Catalog {
	return &Catalog{records: slices.Clone(records)}
}

// Add parses idText and appends a new record. On a parse failure the
// catalog is left untouched and a *ValidationError is returned.
func (c *Catalog) Add(idText, title, artist string) error {
	id, err := ParseID(idText)
	if err != nil {
		return err
	}
	c.records = append(c.records, NewRecord(id, title, artist))
	c.dirty = true
	return nil
}

// Delete removes the first record whose ID equals id and reports whether
// one was found.
func (c *Catalog) Delete(id int) bool {
	i := slices.IndexFunc(c.records, func(r Record) bool { return r.ID == id })
	if i < 0 {
		return false
	}
	c.records = slices.Delete(c.records, i, i+1)
	c.dirty = true
	return true
}

func (c *Catalog) Find(id int) (Record, bool) {
	for _, r := range c.records {
		if r.ID == id {
			return r, true
		}
	}
	return Record{}, false
}

func (c *Catalog) List() []Record {
	return slices.Clone(c.records)
}

func (c *Catalog) All() iter.Seq2[int, Record] {
	return func(yield func(int, Record) bool) {
		for i, r := range c.records {
			if !yield(i, r) {
				return
			}
		}
	}
}

func (c *Catalog) Len() int {
	return len(c.records)
}

// Replace discards the current contents in favour of records, as a reload
// from storage does. The catalog is clean afterwards.
func (c *Catalog) Replace(records []Record) {
	c.records = slices.Clone(records)
	c.dirty = false
}

func (c *Catalog) Clear() {
	c.Replace(nil)
}

// Dirty reports whether the catalog changed since the last Replace or
// MarkClean.
func (c *Catalog) Dirty() bool {
	return c.dirty
}

func (c *Catalog) MarkClean() {
	c.dirty = false
}
