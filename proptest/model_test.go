package proptest

import (
	"cdinv/internal/inventory"
	"slices"

	"pgregory.net/rapid"
)

// referenceCatalog is the obvious slice implementation the real catalog is
// checked against.
type referenceCatalog struct {
	records []inventory.Record
	dirty   bool
}

func (m *referenceCatalog) add(r inventory.Record) {
	m.records = append(m.records, r)
	m.dirty = true
}

func (m *referenceCatalog) delete(id int) bool {
	next, ok := withoutFirst(m.records, id)
	if ok {
		m.records = next
		m.dirty = true
	}
	return ok
}

func (m *referenceCatalog) replace(records []inventory.Record) {
	m.records = slices.Clone(records)
	m.dirty = false
}

type CheckedCatalog struct {
	real  *inventory.Catalog
	model *referenceCatalog
	t     *rapid.T
}

func NewCheckedCatalog(t *rapid.T, cat *inventory.Catalog) *CheckedCatalog {
	return &CheckedCatalog{
		real:  cat,
		model: &referenceCatalog{records: cat.List(), dirty: cat.Dirty()},
		t:     t,
	}
}

func (c *CheckedCatalog) IDs() []int {
	return ids(c.model.records)
}

func (c *CheckedCatalog) Add(idText, title, artist string) error {
	realErr := c.real.Add(idText, title, artist)
	if realErr == nil {
		id, _ := inventory.ParseID(idText)
		c.model.add(inventory.NewRecord(id, title, artist))
	}
	c.check()
	return realErr
}

func (c *CheckedCatalog) Delete(id int) bool {
	realOK := c.real.Delete(id)
	modelOK := c.model.delete(id)
	if realOK != modelOK {
		c.t.Fatalf("[%s] violated: Delete(%d) real=%v model=%v", InvModelConsistent, id, realOK, modelOK)
	}
	c.check()
	return realOK
}

func (c *CheckedCatalog) Replace(records []inventory.Record) {
	c.real.Replace(records)
	c.model.replace(records)
	c.check()
}

func (c *CheckedCatalog) MarkClean() {
	c.real.MarkClean()
	c.model.dirty = false
	c.check()
}

func (c *CheckedCatalog) check() {
	assertRecordsEqual(c.t, InvModelConsistent, c.model.records, c.real.List())
	if c.real.Dirty() != c.model.dirty {
		c.t.Fatalf("[%s] violated: Dirty() real=%v model=%v", InvModelConsistent, c.real.Dirty(), c.model.dirty)
	}
	verifyStructuralInvariants(c.t, c.real)
}
