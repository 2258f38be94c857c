package render

import "cdinv/internal/inventory"

type Renderer interface {
	RenderInventory(view InventoryView) string
}

type InventoryView struct {
	Items []InventoryItem
}

type InventoryItem struct {
	ID     int
	Title  string
	Artist string
}

func NewInventoryView(records []inventory.Record) InventoryView {
	items := make([]InventoryItem, len(records))
	for i, r := range records {
		items[i] = InventoryItem{ID: r.ID, Title: r.Title, Artist: r.Artist}
	}
	return InventoryView{Items: items}
}

func (i InventoryItem) Record() inventory.Record {
	return inventory.NewRecord(i.ID, i.Title, i.Artist)
}

func (v InventoryView) IsEmpty() bool {
	return len(v.Items) == 0
}
