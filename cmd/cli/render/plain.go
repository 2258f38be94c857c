package render

import "strings"

const (
	plainHeader = "======= The Current Inventory: ======="
	plainFooter = "======================================"
)

// PlainRenderer prints a tab-separated listing framed by banner lines.
// The output carries no escape sequences.
type PlainRenderer struct{}

func (PlainRenderer) RenderInventory(view InventoryView) string {
	var sb strings.Builder
	sb.WriteString(plainHeader + "\n")
	sb.WriteString("ID\tCD Title (by: Artist)\n\n")
	for _, item := range view.Items {
		sb.WriteString(item.Record().String() + "\n")
	}
	sb.WriteString(plainFooter + "\n")
	return sb.String()
}
