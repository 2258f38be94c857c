package render

import (
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
)

type TableRenderer struct {
	width    int
	colorize bool

	titleStyle lipgloss.Style
	emptyStyle lipgloss.Style
}

func NewTableRenderer(w io.Writer, width int, colorize bool) *TableRenderer {
	r := lipgloss.NewRenderer(w)
	return &TableRenderer{
		width:      width,
		colorize:   colorize,
		titleStyle: r.NewStyle().Bold(true),
		emptyStyle: r.NewStyle().Faint(true),
	}
}

// NewTableRendererAuto sizes the table to the terminal behind w and only
// emits colour when w is a terminal.
func NewTableRendererAuto(w io.Writer) *TableRenderer {
	width := 80
	colorize := false
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(f.Fd()); err == nil && tw > 0 {
			width = tw
		}
		colorize = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return NewTableRenderer(w, width, colorize)
}

func (r *TableRenderer) RenderInventory(view InventoryView) string {
	title := r.titleStyle.Render("The Current Inventory") + "\n"
	if view.IsEmpty() {
		return title + r.emptyStyle.Render("No CDs in the inventory.") + "\n"
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	if r.colorize {
		tw.Style().Color.Header = text.Colors{text.Bold, text.FgCyan}
	}
	if r.width > 0 {
		tw.SetAllowedRowLength(r.width)
	}

	tw.AppendHeader(table.Row{"ID", "Title", "Artist"})
	for _, item := range view.Items {
		tw.AppendRow(table.Row{strconv.Itoa(item.ID), item.Title, item.Artist})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft},
		{Number: 3, Align: text.AlignLeft},
	})

	return title + tw.Render() + "\n"
}
