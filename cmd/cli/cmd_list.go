package main

import (
	"cdinv/cmd/cli/render"
	"fmt"
)

type ListCmd struct {
	Plain bool `short:"p" help:"Tab-separated output without table borders"`
	IDs   bool `name:"ids" help:"Output only CD IDs (one per line)"`
}

func (cmd *ListCmd) Run(g *Globals) error {
	records := g.Session.Catalog().List()

	if cmd.IDs {
		for _, r := range records {
			fmt.Fprintln(g.Out, r.ID)
		}
		return nil
	}

	renderer := g.Render
	if cmd.Plain {
		renderer = render.PlainRenderer{}
	}
	fmt.Fprint(g.Out, renderer.RenderInventory(render.NewInventoryView(records)))
	return nil
}
