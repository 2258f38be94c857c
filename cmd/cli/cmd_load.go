package main

import "fmt"

type LoadCmd struct{}

func (cmd *LoadCmd) Run(g *Globals) error {
	if err := g.Session.Reload(); err != nil {
		return fmt.Errorf("failed to reload inventory: %w", err)
	}
	if g.Session.Fresh() {
		fmt.Fprintln(g.Out, "No CD file exists. Add and save CD info to inventory to create a file.")
	}
	showInventory(g)
	return nil
}
