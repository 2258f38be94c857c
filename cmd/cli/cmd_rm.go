package main

import (
	"fmt"
)

type RmCmd struct {
	ID string `arg:"" help:"ID of the CD to delete (first match wins)"`
}

func (cmd *RmCmd) Run(g *Globals) error {
	id, err := parseIDArg(cmd.ID)
	if err != nil {
		return err
	}

	cat := g.Session.Catalog()
	record, found := cat.Find(id)
	if !found || !cat.Delete(id) {
		fmt.Fprintf(g.Out, "Could not find a CD with ID %d\n", id)
		return nil
	}

	if err := g.Session.Save(); err != nil {
		return fmt.Errorf("failed to save inventory: %w", err)
	}

	fmt.Fprintf(g.Out, "Removed: %s\n", describe(record))
	return nil
}
