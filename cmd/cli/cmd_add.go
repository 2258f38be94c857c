package main

import (
	"cdinv/internal/logging"
	"fmt"
)

type AddCmd struct {
	ID     string `arg:"" help:"CD ID (integer)"`
	Title  string `arg:"" help:"CD title"`
	Artist string `arg:"" help:"Artist name"`
}

func (cmd *AddCmd) Run(g *Globals) error {
	cat := g.Session.Catalog()

	if err := cat.Add(cmd.ID, cmd.Title, cmd.Artist); err != nil {
		writeValidationError(g.Out, err, msgAddInvalidID)
		return fmt.Errorf("failed to add CD: %w", err)
	}

	if err := g.Session.Save(); err != nil {
		return fmt.Errorf("failed to save inventory: %w", err)
	}

	added := cat.List()[cat.Len()-1]
	g.Logger.Debug("cd added", logging.Int(logging.FieldRecordID, added.ID))
	fmt.Fprintf(g.Out, "Added: %s\n", describe(added))
	return nil
}
