package main

import (
	"cdinv/cmd/cli/render"
	"cdinv/internal/inventory"
	"errors"
	"fmt"
	"io"
)

const (
	msgAddInvalidID    = "You must enter the CD ID as an integer. Adding CD failed."
	msgDeleteInvalidID = "You must enter ID as an integer. Deleting CD failed."
)

func showInventory(g *Globals) {
	view := render.NewInventoryView(g.Session.Catalog().List())
	fmt.Fprint(g.Out, g.Render.RenderInventory(view))
}

func describe(r inventory.Record) string {
	return fmt.Sprintf("%s by %s (ID %d)", r.Title, r.Artist, r.ID)
}

// writeValidationError prints the user-facing message for a bad ID and
// reports whether err was a validation failure.
func writeValidationError(w io.Writer, err error, message string) bool {
	if !errors.Is(err, inventory.ErrInvalidID) {
		return false
	}
	fmt.Fprintln(w, message)
	return true
}

func parseIDArg(text string) (int, error) {
	id, err := inventory.ParseID(text)
	if err != nil {
		return 0, fmt.Errorf("%q is not a valid CD ID: %w", text, inventory.ErrInvalidID)
	}
	return id, nil
}
