package main

import (
	"cdinv/internal/config"
	"cdinv/internal/storage"
	"fmt"
)

type SaveCmd struct {
	Yes bool   `short:"y" help:"Save without asking for confirmation"`
	To  string `name:"to" placeholder:"PATH" help:"Write to another inventory file instead (format from extension)"`
}

func (cmd *SaveCmd) Run(g *Globals) error {
	location := g.Session.Location()
	if cmd.To != "" {
		path, err := config.ExpandPath(cmd.To)
		if err != nil {
			return fmt.Errorf("invalid target path: %w", err)
		}
		location = path
	}

	if !cmd.Yes {
		ok, err := g.Prompt.Confirm("Save this inventory to file?", location)
		if err != nil {
			return promptErr(err)
		}
		if !ok {
			fmt.Fprintln(g.Out, msgSaveCanceled)
			return nil
		}
	}

	n := g.Session.Catalog().Len()
	if cmd.To == "" {
		if err := g.Session.Save(); err != nil {
			return fmt.Errorf("failed to save inventory: %w", err)
		}
	} else {
		gw := storage.ForLocation(location, g.Logger)
		if err := gw.Save(location, g.Session.Catalog().List()); err != nil {
			return fmt.Errorf("failed to save inventory: %w", err)
		}
	}

	fmt.Fprintf(g.Out, "Saved: %d CDs to %s\n", n, location)
	return nil
}
