package main

import "fmt"

type ShowCmd struct {
	ID string `arg:"" help:"CD ID"`
}

func (cmd *ShowCmd) Run(g *Globals) error {
	id, err := parseIDArg(cmd.ID)
	if err != nil {
		return err
	}

	record, ok := g.Session.Catalog().Find(id)
	if !ok {
		return fmt.Errorf("no CD found with ID %d", id)
	}

	fmt.Fprintf(g.Out, "ID:     %d\n", record.ID)
	fmt.Fprintf(g.Out, "Title:  %s\n", record.Title)
	fmt.Fprintf(g.Out, "Artist: %s\n", record.Artist)
	return nil
}
