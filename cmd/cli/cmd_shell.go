package main

import (
	"cdinv/internal/logging"
	"cdinv/internal/ui"
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
)

const (
	msgNoInventoryFile = "No CD file exists. Add and save CD info to inventory to create a file."
	msgReloadWarning   = "If you continue, all unsaved data will be lost and the Inventory re-loaded from file."
	msgReloadCanceled  = "canceling... Inventory data NOT reloaded."
	msgSaveCanceled    = "The inventory was NOT saved to file."
	msgRemoved         = "The CD was removed"
	msgNotFound        = "Could not find this CD!"
)

type ShellCmd struct{}

func (cmd *ShellCmd) Run(g *Globals) error {
	if g.Session.Fresh() {
		fmt.Fprintln(g.Out, msgNoInventoryFile)
	}

	for {
		choice, err := g.Prompt.MenuChoice()
		if err != nil {
			return promptErr(err)
		}
		g.Logger.Debug("menu choice", logging.String(logging.FieldEventType, choice))

		var done bool
		switch choice {
		case ui.ChoiceLoad:
			err = shellLoad(g)
		case ui.ChoiceAdd:
			err = shellAdd(g)
		case ui.ChoiceInventory:
			showInventory(g)
		case ui.ChoiceDelete:
			err = shellDelete(g)
		case ui.ChoiceSave:
			err = shellSave(g)
		case ui.ChoiceExit:
			done, err = shellExit(g)
		default:
			fmt.Fprintf(g.Out, "Unknown choice %q\n", choice)
		}
		if err != nil {
			return promptErr(err)
		}
		if done {
			return nil
		}
	}
}

// promptErr turns a user abort into a clean exit.
func promptErr(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return nil
	}
	return err
}

func shellLoad(g *Globals) error {
	fmt.Fprint(g.Out, ui.RenderWarning(msgReloadWarning))
	ok, err := g.Prompt.Confirm("Reload inventory from file?", g.Session.Location())
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(g.Out, msgReloadCanceled)
		return nil
	}

	fmt.Fprintln(g.Out, "reloading...")
	if err := g.Session.Reload(); err != nil {
		fmt.Fprint(g.Out, ui.RenderWarning(err.Error()))
		return nil
	}
	if g.Session.Fresh() {
		fmt.Fprintln(g.Out, msgNoInventoryFile)
	}
	showInventory(g)
	return nil
}

func shellAdd(g *Globals) error {
	id, title, artist, err := g.Prompt.NewCD()
	if err != nil {
		return err
	}

	if err := g.Session.Catalog().Add(id, title, artist); err != nil {
		if !writeValidationError(g.Out, err, msgAddInvalidID) {
			return err
		}
		return nil
	}

	fmt.Fprint(g.Out, ui.RenderWizard("Added CD", []ui.Field{
		{Label: "ID", Value: id},
		{Label: "Title", Value: title},
		{Label: "Artist", Value: artist},
	}))
	showInventory(g)
	return nil
}

func shellDelete(g *Globals) error {
	showInventory(g)
	text, err := g.Prompt.DeleteID()
	if err != nil {
		return err
	}

	id, err := parseIDArg(text)
	if err != nil {
		writeValidationError(g.Out, err, msgDeleteInvalidID)
		return nil
	}

	if g.Session.Catalog().Delete(id) {
		fmt.Fprintln(g.Out, msgRemoved)
	} else {
		fmt.Fprintln(g.Out, msgNotFound)
	}
	showInventory(g)
	return nil
}

func shellSave(g *Globals) error {
	showInventory(g)
	ok, err := g.Prompt.Confirm("Save this inventory to file?", g.Session.Location())
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(g.Out, msgSaveCanceled)
		return nil
	}

	if err := g.Session.Save(); err != nil {
		fmt.Fprint(g.Out, ui.RenderWarning(err.Error()))
		return nil
	}

	n := g.Session.Catalog().Len()
	fmt.Fprint(g.Out, ui.RenderSaved(g.Session.Location(), []string{
		strconv.Itoa(n) + " CDs written",
	}))
	return nil
}

func shellExit(g *Globals) (bool, error) {
	if !g.Session.Catalog().Dirty() {
		return true, nil
	}
	return g.Prompt.Confirm("Exit without saving?", "The inventory has unsaved changes.")
}
