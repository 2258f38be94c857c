package ui

import (
	"io"
	"strings"

	"github.com/charmbracelet/huh"
)

// Menu choices. The values are the single-key shortcuts of the text menu.
const (
	ChoiceLoad      = "l"
	ChoiceAdd       = "a"
	ChoiceInventory = "i"
	ChoiceDelete    = "d"
	ChoiceSave      = "s"
	ChoiceExit      = "x"
)

// Prompter collects raw input for the interactive shell. Returned strings
// are trimmed; nothing is validated here. Implementations return
// huh.ErrUserAborted when the user cancels.
type Prompter interface {
	MenuChoice() (string, error)
	NewCD() (id, title, artist string, err error)
	DeleteID() (string, error)
	Confirm(title, description string) (bool, error)
}

type HuhPrompter struct {
	in         io.Reader
	out        io.Writer
	accessible bool
	theme      *huh.Theme
}

// NewHuhPrompter builds a prompter on in and out. Accessible mode reads
// plain lines, which is what a non-terminal stdin needs.
func NewHuhPrompter(in io.Reader, out io.Writer, accessible bool) *HuhPrompter {
	return &HuhPrompter{
		in:         in,
		out:        out,
		accessible: accessible,
		theme:      WizardTheme(),
	}
}

func (p *HuhPrompter) run(groups ...*huh.Group) error {
	return huh.NewForm(groups...).
		WithTheme(p.theme).
		WithAccessible(p.accessible).
		WithInput(p.in).
		WithOutput(p.out).
		Run()
}

func (p *HuhPrompter) MenuChoice() (string, error) {
	var choice string
	err := p.run(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Menu").
			Options(
				huh.NewOption("[l] load Inventory from file", ChoiceLoad),
				huh.NewOption("[a] Add CD", ChoiceAdd),
				huh.NewOption("[i] Display Current Inventory", ChoiceInventory),
				huh.NewOption("[d] delete CD from Inventory", ChoiceDelete),
				huh.NewOption("[s] Save Inventory to file", ChoiceSave),
				huh.NewOption("[x] exit", ChoiceExit),
			).
			Value(&choice),
	))
	return choice, err
}

func (p *HuhPrompter) NewCD() (string, string, string, error) {
	var id, title, artist string
	err := p.run(huh.NewGroup(
		huh.NewInput().Title("Enter ID").Value(&id),
		huh.NewInput().Title("What is the CD's title?").Value(&title),
		huh.NewInput().Title("What is the Artist's name?").Value(&artist),
	))
	return strings.TrimSpace(id), strings.TrimSpace(title), strings.TrimSpace(artist), err
}

func (p *HuhPrompter) DeleteID() (string, error) {
	var id string
	err := p.run(huh.NewGroup(
		huh.NewInput().Title("Which ID would you like to delete?").Value(&id),
	))
	return strings.TrimSpace(id), err
}

func (p *HuhPrompter) Confirm(title, description string) (bool, error) {
	var ok bool
	err := p.run(huh.NewGroup(
		huh.NewConfirm().
			Title(title).
			Description(description).
			Affirmative("Yes").
			Negative("No").
			Value(&ok),
	))
	return ok, err
}
