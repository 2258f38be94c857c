package main

import (
	"cdinv/internal/config"
	"errors"
	"fmt"
	"io/fs"
)

type ConfigCmd struct {
	Show ConfigShowCmd `cmd:"" default:"1" help:"Print the effective configuration"`
	Init ConfigInitCmd `cmd:"" help:"Write a sample config file"`
	Path ConfigPathCmd `cmd:"" help:"Print the config file location"`
}

type ConfigShowCmd struct{}

func (cmd *ConfigShowCmd) Run(g *Globals) error {
	out, err := g.Config.Encode()
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	fmt.Fprint(g.Out, out)
	return nil
}

type ConfigInitCmd struct{}

func (cmd *ConfigInitCmd) Run(g *Globals) error {
	err := config.WriteSample(g.ConfigPath)
	if errors.Is(err, fs.ErrExist) {
		fmt.Fprintf(g.Out, "Config already exists: %s\n", g.ConfigPath)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	fmt.Fprintf(g.Out, "Wrote: %s\n", g.ConfigPath)
	return nil
}

type ConfigPathCmd struct{}

func (cmd *ConfigPathCmd) Run(g *Globals) error {
	fmt.Fprintln(g.Out, g.ConfigPath)
	return nil
}
