package main

import (
	"cdinv/cmd/cli/render"
	"cdinv/internal/config"
	"cdinv/internal/session"
	"cdinv/internal/ui"
	"io"
	"log/slog"
)

type Globals struct {
	Session    *session.Session
	Config     config.Config
	ConfigPath string
	Out        io.Writer
	Render     render.Renderer
	Prompt     ui.Prompter
	Logger     *slog.Logger
}
