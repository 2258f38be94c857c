package main

import (
	"cdinv/cmd/cli/render"
	"cdinv/internal/config"
	"cdinv/internal/logging"
	"cdinv/internal/session"
	"cdinv/internal/storage"
	"cdinv/internal/ui"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/willabides/kongplete"
)

type CLI struct {
	Shell  ShellCmd  `cmd:"" default:"1" help:"Interactive inventory menu (default)"`
	Add    AddCmd    `cmd:"" aliases:"a" help:"Add a CD to the inventory and save"`
	List   ListCmd   `cmd:"" aliases:"ls,i" help:"Display the current inventory"`
	Rm     RmCmd     `cmd:"" aliases:"d" help:"Delete a CD by ID and save"`
	Show   ShowCmd   `cmd:"" help:"Show one CD"`
	Load   LoadCmd   `cmd:"" aliases:"l" help:"Reload the inventory from storage and display it"`
	Save   SaveCmd   `cmd:"" aliases:"s" help:"Write the inventory to storage"`
	Config ConfigCmd `cmd:"" help:"Inspect or create the config file"`

	Completion CompletionCmd `cmd:"" help:"Output shell completion script"`

	Inventory  string `name:"inventory" short:"f" env:"CDINV_INVENTORY" predictor:"inventory" help:"Inventory file (.dat, .yaml or .db)"`
	ConfigPath string `name:"config" env:"CDINV_CONFIG" predictor:"config" help:"Path to config file"`
	LogLevel   string `name:"log-level" env:"CDINV_LOG_LEVEL" help:"Log level (debug, info, warn, error)"`

	closeLog func() error `kong:"-"`
}

func (c *CLI) AfterApply(ctx *kong.Context) error {
	configPath := c.ConfigPath
	if configPath == "" {
		configPath = config.DefaultConfigPath()
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := c.applyOverrides(&cfg); err != nil {
		return err
	}

	logOutput := cfg.Log.File
	if logOutput == "" {
		logOutput = "stderr"
	}
	logger, closeLog, err := logging.New(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: logOutput,
	})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	c.closeLog = closeLog

	globals := &Globals{
		Config:     cfg,
		ConfigPath: configPath,
		Out:        os.Stdout,
		Render:     rendererFor(cfg.Display.Style),
		Logger:     logger,
		Prompt:     ui.NewHuhPrompter(os.Stdin, os.Stdout, !isatty.IsTerminal(os.Stdin.Fd())),
	}

	if needsSession(ctx.Command()) {
		sess, err := session.Open(cfg.InventoryPath, storage.ForLocation(cfg.InventoryPath, logger), logger)
		if err != nil {
			return fmt.Errorf("failed to load inventory: %w", err)
		}
		globals.Session = sess
	}

	ctx.Bind(globals)
	return nil
}

// needsSession reports whether command works on the inventory. Config and
// completion commands run without opening it.
func needsSession(command string) bool {
	return !strings.HasPrefix(command, "config") && !strings.HasPrefix(command, "completion")
}

func (c *CLI) applyOverrides(cfg *config.Config) error {
	if c.Inventory != "" {
		path, err := config.ExpandPath(c.Inventory)
		if err != nil {
			return fmt.Errorf("invalid inventory path: %w", err)
		}
		cfg.InventoryPath = path
	}
	if c.LogLevel != "" {
		cfg.Log.Level = strings.ToLower(strings.TrimSpace(c.LogLevel))
	}
	return cfg.Validate()
}

func rendererFor(style string) render.Renderer {
	if style == config.StylePlain {
		return render.PlainRenderer{}
	}
	return render.NewTableRendererAuto(os.Stdout)
}

// loadEnvFiles reads .env then .env.local from the working directory.
// Variables already set in the environment win.
func loadEnvFiles() {
	for _, name := range []string{".env", ".env.local"} {
		_ = godotenv.Load(name)
	}
}

func newParser(cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	return kong.New(cli, append([]kong.Option{
		kong.Name(appName),
		kong.Description("CD inventory manager"),
		kong.UsageOnError(),
	}, options...)...)
}

func main() {
	loadEnvFiles()

	cli := CLI{}
	parser, err := newParser(&cli)
	if err != nil {
		panic(err)
	}
	// Answers shell completion requests and exits; a no-op otherwise.
	kongplete.Complete(parser, completionOptions()...)

	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	err = ctx.Run()
	if cli.closeLog != nil {
		_ = cli.closeLog()
	}
	ctx.FatalIfErrorf(err)
}
