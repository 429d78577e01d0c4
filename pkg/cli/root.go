package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/platinummonkey/envurl/pkg/config"
	"github.com/platinummonkey/envurl/pkg/dotenv"
	"github.com/platinummonkey/envurl/pkg/env"
	"github.com/sirupsen/logrus"
)

// Command represents a CLI command
type Command struct {
	Name        string
	Description string
	Run         func(args []string) error
	Subcommands map[string]*Command
	Flags       *flag.FlagSet

	out io.Writer
}

// App carries what every command needs
type App struct {
	Config  *config.Config
	Mapping env.Mapping
	Log     *logrus.Logger
	Out     io.Writer
	Context context.Context
}

// NewApp fills in defaults for nil fields
func NewApp(cfg *config.Config, m env.Mapping, log *logrus.Logger, out io.Writer) *App {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if m == nil {
		m = env.OS()
	}
	if log == nil {
		log = cfg.NewLogger(os.Stderr)
	}
	if out == nil {
		out = os.Stdout
	}
	return &App{
		Config:  cfg,
		Mapping: m,
		Log:     log,
		Out:     out,
		Context: context.Background(),
	}
}

// NewRootCommand creates the root command
func NewRootCommand(app *App) *Command {
	root := &Command{
		Name:        "envurl",
		Description: "envurl - decode .env files and configuration URLs",
		Subcommands: make(map[string]*Command),
		Flags:       flag.NewFlagSet("envurl", flag.ContinueOnError),
		out:         app.Out,
	}

	root.Subcommands["decode"] = newDecodeCommand(app)
	root.Subcommands["get"] = newGetCommand(app)
	root.Subcommands["check"] = newCheckCommand(app)
	root.Subcommands["watch"] = newWatchCommand(app)

	root.Flags.SetOutput(app.Out)
	return root
}

// Execute runs the subcommand named by args[0]
func (c *Command) Execute(args []string) error {
	if len(args) == 0 {
		return c.usage()
	}

	if args[0] == "-h" || args[0] == "--help" || args[0] == "help" {
		return c.usage()
	}

	if subcmd, ok := c.Subcommands[args[0]]; ok {
		return subcmd.Run(args[1:])
	}

	return fmt.Errorf("unknown command: %s", args[0])
}

// usage prints the command usage
func (c *Command) usage() error {
	out := c.out
	if out == nil {
		out = os.Stdout
	}
	fmt.Fprintf(out, "Usage: %s <command> [args]\n\n", c.Name)
	fmt.Fprintf(out, "Commands:\n")

	names := make([]string, 0, len(c.Subcommands))
	for name := range c.Subcommands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(out, "  %-15s %s\n", name, c.Subcommands[name].Description)
	}
	return nil
}

// loadEnvFile applies the configured .env file, or file when given, to the
// app's mapping
func (a *App) loadEnvFile(file string) (dotenv.LoadResult, error) {
	if file == "" {
		file = a.Config.EnvFile
	}
	loader := dotenv.NewLoader(a.Mapping, a.Log)
	loader.StripQuotes = a.Config.StripQuotes
	return loader.Load(file)
}

func (a *App) newFlagSet(name string) *flag.FlagSet {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(a.Out)
	return flags
}
