package cli

import (
	"flag"
	"fmt"

	"github.com/platinummonkey/envurl/pkg/env"
	"github.com/platinummonkey/envurl/pkg/literal"
)

func newGetCommand(app *App) *Command {
	cmd := &Command{
		Name:        "get",
		Description: "Print the decoded value of a key after loading the env file",
		Flags:       app.newFlagSet("get"),
	}

	envFile := cmd.Flags.String("env-file", "", "Env file to load (default from configuration)")
	required := cmd.Flags.Bool("required", false, "Fail when the key is missing")
	defaultValue := cmd.Flags.String("default", "", "Literal used when the key is missing")
	warn := cmd.Flags.Bool("warn", false, "Log a warning when the key is missing")
	output := cmd.Flags.String("output", app.Config.Output, "Output format (yaml, json)")

	cmd.Run = func(args []string) error {
		if err := cmd.Flags.Parse(args); err != nil {
			return err
		}
		if cmd.Flags.NArg() != 1 {
			return fmt.Errorf("usage: get [flags] <KEY>")
		}

		if _, err := app.loadEnvFile(*envFile); err != nil {
			return err
		}

		opts := []env.Option{env.WithMapping(app.Mapping), env.WithLogger(app.Log)}
		if *required {
			opts = append(opts, env.Required())
		}
		if *warn {
			opts = append(opts, env.Warn())
		}
		if isFlagSet(cmd, "default") {
			opts = append(opts, env.WithDefault(literal.DecodeOrRaw(*defaultValue)))
		}

		value, err := env.Get(cmd.Flags.Arg(0), opts...)
		if err != nil {
			return err
		}
		return writeValue(app.Out, *output, value)
	}

	return cmd
}

func isFlagSet(cmd *Command, name string) bool {
	set := false
	cmd.Flags.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
