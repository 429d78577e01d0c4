package cli

import (
	"errors"
	"fmt"

	"github.com/platinummonkey/envurl/pkg/compat"
	"github.com/platinummonkey/envurl/pkg/env"
	"github.com/platinummonkey/envurl/pkg/urlconf"
)

var checkedKeys = []struct {
	key      string
	category string
}{
	{key: compat.DatabaseURLKey, category: urlconf.CategoryDatabase},
	{key: compat.CacheURLKey, category: urlconf.CategoryCache},
	{key: compat.EmailURLKey, category: urlconf.CategoryEmail},
	{key: compat.StorageURLKey, category: urlconf.CategoryStorage},
}

func newCheckCommand(app *App) *Command {
	cmd := &Command{
		Name:        "check",
		Description: "Load the env file and decode every configuration URL it sets",
		Flags:       app.newFlagSet("check"),
	}

	envFile := cmd.Flags.String("env-file", "", "Env file to load (default from configuration)")
	output := cmd.Flags.String("output", app.Config.Output, "Output format (yaml, json)")

	cmd.Run = func(args []string) error {
		if err := cmd.Flags.Parse(args); err != nil {
			return err
		}

		result, err := app.loadEnvFile(*envFile)
		if err != nil {
			return err
		}
		app.Log.Debugf("Loaded %d keys from %s", len(result.Applied), result.Path)

		var opts []urlconf.StorageOption
		if app.Config.BaseDir != "" {
			opts = append(opts, urlconf.WithBaseDir(app.Config.BaseDir))
		}

		decoded := make(map[string]any)
		var errs []error
		for _, c := range checkedKeys {
			value, err := env.Get(c.key, env.WithMapping(app.Mapping), env.WithLogger(app.Log))
			if err != nil {
				errs = append(errs, err)
				continue
			}
			if value == nil {
				continue
			}
			s, ok := value.(string)
			if !ok {
				errs = append(errs, fmt.Errorf("%s: %w (got %T)", c.key, compat.ErrNotAString, value))
				continue
			}

			record, err := urlconf.Parse(c.category, s, opts...)
			if err != nil {
				app.Log.Errorf("%s: %v", c.key, err)
				errs = append(errs, fmt.Errorf("%s: %w", c.key, err))
				continue
			}
			decoded[c.key] = record.Fields()
		}

		if err := writeValue(app.Out, *output, decoded); err != nil {
			return err
		}
		return errors.Join(errs...)
	}

	return cmd
}
