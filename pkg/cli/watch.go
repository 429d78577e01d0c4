package cli

import (
	"fmt"

	"github.com/platinummonkey/envurl/pkg/dotenv"
)

func newWatchCommand(app *App) *Command {
	cmd := &Command{
		Name:        "watch",
		Description: "Watch the env file and report keys as they are added",
		Flags:       app.newFlagSet("watch"),
	}

	envFile := cmd.Flags.String("env-file", "", "Env file to watch (default from configuration)")

	cmd.Run = func(args []string) error {
		if err := cmd.Flags.Parse(args); err != nil {
			return err
		}

		file := *envFile
		if file == "" {
			file = app.Config.EnvFile
		}

		loader := dotenv.NewLoader(app.Mapping, app.Log)
		loader.StripQuotes = app.Config.StripQuotes

		w := dotenv.NewWatcher(loader, file)
		w.OnLoad = func(result dotenv.LoadResult, err error) {
			if err != nil {
				return
			}
			for _, key := range result.Applied {
				fmt.Fprintf(app.Out, "+ %s\n", key)
			}
		}

		app.Log.Infof("Watching %s", file)
		return w.Run(app.Context)
	}

	return cmd
}
