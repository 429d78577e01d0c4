package cli

import (
	"fmt"
	"strings"

	"github.com/platinummonkey/envurl/pkg/urlconf"
)

func newDecodeCommand(app *App) *Command {
	cmd := &Command{
		Name:        "decode",
		Description: "Decode a database, cache, email or storage URL",
		Flags:       app.newFlagSet("decode"),
	}

	baseDir := cmd.Flags.String("base-dir", app.Config.BaseDir, "Directory relative file: storage URLs resolve against")
	output := cmd.Flags.String("output", app.Config.Output, "Output format (yaml, json)")

	cmd.Run = func(args []string) error {
		if err := cmd.Flags.Parse(args); err != nil {
			return err
		}
		if cmd.Flags.NArg() != 2 {
			return fmt.Errorf("usage: decode <%s> <url>", strings.Join(urlconf.Categories(), "|"))
		}

		var opts []urlconf.StorageOption
		if *baseDir != "" {
			opts = append(opts, urlconf.WithBaseDir(*baseDir))
		}

		record, err := urlconf.Parse(cmd.Flags.Arg(0), cmd.Flags.Arg(1), opts...)
		if err != nil {
			return err
		}
		return writeValue(app.Out, *output, record.Fields())
	}

	return cmd
}
