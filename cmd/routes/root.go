package main

import (
	"encoding/json"
	"io"

	"github.com/JaimeStill/mirofish/internal/navigation"
	"github.com/JaimeStill/mirofish/web/app"
	"github.com/spf13/cobra"
)

type options struct {
	json bool
	nav  navigation.System
}

func newRootCmd() *cobra.Command {
	opts := &options{nav: navigation.New(app.Table())}

	cmd := &cobra.Command{
		Use:           "routes <command>",
		Short:         "Inspect the application route table",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVar(&opts.json, "json", false, "output as JSON")

	cmd.AddCommand(
		newListCmd(opts),
		newResolveCmd(opts),
		newURLCmd(opts),
	)
	return cmd
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
