package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newURLCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "url <name> [key=value...]",
		Short: "Build the path for a named route",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseParams(args[1:])
			if err != nil {
				return err
			}

			loc, err := opts.nav.URL(args[0], params)
			if err != nil {
				return err
			}
			if opts.json {
				return printJSON(cmd.OutOrStdout(), loc)
			}

			fmt.Fprintln(cmd.OutOrStdout(), loc.Path)
			return nil
		},
	}
}

// parseParams splits key=value arguments.
func parseParams(args []string) (map[string]string, error) {
	params := make(map[string]string, len(args))
	for _, a := range args {
		k, v, ok := strings.Cut(a, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid parameter %q (expected key=value)", a)
		}
		params[k] = v
	}
	return params, nil
}
