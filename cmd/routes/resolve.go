package main

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"
)

func newResolveCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <path>",
		Short: "Resolve a path to its route",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := opts.nav.Resolve(args[0])
			if err != nil {
				return err
			}
			if opts.json {
				return printJSON(cmd.OutOrStdout(), res)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s  %s\n", res.Route.Name, res.Route.Path)
			for _, k := range slices.Sorted(maps.Keys(res.Params)) {
				marker := ""
				if _, ok := res.Props[k]; ok {
					marker = " (prop)"
				}
				fmt.Fprintf(out, "  %s = %s%s\n", k, res.Params[k], marker)
			}
			return nil
		},
	}
}
