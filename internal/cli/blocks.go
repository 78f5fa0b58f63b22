package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/viant/fluxblock/model/graph"
)

func (a *app) blocksCommand() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "blocks",
		Short: "List registered blocks for the current platform",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv, err := a.service(cmd)
			if err != nil {
				return err
			}
			registry := srv.Registry()
			defs := registry.BlocksForPlatform()
			if all {
				defs = registry.Blocks()
			}
			out := cmd.OutOrStdout()
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "GUID\tNAME\tCATEGORY\tPACK\tPLATFORMS")
			for _, def := range defs {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", def.GUID, def.Name, def.Category, packName(def.Pack), platforms(def.Platforms))
			}
			if err = w.Flush(); err != nil {
				return err
			}
			printer.Fprintf(out, "%d blocks for platform %s\n", len(defs), registry.CurrentPlatform())
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "list blocks of every platform")
	return cmd
}

func packName(pack *graph.Pack) string {
	if pack == nil {
		return "-"
	}
	if pack.Version == "" {
		return pack.Name
	}
	return pack.Name + "@" + pack.Version
}

func platforms(values []graph.Platform) string {
	if len(values) == 0 {
		return string(graph.PlatformAll)
	}
	names := make([]string, len(values))
	for i, value := range values {
		names[i] = string(value)
	}
	return strings.Join(names, ",")
}
