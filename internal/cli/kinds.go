package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/viant/fluxblock/model/types"
)

func (a *app) kindsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List parameter kinds with their Go type and default value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv, err := a.service(cmd)
			if err != nil {
				return err
			}
			catalog := srv.Catalog()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "KIND\tGO TYPE\tDEFAULT")
			for _, kind := range catalog.Kinds() {
				entry := catalog.Lookup(kind)
				fmt.Fprintf(w, "%s\t%s\t%v\n", kind, entry.Type.Type.String(), catalog.Default(types.New(kind)))
			}
			return w.Flush()
		},
	}
}
