package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/viant/fluxblock"
	"github.com/viant/fluxblock/service/registry"
)

func (a *app) categoriesCommand() *cobra.Command {
	var filter string
	var withBlocks bool
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Print the category tree of the loaded packs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv, err := a.service(cmd, fluxblock.WithEditorMode(true))
			if err != nil {
				return err
			}
			blocks := srv.Registry()
			blocks.FilterCategories(filter)
			out := cmd.OutOrStdout()
			for _, top := range blocks.Categories() {
				if top.Name == "" && len(top.Blocks) == 0 {
					continue
				}
				top.Walk(func(node *registry.Category, depth int) {
					if !node.FilterShow {
						return
					}
					indent := strings.Repeat("  ", depth)
					name := node.Name
					if name == "" {
						name = "(uncategorized)"
					}
					printer.Fprintf(out, "%s%s (%d)\n", indent, name, len(node.Blocks))
					if !withBlocks {
						return
					}
					for _, def := range node.Blocks {
						fmt.Fprintf(out, "%s  - %s [%s]\n", indent, def.Name, def.GUID)
					}
				})
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&filter, "filter", "", "show only categories holding blocks whose name contains the keyword")
	cmd.Flags().BoolVar(&withBlocks, "blocks", false, "list blocks under each category")
	return cmd
}
