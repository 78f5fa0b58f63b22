package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <pack URL>...",
		Short: "Validate pack documents against the pack schema",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			srv, err := a.service(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			invalid := 0
			for _, URL := range args {
				validation, err := srv.Packs().Check(cmd.Context(), URL)
				if err != nil {
					return err
				}
				if validation.Valid {
					fmt.Fprintf(out, "%s: ok\n", URL)
					continue
				}
				invalid++
				printer.Fprintf(out, "%s: %d issues\n", URL, len(validation.Issues))
				for _, issue := range validation.Issues {
					fmt.Fprintf(out, "  %s\n", issue.String())
				}
			}
			if invalid > 0 {
				return fmt.Errorf("%d of %d pack documents are invalid", invalid, len(args))
			}
			return nil
		},
	}
}
