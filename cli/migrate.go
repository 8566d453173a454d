package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewMigrateCommand(opts *RootOptions) *cobra.Command {
	var seed bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create the students table if it is missing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(opts)
			if err != nil {
				return err
			}
			if err := e.provider.Migrate(cmd.Context(), seed); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Students table is ready")
			return nil
		},
	}

	cmd.Flags().BoolVar(&seed, "seed", false, "insert sample students when the table is empty")
	return cmd
}
