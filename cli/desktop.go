package cli

import (
	"student-manager/desktop"

	"github.com/spf13/cobra"
)

func NewDesktopCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "desktop",
		Short: "Open the student management window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(opts)
			if err != nil {
				return err
			}
			return desktop.Run(cmd.Context(), e.svc, e.log)
		},
	}
}
