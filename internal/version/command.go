package version

import (
	"fmt"

	"github.com/spf13/cobra"
)

// AttachCobraVersionCommand adds `version [--short]` to root.
func AttachCobraVersionCommand(root *cobra.Command) {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print build information.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			text := Full()
			if short {
				text = Short()
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), text)

			return err
		},
	}
	cmd.Flags().BoolVarP(&short, "short", "s", false, "print the version number only")

	root.AddCommand(cmd)
}
