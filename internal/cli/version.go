package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/contacts/pkg/contacts"
)

const modulePath = "github.com/mesh-intelligence/contacts"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the contacts version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "contacts v%s\nmodule: %s\n", contacts.Version, modulePath)
			return nil
		},
	}
}
