package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/contacts/internal/book"
	"github.com/mesh-intelligence/contacts/internal/storage"
	"github.com/mesh-intelligence/contacts/pkg/types"
)

func newCountCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Print the number of records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.openBook(cmd, true)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), b.CountMessage())
			return nil
		},
	}
}

func newListCmd(a *app) *cobra.Command {
	var jsonOut bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print every record with its position",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.openBook(cmd, true)
			if err != nil {
				return err
			}
			if jsonOut {
				return writeJSON(cmd.OutOrStdout(), b.List())
			}
			for _, line := range b.Listing() {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print records in the data file format")
	return cmd
}

func newSearchCmd(a *app) *cobra.Command {
	var jsonOut bool
	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Print records matching a case-insensitive pattern",
		Long: "Print records whose name, surname or number matches QUERY, ignoring\n" +
			"case. Each line starts with the record's position in the full list.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.openBook(cmd, true)
			if err != nil {
				return err
			}
			matches := b.Search(args[0])
			if jsonOut {
				return writeJSON(cmd.OutOrStdout(), matches)
			}
			if len(matches) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No matching records.")
				return nil
			}
			for _, e := range matches {
				fmt.Fprintf(cmd.OutOrStdout(), "%d. %s\n", e.Position, e.Contact.DisplayName())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print matches in the data file format")
	return cmd
}

// writeJSON prints entries using the data file encoding.
func writeJSON(w io.Writer, entries []book.Entry) error {
	records := make([]types.Contact, len(entries))
	for i, e := range entries {
		records[i] = e.Contact
	}
	data, err := storage.Encode(records)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
