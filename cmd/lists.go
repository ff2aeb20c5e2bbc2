package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListListsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list-lists <boardId>",
		Aliases: []string{"lists"},
		Short:   "List all lists (columns) in a specific board",
		Args:    requireArgs("board ID"),
		RunE: func(cmd *cobra.Command, args []string) error {
			boardID := args[0]

			client, err := a.client()
			if err != nil {
				return err
			}
			out := a.output(cmd)

			lists, err := client.GetBoardLists(cmd.Context(), boardID)
			if err != nil {
				return fmt.Errorf("failed to list lists: %w", err)
			}

			if len(lists) == 0 {
				out.Message("No lists found on this board.")
				return nil
			}

			rows := make([][]string, len(lists))
			for i, l := range lists {
				rows[i] = []string{l.ID, l.Name}
			}
			return out.Print(fmt.Sprintf("Lists on board %s:", boardID), []string{"ID", "Name"}, rows, lists)
		},
	}
}
