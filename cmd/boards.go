package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danielolaszy/trello-cli/pkg/models"
)

// openBoards drops closed boards. The API is asked for every board and the
// filtering happens here.
func openBoards(boards []models.Board) []models.Board {
	open := make([]models.Board, 0, len(boards))
	for _, b := range boards {
		if !b.Closed {
			open = append(open, b)
		}
	}
	return open
}

func newListBoardsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list-boards",
		Aliases: []string{"boards"},
		Short:   "List all boards accessible to the authenticated user",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			out := a.output(cmd)

			boards, err := client.GetBoards(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list boards: %w", err)
			}

			if len(boards) == 0 {
				out.Message("No boards found.")
				return nil
			}

			open := openBoards(boards)
			if len(open) == 0 {
				out.Message("No open boards found.")
				return nil
			}

			rows := make([][]string, len(open))
			for i, b := range open {
				rows[i] = []string{b.ID, b.Name, b.URL}
			}
			return out.Print("Your Trello Boards:", []string{"ID", "Name", "URL"}, rows, open)
		},
	}
}
