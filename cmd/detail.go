package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/sourcegraph/conc"
	"github.com/spf13/cobra"

	"github.com/danielolaszy/trello-cli/internal/logging"
	"github.com/danielolaszy/trello-cli/internal/output"
	"github.com/danielolaszy/trello-cli/internal/trello"
)

// fetchCardDetail loads a card, then its list and board concurrently.
// The card fetch must succeed. The list and board lookups may fail
// independently; a failed lookup leaves its field nil.
func fetchCardDetail(ctx context.Context, client *trello.Client, cardID string) (output.CardDetail, error) {
	card, err := client.GetCardDetails(ctx, cardID)
	if err != nil {
		return output.CardDetail{}, err
	}

	detail := output.CardDetail{Card: card}

	var wg conc.WaitGroup
	wg.Go(func() {
		list, err := client.GetList(ctx, card.IDList)
		if err != nil {
			logging.Warn("failed to fetch list for card", "card", card.ID, "list", card.IDList, "error", err)
			return
		}
		detail.List = list
	})
	wg.Go(func() {
		board, err := client.GetBoard(ctx, card.IDBoard)
		if err != nil {
			logging.Warn("failed to fetch board for card", "card", card.ID, "board", card.IDBoard, "error", err)
			return
		}
		detail.Board = board
	})
	wg.Wait()

	return detail, nil
}

func newTaskDetailCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "task-detail <cardId>",
		Aliases: []string{"detail"},
		Short:   "Show detailed information about a task (card)",
		Args:    requireArgs("card ID"),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			out := a.output(cmd)

			detail, err := fetchCardDetail(cmd.Context(), client, args[0])
			if err != nil {
				return fmt.Errorf("failed to get task details: %w", err)
			}

			if out.JSONMode() {
				return out.JSON(detail)
			}
			output.WriteCardDetail(cmd.OutOrStdout(), detail, time.Now())
			return nil
		},
	}
}
