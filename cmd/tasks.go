package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/danielolaszy/trello-cli/internal/logging"
	"github.com/danielolaszy/trello-cli/internal/output"
	"github.com/danielolaszy/trello-cli/internal/trello"
	"github.com/danielolaszy/trello-cli/pkg/models"
)

// UnknownList is shown for a card whose list is not among the board's lists.
const UnknownList = "Unknown"

// listNames maps list IDs to list names.
func listNames(lists []models.List) map[string]string {
	names := make(map[string]string, len(lists))
	for _, l := range lists {
		names[l.ID] = l.Name
	}
	return names
}

// taskRow is one row of the list-tasks table.
type taskRow struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	List        string `json:"list"`
	Due         string `json:"due"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// taskRows joins open cards with their list names. Closed cards are dropped.
func taskRows(cards []models.Card, names map[string]string) []taskRow {
	rows := make([]taskRow, 0, len(cards))
	for _, c := range cards {
		if c.Closed {
			continue
		}

		list, ok := names[c.IDList]
		if !ok {
			list = UnknownList
		}
		desc := output.NotAvailable
		if c.Desc != "" {
			desc = output.Truncate(c.Desc, output.DescriptionWidth)
		}

		rows = append(rows, taskRow{
			ID:          c.ID,
			Name:        c.Name,
			List:        list,
			Due:         output.FormatDate(c.Due),
			Description: desc,
			URL:         c.URL,
		})
	}
	return rows
}

func newListTasksCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list-tasks <boardId>",
		Aliases: []string{"tasks"},
		Short:   "List all tasks (cards) in a specific board",
		Args:    requireArgs("board ID"),
		RunE: func(cmd *cobra.Command, args []string) error {
			boardID := args[0]

			client, err := a.client()
			if err != nil {
				return err
			}
			out := a.output(cmd)

			// Get cards and lists in parallel; either failure aborts the command
			var (
				cards []models.Card
				lists []models.List
			)
			g, ctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error {
				var err error
				cards, err = client.GetBoardCards(ctx, boardID)
				return err
			})
			g.Go(func() error {
				var err error
				lists, err = client.GetBoardLists(ctx, boardID)
				return err
			})
			if err := g.Wait(); err != nil {
				return fmt.Errorf("failed to list tasks: %w", err)
			}

			logging.Debug("fetched board tasks", "board", boardID, "cards", len(cards), "lists", len(lists))

			if len(cards) == 0 {
				out.Message("No tasks found on this board.")
				return nil
			}

			tasks := taskRows(cards, listNames(lists))
			if len(tasks) == 0 {
				out.Message("No open tasks found on this board.")
				return nil
			}

			rows := make([][]string, len(tasks))
			for i, t := range tasks {
				rows[i] = []string{t.ID, t.Name, t.List, t.Due, t.Description, t.URL}
			}
			return out.Print(fmt.Sprintf("Tasks on board %s:", boardID),
				[]string{"ID", "Name", "List", "Due Date", "Description", "URL"}, rows, tasks)
		},
	}
}

// printCard reports the result of a create or update.
func printCard(out *output.Output, verb string, card *models.Card, showStatus bool) error {
	if out.JSONMode() {
		return out.JSON(card)
	}

	out.Success("Successfully %s task: %q", verb, card.Name)
	out.Message("  ID: %s", card.ID)
	out.Message("  URL: %s", card.URL)
	if card.Desc != "" {
		out.Message("  Description: %s", card.Desc)
	}
	if card.Due != "" {
		out.Message("  Due Date: %s", output.FormatDate(card.Due))
	}
	if showStatus {
		status := "Open"
		if card.Closed {
			status = "Closed"
		}
		out.Message("  Status: %s", status)
	}
	return nil
}

func newCreateTaskCmd(a *app) *cobra.Command {
	var opts trello.CreateCardOptions

	cmd := &cobra.Command{
		Use:     "create-task <listId> <name>",
		Aliases: []string{"create"},
		Short:   "Create a new task (card) in a list",
		Args:    requireArgs("list ID", "task name"),
		RunE: func(cmd *cobra.Command, args []string) error {
			listID, name := args[0], args[1]

			if err := validateDue(opts.Due); err != nil {
				return err
			}
			if opts.Pos != "" {
				if err := validatePos(opts.Pos); err != nil {
					return err
				}
			}

			client, err := a.client()
			if err != nil {
				return err
			}

			card, err := client.CreateCard(cmd.Context(), listID, name, opts)
			if err != nil {
				return fmt.Errorf("failed to create task: %w", err)
			}

			logging.Info("created card", "card", card.ID, "list", listID)
			return printCard(a.output(cmd), "created", card, false)
		},
	}

	cmd.Flags().StringVarP(&opts.Desc, "desc", "d", "", "task description")
	cmd.Flags().StringVar(&opts.Due, "due", "", "due date (ISO format: YYYY-MM-DD or YYYY-MM-DDTHH:mm:ss)")
	cmd.Flags().StringVarP(&opts.Pos, "pos", "p", "bottom", "position in list (top, bottom, or number)")

	return cmd
}

// updateOptions turns the flags the user actually passed into a partial
// update. A flag that was not passed stays nil and is not sent.
func updateOptions(cmd *cobra.Command) (trello.UpdateCardOptions, error) {
	var opts trello.UpdateCardOptions
	flags := cmd.Flags()

	changed := func(name string) (*string, error) {
		if !flags.Changed(name) {
			return nil, nil
		}
		v, err := flags.GetString(name)
		if err != nil {
			return nil, err
		}
		return &v, nil
	}

	var err error
	if opts.Name, err = changed("name"); err != nil {
		return opts, err
	}
	if opts.Desc, err = changed("desc"); err != nil {
		return opts, err
	}
	if opts.Due, err = changed("due"); err != nil {
		return opts, err
	}
	if opts.IDList, err = changed("list-id"); err != nil {
		return opts, err
	}
	if opts.Pos, err = changed("pos"); err != nil {
		return opts, err
	}

	closed, err := changed("closed")
	if err != nil {
		return opts, err
	}
	if closed != nil {
		b, err := strconv.ParseBool(*closed)
		if err != nil {
			return opts, fmt.Errorf("invalid value %q for --closed: must be true or false", *closed)
		}
		opts.Closed = &b
	}

	// Only the description and due date can be cleared with an empty value
	if opts.Name != nil && *opts.Name == "" {
		return opts, fmt.Errorf("--name must not be empty")
	}
	if opts.IDList != nil && *opts.IDList == "" {
		return opts, fmt.Errorf("--list-id must not be empty")
	}
	if opts.Pos != nil {
		if err := validatePos(*opts.Pos); err != nil {
			return opts, err
		}
	}
	if opts.Due != nil {
		if err := validateDue(*opts.Due); err != nil {
			return opts, err
		}
	}

	if opts.IsEmpty() {
		return opts, fmt.Errorf("at least one update option is required\nOptions: --name, --desc, --due, --list-id, --pos, --closed")
	}
	return opts, nil
}

func newUpdateTaskCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "update-task <cardId>",
		Aliases: []string{"update"},
		Short:   "Update an existing task (card)",
		Args:    requireArgs("card ID"),
		RunE: func(cmd *cobra.Command, args []string) error {
			cardID := args[0]

			opts, err := updateOptions(cmd)
			if err != nil {
				return err
			}

			client, err := a.client()
			if err != nil {
				return err
			}

			card, err := client.UpdateCard(cmd.Context(), cardID, opts)
			if err != nil {
				return fmt.Errorf("failed to update task: %w", err)
			}

			logging.Info("updated card", "card", card.ID)
			return printCard(a.output(cmd), "updated", card, true)
		},
	}

	cmd.Flags().StringP("name", "n", "", "new task name")
	cmd.Flags().StringP("desc", "d", "", "task description (use empty string to clear)")
	cmd.Flags().String("due", "", "due date (ISO format: YYYY-MM-DD or YYYY-MM-DDTHH:mm:ss, use empty string to remove)")
	cmd.Flags().StringP("list-id", "l", "", "move task to a different list")
	cmd.Flags().StringP("pos", "p", "", "position in list (top, bottom, or number)")
	cmd.Flags().StringP("closed", "c", "", "close or open the task (true or false)")

	return cmd
}
