package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danielolaszy/trello-cli/internal/logging"
	"github.com/danielolaszy/trello-cli/internal/output"
	"github.com/danielolaszy/trello-cli/internal/trello"
)

func newListUsersCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list-users <boardId>",
		Aliases: []string{"users"},
		Short:   "List all members/users of a specific board",
		Args:    requireArgs("board ID"),
		RunE: func(cmd *cobra.Command, args []string) error {
			boardID := args[0]

			client, err := a.client()
			if err != nil {
				return err
			}
			out := a.output(cmd)

			members, err := client.GetBoardMembers(cmd.Context(), boardID)
			if err != nil {
				return fmt.Errorf("failed to list users: %w", err)
			}

			if len(members) == 0 {
				out.Message("No members found on this board.")
				return nil
			}

			rows := make([][]string, len(members))
			for i, m := range members {
				rows[i] = []string{m.ID, output.OrNA(m.Username), output.OrNA(m.FullName), output.OrNA(m.Email)}
			}
			return out.Print(fmt.Sprintf("Members of board %s:", boardID),
				[]string{"ID", "Username", "Full Name", "Email"}, rows, members)
		},
	}
}

// addedMember is the --json result of add-user.
type addedMember struct {
	Board string `json:"board"`
	Email string `json:"email"`
	Type  string `json:"type"`
}

func newAddUserCmd(a *app) *cobra.Command {
	var memberType string

	cmd := &cobra.Command{
		Use:     "add-user <boardId> <email>",
		Aliases: []string{"add"},
		Short:   "Add a user to a board by email",
		Args:    requireArgs("board ID", "email"),
		RunE: func(cmd *cobra.Command, args []string) error {
			boardID, email := args[0], args[1]

			// Validate locally so that a bad invocation never reaches the API
			if err := validateEmail(email); err != nil {
				return err
			}
			if err := validateMemberType(memberType); err != nil {
				return err
			}

			client, err := a.client()
			if err != nil {
				return err
			}

			if err := client.AddMemberToBoard(cmd.Context(), boardID, email, memberType); err != nil {
				return fmt.Errorf("failed to add user: %w", err)
			}

			logging.Info("added board member", "board", boardID, "type", memberType)
			out := a.output(cmd)
			if out.JSONMode() {
				return out.JSON(addedMember{Board: boardID, Email: email, Type: memberType})
			}
			out.Success("Successfully added %s to board %s", email, boardID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&memberType, "type", "t", trello.MemberTypeNormal, "member type: normal or admin")

	return cmd
}
