package cmd

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danielolaszy/trello-cli/internal/output"
	"github.com/danielolaszy/trello-cli/internal/trello"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// requireArgs checks that exactly one non-blank argument is given per name.
func requireArgs(names ...string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		for i, name := range names {
			if i >= len(args) || strings.TrimSpace(args[i]) == "" {
				return fmt.Errorf("%s is required\nUsage: %s", name, cmd.UseLine())
			}
		}
		if len(args) > len(names) {
			return fmt.Errorf("too many arguments\nUsage: %s", cmd.UseLine())
		}
		return nil
	}
}

func validateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("invalid email format: %q", email)
	}
	return nil
}

func validateMemberType(memberType string) error {
	switch memberType {
	case trello.MemberTypeNormal, trello.MemberTypeAdmin:
		return nil
	default:
		return fmt.Errorf("invalid member type %q: must be %s or %s", memberType, trello.MemberTypeNormal, trello.MemberTypeAdmin)
	}
}

// validatePos accepts "top", "bottom" or a positive number.
func validatePos(pos string) error {
	if pos == "top" || pos == "bottom" {
		return nil
	}
	if n, err := strconv.ParseFloat(pos, 64); err == nil && n > 0 {
		return nil
	}
	return fmt.Errorf("invalid position %q: must be top, bottom, or a positive number", pos)
}

// validateDue accepts an empty value (no due date) or an ISO date.
func validateDue(due string) error {
	if due == "" {
		return nil
	}
	if _, ok := output.ParseTime(due); !ok {
		return fmt.Errorf("invalid due date %q: use YYYY-MM-DD or YYYY-MM-DDTHH:mm:ss", due)
	}
	return nil
}
