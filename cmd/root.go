// Package cmd provides the command-line interface for the trello CLI tool.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/danielolaszy/trello-cli/internal/config"
	"github.com/danielolaszy/trello-cli/internal/logging"
	"github.com/danielolaszy/trello-cli/internal/output"
	"github.com/danielolaszy/trello-cli/internal/trello"
)

// Version is reported by --version.
const Version = "1.0.0"

// app carries the persistent flags shared by every subcommand.
type app struct {
	envFile    string
	jsonOutput bool
}

// client builds a Trello client from the dotfile and the environment.
// It fails before any request when a credential is missing.
func (a *app) client() (*trello.Client, error) {
	cfg, err := config.LoadConfig(a.envFile)
	if err != nil {
		return nil, err
	}

	// LOG_LEVEL may come from the dotfile, which is only read now
	if cfg.LogLevel != "" {
		logging.SetupLogger(os.Stderr, logging.LogLevel(cfg.LogLevel))
	}

	return trello.NewClient(
		trello.Credentials{APIKey: cfg.Trello.APIKey, Token: cfg.Trello.Token},
		trello.WithBaseURL(cfg.Trello.BaseURL),
	)
}

func (a *app) output(cmd *cobra.Command) *output.Output {
	return output.New(cmd.OutOrStdout(), a.jsonOutput)
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "trello",
		Short: "CLI tool for interacting with the Trello API",
		Long: `trello is a CLI tool for working with Trello boards, lists, cards and members.

Credentials are read from the TRELLO_API_KEY and TRELLO_TOKEN environment
variables, optionally loaded from a .env file in the working directory.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&a.envFile, "env-file", config.DefaultEnvFile, "dotfile to load environment variables from")
	rootCmd.PersistentFlags().BoolVar(&a.jsonOutput, "json", false, "output in JSON format")

	rootCmd.AddCommand(
		newListBoardsCmd(a),
		newListUsersCmd(a),
		newAddUserCmd(a),
		newListTasksCmd(a),
		newListListsCmd(a),
		newCreateTaskCmd(a),
		newUpdateTaskCmd(a),
		newTaskDetailCmd(a),
	)

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
