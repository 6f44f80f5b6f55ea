package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/siyamthandatsobo/ai-course-builder/internal/cli"
)

func newQuizCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "quiz",
		Short: "Quiz commands",
	}
	command.AddCommand(newQuizTakeCommand())
	return command
}

func newQuizTakeCommand() *cobra.Command {
	var userID int64

	command := &cobra.Command{
		Use:   "take <quizID>",
		Short: "Take a quiz in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			quizID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid quiz id %q: %w", args[0], err)
			}

			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			db, repo, err := openRepository(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			quizCLI := cli.NewQuizCLI(repo, userID, quizID)
			return quizCLI.Run(cmd.Context())
		},
	}
	command.Flags().Int64Var(&userID, "user", 1, "user id the attempt belongs to")

	return command
}
