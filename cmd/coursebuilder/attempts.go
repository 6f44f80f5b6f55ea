package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAttemptsCommand() *cobra.Command {
	var userID int64

	command := &cobra.Command{
		Use:   "attempts",
		Short: "List quiz attempts for a user",
		RunE: func(cmd *cobra.Command, args []string) error {
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

			attempts, err := repo.ListAttempts(cmd.Context(), userID)
			if err != nil {
				return fmt.Errorf("repo.ListAttempts() > %w", err)
			}
			if len(attempts) == 0 {
				cmd.Println("No attempts yet. Take a quiz with: coursebuilder quiz take <quizID>")
				return nil
			}
			for _, attempt := range attempts {
				cmd.Printf("%s\t%s\t%d%%\t%s\n",
					attempt.QuizTitle,
					attempt.CourseTitle,
					attempt.Score,
					attempt.AttemptedAt.Format("2006-01-02 15:04"),
				)
			}
			return nil
		},
	}
	command.Flags().Int64Var(&userID, "user", 1, "user id to list attempts for")

	return command
}
