package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/siyamthandatsobo/ai-course-builder/internal/builder"
	"github.com/siyamthandatsobo/ai-course-builder/internal/cli"
	"github.com/siyamthandatsobo/ai-course-builder/internal/course"
)

type DifficultyFlag string

// Set implements pflag.Value.
func (d *DifficultyFlag) Set(v string) error {
	parsed, err := course.ParseDifficulty(v)
	if err != nil {
		return err
	}
	*d = DifficultyFlag(parsed)
	return nil
}

// String implements pflag.Value.
func (d *DifficultyFlag) String() string {
	if d == nil {
		return ""
	}
	return string(*d)
}

// Type implements pflag.Value.
func (d *DifficultyFlag) Type() string {
	return "DifficultyFlag"
}

var (
	_ pflag.Value = (*DifficultyFlag)(nil)
)

func newGenerateCommand() *cobra.Command {
	var (
		topic       string
		description string
		lessonCount int
		userID      int64
		difficulty  = DifficultyFlag(course.DifficultyBeginner)
	)

	command := &cobra.Command{
		Use:   "generate <title>",
		Short: "Generate a course with AI, revealing lessons one at a time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			openaiClient, err := newOpenAIClient(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = openaiClient.Close()
			}()

			db, repo, err := openRepository(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			fmt.Printf("Using OpenAI provider (model: %s)\n", cfg.OpenAI.Model)
			generateCLI := cli.NewGenerateCLI(repo, openaiClient, cfg.Generation)
			return generateCLI.Run(cmd.Context(), builder.GenerateRequest{
				Title:       args[0],
				Topic:       topic,
				Description: description,
				Difficulty:  course.Difficulty(difficulty),
				LessonCount: lessonCount,
				CreatedBy:   userID,
			})
		},
	}

	flags := command.Flags()
	flags.StringVar(&topic, "topic", "", "course topic (required)")
	flags.StringVar(&description, "description", "", "course description")
	flags.IntVar(&lessonCount, "lessons", 10, "number of lessons (4, 6, 8 or 10)")
	flags.Int64Var(&userID, "user", 1, "user id the course belongs to")
	flags.Var(&difficulty, "difficulty", "course difficulty (beginner, intermediate or advanced)")
	_ = command.MarkFlagRequired("topic")

	return command
}
