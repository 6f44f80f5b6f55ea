// Package cli implements the interactive terminal flows: generating a
// course with paced lesson reveals and taking a quiz.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/siyamthandatsobo/ai-course-builder/internal/builder"
	"github.com/siyamthandatsobo/ai-course-builder/internal/config"
	"github.com/siyamthandatsobo/ai-course-builder/internal/course"
	"github.com/siyamthandatsobo/ai-course-builder/internal/inference"
)

// GenerateCLI drives a course generation in the terminal, printing each
// lesson as the orchestrator reveals it.
type GenerateCLI struct {
	orchestrator         *builder.Orchestrator
	defaultQuestionCount int
	stdinReader          *bufio.Reader
	stdoutWriter         io.Writer
	bold                 *color.Color
	italic               *color.Color
}

// NewGenerateCLI wires an orchestrator for terminal use.
func NewGenerateCLI(
	repo course.Repository,
	aiClient inference.Client,
	generationConfig config.GenerationConfig,
) *GenerateCLI {
	cli := &GenerateCLI{
		defaultQuestionCount: generationConfig.DefaultQuestionCount,
		stdinReader:          bufio.NewReader(os.Stdin),
		stdoutWriter:         os.Stdout,
		bold:                 color.New(color.Bold),
		italic:               color.New(color.Italic),
	}
	cli.orchestrator = builder.New(repo, aiClient,
		builder.WithRevealDelay(time.Duration(generationConfig.RevealDelayMS)*time.Millisecond),
		builder.WithProgress(cli.printProgress),
	)
	return cli
}

// Run generates a course and then offers to generate a quiz for it.
func (cli *GenerateCLI) Run(ctx context.Context, request builder.GenerateRequest) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	generated, lessons, err := cli.orchestrator.Generate(ctx, request)
	if err != nil {
		return fmt.Errorf("orchestrator.Generate() > %w", err)
	}

	fmt.Fprintln(cli.stdoutWriter)
	cli.bold.Fprintf(cli.stdoutWriter, "Course %q created with %d lessons (id %d).\n",
		generated.Title, len(lessons), generated.ID)

	generateQuiz, questionCount, err := cli.promptQuiz()
	if err != nil {
		return err
	}
	if !generateQuiz {
		return nil
	}

	quizID, err := cli.orchestrator.GenerateQuiz(ctx, questionCount)
	if err != nil {
		return fmt.Errorf("orchestrator.GenerateQuiz() > %w", err)
	}
	cli.bold.Fprintf(cli.stdoutWriter, "Quiz created (id %d). Take it with: coursebuilder quiz take %d\n", quizID, quizID)
	return nil
}

func (cli *GenerateCLI) printProgress(event builder.ProgressEvent) {
	switch event.Stage {
	case builder.StageCreatingCourse:
		fmt.Fprintln(cli.stdoutWriter, "Creating course...")
	case builder.StageRequestingLessons:
		fmt.Fprintf(cli.stdoutWriter, "Generating %d lessons...\n", event.TotalCount)
	case builder.StageRevealing:
		if event.Lesson == nil {
			return
		}
		fmt.Fprintln(cli.stdoutWriter)
		cli.bold.Fprintf(cli.stdoutWriter, "Lesson %d/%d: %s\n", event.RevealedCount, event.TotalCount, event.Lesson.Title)
		if event.Lesson.DurationLabel != "" {
			cli.italic.Fprintln(cli.stdoutWriter, event.Lesson.DurationLabel)
		}
		fmt.Fprintln(cli.stdoutWriter, event.Lesson.Content)
	case builder.StageRequestingQuiz:
		fmt.Fprintln(cli.stdoutWriter, "Generating quiz...")
	}
}

// promptQuiz asks whether to generate a quiz and with how many
// questions. An empty count keeps the configured default.
func (cli *GenerateCLI) promptQuiz() (bool, int, error) {
	fmt.Fprint(cli.stdoutWriter, "Generate a quiz for this course? [Y/n]: ")
	answer, err := cli.stdinReader.ReadString('\n')
	if err != nil {
		if err == io.EOF {
			return false, 0, nil
		}
		return false, 0, fmt.Errorf("error reading input: %w", err)
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	if answer == "n" || answer == "no" {
		return false, 0, nil
	}

	fmt.Fprintf(cli.stdoutWriter, "How many questions? [%d]: ", cli.defaultQuestionCount)
	countInput, err := cli.stdinReader.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, 0, fmt.Errorf("error reading input: %w", err)
	}
	countInput = strings.TrimSpace(countInput)
	if countInput == "" {
		return true, cli.defaultQuestionCount, nil
	}
	count, err := strconv.Atoi(countInput)
	if err != nil || count <= 0 {
		fmt.Fprintf(cli.stdoutWriter, "Not a valid count, using %d.\n", cli.defaultQuestionCount)
		return true, cli.defaultQuestionCount, nil
	}
	return true, count, nil
}
