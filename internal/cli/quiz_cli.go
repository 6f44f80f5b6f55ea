package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"

	"github.com/siyamthandatsobo/ai-course-builder/internal/quiz"
)

var optionLetters = []string{"A", "B", "C", "D"}

// QuizCLI walks a learner through a quiz on the terminal, one question
// at a time. Quitting mid-quiz abandons the attempt; nothing is
// submitted until the last question is answered.
type QuizCLI struct {
	session      *quiz.Session
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
	italic       *color.Color
}

func NewQuizCLI(store quiz.Store, userID, quizID int64) *QuizCLI {
	return &QuizCLI{
		session:      quiz.NewSession(store, userID, quizID),
		stdinReader:  bufio.NewReader(os.Stdin),
		stdoutWriter: os.Stdout,
		bold:         color.New(color.Bold),
		italic:       color.New(color.Italic),
	}
}

// Run loads the quiz and loops through its questions until the attempt
// is graded or the learner quits.
func (cli *QuizCLI) Run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	if err := cli.session.Load(ctx); err != nil {
		return fmt.Errorf("session.Load() > %w", err)
	}
	cli.bold.Fprintf(cli.stdoutWriter, "%s\n", cli.session.Quiz().Title)

	for {
		question, ok := cli.session.Current()
		if !ok {
			break
		}
		progress := cli.session.Progress()

		fmt.Fprintln(cli.stdoutWriter)
		cli.bold.Fprintf(cli.stdoutWriter, "Question %d/%d: %s\n", progress.Index+1, progress.Total, question.Text)
		for i, option := range question.Options {
			fmt.Fprintf(cli.stdoutWriter, "  %s) %s\n", optionLetters[i], option)
		}

		fmt.Fprint(cli.stdoutWriter, "Answer: ")
		input, err := cli.stdinReader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				fmt.Fprintln(cli.stdoutWriter, "Quiz abandoned, nothing was submitted.")
				return nil
			}
			return fmt.Errorf("error reading answer input: %w", err)
		}
		input = strings.TrimSpace(input)
		if input == "quit" || input == "exit" {
			fmt.Fprintln(cli.stdoutWriter, "Quiz abandoned, nothing was submitted.")
			return nil
		}

		answer, ok := resolveAnswer(question.Options, input)
		if !ok {
			fmt.Fprintln(cli.stdoutWriter, "Please answer with A, B, C or D.")
			continue
		}
		if err := cli.session.Select(answer); err != nil {
			fmt.Fprintf(cli.stdoutWriter, "Invalid answer: %v\n", err)
			continue
		}

		if err := cli.session.Advance(ctx); err != nil {
			if cli.session.Progress().State != quiz.StateSubmitError {
				return fmt.Errorf("session.Advance() > %w", err)
			}
			if retryErr := cli.promptRetry(ctx, err); retryErr != nil {
				return retryErr
			}
		}
	}

	cli.printResult()
	return nil
}

// promptRetry offers to resubmit after a failed submission. Recorded
// answers survive, so a retry never re-asks a question.
func (cli *QuizCLI) promptRetry(ctx context.Context, submitErr error) error {
	for {
		fmt.Fprintf(cli.stdoutWriter, "Submitting failed: %v\nRetry? [Y/n]: ", submitErr)
		input, err := cli.stdinReader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("error reading input: %w", err)
		}
		input = strings.ToLower(strings.TrimSpace(input))
		if input == "n" || input == "no" {
			return fmt.Errorf("session.Advance() > %w", submitErr)
		}
		if err := cli.session.Retry(ctx); err != nil {
			submitErr = err
			continue
		}
		return nil
	}
}

func (cli *QuizCLI) printResult() {
	result, ok := cli.session.Result()
	if !ok {
		return
	}

	fmt.Fprintln(cli.stdoutWriter)
	cli.bold.Fprintf(cli.stdoutWriter, "Score: %d%% (%d/%d correct)\n",
		result.ScorePercent, result.CorrectCount, result.TotalCount)
	for i, questionResult := range result.PerQuestion {
		verdict := "correct"
		if !questionResult.IsCorrect {
			verdict = fmt.Sprintf("incorrect, answer: %s", questionResult.CorrectAnswer)
		}
		fmt.Fprintf(cli.stdoutWriter, "%d. %s (%s)\n", i+1, questionResult.QuestionText, verdict)
		if !questionResult.IsCorrect && questionResult.Explanation != "" {
			cli.italic.Fprintf(cli.stdoutWriter, "   %s\n", questionResult.Explanation)
		}
	}
}

// resolveAnswer maps an option letter or verbatim option text to the
// option it names.
func resolveAnswer(options []string, input string) (string, bool) {
	upper := strings.ToUpper(input)
	for i, letter := range optionLetters {
		if i < len(options) && upper == letter {
			return options[i], true
		}
	}
	for _, option := range options {
		if input == option {
			return option, true
		}
	}
	return "", false
}
