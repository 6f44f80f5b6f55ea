package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/siyamthandatsobo/ai-course-builder/internal/course"
	"github.com/siyamthandatsobo/ai-course-builder/internal/grading"
	mock_quiz "github.com/siyamthandatsobo/ai-course-builder/internal/mocks/quiz"
	"github.com/siyamthandatsobo/ai-course-builder/internal/quiz"
)

func testQuiz() course.Quiz {
	return course.Quiz{
		ID:    5,
		Title: "Go Basics — Quiz",
		Questions: []course.Question{
			{ID: 1, Text: "Q1", Options: course.OptionList{"a1", "b1", "c1", "d1"}},
			{ID: 2, Text: "Q2", Options: course.OptionList{"a2", "b2", "c2", "d2"}},
		},
	}
}

func newTestQuizCLI(store quiz.Store, input string) (*QuizCLI, *bytes.Buffer) {
	var buf bytes.Buffer
	return &QuizCLI{
		session:      quiz.NewSession(store, 1, 5),
		stdinReader:  bufio.NewReader(strings.NewReader(input)),
		stdoutWriter: &buf,
		bold:         color.New(color.Bold),
		italic:       color.New(color.Italic),
	}, &buf
}

func TestQuizCLI_Run(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		setup        func(store *mock_quiz.MockStore)
		wantErr      string
		wantContains []string
	}{
		{
			name:  "answers by letter and prints the graded result",
			input: "B\na\n",
			setup: func(store *mock_quiz.MockStore) {
				store.EXPECT().GetQuiz(gomock.Any(), int64(5)).Return(testQuiz(), nil)
				store.EXPECT().SubmitAttempt(gomock.Any(), int64(1), int64(5), []string{"b1", "a2"}).
					Return(grading.Result{
						ScorePercent: 50,
						CorrectCount: 1,
						TotalCount:   2,
						PerQuestion: []grading.QuestionResult{
							{QuestionText: "Q1", YourAnswer: "b1", CorrectAnswer: "b1", IsCorrect: true},
							{QuestionText: "Q2", YourAnswer: "a2", CorrectAnswer: "c2", Explanation: "c2 is right", IsCorrect: false},
						},
					}, nil)
			},
			wantContains: []string{
				"Question 1/2: Q1",
				"A) a1",
				"Score: 50% (1/2 correct)",
				"incorrect, answer: c2",
				"c2 is right",
			},
		},
		{
			name:  "re-prompts on an unknown letter",
			input: "E\nA\nA\n",
			setup: func(store *mock_quiz.MockStore) {
				store.EXPECT().GetQuiz(gomock.Any(), int64(5)).Return(testQuiz(), nil)
				store.EXPECT().SubmitAttempt(gomock.Any(), int64(1), int64(5), []string{"a1", "a2"}).
					Return(grading.Result{ScorePercent: 100, CorrectCount: 2, TotalCount: 2}, nil)
			},
			wantContains: []string{"Please answer with A, B, C or D."},
		},
		{
			name:  "accepts verbatim option text",
			input: "b1\nc2\n",
			setup: func(store *mock_quiz.MockStore) {
				store.EXPECT().GetQuiz(gomock.Any(), int64(5)).Return(testQuiz(), nil)
				store.EXPECT().SubmitAttempt(gomock.Any(), int64(1), int64(5), []string{"b1", "c2"}).
					Return(grading.Result{ScorePercent: 100, CorrectCount: 2, TotalCount: 2}, nil)
			},
			wantContains: []string{"Score: 100%"},
		},
		{
			name:  "quitting abandons the attempt without submitting",
			input: "A\nquit\n",
			setup: func(store *mock_quiz.MockStore) {
				store.EXPECT().GetQuiz(gomock.Any(), int64(5)).Return(testQuiz(), nil)
			},
			wantContains: []string{"Quiz abandoned, nothing was submitted."},
		},
		{
			name:  "retries a failed submission with the same answers",
			input: "A\nA\ny\n",
			setup: func(store *mock_quiz.MockStore) {
				store.EXPECT().GetQuiz(gomock.Any(), int64(5)).Return(testQuiz(), nil)
				store.EXPECT().SubmitAttempt(gomock.Any(), int64(1), int64(5), []string{"a1", "a2"}).
					Return(grading.Result{}, errors.New("status code: 503"))
				store.EXPECT().SubmitAttempt(gomock.Any(), int64(1), int64(5), []string{"a1", "a2"}).
					Return(grading.Result{ScorePercent: 100, CorrectCount: 2, TotalCount: 2}, nil)
			},
			wantContains: []string{"Submitting failed", "Score: 100%"},
		},
		{
			name:  "declining a retry surfaces the submit failure",
			input: "A\nA\nn\n",
			setup: func(store *mock_quiz.MockStore) {
				store.EXPECT().GetQuiz(gomock.Any(), int64(5)).Return(testQuiz(), nil)
				store.EXPECT().SubmitAttempt(gomock.Any(), int64(1), int64(5), []string{"a1", "a2"}).
					Return(grading.Result{}, errors.New("status code: 503"))
			},
			wantErr: "status code: 503",
		},
		{
			name:  "load failure ends the run",
			input: "",
			setup: func(store *mock_quiz.MockStore) {
				store.EXPECT().GetQuiz(gomock.Any(), int64(5)).
					Return(course.Quiz{}, &course.NotFoundError{Resource: "quiz", ID: 5})
			},
			wantErr: "session.Load()",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := mock_quiz.NewMockStore(ctrl)
			tt.setup(store)

			cli, buf := newTestQuizCLI(store, tt.input)
			err := cli.Run(context.Background())
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			for _, want := range tt.wantContains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestResolveAnswer(t *testing.T) {
	options := []string{"alpha", "beta", "gamma", "delta"}
	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{"A", "alpha", true},
		{"d", "delta", true},
		{"beta", "beta", true},
		{"E", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := resolveAnswer(options, tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
