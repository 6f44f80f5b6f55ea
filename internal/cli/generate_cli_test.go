package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/siyamthandatsobo/ai-course-builder/internal/builder"
	"github.com/siyamthandatsobo/ai-course-builder/internal/course"
	"github.com/siyamthandatsobo/ai-course-builder/internal/inference"
	mock_course "github.com/siyamthandatsobo/ai-course-builder/internal/mocks/course"
	mock_inference "github.com/siyamthandatsobo/ai-course-builder/internal/mocks/inference"
)

func newTestGenerateCLI(
	repo course.Repository,
	aiClient inference.Client,
	input string,
) (*GenerateCLI, *bytes.Buffer) {
	var buf bytes.Buffer
	cli := &GenerateCLI{
		defaultQuestionCount: 10,
		stdinReader:          bufio.NewReader(strings.NewReader(input)),
		stdoutWriter:         &buf,
		bold:                 color.New(color.Bold),
		italic:               color.New(color.Italic),
	}
	cli.orchestrator = builder.New(repo, aiClient,
		builder.WithRevealDelay(0),
		builder.WithProgress(cli.printProgress),
	)
	return cli, &buf
}

func validGenerateRequest() builder.GenerateRequest {
	return builder.GenerateRequest{
		Title:       "Go Basics",
		Topic:       "golang",
		Difficulty:  course.DifficultyBeginner,
		LessonCount: 4,
		CreatedBy:   1,
	}
}

func generatedLessons() []inference.LessonDraft {
	return []inference.LessonDraft{
		{Title: "Introduction", Content: "Go is a compiled language.", Duration: "10 min"},
		{Title: "Types", Content: "Go is statically typed."},
		{Title: "Functions", Content: "Functions are first class."},
		{Title: "Concurrency", Content: "Goroutines are cheap."},
	}
}

func expectGeneratedCourse(repo *mock_course.MockRepository, aiClient *mock_inference.MockClient) {
	repo.EXPECT().CreateCourse(gomock.Any(), gomock.Any()).
		Return(course.Course{ID: 10, Title: "Go Basics"}, nil)
	aiClient.EXPECT().GenerateLessons(gomock.Any(), gomock.Any()).
		Return(inference.GenerateLessonsResponse{Lessons: generatedLessons()}, nil)
	repo.EXPECT().ReplaceLessons(gomock.Any(), int64(10), gomock.Len(4)).Return(nil)
}

func TestGenerateCLI_Run(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		setup        func(repo *mock_course.MockRepository, aiClient *mock_inference.MockClient)
		wantErr      string
		wantContains []string
	}{
		{
			name:  "reveals every lesson and skips the quiz",
			input: "n\n",
			setup: func(repo *mock_course.MockRepository, aiClient *mock_inference.MockClient) {
				expectGeneratedCourse(repo, aiClient)
			},
			wantContains: []string{
				"Creating course...",
				"Generating 4 lessons...",
				"Lesson 1/4: Introduction",
				"10 min",
				"Lesson 4/4: Concurrency",
				`Course "Go Basics" created with 4 lessons (id 10).`,
			},
		},
		{
			name:  "generates a quiz with the default question count",
			input: "\n\n",
			setup: func(repo *mock_course.MockRepository, aiClient *mock_inference.MockClient) {
				expectGeneratedCourse(repo, aiClient)
				aiClient.EXPECT().GenerateQuiz(gomock.Any(), inference.GenerateQuizRequest{
					CourseContent: "Go is a compiled language. Go is statically typed. Functions are first class. Goroutines are cheap.",
					QuestionCount: 10,
				}).Return(inference.GenerateQuizResponse{
					Questions: []inference.QuestionDraft{
						{
							QuestionText:  "Is Go compiled?",
							Options:       []string{"yes", "no", "sometimes", "never"},
							CorrectAnswer: "yes",
						},
					},
				}, nil)
				repo.EXPECT().CreateQuiz(gomock.Any(), int64(10), "Go Basics — Quiz", gomock.Len(1)).
					Return(int64(77), nil)
			},
			wantContains: []string{
				"Generating quiz...",
				"Quiz created (id 77).",
			},
		},
		{
			name:  "a custom question count is passed through",
			input: "y\n5\n",
			setup: func(repo *mock_course.MockRepository, aiClient *mock_inference.MockClient) {
				expectGeneratedCourse(repo, aiClient)
				aiClient.EXPECT().GenerateQuiz(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, params inference.GenerateQuizRequest) (inference.GenerateQuizResponse, error) {
						assert.Equal(t, 5, params.QuestionCount)
						return inference.GenerateQuizResponse{
							Questions: []inference.QuestionDraft{
								{
									QuestionText:  "Is Go compiled?",
									Options:       []string{"yes", "no", "sometimes", "never"},
									CorrectAnswer: "yes",
								},
							},
						}, nil
					})
				repo.EXPECT().CreateQuiz(gomock.Any(), int64(10), "Go Basics — Quiz", gomock.Any()).
					Return(int64(78), nil)
			},
			wantContains: []string{"Quiz created (id 78)."},
		},
		{
			name:  "generation failure is reported",
			input: "",
			setup: func(repo *mock_course.MockRepository, aiClient *mock_inference.MockClient) {
				repo.EXPECT().CreateCourse(gomock.Any(), gomock.Any()).
					Return(course.Course{ID: 10}, nil)
				aiClient.EXPECT().GenerateLessons(gomock.Any(), gomock.Any()).
					Return(inference.GenerateLessonsResponse{Lessons: generatedLessons()[:2]}, nil)
			},
			wantErr: "asked for 4 lessons, model returned 2",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock_course.NewMockRepository(ctrl)
			aiClient := mock_inference.NewMockClient(ctrl)
			tt.setup(repo, aiClient)

			cli, buf := newTestGenerateCLI(repo, aiClient, tt.input)
			err := cli.Run(context.Background(), validGenerateRequest())
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
