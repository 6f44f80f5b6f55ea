// Package inference defines the content generation client interface and
// its request/response types.
package inference

import (
	"context"
)

//go:generate mockgen -source=interface.go -destination=../mocks/inference/mock_client.go -package=mock_inference

// Client interface defines the AI content generation operations
type Client interface {
	GenerateLessons(ctx context.Context, params GenerateLessonsRequest) (GenerateLessonsResponse, error)
	GenerateQuiz(ctx context.Context, params GenerateQuizRequest) (GenerateQuizResponse, error)
}

// DefaultMaxRetryAttempts is the number of retries on retryable
// inference failures.
const DefaultMaxRetryAttempts = 3

// MaxQuizContextChars caps how much course content is sent as quiz
// generation context.
const MaxQuizContextChars = 3000

// GenerateLessonsRequest asks for a full ordered lesson list for a
// course in a single response. The service does not stream.
type GenerateLessonsRequest struct {
	Topic       string `json:"topic"`
	Difficulty  string `json:"difficulty"`
	LessonCount int    `json:"lesson_count"`
}

// LessonDraft is one generated lesson. Content is markdown.
type LessonDraft struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Duration string `json:"duration"`
}

type GenerateLessonsResponse struct {
	Lessons []LessonDraft `json:"lessons"`
}

// GenerateQuizRequest asks for multiple-choice questions grounded on
// the given course content.
type GenerateQuizRequest struct {
	CourseContent string `json:"course_content"`
	QuestionCount int    `json:"question_count"`
}

// QuestionDraft is one generated multiple-choice question. CorrectAnswer
// must be the exact text of one of the four options; grading compares
// option text, not position.
type QuestionDraft struct {
	QuestionText  string   `json:"question_text"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

type GenerateQuizResponse struct {
	Questions []QuestionDraft `json:"questions"`
}
