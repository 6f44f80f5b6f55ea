package course

import (
	"context"

	"github.com/siyamthandatsobo/ai-course-builder/internal/grading"
)

//go:generate mockgen -source=repository.go -destination=../mocks/course/mock_repository.go -package=mock_course

// Repository persists courses, lessons, quizzes and attempts.
// SubmitAttempt is the authoritative grading path: implementations must
// grade with grading.Grade so server-side and offline results match
// exactly.
type Repository interface {
	CreateCourse(ctx context.Context, input CreateCourseInput) (Course, error)
	GetCourse(ctx context.Context, id int64) (Course, error)
	ListCourses(ctx context.Context) ([]Course, error)

	// ReplaceLessons replaces the lesson list of a course with the given
	// ordered sequence. Position in the slice is the reveal order.
	ReplaceLessons(ctx context.Context, courseID int64, lessons []Lesson) error
	LessonsByCourse(ctx context.Context, courseID int64) ([]Lesson, error)

	CreateQuiz(ctx context.Context, courseID int64, title string, questions []Question) (int64, error)
	// GetQuiz returns the learner-safe quiz: questions in order, answer
	// keys and explanations stripped.
	GetQuiz(ctx context.Context, quizID int64) (Quiz, error)
	QuizByCourse(ctx context.Context, courseID int64) (quizID int64, title string, err error)

	// SubmitAttempt grades the ordered answers against the quiz and
	// appends an attempt record. Attempt history is append-only.
	SubmitAttempt(ctx context.Context, userID, quizID int64, answers []string) (grading.Result, error)
	ListAttempts(ctx context.Context, userID int64) ([]AttemptSummary, error)
}
