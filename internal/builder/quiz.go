package builder

import (
	"context"
	"fmt"
	"strings"

	"github.com/siyamthandatsobo/ai-course-builder/internal/course"
	"github.com/siyamthandatsobo/ai-course-builder/internal/inference"
)

// QuizForCourse generates and stores a quiz for a course that already
// has lessons. Unlike Orchestrator.GenerateQuiz it carries no session
// state, so it fits one-shot callers like HTTP handlers.
func QuizForCourse(
	ctx context.Context,
	repo course.Repository,
	ai inference.Client,
	courseID int64,
	questionCount int,
) (int64, error) {
	if questionCount <= 0 {
		return 0, &course.ValidationError{Message: "question count must be positive"}
	}

	stored, err := repo.GetCourse(ctx, courseID)
	if err != nil {
		return 0, fmt.Errorf("repo.GetCourse() > %w", err)
	}
	lessons, err := repo.LessonsByCourse(ctx, courseID)
	if err != nil {
		return 0, fmt.Errorf("repo.LessonsByCourse() > %w", err)
	}
	if len(lessons) == 0 {
		return 0, &course.ValidationError{Message: "course has no lessons to build a quiz from"}
	}

	contents := make([]string, 0, len(lessons))
	for _, lesson := range lessons {
		contents = append(contents, lesson.Content)
	}
	response, err := ai.GenerateQuiz(ctx, inference.GenerateQuizRequest{
		CourseContent: strings.Join(contents, " "),
		QuestionCount: questionCount,
	})
	if err != nil {
		return 0, classifyServiceError("ai.GenerateQuiz()", err)
	}
	questions, err := questionsFromDrafts(response.Questions)
	if err != nil {
		return 0, err
	}

	quizID, err := repo.CreateQuiz(ctx, stored.ID, stored.Title+" — Quiz", questions)
	if err != nil {
		return 0, fmt.Errorf("repo.CreateQuiz() > %w", err)
	}
	return quizID, nil
}
