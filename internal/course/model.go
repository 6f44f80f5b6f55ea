// Package course provides the course, lesson and quiz domain models and
// the repository interface the generation and quiz engines depend on.
package course

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Difficulty is the declared level of a course.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// ParseDifficulty parses a difficulty string.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return Difficulty(s), nil
	}
	return "", &ValidationError{Message: fmt.Sprintf("invalid difficulty %q, valid values are %q, %q or %q",
		s, DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced)}
}

// LessonCounts is the set of lesson counts a generation request may ask for.
var LessonCounts = []int{4, 6, 8, 10}

// ValidLessonCount reports whether n is an allowed lesson count.
func ValidLessonCount(n int) bool {
	for _, c := range LessonCounts {
		if n == c {
			return true
		}
	}
	return false
}

// OptionsPerQuestion is the fixed number of choices for every quiz question.
const OptionsPerQuestion = 4

// Course is a generated course. The ID is assigned by the repository on
// creation and the record is immutable afterwards from the engine's
// perspective. Publishing is handled elsewhere.
type Course struct {
	ID          int64      `db:"id" json:"id"`
	Title       string     `db:"title" json:"title"`
	Description string     `db:"description" json:"description"`
	Topic       string     `db:"topic" json:"topic"`
	Difficulty  Difficulty `db:"difficulty" json:"difficulty"`
	IsPublished bool       `db:"is_published" json:"is_published"`
	CreatedBy   int64      `db:"created_by" json:"created_by"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
}

// CreateCourseInput holds the fields needed to create a course record.
type CreateCourseInput struct {
	Title       string
	Description string
	Topic       string
	Difficulty  Difficulty
	CreatedBy   int64
}

// Lesson is one unit of course content. Lessons have no identity beyond
// their position in the course; reveal order equals storage order.
type Lesson struct {
	Title         string `db:"title" json:"title"`
	Content       string `db:"content" json:"content"`
	DurationLabel string `db:"duration_label" json:"duration"`
}

// Question is one multiple-choice quiz question with exactly four
// options. CorrectAnswer and Explanation are stripped when a quiz is
// fetched for a learner.
type Question struct {
	ID            int64      `db:"id" json:"id"`
	Text          string     `db:"question_text" json:"question_text"`
	Options       OptionList `db:"options" json:"options"`
	CorrectAnswer string     `db:"correct_answer" json:"correct_answer,omitempty"`
	Explanation   string     `db:"explanation" json:"explanation,omitempty"`
}

// Quiz is an ordered set of questions generated for a course. A quiz is
// immutable once created; retakes create new attempts, never new quizzes.
type Quiz struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

// AttemptSummary is one row of a learner's attempt history.
type AttemptSummary struct {
	QuizID      int64     `db:"quiz_id" json:"quiz_id"`
	QuizTitle   string    `db:"quiz_title" json:"quiz_title"`
	CourseTitle string    `db:"course_title" json:"course_title"`
	CourseTopic string    `db:"course_topic" json:"course_topic"`
	Score       int       `db:"score" json:"score"`
	AttemptedAt time.Time `db:"attempted_at" json:"attempted_at"`
}

// OptionList stores question options as a JSON column.
type OptionList []string

// Value implements driver.Valuer.
func (o OptionList) Value() (driver.Value, error) {
	encoded, err := json.Marshal([]string(o))
	if err != nil {
		return nil, fmt.Errorf("json.Marshal(options) > %w", err)
	}
	return encoded, nil
}

// Scan implements sql.Scanner.
func (o *OptionList) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, (*[]string)(o))
	case string:
		return json.Unmarshal([]byte(v), (*[]string)(o))
	case nil:
		*o = nil
		return nil
	}
	return fmt.Errorf("cannot scan %T into OptionList", src)
}
