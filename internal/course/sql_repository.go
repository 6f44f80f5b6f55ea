package course

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/siyamthandatsobo/ai-course-builder/internal/grading"
)

// SQLRepository implements Repository on top of MySQL.
type SQLRepository struct {
	db *sqlx.DB
}

var _ Repository = (*SQLRepository)(nil)

// NewSQLRepository creates a new SQLRepository.
func NewSQLRepository(db *sqlx.DB) *SQLRepository {
	return &SQLRepository{db: db}
}

func (r *SQLRepository) CreateCourse(ctx context.Context, input CreateCourseInput) (Course, error) {
	if strings.TrimSpace(input.Title) == "" {
		return Course{}, &ValidationError{Message: "course title is required"}
	}
	if strings.TrimSpace(input.Topic) == "" {
		return Course{}, &ValidationError{Message: "course topic is required"}
	}
	if _, err := ParseDifficulty(string(input.Difficulty)); err != nil {
		return Course{}, err
	}

	result, err := r.db.ExecContext(ctx,
		"INSERT INTO courses (title, description, topic, difficulty, is_published, created_by) VALUES (?, ?, ?, ?, ?, ?)",
		input.Title, input.Description, input.Topic, input.Difficulty, false, input.CreatedBy)
	if err != nil {
		return Course{}, &ServiceError{Op: "db.ExecContext(insert course)", Err: err}
	}
	id, err := result.LastInsertId()
	if err != nil {
		return Course{}, &ServiceError{Op: "result.LastInsertId()", Err: err}
	}
	return r.GetCourse(ctx, id)
}

func (r *SQLRepository) GetCourse(ctx context.Context, id int64) (Course, error) {
	var c Course
	err := r.db.GetContext(ctx, &c,
		"SELECT id, title, description, topic, difficulty, is_published, created_by, created_at FROM courses WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return Course{}, &NotFoundError{Resource: "course", ID: id}
	}
	if err != nil {
		return Course{}, &ServiceError{Op: "db.GetContext(course)", Err: err}
	}
	return c, nil
}

func (r *SQLRepository) ListCourses(ctx context.Context) ([]Course, error) {
	var courses []Course
	if err := r.db.SelectContext(ctx, &courses,
		"SELECT id, title, description, topic, difficulty, is_published, created_by, created_at FROM courses ORDER BY id"); err != nil {
		return nil, &ServiceError{Op: "db.SelectContext(courses)", Err: err}
	}
	return courses, nil
}

func (r *SQLRepository) ReplaceLessons(ctx context.Context, courseID int64, lessons []Lesson) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return &ServiceError{Op: "db.BeginTxx()", Err: err}
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, "DELETE FROM lessons WHERE course_id = ?", courseID); err != nil {
		return &ServiceError{Op: "tx.ExecContext(delete lessons)", Err: err}
	}
	for i, lesson := range lessons {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO lessons (course_id, position, title, content, duration_label) VALUES (?, ?, ?, ?, ?)",
			courseID, i, lesson.Title, lesson.Content, lesson.DurationLabel); err != nil {
			return &ServiceError{Op: fmt.Sprintf("tx.ExecContext(insert lesson %d)", i), Err: err}
		}
	}
	if err := tx.Commit(); err != nil {
		return &ServiceError{Op: "tx.Commit()", Err: err}
	}
	return nil
}

func (r *SQLRepository) LessonsByCourse(ctx context.Context, courseID int64) ([]Lesson, error) {
	var lessons []Lesson
	if err := r.db.SelectContext(ctx, &lessons,
		"SELECT title, content, duration_label FROM lessons WHERE course_id = ? ORDER BY position", courseID); err != nil {
		return nil, &ServiceError{Op: "db.SelectContext(lessons)", Err: err}
	}
	return lessons, nil
}

func (r *SQLRepository) CreateQuiz(ctx context.Context, courseID int64, title string, questions []Question) (int64, error) {
	if len(questions) == 0 {
		return 0, &ValidationError{Message: "a quiz needs at least one question"}
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, &ServiceError{Op: "db.BeginTxx()", Err: err}
	}
	defer func() {
		_ = tx.Rollback()
	}()

	result, err := tx.ExecContext(ctx,
		"INSERT INTO quizzes (course_id, title) VALUES (?, ?)", courseID, title)
	if err != nil {
		return 0, &ServiceError{Op: "tx.ExecContext(insert quiz)", Err: err}
	}
	quizID, err := result.LastInsertId()
	if err != nil {
		return 0, &ServiceError{Op: "result.LastInsertId()", Err: err}
	}

	for i, q := range questions {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO questions (quiz_id, position, question_text, options, correct_answer, explanation) VALUES (?, ?, ?, ?, ?, ?)",
			quizID, i, q.Text, q.Options, q.CorrectAnswer, q.Explanation); err != nil {
			return 0, &ServiceError{Op: fmt.Sprintf("tx.ExecContext(insert question %d)", i), Err: err}
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, &ServiceError{Op: "tx.Commit()", Err: err}
	}
	return quizID, nil
}

func (r *SQLRepository) GetQuiz(ctx context.Context, quizID int64) (Quiz, error) {
	var row struct {
		ID    int64  `db:"id"`
		Title string `db:"title"`
	}
	err := r.db.GetContext(ctx, &row, "SELECT id, title FROM quizzes WHERE id = ?", quizID)
	if errors.Is(err, sql.ErrNoRows) {
		return Quiz{}, &NotFoundError{Resource: "quiz", ID: quizID}
	}
	if err != nil {
		return Quiz{}, &ServiceError{Op: "db.GetContext(quiz)", Err: err}
	}

	questions, err := r.questionsByQuiz(ctx, quizID)
	if err != nil {
		return Quiz{}, err
	}
	// learner-safe view: never ship answer keys to the client
	for i := range questions {
		questions[i].CorrectAnswer = ""
		questions[i].Explanation = ""
	}
	return Quiz{ID: row.ID, Title: row.Title, Questions: questions}, nil
}

func (r *SQLRepository) QuizByCourse(ctx context.Context, courseID int64) (int64, string, error) {
	var row struct {
		ID    int64  `db:"id"`
		Title string `db:"title"`
	}
	err := r.db.GetContext(ctx, &row,
		"SELECT id, title FROM quizzes WHERE course_id = ? ORDER BY id DESC LIMIT 1", courseID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, "", &NotFoundError{Resource: "quiz for course", ID: courseID}
	}
	if err != nil {
		return 0, "", &ServiceError{Op: "db.GetContext(quiz by course)", Err: err}
	}
	return row.ID, row.Title, nil
}

func (r *SQLRepository) SubmitAttempt(ctx context.Context, userID, quizID int64, answers []string) (grading.Result, error) {
	questions, err := r.questionsByQuiz(ctx, quizID)
	if err != nil {
		return grading.Result{}, err
	}
	if len(questions) == 0 {
		return grading.Result{}, &NotFoundError{Resource: "quiz", ID: quizID}
	}
	if len(answers) != len(questions) {
		return grading.Result{}, &ValidationError{
			Message: fmt.Sprintf("expected %d answers, got %d", len(questions), len(answers)),
		}
	}

	gradable := make([]grading.Question, 0, len(questions))
	for _, q := range questions {
		gradable = append(gradable, grading.Question{
			Text:          q.Text,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
		})
	}
	result, err := grading.Grade(gradable, answers)
	if err != nil {
		return grading.Result{}, fmt.Errorf("grading.Grade() > %w", err)
	}

	encodedAnswers, err := OptionList(answers).Value()
	if err != nil {
		return grading.Result{}, fmt.Errorf("encode answers > %w", err)
	}
	if _, err := r.db.ExecContext(ctx,
		"INSERT INTO quiz_attempts (user_id, quiz_id, score, answers) VALUES (?, ?, ?, ?)",
		userID, quizID, result.ScorePercent, encodedAnswers); err != nil {
		return grading.Result{}, &ServiceError{Op: "db.ExecContext(insert attempt)", Err: err}
	}
	return result, nil
}

func (r *SQLRepository) ListAttempts(ctx context.Context, userID int64) ([]AttemptSummary, error) {
	var attempts []AttemptSummary
	if err := r.db.SelectContext(ctx, &attempts,
		`SELECT a.quiz_id, q.title AS quiz_title, c.title AS course_title, c.topic AS course_topic, a.score, a.attempted_at
		 FROM quiz_attempts a
		 JOIN quizzes q ON q.id = a.quiz_id
		 JOIN courses c ON c.id = q.course_id
		 WHERE a.user_id = ?
		 ORDER BY a.attempted_at DESC`, userID); err != nil {
		return nil, &ServiceError{Op: "db.SelectContext(attempts)", Err: err}
	}
	return attempts, nil
}

func (r *SQLRepository) questionsByQuiz(ctx context.Context, quizID int64) ([]Question, error) {
	var questions []Question
	if err := r.db.SelectContext(ctx, &questions,
		"SELECT id, question_text, options, correct_answer, explanation FROM questions WHERE quiz_id = ? ORDER BY position", quizID); err != nil {
		return nil, &ServiceError{Op: "db.SelectContext(questions)", Err: err}
	}
	return questions, nil
}
