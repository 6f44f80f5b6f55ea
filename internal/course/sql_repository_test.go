package course

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepository(t *testing.T) (*SQLRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return NewSQLRepository(sqlx.NewDb(db, "mysql")), mock
}

func courseRows(now time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "title", "description", "topic", "difficulty", "is_published", "created_by", "created_at",
	}).AddRow(1, "Intro to Go", "A first course", "Go", "beginner", false, 7, now)
}

func TestSQLRepository_CreateCourse(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		input     CreateCourseInput
		setupMock func(mock sqlmock.Sqlmock)
		wantErr   bool
		wantLocal bool // validation error, no query issued
	}{
		{
			name: "creates and reloads the course",
			input: CreateCourseInput{
				Title: "Intro to Go", Description: "A first course", Topic: "Go",
				Difficulty: DifficultyBeginner, CreatedBy: 7,
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO courses").
					WithArgs("Intro to Go", "A first course", "Go", DifficultyBeginner, false, int64(7)).
					WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectQuery("SELECT (.+) FROM courses WHERE id = ?").
					WithArgs(int64(1)).
					WillReturnRows(courseRows(now))
			},
		},
		{
			name:      "empty title is a local validation error",
			input:     CreateCourseInput{Title: "   ", Topic: "Go", Difficulty: DifficultyBeginner},
			wantErr:   true,
			wantLocal: true,
		},
		{
			name:      "empty topic is a local validation error",
			input:     CreateCourseInput{Title: "Intro", Topic: "", Difficulty: DifficultyBeginner},
			wantErr:   true,
			wantLocal: true,
		},
		{
			name:      "unknown difficulty is rejected",
			input:     CreateCourseInput{Title: "Intro", Topic: "Go", Difficulty: "expert"},
			wantErr:   true,
			wantLocal: true,
		},
		{
			name: "insert failure",
			input: CreateCourseInput{
				Title: "Intro to Go", Topic: "Go", Difficulty: DifficultyBeginner,
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO courses").
					WillReturnError(fmt.Errorf("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepository(t)
			if tt.setupMock != nil {
				tt.setupMock(mock)
			}

			got, err := repo.CreateCourse(context.Background(), tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantLocal {
					assert.True(t, IsValidation(err))
				}
				assert.NoError(t, mock.ExpectationsWereMet())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(1), got.ID)
			assert.Equal(t, "Intro to Go", got.Title)
			assert.Equal(t, DifficultyBeginner, got.Difficulty)
			assert.False(t, got.IsPublished)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSQLRepository_GetCourse_NotFound(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectQuery("SELECT (.+) FROM courses WHERE id = ?").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetCourse(context.Background(), 42)
	assert.True(t, IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLRepository_ReplaceLessons(t *testing.T) {
	repo, mock := newMockRepository(t)

	lessons := []Lesson{
		{Title: "Basics", Content: "Variables and types.", DurationLabel: "8 min"},
		{Title: "Control flow", Content: "If and for.", DurationLabel: "10 min"},
	}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM lessons WHERE course_id = ?").
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO lessons").
		WithArgs(int64(3), 0, "Basics", "Variables and types.", "8 min").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO lessons").
		WithArgs(int64(3), 1, "Control flow", "If and for.", "10 min").
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	err := repo.ReplaceLessons(context.Background(), 3, lessons)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLRepository_LessonsByCourse_PreservesOrder(t *testing.T) {
	repo, mock := newMockRepository(t)

	rows := sqlmock.NewRows([]string{"title", "content", "duration_label"}).
		AddRow("Basics", "Variables.", "8 min").
		AddRow("Control flow", "If and for.", "10 min").
		AddRow("Functions", "Funcs and closures.", "12 min")
	mock.ExpectQuery("SELECT title, content, duration_label FROM lessons WHERE course_id = \\? ORDER BY position").
		WithArgs(int64(3)).
		WillReturnRows(rows)

	got, err := repo.LessonsByCourse(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Basics", got[0].Title)
	assert.Equal(t, "Control flow", got[1].Title)
	assert.Equal(t, "Functions", got[2].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLRepository_CreateQuiz(t *testing.T) {
	repo, mock := newMockRepository(t)

	questions := []Question{
		{
			Text:          "What is a goroutine?",
			Options:       OptionList{"A thread", "A lightweight thread", "A process", "A mutex"},
			CorrectAnswer: "A lightweight thread",
			Explanation:   "Goroutines are scheduled by the runtime.",
		},
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO quizzes").
		WithArgs(int64(3), "Intro to Go — Quiz").
		WillReturnResult(sqlmock.NewResult(9, 1))
	mock.ExpectExec("INSERT INTO questions").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	quizID, err := repo.CreateQuiz(context.Background(), 3, "Intro to Go — Quiz", questions)
	require.NoError(t, err)
	assert.Equal(t, int64(9), quizID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLRepository_CreateQuiz_NoQuestions(t *testing.T) {
	repo, _ := newMockRepository(t)

	_, err := repo.CreateQuiz(context.Background(), 3, "Empty", nil)
	assert.True(t, IsValidation(err))
}

func questionRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "question_text", "options", "correct_answer", "explanation"}).
		AddRow(1, "Capital of France?", []byte(`["Paris","London","Berlin","Madrid"]`), "Paris", "Paris is the capital.").
		AddRow(2, "Answer to everything?", []byte(`["41","42","43","44"]`), "42", "Per Douglas Adams.").
		AddRow(3, "Binary search complexity?", []byte(`["O(n)","O(1)","O(log n)","O(n log n)"]`), "O(log n)", "Halves the range.")
}

func TestSQLRepository_GetQuiz_StripsAnswerKeys(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery("SELECT id, title FROM quizzes WHERE id = ?").
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}).AddRow(9, "Intro to Go — Quiz"))
	mock.ExpectQuery("SELECT (.+) FROM questions WHERE quiz_id = \\? ORDER BY position").
		WithArgs(int64(9)).
		WillReturnRows(questionRows())

	quiz, err := repo.GetQuiz(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, int64(9), quiz.ID)
	require.Len(t, quiz.Questions, 3)
	for _, q := range quiz.Questions {
		assert.Empty(t, q.CorrectAnswer)
		assert.Empty(t, q.Explanation)
		assert.Len(t, q.Options, OptionsPerQuestion)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLRepository_SubmitAttempt(t *testing.T) {
	tests := []struct {
		name        string
		answers     []string
		setupMock   func(mock sqlmock.Sqlmock)
		wantScore   int
		wantCorrect int
		wantErr     bool
		wantLocal   bool
	}{
		{
			name:    "grades and records the attempt",
			answers: []string{"Paris", "41", "O(log n)"},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM questions WHERE quiz_id = \\? ORDER BY position").
					WithArgs(int64(9)).
					WillReturnRows(questionRows())
				mock.ExpectExec("INSERT INTO quiz_attempts").
					WithArgs(int64(5), int64(9), 67, []byte(`["Paris","41","O(log n)"]`)).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
			wantScore:   67,
			wantCorrect: 2,
		},
		{
			name:    "answer count mismatch is rejected before grading",
			answers: []string{"Paris"},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM questions WHERE quiz_id = \\? ORDER BY position").
					WithArgs(int64(9)).
					WillReturnRows(questionRows())
			},
			wantErr:   true,
			wantLocal: true,
		},
		{
			name:    "unknown quiz",
			answers: []string{"a"},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM questions WHERE quiz_id = \\? ORDER BY position").
					WithArgs(int64(9)).
					WillReturnRows(sqlmock.NewRows([]string{"id", "question_text", "options", "correct_answer", "explanation"}))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepository(t)
			tt.setupMock(mock)

			got, err := repo.SubmitAttempt(context.Background(), 5, 9, tt.answers)
			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantLocal {
					assert.True(t, IsValidation(err))
				}
				assert.NoError(t, mock.ExpectationsWereMet())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantScore, got.ScorePercent)
			assert.Equal(t, tt.wantCorrect, got.CorrectCount)
			assert.Equal(t, 3, got.TotalCount)
			assert.False(t, got.PerQuestion[1].IsCorrect)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSQLRepository_ListAttempts(t *testing.T) {
	repo, mock := newMockRepository(t)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"quiz_id", "quiz_title", "course_title", "course_topic", "score", "attempted_at"}).
		AddRow(9, "Intro to Go — Quiz", "Intro to Go", "Go", 67, now).
		AddRow(4, "SQL Basics — Quiz", "SQL Basics", "Databases", 100, now.Add(-time.Hour))
	mock.ExpectQuery("SELECT (.+) FROM quiz_attempts").
		WithArgs(int64(5)).
		WillReturnRows(rows)

	got, err := repo.ListAttempts(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Intro to Go — Quiz", got[0].QuizTitle)
	assert.Equal(t, 67, got[0].Score)
	assert.Equal(t, "Databases", got[1].CourseTopic)
	assert.NoError(t, mock.ExpectationsWereMet())
}
