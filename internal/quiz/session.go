// Package quiz implements the learner-side quiz session: load a quiz,
// step through its questions in order, and submit exactly one attempt.
package quiz

import (
	"context"
	"fmt"
	"sync"

	"github.com/siyamthandatsobo/ai-course-builder/internal/course"
	"github.com/siyamthandatsobo/ai-course-builder/internal/grading"
)

//go:generate mockgen -source=session.go -destination=../mocks/quiz/mock_store.go -package=mock_quiz

// Store is the narrow persistence surface a session needs.
// course.Repository satisfies it.
type Store interface {
	GetQuiz(ctx context.Context, quizID int64) (course.Quiz, error)
	SubmitAttempt(ctx context.Context, userID, quizID int64, answers []string) (grading.Result, error)
}

// State names one phase of a session.
type State string

const (
	StateLoading     State = "loading"
	StateAnswering   State = "answering"
	StateSubmitting  State = "submitting"
	StateGraded      State = "graded"
	StateLoadError   State = "load_error"
	StateSubmitError State = "submit_error"
)

// Progress is a snapshot of where the learner is in the quiz.
type Progress struct {
	State    State
	Index    int
	Total    int
	Answered int
}

// Session walks a learner through one quiz. Answers live in memory only
// until the single submit; navigation is forward-only and submission
// happens automatically after the last question is answered. A session
// is safe for concurrent use, though the expected caller is a single
// UI loop.
type Session struct {
	store  Store
	userID int64
	quizID int64

	mu        sync.Mutex
	state     State
	quiz      course.Quiz
	index     int
	answers   []string
	answered  []bool
	result    grading.Result
	lastErr   error
	submitted bool
}

// NewSession creates a session in the Loading state. Call Load before
// anything else.
func NewSession(store Store, userID, quizID int64) *Session {
	return &Session{
		store:  store,
		userID: userID,
		quizID: quizID,
		state:  StateLoading,
	}
}

// Load fetches the quiz and moves to Answering at the first question.
// On failure the session lands in LoadError and Load may be called
// again.
func (s *Session) Load(ctx context.Context) error {
	s.mu.Lock()
	if s.state != StateLoading && s.state != StateLoadError {
		s.mu.Unlock()
		return &course.ValidationError{Message: fmt.Sprintf("cannot load a quiz in the %s state", s.state)}
	}
	s.state = StateLoading
	s.mu.Unlock()

	loaded, err := s.store.GetQuiz(ctx, s.quizID)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = StateLoadError
		s.lastErr = err
		return fmt.Errorf("store.GetQuiz() > %w", err)
	}
	if len(loaded.Questions) == 0 {
		s.state = StateLoadError
		s.lastErr = grading.ErrEmptyQuiz
		return &course.ValidationError{Message: "quiz has no questions"}
	}

	s.quiz = loaded
	s.index = 0
	s.answers = make([]string, len(loaded.Questions))
	s.answered = make([]bool, len(loaded.Questions))
	s.state = StateAnswering
	s.lastErr = nil
	return nil
}

// Quiz returns the loaded quiz.
func (s *Session) Quiz() course.Quiz {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quiz
}

// Current returns the question the learner is on.
func (s *Session) Current() (course.Question, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateAnswering || s.index >= len(s.quiz.Questions) {
		return course.Question{}, false
	}
	return s.quiz.Questions[s.index], true
}

// Select records an answer for the current question. Selecting again
// before advancing overwrites the previous choice. The answer must be
// the exact text of one of the question's options.
func (s *Session) Select(answer string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateAnswering {
		return &course.ValidationError{Message: fmt.Sprintf("cannot answer in the %s state", s.state)}
	}
	question := s.quiz.Questions[s.index]
	for _, option := range question.Options {
		if option == answer {
			s.answers[s.index] = answer
			s.answered[s.index] = true
			return nil
		}
	}
	return &course.ValidationError{Message: "answer must match one of the question's options"}
}

// Advance moves to the next question. Advancing past the last question
// submits the attempt; there is no way back to earlier questions.
func (s *Session) Advance(ctx context.Context) error {
	s.mu.Lock()
	if s.state != StateAnswering {
		state := s.state
		s.mu.Unlock()
		return &course.ValidationError{Message: fmt.Sprintf("cannot advance in the %s state", state)}
	}
	if !s.answered[s.index] {
		s.mu.Unlock()
		return &course.ValidationError{Message: "select an answer before advancing"}
	}
	if s.index < len(s.quiz.Questions)-1 {
		s.index++
		s.mu.Unlock()
		return nil
	}
	return s.submitLocked(ctx)
}

// Retry re-submits the recorded answers after a failed submit. Answers
// survive submit failures, so nothing has to be re-entered.
func (s *Session) Retry(ctx context.Context) error {
	s.mu.Lock()
	if s.state != StateSubmitError {
		state := s.state
		s.mu.Unlock()
		return &course.ValidationError{Message: fmt.Sprintf("cannot retry in the %s state", state)}
	}
	return s.submitLocked(ctx)
}

// submitLocked is entered holding mu and releases it around the network
// call. The Submitting state plus the submitted flag guarantee at most
// one attempt reaches the store per session, no matter how Advance and
// Retry interleave.
func (s *Session) submitLocked(ctx context.Context) error {
	if s.submitted {
		s.mu.Unlock()
		return &course.ValidationError{Message: "attempt already submitted"}
	}
	s.submitted = true
	s.state = StateSubmitting
	answers := make([]string, len(s.answers))
	copy(answers, s.answers)
	s.mu.Unlock()

	result, err := s.store.SubmitAttempt(ctx, s.userID, s.quizID, answers)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = StateSubmitError
		s.submitted = false
		s.lastErr = err
		return fmt.Errorf("store.SubmitAttempt() > %w", err)
	}
	s.state = StateGraded
	s.result = result
	s.lastErr = nil
	return nil
}

// Result returns the graded result once the session reached Graded.
func (s *Session) Result() (grading.Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result, s.state == StateGraded
}

// Err returns the failure behind a LoadError or SubmitError state.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateLoadError && s.state != StateSubmitError {
		return nil
	}
	return s.lastErr
}

// Progress reports the current position without exposing answers.
func (s *Session) Progress() Progress {
	s.mu.Lock()
	defer s.mu.Unlock()
	answered := 0
	for _, done := range s.answered {
		if done {
			answered++
		}
	}
	return Progress{
		State:    s.state,
		Index:    s.index,
		Total:    len(s.quiz.Questions),
		Answered: answered,
	}
}
