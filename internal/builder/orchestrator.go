// Package builder drives the course generation sequence: create the
// course record, request the full lesson list from the content
// generation service, reveal the lessons one at a time, and optionally
// generate a quiz afterwards.
package builder

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/siyamthandatsobo/ai-course-builder/internal/course"
	"github.com/siyamthandatsobo/ai-course-builder/internal/inference"
)

// Stage names one state of the generation sequence.
type Stage string

const (
	StageIdle              Stage = "idle"
	StageCreatingCourse    Stage = "creating_course"
	StageRequestingLessons Stage = "requesting_lessons"
	StageRevealing         Stage = "revealing"
	StageReady             Stage = "ready"
	StageRequestingQuiz    Stage = "requesting_quiz"
	StageQuizReady         Stage = "quiz_ready"
	StageFailed            Stage = "failed"
)

// ProgressEvent is emitted on every stage transition and on every lesson
// reveal. Lesson is set only for reveal events.
type ProgressEvent struct {
	Stage         Stage
	RevealedCount int
	TotalCount    int
	Lesson        *course.Lesson
}

// GenerateRequest is a validated course generation request. Title and
// Topic are required; LessonCount must be one of course.LessonCounts.
type GenerateRequest struct {
	Title       string
	Topic       string
	Description string
	Difficulty  course.Difficulty
	LessonCount int
	CreatedBy   int64
}

// DefaultRevealDelay paces lesson reveals. The full lesson list is
// already in hand when revealing starts; the delay is presentation
// pacing, not a network wait.
const DefaultRevealDelay = 400 * time.Millisecond

// ErrGenerationInProgress is returned when Generate is called while a
// previous generation sequence is still running.
var ErrGenerationInProgress = &course.ValidationError{Message: "a generation is already in progress"}

// ErrNoCourse is returned when GenerateQuiz is called before a course
// has been generated.
var ErrNoCourse = &course.ValidationError{Message: "no generated course to build a quiz for"}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithRevealDelay overrides the inter-reveal delay. Zero disables pacing.
func WithRevealDelay(d time.Duration) Option {
	return func(o *Orchestrator) {
		o.revealDelay = d
	}
}

// WithProgress registers a callback invoked on every stage transition.
func WithProgress(fn func(ProgressEvent)) Option {
	return func(o *Orchestrator) {
		o.progress = fn
	}
}

// Orchestrator runs at most one generation sequence at a time. Each
// orchestrator owns its state exclusively; concurrent sessions use
// separate instances.
type Orchestrator struct {
	repo        course.Repository
	ai          inference.Client
	revealDelay time.Duration
	progress    func(ProgressEvent)

	mu         sync.Mutex
	stage      Stage
	generating bool
	cancel     context.CancelFunc
	result     course.Course
	lessons    []course.Lesson
	quizID     int64
}

// New creates an Orchestrator in the Idle stage.
func New(repo course.Repository, ai inference.Client, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		repo:        repo,
		ai:          ai,
		revealDelay: DefaultRevealDelay,
		stage:       StageIdle,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Stage returns the current stage.
func (o *Orchestrator) Stage() Stage {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.stage
}

// Course returns the generated course once the sequence reached Ready.
func (o *Orchestrator) Course() (course.Course, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.result, o.result.ID != 0
}

// QuizID returns the generated quiz id, or zero if none was generated.
func (o *Orchestrator) QuizID() int64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.quizID
}

// Cancel tears down a pending reveal schedule. Safe to call from any
// state, including terminal ones, as a no-op.
func (o *Orchestrator) Cancel() {
	o.mu.Lock()
	cancel := o.cancel
	o.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Generate runs the full sequence: validate, create the course record,
// fetch the ordered lesson list in one call, persist it, then reveal the
// lessons one at a time with the configured delay. It blocks until the
// sequence reaches Ready, fails, or ctx is cancelled. Validation errors
// are returned before any repository or service call is made.
func (o *Orchestrator) Generate(ctx context.Context, req GenerateRequest) (course.Course, []course.Lesson, error) {
	if err := validateRequest(&req); err != nil {
		return course.Course{}, nil, err
	}

	ctx, err := o.begin(ctx)
	if err != nil {
		return course.Course{}, nil, err
	}
	defer o.end()

	o.setStage(StageCreatingCourse, 0, req.LessonCount, nil)
	created, err := o.repo.CreateCourse(ctx, course.CreateCourseInput{
		Title:       req.Title,
		Description: req.Description,
		Topic:       req.Topic,
		Difficulty:  req.Difficulty,
		CreatedBy:   req.CreatedBy,
	})
	if err != nil {
		o.fail(req.LessonCount)
		return course.Course{}, nil, fmt.Errorf("repo.CreateCourse() > %w", err)
	}

	o.setStage(StageRequestingLessons, 0, req.LessonCount, nil)
	response, err := o.ai.GenerateLessons(ctx, inference.GenerateLessonsRequest{
		Topic:       req.Topic,
		Difficulty:  string(req.Difficulty),
		LessonCount: req.LessonCount,
	})
	if err != nil {
		o.fail(req.LessonCount)
		return course.Course{}, nil, classifyServiceError("ai.GenerateLessons()", err)
	}
	lessons, err := lessonsFromDrafts(response.Lessons, req.LessonCount)
	if err != nil {
		o.fail(req.LessonCount)
		return course.Course{}, nil, err
	}
	if err := o.repo.ReplaceLessons(ctx, created.ID, lessons); err != nil {
		o.fail(req.LessonCount)
		return course.Course{}, nil, fmt.Errorf("repo.ReplaceLessons() > %w", err)
	}

	// The lessons are fully known here. The reveal loop is one timer
	// sequence so cancellation stops every remaining emission at once;
	// no further requests are issued per lesson.
	if err := o.reveal(ctx, lessons); err != nil {
		o.fail(len(lessons))
		return course.Course{}, nil, err
	}

	o.mu.Lock()
	o.result = created
	o.lessons = lessons
	o.mu.Unlock()
	o.setStage(StageReady, len(lessons), len(lessons), nil)
	return created, lessons, nil
}

// GenerateQuiz requests a quiz for the generated course. Valid only once
// the sequence reached Ready. A failure here leaves the revealed course
// and lessons intact and the orchestrator in Ready.
func (o *Orchestrator) GenerateQuiz(ctx context.Context, questionCount int) (int64, error) {
	if questionCount <= 0 {
		return 0, &course.ValidationError{Message: "question count must be positive"}
	}

	o.mu.Lock()
	if o.generating {
		o.mu.Unlock()
		return 0, ErrGenerationInProgress
	}
	if (o.stage != StageReady && o.stage != StageQuizReady) || o.result.ID == 0 {
		o.mu.Unlock()
		return 0, ErrNoCourse
	}
	o.generating = true
	generated := o.result
	lessons := o.lessons
	o.mu.Unlock()
	defer o.end()

	o.setStage(StageRequestingQuiz, len(lessons), len(lessons), nil)

	contents := make([]string, 0, len(lessons))
	for _, lesson := range lessons {
		contents = append(contents, lesson.Content)
	}
	response, err := o.ai.GenerateQuiz(ctx, inference.GenerateQuizRequest{
		CourseContent: strings.Join(contents, " "),
		QuestionCount: questionCount,
	})
	if err != nil {
		o.setStage(StageReady, len(lessons), len(lessons), nil)
		return 0, classifyServiceError("ai.GenerateQuiz()", err)
	}
	questions, err := questionsFromDrafts(response.Questions)
	if err != nil {
		o.setStage(StageReady, len(lessons), len(lessons), nil)
		return 0, err
	}

	quizID, err := o.repo.CreateQuiz(ctx, generated.ID, generated.Title+" — Quiz", questions)
	if err != nil {
		o.setStage(StageReady, len(lessons), len(lessons), nil)
		return 0, fmt.Errorf("repo.CreateQuiz() > %w", err)
	}

	o.mu.Lock()
	o.quizID = quizID
	o.mu.Unlock()
	o.setStage(StageQuizReady, len(lessons), len(lessons), nil)
	return quizID, nil
}

// begin acquires the generation-in-progress guard and installs a cancel
// function for the sequence.
func (o *Orchestrator) begin(ctx context.Context) (context.Context, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.generating {
		return nil, ErrGenerationInProgress
	}
	ctx, cancel := context.WithCancel(ctx)
	o.generating = true
	o.cancel = cancel
	o.quizID = 0
	o.result = course.Course{}
	o.lessons = nil
	return ctx, nil
}

func (o *Orchestrator) end() {
	o.mu.Lock()
	cancel := o.cancel
	o.generating = false
	o.cancel = nil
	o.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

func (o *Orchestrator) fail(total int) {
	o.setStage(StageFailed, 0, total, nil)
}

func (o *Orchestrator) setStage(stage Stage, revealed, total int, lesson *course.Lesson) {
	o.mu.Lock()
	o.stage = stage
	progress := o.progress
	o.mu.Unlock()
	if progress != nil {
		progress(ProgressEvent{Stage: stage, RevealedCount: revealed, TotalCount: total, Lesson: lesson})
	}
}

// reveal emits the already-known lessons in order, one per delay tick.
func (o *Orchestrator) reveal(ctx context.Context, lessons []course.Lesson) error {
	if o.revealDelay <= 0 {
		for i := range lessons {
			o.setStage(StageRevealing, i+1, len(lessons), &lessons[i])
		}
		return nil
	}

	timer := time.NewTimer(o.revealDelay)
	defer timer.Stop()
	for i := range lessons {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
		// A cancel that raced the timer still stops the reveal.
		if err := ctx.Err(); err != nil {
			return err
		}
		o.setStage(StageRevealing, i+1, len(lessons), &lessons[i])
		if i < len(lessons)-1 {
			timer.Reset(o.revealDelay)
		}
	}
	return nil
}

func validateRequest(req *GenerateRequest) error {
	req.Title = strings.TrimSpace(req.Title)
	req.Topic = strings.TrimSpace(req.Topic)
	if req.Title == "" {
		return &course.ValidationError{Message: "course title is required"}
	}
	if req.Topic == "" {
		return &course.ValidationError{Message: "course topic is required"}
	}
	if _, err := course.ParseDifficulty(string(req.Difficulty)); err != nil {
		return err
	}
	if !course.ValidLessonCount(req.LessonCount) {
		return &course.ValidationError{
			Message: fmt.Sprintf("lesson count must be one of %v", course.LessonCounts),
		}
	}
	return nil
}

// lessonsFromDrafts checks the generated lesson list against the request
// and converts it. The engine never reorders or deduplicates lessons.
func lessonsFromDrafts(drafts []inference.LessonDraft, want int) ([]course.Lesson, error) {
	if len(drafts) != want {
		return nil, &course.GenerationError{
			Reason: fmt.Sprintf("asked for %d lessons, model returned %d", want, len(drafts)),
		}
	}
	lessons := make([]course.Lesson, 0, len(drafts))
	for i, draft := range drafts {
		if strings.TrimSpace(draft.Title) == "" || strings.TrimSpace(draft.Content) == "" {
			return nil, &course.GenerationError{Reason: fmt.Sprintf("lesson %d is missing a title or content", i+1)}
		}
		lessons = append(lessons, course.Lesson{
			Title:         draft.Title,
			Content:       draft.Content,
			DurationLabel: draft.Duration,
		})
	}
	return lessons, nil
}

// questionsFromDrafts validates generated questions: four options each
// and a correct answer that repeats one option verbatim, since grading
// compares option text.
func questionsFromDrafts(drafts []inference.QuestionDraft) ([]course.Question, error) {
	questions := make([]course.Question, 0, len(drafts))
	for i, draft := range drafts {
		if len(draft.Options) != course.OptionsPerQuestion {
			return nil, &course.GenerationError{
				Reason: fmt.Sprintf("question %d has %d options, want %d", i+1, len(draft.Options), course.OptionsPerQuestion),
			}
		}
		found := false
		for _, option := range draft.Options {
			if option == draft.CorrectAnswer {
				found = true
				break
			}
		}
		if !found {
			return nil, &course.GenerationError{
				Reason: fmt.Sprintf("question %d's correct answer is not among its options", i+1),
			}
		}
		questions = append(questions, course.Question{
			Text:          draft.QuestionText,
			Options:       course.OptionList(draft.Options),
			CorrectAnswer: draft.CorrectAnswer,
			Explanation:   draft.Explanation,
		})
	}
	return questions, nil
}

// classifyServiceError wraps untyped failures as service errors while
// letting already-classified domain errors pass through.
func classifyServiceError(op string, err error) error {
	var genErr *course.GenerationError
	if course.IsValidation(err) || course.IsNotFound(err) || errors.As(err, &genErr) {
		return err
	}
	return &course.ServiceError{Op: op, Err: err}
}
