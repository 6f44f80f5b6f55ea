// Package server exposes the course builder over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/siyamthandatsobo/ai-course-builder/internal/builder"
	"github.com/siyamthandatsobo/ai-course-builder/internal/course"
	"github.com/siyamthandatsobo/ai-course-builder/internal/inference"
)

// Handler serves the course, quiz and generation endpoints.
type Handler struct {
	repo                 course.Repository
	aiClient             inference.Client
	validate             *validator.Validate
	defaultQuestionCount int
	logger               *slog.Logger
}

func NewHandler(
	repo course.Repository,
	aiClient inference.Client,
	defaultQuestionCount int,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		repo:                 repo,
		aiClient:             aiClient,
		validate:             validator.New(),
		defaultQuestionCount: defaultQuestionCount,
		logger:               logger,
	}
}

type createCourseRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Topic       string `json:"topic" validate:"required"`
	Difficulty  string `json:"difficulty" validate:"required,oneof=beginner intermediate advanced"`
}

type generateCourseRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Topic       string `json:"topic" validate:"required"`
	Difficulty  string `json:"difficulty" validate:"required,oneof=beginner intermediate advanced"`
	LessonCount int    `json:"lesson_count" validate:"required"`
}

type generateQuizRequest struct {
	CourseID     int64 `json:"course_id" validate:"required"`
	NumQuestions int   `json:"num_questions" validate:"omitempty,min=1"`
}

type attemptRequest struct {
	Answers []string `json:"answers" validate:"required,min=1"`
}

// CreateCourse handles POST /api/courses. The course starts with no
// lessons; generation fills them in.
func (h *Handler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	var req createCourseRequest
	if !h.decode(w, r, &req) {
		return
	}

	created, err := h.repo.CreateCourse(r.Context(), course.CreateCourseInput{
		Title:       req.Title,
		Description: req.Description,
		Topic:       req.Topic,
		Difficulty:  course.Difficulty(req.Difficulty),
		CreatedBy:   UserIDFromContext(r.Context()),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, created)
}

// ListCourses handles GET /api/courses.
func (h *Handler) ListCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.repo.ListCourses(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if courses == nil {
		courses = []course.Course{}
	}
	h.writeJSON(w, http.StatusOK, courses)
}

type courseResponse struct {
	course.Course
	Lessons []course.Lesson `json:"lessons"`
}

// GetCourse handles GET /api/courses/{courseID} and returns the course
// with its lessons in reveal order.
func (h *Handler) GetCourse(w http.ResponseWriter, r *http.Request) {
	courseID, ok := h.pathID(w, r, "courseID")
	if !ok {
		return
	}

	stored, err := h.repo.GetCourse(r.Context(), courseID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	lessons, err := h.repo.LessonsByCourse(r.Context(), courseID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if lessons == nil {
		lessons = []course.Lesson{}
	}
	h.writeJSON(w, http.StatusOK, courseResponse{Course: stored, Lessons: lessons})
}

// GenerateCourse handles POST /api/ai/generate-course. The response is
// sent once the full course is generated; pacing is a client concern.
func (h *Handler) GenerateCourse(w http.ResponseWriter, r *http.Request) {
	var req generateCourseRequest
	if !h.decode(w, r, &req) {
		return
	}

	orchestrator := builder.New(h.repo, h.aiClient, builder.WithRevealDelay(0))
	generated, lessons, err := orchestrator.Generate(r.Context(), builder.GenerateRequest{
		Title:       req.Title,
		Description: req.Description,
		Topic:       req.Topic,
		Difficulty:  course.Difficulty(req.Difficulty),
		LessonCount: req.LessonCount,
		CreatedBy:   UserIDFromContext(r.Context()),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, courseResponse{Course: generated, Lessons: lessons})
}

// GenerateQuiz handles POST /api/ai/generate-quiz.
func (h *Handler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	var req generateQuizRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.NumQuestions == 0 {
		req.NumQuestions = h.defaultQuestionCount
	}

	quizID, err := builder.QuizForCourse(r.Context(), h.repo, h.aiClient, req.CourseID, req.NumQuestions)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	quiz, err := h.repo.GetQuiz(r.Context(), quizID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, quiz)
}

// GetQuiz handles GET /api/quizzes/{quizID}. Answer keys and
// explanations are never present in the response.
func (h *Handler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	quizID, ok := h.pathID(w, r, "quizID")
	if !ok {
		return
	}

	quiz, err := h.repo.GetQuiz(r.Context(), quizID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, quiz)
}

// QuizByCourse handles GET /api/quizzes/course/{courseID}.
func (h *Handler) QuizByCourse(w http.ResponseWriter, r *http.Request) {
	courseID, ok := h.pathID(w, r, "courseID")
	if !ok {
		return
	}

	quizID, _, err := h.repo.QuizByCourse(r.Context(), courseID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	quiz, err := h.repo.GetQuiz(r.Context(), quizID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, quiz)
}

// SubmitAttempt handles POST /api/quizzes/{quizID}/attempt. Grading is
// server side; the response carries the full per-question breakdown.
func (h *Handler) SubmitAttempt(w http.ResponseWriter, r *http.Request) {
	quizID, ok := h.pathID(w, r, "quizID")
	if !ok {
		return
	}
	var req attemptRequest
	if !h.decode(w, r, &req) {
		return
	}

	result, err := h.repo.SubmitAttempt(r.Context(), UserIDFromContext(r.Context()), quizID, req.Answers)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

// ListAttempts handles GET /api/attempts and returns the caller's
// attempt history, most recent first.
func (h *Handler) ListAttempts(w http.ResponseWriter, r *http.Request) {
	attempts, err := h.repo.ListAttempts(r.Context(), UserIDFromContext(r.Context()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if attempts == nil {
		attempts = []course.AttemptSummary{}
	}
	h.writeJSON(w, http.StatusOK, attempts)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return false
	}
	if err := h.validate.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			messages := make([]string, 0, len(validationErrors))
			for _, fieldError := range validationErrors {
				messages = append(messages, fieldError.Error())
			}
			h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": strings.Join(messages, ", ")})
			return false
		}
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return false
	}
	return true
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("failed to encode response", slog.Any("error", err))
	}
}

// writeError maps domain errors to HTTP statuses: bad input is 400,
// missing resources 404, failed generation 502, everything else 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var genErr *course.GenerationError
	switch {
	case course.IsValidation(err):
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case course.IsNotFound(err):
		h.writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.As(err, &genErr):
		h.writeJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
	default:
		h.logger.Error("request failed",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}
