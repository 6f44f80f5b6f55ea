package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/siyamthandatsobo/ai-course-builder/internal/config"
)

// NewRouter assembles the HTTP API. The token endpoint and health check
// are public; everything under /api requires a bearer token.
func NewRouter(cfg config.ServerConfig, handler *Handler, authService *AuthService) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(120 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Post("/auth/token", TokenHandler(authService))

	r.Route("/api", func(api chi.Router) {
		api.Use(JWTMiddleware(authService))

		api.Post("/courses", handler.CreateCourse)
		api.Get("/courses", handler.ListCourses)
		api.Get("/courses/{courseID}", handler.GetCourse)

		api.Post("/ai/generate-course", handler.GenerateCourse)
		api.Post("/ai/generate-quiz", handler.GenerateQuiz)

		api.Get("/quizzes/{quizID}", handler.GetQuiz)
		api.Get("/quizzes/course/{courseID}", handler.QuizByCourse)
		api.Post("/quizzes/{quizID}/attempt", handler.SubmitAttempt)

		api.Get("/attempts", handler.ListAttempts)
	})

	return r
}
