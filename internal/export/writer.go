// Package export renders generated courses to markdown files and
// optionally converts them to PDF.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/siyamthandatsobo/ai-course-builder/internal/assets"
	"github.com/siyamthandatsobo/ai-course-builder/internal/course"
)

// Writer renders a stored course through the course markdown template.
type Writer struct {
	repo         course.Repository
	templatePath string
}

func NewWriter(repo course.Repository, templatePath string) *Writer {
	return &Writer{
		repo:         repo,
		templatePath: templatePath,
	}
}

// Options controls what a course export includes.
type Options struct {
	OutputDirectory string
	IncludeQuiz     bool
	GeneratePDF     bool
}

// WriteCourse writes the course as <slug>.md under the output directory
// and returns the markdown path. With GeneratePDF set it also renders a
// PDF next to the markdown file.
func (w *Writer) WriteCourse(ctx context.Context, courseID int64, opts Options) (string, error) {
	loaded, err := w.repo.GetCourse(ctx, courseID)
	if err != nil {
		return "", fmt.Errorf("repo.GetCourse() > %w", err)
	}
	lessons, err := w.repo.LessonsByCourse(ctx, courseID)
	if err != nil {
		return "", fmt.Errorf("repo.LessonsByCourse() > %w", err)
	}

	templateData := assets.CourseTemplate{
		Course:  loaded,
		Lessons: lessons,
	}
	if opts.IncludeQuiz {
		quizID, _, err := w.repo.QuizByCourse(ctx, courseID)
		switch {
		case course.IsNotFound(err):
			// A course without a quiz still exports.
		case err != nil:
			return "", fmt.Errorf("repo.QuizByCourse() > %w", err)
		default:
			quiz, err := w.repo.GetQuiz(ctx, quizID)
			if err != nil {
				return "", fmt.Errorf("repo.GetQuiz() > %w", err)
			}
			templateData.Quiz = &quiz
		}
	}

	if err := os.MkdirAll(opts.OutputDirectory, 0755); err != nil {
		return "", fmt.Errorf("os.MkdirAll(%s) > %w", opts.OutputDirectory, err)
	}

	outputFilename := filepath.Join(opts.OutputDirectory, slugify(loaded.Title)+".md")
	output, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("os.Create(%s) > %w", outputFilename, err)
	}
	defer func() {
		_ = output.Close()
	}()

	tmpl, err := assets.ParseCourseTemplate(w.templatePath)
	if err != nil {
		return "", fmt.Errorf("assets.ParseCourseTemplate(%s) > %w", w.templatePath, err)
	}
	if err := tmpl.Execute(output, templateData); err != nil {
		return "", fmt.Errorf("tmpl.Execute(%s) > %w", outputFilename, err)
	}

	if opts.GeneratePDF {
		if _, err := ConvertMarkdownToPDF(outputFilename); err != nil {
			return "", fmt.Errorf("ConvertMarkdownToPDF(%s) > %w", outputFilename, err)
		}
	}

	return outputFilename, nil
}

// slugify turns a course title into a safe file name.
func slugify(title string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteRune('-')
			lastDash = true
		}
	}
	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		return "course"
	}
	return slug
}
