// Package assets holds embedded markdown templates and the data
// structures they render.
package assets

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/siyamthandatsobo/ai-course-builder/internal/course"
)

//go:embed templates/course.md.go.tmpl
var fallbackCourseTemplate string

// CourseTemplate is the top-level data structure for course markdown
// templates. Quiz is nil when the course has no quiz yet.
type CourseTemplate struct {
	Course  course.Course
	Lessons []course.Lesson
	Quiz    *course.Quiz
}

// ParseCourseTemplate parses the template at templatePath, falling back
// to the embedded template when the path is empty or unreadable.
func ParseCourseTemplate(templatePath string) (*template.Template, error) {
	return parseTemplateWithFallback(templatePath, "course.md.go.tmpl", fallbackCourseTemplate)
}

func parseTemplateWithFallback(templatePath, fallbackName, fallbackTemplate string) (*template.Template, error) {
	funcMap := template.FuncMap{
		"join": strings.Join,
		"add":  func(a, b int) int { return a + b },
	}

	// First, try to read from the filesystem
	if templatePath != "" {
		if _, err := os.Stat(templatePath); err == nil {
			fileName := filepath.Base(templatePath)
			tmpl, err := template.New(fileName).
				Funcs(funcMap).
				ParseFiles(templatePath)
			if err == nil {
				return tmpl, nil
			}
			slog.Default().Warn("failed to parse a templatePath",
				slog.String("templatePath", templatePath),
				slog.Any("error", err),
			)
		}
	}

	// Fall back to embedded assets - use the embedded template's name
	tmpl, err := template.New(fallbackName).
		Funcs(funcMap).
		Parse(fallbackTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded template: %w", err)
	}

	return tmpl, nil
}
