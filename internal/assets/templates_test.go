package assets

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siyamthandatsobo/ai-course-builder/internal/course"
)

func TestParseCourseTemplate(t *testing.T) {
	data := CourseTemplate{
		Course: course.Course{
			Title:      "Go Basics",
			Topic:      "golang",
			Difficulty: course.DifficultyBeginner,
		},
		Lessons: []course.Lesson{
			{Title: "Introduction", Content: "Go is a compiled language.", DurationLabel: "10 min"},
			{Title: "Types", Content: "Go is statically typed."},
		},
	}

	tests := []struct {
		name             string
		templatePath     string
		wantTemplateName string
		wantContains     []string
	}{
		{
			name: "uses filesystem template when available",
			templatePath: func() string {
				templatePath := filepath.Join(t.TempDir(), "custom.md.go.tmpl")
				content := `Custom: {{ .Course.Title }} ({{ len .Lessons }} lessons)`
				require.NoError(t, os.WriteFile(templatePath, []byte(content), 0644))
				return templatePath
			}(),
			wantTemplateName: "custom.md.go.tmpl",
			wantContains:     []string{"Custom: Go Basics (2 lessons)"},
		},
		{
			name:             "uses embedded template when file doesn't exist",
			templatePath:     "/non/existent/invalid.md.go.tmpl",
			wantTemplateName: "course.md.go.tmpl",
			wantContains: []string{
				"# Go Basics",
				"## Lesson 1: Introduction",
				"_10 min_",
				"## Lesson 2: Types",
				"Go is statically typed.",
			},
		},
		{
			name:             "uses embedded template when path is empty",
			templatePath:     "",
			wantTemplateName: "course.md.go.tmpl",
			wantContains:     []string{"# Go Basics"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, err := ParseCourseTemplate(tt.templatePath)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTemplateName, tmpl.Name())

			var buf bytes.Buffer
			require.NoError(t, tmpl.Execute(&buf, data))
			for _, want := range tt.wantContains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestParseCourseTemplate_withQuiz(t *testing.T) {
	data := CourseTemplate{
		Course: course.Course{Title: "Go Basics", Topic: "golang", Difficulty: course.DifficultyBeginner},
		Lessons: []course.Lesson{
			{Title: "Introduction", Content: "Go is a compiled language."},
		},
		Quiz: &course.Quiz{
			Title: "Go Basics — Quiz",
			Questions: []course.Question{
				{
					Text:          "Is Go compiled?",
					Options:       course.OptionList{"yes", "no", "sometimes", "only on linux"},
					CorrectAnswer: "yes",
					Explanation:   "The gc toolchain compiles to native code.",
				},
			},
		},
	}

	tmpl, err := ParseCourseTemplate("")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tmpl.Execute(&buf, data))
	rendered := buf.String()
	assert.Contains(t, rendered, "# Go Basics — Quiz")
	assert.Contains(t, rendered, "### Question 1")
	assert.Contains(t, rendered, "**Answer:** yes")
	assert.True(t, strings.Contains(rendered, "The gc toolchain compiles to native code."))
}
