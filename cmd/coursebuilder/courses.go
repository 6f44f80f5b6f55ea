package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/siyamthandatsobo/ai-course-builder/internal/export"
)

func newCoursesCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "courses",
		Short: "Course commands",
	}
	command.AddCommand(newCoursesListCommand())
	command.AddCommand(newCoursesExportCommand())
	return command
}

func newCoursesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored courses",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			db, repo, err := openRepository(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			courses, err := repo.ListCourses(cmd.Context())
			if err != nil {
				return fmt.Errorf("repo.ListCourses() > %w", err)
			}
			if len(courses) == 0 {
				cmd.Println("No courses yet. Create one with: coursebuilder generate")
				return nil
			}
			for _, c := range courses {
				cmd.Printf("%d\t%s\t%s\t%s\n", c.ID, c.Title, c.Topic, c.Difficulty)
			}
			return nil
		},
	}
}

func newCoursesExportCommand() *cobra.Command {
	var (
		includeQuiz     bool
		generatePDF     bool
		outputDirectory string
	)

	command := &cobra.Command{
		Use:   "export <courseID>",
		Short: "Export a course to markdown, optionally with its quiz and a PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			courseID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid course id %q: %w", args[0], err)
			}

			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			db, repo, err := openRepository(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			if outputDirectory == "" {
				outputDirectory = cfg.Outputs.CourseDirectory
			}
			writer := export.NewWriter(repo, cfg.Templates.CourseTemplate)
			outputFilename, err := writer.WriteCourse(cmd.Context(), courseID, export.Options{
				OutputDirectory: outputDirectory,
				IncludeQuiz:     includeQuiz,
				GeneratePDF:     generatePDF,
			})
			if err != nil {
				return fmt.Errorf("writer.WriteCourse() > %w", err)
			}
			cmd.Printf("Exported course to %s\n", outputFilename)
			return nil
		},
	}

	flags := command.Flags()
	flags.BoolVar(&includeQuiz, "quiz", false, "include the course quiz in the export")
	flags.BoolVar(&generatePDF, "pdf", false, "also render the markdown to a PDF")
	flags.StringVar(&outputDirectory, "output", "", "output directory (defaults to outputs.course_directory)")

	return command
}
