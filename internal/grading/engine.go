// Package grading scores a completed quiz attempt. Grading is a pure
// function of the questions and the submitted answers, so the server and
// any offline grader produce bit-identical results for the same input.
package grading

import "fmt"

// Question is the grading view of a quiz question: prompt, answer key
// and explanation. Option order is irrelevant here; answers are compared
// by option text.
type Question struct {
	Text          string `json:"question_text"`
	CorrectAnswer string `json:"correct_answer"`
	Explanation   string `json:"explanation"`
}

// QuestionResult is the per-question verdict, in question order.
type QuestionResult struct {
	QuestionText  string `json:"question_text"`
	YourAnswer    string `json:"your_answer"`
	CorrectAnswer string `json:"correct_answer"`
	Explanation   string `json:"explanation"`
	IsCorrect     bool   `json:"is_correct"`
}

// Result is the scored outcome of one attempt. Never mutated after
// creation.
type Result struct {
	ScorePercent int              `json:"score"`
	CorrectCount int              `json:"correct"`
	TotalCount   int              `json:"total"`
	PerQuestion  []QuestionResult `json:"results"`
}

// ErrEmptyQuiz is returned when grading is asked for a quiz with no
// questions. That is a caller configuration error, not a valid quiz.
var ErrEmptyQuiz = fmt.Errorf("quiz has no questions")

// Grade scores answers against questions. Answers are matched by exact
// option text, one answer per question in question order. The percent
// score is round-half-up on the exact rational 100*correct/total.
func Grade(questions []Question, answers []string) (Result, error) {
	if len(questions) == 0 {
		return Result{}, ErrEmptyQuiz
	}
	if len(answers) != len(questions) {
		return Result{}, fmt.Errorf("got %d answers for %d questions", len(answers), len(questions))
	}

	perQuestion := make([]QuestionResult, 0, len(questions))
	correct := 0
	for i, q := range questions {
		isCorrect := answers[i] == q.CorrectAnswer
		if isCorrect {
			correct++
		}
		perQuestion = append(perQuestion, QuestionResult{
			QuestionText:  q.Text,
			YourAnswer:    answers[i],
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
			IsCorrect:     isCorrect,
		})
	}

	total := len(questions)
	return Result{
		ScorePercent: roundPercent(correct, total),
		CorrectCount: correct,
		TotalCount:   total,
		PerQuestion:  perQuestion,
	}, nil
}

// roundPercent computes round(100*correct/total) with half rounded up,
// in integer arithmetic so the result is exact.
func roundPercent(correct, total int) int {
	return (200*correct + total) / (2 * total)
}
