// Package openai implements inference.Client against the OpenAI chat
// completions API.
package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"

	"github.com/siyamthandatsobo/ai-course-builder/internal/course"
	"github.com/siyamthandatsobo/ai-course-builder/internal/inference"
)

type Client struct {
	httpClient       *resty.Client
	model            string
	maxRetryAttempts uint
}

var _ inference.Client = (*Client)(nil)

func NewClient(apiKey, model string, retryAttempts uint) *Client {
	client := resty.New()
	client.SetBaseURL("https://api.openai.com/v1")
	client.SetHeader("Authorization", "Bearer "+apiKey)
	client.SetHeader("Content-Type", "application/json")

	return &Client{
		httpClient:       client,
		model:            model,
		maxRetryAttempts: retryAttempts,
	}
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

// GetModel returns the model name configured for this client
func (client *Client) GetModel() string {
	return client.model
}

type ChatCompletionRequest struct {
	Model          string          `json:"model"`
	Messages       []Message       `json:"messages"`
	Temperature    float32         `json:"temperature,omitempty"`
	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`
}

type ResponseFormat struct {
	Type string `json:"type"`
}

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type ChatCompletionResponse struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Created int64    `json:"created"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

type Choice struct {
	Index        int           `json:"index"`
	Message      ChoiceMessage `json:"message"`
	FinishReason string        `json:"finish_reason"`
}

type ChoiceMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// isRetryableError determines if an error should trigger a retry
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	// Retry on JSON parsing errors as they might be due to incomplete responses
	errStr := err.Error()
	if strings.Contains(errStr, "json.Unmarshal") || strings.Contains(errStr, "unexpected end of JSON input") {
		return true
	}

	// Retry on network-related errors
	if strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "i/o timeout") {
		return true
	}

	// Retry on 5xx errors (server errors)
	if strings.Contains(errStr, "response error 5") {
		return true
	}

	// Retry on rate limiting (429)
	if strings.Contains(errStr, "response error 429") {
		return true
	}

	return false
}

const lessonSystemPrompt = `You are an expert course creator. Always respond with valid JSON only.

Return JSON in this exact format:
{
  "lessons": [
    {
      "title": "lesson title",
      "content": "full lesson content in markdown, at least 3 paragraphs",
      "duration": "X min"
    }
  ]
}
No text outside the JSON. The "lessons" array must contain exactly the requested number of lessons, in teaching order.`

const quizSystemPrompt = `You are an expert quiz creator. Always respond with valid JSON only.

Return JSON in this exact format:
{
  "questions": [
    {
      "question_text": "the question",
      "options": ["A", "B", "C", "D"],
      "correct_answer": "the correct option text",
      "explanation": "why this is correct"
    }
  ]
}
No text outside the JSON. Every question must have exactly 4 options and "correct_answer" must repeat one option verbatim.`

// GenerateLessons implements the inference.Client interface
func (client *Client) GenerateLessons(
	ctx context.Context,
	params inference.GenerateLessonsRequest,
) (inference.GenerateLessonsResponse, error) {
	var result inference.GenerateLessonsResponse
	if err := retry.Do(
		func() error {
			response, err := client.generateLessons(ctx, params)
			if err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			result = response
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(client.maxRetryAttempts+1),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	); err != nil {
		return inference.GenerateLessonsResponse{}, err
	}
	if len(result.Lessons) == 0 {
		return inference.GenerateLessonsResponse{}, &course.GenerationError{Reason: "model returned no lessons"}
	}
	return result, nil
}

func (client *Client) generateLessons(
	ctx context.Context,
	params inference.GenerateLessonsRequest,
) (inference.GenerateLessonsResponse, error) {
	userMessage := fmt.Sprintf(
		"Create a %s level course on '%s' with exactly %d lessons.",
		params.Difficulty, params.Topic, params.LessonCount,
	)

	content, err := client.complete(ctx, lessonSystemPrompt, userMessage, 0.7)
	if err != nil {
		return inference.GenerateLessonsResponse{}, err
	}

	var decoded inference.GenerateLessonsResponse
	if err := json.NewDecoder(strings.NewReader(content)).Decode(&decoded); err != nil {
		slog.Default().Error("Failed to parse OpenAI lesson response as JSON",
			"topic", params.Topic,
			"error", err)
		return inference.GenerateLessonsResponse{}, fmt.Errorf("json.Unmarshal(%s) > %w", content, err)
	}
	return decoded, nil
}

// GenerateQuiz implements the inference.Client interface
func (client *Client) GenerateQuiz(
	ctx context.Context,
	params inference.GenerateQuizRequest,
) (inference.GenerateQuizResponse, error) {
	var result inference.GenerateQuizResponse
	if err := retry.Do(
		func() error {
			response, err := client.generateQuiz(ctx, params)
			if err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			result = response
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(client.maxRetryAttempts+1),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	); err != nil {
		return inference.GenerateQuizResponse{}, err
	}
	if len(result.Questions) == 0 {
		return inference.GenerateQuizResponse{}, &course.GenerationError{Reason: "model returned no questions"}
	}
	return result, nil
}

func (client *Client) generateQuiz(
	ctx context.Context,
	params inference.GenerateQuizRequest,
) (inference.GenerateQuizResponse, error) {
	courseContent := params.CourseContent
	if len(courseContent) > inference.MaxQuizContextChars {
		courseContent = courseContent[:inference.MaxQuizContextChars]
	}
	userMessage := fmt.Sprintf(
		"Create %d multiple choice questions based on this content:\n%s",
		params.QuestionCount, courseContent,
	)

	content, err := client.complete(ctx, quizSystemPrompt, userMessage, 0.3)
	if err != nil {
		return inference.GenerateQuizResponse{}, err
	}

	var decoded inference.GenerateQuizResponse
	if err := json.NewDecoder(strings.NewReader(content)).Decode(&decoded); err != nil {
		slog.Default().Error("Failed to parse OpenAI quiz response as JSON",
			"questionCount", params.QuestionCount,
			"error", err)
		return inference.GenerateQuizResponse{}, fmt.Errorf("json.Unmarshal(%s) > %w", content, err)
	}
	return decoded, nil
}

// complete runs one chat completion and returns the message content.
func (client *Client) complete(ctx context.Context, systemPrompt, userMessage string, temperature float32) (string, error) {
	requestBody := ChatCompletionRequest{
		Model:          client.model,
		Temperature:    temperature,
		ResponseFormat: &ResponseFormat{Type: "json_object"},
		Messages: []Message{
			{Role: RoleSystem, Content: systemPrompt},
			{Role: RoleUser, Content: userMessage},
		},
	}

	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(requestBody).
		SetResult(&ChatCompletionResponse{}).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return "", fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}

	responseBody := response.Result().(*ChatCompletionResponse)
	if responseBody == nil || len(responseBody.Choices) == 0 {
		return "", fmt.Errorf("empty response body or choices: %s", response.String())
	}

	content := responseBody.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("empty response content: %s", response.String())
	}
	slog.Default().Debug("openai response content",
		"request", requestBody,
		"response", responseBody,
	)
	return content, nil
}
