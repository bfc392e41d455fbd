package openai

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/at-ishikawa/sregpt/internal/inference"
	"github.com/google/uuid"
	"resty.dev/v3"
)

const DefaultBaseURL = "https://api.openai.com/v1"

type Client struct {
	httpClient *resty.Client
}

var _ inference.Client = (*Client)(nil)

func NewClient(apiKey, baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("Authorization", "Bearer "+apiKey)
	client.SetHeader("Content-Type", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &Client{
		httpClient: client,
	}
}

func (client Client) Close() error {
	return client.httpClient.Close()
}

type ChatCompletionRequest struct {
	Model       string              `json:"model"`
	Messages    []inference.Message `json:"messages"`
	Temperature float32             `json:"temperature,omitempty"`
}

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
	Role    inference.Role `json:"role"`
	Content string         `json:"content"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Complete implements the inference.Client interface
func (client *Client) Complete(ctx context.Context, params inference.CompleteRequest) (string, error) {
	requestBody := ChatCompletionRequest{
		Model:       params.Model,
		Messages:    params.Exchange.Messages,
		Temperature: inference.Temperature,
	}

	requestID := uuid.New().String()
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetHeader("X-Client-Request-Id", requestID).
		SetBody(requestBody).
		SetResult(&ChatCompletionResponse{}).
		Post("/chat/completions")
	if err != nil {
		return "", &inference.ServiceError{Err: fmt.Errorf("httpClient.Post(requestID=%s) > %w", requestID, err)}
	}
	if response.IsError() {
		return "", &inference.ServiceError{
			StatusCode: response.StatusCode(),
			Body:       response.String(),
		}
	}

	responseBody, _ := response.Result().(*ChatCompletionResponse)
	if responseBody == nil || len(responseBody.Choices) == 0 {
		return "", &inference.ServiceError{
			StatusCode: response.StatusCode(),
			Err:        fmt.Errorf("empty response body or choices: %s", response.String()),
		}
	}

	content := responseBody.Choices[0].Message.Content
	slog.Default().Debug("chat completion response",
		"requestID", requestID,
		"model", responseBody.Model,
		"finishReason", responseBody.Choices[0].FinishReason,
		"totalTokens", responseBody.Usage.TotalTokens,
		"contentLength", len(content),
	)
	return content, nil
}
