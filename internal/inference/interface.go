package inference

import (
	"context"
	"fmt"
)

//go:generate mockgen -source=interface.go -destination=../mocks/inference/mock_client.go -package=mock_inference

// Client interface defines the methods for AI inference operations
type Client interface {
	Complete(ctx context.Context, params CompleteRequest) (string, error)
}

// CompleteRequest holds the model and the exchange sent to the completion service
type CompleteRequest struct {
	Model    string
	Exchange Exchange
}

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single role-tagged chat message
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

const (
	DefaultModel = "gpt-4o-mini"

	// Temperature is the sampling temperature used for every completion.
	Temperature float32 = 0.2
)

// ServiceError is returned when the remote completion service cannot produce a completion.
type ServiceError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("completion service: %v", e.Err)
	}
	return fmt.Sprintf("completion service: response error %d: %s", e.StatusCode, e.Body)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}
