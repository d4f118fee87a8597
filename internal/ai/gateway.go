package ai

import (
	"context"
	"errors"
	"fmt"
)

type Role string

const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
	RoleModel  Role = "model"
)

// Message is a single chat turn sent to the model gateway.
type Message struct {
	Role    Role
	Content string
}

// ChatConfig carries per-call generation settings.
type ChatConfig struct {
	Temperature float32
	RequestID   string
}

// Gateway is the model provider used by the evaluation pipelines.
// Implementations own transport concerns such as retries and quotas.
type Gateway interface {
	Chat(ctx context.Context, messages []Message, cfg ChatConfig) (string, error)
	Model() string
}

// ErrModelCall matches every error produced when the gateway returned no text.
var ErrModelCall = errors.New("model call failed")

// ModelCallError is returned by the pipelines when the gateway call itself failed.
type ModelCallError struct {
	Component string
	RequestID string
	Err       error
}

func (e *ModelCallError) Error() string {
	return fmt.Sprintf("%s: %s (request %s): %v", e.Component, ErrModelCall, e.RequestID, e.Err)
}

func (e *ModelCallError) Unwrap() error { return e.Err }

func (e *ModelCallError) Is(target error) bool { return target == ErrModelCall }
