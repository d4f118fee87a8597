// Package pipeline runs one model call through extraction, decoding,
// normalization and fallback, tracking the stage it ended in.
package pipeline

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/spigell/hh-evaluator/internal/ai"
	"github.com/spigell/hh-evaluator/internal/llmjson"
	"github.com/spigell/hh-evaluator/internal/logger"
)

type Stage string

const (
	StagePromptBuilt      Stage = "prompt_built"
	StageAwaitingModel    Stage = "awaiting_model"
	StageModelCallFailed  Stage = "model_call_failed"
	StageResponseReceived Stage = "response_received"
	StageExtractionFailed Stage = "extraction_failed"
	StageParseFailed      Stage = "parse_failed"
	StageNormalized       Stage = "normalized"
	StagePolicyEnforced   Stage = "policy_enforced"
)

const defaultMaxLogLength = 200

// Task describes one structured-output request.
type Task[T any] struct {
	Component   string
	RequestID   string
	Messages    []ai.Message
	Temperature float32

	// Normalize maps an arbitrary decoded object onto a valid T.
	Normalize func(data map[string]any) T
	// Fallback builds a valid T when nothing usable came back.
	Fallback func(raw string) T
}

// Outcome is the value produced by Run together with the stage it reached.
type Outcome[T any] struct {
	Value T
	Stage Stage
	Raw   string
}

// Degraded reports whether the value came from the fallback builder.
func (o Outcome[T]) Degraded() bool {
	return o.Stage == StageExtractionFailed || o.Stage == StageParseFailed
}

// Runner executes tasks against a gateway.
type Runner struct {
	gateway   ai.Gateway
	logger    *zap.Logger
	maxLogLen int
}

func NewRunner(gateway ai.Gateway, log *zap.Logger, maxLogLength int) *Runner {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	return &Runner{gateway: gateway, logger: logger.With(log), maxLogLen: maxLogLength}
}

// Run performs the gateway call and turns its text into a T.
// The only error it returns is *ai.ModelCallError.
func Run[T any](ctx context.Context, r *Runner, log *zap.Logger, task Task[T]) (Outcome[T], error) {
	if log == nil {
		log = r.logger
	}

	log.Debug("model request",
		zap.String(logger.FieldStage, string(StageAwaitingModel)),
		zap.Int("messages", len(task.Messages)),
	)

	raw, err := r.gateway.Chat(ctx, task.Messages, ai.ChatConfig{
		Temperature: task.Temperature,
		RequestID:   task.RequestID,
	})
	if err != nil {
		return Outcome[T]{Stage: StageModelCallFailed}, &ai.ModelCallError{
			Component: task.Component,
			RequestID: task.RequestID,
			Err:       err,
		}
	}

	log.Debug("model response", append(
		logger.Preview("response", raw, r.maxLogLen),
		zap.String(logger.FieldStage, string(StageResponseReceived)),
	)...)

	data, err := llmjson.Decode(raw)
	if err != nil {
		stage := StageParseFailed
		if errors.Is(err, llmjson.ErrNoCandidate) {
			stage = StageExtractionFailed
		}
		log.Warn("model response is not usable json, using fallback",
			zap.String(logger.FieldStage, string(stage)),
			zap.Error(err),
		)
		return Outcome[T]{Value: task.Fallback(raw), Stage: stage, Raw: raw}, nil
	}

	return Outcome[T]{Value: task.Normalize(data), Stage: StageNormalized, Raw: raw}, nil
}
