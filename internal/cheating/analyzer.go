package cheating

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spigell/hh-evaluator/internal/ai"
	"github.com/spigell/hh-evaluator/internal/logger"
	"github.com/spigell/hh-evaluator/internal/pipeline"
)

const (
	component = "cheating"

	defaultTemperature = 0.1
)

type Config struct {
	Temperature  float32
	MaxLogLength int
}

// Analyzer runs the cheating-detection pipeline. It holds no per-request
// state and is safe for concurrent use.
type Analyzer struct {
	runner      *pipeline.Runner
	logger      *zap.Logger
	temperature float32
}

func NewAnalyzer(gateway ai.Gateway, log *zap.Logger, cfg Config) *Analyzer {
	log = logger.ForModel(log, "", gateway.Model())

	temperature := cfg.Temperature
	if temperature <= 0 {
		temperature = defaultTemperature
	}

	return &Analyzer{
		runner:      pipeline.NewRunner(gateway, log, cfg.MaxLogLength),
		logger:      log,
		temperature: temperature,
	}
}

// Analyze inspects the transcript. Only a failed gateway call is returned as an error.
func (a *Analyzer) Analyze(ctx context.Context, transcript, jobDescription string) (*Analysis, error) {
	return a.AnalyzeRequest(ctx, uuid.NewString(), transcript, jobDescription)
}

// AnalyzeRequest is Analyze with a caller supplied request id.
func (a *Analyzer) AnalyzeRequest(ctx context.Context, requestID, transcript, jobDescription string) (*Analysis, error) {
	log := logger.ForRequest(a.logger, component, requestID)
	log.Info("cheating analysis started", zap.String(logger.FieldStage, string(pipeline.StagePromptBuilt)))

	outcome, err := pipeline.Run(ctx, a.runner, log, pipeline.Task[Analysis]{
		Component:   component,
		RequestID:   requestID,
		Messages:    buildMessages(transcript, jobDescription),
		Temperature: a.temperature,
		Normalize:   Normalize,
		Fallback:    func(string) Analysis { return Fallback() },
	})
	if err != nil {
		log.Warn("cheating analysis model call failed", zap.Error(err))
		return nil, err
	}

	log.Info("cheating analysis completed",
		zap.String(logger.FieldStage, string(outcome.Stage)),
		zap.Bool("degraded", outcome.Degraded()),
		zap.Int("suspicion_score", outcome.Value.SuspicionScore),
		zap.String("risk_level", string(outcome.Value.RiskLevel)),
	)

	return &outcome.Value, nil
}
