package evaluation

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spigell/hh-evaluator/internal/ai"
	"github.com/spigell/hh-evaluator/internal/cheating"
	"github.com/spigell/hh-evaluator/internal/logger"
	"github.com/spigell/hh-evaluator/internal/pipeline"
)

const (
	component = "evaluation"

	defaultTemperature = 0.2
)

type Config struct {
	Temperature         float32
	SequentialSecondary bool
	ExcerptLength       int
	MaxLogLength        int
}

// Input holds the three documents an evaluation is based on.
type Input struct {
	Resume         string
	JobDescription string
	Transcript     string
}

type Options struct {
	IncludeCheatingDetection bool
	UserInstructions         string
	// RequestID correlates log entries; generated when empty.
	RequestID string
}

// Request is the external form of an evaluation call.
type Request struct {
	Resume                   string `json:"resume" validate:"max=200000"`
	JobDescription           string `json:"jobDescription" validate:"max=100000"`
	Transcript               string `json:"transcript" validate:"required,max=500000"`
	IncludeCheatingDetection bool   `json:"includeCheatingDetection"`
	UserInstructions         string `json:"userInstructions" validate:"max=4000"`
}

func (r *Request) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

func (r *Request) Input() Input {
	return Input{Resume: r.Resume, JobDescription: r.JobDescription, Transcript: r.Transcript}
}

func (r *Request) Options(requestID string) Options {
	return Options{
		IncludeCheatingDetection: r.IncludeCheatingDetection,
		UserInstructions:         r.UserInstructions,
		RequestID:                requestID,
	}
}

// Evaluator runs the interview evaluation pipeline and, on request, the
// cheating analysis next to it. It holds no per-request state.
type Evaluator struct {
	runner        *pipeline.Runner
	analyzer      *cheating.Analyzer
	logger        *zap.Logger
	temperature   float32
	sequential    bool
	excerptLength int
}

// NewEvaluator creates an Evaluator. A nil analyzer is replaced by one
// sharing the same gateway.
func NewEvaluator(gateway ai.Gateway, analyzer *cheating.Analyzer, log *zap.Logger, cfg Config) *Evaluator {
	if analyzer == nil {
		analyzer = cheating.NewAnalyzer(gateway, log, cheating.Config{MaxLogLength: cfg.MaxLogLength})
	}

	log = logger.ForModel(log, "", gateway.Model())

	temperature := cfg.Temperature
	if temperature <= 0 {
		temperature = defaultTemperature
	}

	return &Evaluator{
		runner:        pipeline.NewRunner(gateway, log, cfg.MaxLogLength),
		analyzer:      analyzer,
		logger:        log,
		temperature:   temperature,
		sequential:    cfg.SequentialSecondary,
		excerptLength: cfg.ExcerptLength,
	}
}

// Evaluate returns a policy-compliant result for the interview. Unusable model
// output degrades to Fallback; only a failed gateway call is returned as an
// error, and it matches ai.ErrModelCall.
func (e *Evaluator) Evaluate(ctx context.Context, input Input, opts Options) (*Result, error) {
	requestID := opts.RequestID
	if requestID == "" {
		requestID = uuid.NewString()
	}

	log := logger.ForRequest(e.logger, component, requestID)
	log.Info("evaluation started",
		zap.String(logger.FieldStage, string(pipeline.StagePromptBuilt)),
		zap.Bool("cheating_detection", opts.IncludeCheatingDetection),
	)

	task := pipeline.Task[Result]{
		Component:   component,
		RequestID:   requestID,
		Messages:    buildMessages(input, opts.UserInstructions),
		Temperature: e.temperature,
		Normalize:   Normalize,
		Fallback:    func(raw string) Result { return Fallback(raw, e.excerptLength) },
	}

	var (
		outcome  pipeline.Outcome[Result]
		analysis *cheating.Analysis
	)

	secondary := func(ctx context.Context) {
		analysis = e.analyzeCheating(ctx, log, requestID, input)
	}

	if opts.IncludeCheatingDetection && e.sequential {
		var err error
		if outcome, err = pipeline.Run(ctx, e.runner, log, task); err != nil {
			log.Warn("evaluation model call failed", zap.Error(err))
			return nil, err
		}
		secondary(ctx)
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			outcome, err = pipeline.Run(gctx, e.runner, log, task)
			return err
		})
		if opts.IncludeCheatingDetection {
			g.Go(func() error {
				secondary(gctx)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			log.Warn("evaluation model call failed", zap.Error(err))
			return nil, err
		}
	}

	result, gate := Enforce(outcome.Value)
	if gate != GateNone {
		log.Info("policy gate applied",
			zap.String(logger.FieldStage, string(pipeline.StagePolicyEnforced)),
			zap.String("gate", string(gate)),
			zap.Int("model_score", outcome.Value.Score),
			zap.Int("score", result.Score),
			zap.String("model_decision", string(outcome.Value.HiringDecision)),
			zap.String("decision", string(result.HiringDecision)),
		)
	}

	if opts.IncludeCheatingDetection {
		result.CheatingAnalysis = analysis
	}

	log.Info("evaluation completed",
		zap.String(logger.FieldStage, string(outcome.Stage)),
		zap.Bool("degraded", outcome.Degraded()),
		zap.Int("score", result.Score),
		zap.String("decision", string(result.HiringDecision)),
		zap.Bool("cheating_attached", result.CheatingAnalysis != nil),
	)

	return &result, nil
}

// analyzeCheating never fails; a secondary error only costs the attachment.
func (e *Evaluator) analyzeCheating(ctx context.Context, log *zap.Logger, requestID string, input Input) *cheating.Analysis {
	analysis, err := e.analyzer.AnalyzeRequest(ctx, requestID, input.Transcript, input.JobDescription)
	if err != nil {
		log.Warn("cheating analysis failed, result omitted", zap.Error(err))
		return nil
	}
	log.Debug("cheating analysis attached",
		zap.Int("suspicion_score", analysis.SuspicionScore),
		zap.String("risk_level", string(analysis.RiskLevel)),
	)
	return analysis
}
