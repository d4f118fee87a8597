package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/hh-evaluator/internal/ai/gemini"
	"github.com/spigell/hh-evaluator/internal/cheating"
	"github.com/spigell/hh-evaluator/internal/document"
	"github.com/spigell/hh-evaluator/internal/evaluation"
	"github.com/spigell/hh-evaluator/internal/headhunter"
	"github.com/spigell/hh-evaluator/internal/logger"
	"github.com/spigell/hh-evaluator/internal/secrets"
)

// setup builds the logger and reads the config; failures are fatal.
func setup() (*zap.Logger, *Config) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(redacted(config), "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	return logger, config
}

func redacted(config *Config) Config {
	out := *config
	gemini := *config.AI.Gemini
	if gemini.APIKey != "" {
		gemini.APIKey = "***"
	}
	ai := *config.AI
	ai.Gemini = &gemini
	out.AI = &ai
	return out
}

func newGenerator(ctx context.Context, cfg *AIConfig, log *zap.Logger) (*gemini.Generator, error) {
	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		Value: cfg.Gemini.APIKey,
		Env:   "GEMINI_API_KEY",
		File:  cfg.Gemini.APIKeyFile,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file, GEMINI_API_KEY_FILE or GEMINI_API_KEY)", err)
	}

	genLogger := logger.ForModel(log, "gemini", cfg.Gemini.Model).With(
		zap.Int("ai_retry_attempts", cfg.Gemini.MaxRetries),
	)

	return gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model, cfg.Gemini.MaxRetries, genLogger)
}

// newPipelines wires the shared gateway into the cheating analyzer and the evaluator.
func newPipelines(ctx context.Context, cfg *AIConfig, log *zap.Logger) (*evaluation.Evaluator, *cheating.Analyzer, error) {
	generator, err := newGenerator(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}

	log = logger.ForModel(log, "gemini", "")

	analyzer := cheating.NewAnalyzer(generator, log, cheating.Config{
		Temperature:  cfg.CheatingTemperature,
		MaxLogLength: cfg.MaxLogLength,
	})

	evaluator := evaluation.NewEvaluator(generator, analyzer, log, evaluation.Config{
		Temperature:         cfg.Temperature,
		SequentialSecondary: cfg.SequentialSecondary,
		ExcerptLength:       cfg.ExcerptLength,
		MaxLogLength:        cfg.MaxLogLength,
	})

	return evaluator, analyzer, nil
}

func newHeadhunter(cfg *HeadhunterConfig, log *zap.Logger, tokenRequired bool) (*headhunter.Client, error) {
	token, err := secrets.Load(secrets.Source{
		Name: "headhunter token",
		Env:  "HH_TOKEN",
		File: cfg.TokenFile,
	})
	if err != nil {
		if tokenRequired {
			return nil, fmt.Errorf("%w (set headhunter.token-file or HH_TOKEN_FILE)", err)
		}
		log.Debug("headhunter token is not configured, using anonymous access")
	}

	return headhunter.New(log, token, cfg.UserAgent), nil
}

// inputSource names where one document comes from: a local file or an hh.ru id.
type inputSource struct {
	Name   string
	File   string
	HHID   string
	Remote func(ctx context.Context, id string) (string, error)
}

func (s inputSource) load(ctx context.Context) (string, error) {
	switch {
	case s.File != "" && s.HHID != "":
		return "", fmt.Errorf("%s: a file and an hh.ru id are mutually exclusive", s.Name)
	case s.File != "":
		text, err := document.Load(s.File)
		if err != nil {
			return "", fmt.Errorf("loading %s: %w", s.Name, err)
		}
		return text, nil
	case s.HHID != "":
		text, err := s.Remote(ctx, s.HHID)
		if err != nil {
			return "", fmt.Errorf("fetching %s: %w", s.Name, err)
		}
		return text, nil
	default:
		return "", nil
	}
}

func resumeText(hh func() (*headhunter.Client, error)) func(ctx context.Context, id string) (string, error) {
	return func(ctx context.Context, id string) (string, error) {
		client, err := hh()
		if err != nil {
			return "", err
		}
		resume, err := client.GetResumeDetails(ctx, id)
		if err != nil {
			return "", err
		}
		return resume.Text(), nil
	}
}

func vacancyText(hh func() (*headhunter.Client, error)) func(ctx context.Context, id string) (string, error) {
	return func(ctx context.Context, id string) (string, error) {
		client, err := hh()
		if err != nil {
			return "", err
		}
		vacancy, err := client.GetVacancy(ctx, id)
		if err != nil {
			return "", err
		}
		return vacancy.JobDescription(), nil
	}
}

func printJSON(v any) error {
	return encodeJSON(os.Stdout, v)
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
