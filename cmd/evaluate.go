package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/hh-evaluator/internal/evaluation"
	"github.com/spigell/hh-evaluator/internal/headhunter"
	"github.com/spigell/hh-evaluator/internal/schemas"
)

const (
	PromptYes            = "Yes"
	PromptNo             = "No"
	PromptPrintJSON      = "Print result as JSON"
	PromptDumpToFile     = "Dump result to file"
	PromptValidateSchema = "Validate result against schema"
	PromptExit           = "Exit"
)

var errExit = errors.New("exit requested")

var confirmPrompt = promptui.Select{
	Label: "Procced?",
	Items: []string{PromptYes, PromptNo},
}

var actionPrompt = promptui.Select{
	Label: "Evaluation finished. What next?",
	Items: []string{PromptPrintJSON, PromptDumpToFile, PromptValidateSchema, PromptExit},
}

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate an interview transcript against a resume and a job description",
	Run: func(cmd *cobra.Command, _ []string) {
		evaluate(cmd)
	},
}

func init() {
	rootCmd.AddCommand(evaluateCmd)

	evaluateCmd.Flags().StringP("transcript", "t", "", "interview transcript file (.txt, .md or .pdf)")
	evaluateCmd.Flags().StringP("resume", "r", "", "resume file (.txt, .md or .pdf)")
	evaluateCmd.Flags().String("job", "", "job description file (.txt, .md or .pdf)")
	evaluateCmd.Flags().String("hh-resume", "", "hh.ru resume id to use instead of --resume")
	evaluateCmd.Flags().String("hh-vacancy", "", "hh.ru vacancy id to use instead of --job")
	evaluateCmd.Flags().BoolP("cheating", "c", false, "run cheating detection alongside the evaluation")
	evaluateCmd.Flags().StringP("instructions", "i", "", "advisory instructions for the evaluator")
	evaluateCmd.Flags().StringP("output", "o", "", "write the result to this file")
	evaluateCmd.Flags().BoolP("auto-aprove", "y", false, "do not ask for confirmation, print the result and exit")

	evaluateCmd.MarkFlagRequired("transcript")
}

func evaluate(cmd *cobra.Command) {
	ctx := context.Background()
	logger, config := setup()

	logger.Info("starting the hh-evaluator", zap.String("version", version))

	flags := cmd.Flags()
	flag := func(name string) string {
		v, _ := flags.GetString(name)
		return v
	}

	hh := func() (*headhunter.Client, error) {
		return newHeadhunter(config.Headhunter, logger, flag("hh-resume") != "")
	}

	var input evaluation.Input
	for _, src := range []struct {
		target *string
		source inputSource
	}{
		{&input.Transcript, inputSource{Name: "transcript", File: flag("transcript")}},
		{&input.Resume, inputSource{Name: "resume", File: flag("resume"), HHID: flag("hh-resume"), Remote: resumeText(hh)}},
		{&input.JobDescription, inputSource{Name: "job description", File: flag("job"), HHID: flag("hh-vacancy"), Remote: vacancyText(hh)}},
	} {
		text, err := src.source.load(ctx)
		if err != nil {
			logger.Fatal("loading input", zap.Error(err))
		}
		*src.target = text
	}

	cheatingDetection, _ := flags.GetBool("cheating")
	autoApprove, _ := flags.GetBool("auto-aprove")

	logger.Info("inputs loaded",
		zap.Int("transcript_length", utf8.RuneCountInString(input.Transcript)),
		zap.Int("resume_length", utf8.RuneCountInString(input.Resume)),
		zap.Int("job_description_length", utf8.RuneCountInString(input.JobDescription)),
		zap.Bool("cheating_detection", cheatingDetection),
	)

	if !autoApprove {
		if _, answer, err := confirmPrompt.Run(); err != nil || answer != PromptYes {
			logger.Info("exiting", zap.String("reason", "got no from prompt"))
			return
		}
	}

	evaluator, _, err := newPipelines(ctx, config.AI, logger)
	if err != nil {
		logger.Fatal("building the evaluator", zap.Error(err))
	}

	started := time.Now()
	result, err := evaluator.Evaluate(ctx, input, evaluation.Options{
		IncludeCheatingDetection: cheatingDetection,
		UserInstructions:         flag("instructions"),
	})
	if err != nil {
		logger.Fatal("evaluation failed", zap.Error(err))
	}

	logger.Info("evaluation finished",
		zap.Int("score", result.Score),
		zap.String("decision", string(result.HiringDecision)),
		zap.Duration("took", time.Since(started)),
	)

	if output := flag("output"); output != "" {
		if err := writeResult(output, result); err != nil {
			logger.Fatal("writing result", zap.Error(err))
		}
		logger.Info("result written", zap.String("filename", output))
	}

	if autoApprove {
		if err := printJSON(result); err != nil {
			logger.Fatal("printing result", zap.Error(err))
		}
		return
	}

	for {
		_, action, err := actionPrompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(action, logger, result); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(action string, logger *zap.Logger, result *evaluation.Result) error {
	switch action {
	case PromptPrintJSON:
		return printJSON(result)
	case PromptDumpToFile:
		file, err := os.CreateTemp("", "evaluation_*.json")
		if err != nil {
			return fmt.Errorf("dump result to file: %w", err)
		}
		file.Close()
		if err := writeResult(file.Name(), result); err != nil {
			return fmt.Errorf("dump result to file: %w", err)
		}
		logger.Info("dumping result to file", zap.String("filename", file.Name()))
		return nil
	case PromptValidateSchema:
		if err := schemas.ValidateEvaluation(result); err != nil {
			logger.Warn("result does not match the schema", zap.Error(err))
			return nil
		}
		logger.Info("result matches the schema")
		return nil
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func writeResult(path string, v any) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return encodeJSON(file, v)
}
