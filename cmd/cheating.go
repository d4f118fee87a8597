package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/hh-evaluator/internal/headhunter"
)

var cheatingCmd = &cobra.Command{
	Use:   "cheating",
	Short: "Analyze an interview transcript for signs of outside assistance",
	Run: func(cmd *cobra.Command, _ []string) {
		analyzeCheating(cmd)
	},
}

func init() {
	rootCmd.AddCommand(cheatingCmd)

	cheatingCmd.Flags().StringP("transcript", "t", "", "interview transcript file (.txt, .md or .pdf)")
	cheatingCmd.Flags().String("job", "", "optional job description file")
	cheatingCmd.Flags().String("hh-vacancy", "", "hh.ru vacancy id to use instead of --job")
	cheatingCmd.Flags().StringP("output", "o", "", "write the result to this file instead of stdout")

	cheatingCmd.MarkFlagRequired("transcript")
}

func analyzeCheating(cmd *cobra.Command) {
	ctx := context.Background()
	logger, config := setup()

	flags := cmd.Flags()
	transcriptFile, _ := flags.GetString("transcript")
	jobFile, _ := flags.GetString("job")
	vacancyID, _ := flags.GetString("hh-vacancy")
	output, _ := flags.GetString("output")

	transcript, err := inputSource{Name: "transcript", File: transcriptFile}.load(ctx)
	if err != nil {
		logger.Fatal("loading input", zap.Error(err))
	}

	hh := func() (*headhunter.Client, error) { return newHeadhunter(config.Headhunter, logger, false) }
	jobDescription, err := inputSource{Name: "job description", File: jobFile, HHID: vacancyID, Remote: vacancyText(hh)}.load(ctx)
	if err != nil {
		logger.Fatal("loading input", zap.Error(err))
	}

	_, analyzer, err := newPipelines(ctx, config.AI, logger)
	if err != nil {
		logger.Fatal("building the analyzer", zap.Error(err))
	}

	analysis, err := analyzer.Analyze(ctx, transcript, jobDescription)
	if err != nil {
		logger.Fatal("cheating analysis failed", zap.Error(err))
	}

	if output != "" {
		if err := writeResult(output, analysis); err != nil {
			logger.Fatal("writing result", zap.Error(err))
		}
		logger.Info("result written", zap.String("filename", output))
		return
	}

	if err := printJSON(analysis); err != nil {
		logger.Fatal("printing result", zap.Error(err))
	}
}
