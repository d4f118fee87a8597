package cheating

import (
	"strings"

	_ "embed"

	"github.com/spigell/hh-evaluator/internal/ai"
)

//go:embed system.md
var systemPrompt string

//go:embed prompt.md
var promptTemplate string

const (
	noJobDescription = "(not provided)"
	emptyTranscript  = "(empty transcript)"
)

func buildMessages(transcript, jobDescription string) []ai.Message {
	jobDescription = strings.TrimSpace(jobDescription)
	if jobDescription == "" {
		jobDescription = noJobDescription
	}

	transcript = strings.TrimSpace(transcript)
	if transcript == "" {
		transcript = emptyTranscript
	}

	prompt := strings.NewReplacer(
		"{{JOB_DESCRIPTION}}", jobDescription,
		"{{TRANSCRIPT}}", transcript,
	).Replace(promptTemplate)

	return []ai.Message{
		{Role: ai.RoleSystem, Content: systemPrompt},
		{Role: ai.RoleUser, Content: prompt},
	}
}
