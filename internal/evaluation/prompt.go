package evaluation

import (
	"strings"

	_ "embed"

	"github.com/spigell/hh-evaluator/internal/ai"
	"github.com/spigell/hh-evaluator/internal/utils"
)

//go:embed system.md
var systemPrompt string

//go:embed prompt.md
var promptTemplate string

const (
	maxUserInstructionRunes = 600

	notProvidedInput = "(not provided)"
	emptyTranscript  = "(empty transcript)"
	noInstructions   = "  - none"
)

var bracketReplacer = strings.NewReplacer("[", "(", "]", ")", "{", "(", "}", ")")

func buildMessages(input Input, userInstructions string) []ai.Message {
	prompt := strings.NewReplacer(
		"{{USER_INSTRUCTIONS}}", renderUserInstructions(userInstructions),
		"{{RESUME}}", orPlaceholder(input.Resume, notProvidedInput),
		"{{JOB_DESCRIPTION}}", orPlaceholder(input.JobDescription, notProvidedInput),
		"{{TRANSCRIPT}}", orPlaceholder(input.Transcript, emptyTranscript),
	).Replace(promptTemplate)

	return []ai.Message{
		{Role: ai.RoleSystem, Content: systemPrompt},
		{Role: ai.RoleUser, Content: prompt},
	}
}

func orPlaceholder(value, placeholder string) string {
	if value = strings.TrimSpace(value); value == "" {
		return placeholder
	}
	return value
}

// renderUserInstructions turns free text into an indented bullet list that
// cannot open a new prompt section.
func renderUserInstructions(raw string) string {
	sanitized := sanitizeUserInstructions(raw)
	if sanitized == "" {
		return noInstructions
	}

	lines := strings.Split(sanitized, "\n")
	for i, line := range lines {
		lines[i] = "  - " + line
	}
	return strings.Join(lines, "\n")
}

func sanitizeUserInstructions(raw string) string {
	raw = bracketReplacer.Replace(raw)

	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		if line = strings.Join(strings.Fields(line), " "); line != "" {
			lines = append(lines, line)
		}
	}

	text, _ := utils.Excerpt(strings.Join(lines, "\n"), maxUserInstructionRunes)
	return strings.TrimSpace(text)
}
