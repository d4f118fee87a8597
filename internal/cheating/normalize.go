package cheating

import "github.com/spigell/hh-evaluator/internal/llmjson"

const (
	NotProvided = "Not provided"

	defaultIndicatorType  = "Unspecified"
	defaultRecommendation = "No specific recommendation provided."
)

// Normalize maps an arbitrary decoded object onto a valid Analysis.
func Normalize(data map[string]any) Analysis {
	return Analysis{
		SuspicionScore:      llmjson.Score(data["suspicionScore"], 0, 100),
		RiskLevel:           llmjson.Enum(data["riskLevel"], RiskLevels, RiskLow),
		Summary:             llmjson.Text(data["summary"], NotProvided),
		Indicators:          llmjson.Objects(data["indicators"], normalizeIndicator),
		AuthenticitySignals: llmjson.Strings(data["authenticitySignals"]),
		Recommendation:      llmjson.Text(data["recommendation"], defaultRecommendation),
	}
}

func normalizeIndicator(data map[string]any) Indicator {
	return Indicator{
		Type:        llmjson.Text(data["type"], defaultIndicatorType),
		Description: llmjson.Text(data["description"], NotProvided),
		Severity:    llmjson.Enum(data["severity"], Severities, SeverityLow),
		Evidence:    llmjson.Text(data["evidence"], NotProvided),
	}
}
