package cheating

const (
	DegradedSummary        = "Cheating analysis unavailable: the model response could not be parsed."
	DegradedRecommendation = "Review the transcript manually for signs of assistance."
)

// Fallback is returned when the model output held no usable JSON.
func Fallback() Analysis {
	return Analysis{
		SuspicionScore:      0,
		RiskLevel:           RiskLow,
		Summary:             DegradedSummary,
		Indicators:          []Indicator{},
		AuthenticitySignals: []string{},
		Recommendation:      DegradedRecommendation,
	}
}
