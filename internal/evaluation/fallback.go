package evaluation

import (
	"strings"

	"github.com/spigell/hh-evaluator/internal/utils"
)

const (
	// DefaultExcerptLength is the number of raw response runes kept in a fallback summary.
	DefaultExcerptLength = 500
	maxExcerptLength     = 2000

	DegradedAssessment     = "Degraded mode: the model response could not be parsed, must-haves were not verified."
	DegradedRecommendation = "Automated evaluation unavailable. A manual review of the interview is required."
	degradedSummary        = "The evaluation could not be extracted from the model response."
)

// Fallback builds the result returned when the model output held no usable
// JSON. At most excerptLength runes of raw are embedded in the summary.
func Fallback(raw string, excerptLength int) Result {
	if excerptLength <= 0 {
		excerptLength = DefaultExcerptLength
	}
	excerptLength = min(excerptLength, maxExcerptLength)

	summary := degradedSummary
	raw = strings.TrimSpace(strings.ToValidUTF8(raw, "\uFFFD"))
	if excerpt, truncated := utils.Excerpt(raw, excerptLength); excerpt != "" {
		if truncated {
			excerpt += "..."
		}
		summary += " Raw response excerpt: " + excerpt
	}

	return Result{
		Score:            0,
		HiringDecision:   DecisionNoHire,
		Summary:          summary,
		Recommendation:   DegradedRecommendation,
		Strengths:        []string{},
		Weaknesses:       []string{},
		SkillsAssessment: []SkillAssessment{},
		MustHaveAnalysis: MustHaveAnalysis{
			ExtractedMustHaves: ExtractedMustHaves{
				Skills:         []MustHave{},
				Experiences:    []MustHave{},
				Qualifications: []MustHave{},
			},
			InterviewVerification: InterviewVerification{
				Verified:  []VerifiedMustHave{},
				Failed:    []FailedMustHave{},
				NotTested: []string{},
			},
			PassRate:                defaultPassRate,
			DisqualificationReasons: []string{},
			Assessment:              DegradedAssessment,
		},
		TechnicalAnalysis: TechnicalAnalysis{
			Summary:   NotProvided,
			Strengths: []string{},
			Gaps:      []string{},
		},
		JDMatch: JDMatch{
			Summary:             NotProvided,
			MatchedRequirements: []string{},
			MissingRequirements: []string{},
		},
		BehavioralAnalysis: BehavioralAnalysis{
			Summary:       NotProvided,
			Communication: NotProvided,
			Teamwork:      NotProvided,
			RedFlags:      []string{},
		},
		InterviewersKit: InterviewersKit{
			FollowUpQuestions: []string{},
			FocusAreas:        []string{},
			RedFlagsToProbe:   []string{},
		},
		LevelAssessment:          LevelUndetermined,
		ExpertAdvice:             NotProvided,
		SuitableWorkTypes:        []string{},
		QuestionAnswerAssessment: []QuestionAnswer{},
	}
}
