package evaluation

import (
	"github.com/spigell/hh-evaluator/internal/cheating"
	"github.com/spigell/hh-evaluator/internal/llmjson"
)

const (
	NotProvided = "Not provided"

	defaultPassRate = "0/0"
)

// Normalize maps an arbitrary decoded object onto a Result that satisfies
// every field-level invariant. The must-have gates are applied by Enforce.
func Normalize(data map[string]any) Result {
	result := Result{
		Score:                    llmjson.Score(data["score"], 0, 100),
		HiringDecision:           llmjson.Enum(data["hiringDecision"], HiringDecisions, DecisionNoHire),
		Summary:                  llmjson.Text(data["summary"], NotProvided),
		Recommendation:           llmjson.Text(data["recommendation"], NotProvided),
		Strengths:                llmjson.Strings(data["strengths"]),
		Weaknesses:               llmjson.Strings(data["weaknesses"]),
		SkillsAssessment:         llmjson.Objects(data["skillsAssessment"], normalizeSkill),
		MustHaveAnalysis:         normalizeMustHaveAnalysis(llmjson.Object(data["mustHaveAnalysis"])),
		TechnicalAnalysis:        normalizeTechnical(llmjson.Object(data["technicalAnalysis"])),
		JDMatch:                  normalizeJDMatch(llmjson.Object(data["jdMatch"])),
		BehavioralAnalysis:       normalizeBehavioral(llmjson.Object(data["behavioralAnalysis"])),
		InterviewersKit:          normalizeInterviewersKit(llmjson.Object(data["interviewersKit"])),
		LevelAssessment:          llmjson.Enum(data["levelAssessment"], Levels, LevelUndetermined),
		ExpertAdvice:             llmjson.Text(data["expertAdvice"], NotProvided),
		SuitableWorkTypes:        llmjson.Strings(data["suitableWorkTypes"]),
		QuestionAnswerAssessment: llmjson.Objects(data["questionAnswerAssessment"], normalizeQuestionAnswer),
	}

	if obj, ok := data["cheatingAnalysis"].(map[string]any); ok {
		analysis := cheating.Normalize(obj)
		result.CheatingAnalysis = &analysis
	}

	return result
}

func normalizeSkill(data map[string]any) SkillAssessment {
	return SkillAssessment{
		Skill:    llmjson.Text(data["skill"], NotProvided),
		Rating:   llmjson.Enum(data["rating"], SkillRatings, RatingNotDemonstrated),
		Evidence: llmjson.Text(data["evidence"], NotProvided),
	}
}

func normalizeMustHaveAnalysis(data map[string]any) MustHaveAnalysis {
	return MustHaveAnalysis{
		ExtractedMustHaves:      normalizeExtracted(llmjson.Object(data["extractedMustHaves"])),
		InterviewVerification:   normalizeVerification(llmjson.Object(data["interviewVerification"])),
		MustHaveScore:           llmjson.Score(data["mustHaveScore"], 0, 100),
		PassRate:                llmjson.Text(data["passRate"], defaultPassRate),
		Disqualified:            llmjson.Bool(data["disqualified"]),
		DisqualificationReasons: llmjson.Strings(data["disqualificationReasons"]),
		Assessment:              llmjson.Text(data["assessment"], NotProvided),
	}
}

func normalizeExtracted(data map[string]any) ExtractedMustHaves {
	return ExtractedMustHaves{
		Skills:         llmjson.Objects(data["skills"], normalizeMustHave),
		Experiences:    llmjson.Objects(data["experiences"], normalizeMustHave),
		Qualifications: llmjson.Objects(data["qualifications"], normalizeMustHave),
	}
}

func normalizeMustHave(data map[string]any) MustHave {
	return MustHave{
		Item:        llmjson.Text(data["item"], NotProvided),
		Criticality: llmjson.Enum(data["criticality"], Criticalities, CriticalityImportant),
	}
}

func normalizeVerification(data map[string]any) InterviewVerification {
	return InterviewVerification{
		Verified:  llmjson.Objects(data["verified"], normalizeVerified),
		Failed:    llmjson.Objects(data["failed"], normalizeFailed),
		NotTested: llmjson.Strings(data["notTested"]),
	}
}

func normalizeVerified(data map[string]any) VerifiedMustHave {
	return VerifiedMustHave{
		Item:     llmjson.Text(data["item"], NotProvided),
		Evidence: llmjson.Text(data["evidence"], NotProvided),
	}
}

// An unrecognized severity becomes Significant so malformed entries never trip the critical gate.
func normalizeFailed(data map[string]any) FailedMustHave {
	return FailedMustHave{
		Item:     llmjson.Text(data["item"], NotProvided),
		Reason:   llmjson.Text(data["reason"], NotProvided),
		Severity: llmjson.Enum(data["severity"], Severities, SeveritySignificant),
	}
}

func normalizeTechnical(data map[string]any) TechnicalAnalysis {
	return TechnicalAnalysis{
		Score:     llmjson.Score(data["score"], 0, 100),
		Summary:   llmjson.Text(data["summary"], NotProvided),
		Strengths: llmjson.Strings(data["strengths"]),
		Gaps:      llmjson.Strings(data["gaps"]),
	}
}

func normalizeJDMatch(data map[string]any) JDMatch {
	return JDMatch{
		Score:               llmjson.Score(data["score"], 0, 100),
		Summary:             llmjson.Text(data["summary"], NotProvided),
		MatchedRequirements: llmjson.Strings(data["matchedRequirements"]),
		MissingRequirements: llmjson.Strings(data["missingRequirements"]),
	}
}

func normalizeBehavioral(data map[string]any) BehavioralAnalysis {
	return BehavioralAnalysis{
		Summary:       llmjson.Text(data["summary"], NotProvided),
		Communication: llmjson.Text(data["communication"], NotProvided),
		Teamwork:      llmjson.Text(data["teamwork"], NotProvided),
		RedFlags:      llmjson.Strings(data["redFlags"]),
	}
}

func normalizeInterviewersKit(data map[string]any) InterviewersKit {
	return InterviewersKit{
		FollowUpQuestions: llmjson.Strings(data["followUpQuestions"]),
		FocusAreas:        llmjson.Strings(data["focusAreas"]),
		RedFlagsToProbe:   llmjson.Strings(data["redFlagsToProbe"]),
	}
}

func normalizeQuestionAnswer(data map[string]any) QuestionAnswer {
	return QuestionAnswer{
		Question:      llmjson.Text(data["question"], NotProvided),
		AnswerSummary: llmjson.Text(data["answerSummary"], NotProvided),
		Score:         llmjson.Score(data["score"], 0, 100),
		Feedback:      llmjson.Text(data["feedback"], NotProvided),
	}
}
