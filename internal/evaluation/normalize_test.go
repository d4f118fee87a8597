package evaluation

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spigell/hh-evaluator/internal/cheating"
	"github.com/spigell/hh-evaluator/internal/llmjson"
)

func TestNormalizeEmptyObject(t *testing.T) {
	t.Parallel()

	result := Normalize(map[string]any{})

	assert.Equal(t, 0, result.Score)
	assert.Equal(t, DecisionNoHire, result.HiringDecision)
	assert.Equal(t, NotProvided, result.Summary)
	assert.Equal(t, LevelUndetermined, result.LevelAssessment)
	assert.Equal(t, defaultPassRate, result.MustHaveAnalysis.PassRate)
	assert.False(t, result.MustHaveAnalysis.Disqualified)
	assert.NotNil(t, result.Strengths)
	assert.NotNil(t, result.SkillsAssessment)
	assert.NotNil(t, result.MustHaveAnalysis.ExtractedMustHaves.Qualifications)
	assert.NotNil(t, result.MustHaveAnalysis.InterviewVerification.Failed)
	assert.NotNil(t, result.InterviewersKit.RedFlagsToProbe)
	assert.Nil(t, result.CheatingAnalysis)
}

func TestNormalizeCoercesFields(t *testing.T) {
	t.Parallel()

	result := Normalize(map[string]any{
		"score":          "87.6",
		"hiringDecision": "strong hire",
		"summary":        "  Solid Go engineer.  ",
		"recommendation": 42.0,
		"strengths":      []any{"Concurrency", "", 3.0, true, map[string]any{"x": 1.0}},
		"weaknesses":     "not a list",
		"skillsAssessment": []any{
			map[string]any{"skill": "Go", "rating": "ADVANCED", "evidence": "Explained channels"},
			"garbage",
			map[string]any{"skill": "SQL", "rating": "guru"},
		},
		"levelAssessment": "Staff",
		"technicalAnalysis": map[string]any{
			"score": 150.0,
			"gaps":  []any{"Profiling"},
		},
		"questionAnswerAssessment": []any{
			map[string]any{"question": "What is a goroutine?", "score": -5.0},
		},
	})

	assert.Equal(t, 88, result.Score)
	assert.Equal(t, DecisionStrongHire, result.HiringDecision)
	assert.Equal(t, "Solid Go engineer.", result.Summary)
	assert.Equal(t, NotProvided, result.Recommendation)
	assert.Equal(t, []string{"Concurrency", "3", "true"}, result.Strengths)
	assert.Empty(t, result.Weaknesses)

	require.Len(t, result.SkillsAssessment, 2)
	assert.Equal(t, RatingAdvanced, result.SkillsAssessment[0].Rating)
	assert.Equal(t, RatingNotDemonstrated, result.SkillsAssessment[1].Rating)
	assert.Equal(t, NotProvided, result.SkillsAssessment[1].Evidence)

	assert.Equal(t, LevelUndetermined, result.LevelAssessment)
	assert.Equal(t, 100, result.TechnicalAnalysis.Score)
	assert.Equal(t, []string{"Profiling"}, result.TechnicalAnalysis.Gaps)
	assert.Equal(t, 0, result.QuestionAnswerAssessment[0].Score)
}

func TestNormalizeEnumDefaults(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input map[string]any
		check func(t *testing.T, r Result)
	}{
		{
			name:  "unknown decision",
			input: map[string]any{"hiringDecision": "Maybe"},
			check: func(t *testing.T, r Result) { assert.Equal(t, DecisionNoHire, r.HiringDecision) },
		},
		{
			name: "unknown criticality",
			input: map[string]any{"mustHaveAnalysis": map[string]any{
				"extractedMustHaves": map[string]any{
					"skills": []any{map[string]any{"item": "Go", "criticality": "Optional"}},
				},
			}},
			check: func(t *testing.T, r Result) {
				assert.Equal(t, CriticalityImportant, r.MustHaveAnalysis.ExtractedMustHaves.Skills[0].Criticality)
			},
		},
		{
			name: "unknown failed severity",
			input: map[string]any{"mustHaveAnalysis": map[string]any{
				"interviewVerification": map[string]any{
					"failed": []any{map[string]any{"item": "Kubernetes", "severity": "catastrophic"}},
				},
			}},
			check: func(t *testing.T, r Result) {
				assert.Equal(t, SeveritySignificant, r.MustHaveAnalysis.InterviewVerification.Failed[0].Severity)
			},
		},
		{
			name:  "unknown risk level in embedded cheating analysis",
			input: map[string]any{"cheatingAnalysis": map[string]any{"riskLevel": "Extreme"}},
			check: func(t *testing.T, r Result) {
				require.NotNil(t, r.CheatingAnalysis)
				assert.Equal(t, cheating.RiskLow, r.CheatingAnalysis.RiskLevel)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			tc.check(t, Normalize(tc.input))
		})
	}
}

func TestNormalizeDisqualifiedFlag(t *testing.T) {
	t.Parallel()

	for _, value := range []any{true, "TRUE", " yes ", 1.0} {
		result := Normalize(map[string]any{"mustHaveAnalysis": map[string]any{"disqualified": value}})
		assert.True(t, result.MustHaveAnalysis.Disqualified, "value %v", value)
	}
	for _, value := range []any{false, "no", 0.0, nil, []any{}} {
		result := Normalize(map[string]any{"mustHaveAnalysis": map[string]any{"disqualified": value}})
		assert.False(t, result.MustHaveAnalysis.Disqualified, "value %v", value)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []map[string]any{
		{},
		{
			"score":          "61",
			"hiringDecision": "weak hire",
			"strengths":      []any{"Go", 1.5},
			"mustHaveAnalysis": map[string]any{
				"mustHaveScore": 40.4,
				"disqualified":  "yes",
				"interviewVerification": map[string]any{
					"failed": []any{map[string]any{"item": "AWS", "severity": "critical"}},
				},
			},
			"cheatingAnalysis": map[string]any{"suspicionScore": 12.0, "indicators": []any{map[string]any{}}},
		},
	}

	for _, input := range inputs {
		first := Normalize(input)

		data, err := llmjson.ToMap(first)
		require.NoError(t, err)

		assert.Equal(t, first, Normalize(data))
	}

	for _, raw := range []string{"no json here", "model said \xff\xfe nothing useful"} {
		fallback := Fallback(raw, 0)
		assert.True(t, utf8.ValidString(fallback.Summary), "summary of %q", raw)

		data, err := llmjson.ToMap(fallback)
		require.NoError(t, err)

		again, _ := Enforce(Normalize(data))
		assert.Equal(t, fallback, again)
	}
}
