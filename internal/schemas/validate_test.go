package schemas

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spigell/hh-evaluator/internal/cheating"
	"github.com/spigell/hh-evaluator/internal/evaluation"
)

func TestNormalizedRecordsAreValid(t *testing.T) {
	t.Parallel()

	inputs := []map[string]any{
		{},
		{"score": 300.0, "hiringDecision": "maybe", "strengths": []any{"Go", 1.0}},
		{
			"score":          "90",
			"hiringDecision": "Strong Hire",
			"mustHaveAnalysis": map[string]any{
				"interviewVerification": map[string]any{
					"failed": []any{map[string]any{"item": "SQL", "severity": "Critical"}},
				},
			},
			"cheatingAnalysis": map[string]any{"suspicionScore": 20.0, "riskLevel": "medium"},
		},
		{"score": 80.0, "mustHaveAnalysis": map[string]any{"disqualified": true}},
	}

	for _, input := range inputs {
		result, _ := evaluation.Enforce(evaluation.Normalize(input))
		assert.NoError(t, ValidateEvaluation(result), "input %v", input)
	}

	assert.NoError(t, ValidateEvaluation(evaluation.Fallback(strings.Repeat("x", 5000), 0)))
	assert.NoError(t, ValidateCheating(cheating.Fallback()))
	assert.NoError(t, ValidateCheating(cheating.Normalize(map[string]any{"riskLevel": "Extreme"})))
}

func TestValidateEvaluationRejectsPolicyViolation(t *testing.T) {
	t.Parallel()

	result := evaluation.Normalize(map[string]any{"score": 95.0, "hiringDecision": "Hire"})
	result.MustHaveAnalysis.Disqualified = true

	err := ValidateEvaluation(result)
	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr), "expected ValidationError, got %v", err)
	assert.Equal(t, KindEvaluation, validationErr.Kind)
	assert.NotEmpty(t, validationErr.Errors)
}

func TestValidateJSON(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		kind    Kind
		doc     string
		wantErr bool
	}{
		{name: "score out of range", kind: KindCheating, doc: `{"suspicionScore": 101, "riskLevel": "Low", "summary": "s", "indicators": [], "authenticitySignals": [], "recommendation": "r"}`, wantErr: true},
		{name: "null list", kind: KindCheating, doc: `{"suspicionScore": 1, "riskLevel": "Low", "summary": "s", "indicators": null, "authenticitySignals": [], "recommendation": "r"}`, wantErr: true},
		{name: "valid cheating", kind: KindCheating, doc: `{"suspicionScore": 1, "riskLevel": "Low", "summary": "s", "indicators": [], "authenticitySignals": [], "recommendation": "r"}`},
		{name: "unknown enum", kind: KindEvaluation, doc: `{"hiringDecision": "Maybe"}`, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateJSON(tc.kind, []byte(tc.doc))
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateJSONUnknownKind(t *testing.T) {
	t.Parallel()

	assert.ErrorContains(t, ValidateJSON(Kind("resume"), []byte(`{}`)), "unknown schema kind")
}
