package evaluation

// Gate identifies which must-have rule overrode the model's verdict.
type Gate string

const (
	GateNone            Gate = "none"
	GateDisqualified    Gate = "disqualified"
	GateCriticalFailure Gate = "critical_failure"
)

const (
	disqualifiedScoreCap    = 25
	criticalFailureScoreCap = 45
)

// Enforce applies the must-have gates to a normalized result.
//
// A disqualified result is capped at 25 and marked Disqualified. Otherwise a
// failed must-have of Critical severity caps the score at 45 and turns any
// hiring decision into No Hire. The disqualified flag is the only
// disqualification signal; Dealbreaker failures are not reinterpreted.
func Enforce(result Result) (Result, Gate) {
	mustHaves := result.MustHaveAnalysis

	if mustHaves.Disqualified {
		result.Score = min(result.Score, disqualifiedScoreCap)
		result.HiringDecision = DecisionDisqualified
		return result, GateDisqualified
	}

	if !hasCriticalFailure(mustHaves.InterviewVerification.Failed) {
		return result, GateNone
	}

	result.Score = min(result.Score, criticalFailureScoreCap)
	switch result.HiringDecision {
	case DecisionStrongHire, DecisionHire, DecisionWeakHire:
		result.HiringDecision = DecisionNoHire
	}
	return result, GateCriticalFailure
}

func hasCriticalFailure(failed []FailedMustHave) bool {
	for _, f := range failed {
		if f.Severity == SeverityCritical {
			return true
		}
	}
	return false
}
