// Package cheating detects signs of assisted or scripted answers in interview transcripts.
package cheating

type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskMedium   RiskLevel = "Medium"
	RiskHigh     RiskLevel = "High"
	RiskCritical RiskLevel = "Critical"
)

// RiskLevels lists every accepted risk level, lowest first.
var RiskLevels = []RiskLevel{RiskLow, RiskMedium, RiskHigh, RiskCritical}

type Severity string

const (
	SeverityLow      Severity = "Low"
	SeverityMedium   Severity = "Medium"
	SeverityHigh     Severity = "High"
	SeverityCritical Severity = "Critical"
)

var Severities = []Severity{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}

// Analysis is the normalized cheating-detection record.
type Analysis struct {
	SuspicionScore      int         `json:"suspicionScore"`
	RiskLevel           RiskLevel   `json:"riskLevel"`
	Summary             string      `json:"summary"`
	Indicators          []Indicator `json:"indicators"`
	AuthenticitySignals []string    `json:"authenticitySignals"`
	Recommendation      string      `json:"recommendation"`
}

type Indicator struct {
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
	Evidence    string   `json:"evidence"`
}
