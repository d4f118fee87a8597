// Package evaluation turns model output about an interview into a validated,
// policy-compliant hiring evaluation.
package evaluation

import "github.com/spigell/hh-evaluator/internal/cheating"

type HiringDecision string

const (
	DecisionStrongHire   HiringDecision = "Strong Hire"
	DecisionHire         HiringDecision = "Hire"
	DecisionWeakHire     HiringDecision = "Weak Hire"
	DecisionNoHire       HiringDecision = "No Hire"
	DecisionDisqualified HiringDecision = "Disqualified"
)

var HiringDecisions = []HiringDecision{
	DecisionStrongHire,
	DecisionHire,
	DecisionWeakHire,
	DecisionNoHire,
	DecisionDisqualified,
}

type SkillRating string

const (
	RatingExpert          SkillRating = "Expert"
	RatingAdvanced        SkillRating = "Advanced"
	RatingIntermediate    SkillRating = "Intermediate"
	RatingBeginner        SkillRating = "Beginner"
	RatingNotDemonstrated SkillRating = "Not Demonstrated"
)

var SkillRatings = []SkillRating{
	RatingExpert,
	RatingAdvanced,
	RatingIntermediate,
	RatingBeginner,
	RatingNotDemonstrated,
}

type Level string

const (
	LevelIntern       Level = "Intern"
	LevelJunior       Level = "Junior"
	LevelMid          Level = "Mid"
	LevelSenior       Level = "Senior"
	LevelLead         Level = "Lead"
	LevelPrincipal    Level = "Principal"
	LevelUndetermined Level = "Undetermined"
)

var Levels = []Level{
	LevelIntern,
	LevelJunior,
	LevelMid,
	LevelSenior,
	LevelLead,
	LevelPrincipal,
	LevelUndetermined,
}

// Criticality ranks a must-have requirement extracted from the job description.
type Criticality string

const (
	CriticalityDealbreaker Criticality = "Dealbreaker"
	CriticalityCritical    Criticality = "Critical"
	CriticalityImportant   Criticality = "Important"
)

var Criticalities = []Criticality{CriticalityDealbreaker, CriticalityCritical, CriticalityImportant}

// Severity ranks a must-have the candidate failed to demonstrate.
type Severity string

const (
	SeverityDealbreaker Severity = "Dealbreaker"
	SeverityCritical    Severity = "Critical"
	SeveritySignificant Severity = "Significant"
)

var Severities = []Severity{SeverityDealbreaker, SeverityCritical, SeveritySignificant}

// Result is the evaluation returned to callers.
type Result struct {
	Score                    int                `json:"score"`
	HiringDecision           HiringDecision     `json:"hiringDecision"`
	Summary                  string             `json:"summary"`
	Recommendation           string             `json:"recommendation"`
	Strengths                []string           `json:"strengths"`
	Weaknesses               []string           `json:"weaknesses"`
	SkillsAssessment         []SkillAssessment  `json:"skillsAssessment"`
	MustHaveAnalysis         MustHaveAnalysis   `json:"mustHaveAnalysis"`
	TechnicalAnalysis        TechnicalAnalysis  `json:"technicalAnalysis"`
	JDMatch                  JDMatch            `json:"jdMatch"`
	BehavioralAnalysis       BehavioralAnalysis `json:"behavioralAnalysis"`
	InterviewersKit          InterviewersKit    `json:"interviewersKit"`
	LevelAssessment          Level              `json:"levelAssessment"`
	ExpertAdvice             string             `json:"expertAdvice"`
	SuitableWorkTypes        []string           `json:"suitableWorkTypes"`
	QuestionAnswerAssessment []QuestionAnswer   `json:"questionAnswerAssessment"`
	CheatingAnalysis         *cheating.Analysis `json:"cheatingAnalysis,omitempty"`
}

type SkillAssessment struct {
	Skill    string      `json:"skill"`
	Rating   SkillRating `json:"rating"`
	Evidence string      `json:"evidence"`
}

type MustHaveAnalysis struct {
	ExtractedMustHaves      ExtractedMustHaves    `json:"extractedMustHaves"`
	InterviewVerification   InterviewVerification `json:"interviewVerification"`
	MustHaveScore           int                   `json:"mustHaveScore"`
	PassRate                string                `json:"passRate"`
	Disqualified            bool                  `json:"disqualified"`
	DisqualificationReasons []string              `json:"disqualificationReasons"`
	Assessment              string                `json:"assessment"`
}

type ExtractedMustHaves struct {
	Skills         []MustHave `json:"skills"`
	Experiences    []MustHave `json:"experiences"`
	Qualifications []MustHave `json:"qualifications"`
}

type MustHave struct {
	Item        string      `json:"item"`
	Criticality Criticality `json:"criticality"`
}

type InterviewVerification struct {
	Verified  []VerifiedMustHave `json:"verified"`
	Failed    []FailedMustHave   `json:"failed"`
	NotTested []string           `json:"notTested"`
}

type VerifiedMustHave struct {
	Item     string `json:"item"`
	Evidence string `json:"evidence"`
}

type FailedMustHave struct {
	Item     string   `json:"item"`
	Reason   string   `json:"reason"`
	Severity Severity `json:"severity"`
}

type TechnicalAnalysis struct {
	Score     int      `json:"score"`
	Summary   string   `json:"summary"`
	Strengths []string `json:"strengths"`
	Gaps      []string `json:"gaps"`
}

type JDMatch struct {
	Score               int      `json:"score"`
	Summary             string   `json:"summary"`
	MatchedRequirements []string `json:"matchedRequirements"`
	MissingRequirements []string `json:"missingRequirements"`
}

type BehavioralAnalysis struct {
	Summary       string   `json:"summary"`
	Communication string   `json:"communication"`
	Teamwork      string   `json:"teamwork"`
	RedFlags      []string `json:"redFlags"`
}

type InterviewersKit struct {
	FollowUpQuestions []string `json:"followUpQuestions"`
	FocusAreas        []string `json:"focusAreas"`
	RedFlagsToProbe   []string `json:"redFlagsToProbe"`
}

type QuestionAnswer struct {
	Question      string `json:"question"`
	AnswerSummary string `json:"answerSummary"`
	Score         int    `json:"score"`
	Feedback      string `json:"feedback"`
}
