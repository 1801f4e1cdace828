package assessment

import (
	"math"

	"github.com/joshghal/verdex-webapp-sub002/internal/refdata"
)

// EligibilityStatus is the tri-state verdict of the classifier
type EligibilityStatus string

// Eligibility verdicts
const (
	StatusEligible          EligibilityStatus = "eligible"
	StatusPartiallyEligible EligibilityStatus = "partial"
	StatusIneligible        EligibilityStatus = "ineligible"
)

// Classifier thresholds
const (
	// severeRiskScore disqualifies outright when combined with a high risk
	// level. Stricter than the 70-point high band on purpose.
	severeRiskScore = 80

	eligibleScoreThreshold = 60
	partialScoreThreshold  = 30
)

// Ineligibility reason strings
const (
	reasonNotInAfrica    = "Project location is not in Africa"
	reasonFossilFuel     = "Project involves excluded fossil fuel activities"
	reasonGreenwashing   = "High greenwashing risk disqualifies the submission"
	reasonBelowThreshold = "Project does not meet minimum transition finance requirements"
)

// fossilExclusionTerms hard-disqualify a project when found in the combined
// narrative, regardless of any score.
var fossilExclusionTerms = []string{
	"oil drilling",
	"oil exploration",
	"oil production",
	"offshore drilling",
	"petroleum",
	"coal power",
	"coal plant",
	"coal mining",
	"barrels per day",
	"fossil fuel expansion",
}

// Verdict is the blended eligibility outcome
type Verdict struct {
	Status               EligibilityStatus `json:"status"`
	IneligibilityReasons []string          `json:"ineligibility_reasons"`
	OverallScore         int               `json:"overall_score"`
	BaseScore            int               `json:"base_score"`
	GreenwashingPenalty  int               `json:"greenwashing_penalty"`
}

// Classify combines the raw LMA score and the greenwashing assessment into
// the final verdict. Hard gates are evaluated in strict order before any
// numeric blending; the first matching gate wins. Total function: malformed
// input is the caller's problem, ineligible is a normal outcome, and there
// is no error path.
func Classify(p ProjectInput, score ScoreResult, risk RiskAssessment) Verdict {
	v := Verdict{
		Status:               StatusEligible,
		IneligibilityReasons: []string{},
		BaseScore:            score.Overall,
	}

	// Gate 1: supported-region allow-list
	if !refdata.IsSupportedCountry(p.Country) {
		v.Status = StatusIneligible
		v.OverallScore = 0
		v.IneligibilityReasons = append(v.IneligibilityReasons, reasonNotInAfrica)
		return v
	}

	// Gate 2: excluded fossil-fuel activities
	if containsAny(p.CombinedText(), fossilExclusionTerms) {
		v.Status = StatusIneligible
		v.OverallScore = 0
		v.IneligibilityReasons = append(v.IneligibilityReasons, reasonFossilFuel)
		return v
	}

	// Gate 3: severe greenwashing. Disqualifies without zeroing the score;
	// only the two gates above force a zero.
	if risk.OverallRisk == RiskHigh && risk.RiskScore >= severeRiskScore {
		v.Status = StatusIneligible
		v.OverallScore = score.Overall
		v.IneligibilityReasons = append(v.IneligibilityReasons, reasonGreenwashing)
		return v
	}

	// Numeric blend
	v.GreenwashingPenalty = greenwashingPenalty(risk)
	adjusted := score.Overall - v.GreenwashingPenalty
	if adjusted < 0 {
		adjusted = 0
	}
	if adjusted > 100 {
		adjusted = 100
	}
	v.OverallScore = adjusted

	switch {
	case adjusted >= eligibleScoreThreshold && risk.OverallRisk != RiskHigh:
		v.Status = StatusEligible
	case adjusted >= partialScoreThreshold:
		v.Status = StatusPartiallyEligible
	default:
		v.Status = StatusIneligible
		v.IneligibilityReasons = append(v.IneligibilityReasons, reasonBelowThreshold)
	}

	return v
}

// greenwashingPenalty converts a risk assessment into points subtracted
// from the base score: high risk maps to [30,50], medium to [10,25], low
// to zero.
func greenwashingPenalty(risk RiskAssessment) int {
	ratio := float64(risk.RiskScore) / 100
	switch risk.OverallRisk {
	case RiskHigh:
		return int(math.Round(30 + ratio*20))
	case RiskMedium:
		return int(math.Round(10 + ratio*15))
	default:
		return 0
	}
}
