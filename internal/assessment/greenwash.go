package assessment

import "regexp"

// RiskLevel buckets the greenwashing risk of a submission
type RiskLevel string

// Risk levels
const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Severity tiers and their fixed point weights
const (
	severityLow    = 10
	severityMedium = 15
	severityHigh   = 25
)

// Risk banding thresholds. A score of 70 enters the high category; the
// classifier applies its own stricter threshold (80) for outright
// disqualification.
const (
	highRiskThreshold   = 70
	mediumRiskThreshold = 40

	// Two or more high-severity flags force a high verdict regardless of
	// the numeric score.
	severeFlagLimit = 2
)

// RedFlag is one triggered greenwashing signal
type RedFlag struct {
	Description    string `json:"description"`
	Recommendation string `json:"recommendation"`
}

// RiskAssessment is the detector output. RiskScore and OverallRisk are
// always derived together from the same flag tally.
type RiskAssessment struct {
	OverallRisk        RiskLevel `json:"overall_risk"`
	RiskScore          int       `json:"risk_score"`
	RedFlags           []RedFlag `json:"red_flags"`
	PositiveIndicators []string  `json:"positive_indicators"`
	Recommendations    []string  `json:"recommendations"`
}

// riskRule is one entry in the red-flag catalogue. Each rule triggers at
// most once per assessment, so overlapping patterns inside a rule cannot
// double-count the same textual signal.
type riskRule struct {
	id             string
	weight         int
	description    string
	recommendation string
	matches        func(p ProjectInput, text string) bool
}

// Exaggerated claims that demand quantified support
var absoluteClaimTerms = []string{
	"100% reduction",
	"100% carbon free",
	"zero emissions",
	"net zero",
	"net-zero",
	"carbon neutral",
	"climate positive",
	"completely sustainable",
}

// Vague qualifiers that mean nothing without numbers behind them
var vagueQualifierTerms = []string{
	"eco-friendly",
	"environmentally friendly",
	"green",
	"sustainable",
	"clean",
}

// quantifiedFigure matches a number attached to a percentage or tonnage,
// the minimum bar for a claim to count as quantified.
var quantifiedFigure = regexp.MustCompile(`\d+(\.\d+)?\s*(%|percent|tco2e?|tonnes|tons)`)

// redFlagCatalogue is the fixed rule table evaluated by DetectGreenwashing.
// Order determines output order; ids must be unique.
var redFlagCatalogue = []riskRule{
	{
		id:             "absolute-claim-unsupported",
		weight:         severityHigh,
		description:    "Absolute environmental claim made without supporting baseline data",
		recommendation: "Back absolute claims with a quantified, verifiable emissions baseline",
		matches: func(p ProjectInput, text string) bool {
			return containsAny(text, absoluteClaimTerms) && !p.HasBaselineData()
		},
	},
	{
		id:             "no-baseline-emissions",
		weight:         severityHigh,
		description:    "No baseline emissions data provided",
		recommendation: "Measure and disclose Scope 1 and Scope 2 baseline emissions",
		matches: func(p ProjectInput, text string) bool {
			return !p.HasBaselineData()
		},
	},
	{
		id:             "no-target-year",
		weight:         severityMedium,
		description:    "No target year stated for the transition commitment",
		recommendation: "Commit to a dated emissions reduction target",
		matches: func(p ProjectInput, text string) bool {
			return p.TargetYear == 0
		},
	},
	{
		id:             "unverified-strong-claims",
		weight:         severityMedium,
		description:    "Strong environmental claims without third-party verification",
		recommendation: "Engage an independent verifier to validate stated claims",
		matches: func(p ProjectInput, text string) bool {
			return !p.ThirdPartyVerification && containsAny(text, absoluteClaimTerms)
		},
	},
	{
		id:             "vague-without-quantification",
		weight:         severityLow,
		description:    "Vague environmental language used without any quantified figures",
		recommendation: "Replace qualitative claims with measurable targets and units",
		matches: func(p ProjectInput, text string) bool {
			return containsAny(text, vagueQualifierTerms) && !quantifiedFigure.MatchString(text)
		},
	},
	{
		id:             "no-transition-narrative",
		weight:         severityLow,
		description:    "No transition strategy narrative provided",
		recommendation: "Describe how the project fits the borrower's decarbonization pathway",
		matches: func(p ProjectInput, text string) bool {
			return p.TransitionStrategy == ""
		},
	},
}

// Positive indicator keyword sets
var (
	milestoneTerms    = []string{"interim", "milestone", "2030 target", "phased"}
	scienceBasedTerms = []string{"sbti", "science-based", "science based"}
)

// DetectGreenwashing scans the project narrative against the red-flag
// catalogue and returns a risk verdict. It is a pure function of the input:
// identical input always yields the identical flag set, score, and level.
// Empty text is tolerated (structural rules still apply).
func DetectGreenwashing(p ProjectInput) RiskAssessment {
	text := p.CombinedText()

	result := RiskAssessment{
		OverallRisk:        RiskLow,
		RedFlags:           []RedFlag{},
		PositiveIndicators: []string{},
		Recommendations:    []string{},
	}

	score := 0
	highFlags := 0
	seen := make(map[string]bool)

	for _, rule := range redFlagCatalogue {
		if seen[rule.id] || !rule.matches(p, text) {
			continue
		}
		seen[rule.id] = true

		score += rule.weight
		if rule.weight == severityHigh {
			highFlags++
		}
		result.RedFlags = append(result.RedFlags, RedFlag{
			Description:    rule.description,
			Recommendation: rule.recommendation,
		})
		result.Recommendations = append(result.Recommendations, rule.recommendation)
	}

	if score > 100 {
		score = 100
	}
	result.RiskScore = score

	switch {
	case score >= highRiskThreshold || highFlags >= severeFlagLimit:
		result.OverallRisk = RiskHigh
	case score >= mediumRiskThreshold:
		result.OverallRisk = RiskMedium
	}

	result.PositiveIndicators = positiveIndicators(p, text)

	return result
}

// positiveIndicators itemizes the credibility signals present in the
// submission. Indicators are reported for transparency only; they do not
// reduce the risk score.
func positiveIndicators(p ProjectInput, text string) []string {
	indicators := []string{}

	if p.HasBaselineData() {
		indicators = append(indicators, "Quantified baseline emissions provided")
	}
	if p.ThirdPartyVerification {
		indicators = append(indicators, "Third-party verification commitment in place")
	}
	if containsAny(text, milestoneTerms) {
		indicators = append(indicators, "Interim milestones referenced in the narrative")
	}
	if containsAny(text, scienceBasedTerms) {
		indicators = append(indicators, "Science-based target setting referenced")
	}

	return indicators
}
