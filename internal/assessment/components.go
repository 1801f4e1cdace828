package assessment

import (
	"fmt"
	"strings"
)

// FeedbackStatus marks how a sub-criterion scored
type FeedbackStatus string

// Feedback statuses
const (
	StatusMet     FeedbackStatus = "met"
	StatusPartial FeedbackStatus = "partial"
	StatusMissing FeedbackStatus = "missing"
)

// FeedbackItem explains one sub-criterion outcome, with corrective action
// text when points were lost.
type FeedbackItem struct {
	Status      FeedbackStatus `json:"status"`
	Description string         `json:"description"`
	Action      string         `json:"action,omitempty"`
}

// ComponentScore is one of the five fixed LMA rubric components
type ComponentScore struct {
	Name     string         `json:"name"`
	Score    int            `json:"score"`
	MaxScore int            `json:"max_score"`
	Feedback []FeedbackItem `json:"feedback"`
}

// ScoreResult aggregates the five component scores. Overall is their sum
// and always falls in 0..100.
type ScoreResult struct {
	Components []ComponentScore `json:"components"`
	Overall    int              `json:"overall"`
}

const componentMax = 20

// Reduction-ambition thresholds (percent). 42% is the 1.5°C-aligned
// annualized pathway benchmark.
const (
	ambitionMetThreshold     = 42.0
	ambitionPartialThreshold = 25.0
)

// Target-year bands
const (
	nearTermTargetYear = 2030
	longTermTargetYear = 2050
)

const minEquityRatio = 0.20

// Clean-technology keywords for the use-of-proceeds component
var cleanTechTerms = []string{
	"renewable", "solar", "wind", "efficiency", "clean", "green",
	"transition", "decarbonization", "decarbonisation",
}

// Paris-alignment keywords for the strategy component
var parisTerms = []string{
	"paris agreement", "1.5°c", "1.5c", "1.5 degree",
	"ndc", "nationally determined contribution",
}

// Sectors where Scope 3 emissions are material and must be reported
var scope3MaterialSectors = map[Sector]bool{
	SectorManufacturing: true,
	SectorAgriculture:   true,
	SectorMining:        true,
}

// Sector priority tiers for the project-selection component. Energy and
// agriculture are the top transition priorities in the target region.
var (
	topPrioritySectors  = map[Sector]bool{SectorEnergy: true, SectorAgriculture: true}
	highPrioritySectors = map[Sector]bool{SectorTransport: true, SectorManufacturing: true, SectorWater: true}
)

// ScoreComponents evaluates the five 20-point LMA components from the
// project fields and text signals. Pure function; no hidden state, no clock.
func ScoreComponents(p ProjectInput) ScoreResult {
	components := []ComponentScore{
		scoreStrategyAlignment(p),
		scoreUseOfProceeds(p),
		scoreTargetAmbition(p),
		scoreReportingVerification(p),
		scoreProjectSelection(p),
	}

	overall := 0
	for _, c := range components {
		overall += c.Score
	}

	return ScoreResult{Components: components, Overall: overall}
}

// scoreStrategyAlignment: published plan (10) + SBTi reference (5) +
// Paris/NDC reference (5).
func scoreStrategyAlignment(p ProjectInput) ComponentScore {
	c := ComponentScore{Name: "Strategy Alignment", MaxScore: componentMax}
	text := p.CombinedText()

	if p.HasPublishedPlan {
		c.Score += 10
		c.Feedback = append(c.Feedback, FeedbackItem{
			Status:      StatusMet,
			Description: "Published transition plan in place",
		})
	} else {
		c.Feedback = append(c.Feedback, FeedbackItem{
			Status:      StatusMissing,
			Description: "No published transition plan",
			Action:      "Publish a board-approved transition plan",
		})
	}

	if containsAny(text, scienceBasedTerms) {
		c.Score += 5
		c.Feedback = append(c.Feedback, FeedbackItem{
			Status:      StatusMet,
			Description: "Science-based target setting referenced",
		})
	} else {
		c.Feedback = append(c.Feedback, FeedbackItem{
			Status:      StatusMissing,
			Description: "No science-based target reference",
			Action:      "Submit targets to SBTi for validation",
		})
	}

	if containsAny(text, parisTerms) {
		c.Score += 5
		c.Feedback = append(c.Feedback, FeedbackItem{
			Status:      StatusMet,
			Description: "Paris Agreement alignment referenced",
		})
	} else {
		c.Feedback = append(c.Feedback, FeedbackItem{
			Status:      StatusMissing,
			Description: "No Paris Agreement or NDC alignment reference",
			Action:      "Reference alignment with the Paris Agreement 1.5°C pathway or the national NDC",
		})
	}

	return c
}

// scoreUseOfProceeds: substantive description (10) + stated project type (5)
// + clean-technology keyword (5).
func scoreUseOfProceeds(p ProjectInput) ComponentScore {
	c := ComponentScore{Name: "Use of Proceeds", MaxScore: componentMax}

	if len(p.Description) > 100 {
		c.Score += 10
		c.Feedback = append(c.Feedback, FeedbackItem{
			Status:      StatusMet,
			Description: "Detailed project description provided",
		})
	} else {
		c.Feedback = append(c.Feedback, FeedbackItem{
			Status:      StatusMissing,
			Description: "Project description too brief to evidence use of proceeds",
			Action:      "Expand the description of how loan proceeds will be applied",
		})
	}

	if p.ProjectType != "" {
		c.Score += 5
		c.Feedback = append(c.Feedback, FeedbackItem{
			Status:      StatusMet,
			Description: "Project type specified",
		})
	} else {
		c.Feedback = append(c.Feedback, FeedbackItem{
			Status:      StatusMissing,
			Description: "Project type not specified",
			Action:      "Classify the project type",
		})
	}

	if containsAny(strings.ToLower(p.Description), cleanTechTerms) {
		c.Score += 5
		c.Feedback = append(c.Feedback, FeedbackItem{
			Status:      StatusMet,
			Description: "Clean technology focus identified in description",
		})
	} else {
		c.Feedback = append(c.Feedback, FeedbackItem{
			Status:      StatusMissing,
			Description: "No clean technology focus identified",
			Action:      "Describe the clean or transition technologies the proceeds fund",
		})
	}

	return c
}

// emissionsBasis resolves the baseline/target pair and its label, applying
// the document-totals-over-scope-sums precedence rule.
func emissionsBasis(p ProjectInput) (baseline, target float64, source string) {
	if p.TotalBaselineEmissions > 0 && p.TotalTargetEmissions > 0 {
		return p.TotalBaselineEmissions, p.TotalTargetEmissions, "document totals"
	}
	baseline = p.CurrentEmissions.Scope1 + p.CurrentEmissions.Scope2
	target = p.TargetEmissions.Scope1 + p.TargetEmissions.Scope2
	return baseline, target, "Scope 1+2"
}

// reductionPercent resolves the reduction figure, preferring the
// caller-stated percentage when positive.
func reductionPercent(p ProjectInput) (float64, bool) {
	if p.StatedReductionPercent > 0 {
		return p.StatedReductionPercent, true
	}
	baseline, target, _ := emissionsBasis(p)
	if baseline <= 0 {
		return 0, false
	}
	return (baseline - target) / baseline * 100, true
}

// scoreTargetAmbition: reduction depth (15) + target-year horizon (5)
func scoreTargetAmbition(p ProjectInput) ComponentScore {
	c := ComponentScore{Name: "Target Ambition", MaxScore: componentMax}

	_, _, source := emissionsBasis(p)
	reduction, available := reductionPercent(p)

	switch {
	case available && reduction >= ambitionMetThreshold:
		c.Score += 15
		c.Feedback = append(c.Feedback, FeedbackItem{
			Status:      StatusMet,
			Description: fmt.Sprintf("Targeted reduction of %.1f%% (%s) exceeds the 1.5°C pathway threshold", reduction, source),
		})
	case available && reduction >= ambitionPartialThreshold:
		c.Score += 10
		c.Feedback = append(c.Feedback, FeedbackItem{
			Status:      StatusPartial,
			Description: fmt.Sprintf("Targeted reduction of %.1f%% (%s) falls short of the 42%% science-based threshold", reduction, source),
			Action:      fmt.Sprintf("Raise the reduction target by %.1f points to reach 42%%", ambitionMetThreshold-reduction),
		})
	case available && reduction > 0:
		c.Score += 5
		c.Feedback = append(c.Feedback, FeedbackItem{
			Status:      StatusPartial,
			Description: fmt.Sprintf("Targeted reduction of %.1f%% (%s) is well below science-based ambition", reduction, source),
			Action:      "Strengthen the reduction target toward the 42% benchmark",
		})
	default:
		c.Feedback = append(c.Feedback, FeedbackItem{
			Status:      StatusMissing,
			Description: "No usable baseline and target emissions data",
			Action:      "Provide baseline and target emissions so ambition can be assessed",
		})
	}

	switch {
	case p.TargetYear > 0 && p.TargetYear <= nearTermTargetYear:
		c.Score += 5
		c.Feedback = append(c.Feedback, FeedbackItem{
			Status:      StatusMet,
			Description: fmt.Sprintf("Near-term target year %d", p.TargetYear),
		})
	case p.TargetYear > nearTermTargetYear && p.TargetYear <= longTermTargetYear:
		c.Feedback = append(c.Feedback, FeedbackItem{
			Status:      StatusPartial,
			Description: fmt.Sprintf("Target year %d is beyond the near-term window", p.TargetYear),
			Action:      "Add an interim 2030 target",
		})
	default:
		c.Feedback = append(c.Feedback, FeedbackItem{
			Status:      StatusMissing,
			Description: "No realistic target year stated",
			Action:      "Commit to a target year no later than 2050",
		})
	}

	return c
}

// scoreReportingVerification: third-party verification (15) + Scope 3
// reporting (5), with sector materiality deciding how hard to mark a gap.
func scoreReportingVerification(p ProjectInput) ComponentScore {
	c := ComponentScore{Name: "Reporting & Verification", MaxScore: componentMax}

	if p.ThirdPartyVerification {
		c.Score += 15
		c.Feedback = append(c.Feedback, FeedbackItem{
			Status:      StatusMet,
			Description: "Third-party verification committed",
		})
	} else {
		c.Feedback = append(c.Feedback, FeedbackItem{
			Status:      StatusMissing,
			Description: "No third-party verification of emissions reporting",
			Action:      "Engage a named independent auditor or verifier",
		})
	}

	if p.CurrentEmissions.Scope3 != nil && *p.CurrentEmissions.Scope3 > 0 {
		c.Score += 5
		c.Feedback = append(c.Feedback, FeedbackItem{
			Status:      StatusMet,
			Description: "Scope 3 emissions reported",
		})
	} else if scope3MaterialSectors[p.Sector] {
		c.Feedback = append(c.Feedback, FeedbackItem{
			Status:      StatusMissing,
			Description: fmt.Sprintf("Scope 3 emissions are material for the %s sector and are not reported", SectorName(p.Sector)),
			Action:      "Measure and report Scope 3 emissions",
		})
	} else {
		c.Feedback = append(c.Feedback, FeedbackItem{
			Status:      StatusPartial,
			Description: "Scope 3 emissions not reported",
			Action:      "Consider measuring value-chain emissions",
		})
	}

	return c
}

// scoreProjectSelection: sector priority tier (10/8/5) + financing
// completeness (5) + equity adequacy (5).
func scoreProjectSelection(p ProjectInput) ComponentScore {
	c := ComponentScore{Name: "Project Selection", MaxScore: componentMax}

	switch {
	case topPrioritySectors[p.Sector]:
		c.Score += 10
		c.Feedback = append(c.Feedback, FeedbackItem{
			Status:      StatusMet,
			Description: fmt.Sprintf("%s is a top-priority transition sector", SectorName(p.Sector)),
		})
	case highPrioritySectors[p.Sector]:
		c.Score += 8
		c.Feedback = append(c.Feedback, FeedbackItem{
			Status:      StatusMet,
			Description: fmt.Sprintf("%s is a high-priority transition sector", SectorName(p.Sector)),
		})
	default:
		c.Score += 5
		c.Feedback = append(c.Feedback, FeedbackItem{
			Status:      StatusPartial,
			Description: fmt.Sprintf("%s is outside the priority transition sectors", SectorName(p.Sector)),
			Action:      "Explain the sector's contribution to the national transition pathway",
		})
	}

	if p.TotalCost > 0 && p.DebtAmount > 0 {
		c.Score += 5
		c.Feedback = append(c.Feedback, FeedbackItem{
			Status:      StatusMet,
			Description: "Financing structure specified",
		})
	} else {
		c.Feedback = append(c.Feedback, FeedbackItem{
			Status:      StatusMissing,
			Description: "Financing structure incomplete",
			Action:      "Provide total project cost and the debt amount sought",
		})
	}

	equityRatio := 0.0
	if p.TotalCost > 0 {
		equityRatio = p.EquityAmount / p.TotalCost
	}
	switch {
	case equityRatio >= minEquityRatio:
		c.Score += 5
		c.Feedback = append(c.Feedback, FeedbackItem{
			Status:      StatusMet,
			Description: fmt.Sprintf("Equity contribution of %.0f%% meets the minimum", equityRatio*100),
		})
	case equityRatio > 0:
		c.Feedback = append(c.Feedback, FeedbackItem{
			Status:      StatusPartial,
			Description: fmt.Sprintf("Equity contribution of %.0f%% is below the 20%% minimum", equityRatio*100),
			Action:      "Raise the sponsor equity contribution to at least 20% of total cost",
		})
	default:
		c.Feedback = append(c.Feedback, FeedbackItem{
			Status:      StatusMissing,
			Description: "No sponsor equity contribution",
			Action:      "Commit sponsor equity of at least 20% of total cost",
		})
	}

	return c
}
