// Package assessment implements the deterministic scoring and eligibility
// core: the LMA five-component rubric scorer, the greenwashing detector,
// and the eligibility classifier. Every operation is a pure, synchronous
// function over an immutable ProjectInput — no I/O, no clock, no shared
// state — so concurrent callers need no coordination.
package assessment

import "time"

// Result is the externally visible outcome of one assessment. The
// presentation-only fields (DFI matches, KPI recommendations, next steps)
// are attached by the service layer, never computed here, and never feed
// back into scoring. AssessmentDate is likewise stamped by the caller so
// the core stays clock-free; it must be excluded from equality checks.
type Result struct {
	ProjectName string `json:"project_name"`
	Country     string `json:"country"`
	Sector      Sector `json:"sector"`

	EligibilityStatus    EligibilityStatus `json:"eligibility_status"`
	IneligibilityReasons []string          `json:"ineligibility_reasons"`

	OverallScore        int `json:"overall_score"`
	LMABaseScore        int `json:"lma_base_score"`
	GreenwashingPenalty int `json:"greenwashing_penalty"`

	LMAComponents    []ComponentScore `json:"lma_components"`
	GreenwashingRisk RiskAssessment   `json:"greenwashing_risk"`

	AssessmentDate time.Time `json:"assessment_date,omitempty"`
}

// Assess runs the detector and component scorer independently over the
// same input, then blends their outputs through the classifier. It never
// fails for well-formed input: ineligible is a result, not an error.
func Assess(p ProjectInput) Result {
	risk := DetectGreenwashing(p)
	score := ScoreComponents(p)
	verdict := Classify(p, score, risk)

	return Result{
		ProjectName:          p.ProjectName,
		Country:              p.Country,
		Sector:               p.Sector,
		EligibilityStatus:    verdict.Status,
		IneligibilityReasons: verdict.IneligibilityReasons,
		OverallScore:         verdict.OverallScore,
		LMABaseScore:         verdict.BaseScore,
		GreenwashingPenalty:  verdict.GreenwashingPenalty,
		LMAComponents:        score.Components,
		GreenwashingRisk:     risk,
	}
}
