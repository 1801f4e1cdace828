package assessment

import (
	"strings"
	"testing"
)

func baselineInput() ProjectInput {
	return ProjectInput{
		ProjectName: "Lake Turkana Wind Extension",
		Country:     "kenya",
		Sector:      SectorEnergy,
	}
}

func componentByName(t *testing.T, result ScoreResult, name string) ComponentScore {
	t.Helper()
	for _, c := range result.Components {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("component %q not found", name)
	return ComponentScore{}
}

func TestScoreComponents_FiveComponentsOfTwenty(t *testing.T) {
	result := ScoreComponents(baselineInput())

	if len(result.Components) != 5 {
		t.Fatalf("expected 5 components, got %d", len(result.Components))
	}

	sum := 0
	for _, c := range result.Components {
		if c.MaxScore != 20 {
			t.Errorf("component %s max score = %d, want 20", c.Name, c.MaxScore)
		}
		if c.Score < 0 || c.Score > 20 {
			t.Errorf("component %s score %d out of [0,20]", c.Name, c.Score)
		}
		sum += c.Score
	}
	if result.Overall != sum {
		t.Errorf("overall %d does not equal component sum %d", result.Overall, sum)
	}
}

func TestStrategyAlignment_FullMarks(t *testing.T) {
	p := baselineInput()
	p.HasPublishedPlan = true
	p.TransitionStrategy = "Targets validated by SBTi and aligned with the Paris Agreement"

	c := componentByName(t, ScoreComponents(p), "Strategy Alignment")
	if c.Score != 20 {
		t.Errorf("strategy score = %d, want 20", c.Score)
	}
}

func TestStrategyAlignment_NoPlanNoReferences(t *testing.T) {
	c := componentByName(t, ScoreComponents(baselineInput()), "Strategy Alignment")
	if c.Score != 0 {
		t.Errorf("strategy score = %d, want 0", c.Score)
	}
	for _, f := range c.Feedback {
		if f.Status != StatusMissing {
			t.Errorf("feedback %q status = %s, want missing", f.Description, f.Status)
		}
		if f.Action == "" {
			t.Errorf("feedback %q has no corrective action", f.Description)
		}
	}
}

func TestUseOfProceeds_DescriptionLengthThreshold(t *testing.T) {
	p := baselineInput()
	p.Description = strings.Repeat("x", 100)
	short := componentByName(t, ScoreComponents(p), "Use of Proceeds")

	p.Description = strings.Repeat("x", 101)
	long := componentByName(t, ScoreComponents(p), "Use of Proceeds")

	if long.Score-short.Score != 10 {
		t.Errorf("description length bonus = %d, want 10", long.Score-short.Score)
	}
}

func TestTargetAmbition_ReductionBands(t *testing.T) {
	tests := []struct {
		name      string
		reduction float64
		want      int
	}{
		{"exactly at threshold", 42.0, 15},
		{"just below threshold", 41.99, 10},
		{"partial band floor", 25.0, 10},
		{"weak reduction", 24.99, 5},
		{"minimal reduction", 0.01, 5},
		{"no reduction", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := baselineInput()
			p.StatedReductionPercent = tt.reduction

			c := componentByName(t, ScoreComponents(p), "Target Ambition")
			if c.Score != tt.want {
				t.Errorf("ambition score = %d, want %d", c.Score, tt.want)
			}
		})
	}
}

func TestTargetAmbition_MonotonicInStatedReduction(t *testing.T) {
	prev := -1
	for _, reduction := range []float64{0, 5, 10, 24.99, 25, 30, 41.99, 42, 60, 100} {
		p := baselineInput()
		p.StatedReductionPercent = reduction

		score := componentByName(t, ScoreComponents(p), "Target Ambition").Score
		if score < prev {
			t.Fatalf("ambition score decreased to %d at reduction %.2f (was %d)", score, reduction, prev)
		}
		prev = score
	}
}

func TestTargetAmbition_DocumentTotalsTakePrecedence(t *testing.T) {
	p := baselineInput()
	// Scope sums would give 10%, document totals give 50%
	p.CurrentEmissions = Emissions{Scope1: 900, Scope2: 100}
	p.TargetEmissions = Emissions{Scope1: 850, Scope2: 50}
	p.TotalBaselineEmissions = 1000
	p.TotalTargetEmissions = 500

	c := componentByName(t, ScoreComponents(p), "Target Ambition")
	if c.Score != 15 {
		t.Errorf("ambition score = %d, want 15 from document totals", c.Score)
	}
	if !strings.Contains(c.Feedback[0].Description, "document totals") {
		t.Errorf("feedback should name the document-totals basis, got %q", c.Feedback[0].Description)
	}
}

func TestTargetAmbition_ScopeSumFallback(t *testing.T) {
	p := baselineInput()
	p.CurrentEmissions = Emissions{Scope1: 600, Scope2: 400}
	p.TargetEmissions = Emissions{Scope1: 300, Scope2: 200}

	c := componentByName(t, ScoreComponents(p), "Target Ambition")
	if c.Score != 15 {
		t.Errorf("ambition score = %d, want 15 from 50%% scope-sum reduction", c.Score)
	}
	if !strings.Contains(c.Feedback[0].Description, "Scope 1+2") {
		t.Errorf("feedback should name the Scope 1+2 basis, got %q", c.Feedback[0].Description)
	}
}

func TestTargetAmbition_TargetYearBands(t *testing.T) {
	tests := []struct {
		name   string
		year   int
		want   int
		status FeedbackStatus
	}{
		{"near term", 2030, 5, StatusMet},
		{"long term", 2031, 0, StatusPartial},
		{"end of window", 2050, 0, StatusPartial},
		{"beyond window", 2051, 0, StatusMissing},
		{"no year", 0, 0, StatusMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := baselineInput()
			p.TargetYear = tt.year

			c := componentByName(t, ScoreComponents(p), "Target Ambition")
			if c.Score != tt.want {
				t.Errorf("ambition score = %d, want %d", c.Score, tt.want)
			}
			yearFeedback := c.Feedback[len(c.Feedback)-1]
			if yearFeedback.Status != tt.status {
				t.Errorf("year feedback status = %s, want %s", yearFeedback.Status, tt.status)
			}
		})
	}
}

func TestReportingVerification_Scope3Materiality(t *testing.T) {
	tests := []struct {
		sector Sector
		want   FeedbackStatus
	}{
		{SectorAgriculture, StatusMissing},
		{SectorManufacturing, StatusMissing},
		{SectorMining, StatusMissing},
		{SectorRealEstate, StatusPartial},
		{SectorEnergy, StatusPartial},
	}

	for _, tt := range tests {
		t.Run(string(tt.sector), func(t *testing.T) {
			p := baselineInput()
			p.Sector = tt.sector

			c := componentByName(t, ScoreComponents(p), "Reporting & Verification")
			scope3Feedback := c.Feedback[len(c.Feedback)-1]
			if scope3Feedback.Status != tt.want {
				t.Errorf("scope 3 feedback status = %s, want %s", scope3Feedback.Status, tt.want)
			}
		})
	}
}

func TestReportingVerification_Scope3Reported(t *testing.T) {
	scope3 := 250.0
	p := baselineInput()
	p.ThirdPartyVerification = true
	p.CurrentEmissions.Scope3 = &scope3

	c := componentByName(t, ScoreComponents(p), "Reporting & Verification")
	if c.Score != 20 {
		t.Errorf("reporting score = %d, want 20", c.Score)
	}
}

func TestProjectSelection_SectorTiers(t *testing.T) {
	tests := []struct {
		sector Sector
		want   int
	}{
		{SectorEnergy, 10},
		{SectorAgriculture, 10},
		{SectorTransport, 8},
		{SectorManufacturing, 8},
		{SectorWater, 8},
		{SectorICT, 5},
		{SectorRealEstate, 5},
	}

	for _, tt := range tests {
		t.Run(string(tt.sector), func(t *testing.T) {
			p := baselineInput()
			p.Sector = tt.sector

			c := componentByName(t, ScoreComponents(p), "Project Selection")
			if c.Score != tt.want {
				t.Errorf("selection score = %d, want %d", c.Score, tt.want)
			}
		})
	}
}

func TestProjectSelection_EquityAdequacy(t *testing.T) {
	tests := []struct {
		name   string
		equity float64
		want   int
		status FeedbackStatus
	}{
		{"meets minimum", 2_000_000, 20, StatusMet},
		{"below minimum", 1_000_000, 15, StatusPartial},
		{"no equity", 0, 15, StatusMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := baselineInput()
			p.TotalCost = 10_000_000
			p.DebtAmount = 7_000_000
			p.EquityAmount = tt.equity

			c := componentByName(t, ScoreComponents(p), "Project Selection")
			if c.Score != tt.want {
				t.Errorf("selection score = %d, want %d", c.Score, tt.want)
			}
			equityFeedback := c.Feedback[len(c.Feedback)-1]
			if equityFeedback.Status != tt.status {
				t.Errorf("equity feedback status = %s, want %s", equityFeedback.Status, tt.status)
			}
		})
	}
}
