package assessment

import "testing"

func perfectScore() ScoreResult {
	return ScoreResult{Overall: 100}
}

func lowRisk() RiskAssessment {
	return RiskAssessment{OverallRisk: RiskLow, RiskScore: 0}
}

func TestClassify_RegionGateOutranksScore(t *testing.T) {
	p := baselineInput()
	p.Country = "norway"

	v := Classify(p, perfectScore(), lowRisk())

	if v.Status != StatusIneligible {
		t.Errorf("status = %s, want ineligible", v.Status)
	}
	if v.OverallScore != 0 {
		t.Errorf("overall score = %d, want 0 (region gate zeroes)", v.OverallScore)
	}
	if len(v.IneligibilityReasons) != 1 || v.IneligibilityReasons[0] != reasonNotInAfrica {
		t.Errorf("reasons = %v, want [%q]", v.IneligibilityReasons, reasonNotInAfrica)
	}
}

func TestClassify_FossilFuelGate(t *testing.T) {
	p := baselineInput()
	p.Description = "Expansion of offshore drilling capacity to 5000 barrels per day"

	v := Classify(p, perfectScore(), lowRisk())

	if v.Status != StatusIneligible {
		t.Errorf("status = %s, want ineligible", v.Status)
	}
	if v.OverallScore != 0 {
		t.Errorf("overall score = %d, want 0 (fossil gate zeroes)", v.OverallScore)
	}
	if len(v.IneligibilityReasons) != 1 || v.IneligibilityReasons[0] != reasonFossilFuel {
		t.Errorf("reasons = %v, want [%q]", v.IneligibilityReasons, reasonFossilFuel)
	}
}

func TestClassify_SevereGreenwashingGateKeepsScore(t *testing.T) {
	risk := RiskAssessment{OverallRisk: RiskHigh, RiskScore: 80}

	v := Classify(baselineInput(), perfectScore(), risk)

	if v.Status != StatusIneligible {
		t.Errorf("status = %s, want ineligible", v.Status)
	}
	// The severe gate disqualifies without zeroing: only the region and
	// fossil gates force a zero.
	if v.OverallScore != 100 {
		t.Errorf("overall score = %d, want 100", v.OverallScore)
	}
	if v.GreenwashingPenalty != 0 {
		t.Errorf("penalty = %d, want 0 when the gate fires", v.GreenwashingPenalty)
	}
	if len(v.IneligibilityReasons) != 1 || v.IneligibilityReasons[0] != reasonGreenwashing {
		t.Errorf("reasons = %v, want [%q]", v.IneligibilityReasons, reasonGreenwashing)
	}
}

func TestClassify_HighRiskBelowSevereThresholdBlendsInstead(t *testing.T) {
	risk := RiskAssessment{OverallRisk: RiskHigh, RiskScore: 79}

	v := Classify(baselineInput(), perfectScore(), risk)

	// penalty = round(30 + 0.79*20) = 46, adjusted = 54; high risk also
	// blocks the eligible band, so 54 lands in partial.
	if v.GreenwashingPenalty != 46 {
		t.Errorf("penalty = %d, want 46", v.GreenwashingPenalty)
	}
	if v.OverallScore != 54 {
		t.Errorf("overall score = %d, want 54", v.OverallScore)
	}
	if v.Status != StatusPartiallyEligible {
		t.Errorf("status = %s, want partial", v.Status)
	}
}

func TestClassify_MediumRiskBlend(t *testing.T) {
	score := ScoreResult{Overall: 80}
	risk := RiskAssessment{OverallRisk: RiskMedium, RiskScore: 50}

	v := Classify(baselineInput(), score, risk)

	// penalty = round(10 + 0.5*15) = 18
	if v.GreenwashingPenalty != 18 {
		t.Errorf("penalty = %d, want 18", v.GreenwashingPenalty)
	}
	if v.OverallScore != 62 {
		t.Errorf("overall score = %d, want 62", v.OverallScore)
	}
	if v.Status != StatusEligible {
		t.Errorf("status = %s, want eligible", v.Status)
	}
	if v.BaseScore != 80 {
		t.Errorf("base score = %d, want 80", v.BaseScore)
	}
}

func TestClassify_StatusBands(t *testing.T) {
	tests := []struct {
		name    string
		overall int
		want    EligibilityStatus
	}{
		{"eligible floor", 60, StatusEligible},
		{"partial ceiling", 59, StatusPartiallyEligible},
		{"partial floor", 30, StatusPartiallyEligible},
		{"ineligible ceiling", 29, StatusIneligible},
		{"zero", 0, StatusIneligible},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Classify(baselineInput(), ScoreResult{Overall: tt.overall}, lowRisk())
			if v.Status != tt.want {
				t.Errorf("status at score %d = %s, want %s", tt.overall, v.Status, tt.want)
			}
		})
	}
}

func TestClassify_BelowThresholdCarriesReason(t *testing.T) {
	v := Classify(baselineInput(), ScoreResult{Overall: 20}, lowRisk())

	if v.Status != StatusIneligible {
		t.Fatalf("status = %s, want ineligible", v.Status)
	}
	if len(v.IneligibilityReasons) != 1 || v.IneligibilityReasons[0] != reasonBelowThreshold {
		t.Errorf("reasons = %v, want [%q]", v.IneligibilityReasons, reasonBelowThreshold)
	}
}

func TestClassify_PenaltyNeverDrivesScoreNegative(t *testing.T) {
	score := ScoreResult{Overall: 10}
	risk := RiskAssessment{OverallRisk: RiskHigh, RiskScore: 75}

	v := Classify(baselineInput(), score, risk)
	if v.OverallScore != 0 {
		t.Errorf("overall score = %d, want clamped to 0", v.OverallScore)
	}
}

func TestGreenwashingPenalty_Bands(t *testing.T) {
	tests := []struct {
		name string
		risk RiskAssessment
		want int
	}{
		{"low risk", RiskAssessment{OverallRisk: RiskLow, RiskScore: 30}, 0},
		{"medium floor", RiskAssessment{OverallRisk: RiskMedium, RiskScore: 40}, 16},
		{"medium ceiling", RiskAssessment{OverallRisk: RiskMedium, RiskScore: 69}, 20},
		{"high floor", RiskAssessment{OverallRisk: RiskHigh, RiskScore: 70}, 44},
		{"high ceiling", RiskAssessment{OverallRisk: RiskHigh, RiskScore: 100}, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := greenwashingPenalty(tt.risk); got != tt.want {
				t.Errorf("penalty = %d, want %d", got, tt.want)
			}
		})
	}
}
