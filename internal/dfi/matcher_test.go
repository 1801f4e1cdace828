package dfi

import (
	"strings"
	"testing"

	"github.com/joshghal/verdex-webapp-sub002/internal/assessment"
	"github.com/joshghal/verdex-webapp-sub002/internal/refdata"
)

func energyProject() assessment.ProjectInput {
	return assessment.ProjectInput{
		ProjectName:            "Grid-Scale Solar Park",
		Country:                "kenya",
		Sector:                 assessment.SectorEnergy,
		TotalCost:              30_000_000,
		DebtAmount:             20_000_000,
		EquityAmount:           10_000_000,
		ThirdPartyVerification: true,
	}
}

func TestMatchDFIs_EnergyProjectFindsLenders(t *testing.T) {
	matches := MatchDFIs(energyProject(), refdata.Lookup("kenya"))

	if len(matches) == 0 {
		t.Fatal("expected matches for a verified energy project in a supported country")
	}

	// Every institution carries energy in its mandate; with region, ticket,
	// and verification all satisfied the top match scores 100.
	if matches[0].MatchScore != 100 {
		t.Errorf("top match score = %d, want 100", matches[0].MatchScore)
	}
	for _, m := range matches {
		if m.MatchScore < 50 {
			t.Errorf("%s returned below the inclusion cutoff: %d", m.DFI, m.MatchScore)
		}
		if m.RecommendedRole == "" {
			t.Errorf("%s has no recommended role", m.DFI)
		}
	}
}

func TestMatchDFIs_SortedByScoreThenName(t *testing.T) {
	matches := MatchDFIs(energyProject(), refdata.Lookup("kenya"))

	for i := 1; i < len(matches); i++ {
		prev, cur := matches[i-1], matches[i]
		if cur.MatchScore > prev.MatchScore {
			t.Fatalf("matches not sorted by score at index %d", i)
		}
		if cur.MatchScore == prev.MatchScore && cur.DFI < prev.DFI {
			t.Fatalf("tie at score %d not broken by name at index %d", cur.MatchScore, i)
		}
	}
}

func TestMatchDFIs_Deterministic(t *testing.T) {
	p := energyProject()
	profile := refdata.Lookup("kenya")

	first := MatchDFIs(p, profile)
	second := MatchDFIs(p, profile)

	if len(first) != len(second) {
		t.Fatal("match counts differ between identical runs")
	}
	for i := range first {
		if first[i].DFI != second[i].DFI || first[i].MatchScore != second[i].MatchScore {
			t.Fatalf("match %d differs between identical runs", i)
		}
	}
}

func TestMatchDFIs_TicketBelowMinimumRaisesConcern(t *testing.T) {
	p := energyProject()
	p.DebtAmount = 1_000_000 // below every minimum ticket

	matches := MatchDFIs(p, refdata.Lookup("kenya"))

	for _, m := range matches {
		found := false
		for _, c := range m.Concerns {
			if strings.Contains(c, "below the institution's minimum ticket") {
				found = true
			}
		}
		if !found {
			t.Errorf("%s should flag the undersized ticket", m.DFI)
		}
		if m.EstimatedSize != 0 {
			t.Errorf("%s should not estimate a size for an out-of-band ticket", m.DFI)
		}
	}
}

func TestMatchDFIs_OversizedTicketSuggestsSyndication(t *testing.T) {
	p := energyProject()
	p.DebtAmount = 600_000_000 // above every maximum ticket

	matches := MatchDFIs(p, refdata.Lookup("kenya"))

	for _, m := range matches {
		found := false
		for _, c := range m.Concerns {
			if strings.Contains(c, "syndication required") {
				found = true
			}
		}
		if !found {
			t.Errorf("%s should recommend syndication for an oversized ticket", m.DFI)
		}
		if m.EstimatedSize == 0 {
			t.Errorf("%s should cap the estimated size at its maximum ticket", m.DFI)
		}
	}
}

func TestMatchDFIs_HighPoliticalRiskConcern(t *testing.T) {
	p := energyProject()
	p.Country = "nigeria"

	matches := MatchDFIs(p, refdata.Lookup("nigeria"))
	if len(matches) == 0 {
		t.Fatal("expected matches for nigeria")
	}

	for _, m := range matches {
		found := false
		for _, c := range m.Concerns {
			if strings.Contains(c, "political risk") {
				found = true
			}
		}
		if !found {
			t.Errorf("%s should carry a political risk concern for nigeria", m.DFI)
		}
	}
}

func TestMatchDFIs_NilProfileLimitsRegionPoints(t *testing.T) {
	p := energyProject()
	p.Country = "unsupported"

	matches := MatchDFIs(p, nil)

	// Without a profile no institution can earn region points, so the
	// ceiling is sector + ticket + verification = 70.
	for _, m := range matches {
		if m.MatchScore > 70 {
			t.Errorf("%s scored %d without a country profile, ceiling is 70", m.DFI, m.MatchScore)
		}
	}
}

func TestMatchDFIs_SectorOutsideAllMandates(t *testing.T) {
	p := energyProject()
	p.Sector = assessment.SectorRealEstate

	matches := MatchDFIs(p, refdata.Lookup("kenya"))

	// No mandate covers real estate: best case is region + ticket +
	// verification = 60, and regional funds without East Africa drop out.
	for _, m := range matches {
		if m.MatchScore > 60 {
			t.Errorf("%s scored %d for an out-of-mandate sector", m.DFI, m.MatchScore)
		}
	}
}
