// Package dfi matches assessed projects to development-finance
// institutions using static mandate tables. Matching is presentation-only:
// its output never feeds back into scoring.
package dfi

import (
	"sort"

	"github.com/joshghal/verdex-webapp-sub002/internal/assessment"
	"github.com/joshghal/verdex-webapp-sub002/internal/refdata"
)

// Match is one proposed financier for a project
type Match struct {
	DFI             string   `json:"dfi"`
	MatchScore      int      `json:"match_score"`
	MatchReasons    []string `json:"match_reasons"`
	Concerns        []string `json:"concerns"`
	RecommendedRole string   `json:"recommended_role"`
	EstimatedSize   float64  `json:"estimated_size,omitempty"`
}

// institution describes one DFI's investment mandate
type institution struct {
	name        string
	sectors     []assessment.Sector
	regions     []string // empty means pan-African
	minTicket   float64  // USD
	maxTicket   float64  // USD
	defaultRole string
}

// Mandate table. Ticket bands are indicative mid-market figures per
// institution's published transition-finance activity.
var institutions = []institution{
	{
		name:        "African Development Bank (AfDB)",
		sectors:     []assessment.Sector{assessment.SectorEnergy, assessment.SectorAgriculture, assessment.SectorTransport, assessment.SectorWater},
		minTicket:   10_000_000, maxTicket: 300_000_000,
		defaultRole: "anchor lender",
	},
	{
		name:        "International Finance Corporation (IFC)",
		sectors:     []assessment.Sector{assessment.SectorEnergy, assessment.SectorManufacturing, assessment.SectorAgriculture, assessment.SectorICT},
		minTicket:   5_000_000, maxTicket: 250_000_000,
		defaultRole: "senior lender",
	},
	{
		name:    "DEG",
		sectors: []assessment.Sector{assessment.SectorManufacturing, assessment.SectorAgriculture, assessment.SectorEnergy},
		regions: []string{refdata.RegionEastAfrica, refdata.RegionWestAfrica, refdata.RegionSouthernAfrica},
		minTicket: 5_000_000, maxTicket: 100_000_000,
		defaultRole: "co-lender",
	},
	{
		name:    "Proparco",
		sectors: []assessment.Sector{assessment.SectorEnergy, assessment.SectorAgriculture, assessment.SectorWater},
		regions: []string{refdata.RegionWestAfrica, refdata.RegionNorthAfrica},
		minTicket: 3_000_000, maxTicket: 120_000_000,
		defaultRole: "co-lender",
	},
	{
		name:        "FMO",
		sectors:     []assessment.Sector{assessment.SectorEnergy, assessment.SectorAgriculture, assessment.SectorWasteManagement},
		minTicket:   5_000_000, maxTicket: 150_000_000,
		defaultRole: "mezzanine provider",
	},
	{
		name:    "British International Investment (BII)",
		sectors: []assessment.Sector{assessment.SectorEnergy, assessment.SectorICT, assessment.SectorManufacturing},
		regions: []string{refdata.RegionEastAfrica, refdata.RegionWestAfrica, refdata.RegionSouthernAfrica},
		minTicket: 10_000_000, maxTicket: 200_000_000,
		defaultRole: "equity investor",
	},
	{
		name:        "U.S. International Development Finance Corporation (DFC)",
		sectors:     []assessment.Sector{assessment.SectorEnergy, assessment.SectorTransport, assessment.SectorWater},
		minTicket:   10_000_000, maxTicket: 500_000_000,
		defaultRole: "senior lender",
	},
	{
		name:        "European Investment Bank (EIB)",
		sectors:     []assessment.Sector{assessment.SectorEnergy, assessment.SectorTransport, assessment.SectorWater, assessment.SectorWasteManagement},
		minTicket:   25_000_000, maxTicket: 400_000_000,
		defaultRole: "anchor lender",
	},
}

// Scoring weights and the inclusion cutoff
const (
	sectorWeight       = 40
	regionWeight       = 30
	ticketWeight       = 20
	verificationWeight = 10

	matchCutoff = 50
)

// MatchDFIs proposes financiers for a project, ranked by mandate fit.
// The profile may be nil for unsupported countries, in which case only
// pan-African mandates can contribute region points. Deterministic: equal
// scores tie-break on institution name.
func MatchDFIs(p assessment.ProjectInput, profile *refdata.CountryProfile) []Match {
	matches := []Match{}

	for _, inst := range institutions {
		m := Match{
			DFI:             inst.name,
			RecommendedRole: inst.defaultRole,
			MatchReasons:    []string{},
			Concerns:        []string{},
		}

		if sectorInMandate(inst, p.Sector) {
			m.MatchScore += sectorWeight
			m.MatchReasons = append(m.MatchReasons, assessment.SectorName(p.Sector)+" is within the institution's sector mandate")
		}

		if regionInMandate(inst, profile) {
			m.MatchScore += regionWeight
			if profile != nil {
				m.MatchReasons = append(m.MatchReasons, profile.Region+" is within the institution's regional focus")
			} else {
				m.MatchReasons = append(m.MatchReasons, "Pan-African mandate")
			}
		}

		if p.DebtAmount >= inst.minTicket && p.DebtAmount <= inst.maxTicket {
			m.MatchScore += ticketWeight
			m.MatchReasons = append(m.MatchReasons, "Requested debt falls within the institution's ticket band")
			m.EstimatedSize = p.DebtAmount
		} else if p.DebtAmount > 0 && p.DebtAmount < inst.minTicket {
			m.Concerns = append(m.Concerns, "Requested debt is below the institution's minimum ticket")
		} else if p.DebtAmount > inst.maxTicket {
			m.Concerns = append(m.Concerns, "Requested debt exceeds the institution's maximum ticket; syndication required")
			m.EstimatedSize = inst.maxTicket
		}

		if p.ThirdPartyVerification {
			m.MatchScore += verificationWeight
			m.MatchReasons = append(m.MatchReasons, "Third-party verification satisfies DFI reporting standards")
		} else {
			m.Concerns = append(m.Concerns, "Independent verification will be required during due diligence")
		}

		if profile != nil && profile.PoliticalRiskLevel == "high" {
			m.Concerns = append(m.Concerns, "Elevated political risk may require guarantee cover")
		}

		if m.MatchScore >= matchCutoff {
			matches = append(matches, m)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].MatchScore != matches[j].MatchScore {
			return matches[i].MatchScore > matches[j].MatchScore
		}
		return matches[i].DFI < matches[j].DFI
	})

	return matches
}

func sectorInMandate(inst institution, sector assessment.Sector) bool {
	for _, s := range inst.sectors {
		if s == sector {
			return true
		}
	}
	return false
}

func regionInMandate(inst institution, profile *refdata.CountryProfile) bool {
	if len(inst.regions) == 0 {
		// Pan-African mandate covers every supported country
		return profile != nil
	}
	if profile == nil {
		return false
	}
	for _, r := range inst.regions {
		if r == profile.Region {
			return true
		}
	}
	return false
}
