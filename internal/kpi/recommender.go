// Package kpi produces deterministic KPI/SPT recommendations from static
// sector tables. This is the rule-based fallback the assessment flow must
// always be able to rely on; an AI-backed recommender, if ever added,
// would replace it per request, not silently inside scoring.
package kpi

import (
	"fmt"

	"github.com/joshghal/verdex-webapp-sub002/internal/assessment"
)

// KPI is one recommended key performance indicator
type KPI struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Unit        string `json:"unit"`
	Frequency   string `json:"frequency"`
}

// SPT is one recommended sustainability performance target
type SPT struct {
	Description string `json:"description"`
	TargetYear  int    `json:"target_year,omitempty"`
}

// Recommendations is the recommender output. AIGenerated is always false
// for this rule-based implementation.
type Recommendations struct {
	KPIs                 []KPI    `json:"kpis"`
	SPTs                 []SPT    `json:"spts"`
	FrameworksReferenced []string `json:"frameworks_referenced"`
	AIGenerated          bool     `json:"ai_generated"`
}

var frameworks = []string{
	"LMA Sustainability-Linked Loan Principles",
	"ICMA Climate Transition Finance Handbook",
	"GHG Protocol Corporate Standard",
}

// Always recommended regardless of sector
var baseKPIs = []KPI{
	{
		Name:        "Absolute Scope 1+2 GHG emissions",
		Description: "Total direct and energy-indirect emissions against the committed baseline",
		Unit:        "tCO2e",
		Frequency:   "annual",
	},
}

// sectorKPIs holds the sector-specific indicator tables
var sectorKPIs = map[assessment.Sector][]KPI{
	assessment.SectorEnergy: {
		{Name: "Installed renewable capacity", Description: "Operational renewable generation capacity added by the project", Unit: "MW", Frequency: "quarterly"},
		{Name: "Grid emissions intensity", Description: "Emissions per unit of electricity delivered", Unit: "gCO2e/kWh", Frequency: "annual"},
	},
	assessment.SectorAgriculture: {
		{Name: "Emissions intensity of production", Description: "Emissions per tonne of output", Unit: "tCO2e/tonne", Frequency: "annual"},
		{Name: "Land under climate-smart practice", Description: "Hectares converted to regenerative or climate-smart management", Unit: "ha", Frequency: "annual"},
	},
	assessment.SectorTransport: {
		{Name: "Fleet electrification share", Description: "Zero-emission vehicles as a share of the active fleet", Unit: "%", Frequency: "quarterly"},
		{Name: "Passenger transport intensity", Description: "Emissions per passenger-kilometre", Unit: "gCO2e/pkm", Frequency: "annual"},
	},
	assessment.SectorManufacturing: {
		{Name: "Energy intensity of production", Description: "Energy consumed per unit of output", Unit: "MWh/tonne", Frequency: "quarterly"},
		{Name: "Scope 3 supplier coverage", Description: "Share of procurement spend with measured upstream emissions", Unit: "%", Frequency: "annual"},
	},
	assessment.SectorWater: {
		{Name: "Energy intensity of treatment", Description: "Energy consumed per cubic metre treated", Unit: "kWh/m3", Frequency: "quarterly"},
	},
	assessment.SectorWasteManagement: {
		{Name: "Landfill diversion rate", Description: "Share of collected waste diverted from landfill", Unit: "%", Frequency: "quarterly"},
		{Name: "Methane captured", Description: "Methane captured and destroyed or utilized", Unit: "tCO2e", Frequency: "annual"},
	},
	assessment.SectorMining: {
		{Name: "Emissions intensity of extraction", Description: "Emissions per tonne of ore processed", Unit: "tCO2e/tonne", Frequency: "annual"},
	},
	assessment.SectorRealEstate: {
		{Name: "Building energy intensity", Description: "Energy consumed per square metre of floor area", Unit: "kWh/m2", Frequency: "annual"},
	},
	assessment.SectorICT: {
		{Name: "Renewable electricity share", Description: "Share of facility electricity from renewable sources", Unit: "%", Frequency: "quarterly"},
	},
}

// Recommend builds the KPI/SPT set for a project. Deterministic: the same
// input always yields the same recommendations.
func Recommend(p assessment.ProjectInput) Recommendations {
	rec := Recommendations{
		KPIs:                 append([]KPI{}, baseKPIs...),
		SPTs:                 []SPT{},
		FrameworksReferenced: frameworks,
		AIGenerated:          false,
	}

	if extra, ok := sectorKPIs[p.Sector]; ok {
		rec.KPIs = append(rec.KPIs, extra...)
	}

	rec.SPTs = buildSPTs(p)

	return rec
}

// buildSPTs derives targets from the project's own stated ambition where
// available, falling back to generic commitments.
func buildSPTs(p assessment.ProjectInput) []SPT {
	spts := []SPT{}

	reduction := p.StatedReductionPercent
	if reduction <= 0 && p.TotalBaselineEmissions > 0 && p.TotalTargetEmissions > 0 {
		reduction = (p.TotalBaselineEmissions - p.TotalTargetEmissions) / p.TotalBaselineEmissions * 100
	}

	if reduction > 0 && p.TargetYear > 0 {
		spts = append(spts, SPT{
			Description: fmt.Sprintf("Reduce Scope 1+2 emissions by %.0f%% against the committed baseline", reduction),
			TargetYear:  p.TargetYear,
		})
	} else {
		spts = append(spts, SPT{
			Description: "Establish a verified emissions baseline and commit a dated reduction target",
		})
	}

	if !p.ThirdPartyVerification {
		spts = append(spts, SPT{
			Description: "Appoint an independent verifier for annual emissions reporting",
		})
	}

	if p.CurrentEmissions.Scope3 == nil {
		spts = append(spts, SPT{
			Description: "Complete a Scope 3 screening and report material categories",
		})
	}

	return spts
}
