package assessment

import "strings"

// Sector identifies the economic sector of a project
type Sector string

// Supported sectors
const (
	SectorEnergy          Sector = "energy"
	SectorAgriculture     Sector = "agriculture"
	SectorTransport       Sector = "transport"
	SectorManufacturing   Sector = "manufacturing"
	SectorMining          Sector = "mining"
	SectorWater           Sector = "water"
	SectorWasteManagement Sector = "waste_management"
	SectorRealEstate      Sector = "real_estate"
	SectorICT             Sector = "ict"
)

// sectorNames maps sector codes to display names
var sectorNames = map[Sector]string{
	SectorEnergy:          "Energy",
	SectorAgriculture:     "Agriculture",
	SectorTransport:       "Transport",
	SectorManufacturing:   "Manufacturing",
	SectorMining:          "Mining",
	SectorWater:           "Water",
	SectorWasteManagement: "Waste Management",
	SectorRealEstate:      "Real Estate",
	SectorICT:             "Information & Communication Technology",
}

// AllSectors returns the supported sector codes in a stable order
func AllSectors() []Sector {
	return []Sector{
		SectorEnergy,
		SectorAgriculture,
		SectorTransport,
		SectorManufacturing,
		SectorMining,
		SectorWater,
		SectorWasteManagement,
		SectorRealEstate,
		SectorICT,
	}
}

// SectorName returns the display name for a sector code
func SectorName(s Sector) string {
	if name, ok := sectorNames[s]; ok {
		return name
	}
	return string(s)
}

// IsValidSector reports whether s is a supported sector code
func IsValidSector(s Sector) bool {
	_, ok := sectorNames[s]
	return ok
}

// Emissions holds GHG Protocol scope figures in tCO2e. Scope3 is optional
// because most borrowers cannot measure value-chain emissions yet.
type Emissions struct {
	Scope1 float64  `json:"scope1"`
	Scope2 float64  `json:"scope2"`
	Scope3 *float64 `json:"scope3,omitempty"`
}

// ProjectInput is the unit of assessment. It is constructed once per request
// from caller-supplied JSON and never mutated by the scoring functions.
// Mandatory identifying fields (ProjectName, Country, Sector) are validated
// at the API boundary before the core runs.
type ProjectInput struct {
	ProjectName        string `json:"project_name" binding:"required"`
	Country            string `json:"country" binding:"required"`
	Sector             Sector `json:"sector" binding:"required"`
	ProjectType        string `json:"project_type"`
	Description        string `json:"description"`
	TransitionStrategy string `json:"transition_strategy"`
	RawDocumentText    string `json:"raw_document_text,omitempty"`

	TotalCost    float64 `json:"total_cost"`
	DebtAmount   float64 `json:"debt_amount"`
	EquityAmount float64 `json:"equity_amount"`

	CurrentEmissions Emissions `json:"current_emissions"`
	TargetEmissions  Emissions `json:"target_emissions"`

	// Self-reported document totals. When both are positive they take
	// precedence over the Scope 1+2 sums for ambition scoring, since a
	// document total may include sources outside Scope 1/2/3.
	TotalBaselineEmissions float64 `json:"total_baseline_emissions,omitempty"`
	TotalTargetEmissions   float64 `json:"total_target_emissions,omitempty"`

	// Caller-stated reduction percentage; preferred over the computed
	// (baseline-target)/baseline figure when positive.
	StatedReductionPercent float64 `json:"stated_reduction_percent,omitempty"`

	TargetYear             int  `json:"target_year"`
	HasPublishedPlan       bool `json:"has_published_plan"`
	ThirdPartyVerification bool `json:"third_party_verification"`
}

// CombinedText returns the lowercased concatenation of all free-text fields.
// Every keyword rule in the detector and scorer matches against this.
func (p ProjectInput) CombinedText() string {
	parts := []string{p.Description, p.TransitionStrategy, p.ProjectType, p.RawDocumentText}
	return strings.ToLower(strings.Join(parts, " "))
}

// HasBaselineData reports whether the input carries any quantified baseline
// emissions, from either the document totals or the scope figures.
func (p ProjectInput) HasBaselineData() bool {
	return p.TotalBaselineEmissions > 0 || p.CurrentEmissions.Scope1+p.CurrentEmissions.Scope2 > 0
}

// containsAny reports whether text contains any of the given lowercase keywords
func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
