// Package refdata provides static country reference data for the
// assessment service: eligibility, legal and currency context, sovereign
// risk, and national climate commitments. Pure data, no I/O.
package refdata

// CountryProfile describes one supported country
type CountryProfile struct {
	Code               string `json:"code"`
	Name               string `json:"name"`
	Region             string `json:"region"`
	LegalSystem        string `json:"legal_system"`
	CurrencyCode       string `json:"currency_code"`
	SovereignRating    string `json:"sovereign_rating"`
	PoliticalRiskLevel string `json:"political_risk_level"`
	NDCTarget          string `json:"ndc_target"`
	RenewableTargets   string `json:"renewable_targets"`
}

// African regions used by the DFI mandate tables
const (
	RegionEastAfrica     = "East Africa"
	RegionWestAfrica     = "West Africa"
	RegionNorthAfrica    = "North Africa"
	RegionSouthernAfrica = "Southern Africa"
	RegionCentralAfrica  = "Central Africa"
)

// countryProfiles is the supported-country allow-list. A project whose
// country is absent here fails the region gate outright.
var countryProfiles = map[string]CountryProfile{
	"kenya": {
		Code: "kenya", Name: "Kenya", Region: RegionEastAfrica,
		LegalSystem: "common law", CurrencyCode: "KES",
		SovereignRating: "B", PoliticalRiskLevel: "medium",
		NDCTarget:        "32% GHG reduction by 2030 relative to BAU",
		RenewableTargets: "100% clean electricity by 2030",
	},
	"nigeria": {
		Code: "nigeria", Name: "Nigeria", Region: RegionWestAfrica,
		LegalSystem: "common law", CurrencyCode: "NGN",
		SovereignRating: "B-", PoliticalRiskLevel: "high",
		NDCTarget:        "20% unconditional GHG reduction by 2030 (47% conditional)",
		RenewableTargets: "30% renewable electricity by 2030",
	},
	"south_africa": {
		Code: "south_africa", Name: "South Africa", Region: RegionSouthernAfrica,
		LegalSystem: "mixed civil/common law", CurrencyCode: "ZAR",
		SovereignRating: "BB-", PoliticalRiskLevel: "medium",
		NDCTarget:        "Emissions of 350-420 MtCO2e by 2030",
		RenewableTargets: "Additional 29.5 GW renewable capacity by 2030",
	},
	"egypt": {
		Code: "egypt", Name: "Egypt", Region: RegionNorthAfrica,
		LegalSystem: "civil law", CurrencyCode: "EGP",
		SovereignRating: "B-", PoliticalRiskLevel: "medium",
		NDCTarget:        "Sectoral reduction targets for power, transport, and oil & gas by 2030",
		RenewableTargets: "42% renewable electricity by 2030",
	},
	"morocco": {
		Code: "morocco", Name: "Morocco", Region: RegionNorthAfrica,
		LegalSystem: "civil law", CurrencyCode: "MAD",
		SovereignRating: "BB+", PoliticalRiskLevel: "low",
		NDCTarget:        "45.5% GHG reduction by 2030 relative to BAU",
		RenewableTargets: "52% renewable installed capacity by 2030",
	},
	"ghana": {
		Code: "ghana", Name: "Ghana", Region: RegionWestAfrica,
		LegalSystem: "common law", CurrencyCode: "GHS",
		SovereignRating: "CCC+", PoliticalRiskLevel: "medium",
		NDCTarget:        "64 MtCO2e absolute reduction by 2030",
		RenewableTargets: "10% renewable energy in the mix by 2030",
	},
	"ethiopia": {
		Code: "ethiopia", Name: "Ethiopia", Region: RegionEastAfrica,
		LegalSystem: "civil law", CurrencyCode: "ETB",
		SovereignRating: "CCC", PoliticalRiskLevel: "high",
		NDCTarget:        "68.8% GHG reduction by 2030 relative to BAU (conditional)",
		RenewableTargets: "Near-full renewable generation (hydro-dominated grid)",
	},
	"tanzania": {
		Code: "tanzania", Name: "Tanzania", Region: RegionEastAfrica,
		LegalSystem: "common law", CurrencyCode: "TZS",
		SovereignRating: "B", PoliticalRiskLevel: "medium",
		NDCTarget:        "30-35% GHG reduction by 2030 relative to BAU",
		RenewableTargets: "At least 5 GW renewable capacity by 2030",
	},
	"rwanda": {
		Code: "rwanda", Name: "Rwanda", Region: RegionEastAfrica,
		LegalSystem: "mixed civil/common law", CurrencyCode: "RWF",
		SovereignRating: "B+", PoliticalRiskLevel: "low",
		NDCTarget:        "38% GHG reduction by 2030 relative to BAU",
		RenewableTargets: "60% renewable generation by 2030",
	},
	"senegal": {
		Code: "senegal", Name: "Senegal", Region: RegionWestAfrica,
		LegalSystem: "civil law", CurrencyCode: "XOF",
		SovereignRating: "B+", PoliticalRiskLevel: "low",
		NDCTarget:        "29.5% GHG reduction by 2030 (conditional)",
		RenewableTargets: "40% renewable installed capacity by 2030",
	},
	"cote_divoire": {
		Code: "cote_divoire", Name: "Côte d'Ivoire", Region: RegionWestAfrica,
		LegalSystem: "civil law", CurrencyCode: "XOF",
		SovereignRating: "BB-", PoliticalRiskLevel: "medium",
		NDCTarget:        "30.4% GHG reduction by 2030 relative to BAU",
		RenewableTargets: "45% renewable capacity by 2030",
	},
	"uganda": {
		Code: "uganda", Name: "Uganda", Region: RegionEastAfrica,
		LegalSystem: "common law", CurrencyCode: "UGX",
		SovereignRating: "B-", PoliticalRiskLevel: "medium",
		NDCTarget:        "24.7% GHG reduction by 2030 relative to BAU",
		RenewableTargets: "3.2 GW renewable capacity by 2030",
	},
}

// countryOrder keeps listing output deterministic
var countryOrder = []string{
	"cote_divoire", "egypt", "ethiopia", "ghana", "kenya", "morocco",
	"nigeria", "rwanda", "senegal", "south_africa", "tanzania", "uganda",
}

// Lookup returns the profile for a country code, or nil when the country
// is not supported.
func Lookup(code string) *CountryProfile {
	if profile, ok := countryProfiles[code]; ok {
		return &profile
	}
	return nil
}

// IsSupportedCountry reports whether the country code is on the
// supported-region allow-list.
func IsSupportedCountry(code string) bool {
	_, ok := countryProfiles[code]
	return ok
}

// Countries returns all supported country profiles in stable order
func Countries() []CountryProfile {
	out := make([]CountryProfile, 0, len(countryOrder))
	for _, code := range countryOrder {
		out = append(out, countryProfiles[code])
	}
	return out
}
