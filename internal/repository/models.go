package repository

import (
	"time"

	"github.com/google/uuid"

	"github.com/joshghal/verdex-webapp-sub002/internal/assessment"
	"github.com/joshghal/verdex-webapp-sub002/internal/dfi"
	"github.com/joshghal/verdex-webapp-sub002/internal/kpi"
)

// AssessmentRecord is the stored form of one full assessment run:
// the core scoring result plus the financier matches and KPI
// recommendations derived from it.
type AssessmentRecord struct {
	ID                 uuid.UUID               `json:"id"`
	UserID             uuid.UUID               `json:"user_id"`
	Result             assessment.Result       `json:"result"`
	DFIMatches         []dfi.Match             `json:"dfi_matches"`
	KPIRecommendations kpi.Recommendations     `json:"kpi_recommendations"`
	NextSteps          []string                `json:"next_steps"`
	Input              assessment.ProjectInput `json:"input"`
	CreatedAt          time.Time               `json:"created_at"`
}

// AssessmentSummary is the listing projection of a stored assessment
type AssessmentSummary struct {
	ID                uuid.UUID `json:"id"`
	ProjectName       string    `json:"project_name"`
	Country           string    `json:"country"`
	Sector            string    `json:"sector"`
	EligibilityStatus string    `json:"eligibility_status"`
	OverallScore      int       `json:"overall_score"`
	CreatedAt         time.Time `json:"created_at"`
}
