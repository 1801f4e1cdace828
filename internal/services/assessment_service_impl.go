package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/joshghal/verdex-webapp-sub002/internal/assessment"
	"github.com/joshghal/verdex-webapp-sub002/internal/dfi"
	apperrors "github.com/joshghal/verdex-webapp-sub002/internal/errors"
	"github.com/joshghal/verdex-webapp-sub002/internal/kpi"
	"github.com/joshghal/verdex-webapp-sub002/internal/refdata"
	"github.com/joshghal/verdex-webapp-sub002/internal/repository"
)

// assessmentServiceImpl implements AssessmentService
type assessmentServiceImpl struct {
	repos *repository.Repositories
}

// newAssessmentService creates a new assessment service implementation
func newAssessmentService(repos *repository.Repositories) AssessmentService {
	return &assessmentServiceImpl{repos: repos}
}

// Run validates the input, executes the deterministic assessment,
// attaches financier matches, KPI recommendations and next steps,
// stamps the assessment date, and persists the record.
func (s *assessmentServiceImpl) Run(userID uuid.UUID, input *assessment.ProjectInput) (*repository.AssessmentRecord, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	result := assessment.Assess(*input)
	result.AssessmentDate = time.Now().UTC()

	profile := refdata.Lookup(input.Country)
	matches := dfi.MatchDFIs(*input, profile)
	recommendations := kpi.Recommend(*input)

	record := &repository.AssessmentRecord{
		ID:                 uuid.New(),
		UserID:             userID,
		Result:             result,
		DFIMatches:         matches,
		KPIRecommendations: recommendations,
		NextSteps:          buildNextSteps(result, matches),
		Input:              *input,
		CreatedAt:          result.AssessmentDate,
	}

	if s.repos != nil && s.repos.Assessment != nil {
		if err := s.repos.Assessment.Store(record); err != nil {
			return nil, apperrors.DatabaseError("failed to store assessment", err)
		}
	}

	return record, nil
}

// GetByID retrieves a stored assessment, enforcing ownership
func (s *assessmentServiceImpl) GetByID(userID, id uuid.UUID) (*repository.AssessmentRecord, error) {
	record, err := s.repos.Assessment.GetByID(id)
	if err != nil {
		return nil, apperrors.NotFound("assessment not found", err)
	}

	if record.UserID != userID {
		return nil, apperrors.Forbidden("assessment belongs to another user", nil)
	}

	return record, nil
}

// List returns summaries of the user's assessments
func (s *assessmentServiceImpl) List(userID uuid.UUID, filters repository.AssessmentFilters) ([]repository.AssessmentSummary, error) {
	summaries, err := s.repos.Assessment.ListByUser(userID, filters)
	if err != nil {
		return nil, apperrors.DatabaseError("failed to list assessments", err)
	}
	return summaries, nil
}

// Delete removes a stored assessment, enforcing ownership
func (s *assessmentServiceImpl) Delete(userID, id uuid.UUID) error {
	record, err := s.repos.Assessment.GetByID(id)
	if err != nil {
		return apperrors.NotFound("assessment not found", err)
	}
	if record.UserID != userID {
		return apperrors.Forbidden("assessment belongs to another user", nil)
	}

	if err := s.repos.Assessment.Delete(id); err != nil {
		return apperrors.DatabaseError("failed to delete assessment", err)
	}
	return nil
}

// validateInput checks the host-level requirements before the scoring
// core runs. The core itself is total over well-formed input.
func validateInput(input *assessment.ProjectInput) error {
	if input == nil {
		return apperrors.InvalidInput("request body is required", nil)
	}
	if strings.TrimSpace(input.ProjectName) == "" {
		return apperrors.ValidationError("project_name is required", nil)
	}
	if strings.TrimSpace(input.Country) == "" {
		return apperrors.ValidationError("country is required", nil)
	}
	if !assessment.IsValidSector(input.Sector) {
		return apperrors.ValidationError(fmt.Sprintf("unknown sector: %s", input.Sector), nil)
	}
	return nil
}

// buildNextSteps derives a short action list from the final verdict
func buildNextSteps(result assessment.Result, matches []dfi.Match) []string {
	var steps []string

	switch result.EligibilityStatus {
	case assessment.StatusEligible:
		steps = append(steps, "Prepare a financing information memorandum referencing the LMA component scores")
		if len(matches) > 0 {
			steps = append(steps, fmt.Sprintf("Approach %s as lead financier candidate", matches[0].DFI))
		}
	case assessment.StatusPartiallyEligible:
		steps = append(steps, "Address the flagged gaps below before approaching senior lenders")
	case assessment.StatusIneligible:
		steps = append(steps, "Resolve the ineligibility reasons before reapplying for assessment")
	}

	for _, flag := range result.GreenwashingRisk.RedFlags {
		if flag.Recommendation != "" {
			steps = append(steps, flag.Recommendation)
		}
	}

	if len(matches) == 0 {
		steps = append(steps, "No development finance institution currently matches this profile; consider commercial or blended finance channels")
	}

	return steps
}
