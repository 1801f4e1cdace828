package services

import (
	"database/sql"

	"github.com/google/uuid"

	"github.com/joshghal/verdex-webapp-sub002/internal/assessment"
	"github.com/joshghal/verdex-webapp-sub002/internal/models"
	"github.com/joshghal/verdex-webapp-sub002/internal/repository"
	"github.com/joshghal/verdex-webapp-sub002/pkg/config"
)

// Services contains all application services
type Services struct {
	Assessment AssessmentService
	Auth       AuthService
}

// AssessmentService defines the interface for assessment business logic
type AssessmentService interface {
	Run(userID uuid.UUID, input *assessment.ProjectInput) (*repository.AssessmentRecord, error)
	GetByID(userID, id uuid.UUID) (*repository.AssessmentRecord, error)
	List(userID uuid.UUID, filters repository.AssessmentFilters) ([]repository.AssessmentSummary, error)
	Delete(userID, id uuid.UUID) error
}

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Login(email, password string) (*models.LoginResponse, error)
	Register(req *models.RegisterRequest) (*models.User, error)
	ValidateToken(token string) (*models.User, error)
	RefreshToken(token string) (*models.LoginResponse, error)
}

// NewServices creates a new Services instance with all dependencies
func NewServices(db *sql.DB, cfg *config.Config) *Services {
	repos := repository.NewRepositories(db)

	return &Services{
		Assessment: newAssessmentService(repos),
		Auth:       newAuthService(repos, cfg),
	}
}

// NewAssessmentService creates a standalone assessment service
func NewAssessmentService(repos *repository.Repositories) AssessmentService {
	return newAssessmentService(repos)
}
