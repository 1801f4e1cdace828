package repository

import (
	"github.com/google/uuid"

	"github.com/joshghal/verdex-webapp-sub002/internal/models"
)

// AssessmentRepository defines the interface for assessment data access.
// The scoring core is stateless; persistence of its results is purely a
// host concern handled here.
type AssessmentRepository interface {
	Store(record *AssessmentRecord) error
	GetByID(id uuid.UUID) (*AssessmentRecord, error)
	ListByUser(userID uuid.UUID, filters AssessmentFilters) ([]AssessmentSummary, error)
	Delete(id uuid.UUID) error
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Create(user *models.User) error
	Update(user *models.User) error
	Delete(id uuid.UUID) error
}

// TransactionManager defines the interface for database transaction management
type TransactionManager interface {
	WithTransaction(fn func(repos *Repositories) error) error
}

// Repositories groups all repository interfaces
type Repositories struct {
	Assessment AssessmentRepository
	User       UserRepository
	Tx         TransactionManager
}

// AssessmentFilters defines filters for listing assessments
type AssessmentFilters struct {
	EligibilityStatus string
	Country           string
	Sector            string
	Limit             int
	Offset            int
}
