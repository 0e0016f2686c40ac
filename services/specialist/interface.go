package specialist

import (
	"time"

	specialistRepo "mindwell/database/repository/specialist"
	"mindwell/models"

	"github.com/go-redis/redis/v8"
)

// SpecialistService defines the interface for specialist-related operations.
type SpecialistService interface {
	RegisterSpecialist(specialist models.Specialist) (*models.Specialist, error)
	GetSpecialistByID(id string) (*models.Specialist, error)
	GetSpecialistByEmail(email string) (*models.Specialist, error)
	GetAllSpecialists() ([]models.Specialist, error)
	GetActiveSpecialists() ([]models.Specialist, error)
	UpdateSpecialist(specialist models.Specialist) (*models.Specialist, error)
	DeleteSpecialist(id string) error

	// GetWeeklyAvailability reads the raw persisted schedule, normalizes
	// it, and derives display metrics. Results are memoized outside the
	// normalization core, keyed on a structural hash of the raw value.
	GetWeeklyAvailability(id string) (*models.WeeklyAvailability, error)
	// UpdateAvailability persists a new raw schedule value and returns
	// its normalized reading.
	UpdateAvailability(id string, rawSchedule any) (*models.WeeklyAvailability, error)
}

// DefaultSpecialistService is the production implementation.
type DefaultSpecialistService struct {
	Repo     specialistRepo.SpecialistRepository
	Cache    *redis.Client // optional; nil disables memoization
	CacheTTL time.Duration
}
