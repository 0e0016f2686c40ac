package specialistRepo

import (
	"mindwell/models"
)

// SpecialistRepository defines persistence operations for specialist profiles.
type SpecialistRepository interface {
	Create(specialist *models.Specialist) error
	GetByID(id string) (*models.Specialist, error)
	GetByEmail(email string) (*models.Specialist, error)
	GetAll() ([]models.Specialist, error)
	GetActive() ([]models.Specialist, error)
	Update(specialist *models.Specialist) error
	UpdateAvailability(id string, rawSchedule any) error
	Delete(id string) error
}
