package specialist

import (
	"fmt"
	"strings"
	"time"

	"mindwell/models"

	"github.com/google/uuid"
)

// RegisterSpecialist creates a new specialist profile. IDs and timestamps
// are assigned here; a missing status defaults to "active".
func (s *DefaultSpecialistService) RegisterSpecialist(specialist models.Specialist) (*models.Specialist, error) {
	if strings.TrimSpace(specialist.Profile.FullName) == "" {
		return nil, fmt.Errorf("specialist full name is required")
	}
	if strings.TrimSpace(specialist.Profile.Email) == "" {
		return nil, fmt.Errorf("specialist email is required")
	}

	specialist.ID = uuid.New().String()
	if specialist.Profile.Status == "" {
		specialist.Profile.Status = "active"
	}
	now := time.Now()
	specialist.CreatedAt = now
	specialist.UpdatedAt = now

	if err := s.Repo.Create(&specialist); err != nil {
		return nil, fmt.Errorf("failed to register specialist: %w", err)
	}
	return &specialist, nil
}

func (s *DefaultSpecialistService) GetSpecialistByID(id string) (*models.Specialist, error) {
	return s.Repo.GetByID(id)
}

func (s *DefaultSpecialistService) GetSpecialistByEmail(email string) (*models.Specialist, error) {
	return s.Repo.GetByEmail(email)
}

func (s *DefaultSpecialistService) GetAllSpecialists() ([]models.Specialist, error) {
	return s.Repo.GetAll()
}

func (s *DefaultSpecialistService) GetActiveSpecialists() ([]models.Specialist, error) {
	return s.Repo.GetActive()
}

// UpdateSpecialist replaces a specialist document, preserving its
// creation time and refreshing the update time.
func (s *DefaultSpecialistService) UpdateSpecialist(specialist models.Specialist) (*models.Specialist, error) {
	existing, err := s.Repo.GetByID(specialist.ID)
	if err != nil {
		return nil, err
	}
	specialist.CreatedAt = existing.CreatedAt
	specialist.UpdatedAt = time.Now()

	if err := s.Repo.Update(&specialist); err != nil {
		return nil, fmt.Errorf("failed to update specialist: %w", err)
	}
	return &specialist, nil
}

func (s *DefaultSpecialistService) DeleteSpecialist(id string) error {
	return s.Repo.Delete(id)
}
