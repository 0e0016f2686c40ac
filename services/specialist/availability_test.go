package specialist

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"mindwell/models"
)

type fakeSpecialistRepo struct {
	specialists map[string]*models.Specialist
	updates     map[string]any
}

func newFakeRepo(specialists ...*models.Specialist) *fakeSpecialistRepo {
	repo := &fakeSpecialistRepo{
		specialists: map[string]*models.Specialist{},
		updates:     map[string]any{},
	}
	for _, sp := range specialists {
		repo.specialists[sp.ID] = sp
	}
	return repo
}

func (r *fakeSpecialistRepo) Create(sp *models.Specialist) error {
	r.specialists[sp.ID] = sp
	return nil
}

func (r *fakeSpecialistRepo) GetByID(id string) (*models.Specialist, error) {
	sp, ok := r.specialists[id]
	if !ok {
		return nil, fmt.Errorf("specialist with id %s not found", id)
	}
	return sp, nil
}

func (r *fakeSpecialistRepo) GetByEmail(email string) (*models.Specialist, error) {
	for _, sp := range r.specialists {
		if sp.Profile.Email == email {
			return sp, nil
		}
	}
	return nil, fmt.Errorf("specialist with email %s not found", email)
}

func (r *fakeSpecialistRepo) GetAll() ([]models.Specialist, error) {
	var out []models.Specialist
	for _, sp := range r.specialists {
		out = append(out, *sp)
	}
	return out, nil
}

func (r *fakeSpecialistRepo) GetActive() ([]models.Specialist, error) {
	var out []models.Specialist
	for _, sp := range r.specialists {
		if sp.Profile.Status == "active" {
			out = append(out, *sp)
		}
	}
	return out, nil
}

func (r *fakeSpecialistRepo) Update(sp *models.Specialist) error {
	if _, ok := r.specialists[sp.ID]; !ok {
		return fmt.Errorf("specialist with id %s not found", sp.ID)
	}
	r.specialists[sp.ID] = sp
	return nil
}

func (r *fakeSpecialistRepo) UpdateAvailability(id string, rawSchedule any) error {
	sp, ok := r.specialists[id]
	if !ok {
		return fmt.Errorf("specialist with id %s not found", id)
	}
	sp.Availability = rawSchedule
	r.updates[id] = rawSchedule
	return nil
}

func (r *fakeSpecialistRepo) Delete(id string) error {
	delete(r.specialists, id)
	return nil
}

func TestGetWeeklyAvailabilityNormalizesModernSchedule(t *testing.T) {
	repo := newFakeRepo(&models.Specialist{
		ID: "sp-1",
		Availability: map[string]any{
			"online": map[string]any{
				"monday": map[string]any{
					"is_available":          true,
					"start_time":            "09:00",
					"end_time":              "17:00",
					"slot_duration_minutes": float64(45),
				},
			},
		},
	})
	svc := &DefaultSpecialistService{Repo: repo}

	got, err := svc.GetWeeklyAvailability("sp-1")
	require.NoError(t, err)

	assert.Equal(t, "sp-1", got.SpecialistID)
	assert.Equal(t, models.ScheduleFormatModern, got.Schedule.FormatVersion)
	assert.Equal(t, models.DayAvailability{
		IsAvailable:         true,
		StartTime:           "09:00",
		EndTime:             "17:00",
		SlotDurationMinutes: 45,
	}, got.Schedule.Online["monday"])
	assert.Equal(t, 1, got.Metrics.AvailableDayCount.Online)
	assert.Equal(t, 1, got.Metrics.TotalAvailableDays)
	assert.Equal(t, "8h", got.Metrics.PerDayDurationLabel["monday"])
}

func TestGetWeeklyAvailabilityHandlesBSONDecodedSchedule(t *testing.T) {
	// Untyped fields come back from the mongo driver as primitive.D.
	repo := newFakeRepo(&models.Specialist{
		ID: "sp-2",
		Availability: primitive.D{
			{Key: "Friday", Value: primitive.D{
				{Key: "startTime", Value: "10:00"},
				{Key: "endTime", Value: "14:30"},
			}},
		},
	})
	svc := &DefaultSpecialistService{Repo: repo}

	got, err := svc.GetWeeklyAvailability("sp-2")
	require.NoError(t, err)

	assert.Equal(t, models.ScheduleFormatLegacy, got.Schedule.FormatVersion)
	friday := got.Schedule.Online["friday"]
	assert.True(t, friday.IsAvailable)
	assert.Equal(t, "10:00", friday.StartTime)
	assert.Equal(t, "14:30", friday.EndTime)
	assert.Equal(t, "4h 30m", got.Metrics.PerDayDurationLabel["friday"])
}

func TestGetWeeklyAvailabilityMissingScheduleIsEmpty(t *testing.T) {
	repo := newFakeRepo(&models.Specialist{ID: "sp-3"})
	svc := &DefaultSpecialistService{Repo: repo}

	got, err := svc.GetWeeklyAvailability("sp-3")
	require.NoError(t, err)

	assert.Equal(t, models.ScheduleFormatEmpty, got.Schedule.FormatVersion)
	assert.Equal(t, 0, got.Metrics.TotalAvailableDays)
}

func TestGetWeeklyAvailabilityUnknownSpecialist(t *testing.T) {
	svc := &DefaultSpecialistService{Repo: newFakeRepo()}

	_, err := svc.GetWeeklyAvailability("missing")
	assert.Error(t, err)
}

func TestUpdateAvailabilityPersistsAndNormalizes(t *testing.T) {
	repo := newFakeRepo(&models.Specialist{ID: "sp-4"})
	svc := &DefaultSpecialistService{Repo: repo}

	raw := map[string]any{
		"monday": map[string]any{"start_time": "09:00", "end_time": "12:00"},
	}
	got, err := svc.UpdateAvailability("sp-4", raw)
	require.NoError(t, err)

	assert.Equal(t, raw, repo.updates["sp-4"])
	assert.Equal(t, models.ScheduleFormatLegacy, got.Schedule.FormatVersion)
	assert.Equal(t, 1, got.Metrics.TotalAvailableDays)
	assert.Equal(t, "3h", got.Metrics.PerDayDurationLabel["monday"])
}

func TestAvailabilityCacheKeyStructural(t *testing.T) {
	a := availabilityCacheKey("sp", map[string]any{"monday": map[string]any{"start_time": "09:00"}})
	b := availabilityCacheKey("sp", map[string]any{"monday": map[string]any{"start_time": "09:00"}})
	c := availabilityCacheKey("sp", map[string]any{"monday": map[string]any{"start_time": "10:00"}})

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}
