package scheduling_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GabrielAraujo027/Kalenner/internal/domain/scheduling"
	"github.com/GabrielAraujo027/Kalenner/internal/httperr"
	"github.com/GabrielAraujo027/Kalenner/internal/models"
)

func intPtr(v int) *int { return &v }

func TestEffectiveDuration_ServiceDefault(t *testing.T) {
	svc := &models.Service{DurationMinutes: 45}

	minutes, err := scheduling.EffectiveDuration(svc, nil)
	require.NoError(t, err)
	assert.Equal(t, 45, minutes)
}

func TestEffectiveDuration_OverrideWins(t *testing.T) {
	svc := &models.Service{DurationMinutes: 45}
	link := &models.ProfessionalService{DurationMinutesOverride: intPtr(30)}

	minutes, err := scheduling.EffectiveDuration(svc, link)
	require.NoError(t, err)
	assert.Equal(t, 30, minutes)
}

func TestEffectiveDuration_NilOverrideFallsBack(t *testing.T) {
	svc := &models.Service{DurationMinutes: 45}
	link := &models.ProfessionalService{}

	minutes, err := scheduling.EffectiveDuration(svc, link)
	require.NoError(t, err)
	assert.Equal(t, 45, minutes)
}

func TestEffectiveDuration_NonPositiveOverrideFallsBack(t *testing.T) {
	svc := &models.Service{DurationMinutes: 45}
	link := &models.ProfessionalService{DurationMinutesOverride: intPtr(0)}

	minutes, err := scheduling.EffectiveDuration(svc, link)
	require.NoError(t, err)
	assert.Equal(t, 45, minutes)
}

func TestEffectiveDuration_InvalidService(t *testing.T) {
	_, err := scheduling.EffectiveDuration(nil, nil)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_service"))

	_, err = scheduling.EffectiveDuration(&models.Service{DurationMinutes: 0}, nil)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_service"))
}

func TestActorOwnsAppointment(t *testing.T) {
	client := "u-1"
	other := "u-2"

	admin := scheduling.Actor{UserID: "admin", CompanyID: 1, IsAdmin: true}
	owner := scheduling.Actor{UserID: client, CompanyID: 1}
	stranger := scheduling.Actor{UserID: other, CompanyID: 1}

	assert.True(t, admin.OwnsAppointment(&client))
	assert.True(t, admin.OwnsAppointment(nil))
	assert.True(t, owner.OwnsAppointment(&client))
	assert.False(t, stranger.OwnsAppointment(&client))
	assert.False(t, owner.OwnsAppointment(nil))
}
