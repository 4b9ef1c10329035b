package scheduling

import (
	"github.com/GabrielAraujo027/Kalenner/internal/httperr"
	"github.com/GabrielAraujo027/Kalenner/internal/models"
)

// EffectiveDuration resolves the duration used when booking a service,
// link override first, service default otherwise. link may be nil (no
// professional, or no override recorded).
func EffectiveDuration(service *models.Service, link *models.ProfessionalService) (int, error) {
	if link != nil && link.DurationMinutesOverride != nil && *link.DurationMinutesOverride > 0 {
		return *link.DurationMinutesOverride, nil
	}
	if service == nil || service.DurationMinutes <= 0 {
		return 0, httperr.ErrBusiness("invalid_service")
	}
	return service.DurationMinutes, nil
}
