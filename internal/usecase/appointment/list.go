package appointment

import (
	"context"

	"github.com/GabrielAraujo027/Kalenner/internal/domain/scheduling"
	"github.com/GabrielAraujo027/Kalenner/internal/httperr"
	"github.com/GabrielAraujo027/Kalenner/internal/models"
)

type List struct {
	repo scheduling.Repository
}

func NewList(repo scheduling.Repository) *List {
	return &List{repo: repo}
}

// Execute lists company appointments ordered by start. Customers only
// ever see their own bookings, whatever the filter says.
func (uc *List) Execute(
	ctx context.Context,
	actor scheduling.Actor,
	filter scheduling.ListFilter,
) ([]models.Appointment, error) {

	if !actor.IsAdmin {
		filter.ClientID = &actor.UserID
	}

	return uc.repo.ListAppointments(ctx, actor.CompanyID, filter)
}

type Get struct {
	repo scheduling.Repository
}

func NewGet(repo scheduling.Repository) *Get {
	return &Get{repo: repo}
}

func (uc *Get) Execute(
	ctx context.Context,
	actor scheduling.Actor,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, actor.CompanyID, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if !actor.OwnsAppointment(ap.ClientID) {
		return nil, httperr.ErrBusiness("forbidden")
	}

	return ap, nil
}
