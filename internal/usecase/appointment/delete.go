package appointment

import (
	"context"

	"github.com/GabrielAraujo027/Kalenner/internal/audit"
	"github.com/GabrielAraujo027/Kalenner/internal/domain/scheduling"
	"github.com/GabrielAraujo027/Kalenner/internal/httperr"
)

// Delete is an administrative override: it removes the row outright.
// Normal cancellation is a status change, never a delete.
type Delete struct {
	repo  scheduling.Repository
	audit *audit.Dispatcher
}

func NewDelete(repo scheduling.Repository, audit *audit.Dispatcher) *Delete {
	return &Delete{
		repo:  repo,
		audit: audit,
	}
}

func (uc *Delete) Execute(
	ctx context.Context,
	actor scheduling.Actor,
	appointmentID uint,
) error {

	if !actor.IsAdmin {
		return httperr.ErrBusiness("forbidden")
	}

	ap, err := uc.repo.GetAppointment(ctx, actor.CompanyID, appointmentID)
	if err != nil {
		return httperr.ErrBusiness("appointment_not_found")
	}

	if err := uc.repo.DeleteAppointment(ctx, actor.CompanyID, ap.ID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		CompanyID: actor.CompanyID,
		UserID:    &actor.UserID,
		Action:    "appointment_deleted",
		Entity:    "appointment",
		EntityID:  &ap.ID,
	})

	return nil
}
