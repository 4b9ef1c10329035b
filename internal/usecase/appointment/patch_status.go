package appointment

import (
	"context"
	"time"

	"github.com/GabrielAraujo027/Kalenner/internal/audit"
	"github.com/GabrielAraujo027/Kalenner/internal/domain/scheduling"
	"github.com/GabrielAraujo027/Kalenner/internal/httperr"
)

// PatchStatus is the narrow status-only path: no window recomputation,
// same transition rules as the full update.
type PatchStatus struct {
	repo  scheduling.Repository
	audit *audit.Dispatcher
}

func NewPatchStatus(repo scheduling.Repository, audit *audit.Dispatcher) *PatchStatus {
	return &PatchStatus{
		repo:  repo,
		audit: audit,
	}
}

func (uc *PatchStatus) Execute(
	ctx context.Context,
	actor scheduling.Actor,
	appointmentID uint,
	next scheduling.Status,
) error {

	ap, err := uc.repo.GetAppointment(ctx, actor.CompanyID, appointmentID)
	if err != nil {
		return httperr.ErrBusiness("appointment_not_found")
	}

	if !actor.OwnsAppointment(ap.ClientID) {
		return httperr.ErrBusiness("forbidden")
	}

	if err := scheduling.CanTransition(scheduling.Status(ap.Status), next, actor.IsAdmin); err != nil {
		return err
	}

	ap.Status = int(next)
	ap.UpdatedAt = time.Now().UTC()

	if err := uc.repo.SaveAppointment(ctx, ap); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		CompanyID: actor.CompanyID,
		UserID:    &actor.UserID,
		Action:    "appointment_" + next.String(),
		Entity:    "appointment",
		EntityID:  &ap.ID,
	})

	return nil
}
