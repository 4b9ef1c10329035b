package appointment

import (
	"context"
	"time"

	"github.com/GabrielAraujo027/Kalenner/internal/audit"
	"github.com/GabrielAraujo027/Kalenner/internal/domain/scheduling"
	"github.com/GabrielAraujo027/Kalenner/internal/httperr"
	"github.com/GabrielAraujo027/Kalenner/internal/models"
)

// UpdateInput is a partial patch; nil fields stay untouched.
type UpdateInput struct {
	Start          *time.Time
	ProfessionalID *uint
	Notes          *string
	Status         *scheduling.Status
}

type Update struct {
	repo  scheduling.Repository
	audit *audit.Dispatcher
}

func NewUpdate(repo scheduling.Repository, audit *audit.Dispatcher) *Update {
	return &Update{
		repo:  repo,
		audit: audit,
	}
}

func (uc *Update) Execute(
	ctx context.Context,
	actor scheduling.Actor,
	appointmentID uint,
	in UpdateInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, actor.CompanyID, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if !actor.OwnsAppointment(ap.ClientID) {
		return nil, httperr.ErrBusiness("forbidden")
	}

	// Terminal appointments are immutable through every path.
	if scheduling.Status(ap.Status).IsTerminal() {
		return nil, httperr.ErrBusiness("invalid_state")
	}

	recalc := false

	newProfessionalID := ap.ProfessionalID
	if in.ProfessionalID != nil &&
		(ap.ProfessionalID == nil || *in.ProfessionalID != *ap.ProfessionalID) {

		if !actor.IsAdmin {
			return nil, httperr.ErrBusiness("forbidden")
		}

		if _, err := uc.repo.GetActiveProfessional(ctx, actor.CompanyID, *in.ProfessionalID); err != nil {
			return nil, httperr.ErrBusiness("invalid_professional")
		}

		link, err := uc.repo.GetLink(ctx, actor.CompanyID, *in.ProfessionalID, ap.ServiceID)
		if err != nil {
			return nil, err
		}
		if link == nil {
			return nil, httperr.ErrBusiness("service_not_offered")
		}

		newProfessionalID = in.ProfessionalID
		recalc = true
	}

	newStart := ap.Start
	if in.Start != nil && !in.Start.UTC().Equal(ap.Start) {
		newStart = in.Start.UTC()
		recalc = true
	}

	err = uc.repo.Transaction(ctx, func(tx scheduling.Repository) error {
		if recalc {
			svc, err := tx.GetService(ctx, actor.CompanyID, ap.ServiceID)
			if err != nil {
				return httperr.ErrBusiness("invalid_service")
			}

			var link *models.ProfessionalService
			if newProfessionalID != nil {
				link, err = tx.GetLink(ctx, actor.CompanyID, *newProfessionalID, ap.ServiceID)
				if err != nil {
					return err
				}
			}

			minutes, err := scheduling.EffectiveDuration(svc, link)
			if err != nil {
				return err
			}

			end, err := scheduling.ComputeEnd(newStart, minutes)
			if err != nil {
				return err
			}

			if newProfessionalID != nil {
				if err := tx.AssertNoOverlap(ctx, actor.CompanyID, *newProfessionalID, newStart, end, ap.ID); err != nil {
					return err
				}
			}

			ap.ProfessionalID = newProfessionalID
			ap.Start = newStart
			ap.End = end
		}

		if in.Notes != nil {
			ap.Notes = *in.Notes
		}

		if in.Status != nil {
			if err := scheduling.CanTransition(scheduling.Status(ap.Status), *in.Status, actor.IsAdmin); err != nil {
				return err
			}
			ap.Status = int(*in.Status)
		}

		ap.UpdatedAt = time.Now().UTC()
		return tx.SaveAppointment(ctx, ap)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		CompanyID: actor.CompanyID,
		UserID:    &actor.UserID,
		Action:    "appointment_updated",
		Entity:    "appointment",
		EntityID:  &ap.ID,
	})

	return ap, nil
}
