package appointment

import (
	"context"
	"time"

	"github.com/GabrielAraujo027/Kalenner/internal/audit"
	"github.com/GabrielAraujo027/Kalenner/internal/domain/scheduling"
	"github.com/GabrielAraujo027/Kalenner/internal/httperr"
	"github.com/GabrielAraujo027/Kalenner/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateInput struct {
	ServiceID      uint
	ProfessionalID *uint
	Start          time.Time
	Notes          string

	// Admin actors may book on behalf of another client; ignored for
	// customer actors, who always book for themselves.
	TargetClientID *string
}

// ======================================================
// USE CASE
// ======================================================

type Create struct {
	repo  scheduling.Repository
	audit *audit.Dispatcher
}

func NewCreate(repo scheduling.Repository, audit *audit.Dispatcher) *Create {
	return &Create{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Create) Execute(
	ctx context.Context,
	actor scheduling.Actor,
	in CreateInput,
) (*models.Appointment, error) {

	svc, err := uc.repo.GetActiveService(ctx, actor.CompanyID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_service")
	}

	var link *models.ProfessionalService
	if in.ProfessionalID != nil {
		if _, err := uc.repo.GetActiveProfessional(ctx, actor.CompanyID, *in.ProfessionalID); err != nil {
			return nil, httperr.ErrBusiness("invalid_professional")
		}

		link, err = uc.repo.GetLink(ctx, actor.CompanyID, *in.ProfessionalID, svc.ID)
		if err != nil {
			return nil, err
		}
		if link == nil {
			return nil, httperr.ErrBusiness("service_not_offered")
		}
	}

	minutes, err := scheduling.EffectiveDuration(svc, link)
	if err != nil {
		return nil, err
	}

	start := in.Start.UTC()
	end, err := scheduling.ComputeEnd(start, minutes)
	if err != nil {
		return nil, err
	}

	clientID := actor.UserID
	if actor.IsAdmin && in.TargetClientID != nil && *in.TargetClientID != "" {
		clientID = *in.TargetClientID
	}

	var created *models.Appointment
	err = uc.repo.Transaction(ctx, func(tx scheduling.Repository) error {
		if in.ProfessionalID != nil {
			if err := tx.AssertNoOverlap(ctx, actor.CompanyID, *in.ProfessionalID, start, end, 0); err != nil {
				return err
			}
		}

		ap := &models.Appointment{
			CompanyID:      actor.CompanyID,
			ServiceID:      svc.ID,
			ProfessionalID: in.ProfessionalID,
			ClientID:       &clientID,
			Start:          start,
			End:            end,
			Status:         int(scheduling.InitialStatus()),
			Notes:          in.Notes,
		}

		if err := tx.CreateAppointment(ctx, ap); err != nil {
			return err
		}

		created = ap
		return nil
	})

	if err != nil {
		if httperr.IsBusiness(err, "time_conflict") {
			uc.audit.Dispatch(audit.Event{
				CompanyID: actor.CompanyID,
				UserID:    &actor.UserID,
				Action:    "appointment_conflict",
				Entity:    "appointment",
				Metadata: map[string]any{
					"professional_id": in.ProfessionalID,
					"start":           start,
					"end":             end,
				},
			})
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		CompanyID: actor.CompanyID,
		UserID:    &actor.UserID,
		Action:    "appointment_created",
		Entity:    "appointment",
		EntityID:  &created.ID,
	})

	return created, nil
}
