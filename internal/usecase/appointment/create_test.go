package appointment_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GabrielAraujo027/Kalenner/internal/domain/scheduling"
	"github.com/GabrielAraujo027/Kalenner/internal/httperr"
	"github.com/GabrielAraujo027/Kalenner/internal/models"
	"github.com/GabrielAraujo027/Kalenner/internal/usecase/appointment"
)

const (
	companyA uint = 1
	companyB uint = 2
)

var (
	clientActor = scheduling.Actor{UserID: "client-1", CompanyID: companyA}
	adminActor  = scheduling.Actor{UserID: "admin-1", CompanyID: companyA, IsAdmin: true}
)

func day(hour, min int) time.Time {
	return time.Date(2026, 3, 10, hour, min, 0, 0, time.UTC)
}

func uintPtr(v uint) *uint { return &v }

func intPtr(v int) *int { return &v }

// seededRepo sets up one company with a 30-minute haircut offered by
// one professional, plus a second company for isolation checks.
func seededRepo(t *testing.T) (*fakeRepo, *models.Service, *models.Professional) {
	t.Helper()

	repo := newFakeRepo()
	svc := repo.addService(&models.Service{CompanyID: companyA, Name: "Corte", DurationMinutes: 30, IsActive: true})
	prof := repo.addProfessional(&models.Professional{CompanyID: companyA, Name: "Ana", IsActive: true})
	repo.addLink(&models.ProfessionalService{ProfessionalID: prof.ID, ServiceID: svc.ID})

	return repo, svc, prof
}

func TestCreate_ComputesEndFromServiceDuration(t *testing.T) {
	repo, svc, prof := seededRepo(t)
	uc := appointment.NewCreate(repo, nopAudit())

	ap, err := uc.Execute(context.Background(), clientActor, appointment.CreateInput{
		ServiceID:      svc.ID,
		ProfessionalID: &prof.ID,
		Start:          day(9, 0),
	})
	require.NoError(t, err)

	assert.Equal(t, day(9, 0), ap.Start)
	assert.Equal(t, day(9, 30), ap.End)
	assert.Equal(t, int(scheduling.StatusScheduled), ap.Status)
	require.NotNil(t, ap.ClientID)
	assert.Equal(t, clientActor.UserID, *ap.ClientID)
}

func TestCreate_LinkOverrideShortensWindow(t *testing.T) {
	repo := newFakeRepo()
	svc := repo.addService(&models.Service{CompanyID: companyA, Name: "Corte", DurationMinutes: 45, IsActive: true})
	prof := repo.addProfessional(&models.Professional{CompanyID: companyA, Name: "Ana", IsActive: true})
	repo.addLink(&models.ProfessionalService{ProfessionalID: prof.ID, ServiceID: svc.ID, DurationMinutesOverride: intPtr(20)})

	uc := appointment.NewCreate(repo, nopAudit())

	ap, err := uc.Execute(context.Background(), clientActor, appointment.CreateInput{
		ServiceID:      svc.ID,
		ProfessionalID: &prof.ID,
		Start:          day(10, 0),
	})
	require.NoError(t, err)
	assert.Equal(t, day(10, 20), ap.End)
}

func TestCreate_ConflictScenario(t *testing.T) {
	repo, svc, prof := seededRepo(t)
	uc := appointment.NewCreate(repo, nopAudit())
	ctx := context.Background()

	// 09:00-09:30 books fine.
	first, err := uc.Execute(ctx, clientActor, appointment.CreateInput{
		ServiceID:      svc.ID,
		ProfessionalID: &prof.ID,
		Start:          day(9, 0),
	})
	require.NoError(t, err)

	// 09:15 for the same professional collides.
	other := scheduling.Actor{UserID: "client-2", CompanyID: companyA}
	_, err = uc.Execute(ctx, other, appointment.CreateInput{
		ServiceID:      svc.ID,
		ProfessionalID: &prof.ID,
		Start:          day(9, 15),
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "time_conflict"))

	// 09:30 back-to-back is allowed.
	_, err = uc.Execute(ctx, other, appointment.CreateInput{
		ServiceID:      svc.ID,
		ProfessionalID: &prof.ID,
		Start:          day(9, 30),
	})
	require.NoError(t, err)

	// Cancelling the first frees its slot.
	patch := appointment.NewPatchStatus(repo, nopAudit())
	require.NoError(t, patch.Execute(ctx, clientActor, first.ID, scheduling.StatusCancelled))

	_, err = uc.Execute(ctx, other, appointment.CreateInput{
		ServiceID:      svc.ID,
		ProfessionalID: &prof.ID,
		Start:          day(9, 15),
	})
	require.NoError(t, err)
}

func TestCreate_NoProfessionalSkipsConflictCheck(t *testing.T) {
	repo, svc, _ := seededRepo(t)
	uc := appointment.NewCreate(repo, nopAudit())
	ctx := context.Background()

	_, err := uc.Execute(ctx, clientActor, appointment.CreateInput{ServiceID: svc.ID, Start: day(9, 0)})
	require.NoError(t, err)

	// Same window, still no conflict: unassigned bookings never collide.
	_, err = uc.Execute(ctx, clientActor, appointment.CreateInput{ServiceID: svc.ID, Start: day(9, 0)})
	require.NoError(t, err)
}

func TestCreate_InactiveServiceRejected(t *testing.T) {
	repo, _, prof := seededRepo(t)
	inactive := repo.addService(&models.Service{CompanyID: companyA, Name: "Antigo", DurationMinutes: 30})

	uc := appointment.NewCreate(repo, nopAudit())

	_, err := uc.Execute(context.Background(), clientActor, appointment.CreateInput{
		ServiceID:      inactive.ID,
		ProfessionalID: &prof.ID,
		Start:          day(9, 0),
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_service"))
}

func TestCreate_UnknownProfessionalRejected(t *testing.T) {
	repo, svc, _ := seededRepo(t)
	uc := appointment.NewCreate(repo, nopAudit())

	_, err := uc.Execute(context.Background(), clientActor, appointment.CreateInput{
		ServiceID:      svc.ID,
		ProfessionalID: uintPtr(999),
		Start:          day(9, 0),
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_professional"))
}

func TestCreate_UnlinkedProfessionalRejected(t *testing.T) {
	repo, svc, _ := seededRepo(t)
	lonely := repo.addProfessional(&models.Professional{CompanyID: companyA, Name: "Bia", IsActive: true})

	uc := appointment.NewCreate(repo, nopAudit())

	_, err := uc.Execute(context.Background(), clientActor, appointment.CreateInput{
		ServiceID:      svc.ID,
		ProfessionalID: &lonely.ID,
		Start:          day(9, 0),
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "service_not_offered"))
}

func TestCreate_TenantIsolation(t *testing.T) {
	repo, svc, prof := seededRepo(t)
	uc := appointment.NewCreate(repo, nopAudit())

	outsider := scheduling.Actor{UserID: "client-9", CompanyID: companyB}
	_, err := uc.Execute(context.Background(), outsider, appointment.CreateInput{
		ServiceID:      svc.ID,
		ProfessionalID: &prof.ID,
		Start:          day(9, 0),
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_service"))
}

func TestCreate_AdminBooksForClient(t *testing.T) {
	repo, svc, prof := seededRepo(t)
	uc := appointment.NewCreate(repo, nopAudit())

	target := "client-7"
	ap, err := uc.Execute(context.Background(), adminActor, appointment.CreateInput{
		ServiceID:      svc.ID,
		ProfessionalID: &prof.ID,
		Start:          day(9, 0),
		TargetClientID: &target,
	})
	require.NoError(t, err)
	require.NotNil(t, ap.ClientID)
	assert.Equal(t, target, *ap.ClientID)
}

func TestCreate_ClientCannotBookForOthers(t *testing.T) {
	repo, svc, prof := seededRepo(t)
	uc := appointment.NewCreate(repo, nopAudit())

	target := "client-7"
	ap, err := uc.Execute(context.Background(), clientActor, appointment.CreateInput{
		ServiceID:      svc.ID,
		ProfessionalID: &prof.ID,
		Start:          day(9, 0),
		TargetClientID: &target,
	})
	require.NoError(t, err)
	require.NotNil(t, ap.ClientID)
	assert.Equal(t, clientActor.UserID, *ap.ClientID)
}

func TestCreate_NormalizesStartToUTC(t *testing.T) {
	repo, svc, prof := seededRepo(t)
	uc := appointment.NewCreate(repo, nopAudit())

	saoPaulo := time.FixedZone("America/Sao_Paulo", -3*60*60)
	local := time.Date(2026, 3, 10, 6, 0, 0, 0, saoPaulo) // 09:00 UTC

	ap, err := uc.Execute(context.Background(), clientActor, appointment.CreateInput{
		ServiceID:      svc.ID,
		ProfessionalID: &prof.ID,
		Start:          local,
	})
	require.NoError(t, err)
	assert.Equal(t, time.UTC, ap.Start.Location())
	assert.True(t, ap.Start.Equal(day(9, 0)))
}
