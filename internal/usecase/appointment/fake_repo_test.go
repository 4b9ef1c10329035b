package appointment_test

import (
	"context"
	"errors"
	"time"

	"github.com/GabrielAraujo027/Kalenner/internal/audit"
	"github.com/GabrielAraujo027/Kalenner/internal/domain/scheduling"
	"github.com/GabrielAraujo027/Kalenner/internal/httperr"
	"github.com/GabrielAraujo027/Kalenner/internal/models"
)

// fakeRepo is an in-memory scheduling.Repository. It reuses the domain
// overlap predicate, so conflict behavior matches the SQL window query.
type fakeRepo struct {
	services      map[uint]*models.Service
	professionals map[uint]*models.Professional
	links         []*models.ProfessionalService
	appointments  map[uint]*models.Appointment
	nextID        uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		services:      make(map[uint]*models.Service),
		professionals: make(map[uint]*models.Professional),
		appointments:  make(map[uint]*models.Appointment),
		nextID:        1,
	}
}

func (f *fakeRepo) addService(s *models.Service) *models.Service {
	if s.ID == 0 {
		s.ID = f.nextID
		f.nextID++
	}
	f.services[s.ID] = s
	return s
}

func (f *fakeRepo) addProfessional(p *models.Professional) *models.Professional {
	if p.ID == 0 {
		p.ID = f.nextID
		f.nextID++
	}
	f.professionals[p.ID] = p
	return p
}

func (f *fakeRepo) addLink(l *models.ProfessionalService) *models.ProfessionalService {
	if l.ID == 0 {
		l.ID = f.nextID
		f.nextID++
	}
	f.links = append(f.links, l)
	return l
}

func (f *fakeRepo) GetService(_ context.Context, companyID, serviceID uint) (*models.Service, error) {
	s, ok := f.services[serviceID]
	if !ok || s.CompanyID != companyID {
		return nil, errors.New("record not found")
	}
	return s, nil
}

func (f *fakeRepo) GetActiveService(ctx context.Context, companyID, serviceID uint) (*models.Service, error) {
	s, err := f.GetService(ctx, companyID, serviceID)
	if err != nil || !s.IsActive {
		return nil, errors.New("record not found")
	}
	return s, nil
}

func (f *fakeRepo) GetActiveProfessional(_ context.Context, companyID, professionalID uint) (*models.Professional, error) {
	p, ok := f.professionals[professionalID]
	if !ok || p.CompanyID != companyID || !p.IsActive {
		return nil, errors.New("record not found")
	}
	return p, nil
}

func (f *fakeRepo) GetLink(ctx context.Context, companyID, professionalID, serviceID uint) (*models.ProfessionalService, error) {
	if _, err := f.GetService(ctx, companyID, serviceID); err != nil {
		return nil, nil
	}
	for _, l := range f.links {
		if l.ProfessionalID == professionalID && l.ServiceID == serviceID {
			return l, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) GetAppointment(_ context.Context, companyID, appointmentID uint) (*models.Appointment, error) {
	ap, ok := f.appointments[appointmentID]
	if !ok || ap.CompanyID != companyID {
		return nil, errors.New("record not found")
	}
	return ap, nil
}

func (f *fakeRepo) ListAppointments(_ context.Context, companyID uint, filter scheduling.ListFilter) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.CompanyID != companyID {
			continue
		}
		if filter.ClientID != nil && (ap.ClientID == nil || *ap.ClientID != *filter.ClientID) {
			continue
		}
		if filter.ProfessionalID != nil && (ap.ProfessionalID == nil || *ap.ProfessionalID != *filter.ProfessionalID) {
			continue
		}
		if filter.ServiceID != nil && ap.ServiceID != *filter.ServiceID {
			continue
		}
		if filter.Status != nil && ap.Status != int(*filter.Status) {
			continue
		}
		if filter.StartFrom != nil && ap.Start.Before(*filter.StartFrom) {
			continue
		}
		if filter.StartTo != nil && !ap.Start.Before(*filter.StartTo) {
			continue
		}
		out = append(out, *ap)
	}
	return out, nil
}

func (f *fakeRepo) AssertNoOverlap(_ context.Context, companyID, professionalID uint, start, end time.Time, excludeID uint) error {
	for _, ap := range f.appointments {
		if ap.ID == excludeID ||
			ap.CompanyID != companyID ||
			ap.ProfessionalID == nil || *ap.ProfessionalID != professionalID ||
			ap.Status != int(scheduling.StatusScheduled) {
			continue
		}
		if scheduling.Overlaps(start, end, ap.Start, ap.End) {
			return httperr.ErrBusiness("time_conflict")
		}
	}
	return nil
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	ap.ID = f.nextID
	f.nextID++
	f.appointments[ap.ID] = ap
	return nil
}

func (f *fakeRepo) SaveAppointment(_ context.Context, ap *models.Appointment) error {
	if _, ok := f.appointments[ap.ID]; !ok {
		return errors.New("record not found")
	}
	f.appointments[ap.ID] = ap
	return nil
}

func (f *fakeRepo) DeleteAppointment(_ context.Context, companyID, appointmentID uint) error {
	ap, ok := f.appointments[appointmentID]
	if !ok || ap.CompanyID != companyID {
		return errors.New("record not found")
	}
	delete(f.appointments, appointmentID)
	return nil
}

func (f *fakeRepo) Transaction(_ context.Context, fn func(scheduling.Repository) error) error {
	return fn(f)
}

var _ scheduling.Repository = (*fakeRepo)(nil)

func nopAudit() *audit.Dispatcher {
	return audit.NewDispatcher(audit.NopSink{})
}
