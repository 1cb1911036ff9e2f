package booking

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"

	outboxRepo "clinovia/database/repository/outbox"
	"clinovia/models"
	"clinovia/services/clinicapi"
)

// fakeSchedule is an in-memory ScheduleClient for exercising the wizard
// without the clinic backend.
type fakeSchedule struct {
	mu sync.Mutex

	// availability per date; a date present in availErr fails instead.
	availability map[string][]models.AvailabilityEntry
	availErr     map[string]error
	availCalls   []string

	// createErrs is consumed one per CreateAppointment call; nil accepts.
	createErrs []error
	created    []clinicapi.AppointmentRequest

	specialties map[string]models.Specialty
	doctors     map[string]models.Doctor

	specialtyListCalls int
	doctorListCalls    int

	confirmed    []models.Appointment
	confirmedErr error
}

func newFakeSchedule() *fakeSchedule {
	return &fakeSchedule{
		availability: make(map[string][]models.AvailabilityEntry),
		availErr:     make(map[string]error),
		specialties:  make(map[string]models.Specialty),
		doctors:      make(map[string]models.Doctor),
	}
}

func (f *fakeSchedule) DayAvailability(ctx context.Context, doctorID, date string) ([]models.AvailabilityEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.availCalls = append(f.availCalls, date)
	if err, ok := f.availErr[date]; ok {
		return nil, err
	}
	return f.availability[date], nil
}

func (f *fakeSchedule) CreateAppointment(ctx context.Context, req clinicapi.AppointmentRequest) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, req)
	if len(f.createErrs) > 0 {
		err := f.createErrs[0]
		f.createErrs = f.createErrs[1:]
		if err != nil {
			return nil, err
		}
	}
	return &models.Appointment{
		ID:          "appt-1",
		PatientID:   req.PatientID,
		SpecialtyID: req.SpecialtyID,
		DoctorID:    req.DoctorID,
		Date:        req.Date,
		TimeBlock:   req.TimeBlock,
		Reason:      req.Reason,
		Status:      "CONFIRMED",
	}, nil
}

func (f *fakeSchedule) Specialties(ctx context.Context) ([]models.Specialty, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.specialtyListCalls++
	out := make([]models.Specialty, 0, len(f.specialties))
	for _, sp := range f.specialties {
		out = append(out, sp)
	}
	return out, nil
}

func (f *fakeSchedule) SpecialtyByID(ctx context.Context, specialtyID string) (*models.Specialty, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	sp, ok := f.specialties[specialtyID]
	if !ok {
		return nil, errors.New("specialty not found")
	}
	return &sp, nil
}

func (f *fakeSchedule) DoctorsBySpecialty(ctx context.Context, specialtyID string) ([]models.Doctor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.doctorListCalls++
	var out []models.Doctor
	for _, d := range f.doctors {
		if d.SpecialtyID == specialtyID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeSchedule) DoctorByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.doctors[doctorID]
	if !ok {
		return nil, errors.New("doctor not found")
	}
	return &d, nil
}

func (f *fakeSchedule) PatientAppointments(ctx context.Context, patientID string) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.confirmedErr != nil {
		return nil, f.confirmedErr
	}
	return f.confirmed, nil
}

func newTestService(t *testing.T) (*DefaultBookingSessionService, *fakeSchedule) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	schedule := newFakeSchedule()
	svc := &DefaultBookingSessionService{
		Schedule:     schedule,
		Outbox:       outboxRepo.NewRedisOutboxRepo(client),
		Names:        NewNameCache(schedule),
		SessionCache: client,
		CatalogCache: client,
	}
	return svc, schedule
}

func availableBlock(block models.TimeBlock) models.AvailabilityEntry {
	return models.AvailabilityEntry{
		TimeBlock:      block,
		IsAvailable:    true,
		RemainingSlots: 3,
		MaxPatients:    10,
	}
}

func fullBlock(block models.TimeBlock) models.AvailabilityEntry {
	return models.AvailabilityEntry{
		TimeBlock:      block,
		IsAvailable:    false,
		RemainingSlots: 0,
		MaxPatients:    10,
	}
}
