package booking

import (
	"context"

	"github.com/go-redis/redis/v8"

	outboxRepo "clinovia/database/repository/outbox"
	"clinovia/models"
	"clinovia/services/clinicapi"
)

// ScheduleClient is the slice of the clinic API the booking engine uses.
// *clinicapi.Client satisfies it.
type ScheduleClient interface {
	DayAvailability(ctx context.Context, doctorID, date string) ([]models.AvailabilityEntry, error)
	CreateAppointment(ctx context.Context, req clinicapi.AppointmentRequest) (*models.Appointment, error)
	Specialties(ctx context.Context) ([]models.Specialty, error)
	SpecialtyByID(ctx context.Context, specialtyID string) (*models.Specialty, error)
	DoctorsBySpecialty(ctx context.Context, specialtyID string) ([]models.Doctor, error)
	DoctorByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	PatientAppointments(ctx context.Context, patientID string) ([]models.Appointment, error)
}

// ReconcileScheduler enqueues a background replay of a patient's pending
// outbox. Nil when reconciliation is disabled.
type ReconcileScheduler interface {
	SchedulePendingReconcile(patientID string) error
}

// BookingSessionService drives the appointment booking wizard.
type BookingSessionService interface {
	StartSession(ctx context.Context, patientID string) (*models.BookingSession, error)
	GetSession(ctx context.Context, sessionID string) (*models.BookingSession, error)
	SelectSpecialty(ctx context.Context, sessionID, specialtyID string) (*models.BookingSession, error)
	SelectDoctor(ctx context.Context, sessionID, doctorID string) (*models.BookingSession, error)
	SetDate(ctx context.Context, sessionID, date string) (*models.BookingSession, error)
	SelectTimeBlock(ctx context.Context, sessionID string, block models.TimeBlock) (*models.BookingSession, error)
	SetReason(ctx context.Context, sessionID, reason string) (*models.BookingSession, error)
	Advance(ctx context.Context, sessionID string) (*models.BookingSession, error)
	Retreat(ctx context.Context, sessionID string) (*models.BookingSession, error)
	WeekAvailability(ctx context.Context, sessionID string, weekIndex int) (*models.BookingSession, error)
	ConfirmBooking(ctx context.Context, sessionID string) (*BookingResult, error)
	CancelSession(ctx context.Context, sessionID string) error

	Appointments(ctx context.Context, patientID string) (*AppointmentOverview, error)
	ListSpecialties(ctx context.Context) ([]models.Specialty, error)
	ListDoctors(ctx context.Context, specialtyID string) ([]models.Doctor, error)
}

// DefaultBookingSessionService implements BookingSessionService.
type DefaultBookingSessionService struct {
	Schedule     ScheduleClient
	Outbox       outboxRepo.OutboxRepository
	Names        *NameCache
	SessionCache *redis.Client
	CatalogCache *redis.Client
	Reconcile    ReconcileScheduler
}
