package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinovia/models"
	"clinovia/services/clinicapi"
)

func referralErr() error {
	return &clinicapi.APIError{
		Kind:       clinicapi.KindReferralRequired,
		StatusCode: 422,
		Message:    "Esta especialidad requiere derivación médica",
	}
}

// completedSession drives the wizard to a fully filled draft and returns
// the session id.
func completedSession(t *testing.T, svc *DefaultBookingSessionService, schedule *fakeSchedule) string {
	t.Helper()
	ctx := context.Background()

	date := time.Now().AddDate(0, 0, 2).Format(dateLayout)
	schedule.mu.Lock()
	schedule.availability[date] = []models.AvailabilityEntry{availableBlock(models.TimeBlockMorning)}
	schedule.mu.Unlock()

	session, err := svc.StartSession(ctx, "pat-1")
	require.NoError(t, err)
	_, err = svc.SelectSpecialty(ctx, session.SessionID, "spec-cardio")
	require.NoError(t, err)
	_, err = svc.SelectDoctor(ctx, session.SessionID, "doc-1")
	require.NoError(t, err)
	_, err = svc.SetDate(ctx, session.SessionID, date)
	require.NoError(t, err)
	_, err = svc.SelectTimeBlock(ctx, session.SessionID, models.TimeBlockMorning)
	require.NoError(t, err)
	_, err = svc.SetReason(ctx, session.SessionID, "routine checkup")
	require.NoError(t, err)
	return session.SessionID
}

func TestConfirmBookingDirectSuccess(t *testing.T) {
	svc, schedule := newTestService(t)
	ctx := context.Background()
	sessionID := completedSession(t, svc, schedule)

	result, err := svc.ConfirmBooking(ctx, sessionID)
	require.NoError(t, err)
	require.NotNil(t, result.Appointment)
	assert.False(t, result.Pending)
	assert.Nil(t, result.PendingAppointment)

	require.Len(t, schedule.created, 1)
	assert.False(t, schedule.created[0].ReferralVerified)
	assert.False(t, schedule.created[0].OverrideReferralCheck)

	// The session is consumed on success.
	_, err = svc.GetSession(ctx, sessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestConfirmBookingNonReferralFailurePropagates(t *testing.T) {
	svc, schedule := newTestService(t)
	ctx := context.Background()
	sessionID := completedSession(t, svc, schedule)

	rejection := &clinicapi.APIError{
		Kind:       clinicapi.KindValidation,
		StatusCode: 400,
		Message:    "invalid time block",
	}
	schedule.createErrs = []error{rejection}

	_, err := svc.ConfirmBooking(ctx, sessionID)
	require.Error(t, err)
	assert.Equal(t, rejection, err)

	// No retry, no pending record, session intact for another try.
	assert.Len(t, schedule.created, 1)
	pending, listErr := svc.Outbox.ListAll(ctx, "pat-1")
	require.NoError(t, listErr)
	assert.Empty(t, pending)
	_, err = svc.GetSession(ctx, sessionID)
	assert.NoError(t, err)
}

func TestConfirmBookingReferralRetrySucceeds(t *testing.T) {
	svc, schedule := newTestService(t)
	ctx := context.Background()
	sessionID := completedSession(t, svc, schedule)

	schedule.createErrs = []error{referralErr(), nil}

	result, err := svc.ConfirmBooking(ctx, sessionID)
	require.NoError(t, err)
	require.NotNil(t, result.Appointment)
	assert.False(t, result.Pending)

	require.Len(t, schedule.created, 2)
	assert.False(t, schedule.created[0].OverrideReferralCheck)
	assert.True(t, schedule.created[1].ReferralVerified)
	assert.True(t, schedule.created[1].OverrideReferralCheck)
}

func TestConfirmBookingReferralRetryFailsRecordsPending(t *testing.T) {
	svc, schedule := newTestService(t)
	ctx := context.Background()

	schedule.specialties["spec-cardio"] = models.Specialty{
		ID: "spec-cardio", Name: "Cardiología", RequiresReferral: true,
	}
	schedule.doctors["doc-1"] = models.Doctor{
		ID: "doc-1", SpecialtyID: "spec-cardio", FirstName: "Ana", LastName: "Suárez",
	}

	sessionID := completedSession(t, svc, schedule)
	schedule.createErrs = []error{referralErr(), referralErr()}

	result, err := svc.ConfirmBooking(ctx, sessionID)
	require.NoError(t, err)
	assert.True(t, result.Pending)
	assert.Nil(t, result.Appointment)
	require.NotNil(t, result.PendingAppointment)

	rec := result.PendingAppointment
	assert.Contains(t, rec.ID, "local-")
	assert.Equal(t, "pat-1", rec.PatientID)
	assert.Equal(t, "Cardiología", rec.SpecialtyName)
	assert.Equal(t, "Ana Suárez", rec.DoctorName)
	assert.Equal(t, models.PendingStatusScheduled, rec.Status)
	assert.True(t, rec.IsPending)

	// Durably recorded in the outbox.
	pending, err := svc.Outbox.ListAll(ctx, "pat-1")
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, rec.ID, pending[0].ID)

	// Session consumed: the booking counts as scheduled.
	_, err = svc.GetSession(ctx, sessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestConfirmBookingPendingUsesPlaceholderNames(t *testing.T) {
	svc, schedule := newTestService(t)
	ctx := context.Background()

	// No catalogue entries registered: name lookups fail.
	sessionID := completedSession(t, svc, schedule)
	schedule.createErrs = []error{referralErr(), referralErr()}

	result, err := svc.ConfirmBooking(ctx, sessionID)
	require.NoError(t, err)
	require.NotNil(t, result.PendingAppointment)
	assert.Equal(t, "Unknown specialty", result.PendingAppointment.SpecialtyName)
	assert.Equal(t, "Unknown doctor", result.PendingAppointment.DoctorName)
}

func TestConfirmBookingIncompleteDraftFails(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	session, err := svc.StartSession(ctx, "pat-1")
	require.NoError(t, err)
	_, err = svc.SelectSpecialty(ctx, session.SessionID, "spec-cardio")
	require.NoError(t, err)

	_, err = svc.ConfirmBooking(ctx, session.SessionID)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

type recordingScheduler struct {
	patients []string
}

func (r *recordingScheduler) SchedulePendingReconcile(patientID string) error {
	r.patients = append(r.patients, patientID)
	return nil
}

func TestConfirmBookingSchedulesReconcileWhenConfigured(t *testing.T) {
	svc, schedule := newTestService(t)
	ctx := context.Background()

	rec := &recordingScheduler{}
	svc.Reconcile = rec

	sessionID := completedSession(t, svc, schedule)
	schedule.createErrs = []error{referralErr(), referralErr()}

	result, err := svc.ConfirmBooking(ctx, sessionID)
	require.NoError(t, err)
	assert.True(t, result.Pending)
	assert.Equal(t, []string{"pat-1"}, rec.patients)
}

func TestAppointmentsMergesConfirmedAndPending(t *testing.T) {
	svc, schedule := newTestService(t)
	ctx := context.Background()

	schedule.confirmed = []models.Appointment{{ID: "appt-9", PatientID: "pat-1", Status: "CONFIRMED"}}
	require.NoError(t, svc.Outbox.Append(ctx, models.PendingAppointment{
		ID: "local-1", PatientID: "pat-1", Status: models.PendingStatusScheduled, IsPending: true,
	}))

	overview, err := svc.Appointments(ctx, "pat-1")
	require.NoError(t, err)
	require.Len(t, overview.Confirmed, 1)
	require.Len(t, overview.Pending, 1)
	assert.Equal(t, "appt-9", overview.Confirmed[0].ID)
	assert.Equal(t, "local-1", overview.Pending[0].ID)
}

func TestAppointmentsDegradesWhenUpstreamFails(t *testing.T) {
	svc, schedule := newTestService(t)
	ctx := context.Background()

	schedule.confirmedErr = &clinicapi.APIError{Kind: clinicapi.KindUnknown, Message: "backend down"}
	require.NoError(t, svc.Outbox.Append(ctx, models.PendingAppointment{
		ID: "local-1", PatientID: "pat-1", IsPending: true,
	}))

	overview, err := svc.Appointments(ctx, "pat-1")
	require.NoError(t, err)
	assert.Empty(t, overview.Confirmed)
	require.Len(t, overview.Pending, 1)
}
