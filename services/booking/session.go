package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"clinovia/models"
	"clinovia/utils"
)

const sessionTTL = 30 * time.Minute

const dateLayout = "2006-01-02"

// StartSession creates a new booking wizard session at step 1 with an empty
// draft and stores it in Redis.
func (s *DefaultBookingSessionService) StartSession(ctx context.Context, patientID string) (*models.BookingSession, error) {
	now := time.Now()
	session := &models.BookingSession{
		SessionID: uuid.New().String(),
		PatientID: patientID,
		Step:      1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// GetSession returns the stored session.
func (s *DefaultBookingSessionService) GetSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	return s.loadSession(ctx, sessionID)
}

// SelectSpecialty sets the specialty and resets every dependent later
// field: doctor, date, time block and the cached availability.
func (s *DefaultBookingSessionService) SelectSpecialty(ctx context.Context, sessionID, specialtyID string) (*models.BookingSession, error) {
	if specialtyID == "" {
		return nil, NewValidationError("a specialty must be selected")
	}
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.Draft.SpecialtyID = specialtyID
	session.Draft.DoctorID = ""
	session.Draft.AppointmentDate = ""
	session.Draft.TimeBlock = ""
	session.Availability = nil
	session.WeekIndex = 0

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SelectDoctor sets the doctor. A specialty must already be selected. The
// time block and cached availability are doctor-dependent and are reset.
func (s *DefaultBookingSessionService) SelectDoctor(ctx context.Context, sessionID, doctorID string) (*models.BookingSession, error) {
	if doctorID == "" {
		return nil, NewValidationError("a doctor must be selected")
	}
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Draft.SpecialtyID == "" {
		return nil, NewValidationError("select a specialty before choosing a doctor")
	}

	session.Draft.DoctorID = doctorID
	session.Draft.TimeBlock = ""
	session.Availability = nil
	session.WeekIndex = 0

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SetDate sets the appointment date. A doctor must already be selected and
// the date must be today or later; past dates are rejected with a
// validation message. The time block is reset.
func (s *DefaultBookingSessionService) SetDate(ctx context.Context, sessionID, date string) (*models.BookingSession, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Draft.DoctorID == "" {
		return nil, NewValidationError("select a doctor before choosing a date")
	}
	if err := validateAppointmentDate(date, time.Now()); err != nil {
		return nil, err
	}

	session.Draft.AppointmentDate = date
	session.Draft.TimeBlock = ""

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SelectTimeBlock sets the time block, but only when the block is reported
// available for the selected date; otherwise the call is a no-op and the
// session is returned unchanged.
func (s *DefaultBookingSessionService) SelectTimeBlock(ctx context.Context, sessionID string, block models.TimeBlock) (*models.BookingSession, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Draft.AppointmentDate == "" {
		return nil, NewValidationError("select a date before choosing a time block")
	}
	if !block.Valid() {
		return nil, NewValidationError(fmt.Sprintf("unknown time block %q", block))
	}

	entries, ok := session.Availability[session.Draft.AppointmentDate]
	if !ok {
		// Availability for this date has not been fetched into the session
		// yet; resolve it on demand. A fetch failure means no availability.
		fetched, err := s.Schedule.DayAvailability(ctx, session.Draft.DoctorID, session.Draft.AppointmentDate)
		if err != nil {
			utils.GetLogger().Warn("error fetching availability for time block selection",
				zap.String("date", session.Draft.AppointmentDate), zap.Error(err))
			fetched = nil
		}
		entries = normalizeEntries(fetched)
		if session.Availability == nil {
			session.Availability = make(map[string][]models.AvailabilityEntry)
		}
		session.Availability[session.Draft.AppointmentDate] = entries
	}

	if !blockAvailable(entries, block) {
		// Not bookable: leave the draft untouched.
		if err := s.saveSession(ctx, session); err != nil {
			return nil, err
		}
		return session, nil
	}

	session.Draft.TimeBlock = block
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SetReason records the free-text reason for the visit. It may be empty
// while editing; the final submit requires it non-empty.
func (s *DefaultBookingSessionService) SetReason(ctx context.Context, sessionID, reason string) (*models.BookingSession, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	session.Draft.Reason = strings.TrimSpace(reason)
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Advance validates the current step's required fields and moves the wizard
// forward. On a validation failure the step does not change and a
// user-facing message is returned.
func (s *DefaultBookingSessionService) Advance(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := validateStep(session, time.Now()); err != nil {
		return nil, err
	}
	if session.Step < models.BookingStepCount {
		session.Step++
	}
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Retreat moves the wizard one step back, bounded at 1. It clears no data.
func (s *DefaultBookingSessionService) Retreat(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step > 1 {
		session.Step--
	}
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// CancelSession discards the wizard session.
func (s *DefaultBookingSessionService) CancelSession(ctx context.Context, sessionID string) error {
	if err := s.SessionCache.Del(ctx, sessionID).Err(); err != nil {
		return fmt.Errorf("failed to cancel booking session: %w", err)
	}
	return nil
}

// validateStep checks the required fields of the session's current step.
func validateStep(session *models.BookingSession, now time.Time) error {
	switch session.Step {
	case 1:
		if session.Draft.SpecialtyID == "" {
			return NewValidationError("select a specialty to continue")
		}
	case 2:
		if session.Draft.DoctorID == "" {
			return NewValidationError("select a doctor to continue")
		}
	case 3:
		if session.Draft.AppointmentDate == "" {
			return NewValidationError("select a date to continue")
		}
		if err := validateAppointmentDate(session.Draft.AppointmentDate, now); err != nil {
			return err
		}
		if session.Draft.TimeBlock == "" {
			return NewValidationError("select a time block to continue")
		}
	case models.BookingStepCount:
		if strings.TrimSpace(session.Draft.Reason) == "" {
			return NewValidationError("a reason for the visit is required")
		}
	}
	return nil
}

// validateAppointmentDate rejects malformed dates and dates strictly before
// the current calendar day.
func validateAppointmentDate(date string, now time.Time) error {
	d, err := time.ParseInLocation(dateLayout, date, now.Location())
	if err != nil {
		return NewValidationError("the appointment date must be in YYYY-MM-DD format")
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if d.Before(today) {
		return NewValidationError("the appointment date cannot be in the past")
	}
	return nil
}

func blockAvailable(entries []models.AvailabilityEntry, block models.TimeBlock) bool {
	for _, e := range entries {
		if e.TimeBlock == block && e.IsAvailable {
			return true
		}
	}
	return false
}

func (s *DefaultBookingSessionService) loadSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	data, err := s.SessionCache.Get(ctx, sessionID).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSessionNotFound, err)
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &session, nil
}

func (s *DefaultBookingSessionService) saveSession(ctx context.Context, session *models.BookingSession) error {
	session.UpdatedAt = time.Now()
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := s.SessionCache.Set(ctx, session.SessionID, data, sessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}
