package booking

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"clinovia/models"
	"clinovia/utils"
)

// WeekAvailability resolves the doctor's availability over a 7-day window
// anchored at today + 7*weekIndex and caches it in the session. With no
// doctor selected yet the result is an empty, non-error availability map.
func (s *DefaultBookingSessionService) WeekAvailability(ctx context.Context, sessionID string, weekIndex int) (*models.BookingSession, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.Draft.DoctorID == "" {
		session.Availability = map[string][]models.AvailabilityEntry{}
		session.WeekIndex = weekIndex
		if err := s.saveSession(ctx, session); err != nil {
			return nil, err
		}
		return session, nil
	}

	now := time.Now()
	weekZero := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekStart := weekZero.AddDate(0, 0, weekIndex*7)

	session.Availability = s.fetchWeek(ctx, session.Draft.DoctorID, weekStart)
	session.WeekIndex = weekIndex

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// fetchWeek fans out one request per date. Failures are isolated per date:
// a bad date yields empty entries and a warning, never an error for the
// whole batch. Results land in a map keyed by date, so the concurrent
// writes never touch the same key.
func (s *DefaultBookingSessionService) fetchWeek(ctx context.Context, doctorID string, weekStart time.Time) map[string][]models.AvailabilityEntry {
	logger := utils.GetLogger()

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	avail := make(map[string][]models.AvailabilityEntry, 7)

	for i := 0; i < 7; i++ {
		dateStr := weekStart.AddDate(0, 0, i).Format(dateLayout)
		wg.Add(1)
		go func(dateStr string) {
			defer wg.Done()
			entries, err := s.Schedule.DayAvailability(ctx, doctorID, dateStr)
			if err != nil {
				logger.Warn("error fetching availability",
					zap.String("doctorID", doctorID),
					zap.String("date", dateStr),
					zap.Error(err))
				entries = nil
			}
			normalized := normalizeEntries(entries)
			mu.Lock()
			avail[dateStr] = normalized
			mu.Unlock()
		}(dateStr)
	}
	wg.Wait()

	return avail
}

func normalizeEntries(entries []models.AvailabilityEntry) []models.AvailabilityEntry {
	normalized := make([]models.AvailabilityEntry, 0, len(entries))
	for _, e := range entries {
		normalized = append(normalized, e.Normalize())
	}
	return normalized
}

// IsDateSelectable reports whether a date can be picked in the wizard: it
// must not be strictly before the current calendar day and must have at
// least one available entry.
func IsDateSelectable(date string, entries []models.AvailabilityEntry, now time.Time) bool {
	d, err := time.ParseInLocation(dateLayout, date, now.Location())
	if err != nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if d.Before(today) {
		return false
	}
	for _, e := range entries {
		if e.IsAvailable {
			return true
		}
	}
	return false
}

// SelectableDates returns the session's selectable dates in ascending order.
func SelectableDates(session *models.BookingSession, now time.Time) []string {
	dates := make([]string, 0, len(session.Availability))
	for date, entries := range session.Availability {
		if IsDateSelectable(date, entries, now) {
			dates = append(dates, date)
		}
	}
	sort.Strings(dates)
	return dates
}
