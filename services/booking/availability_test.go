package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinovia/models"
)

func TestWeekAvailabilityWithoutDoctorIsEmpty(t *testing.T) {
	svc, schedule := newTestService(t)
	ctx := context.Background()

	session, err := svc.StartSession(ctx, "pat-1")
	require.NoError(t, err)

	updated, err := svc.WeekAvailability(ctx, session.SessionID, 0)
	require.NoError(t, err)
	assert.Empty(t, updated.Availability)
	assert.Empty(t, schedule.availCalls)
}

func TestWeekAvailabilityFetchesSevenDays(t *testing.T) {
	svc, schedule := newTestService(t)
	ctx := context.Background()

	today := time.Now()
	for i := 0; i < 7; i++ {
		date := today.AddDate(0, 0, i).Format(dateLayout)
		schedule.availability[date] = []models.AvailabilityEntry{availableBlock(models.TimeBlockMorning)}
	}

	session, err := svc.StartSession(ctx, "pat-1")
	require.NoError(t, err)
	_, err = svc.SelectSpecialty(ctx, session.SessionID, "spec-cardio")
	require.NoError(t, err)
	_, err = svc.SelectDoctor(ctx, session.SessionID, "doc-1")
	require.NoError(t, err)

	updated, err := svc.WeekAvailability(ctx, session.SessionID, 0)
	require.NoError(t, err)
	require.Len(t, updated.Availability, 7)
	require.Len(t, schedule.availCalls, 7)

	for i := 0; i < 7; i++ {
		date := today.AddDate(0, 0, i).Format(dateLayout)
		entries, ok := updated.Availability[date]
		require.True(t, ok, "missing date %s", date)
		assert.NotEmpty(t, entries)
	}
}

func TestWeekAvailabilityIsolatesPerDateFailures(t *testing.T) {
	svc, schedule := newTestService(t)
	ctx := context.Background()

	today := time.Now()
	failing := today.AddDate(0, 0, 3).Format(dateLayout)
	for i := 0; i < 7; i++ {
		date := today.AddDate(0, 0, i).Format(dateLayout)
		schedule.availability[date] = []models.AvailabilityEntry{availableBlock(models.TimeBlockAfternoon)}
	}
	schedule.availErr[failing] = errors.New("backend hiccup")

	session, err := svc.StartSession(ctx, "pat-1")
	require.NoError(t, err)
	_, err = svc.SelectSpecialty(ctx, session.SessionID, "spec-cardio")
	require.NoError(t, err)
	_, err = svc.SelectDoctor(ctx, session.SessionID, "doc-1")
	require.NoError(t, err)

	// One bad date must not fail the batch; it just comes back empty.
	updated, err := svc.WeekAvailability(ctx, session.SessionID, 0)
	require.NoError(t, err)
	require.Len(t, updated.Availability, 7)
	assert.Empty(t, updated.Availability[failing])

	good := today.AddDate(0, 0, 1).Format(dateLayout)
	assert.NotEmpty(t, updated.Availability[good])
}

func TestWeekAvailabilityWeekIndexShiftsWindow(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	session, err := svc.StartSession(ctx, "pat-1")
	require.NoError(t, err)
	_, err = svc.SelectSpecialty(ctx, session.SessionID, "spec-cardio")
	require.NoError(t, err)
	_, err = svc.SelectDoctor(ctx, session.SessionID, "doc-1")
	require.NoError(t, err)

	updated, err := svc.WeekAvailability(ctx, session.SessionID, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.WeekIndex)

	weekStart := time.Now().AddDate(0, 0, 14).Format(dateLayout)
	_, ok := updated.Availability[weekStart]
	assert.True(t, ok, "window should start 14 days out")

	insideWeekZero := time.Now().Format(dateLayout)
	_, ok = updated.Availability[insideWeekZero]
	assert.False(t, ok, "window should not include today")
}

func TestWeekAvailabilityNormalizesEntries(t *testing.T) {
	svc, schedule := newTestService(t)
	ctx := context.Background()

	date := time.Now().Format(dateLayout)
	schedule.availability[date] = []models.AvailabilityEntry{
		// Upstream claims availability with negative slots.
		{TimeBlock: models.TimeBlockMorning, IsAvailable: true, RemainingSlots: -2, MaxPatients: 5},
		// Upstream reports more slots than capacity.
		{TimeBlock: models.TimeBlockAfternoon, IsAvailable: false, RemainingSlots: 9, MaxPatients: 4},
	}

	session, err := svc.StartSession(ctx, "pat-1")
	require.NoError(t, err)
	_, err = svc.SelectSpecialty(ctx, session.SessionID, "spec-cardio")
	require.NoError(t, err)
	_, err = svc.SelectDoctor(ctx, session.SessionID, "doc-1")
	require.NoError(t, err)

	updated, err := svc.WeekAvailability(ctx, session.SessionID, 0)
	require.NoError(t, err)

	entries := updated.Availability[date]
	require.Len(t, entries, 2)
	assert.Equal(t, 0, entries[0].RemainingSlots)
	assert.False(t, entries[0].IsAvailable)
	assert.Equal(t, 4, entries[1].RemainingSlots)
	assert.True(t, entries[1].IsAvailable)
}

func TestIsDateSelectable(t *testing.T) {
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	open := []models.AvailabilityEntry{availableBlock(models.TimeBlockMorning)}
	closed := []models.AvailabilityEntry{fullBlock(models.TimeBlockMorning)}

	assert.True(t, IsDateSelectable("2026-08-28", open, now), "today with slots")
	assert.True(t, IsDateSelectable("2026-09-01", open, now), "future with slots")
	assert.False(t, IsDateSelectable("2026-08-27", open, now), "past date")
	assert.False(t, IsDateSelectable("2026-09-01", closed, now), "no open block")
	assert.False(t, IsDateSelectable("2026-09-01", nil, now), "no entries at all")
	assert.False(t, IsDateSelectable("not-a-date", open, now), "malformed date")
}

func TestSelectableDatesSorted(t *testing.T) {
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	session := &models.BookingSession{
		Availability: map[string][]models.AvailabilityEntry{
			"2026-09-03": {availableBlock(models.TimeBlockMorning)},
			"2026-08-30": {availableBlock(models.TimeBlockMorning)},
			"2026-09-01": {fullBlock(models.TimeBlockMorning)},
			"2026-08-20": {availableBlock(models.TimeBlockMorning)},
		},
	}

	dates := SelectableDates(session, now)
	assert.Equal(t, []string{"2026-08-30", "2026-09-03"}, dates)
}
