package clinicapi

import (
	"context"
	"net/url"

	"clinovia/models"
)

// DayAvailability returns the time-block availability reported by the clinic
// for one doctor on one date. Entries are normalized so the
// remainingSlots/maxPatients invariants hold even if the backend misreports.
func (c *Client) DayAvailability(ctx context.Context, doctorID, date string) ([]models.AvailabilityEntry, error) {
	var entries []models.AvailabilityEntry
	path := "/doctors/" + url.PathEscape(doctorID) + "/availability?date=" + url.QueryEscape(date)
	if err := c.get(ctx, path, &entries); err != nil {
		return nil, err
	}
	for i := range entries {
		entries[i] = entries[i].Normalize()
	}
	return entries, nil
}
