package clinicapi

import (
	"context"
	"net/url"

	"clinovia/models"
)

// LookupPatient resolves a national ID against the clinic's master patient
// index. A KindNotFound error means the person is not a registered patient.
func (c *Client) LookupPatient(ctx context.Context, nationalID string) (*models.MasterPatientRecord, error) {
	var rec models.MasterPatientRecord
	if err := c.get(ctx, "/patients/lookup?nationalId="+url.QueryEscape(nationalID), &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}
