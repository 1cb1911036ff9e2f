package clinicapi

import (
	"context"
	"fmt"
	"net/url"

	"clinovia/models"
)

// MedicalRecords returns the patient's clinical history entries.
func (c *Client) MedicalRecords(ctx context.Context, patientID string) ([]models.MedicalRecord, error) {
	var records []models.MedicalRecord
	if err := c.get(ctx, "/patients/"+url.PathEscape(patientID)+"/records", &records); err != nil {
		return nil, fmt.Errorf("failed to fetch medical records: %w", err)
	}
	return records, nil
}
