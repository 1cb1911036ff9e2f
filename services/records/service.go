package records

import (
	"context"
	"fmt"

	"clinovia/models"
)

// HistoryClient is the slice of the clinic API the records service uses.
// *clinicapi.Client satisfies it.
type HistoryClient interface {
	MedicalRecords(ctx context.Context, patientID string) ([]models.MedicalRecord, error)
}

// RecordService serves read-only medical history to the portal.
type RecordService interface {
	ListForPatient(ctx context.Context, patientID string) ([]models.MedicalRecord, error)
}

// DefaultRecordService implements RecordService by proxying the clinic
// backend; the portal never stores clinical data itself.
type DefaultRecordService struct {
	History HistoryClient
}

func (s *DefaultRecordService) ListForPatient(ctx context.Context, patientID string) ([]models.MedicalRecord, error) {
	records, err := s.History.MedicalRecords(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to load medical records: %w", err)
	}
	if records == nil {
		records = []models.MedicalRecord{}
	}
	return records, nil
}
