package patient

import (
	"context"

	patientRepo "clinovia/database/repository/patient"
	"clinovia/models"
)

// MasterIndexClient resolves national IDs against the clinic's master
// patient index. *clinicapi.Client satisfies it.
type MasterIndexClient interface {
	LookupPatient(ctx context.Context, nationalID string) (*models.MasterPatientRecord, error)
}

// PatientService manages portal accounts and authentication.
type PatientService interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)
	Authenticate(ctx context.Context, email, password string) (*AuthResponse, error)
	GetProfile(ctx context.Context, patientID string) (*models.Patient, error)
	UpdateProfile(ctx context.Context, patientID string, req UpdateProfileRequest) (*models.Patient, error)
}

// DefaultPatientService implements PatientService.
type DefaultPatientService struct {
	Repo        patientRepo.PatientRepository
	MasterIndex MasterIndexClient
}
