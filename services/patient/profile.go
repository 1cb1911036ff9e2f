package patient

import (
	"context"
	"fmt"

	"clinovia/models"
)

// GetProfile returns the account for the authenticated patient.
func (s *DefaultPatientService) GetProfile(ctx context.Context, patientID string) (*models.Patient, error) {
	account, err := s.Repo.GetByID(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	if account == nil {
		return nil, fmt.Errorf("account not found")
	}
	return account, nil
}

// UpdateProfile updates the editable contact fields. Identity fields
// (national ID, names, birth date) stay bound to the clinic master record.
func (s *DefaultPatientService) UpdateProfile(ctx context.Context, patientID string, req UpdateProfileRequest) (*models.Patient, error) {
	account, err := s.Repo.GetByID(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	if account == nil {
		return nil, fmt.Errorf("account not found")
	}

	if req.Email != "" && req.Email != account.Email {
		other, err := s.Repo.GetByEmail(ctx, req.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to check existing accounts: %w", err)
		}
		if other != nil && other.ID != account.ID {
			return nil, fmt.Errorf("an account with this email already exists")
		}
		account.Email = req.Email
	}
	if req.PhoneNumber != "" {
		account.PhoneNumber = req.PhoneNumber
	}
	if req.Address != "" {
		account.Address = req.Address
	}

	if err := s.Repo.Update(ctx, *account); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return account, nil
}
