package patient

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"clinovia/models"
	"clinovia/services/clinicapi"
	"clinovia/utils"
)

const tokenDuration = 24 * time.Hour

// Register creates a portal account for a clinic patient. The national ID
// is looked up against the clinic's master index; registration is refused
// when the person is not a registered patient of the clinic.
func (s *DefaultPatientService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	logger := utils.GetLogger()

	master, err := s.MasterIndex.LookupPatient(ctx, req.NationalID)
	if err != nil {
		if clinicapi.IsNotFound(err) {
			return nil, fmt.Errorf("national ID %s is not registered with the clinic", req.NationalID)
		}
		logger.Error("Register: master index lookup failed", zap.Error(err))
		return nil, fmt.Errorf("registration is temporarily unavailable, please try again")
	}

	existing, err := s.Repo.GetByNationalID(ctx, req.NationalID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing accounts: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("an account for this national ID already exists")
	}
	existing, err = s.Repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing accounts: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("an account with this email already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := models.Patient{
		NationalID:   master.NationalID,
		FirstName:    master.FirstName,
		LastName:     master.LastName,
		BirthDate:    master.BirthDate,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		Address:      req.Address,
		PasswordHash: string(hashed),
	}
	id, err := s.Repo.Create(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	account.ID = id

	token, err := utils.GenerateToken(account.ID, account.Email, tokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &AuthResponse{Token: token, Patient: account}, nil
}
