package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"clinovia/models"
	"clinovia/utils"
)

const catalogTTL = 5 * time.Minute

// ListSpecialties returns the clinic's specialties, cached in Redis for a
// short window since the catalogue rarely changes.
func (s *DefaultBookingSessionService) ListSpecialties(ctx context.Context) ([]models.Specialty, error) {
	const key = "catalog:specialties"

	if cached := s.catalogGet(ctx, key); cached != nil {
		var specialties []models.Specialty
		if err := json.Unmarshal(cached, &specialties); err == nil {
			return specialties, nil
		}
	}

	specialties, err := s.Schedule.Specialties(ctx)
	if err != nil {
		return nil, err
	}
	s.catalogSet(ctx, key, specialties)
	return specialties, nil
}

// ListDoctors returns the doctors for one specialty, cached like the
// specialty list.
func (s *DefaultBookingSessionService) ListDoctors(ctx context.Context, specialtyID string) ([]models.Doctor, error) {
	if specialtyID == "" {
		return nil, NewValidationError("a specialty must be selected")
	}
	key := fmt.Sprintf("catalog:doctors:%s", specialtyID)

	if cached := s.catalogGet(ctx, key); cached != nil {
		var doctors []models.Doctor
		if err := json.Unmarshal(cached, &doctors); err == nil {
			return doctors, nil
		}
	}

	doctors, err := s.Schedule.DoctorsBySpecialty(ctx, specialtyID)
	if err != nil {
		return nil, err
	}
	s.catalogSet(ctx, key, doctors)
	return doctors, nil
}

func (s *DefaultBookingSessionService) catalogGet(ctx context.Context, key string) []byte {
	if s.CatalogCache == nil {
		return nil
	}
	data, err := s.CatalogCache.Get(ctx, key).Bytes()
	if err != nil {
		return nil
	}
	return data
}

func (s *DefaultBookingSessionService) catalogSet(ctx context.Context, key string, value interface{}) {
	if s.CatalogCache == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.CatalogCache.Set(ctx, key, data, catalogTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache catalogue entry",
			zap.String("key", key), zap.Error(err))
	}
}
