package booking

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"clinovia/models"
	"clinovia/utils"
)

const (
	unknownSpecialtyName = "Unknown specialty"
	unknownDoctorName    = "Unknown doctor"
)

// NameLookup resolves catalogue identifiers to display records.
type NameLookup interface {
	SpecialtyByID(ctx context.Context, specialtyID string) (*models.Specialty, error)
	DoctorByID(ctx context.Context, doctorID string) (*models.Doctor, error)
}

// NameCache memoizes specialty and doctor display names for the life of the
// process, so building a pending record looks each id up at most once.
// A failed lookup yields a generic placeholder and is not cached, allowing
// a later call to recover.
type NameCache struct {
	mu          sync.Mutex
	lookup      NameLookup
	specialties map[string]string
	doctors     map[string]string
}

func NewNameCache(lookup NameLookup) *NameCache {
	return &NameCache{
		lookup:      lookup,
		specialties: make(map[string]string),
		doctors:     make(map[string]string),
	}
}

// SpecialtyName returns the display name for a specialty id.
func (c *NameCache) SpecialtyName(ctx context.Context, specialtyID string) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if name, ok := c.specialties[specialtyID]; ok {
		return name
	}
	specialty, err := c.lookup.SpecialtyByID(ctx, specialtyID)
	if err != nil || specialty == nil || specialty.Name == "" {
		utils.GetLogger().Warn("specialty name lookup failed",
			zap.String("specialtyID", specialtyID), zap.Error(err))
		return unknownSpecialtyName
	}
	c.specialties[specialtyID] = specialty.Name
	return specialty.Name
}

// DoctorName returns the display name for a doctor id.
func (c *NameCache) DoctorName(ctx context.Context, doctorID string) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if name, ok := c.doctors[doctorID]; ok {
		return name
	}
	doctor, err := c.lookup.DoctorByID(ctx, doctorID)
	if err != nil || doctor == nil || doctor.DisplayName() == "" {
		utils.GetLogger().Warn("doctor name lookup failed",
			zap.String("doctorID", doctorID), zap.Error(err))
		return unknownDoctorName
	}
	c.doctors[doctorID] = doctor.DisplayName()
	return doctor.DisplayName()
}

// Reset clears all memoized names.
func (c *NameCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.specialties = make(map[string]string)
	c.doctors = make(map[string]string)
}
