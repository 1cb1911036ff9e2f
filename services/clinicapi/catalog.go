package clinicapi

import (
	"context"
	"fmt"
	"net/url"

	"clinovia/models"
)

// Specialties returns all specialties offered by the clinic.
func (c *Client) Specialties(ctx context.Context) ([]models.Specialty, error) {
	var specialties []models.Specialty
	if err := c.get(ctx, "/specialties", &specialties); err != nil {
		return nil, fmt.Errorf("failed to fetch specialties: %w", err)
	}
	return specialties, nil
}

// SpecialtyByID returns one specialty by its identifier.
func (c *Client) SpecialtyByID(ctx context.Context, specialtyID string) (*models.Specialty, error) {
	var specialty models.Specialty
	if err := c.get(ctx, "/specialties/"+url.PathEscape(specialtyID), &specialty); err != nil {
		return nil, err
	}
	return &specialty, nil
}

// DoctorsBySpecialty returns the doctors attached to a specialty.
func (c *Client) DoctorsBySpecialty(ctx context.Context, specialtyID string) ([]models.Doctor, error) {
	var doctors []models.Doctor
	if err := c.get(ctx, "/specialties/"+url.PathEscape(specialtyID)+"/doctors", &doctors); err != nil {
		return nil, fmt.Errorf("failed to fetch doctors for specialty %s: %w", specialtyID, err)
	}
	return doctors, nil
}

// DoctorByID returns one doctor by its identifier.
func (c *Client) DoctorByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	var doctor models.Doctor
	if err := c.get(ctx, "/doctors/"+url.PathEscape(doctorID), &doctor); err != nil {
		return nil, err
	}
	return &doctor, nil
}
