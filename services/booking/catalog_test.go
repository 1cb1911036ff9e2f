package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinovia/models"
)

func TestListSpecialtiesCachesUpstream(t *testing.T) {
	svc, schedule := newTestService(t)
	ctx := context.Background()

	schedule.specialties["spec-cardio"] = models.Specialty{ID: "spec-cardio", Name: "Cardiología", RequiresReferral: true}

	first, err := svc.ListSpecialties(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)

	// Second call is served from the Redis cache.
	second, err := svc.ListSpecialties(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, schedule.specialtyListCalls)
}

func TestListDoctorsCachesPerSpecialty(t *testing.T) {
	svc, schedule := newTestService(t)
	ctx := context.Background()

	schedule.doctors["doc-1"] = models.Doctor{ID: "doc-1", SpecialtyID: "spec-cardio", FirstName: "Ana", LastName: "Suárez"}
	schedule.doctors["doc-2"] = models.Doctor{ID: "doc-2", SpecialtyID: "spec-derma", FirstName: "Luis", LastName: "Romero"}

	cardio, err := svc.ListDoctors(ctx, "spec-cardio")
	require.NoError(t, err)
	require.Len(t, cardio, 1)
	assert.Equal(t, "doc-1", cardio[0].ID)

	_, err = svc.ListDoctors(ctx, "spec-cardio")
	require.NoError(t, err)
	assert.Equal(t, 1, schedule.doctorListCalls)

	// A different specialty misses the cache and hits upstream.
	derma, err := svc.ListDoctors(ctx, "spec-derma")
	require.NoError(t, err)
	require.Len(t, derma, 1)
	assert.Equal(t, 2, schedule.doctorListCalls)
}

func TestListDoctorsRequiresSpecialty(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.ListDoctors(context.Background(), "")
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}
