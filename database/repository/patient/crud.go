package patientRepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"clinovia/models"
)

// Create inserts a new portal account and returns its ID.
func (r *mongoPatientRepo) Create(ctx context.Context, patient models.Patient) (string, error) {
	if patient.ID == "" {
		patient.ID = uuid.New().String()
	}
	patient.CreatedAt = time.Now()
	patient.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, patient)
	if err != nil {
		return "", err
	}
	return patient.ID, nil
}

// GetByID returns a patient account by its ID.
func (r *mongoPatientRepo) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

// GetByEmail returns a patient account by email, or nil when none exists.
func (r *mongoPatientRepo) GetByEmail(ctx context.Context, email string) (*models.Patient, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

// GetByNationalID returns a patient account by national ID, or nil when none exists.
func (r *mongoPatientRepo) GetByNationalID(ctx context.Context, nationalID string) (*models.Patient, error) {
	return r.findOne(ctx, bson.M{"national_id": nationalID})
}

func (r *mongoPatientRepo) findOne(ctx context.Context, filter bson.M) (*models.Patient, error) {
	var patient models.Patient
	err := r.coll.FindOne(ctx, filter).Decode(&patient)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

// Update replaces the stored account document.
func (r *mongoPatientRepo) Update(ctx context.Context, patient models.Patient) error {
	patient.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": patient.ID}, patient)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("patient not found")
	}
	return nil
}
