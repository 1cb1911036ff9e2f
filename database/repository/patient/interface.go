package patientRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"clinovia/database"
	"clinovia/models"
)

// PatientRepository manages portal accounts.
type PatientRepository interface {
	Create(ctx context.Context, patient models.Patient) (string, error)
	GetByID(ctx context.Context, id string) (*models.Patient, error)
	GetByEmail(ctx context.Context, email string) (*models.Patient, error)
	GetByNationalID(ctx context.Context, nationalID string) (*models.Patient, error)
	Update(ctx context.Context, patient models.Patient) error
}

type mongoPatientRepo struct {
	coll *mongo.Collection
}

// NewMongoPatientRepo returns a PatientRepository backed by MongoDB.
func NewMongoPatientRepo() PatientRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoPatientRepo{
		coll: db.Collection("patients"),
	}
}
