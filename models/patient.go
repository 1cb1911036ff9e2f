package models

import "time"

// Patient is a portal account. The national ID links the account to the
// clinic's master patient record.
type Patient struct {
	ID           string    `bson:"id" json:"id"`
	NationalID   string    `bson:"national_id" json:"nationalId"`
	FirstName    string    `bson:"first_name" json:"firstName"`
	LastName     string    `bson:"last_name" json:"lastName"`
	Email        string    `bson:"email" json:"email"`
	PhoneNumber  string    `bson:"phone_number" json:"phoneNumber,omitempty"`
	Address      string    `bson:"address" json:"address,omitempty"`
	BirthDate    string    `bson:"birth_date" json:"birthDate,omitempty"` // "YYYY-MM-DD"
	PasswordHash string    `bson:"password_hash" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}

// MasterPatientRecord is the clinic's master record for a national ID,
// returned by the upstream lookup during registration.
type MasterPatientRecord struct {
	NationalID string `json:"nationalId"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	BirthDate  string `json:"birthDate,omitempty"`
}
