package patient

import "clinovia/models"

// RegisterRequest is the portal registration payload. The national ID must
// exist in the clinic's master patient index.
type RegisterRequest struct {
	NationalID  string `json:"nationalId" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
}

// UpdateProfileRequest carries the editable profile fields.
type UpdateProfileRequest struct {
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
}

// AuthResponse is returned on successful registration or login.
type AuthResponse struct {
	Token   string         `json:"token"`
	Patient models.Patient `json:"patient"`
}
