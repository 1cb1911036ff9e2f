package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clinovia/middleware"
	"clinovia/services/patient"
)

// ProfileHandler exposes the authenticated patient's profile.
type ProfileHandler struct {
	svc patient.PatientService
}

func NewProfileHandler(svc patient.PatientService) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	account, err := h.svc.GetProfile(c.Request.Context(), middleware.PatientID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, account)
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req patient.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	account, err := h.svc.UpdateProfile(c.Request.Context(), middleware.PatientID(c), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, account)
}
