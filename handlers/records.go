package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clinovia/middleware"
	"clinovia/services/records"
)

// RecordsHandler serves the patient's read-only medical history.
type RecordsHandler struct {
	svc records.RecordService
}

func NewRecordsHandler(svc records.RecordService) *RecordsHandler {
	return &RecordsHandler{svc: svc}
}

func (h *RecordsHandler) ListRecords(c *gin.Context) {
	list, err := h.svc.ListForPatient(c.Request.Context(), middleware.PatientID(c))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": list})
}
