package handlers

import (
	"github.com/gin-gonic/gin"

	"ClinicaAdmin/models"
	"ClinicaAdmin/services"
	"ClinicaAdmin/utils"
)

type PatientHandler struct {
	service *services.PatientService
}

func NewPatientHandler(service *services.PatientService) *PatientHandler {
	return &PatientHandler{service: service}
}

func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var patient models.Patient
	if err := c.ShouldBindJSON(&patient); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	if err := utils.ValidatePatient(patient); err != nil {
		respondValidationError(c, err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), &patient)
	if err != nil {
		respondBackendError(c, err)
		return
	}
	c.JSON(201, created)
}

func (h *PatientHandler) GetPatientByID(c *gin.Context) {
	patient, err := h.service.GetByID(c.Request.Context(), c.Param("patient_id"))
	if err != nil {
		respondBackendError(c, err)
		return
	}
	c.JSON(200, patient)
}

func (h *PatientHandler) GetAllPatients(c *gin.Context) {
	patients := h.service.GetAll(c.Request.Context())
	c.JSON(200, patients)
}

func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	var patient models.Patient
	if err := c.ShouldBindJSON(&patient); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	if err := utils.ValidatePatient(patient); err != nil {
		respondValidationError(c, err)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), c.Param("patient_id"), &patient)
	if err != nil {
		respondBackendError(c, err)
		return
	}
	c.JSON(200, updated)
}
