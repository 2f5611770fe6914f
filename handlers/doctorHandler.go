package handlers

import (
	"github.com/gin-gonic/gin"

	"ClinicaAdmin/models"
	"ClinicaAdmin/services"
	"ClinicaAdmin/utils"
)

type DoctorHandler struct {
	service *services.DoctorService
}

func NewDoctorHandler(service *services.DoctorService) *DoctorHandler {
	return &DoctorHandler{service: service}
}

func (h *DoctorHandler) CreateDoctor(c *gin.Context) {
	var doctor models.Doctor
	if err := c.ShouldBindJSON(&doctor); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	if err := utils.ValidateDoctor(doctor); err != nil {
		respondValidationError(c, err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), &doctor)
	if err != nil {
		respondBackendError(c, err)
		return
	}
	c.JSON(201, created)
}

func (h *DoctorHandler) GetDoctorByID(c *gin.Context) {
	doctor, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondBackendError(c, err)
		return
	}
	c.JSON(200, doctor)
}

func (h *DoctorHandler) GetAllDoctors(c *gin.Context) {
	doctors := h.service.GetAll(c.Request.Context())
	c.JSON(200, doctors)
}

func (h *DoctorHandler) UpdateDoctor(c *gin.Context) {
	var doctor models.Doctor
	if err := c.ShouldBindJSON(&doctor); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	if err := utils.ValidateDoctor(doctor); err != nil {
		respondValidationError(c, err)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), c.Param("id"), &doctor)
	if err != nil {
		respondBackendError(c, err)
		return
	}
	c.JSON(200, updated)
}

func (h *DoctorHandler) DeleteDoctor(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondBackendError(c, err)
		return
	}
	c.JSON(204, gin.H{"message": "Doctor deleted"})
}
