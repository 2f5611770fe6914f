package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"ClinicaAdmin/models"
	"ClinicaAdmin/services"
)

type AppointmentHandler struct {
	service *services.AppointmentService
}

func NewAppointmentHandler(service *services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

// GetAllAppointments always refetches the full collection and re-runs the
// enrichment join; the listing is never served from local state.
func (h *AppointmentHandler) GetAllAppointments(c *gin.Context) {
	appointments := h.service.GetAllEnriched(c.Request.Context())
	c.JSON(200, appointments)
}

func (h *AppointmentHandler) GetAppointmentByID(c *gin.Context) {
	id, err := parseAppointmentID(c)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid appointment ID"})
		return
	}

	appointment, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondBackendError(c, err)
		return
	}
	c.JSON(200, appointment)
}

func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var appointment models.Appointment
	if err := c.ShouldBindJSON(&appointment); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	created, err := h.service.Create(c.Request.Context(), &appointment)
	if err != nil {
		respondBackendError(c, err)
		return
	}
	c.JSON(201, created)
}

func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	id, err := parseAppointmentID(c)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid appointment ID"})
		return
	}

	var appointment models.Appointment
	if err := c.ShouldBindJSON(&appointment); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &appointment)
	if err != nil {
		respondBackendError(c, err)
		return
	}
	c.JSON(200, updated)
}

// UpdateAppointmentStatus is the quick action from the listing; it reuses
// the generic update path with only the status field changed.
func (h *AppointmentHandler) UpdateAppointmentStatus(c *gin.Context) {
	id, err := parseAppointmentID(c)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid appointment ID"})
		return
	}

	var body struct {
		Status int `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.service.UpdateStatus(c.Request.Context(), id, body.Status)
	if err != nil {
		respondBackendError(c, err)
		return
	}
	c.JSON(200, updated)
}

// DeleteAppointment is not implemented by the clinical backend. The console
// surfaces an explicit notice and never issues a DELETE upstream.
func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	c.JSON(501, gin.H{"error": "Appointment deletion is not available yet"})
}

func parseAppointmentID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("appointment_id"), 10, 32)
	return uint(id), err
}
