package handlers

import (
	"github.com/gin-gonic/gin"

	"ClinicaAdmin/models"
	"ClinicaAdmin/services"
	"ClinicaAdmin/utils"
)

type InsurerHandler struct {
	service *services.InsurerService
}

func NewInsurerHandler(service *services.InsurerService) *InsurerHandler {
	return &InsurerHandler{service: service}
}

func (h *InsurerHandler) CreateInsurer(c *gin.Context) {
	var insurer models.Insurer
	if err := c.ShouldBindJSON(&insurer); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	if err := utils.ValidateInsurer(insurer); err != nil {
		respondValidationError(c, err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), &insurer)
	if err != nil {
		respondBackendError(c, err)
		return
	}
	c.JSON(201, created)
}

func (h *InsurerHandler) GetInsurerByID(c *gin.Context) {
	insurer, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondBackendError(c, err)
		return
	}
	c.JSON(200, insurer)
}

func (h *InsurerHandler) GetAllInsurers(c *gin.Context) {
	insurers := h.service.GetAll(c.Request.Context())
	c.JSON(200, insurers)
}

func (h *InsurerHandler) UpdateInsurer(c *gin.Context) {
	var insurer models.Insurer
	if err := c.ShouldBindJSON(&insurer); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	if err := utils.ValidateInsurer(insurer); err != nil {
		respondValidationError(c, err)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), c.Param("id"), &insurer)
	if err != nil {
		respondBackendError(c, err)
		return
	}
	c.JSON(200, updated)
}

func (h *InsurerHandler) DeleteInsurer(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondBackendError(c, err)
		return
	}
	c.JSON(204, gin.H{"message": "Insurer deleted"})
}
