package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"ClinicaAdmin/models"
	"ClinicaAdmin/services"
	"ClinicaAdmin/utils"
)

type BillingHandler struct {
	service *services.BillingService
}

func NewBillingHandler(service *services.BillingService) *BillingHandler {
	return &BillingHandler{service: service}
}

// CheckCoverage runs the ARS authorization request. The console blocks
// insured invoice submission until this has been called.
func (h *BillingHandler) CheckCoverage(c *gin.Context) {
	var request models.CoverageRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	if err := utils.ValidateCoverageRequest(request); err != nil {
		respondValidationError(c, err)
		return
	}

	result, err := h.service.CheckCoverage(c.Request.Context(), request)
	if err != nil {
		respondBackendError(c, err)
		return
	}
	c.JSON(200, result)
}

// CreateInvoice runs the invoice choreography. Blocked submissions (coverage
// unchecked or rejected) come back as 422 so the form stays open with the
// reason; a line-item failure is a warning on the 201, not an error.
func (h *BillingHandler) CreateInvoice(c *gin.Context) {
	var form services.InvoiceForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	if err := validateInvoiceForm(form); err != nil {
		respondValidationError(c, err)
		return
	}

	invoice, warning, err := h.service.CreateInvoice(c.Request.Context(), form)
	if err != nil {
		if errors.Is(err, services.ErrCoverageNotChecked) || errors.Is(err, services.ErrCoverageRejected) {
			c.JSON(422, gin.H{"error": err.Error()})
			return
		}
		respondBackendError(c, err)
		return
	}

	response := gin.H{"invoice": invoice}
	if warning != "" {
		response["warning"] = warning
	}
	c.JSON(201, response)
}

func validateInvoiceForm(form services.InvoiceForm) error {
	return validation.Errors{
		"patientDocument": validation.Validate(form.PatientDocument,
			validation.Required,
			validation.Match(utils.DocumentIDPattern).Error("must match the format 000-000000-0")),
		"amount": validation.Validate(form.Amount, validation.Required, validation.Min(0.01)),
	}.Filter()
}

func (h *BillingHandler) GetAllInvoices(c *gin.Context) {
	invoices := h.service.GetAllInvoices(c.Request.Context())
	c.JSON(200, invoices)
}

func (h *BillingHandler) GetInvoiceItems(c *gin.Context) {
	items := h.service.GetInvoiceItems(c.Request.Context(), c.Param("id"))
	c.JSON(200, items)
}

func (h *BillingHandler) UpdateInvoice(c *gin.Context) {
	var invoice models.Invoice
	if err := c.ShouldBindJSON(&invoice); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.service.Update(c.Request.Context(), c.Param("id"), &invoice)
	if err != nil {
		respondBackendError(c, err)
		return
	}
	c.JSON(200, updated)
}

func (h *BillingHandler) DeleteInvoice(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondBackendError(c, err)
		return
	}
	c.JSON(204, gin.H{"message": "Invoice deleted"})
}
