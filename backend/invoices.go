package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"ClinicaAdmin/models"
)

const (
	invoicesBase     = "/invoices"
	invoiceItemsBase = "/invoice-items"
)

// SimpleInvoicePayload is the uninsured creation shape: subject document and
// amount only.
type SimpleInvoicePayload struct {
	PatientDocument string  `json:"patientDocument"`
	Amount          float64 `json:"amount"`
}

// CoveredInvoicePayload is the specialized creation shape used once an ARS
// coverage check came back approved or pending.
type CoveredInvoicePayload struct {
	PatientDocument string  `json:"patientDocument"`
	Amount          float64 `json:"amount"`
	InsurerID       string  `json:"insurerId"`
	PolicyNumber    string  `json:"policyNumber"`
	CoverageID      string  `json:"coverageRequestId"`
}

func (c *Client) GetAllInvoices(ctx context.Context) []models.Invoice {
	invoices := []models.Invoice{}
	c.listAll(ctx, invoicesBase, &invoices)
	return invoices
}

func (c *Client) CreateInvoice(ctx context.Context, payload SimpleInvoicePayload) (*models.Invoice, error) {
	var invoice models.Invoice
	if err := c.doJSON(ctx, http.MethodPost, invoicesBase, payload, &invoice); err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (c *Client) CreateCoveredInvoice(ctx context.Context, payload CoveredInvoicePayload) (*models.Invoice, error) {
	var invoice models.Invoice
	if err := c.doJSON(ctx, http.MethodPost, invoicesBase, payload, &invoice); err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (c *Client) UpdateInvoice(ctx context.Context, id string, invoice *models.Invoice) (*models.Invoice, error) {
	updated := *invoice
	updated.ID = id
	if err := c.doJSON(ctx, http.MethodPut, invoicesBase+"/"+url.PathEscape(id), invoice, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteInvoice(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, invoicesBase+"/"+url.PathEscape(id), nil, nil)
}

// GetAllInvoiceItems lists every line item across all invoices; the backend
// exposes no per-invoice filter so callers narrow the result themselves.
func (c *Client) GetAllInvoiceItems(ctx context.Context) []models.InvoiceItem {
	items := []models.InvoiceItem{}
	c.listAll(ctx, invoiceItemsBase, &items)
	return items
}

func (c *Client) CreateInvoiceItem(ctx context.Context, item *models.InvoiceItem) (*models.InvoiceItem, error) {
	created := *item
	if err := c.doJSON(ctx, http.MethodPost, invoiceItemsBase, item, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateInvoiceItem(ctx context.Context, id uint, item *models.InvoiceItem) (*models.InvoiceItem, error) {
	updated := *item
	updated.ID = id
	if err := c.doJSON(ctx, http.MethodPut, itemPath(id), item, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteInvoiceItem(ctx context.Context, id uint) error {
	return c.doJSON(ctx, http.MethodDelete, itemPath(id), nil, nil)
}

func itemPath(id uint) string {
	return fmt.Sprintf("%s/%d", invoiceItemsBase, id)
}
