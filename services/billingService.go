package services

import (
	"context"
	"log"

	"github.com/pkg/errors"

	"ClinicaAdmin/backend"
	"ClinicaAdmin/models"
)

var (
	// ErrCoverageNotChecked blocks insured submissions until a coverage
	// check has been run. This is a console-enforced precondition, not a
	// backend rule.
	ErrCoverageNotChecked = errors.New("coverage must be verified before submitting an insured invoice")
	// ErrCoverageRejected blocks submission until the insurer selection is
	// cleared; resubmitting without an insurer uses the uninsured path.
	ErrCoverageRejected = errors.New("coverage was rejected: remove the insurer to bill without coverage")
)

// InvoiceItemWarning is appended to a successful creation when the follow-up
// line item could not be recorded.
const InvoiceItemWarning = "invoice created, but the treatment line item could not be recorded"

// InvoiceForm is the console's invoice creation input. Coverage carries the
// result of an explicit coverage check when an insurer is selected.
type InvoiceForm struct {
	PatientDocument string                 `json:"patientDocument"`
	TreatmentID     string                 `json:"treatmentId"`
	Amount          float64                `json:"amount"`
	InsurerID       string                 `json:"insurerId"`
	PolicyNumber    string                 `json:"policyNumber"`
	Coverage        *models.CoverageResult `json:"coverage"`
}

type BillingService struct {
	backend *backend.Client
}

func NewBillingService(backend *backend.Client) *BillingService {
	return &BillingService{backend: backend}
}

// CheckCoverage runs the ARS authorization request for an insured invoice.
func (s *BillingService) CheckCoverage(ctx context.Context, request models.CoverageRequest) (*models.CoverageResult, error) {
	return s.backend.RequestCoverage(ctx, request)
}

// CreateInvoice runs the invoice creation choreography. With no insurer the
// simplified payload is used and the coverage endpoint is never called. With
// an insurer, the coverage result decides: approved bills the approved
// amount, pending bills the provisional amount, rejected blocks submission.
// The follow-up line item is best effort; its failure becomes a warning on
// the success response, never a failed creation.
func (s *BillingService) CreateInvoice(ctx context.Context, form InvoiceForm) (*models.Invoice, string, error) {
	invoice, err := s.createByCoverage(ctx, form)
	if err != nil {
		return nil, "", err
	}

	warning := ""
	if form.TreatmentID != "" {
		item := &models.InvoiceItem{
			InvoiceID:   invoice.ID,
			TreatmentID: form.TreatmentID,
			Amount:      invoice.Amount,
		}
		if _, err := s.backend.CreateInvoiceItem(ctx, item); err != nil {
			log.Printf("Failed to create invoice item for invoice %s: %v", invoice.ID, err)
			warning = InvoiceItemWarning
		}
	}
	return invoice, warning, nil
}

func (s *BillingService) createByCoverage(ctx context.Context, form InvoiceForm) (*models.Invoice, error) {
	if form.InsurerID == "" {
		return s.backend.CreateInvoice(ctx, backend.SimpleInvoicePayload{
			PatientDocument: form.PatientDocument,
			Amount:          form.Amount,
		})
	}

	if form.Coverage == nil {
		return nil, ErrCoverageNotChecked
	}

	amount := form.Amount
	switch form.Coverage.Estado {
	case models.CoverageRejected:
		return nil, ErrCoverageRejected
	case models.CoverageApproved:
		amount = form.Coverage.ApprovedAmount
	case models.CoveragePending:
		// Provisional amount, the ARS has not settled yet.
	default:
		return nil, errors.Errorf("unexpected coverage status %q", form.Coverage.Estado)
	}

	policyNumber := form.PolicyNumber
	if policyNumber == "" {
		policyNumber = form.Coverage.PolicyNumber
	}

	return s.backend.CreateCoveredInvoice(ctx, backend.CoveredInvoicePayload{
		PatientDocument: form.PatientDocument,
		Amount:          amount,
		InsurerID:       form.InsurerID,
		PolicyNumber:    policyNumber,
		CoverageID:      form.Coverage.RequestID,
	})
}

func (s *BillingService) GetAllInvoices(ctx context.Context) []models.Invoice {
	return s.backend.GetAllInvoices(ctx)
}

// GetInvoiceItems fetches the bulk line-item listing and filters it by
// invoice id here; the backend has no per-invoice filter endpoint.
func (s *BillingService) GetInvoiceItems(ctx context.Context, invoiceID string) []models.InvoiceItem {
	items := s.backend.GetAllInvoiceItems(ctx)
	filtered := []models.InvoiceItem{}
	for _, item := range items {
		if item.InvoiceID == invoiceID {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

func (s *BillingService) Update(ctx context.Context, id string, invoice *models.Invoice) (*models.Invoice, error) {
	return s.backend.UpdateInvoice(ctx, id, invoice)
}

func (s *BillingService) Delete(ctx context.Context, id string) error {
	return s.backend.DeleteInvoice(ctx, id)
}
