package models

import (
	"encoding/json"
	"strings"
)

// UnknownName is the placeholder shown when a patient or doctor reference
// cannot be resolved against the clinical backend.
const UnknownName = "Unknown"

// Appointment is the transport record served by the clinical backend. The
// backend is inconsistent about the casing of foreign-key fields
// (patientId vs patientID), so decoding tolerates the known variants and
// canonicalizes here; the ambiguity never leaves this package.
type Appointment struct {
	ID          uint   `json:"id"`
	PatientID   string `json:"patientId"`
	DoctorID    string `json:"doctorId"`
	TreatmentID string `json:"treatmentId"`
	DateTime    string `json:"dateTime"`
	Reason      string `json:"reason"`
	Status      int    `json:"status"`
}

func (a *Appointment) UnmarshalJSON(data []byte) error {
	type appointmentAlias Appointment
	if err := json.Unmarshal(data, (*appointmentAlias)(a)); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if a.PatientID == "" {
		a.PatientID = firstStringKey(raw, "patientID", "pacienteId", "pacienteID", "patient_id")
	}
	if a.DoctorID == "" {
		a.DoctorID = firstStringKey(raw, "doctorID", "medicoId", "medicoID", "doctor_id")
	}
	if a.TreatmentID == "" {
		a.TreatmentID = firstStringKey(raw, "treatmentID", "tratamientoId", "tratamientoID", "treatment_id")
	}
	if a.DateTime == "" {
		a.DateTime = firstStringKey(raw, "date_time", "fecha", "fechaHora")
	}
	return nil
}

// firstStringKey returns the first non-empty string value among the given
// alternate keys.
func firstStringKey(raw map[string]json.RawMessage, keys ...string) string {
	for _, key := range keys {
		value, ok := raw[key]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(value, &s); err == nil && s != "" {
			return s
		}
	}
	return ""
}

// EnrichedAppointment is an appointment joined with display fields resolved
// client-side: names for the foreign keys, locale date/time strings and the
// status label.
type EnrichedAppointment struct {
	Appointment
	PatientName string `json:"patientName"`
	DoctorName  string `json:"doctorName"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	StatusLabel string `json:"statusLabel"`
}

// Patient model
type Patient struct {
	ID           string `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	DocumentID   string `json:"documentId"`
	BirthDate    string `json:"birthDate"`
	Sex          string `json:"sex"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	InsurerID    string `json:"insurerId,omitempty"`
	PolicyNumber string `json:"policyNumber,omitempty"`
}

// Insured is derived from the presence of an insurer and a policy, it is
// never stored as its own field.
func (p Patient) Insured() bool {
	return p.InsurerID != "" && p.PolicyNumber != ""
}

func (p Patient) FullName() string {
	return joinName(p.FirstName, p.LastName)
}

// Doctor model
type Doctor struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Specialty string `json:"specialty"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}

func (d Doctor) FullName() string {
	return joinName(d.FirstName, d.LastName)
}

func joinName(first, last string) string {
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}

// Insurer (ARS) model
type Insurer struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	ContactPerson string `json:"contactPerson"`
}

// Invoice model
type Invoice struct {
	ID              string  `json:"id"`
	PatientDocument string  `json:"patientDocument"`
	Amount          float64 `json:"amount"`
	IssueDate       string  `json:"issueDate"`
	Paid            bool    `json:"paid"`
	InsurerID       string  `json:"insurerId,omitempty"`
	PolicyNumber    string  `json:"policyNumber,omitempty"`
}

// InvoiceItem links an invoice to a treatment. Items are listed in bulk by
// the backend and filtered by invoice id on this side.
type InvoiceItem struct {
	ID          uint    `json:"id"`
	InvoiceID   string  `json:"invoiceId"`
	TreatmentID string  `json:"treatmentId"`
	Amount      float64 `json:"amount"`
}

// Coverage request statuses as returned by the ARS authorization endpoint.
const (
	CoverageApproved = "aprobada"
	CoveragePending  = "pendiente"
	CoverageRejected = "rechazada"
)

// CoverageRequest is the body of an ARS authorization check. It is ephemeral:
// the result drives the invoice creation path and is never persisted.
type CoverageRequest struct {
	DocumentID  string  `json:"documentId"`
	RequestType string  `json:"requestType"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// CoverageResult is the outcome of an ARS authorization check.
type CoverageResult struct {
	RequestID      string  `json:"requestId"`
	Estado         string  `json:"estado"`
	ApprovedAmount float64 `json:"approvedAmount"`
	PolicyNumber   string  `json:"policyNumber"`
}
