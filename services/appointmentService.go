package services

import (
	"context"
	"log"
	"sync"
	"time"

	"ClinicaAdmin/backend"
	"ClinicaAdmin/models"
)

// enrichWorkers bounds the per-listing lookup fan-out so a large collection
// cannot exhaust backend connections.
const enrichWorkers = 8

var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

type AppointmentService struct {
	backend *backend.Client
}

func NewAppointmentService(backend *backend.Client) *AppointmentService {
	return &AppointmentService{backend: backend}
}

// GetAllEnriched lists appointments and resolves their patient and doctor
// references to display names. The backend has no joined endpoint, so the
// join happens here: one lookup per reference, run concurrently. A failing
// lookup resolves to a placeholder and never fails the row; the result has
// exactly one enriched row per raw row, in the original order.
func (s *AppointmentService) GetAllEnriched(ctx context.Context) []models.EnrichedAppointment {
	appointments := s.backend.GetAllAppointments(ctx)

	enriched := make([]models.EnrichedAppointment, len(appointments))
	sem := make(chan struct{}, enrichWorkers)
	var wg sync.WaitGroup

	for i, appointment := range appointments {
		enriched[i] = models.EnrichedAppointment{
			Appointment: appointment,
			StatusLabel: models.StatusLabel(appointment.Status),
		}
		enriched[i].Date, enriched[i].Time = formatDateTime(appointment.DateTime)

		wg.Add(2)
		go func(i int, patientID string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			enriched[i].PatientName = s.resolvePatientName(ctx, patientID)
		}(i, appointment.PatientID)
		go func(i int, doctorID string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			enriched[i].DoctorName = s.resolveDoctorName(ctx, doctorID)
		}(i, appointment.DoctorID)
	}

	wg.Wait()
	return enriched
}

func (s *AppointmentService) Create(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	return s.backend.CreateAppointment(ctx, appointment)
}

func (s *AppointmentService) GetByID(ctx context.Context, id uint) (*models.Appointment, error) {
	return s.backend.GetAppointmentByID(ctx, id)
}

func (s *AppointmentService) Update(ctx context.Context, id uint, appointment *models.Appointment) (*models.Appointment, error) {
	return s.backend.UpdateAppointment(ctx, id, appointment)
}

// UpdateStatus is the quick action: the generic update path with only the
// status field altered.
func (s *AppointmentService) UpdateStatus(ctx context.Context, id uint, status int) (*models.Appointment, error) {
	appointment, err := s.backend.GetAppointmentByID(ctx, id)
	if err != nil {
		return nil, err
	}
	appointment.Status = status
	return s.backend.UpdateAppointment(ctx, id, appointment)
}

// resolvePatientName degrades a missing or failing reference to the
// placeholder; enrichment failures are logged but never surfaced.
func (s *AppointmentService) resolvePatientName(ctx context.Context, id string) string {
	patient, err := s.backend.GetPatientByID(ctx, id)
	if err != nil || patient == nil {
		log.Printf("Failed to resolve patient %s: %v", id, err)
		return models.UnknownName
	}
	name := patient.FullName()
	if name == "" {
		return models.UnknownName
	}
	return name
}

func (s *AppointmentService) resolveDoctorName(ctx context.Context, id string) string {
	doctor, err := s.backend.GetDoctorByID(ctx, id)
	if err != nil || doctor == nil {
		log.Printf("Failed to resolve doctor %s: %v", id, err)
		return models.UnknownName
	}
	name := doctor.FullName()
	if name == "" {
		return models.UnknownName
	}
	return name
}

// formatDateTime splits a raw timestamp into locale date and time strings.
// Unparseable values degrade to the raw string so a bad timestamp never
// hides the row.
func formatDateTime(raw string) (string, string) {
	for _, layout := range dateTimeLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed.Format("02/01/2006"), parsed.Format("03:04 PM")
		}
	}
	return raw, ""
}
