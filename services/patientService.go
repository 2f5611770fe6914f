package services

import (
	"context"

	"ClinicaAdmin/backend"
	"ClinicaAdmin/models"
)

type PatientService struct {
	backend *backend.Client
}

func NewPatientService(backend *backend.Client) *PatientService {
	return &PatientService{backend: backend}
}

func (s *PatientService) Create(ctx context.Context, patient *models.Patient) (*models.Patient, error) {
	return s.backend.CreatePatient(ctx, patient)
}

func (s *PatientService) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	return s.backend.GetPatientByID(ctx, id)
}

func (s *PatientService) GetAll(ctx context.Context) []models.Patient {
	return s.backend.GetAllPatients(ctx)
}

func (s *PatientService) Update(ctx context.Context, id string, patient *models.Patient) (*models.Patient, error) {
	return s.backend.UpdatePatient(ctx, id, patient)
}
