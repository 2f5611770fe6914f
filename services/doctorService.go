package services

import (
	"context"

	"ClinicaAdmin/backend"
	"ClinicaAdmin/models"
)

type DoctorService struct {
	backend *backend.Client
}

func NewDoctorService(backend *backend.Client) *DoctorService {
	return &DoctorService{backend: backend}
}

func (s *DoctorService) Create(ctx context.Context, doctor *models.Doctor) (*models.Doctor, error) {
	return s.backend.CreateDoctor(ctx, doctor)
}

func (s *DoctorService) GetByID(ctx context.Context, id string) (*models.Doctor, error) {
	return s.backend.GetDoctorByID(ctx, id)
}

func (s *DoctorService) GetAll(ctx context.Context) []models.Doctor {
	return s.backend.GetAllDoctors(ctx)
}

func (s *DoctorService) Update(ctx context.Context, id string, doctor *models.Doctor) (*models.Doctor, error) {
	return s.backend.UpdateDoctor(ctx, id, doctor)
}

func (s *DoctorService) Delete(ctx context.Context, id string) error {
	return s.backend.DeleteDoctor(ctx, id)
}
