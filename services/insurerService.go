package services

import (
	"context"

	"ClinicaAdmin/backend"
	"ClinicaAdmin/models"
)

type InsurerService struct {
	backend *backend.Client
}

func NewInsurerService(backend *backend.Client) *InsurerService {
	return &InsurerService{backend: backend}
}

func (s *InsurerService) Create(ctx context.Context, insurer *models.Insurer) (*models.Insurer, error) {
	return s.backend.CreateInsurer(ctx, insurer)
}

func (s *InsurerService) GetByID(ctx context.Context, id string) (*models.Insurer, error) {
	return s.backend.GetInsurerByID(ctx, id)
}

func (s *InsurerService) GetAll(ctx context.Context) []models.Insurer {
	return s.backend.GetAllInsurers(ctx)
}

func (s *InsurerService) Update(ctx context.Context, id string, insurer *models.Insurer) (*models.Insurer, error) {
	return s.backend.UpdateInsurer(ctx, id, insurer)
}

func (s *InsurerService) Delete(ctx context.Context, id string) error {
	return s.backend.DeleteInsurer(ctx, id)
}
