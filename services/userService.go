package services

import (
	"context"
	"log"

	"ClinicaAdmin/backend"
	"ClinicaAdmin/models"
	"ClinicaAdmin/utils"
)

type UserService struct {
	backend *backend.Client
	mailer  *utils.Mailer
}

func NewUserService(backend *backend.Client, mailer *utils.Mailer) *UserService {
	return &UserService{backend: backend, mailer: mailer}
}

// Create validates and creates a system account. The welcome email is best
// effort: a mail failure never fails the creation.
func (s *UserService) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if err := utils.ValidateUser(*user); err != nil {
		return nil, err
	}

	created, err := s.backend.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	if err := s.mailer.SendWelcomeEmail(created.Email, created.Username); err != nil {
		log.Printf("Failed to send welcome email to %s: %v", created.Email, err)
	}
	return created, nil
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return s.backend.GetUserByID(ctx, id)
}

func (s *UserService) GetAll(ctx context.Context) []models.User {
	return s.backend.GetAllUsers(ctx)
}

func (s *UserService) Update(ctx context.Context, id int64, fields models.UserUpdate) error {
	return s.backend.UpdateUser(ctx, id, fields)
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	return s.backend.DeleteUser(ctx, id)
}
