package backend

import (
	"context"
	"fmt"
	"net/http"

	"ClinicaAdmin/models"
)

const appointmentsBase = "/appointments"

// GetAllAppointments lists every appointment. A failed fetch yields an empty
// slice, never an error.
//
// Appointment deletion is deliberately absent: the clinical backend does not
// implement it, and the console must surface an unavailable notice instead
// of issuing a DELETE.
func (c *Client) GetAllAppointments(ctx context.Context) []models.Appointment {
	appointments := []models.Appointment{}
	c.listAll(ctx, appointmentsBase, &appointments)
	return appointments
}

func (c *Client) GetAppointmentByID(ctx context.Context, id uint) (*models.Appointment, error) {
	var appointment models.Appointment
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("%s/%d", appointmentsBase, id), nil, &appointment); err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (c *Client) CreateAppointment(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	created := *appointment
	if err := c.doJSON(ctx, http.MethodPost, appointmentsBase, appointment, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateAppointment(ctx context.Context, id uint, appointment *models.Appointment) (*models.Appointment, error) {
	// A 204 response leaves the payload as the synthesized success value.
	updated := *appointment
	updated.ID = id
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("%s/%d", appointmentsBase, id), appointment, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
