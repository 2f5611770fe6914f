package backend

import (
	"context"
	"net/http"
	"net/url"

	"ClinicaAdmin/models"
)

const doctorsBase = "/doctors"

func (c *Client) GetAllDoctors(ctx context.Context) []models.Doctor {
	doctors := []models.Doctor{}
	c.listAll(ctx, doctorsBase, &doctors)
	return doctors
}

func (c *Client) GetDoctorByID(ctx context.Context, id string) (*models.Doctor, error) {
	var doctor models.Doctor
	if err := c.doJSON(ctx, http.MethodGet, doctorsBase+"/"+url.PathEscape(id), nil, &doctor); err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (c *Client) CreateDoctor(ctx context.Context, doctor *models.Doctor) (*models.Doctor, error) {
	created := *doctor
	if err := c.doJSON(ctx, http.MethodPost, doctorsBase, doctor, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateDoctor(ctx context.Context, id string, doctor *models.Doctor) (*models.Doctor, error) {
	updated := *doctor
	updated.ID = id
	if err := c.doJSON(ctx, http.MethodPut, doctorsBase+"/"+url.PathEscape(id), doctor, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteDoctor(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, doctorsBase+"/"+url.PathEscape(id), nil, nil)
}
