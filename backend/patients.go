package backend

import (
	"context"
	"net/http"
	"net/url"

	"ClinicaAdmin/models"
)

const patientsBase = "/patients"

func (c *Client) GetAllPatients(ctx context.Context) []models.Patient {
	patients := []models.Patient{}
	c.listAll(ctx, patientsBase, &patients)
	return patients
}

func (c *Client) GetPatientByID(ctx context.Context, id string) (*models.Patient, error) {
	var patient models.Patient
	if err := c.doJSON(ctx, http.MethodGet, patientsBase+"/"+url.PathEscape(id), nil, &patient); err != nil {
		return nil, err
	}
	return &patient, nil
}

func (c *Client) CreatePatient(ctx context.Context, patient *models.Patient) (*models.Patient, error) {
	created := *patient
	if err := c.doJSON(ctx, http.MethodPost, patientsBase, patient, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdatePatient(ctx context.Context, id string, patient *models.Patient) (*models.Patient, error) {
	updated := *patient
	updated.ID = id
	if err := c.doJSON(ctx, http.MethodPut, patientsBase+"/"+url.PathEscape(id), patient, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
