package backend

import (
	"context"
	"net/http"
	"net/url"

	"ClinicaAdmin/models"
)

const insurersBase = "/insurers"

func (c *Client) GetAllInsurers(ctx context.Context) []models.Insurer {
	insurers := []models.Insurer{}
	c.listAll(ctx, insurersBase, &insurers)
	return insurers
}

func (c *Client) GetInsurerByID(ctx context.Context, id string) (*models.Insurer, error) {
	var insurer models.Insurer
	if err := c.doJSON(ctx, http.MethodGet, insurersBase+"/"+url.PathEscape(id), nil, &insurer); err != nil {
		return nil, err
	}
	return &insurer, nil
}

func (c *Client) CreateInsurer(ctx context.Context, insurer *models.Insurer) (*models.Insurer, error) {
	created := *insurer
	if err := c.doJSON(ctx, http.MethodPost, insurersBase, insurer, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateInsurer(ctx context.Context, id string, insurer *models.Insurer) (*models.Insurer, error) {
	updated := *insurer
	updated.ID = id
	if err := c.doJSON(ctx, http.MethodPut, insurersBase+"/"+url.PathEscape(id), insurer, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteInsurer(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, insurersBase+"/"+url.PathEscape(id), nil, nil)
}
