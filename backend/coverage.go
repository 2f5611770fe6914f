package backend

import (
	"context"
	"net/http"

	"ClinicaAdmin/models"
)

// RequestCoverage submits an ARS authorization check. The result is never
// persisted by the console; it only steers the invoice creation path.
func (c *Client) RequestCoverage(ctx context.Context, request models.CoverageRequest) (*models.CoverageResult, error) {
	var result models.CoverageResult
	if err := c.doJSON(ctx, http.MethodPost, "/coverage", request, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
