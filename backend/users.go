package backend

import (
	"context"
	"fmt"
	"net/http"

	"ClinicaAdmin/models"
)

const usersBase = "/users"

func (c *Client) GetAllUsers(ctx context.Context) []models.User {
	users := []models.User{}
	c.listAll(ctx, usersBase, &users)
	return users
}

func (c *Client) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("%s/%d", usersBase, id), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	created := *user
	if err := c.doJSON(ctx, http.MethodPost, usersBase, user, &created); err != nil {
		return nil, err
	}
	created.Password = ""
	return &created, nil
}

// UpdateUser sends only the fields present in the partial payload.
func (c *Client) UpdateUser(ctx context.Context, id int64, fields models.UserUpdate) error {
	return c.doJSON(ctx, http.MethodPut, fmt.Sprintf("%s/%d", usersBase, id), fields, nil)
}

func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", usersBase, id), nil, nil)
}
