package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"storeadmin/pkg/models"
)

// UserService maps 1:1 onto the /users endpoints. Create and Update send
// multipart bodies because the avatar is a binary attachment.
type UserService struct {
	c *Client
}

// NewUserService creates a UserService on the given client.
func NewUserService(c *Client) *UserService {
	return &UserService{c: c}
}

// Search returns one page of users matching the name filter.
func (s *UserService) Search(ctx context.Context, name string, page, limit int) (Page[models.User], error) {
	q := url.Values{}
	q.Set("name", name)
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))

	var result Page[models.User]
	if err := s.c.get(ctx, "/users/search", q, &result); err != nil {
		return Page[models.User]{}, err
	}
	return result, nil
}

// GetByID fetches a single user.
func (s *UserService) GetByID(ctx context.Context, id int) (models.User, error) {
	var u models.User
	if err := s.c.get(ctx, fmt.Sprintf("/users/%d", id), nil, &u); err != nil {
		return models.User{}, err
	}
	return u, nil
}

// Create registers a new user from a multipart payload.
func (s *UserService) Create(ctx context.Context, payload *FormPayload) (models.User, error) {
	var u models.User
	if err := s.c.postMultipart(ctx, "/users", payload, &u); err != nil {
		return models.User{}, err
	}
	return u, nil
}

// Update replaces a user's editable fields.
func (s *UserService) Update(ctx context.Context, id int, payload *FormPayload) error {
	return s.c.putMultipart(ctx, fmt.Sprintf("/users/%d", id), payload)
}

// Delete removes a user.
func (s *UserService) Delete(ctx context.Context, id int) error {
	return s.c.delete(ctx, fmt.Sprintf("/users/%d", id))
}
