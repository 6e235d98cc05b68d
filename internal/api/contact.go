package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"storeadmin/pkg/models"
)

// ContactService maps 1:1 onto the /contacts endpoints. Payloads are
// plain JSON.
type ContactService struct {
	c *Client
}

// NewContactService creates a ContactService on the given client.
func NewContactService(c *Client) *ContactService {
	return &ContactService{c: c}
}

// Search returns one page of contact messages matching the keyword filter.
func (s *ContactService) Search(ctx context.Context, keyword string, page, limit int) (Page[models.Contact], error) {
	q := url.Values{}
	q.Set("keyword", keyword)
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))

	var result Page[models.Contact]
	if err := s.c.get(ctx, "/contacts/search", q, &result); err != nil {
		return Page[models.Contact]{}, err
	}
	return result, nil
}

// GetByID fetches a single contact message.
func (s *ContactService) GetByID(ctx context.Context, id int) (models.Contact, error) {
	var c models.Contact
	if err := s.c.get(ctx, fmt.Sprintf("/contacts/%d", id), nil, &c); err != nil {
		return models.Contact{}, err
	}
	return c, nil
}

// Create registers a new contact message.
func (s *ContactService) Create(ctx context.Context, payload map[string]any) (models.Contact, error) {
	var c models.Contact
	if err := s.c.postJSON(ctx, "/contacts", payload, &c); err != nil {
		return models.Contact{}, err
	}
	return c, nil
}

// Update replaces a contact message's editable fields.
func (s *ContactService) Update(ctx context.Context, id int, payload map[string]any) error {
	return s.c.putJSON(ctx, fmt.Sprintf("/contacts/%d", id), payload)
}

// Delete removes a contact message.
func (s *ContactService) Delete(ctx context.Context, id int) error {
	return s.c.delete(ctx, fmt.Sprintf("/contacts/%d", id))
}
