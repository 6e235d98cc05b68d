package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"storeadmin/pkg/models"
)

// ProductService maps 1:1 onto the /products endpoints. Create and Update
// send multipart bodies because the image is a binary attachment.
type ProductService struct {
	c *Client
}

// NewProductService creates a ProductService on the given client.
func NewProductService(c *Client) *ProductService {
	return &ProductService{c: c}
}

// Search returns one page of products matching the name filter.
func (s *ProductService) Search(ctx context.Context, name string, page, limit int) (Page[models.Product], error) {
	q := url.Values{}
	q.Set("name", name)
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))

	var result Page[models.Product]
	if err := s.c.get(ctx, "/products/search", q, &result); err != nil {
		return Page[models.Product]{}, err
	}
	return result, nil
}

// GetByID fetches a single product.
func (s *ProductService) GetByID(ctx context.Context, id int) (models.Product, error) {
	var p models.Product
	if err := s.c.get(ctx, fmt.Sprintf("/products/%d", id), nil, &p); err != nil {
		return models.Product{}, err
	}
	return p, nil
}

// Create registers a new product from a multipart payload.
func (s *ProductService) Create(ctx context.Context, payload *FormPayload) (models.Product, error) {
	var p models.Product
	if err := s.c.postMultipart(ctx, "/products", payload, &p); err != nil {
		return models.Product{}, err
	}
	return p, nil
}

// Update replaces a product's editable fields.
func (s *ProductService) Update(ctx context.Context, id int, payload *FormPayload) error {
	return s.c.putMultipart(ctx, fmt.Sprintf("/products/%d", id), payload)
}

// Delete removes a product.
func (s *ProductService) Delete(ctx context.Context, id int) error {
	return s.c.delete(ctx, fmt.Sprintf("/products/%d", id))
}
