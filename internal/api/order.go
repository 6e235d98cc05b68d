package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"storeadmin/pkg/models"
)

// OrderService maps 1:1 onto the /orders endpoints. Payloads are plain
// JSON; GetByID includes the order_details rows, which are deleted
// individually through DeleteDetail.
type OrderService struct {
	c *Client
}

// NewOrderService creates an OrderService on the given client.
func NewOrderService(c *Client) *OrderService {
	return &OrderService{c: c}
}

// Search returns one page of orders matching the keyword filter.
func (s *OrderService) Search(ctx context.Context, keyword string, page, limit int) (Page[models.Order], error) {
	q := url.Values{}
	q.Set("keyword", keyword)
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))

	var result Page[models.Order]
	if err := s.c.get(ctx, "/orders/search", q, &result); err != nil {
		return Page[models.Order]{}, err
	}
	return result, nil
}

// GetByID fetches a single order with its order_details.
func (s *OrderService) GetByID(ctx context.Context, id int) (models.Order, error) {
	var o models.Order
	if err := s.c.get(ctx, fmt.Sprintf("/orders/%d", id), nil, &o); err != nil {
		return models.Order{}, err
	}
	return o, nil
}

// Create registers a new order.
func (s *OrderService) Create(ctx context.Context, payload map[string]any) (models.Order, error) {
	var o models.Order
	if err := s.c.postJSON(ctx, "/orders", payload, &o); err != nil {
		return models.Order{}, err
	}
	return o, nil
}

// Update replaces an order's editable fields.
func (s *OrderService) Update(ctx context.Context, id int, payload map[string]any) error {
	return s.c.putJSON(ctx, fmt.Sprintf("/orders/%d", id), payload)
}

// Delete removes an order.
func (s *OrderService) Delete(ctx context.Context, id int) error {
	return s.c.delete(ctx, fmt.Sprintf("/orders/%d", id))
}

// DeleteDetail removes a single order line by its own identifier.
func (s *OrderService) DeleteDetail(ctx context.Context, orderDetailID int) error {
	return s.c.delete(ctx, fmt.Sprintf("/order-details/%d", orderDetailID))
}
