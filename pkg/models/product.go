package models

import "github.com/shopspring/decimal"

// Product is a catalog entry. SKU is immutable after creation. UnitPrice
// is a non-negative decimal with at most two fractional digits.
type Product struct {
	ProductID   int             `json:"product_id"`
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Description string          `json:"description"`
	Image       string          `json:"image,omitempty"`
	CreatedAt   string          `json:"created_at,omitempty"`
	UpdatedAt   string          `json:"updated_at,omitempty"`
}
