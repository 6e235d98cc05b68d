package cli

import (
	"context"
	"strconv"

	"storeadmin/internal/api"
	"storeadmin/internal/assets"
	"storeadmin/internal/form"
	"storeadmin/internal/list"
	"storeadmin/pkg/models"
)

func productFields() []form.Field {
	priceRe, priceMsg := form.DecimalRule()
	return []form.Field{
		{
			Name: "sku", Label: "SKU", Kind: form.KindText,
			Required: true, RequiredMessage: "SKU must not be empty.",
			MaxLen: 10, LengthMessage: "SKU allows at most 10 characters.",
			DisabledOnEdit: true,
		},
		{
			Name: "name", Label: "Product name", Kind: form.KindText,
			Required: true, RequiredMessage: "Product name must not be empty.",
			MinLen: 4, MaxLen: 100, LengthMessage: "Product name must be 4 to 100 characters.",
			DisabledOnEdit: true,
		},
		{
			Name: "category", Label: "Category", Kind: form.KindText,
			Required: true, RequiredMessage: "Category must not be empty.",
			MaxLen: 20, LengthMessage: "Category allows at most 20 characters.",
			Choices: []form.Choice{
				{Label: "Burberry", Value: "Burberry"},
				{Label: "Dior", Value: "Dior"},
				{Label: "Chanel", Value: "Chanel"},
			},
		},
		{
			Name: "unit_price", Label: "Unit price", Kind: form.KindDecimal,
			Pattern: priceRe, PatternMessage: priceMsg,
			Default: "0",
		},
		{
			Name: "description", Label: "Description", Kind: form.KindText,
			Required: true, RequiredMessage: "Description must not be empty.",
			MinLen: 2, MaxLen: 65535, LengthMessage: "Description must be at least 2 characters.",
		},
		{Name: "image", Label: "Product image", Kind: form.KindFile},
	}
}

func productResource() resource[models.Product] {
	return resource[models.Product]{
		use:      "products",
		short:    "Manage the product catalog",
		singular: "product",
		plural:   "Products",

		columns: []list.Column{
			{Title: "ID", Width: 6},
			{Title: "SKU", Width: 10},
			{Title: "Name", Width: 24},
			{Title: "Category", Width: 12},
			{Title: "Price", Width: 10},
			{Title: "Description", Width: 24},
			{Title: "Created", Width: 19},
		},
		row: func(p models.Product) []string {
			return []string{
				strconv.Itoa(p.ProductID), p.SKU, p.Name, p.Category,
				p.UnitPrice.String(), p.Description, p.CreatedAt,
			}
		},
		id:   func(p models.Product) int { return p.ProductID },
		name: func(p models.Product) string { return p.Name },
		detail: func(d *Dependencies, p models.Product) [][2]string {
			return [][2]string{
				{"ID", strconv.Itoa(p.ProductID)},
				{"SKU", p.SKU},
				{"Name", p.Name},
				{"Category", p.Category},
				{"Unit price", p.UnitPrice.String()},
				{"Description", p.Description},
				{"Image", assets.StaticURL(d.API.BaseURL(), p.Image)},
				{"Created", p.CreatedAt},
				{"Updated", p.UpdatedAt},
			}
		},

		fetch: func(ctx context.Context, d *Dependencies, keyword string, page, limit int) (api.Page[models.Product], error) {
			return d.Products.Search(ctx, keyword, page, limit)
		},
		get: func(ctx context.Context, d *Dependencies, id int) (models.Product, error) {
			return d.Products.GetByID(ctx, id)
		},
		remove: func(ctx context.Context, d *Dependencies, id int) error {
			return d.Products.Delete(ctx, id)
		},

		fields: productFields,
		seed: func(p models.Product) map[string]string {
			return map[string]string{
				"sku":         p.SKU,
				"name":        p.Name,
				"category":    p.Category,
				"unit_price":  p.UnitPrice.String(),
				"description": p.Description,
			}
		},
		create: func(ctx context.Context, d *Dependencies, f *form.Form) error {
			_, err := d.Products.Create(ctx, f.Multipart())
			return err
		},
		update: func(ctx context.Context, d *Dependencies, id int, f *form.Form) error {
			return d.Products.Update(ctx, id, f.Multipart())
		},
	}
}
