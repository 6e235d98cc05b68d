package cli

import (
	"context"
	"strconv"

	"storeadmin/internal/api"
	"storeadmin/internal/form"
	"storeadmin/internal/list"
	"storeadmin/pkg/models"
)

func contactFields() []form.Field {
	numRe, _ := form.NumberRule()
	return []form.Field{
		{
			Name: "full_name", Label: "Contact name", Kind: form.KindText,
			Required: true, RequiredMessage: "Contact name must not be empty.",
			DisabledOnEdit: true,
		},
		{
			Name: "email", Label: "Contact e-mail", Kind: form.KindText,
			Required: true, RequiredMessage: "E-mail must be 4 to 50 characters.",
			MinLen: 4, MaxLen: 50, LengthMessage: "E-mail must be 4 to 50 characters.",
			DisabledOnEdit: true,
		},
		{Name: "content", Label: "Message", Kind: form.KindText},
		{
			Name: "status", Label: "Status", Kind: form.KindNumber,
			Pattern: numRe, PatternMessage: "Status must be a valid number.",
			Default: "1",
		},
	}
}

func contactResource() resource[models.Contact] {
	return resource[models.Contact]{
		use:      "contacts",
		short:    "Manage storefront contact messages",
		singular: "contact",
		plural:   "Contacts",

		columns: []list.Column{
			{Title: "ID", Width: 6},
			{Title: "Name", Width: 18},
			{Title: "E-mail", Width: 24},
			{Title: "Content", Width: 28},
			{Title: "Status", Width: 10},
			{Title: "Created", Width: 19},
		},
		row: func(c models.Contact) []string {
			return []string{
				strconv.Itoa(c.ContactID), c.FullName, c.Email,
				c.Content, c.Status.Label(), c.CreatedAt,
			}
		},
		id:   func(c models.Contact) int { return c.ContactID },
		name: func(c models.Contact) string { return c.FullName },
		detail: func(d *Dependencies, c models.Contact) [][2]string {
			return [][2]string{
				{"ID", strconv.Itoa(c.ContactID)},
				{"Name", c.FullName},
				{"E-mail", c.Email},
				{"Message", c.Content},
				{"Status", c.Status.Label()},
				{"Created", c.CreatedAt},
				{"Updated", c.UpdatedAt},
			}
		},

		fetch: func(ctx context.Context, d *Dependencies, keyword string, page, limit int) (api.Page[models.Contact], error) {
			return d.Contacts.Search(ctx, keyword, page, limit)
		},
		get: func(ctx context.Context, d *Dependencies, id int) (models.Contact, error) {
			return d.Contacts.GetByID(ctx, id)
		},
		remove: func(ctx context.Context, d *Dependencies, id int) error {
			return d.Contacts.Delete(ctx, id)
		},

		fields: contactFields,
		seed: func(c models.Contact) map[string]string {
			return map[string]string{
				"full_name": c.FullName,
				"email":     c.Email,
				"content":   c.Content,
				"status":    strconv.Itoa(int(c.Status)),
			}
		},
		create: func(ctx context.Context, d *Dependencies, f *form.Form) error {
			_, err := d.Contacts.Create(ctx, f.JSON())
			return err
		},
		update: func(ctx context.Context, d *Dependencies, id int, f *form.Form) error {
			return d.Contacts.Update(ctx, id, f.JSON())
		},
	}
}
