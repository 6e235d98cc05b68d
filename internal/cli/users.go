package cli

import (
	"context"
	"regexp"
	"strconv"

	"storeadmin/internal/api"
	"storeadmin/internal/assets"
	"storeadmin/internal/form"
	"storeadmin/internal/list"
	"storeadmin/pkg/models"
)

var emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)

func userFields() []form.Field {
	const usernameMsg = "Username must be 4 to 10 alphanumeric characters."
	const passwordMsg = "Password must be 8 to 20 characters."
	return []form.Field{
		{
			Name: "username", Label: "Username", Kind: form.KindText,
			Required: true, RequiredMessage: usernameMsg,
			MinLen: 4, MaxLen: 10, LengthMessage: usernameMsg,
			Pattern: usernamePattern, PatternMessage: usernameMsg,
			DisabledOnEdit: true,
		},
		{
			Name: "email", Label: "E-mail address", Kind: form.KindText,
			Required: true, RequiredMessage: "E-mail address must be 4 to 100 characters.",
			MinLen: 4, MaxLen: 100, LengthMessage: "E-mail address must be 4 to 100 characters.",
			Pattern: emailPattern, PatternMessage: "E-mail address is not valid.",
			DisabledOnEdit: true,
		},
		{
			Name: "first_name", Label: "First name", Kind: form.KindText,
			MaxLen: 100, LengthMessage: "First name must be at most 100 characters.",
		},
		{
			Name: "last_name", Label: "Last name", Kind: form.KindText,
			MaxLen: 100, LengthMessage: "Last name must be at most 100 characters.",
		},
		{
			Name: "password", Label: "Password", Kind: form.KindPassword,
			RequiredMessage: passwordMsg,
			MinLen:          8, MaxLen: 20, LengthMessage: passwordMsg,
			OmitWhenEmpty: true,
		},
		{
			Name: "confirmation_password", Label: "Confirm password", Kind: form.KindPassword,
			ConfirmOf: "password", ConfirmMessage: "Password confirmation does not match.",
		},
		{
			Name: "role", Label: "Role", Kind: form.KindChoice,
			Required: true,
			Choices: []form.Choice{
				{Label: models.RoleCustomer.Label(), Value: "2"},
				{Label: models.RoleAdmin.Label(), Value: "1"},
			},
			Default: "2",
		},
		{Name: "avatar", Label: "Avatar image", Kind: form.KindFile},
	}
}

func userResource() resource[models.User] {
	return resource[models.User]{
		use:      "users",
		short:    "Manage back-office accounts",
		singular: "user",
		plural:   "Users",

		columns: []list.Column{
			{Title: "ID", Width: 6},
			{Title: "Username", Width: 12},
			{Title: "E-mail", Width: 24},
			{Title: "Name", Width: 18},
			{Title: "Role", Width: 13},
			{Title: "Created", Width: 19},
		},
		row: func(u models.User) []string {
			return []string{
				strconv.Itoa(u.UserID), u.Username, u.Email,
				u.FullName(), u.Role.Label(), u.CreatedAt,
			}
		},
		id:   func(u models.User) int { return u.UserID },
		name: func(u models.User) string { return u.Username },
		detail: func(d *Dependencies, u models.User) [][2]string {
			return [][2]string{
				{"ID", strconv.Itoa(u.UserID)},
				{"Username", u.Username},
				{"E-mail", u.Email},
				{"First name", u.FirstName},
				{"Last name", u.LastName},
				{"Role", u.Role.Label()},
				{"Avatar", assets.StaticURL(d.API.BaseURL(), u.Avatar)},
				{"Created", u.CreatedAt},
				{"Updated", u.UpdatedAt},
			}
		},

		fetch: func(ctx context.Context, d *Dependencies, keyword string, page, limit int) (api.Page[models.User], error) {
			return d.Users.Search(ctx, keyword, page, limit)
		},
		get: func(ctx context.Context, d *Dependencies, id int) (models.User, error) {
			return d.Users.GetByID(ctx, id)
		},
		remove: func(ctx context.Context, d *Dependencies, id int) error {
			return d.Users.Delete(ctx, id)
		},

		fields: userFields,
		seed: func(u models.User) map[string]string {
			return map[string]string{
				"username":   u.Username,
				"email":      u.Email,
				"first_name": u.FirstName,
				"last_name":  u.LastName,
				"role":       strconv.Itoa(int(u.Role)),
			}
		},
		create: func(ctx context.Context, d *Dependencies, f *form.Form) error {
			_, err := d.Users.Create(ctx, f.Multipart())
			return err
		},
		update: func(ctx context.Context, d *Dependencies, id int, f *form.Form) error {
			return d.Users.Update(ctx, id, f.Multipart())
		},
	}
}
