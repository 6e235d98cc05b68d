package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"storeadmin/internal/api"
	"storeadmin/internal/form"
	"storeadmin/internal/ui"
	"storeadmin/pkg/logger"
)

func TestUserFieldsCreateValidation(t *testing.T) {
	t.Parallel()

	f := form.New(userFields(), false)
	errs := f.Validate()

	for _, name := range []string{"username", "email", "password"} {
		if errs[name] == "" {
			t.Errorf("expected a validation message for %q", name)
		}
	}
	// Role defaults to customer and passes as-is.
	if errs["role"] != "" {
		t.Errorf("role should default to a valid choice, got %q", errs["role"])
	}

	f.Set("username", "ab!")
	f.Set("email", "admin@example.com")
	f.Set("password", "secret123")
	f.Set("confirmation_password", "secret123")
	errs = f.Validate()
	if errs["username"] != "Username must be 4 to 10 alphanumeric characters." {
		t.Fatalf("username message = %q", errs["username"])
	}

	f.Set("username", "admin1")
	if errs = f.Validate(); len(errs) != 0 {
		t.Fatalf("expected a clean form, got %v", errs)
	}
}

func TestUserFieldsEditSkipsIdentifiers(t *testing.T) {
	t.Parallel()

	var disabled []string
	for _, fld := range userFields() {
		if fld.DisabledOnEdit {
			disabled = append(disabled, fld.Name)
		}
	}
	want := []string{"username", "email"}
	if fmt.Sprint(disabled) != fmt.Sprint(want) {
		t.Fatalf("disabled-on-edit fields = %v, want %v", disabled, want)
	}
}

func TestOrderFieldsJSONTypes(t *testing.T) {
	t.Parallel()

	f := form.New(orderFields(), false)
	f.Seed(map[string]string{
		"serial_number": "SN-001",
		"user_id":       "7",
		"total_price":   "120.50",
		"status":        "2",
		"note":          "rush",
	})
	if errs := f.Validate(); len(errs) != 0 {
		t.Fatalf("unexpected validation errors: %v", errs)
	}

	payload := f.JSON()
	if _, ok := payload["total_price"].(decimal.Decimal); !ok {
		t.Fatalf("total_price is %T, want decimal.Decimal", payload["total_price"])
	}
	if got, ok := payload["status"].(float64); !ok || got != 2 {
		t.Fatalf("status = %v (%T), want 2 (float64)", payload["status"], payload["status"])
	}
	if payload["serial_number"] != "SN-001" {
		t.Fatalf("serial_number = %v", payload["serial_number"])
	}
}

func TestOrderFieldsNumericDefaults(t *testing.T) {
	t.Parallel()

	f := form.New(orderFields(), false)
	f.Set("serial_number", "SN-001")

	if errs := f.Validate(); len(errs) != 0 {
		t.Fatalf("numeric fields should default to zero, got %v", errs)
	}
	if got := f.Value("total_price"); got != "0" {
		t.Fatalf("total_price default = %q, want %q", got, "0")
	}
}

func TestContactFieldsEmailBounds(t *testing.T) {
	t.Parallel()

	f := form.New(contactFields(), false)
	f.Seed(map[string]string{"full_name": "Jane Doe", "email": "a@b"})
	errs := f.Validate()
	if errs["email"] != "E-mail must be 4 to 50 characters." {
		t.Fatalf("email message = %q", errs["email"])
	}
}

func TestValidationFailureIsStable(t *testing.T) {
	t.Parallel()

	err := validationFailure(map[string]string{
		"username": "too short",
		"email":    "not valid",
	})
	want := "invalid input:\n  email: not valid\n  username: too short"
	if err.Error() != want {
		t.Fatalf("message = %q, want %q", err.Error(), want)
	}
}

func TestDashboardMarkdownCounts(t *testing.T) {
	t.Parallel()

	totals := map[string]int{
		"/users/search":    3,
		"/products/search": 1250,
		"/orders/search":   42,
		"/contacts/search": 0,
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		total, ok := totals[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		if got := r.URL.Query().Get("limit"); got != "1" {
			t.Errorf("limit = %q, want 1", got)
		}
		json.NewEncoder(w).Encode(map[string]any{"records": []any{}, "total": total})
	}))
	defer srv.Close()

	d := testDependencies(srv)
	md, err := dashboardMarkdown(context.Background(), d)
	if err != nil {
		t.Fatalf("dashboardMarkdown: %v", err)
	}

	if !strings.Contains(md, "| Products | 1,250 |") {
		t.Fatalf("product count missing or unformatted:\n%s", md)
	}
	if !strings.Contains(md, "| Contacts | 0 |") {
		t.Fatalf("contact count missing:\n%s", md)
	}
}

// testDependencies wires a Dependencies instance against a test server.
func testDependencies(srv *httptest.Server) *Dependencies {
	client := api.NewClient(srv.URL, srv.Client(), func() string { return "test-token" })
	return &Dependencies{
		API:      client,
		Auth:     api.NewAuthService(client),
		Users:    api.NewUserService(client),
		Products: api.NewProductService(client),
		Orders:   api.NewOrderService(client),
		Contacts: api.NewContactService(client),
		Logger:   logger.Discard(),
		Theme:    ui.NewTheme(true),
		Headless: ui.NewHeadlessManager(),
	}
}
