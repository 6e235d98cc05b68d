package form

import (
	"testing"
)

// productFields mirrors the product form schema closely enough to
// exercise every rule kind.
func productFields() []Field {
	decPat, decMsg := DecimalRule()
	return []Field{
		{Name: "sku", Label: "SKU", Required: true, RequiredMessage: "SKU must not be empty.", MaxLen: 10, LengthMessage: "SKU allows at most 10 characters.", DisabledOnEdit: true},
		{Name: "name", Label: "Name", Required: true, RequiredMessage: "Name must not be empty.", MinLen: 4, MaxLen: 100, LengthMessage: "Name requires 4 to 100 characters.", DisabledOnEdit: true},
		{Name: "category", Label: "Category", Kind: KindChoice, Required: true, RequiredMessage: "Category must not be empty.", MaxLen: 20, LengthMessage: "Category allows at most 20 characters.", Choices: []Choice{{Label: "Dior", Value: "Dior"}}},
		{Name: "unit_price", Label: "Unit price", Kind: KindDecimal, Default: "0", Pattern: decPat, PatternMessage: decMsg},
		{Name: "description", Label: "Description", Required: true, RequiredMessage: "Description must not be empty.", MinLen: 2, MaxLen: 1000, LengthMessage: "Description requires at least 2 characters."},
		{Name: "image", Label: "Image", Kind: KindFile},
	}
}

func TestCreateModeAllRequiredFieldsEmpty(t *testing.T) {
	t.Parallel()

	f := New(productFields(), false)
	errs := f.Validate()

	for _, name := range []string{"sku", "name", "category", "description"} {
		if errs[name] == "" {
			t.Errorf("expected validation error for required field %q", name)
		}
	}
	// unit_price defaults to 0, which is valid.
	if msg, ok := errs["unit_price"]; ok {
		t.Errorf("unexpected error for unit_price: %q", msg)
	}
}

func TestValidFormProducesNoErrors(t *testing.T) {
	t.Parallel()

	f := New(productFields(), false)
	f.Set("sku", "P001")
	f.Set("name", "Shirt")
	f.Set("category", "Dior")
	f.Set("unit_price", "19.99")
	f.Set("description", "Cotton shirt")

	if errs := f.Validate(); len(errs) != 0 {
		t.Errorf("Validate() = %v, want no errors", errs)
	}
}

func TestNumericSetRejectsNonNumbers(t *testing.T) {
	t.Parallel()

	f := New(productFields(), false)
	f.Set("unit_price", "19.99")

	if f.Set("unit_price", "abc") {
		t.Error("Set() accepted non-numeric input")
	}
	if got := f.Value("unit_price"); got != "19.99" {
		t.Errorf("value after rejected input = %q, want unchanged %q", got, "19.99")
	}
}

func TestNumericSetEmptyMeansZero(t *testing.T) {
	t.Parallel()

	f := New(productFields(), false)
	f.Set("unit_price", "12.50")
	if !f.Set("unit_price", "") {
		t.Fatal("Set() rejected empty string")
	}
	if got := f.Value("unit_price"); got != "0" {
		t.Errorf("value after empty input = %q, want %q", got, "0")
	}
}

func TestDecimalRuleBounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		valid bool
	}{
		{"12.34", true},
		{"0", true},
		{"19.9", true},
		{"12.345", false},
		{"abc", false},
		{"-1", false},
	}

	for _, tt := range tests {
		f := New(productFields(), false)
		f.Set("sku", "P001")
		f.Set("name", "Shirt")
		f.Set("category", "Dior")
		f.Set("description", "Cotton shirt")
		// Bypass Set's float filter to exercise the pattern itself.
		f.Seed(map[string]string{"unit_price": tt.value})

		errs := f.Validate()
		if tt.valid && errs["unit_price"] != "" {
			t.Errorf("unit_price %q: unexpected error %q", tt.value, errs["unit_price"])
		}
		if !tt.valid && errs["unit_price"] == "" {
			t.Errorf("unit_price %q: expected a validation error", tt.value)
		}
	}
}

func TestMultipartPayloadFiveFieldsNoImage(t *testing.T) {
	t.Parallel()

	f := New(productFields(), false)
	f.Set("sku", "P001")
	f.Set("name", "Shirt")
	f.Set("category", "Dior")
	f.Set("unit_price", "19.99")
	f.Set("description", "Cotton shirt")

	p := f.Multipart()
	fields := p.Fields()

	want := map[string]string{
		"sku":         "P001",
		"name":        "Shirt",
		"category":    "Dior",
		"unit_price":  "19.99",
		"description": "Cotton shirt",
	}
	if len(fields) != len(want) {
		t.Errorf("payload has %d fields, want %d: %v", len(fields), len(want), fields)
	}
	for k, v := range want {
		if fields[k] != v {
			t.Errorf("field %s = %q, want %q", k, fields[k], v)
		}
	}
	if p.HasFile("image") {
		t.Error("payload has an image part with no file selected")
	}
}

func userFields() []Field {
	return []Field{
		{Name: "username", Label: "Username", Required: true, MinLen: 4, MaxLen: 10, LengthMessage: "Username requires 4 to 10 characters.", DisabledOnEdit: true},
		{Name: "email", Label: "E-mail", Required: true, MinLen: 4, MaxLen: 100, LengthMessage: "E-mail requires 4 to 100 characters.", DisabledOnEdit: true},
		{Name: "first_name", Label: "First name", MaxLen: 100, LengthMessage: "First name allows at most 100 characters."},
		{Name: "password", Label: "Password", Kind: KindPassword, MinLen: 8, MaxLen: 20, LengthMessage: "Password requires 8 to 20 characters.", OmitWhenEmpty: true},
		{Name: "confirmation_password", Label: "Confirm password", Kind: KindPassword, ConfirmOf: "password", ConfirmMessage: "Password confirmation does not match."},
		{Name: "role", Label: "Role", Kind: KindChoice, Default: "2", Choices: []Choice{{Label: "Customer", Value: "2"}, {Label: "Administrator", Value: "1"}}},
		{Name: "avatar", Label: "Avatar", Kind: KindFile},
	}
}

func TestPasswordRequiredOnCreateOnly(t *testing.T) {
	t.Parallel()

	create := New(userFields(), false)
	create.Set("username", "admin")
	create.Set("email", "admin@example.com")
	if errs := create.Validate(); errs["password"] == "" {
		t.Error("create mode: expected password error when empty")
	}

	edit := New(userFields(), true)
	edit.Seed(map[string]string{"username": "admin", "email": "admin@example.com"})
	if errs := edit.Validate(); errs["password"] != "" {
		t.Errorf("edit mode: unexpected password error %q", errs["password"])
	}
}

func TestPasswordLengthCheckedWhenSet(t *testing.T) {
	t.Parallel()

	f := New(userFields(), true)
	f.Seed(map[string]string{"username": "admin", "email": "admin@example.com"})
	f.Set("password", "short")
	f.Set("confirmation_password", "short")

	if errs := f.Validate(); errs["password"] == "" {
		t.Error("expected length error for 5-character password")
	}
}

func TestConfirmationMustMatchAndIsNeverSubmitted(t *testing.T) {
	t.Parallel()

	f := New(userFields(), false)
	f.Set("username", "admin")
	f.Set("email", "admin@example.com")
	f.Set("password", "secret123")
	f.Set("confirmation_password", "different")

	if errs := f.Validate(); errs["confirmation_password"] == "" {
		t.Error("expected confirmation mismatch error")
	}

	f.Set("confirmation_password", "secret123")
	if errs := f.Validate(); len(errs) != 0 {
		t.Errorf("Validate() = %v, want no errors", errs)
	}

	fields := f.Multipart().Fields()
	if _, ok := fields["confirmation_password"]; ok {
		t.Error("confirmation field must never be submitted")
	}
	if fields["password"] != "secret123" {
		t.Errorf("password field = %q, want submitted", fields["password"])
	}
}

func TestEmptyPasswordOmittedFromPayload(t *testing.T) {
	t.Parallel()

	f := New(userFields(), true)
	f.Seed(map[string]string{
		"username":   "admin",
		"email":      "admin@example.com",
		"first_name": "Ad",
		"role":       "1",
	})

	fields := f.Multipart().Fields()
	if _, ok := fields["password"]; ok {
		t.Error("payload must omit password when left blank on edit")
	}
	if fields["username"] != "admin" {
		t.Errorf("username = %q, want seeded value in payload", fields["username"])
	}
}

func TestJSONPayloadTypes(t *testing.T) {
	t.Parallel()

	numPat, numMsg := NumberRule()
	decPat, decMsg := DecimalRule()
	fields := []Field{
		{Name: "serial_number", Label: "Serial number", Required: true, DisabledOnEdit: true},
		{Name: "total_price", Label: "Total price", Kind: KindDecimal, Pattern: decPat, PatternMessage: decMsg},
		{Name: "status", Label: "Status", Kind: KindNumber, Default: "0", Pattern: numPat, PatternMessage: numMsg},
		{Name: "note", Label: "Note", MaxLen: 100, LengthMessage: "Note exceeds the allowed length."},
	}

	f := New(fields, true)
	f.Seed(map[string]string{"serial_number": "SN-1", "total_price": "59.97", "status": "4", "note": "rush"})

	payload := f.JSON()
	if payload["serial_number"] != "SN-1" {
		t.Errorf("serial_number = %v", payload["serial_number"])
	}
	if got, ok := payload["status"].(float64); !ok || got != 4 {
		t.Errorf("status = %v (%T), want float64 4", payload["status"], payload["status"])
	}
	if _, ok := payload["total_price"]; !ok {
		t.Error("total_price missing from payload")
	}
}

func TestNoteLengthBound(t *testing.T) {
	t.Parallel()

	fields := []Field{{Name: "note", Label: "Note", MaxLen: 100, LengthMessage: "Note exceeds the allowed length."}}
	f := New(fields, false)

	long := make([]byte, 101)
	for i := range long {
		long[i] = 'x'
	}
	f.Set("note", string(long))
	if errs := f.Validate(); errs["note"] == "" {
		t.Error("expected length error for 101-character note")
	}
}
