// Package form is the generic controller behind every resource form:
// draft state as controlled string fields, synchronous validation, and
// payload assembly. The interactive runner in this package puts a huh
// front end on it; headless commands drive it straight from flags.
package form

import (
	"regexp"
	"strconv"

	"github.com/shopspring/decimal"

	"storeadmin/internal/api"
)

// Kind selects a field's input and serialization behavior.
type Kind int

const (
	KindText Kind = iota
	KindPassword
	KindNumber
	KindDecimal
	KindFile
	KindChoice
)

// decimalPattern accepts a non-negative number with at most two
// fractional digits, the shape every currency-like field requires.
var decimalPattern = regexp.MustCompile(`^\d+(\.\d{0,2})?$`)

// numberPattern accepts a plain non-negative number; status fields are
// validated only this loosely.
var numberPattern = regexp.MustCompile(`^\d+(\.\d+)?$`)

// Choice is one selectable option of a KindChoice field.
type Choice struct {
	Label string
	Value string
}

// Field describes one form field and its validation rules. Rules are
// checked in a fixed order per field (required, length bounds, pattern,
// confirmation) and the first violation wins.
type Field struct {
	Name  string
	Label string
	Kind  Kind

	Required        bool
	RequiredMessage string

	// MinLen/MaxLen bound the value length when MaxLen > 0. Optional
	// fields with only a MaxLen pass while empty.
	MinLen        int
	MaxLen        int
	LengthMessage string

	Pattern        *regexp.Regexp
	PatternMessage string

	Choices []Choice
	Default string

	// DisabledOnEdit renders the field read-only in edit mode. The
	// fetched value still travels in the payload.
	DisabledOnEdit bool

	// OmitWhenEmpty keeps the field out of the payload while empty
	// (the password field on user edit).
	OmitWhenEmpty bool

	// ConfirmOf names the field this one must match. Confirmation
	// fields are never submitted.
	ConfirmOf      string
	ConfirmMessage string
}

// Numeric reports whether the field holds a number-shaped value.
func (f Field) Numeric() bool {
	return f.Kind == KindNumber || f.Kind == KindDecimal
}

// Form holds the draft entity for one create or edit flow. Create mode
// starts from defaults; edit mode is seeded from the fetched entity.
type Form struct {
	fields []Field
	edit   bool
	draft  map[string]string
	files  map[string]string
}

// New creates a form over the given schema. edit selects edit mode.
func New(fields []Field, edit bool) *Form {
	f := &Form{
		fields: fields,
		edit:   edit,
		draft:  make(map[string]string, len(fields)),
		files:  make(map[string]string),
	}
	for _, fld := range fields {
		if fld.Default != "" {
			f.draft[fld.Name] = fld.Default
		}
	}
	return f
}

// IsEdit reports whether the form edits an existing entity.
func (f *Form) IsEdit() bool { return f.edit }

// Fields returns the schema in declaration order.
func (f *Form) Fields() []Field { return f.fields }

// Value returns the current draft value of a field.
func (f *Form) Value(name string) string { return f.draft[name] }

// FilePath returns the selected file for a file field, empty when none.
func (f *Form) FilePath(name string) string { return f.files[name] }

// Seed loads fetched entity values into the draft without any
// validation or numeric filtering.
func (f *Form) Seed(values map[string]string) {
	for k, v := range values {
		f.draft[k] = v
	}
}

// Set updates a field's draft value and reports whether the input was
// accepted. Numeric fields treat an empty string as "unset", storing 0,
// and silently reject input that does not parse as a float. File fields
// record the chosen path.
func (f *Form) Set(name, value string) bool {
	fld, ok := f.field(name)
	if !ok {
		return false
	}
	switch {
	case fld.Kind == KindFile:
		f.files[name] = value
	case fld.Numeric():
		if value == "" {
			f.draft[name] = "0"
			return true
		}
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return false
		}
		f.draft[name] = value
	default:
		f.draft[name] = value
	}
	return true
}

func (f *Form) field(name string) (Field, bool) {
	for _, fld := range f.fields {
		if fld.Name == name {
			return fld, true
		}
	}
	return Field{}, false
}

// Validate re-checks the whole draft and returns a mapping from field
// name to the first violated rule's message. An empty map means the
// form may be submitted.
func (f *Form) Validate() map[string]string {
	errs := make(map[string]string)

	for _, fld := range f.fields {
		if fld.Kind == KindFile {
			continue
		}
		v := f.draft[fld.Name]

		if fld.ConfirmOf != "" {
			if v != f.draft[fld.ConfirmOf] {
				errs[fld.Name] = fld.ConfirmMessage
			}
			continue
		}

		if fld.Kind == KindPassword {
			if msg := f.validatePassword(fld, v); msg != "" {
				errs[fld.Name] = msg
			}
			continue
		}

		if fld.Required && v == "" {
			errs[fld.Name] = messageOr(fld.RequiredMessage, fld.Label+" is required.")
			continue
		}
		if fld.MaxLen > 0 && v != "" && (len(v) < fld.MinLen || len(v) > fld.MaxLen) {
			errs[fld.Name] = fld.LengthMessage
			continue
		}
		if fld.Pattern != nil && !fld.Pattern.MatchString(v) {
			errs[fld.Name] = fld.PatternMessage
			continue
		}
	}

	return errs
}

// validatePassword applies the password rules: required on create,
// length-checked only when set on edit.
func (f *Form) validatePassword(fld Field, v string) string {
	if !f.edit && v == "" {
		return messageOr(fld.RequiredMessage, fld.LengthMessage)
	}
	if v != "" && (len(v) < fld.MinLen || len(v) > fld.MaxLen) {
		return fld.LengthMessage
	}
	return ""
}

func messageOr(msg, fallback string) string {
	if msg != "" {
		return msg
	}
	return fallback
}

// Multipart assembles the outgoing multipart payload field by field in
// schema order. Confirmation fields never travel; OmitWhenEmpty fields
// travel only when set; file fields travel only when a file was chosen.
func (f *Form) Multipart() *api.FormPayload {
	p := api.NewFormPayload()
	for _, fld := range f.fields {
		if fld.ConfirmOf != "" {
			continue
		}
		if fld.Kind == KindFile {
			if path := f.files[fld.Name]; path != "" {
				p.Attach(fld.Name, path)
			}
			continue
		}
		v := f.draft[fld.Name]
		if fld.OmitWhenEmpty && v == "" {
			continue
		}
		p.Set(fld.Name, v)
	}
	return p
}

// JSON assembles the outgoing JSON payload. Decimal fields carry exact
// decimal values, number fields plain numbers; everything else strings.
func (f *Form) JSON() map[string]any {
	payload := make(map[string]any, len(f.fields))
	for _, fld := range f.fields {
		if fld.ConfirmOf != "" || fld.Kind == KindFile {
			continue
		}
		v := f.draft[fld.Name]
		if fld.OmitWhenEmpty && v == "" {
			continue
		}
		switch fld.Kind {
		case KindDecimal:
			d, err := decimal.NewFromString(v)
			if err != nil {
				d = decimal.Zero
			}
			payload[fld.Name] = d
		case KindNumber:
			n, err := strconv.ParseFloat(v, 64)
			if err != nil {
				n = 0
			}
			payload[fld.Name] = n
		default:
			payload[fld.Name] = v
		}
	}
	return payload
}

// DecimalRule returns the pattern and message pair used by every
// currency-like field.
func DecimalRule() (*regexp.Regexp, string) {
	return decimalPattern, "Must be a valid number with at most 2 decimal places."
}

// NumberRule returns the pattern used by status-like fields.
func NumberRule() (*regexp.Regexp, string) {
	return numberPattern, "Must be a valid number."
}
