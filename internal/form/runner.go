package form

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
)

// ErrCancelled is returned when the operator aborts the form.
var ErrCancelled = errors.New("form: cancelled")

// Run drives the form interactively with huh, one group per field:
// prompt every editable field, then validate the whole draft; on violations the loop re-runs with the
// messages attached to the offending fields. Returns ErrCancelled when
// the operator aborts.
func Run(f *Form, title string) error {
	lastErrs := map[string]string{}

	for {
		groups := make([]*huh.Group, 0, len(f.fields)+1)
		values := make(map[string]*string, len(f.fields))

		for i := range f.fields {
			fld := f.fields[i]
			if f.edit && fld.DisabledOnEdit {
				continue
			}
			g, v := buildFieldGroup(f, fld, lastErrs[fld.Name])
			groups = append(groups, g)
			values[fld.Name] = v
		}
		if len(groups) == 0 {
			return nil
		}

		hf := huh.NewForm(groups...).WithAccessible(false)
		if err := hf.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return ErrCancelled
			}
			return fmt.Errorf("form: %w", err)
		}

		for name, v := range values {
			f.Set(name, *v)
		}

		lastErrs = f.Validate()
		if len(lastErrs) == 0 {
			return nil
		}
	}
}

// buildFieldGroup creates the huh group for one field. A pending
// validation message from the previous submit attempt is shown as the
// field description.
func buildFieldGroup(f *Form, fld Field, pendingErr string) (*huh.Group, *string) {
	value := new(string)
	switch {
	case fld.Kind == KindFile:
		*value = f.files[fld.Name]
	default:
		*value = f.draft[fld.Name]
	}

	var field huh.Field
	switch fld.Kind {
	case KindChoice:
		opts := make([]huh.Option[string], 0, len(fld.Choices))
		for _, c := range fld.Choices {
			opts = append(opts, huh.NewOption(c.Label, c.Value))
		}
		field = huh.NewSelect[string]().
			Title(fieldTitle(fld, pendingErr)).
			Options(opts...).
			Value(value)
	case KindFile:
		field = huh.NewFilePicker().
			Title(fieldTitle(fld, pendingErr)).
			Value(value)
	case KindPassword:
		field = huh.NewInput().
			Title(fieldTitle(fld, pendingErr)).
			EchoMode(huh.EchoModePassword).
			Value(value)
	case KindNumber, KindDecimal:
		field = huh.NewInput().
			Title(fieldTitle(fld, pendingErr)).
			Validate(validateNumericInput).
			Value(value)
	default:
		in := huh.NewInput().
			Title(fieldTitle(fld, pendingErr)).
			Value(value)
		// Choices on a text field act as suggestions, free entry stays
		// allowed.
		if len(fld.Choices) > 0 {
			sugg := make([]string, 0, len(fld.Choices))
			for _, c := range fld.Choices {
				sugg = append(sugg, c.Value)
			}
			in = in.Suggestions(sugg)
		}
		field = in
	}

	return huh.NewGroup(field), value
}

// validateNumericInput mirrors the controlled-input behavior: empty is
// allowed (unset), anything else must parse as a float.
func validateNumericInput(s string) error {
	if s == "" {
		return nil
	}
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return errors.New("must be a number")
	}
	return nil
}

func fieldTitle(fld Field, pendingErr string) string {
	title := fld.Label
	if fld.Required {
		title += " *"
	}
	if pendingErr != "" {
		title += " (" + pendingErr + ")"
	}
	return title
}
