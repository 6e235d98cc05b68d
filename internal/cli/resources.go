package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"storeadmin/internal/api"
	"storeadmin/internal/form"
	"storeadmin/internal/list"
	"storeadmin/internal/ui"
)

// resource describes one managed entity well enough for the generic
// list/get/create/edit/delete commands to operate on it. The four
// instances live in users.go, products.go, orders.go, and contacts.go.
type resource[T any] struct {
	use      string
	short    string
	singular string
	plural   string

	columns []list.Column
	row     func(v T) []string
	id      func(T) int
	name    func(T) string
	detail  func(d *Dependencies, v T) [][2]string

	fetch  func(ctx context.Context, d *Dependencies, keyword string, page, limit int) (api.Page[T], error)
	get    func(ctx context.Context, d *Dependencies, id int) (T, error)
	remove func(ctx context.Context, d *Dependencies, id int) error

	fields func() []form.Field
	seed   func(T) map[string]string
	create func(ctx context.Context, d *Dependencies, f *form.Form) error
	update func(ctx context.Context, d *Dependencies, id int, f *form.Form) error

	// beforeEdit runs ahead of the interactive edit form (the orders
	// screen manages order details there).
	beforeEdit func(ctx context.Context, d *Dependencies, id int) error

	extra []*cobra.Command
}

// newResourceCommand assembles the cobra command tree for one resource.
func newResourceCommand[T any](r resource[T]) *cobra.Command {
	cmd := &cobra.Command{
		Use:   r.use,
		Short: r.short,
	}
	cmd.AddCommand(newListCommand(r))
	cmd.AddCommand(newGetCommand(r))
	cmd.AddCommand(newFormCommand(r, false))
	cmd.AddCommand(newFormCommand(r, true))
	cmd.AddCommand(newDeleteCommand(r))
	cmd.AddCommand(r.extra...)
	return cmd
}

func newListCommand[T any](r resource[T]) *cobra.Command {
	var (
		page   int
		limit  int
		search string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Browse " + r.plural,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := GetDeps()
			if limit <= 0 {
				limit = d.Config.UI.PageSize
			}
			if d.Headless.IsHeadless() {
				return plainList(cmd, r, search, page, limit)
			}
			return browse(cmd, r, page, limit, search)
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&limit, "limit", 0, "records per page")
	cmd.Flags().StringVar(&search, "search", "", "filter keyword")
	return cmd
}

// plainList fetches one page and prints it as a plain table.
func plainList[T any](cmd *cobra.Command, r resource[T], keyword string, page, limit int) error {
	d := GetDeps()
	p, err := r.fetch(cmd.Context(), d, keyword, page, limit)
	if err != nil {
		return commandFailure(err)
	}

	headers := make([]string, 0, len(r.columns))
	for _, c := range r.columns {
		headers = append(headers, c.Title)
	}
	rows := make([][]string, 0, len(p.Records))
	for _, v := range p.Records {
		rows = append(rows, r.row(v))
	}
	pages := (p.Total + limit - 1) / limit
	if pages < 1 {
		pages = 1
	}
	return ui.RenderTable(cmd.OutOrStdout(), headers, rows, page, pages, p.Total)
}

// browse runs the interactive screen and loops it against the create
// and edit forms until the operator quits.
func browse[T any](cmd *cobra.Command, r resource[T], page, limit int, keyword string) error {
	d := GetDeps()
	ctx := cmd.Context()

	// The account header is best effort: a failure here is a warning,
	// not a sign-in roundtrip.
	title := r.plural
	if ident, err := d.Auth.Identity(ctx); err != nil {
		d.Logger.Warn().Err(err).Msg("identity fetch failed")
		ui.Warn(cmd.ErrOrStderr(), d.Theme, "could not load account: "+errorText(err))
	} else if ident.Username != "" {
		title = r.plural + " / " + ident.Username
	}

	for {
		res, err := list.Run(ctx, list.Config[T]{
			Title:   title,
			Columns: r.columns,
			Row:     r.row,
			ID:      r.id,
			Name:    r.name,
			Fetch: func(ctx context.Context, keyword string, page, limit int) (api.Page[T], error) {
				return r.fetch(ctx, d, keyword, page, limit)
			},
			Delete: func(ctx context.Context, id int) error {
				return r.remove(ctx, d, id)
			},
			PageSize:       limit,
			Theme:          d.Theme,
			InitialPage:    page,
			InitialKeyword: keyword,
		})
		if err != nil {
			return commandFailure(err)
		}

		switch res.Action {
		case list.ActionCreate:
			if err := runInteractiveForm(cmd, r, 0); err != nil {
				return err
			}
		case list.ActionEdit:
			if err := runInteractiveForm(cmd, r, res.ID); err != nil {
				return err
			}
		default:
			return nil
		}
		// Reopening the screen starts from page 1, like navigating back
		// to the list route did.
		page, keyword = 1, ""
	}
}

func newGetCommand[T any](r resource[T]) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one " + r.singular,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			d := GetDeps()
			v, err := r.get(cmd.Context(), d, id)
			if err != nil {
				return commandFailure(err)
			}
			for _, kv := range r.detail(d, v) {
				fmt.Fprintf(cmd.OutOrStdout(), "%-15s %s\n", kv[0]+":", kv[1])
			}
			return nil
		},
	}
}

// newFormCommand builds the create or edit command. Every schema field
// becomes a flag; with a terminal and no flags set, the interactive
// form runs instead.
func newFormCommand[T any](r resource[T], edit bool) *cobra.Command {
	use, short := "create", "Create a "+r.singular
	if edit {
		use, short = "edit <id>", "Edit one "+r.singular
	}
	nargs := cobra.NoArgs
	if edit {
		nargs = cobra.ExactArgs(1)
	}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  nargs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id := 0
			if edit {
				var err error
				if id, err = parseID(args[0]); err != nil {
					return err
				}
			}
			d := GetDeps()
			if !d.Headless.IsHeadless() && !anyFieldFlagSet(cmd, r.fields()) {
				return runInteractiveForm(cmd, r, id)
			}
			return runHeadlessForm(cmd, r, id)
		},
	}

	for _, fld := range r.fields() {
		if fld.ConfirmOf != "" || (edit && fld.DisabledOnEdit) {
			continue
		}
		cmd.Flags().String(fld.Name, "", strings.ToLower(fld.Label))
	}
	return cmd
}

// runInteractiveForm drives the huh form for a create (id == 0) or
// edit. Submit failures and cancellations return to the caller without
// an error so the list screen can continue.
func runInteractiveForm[T any](cmd *cobra.Command, r resource[T], id int) error {
	d := GetDeps()
	ctx := cmd.Context()
	edit := id != 0

	f := form.New(r.fields(), edit)
	title := "New " + r.singular
	if edit {
		v, err := r.get(ctx, d, id)
		if err != nil {
			return screenFailure(cmd, err)
		}
		f.Seed(r.seed(v))
		title = "Edit " + r.singular

		if r.beforeEdit != nil {
			if err := r.beforeEdit(ctx, d, id); err != nil {
				return screenFailure(cmd, err)
			}
		}
	}

	if err := form.Run(f, title); err != nil {
		if errors.Is(err, form.ErrCancelled) {
			return nil
		}
		return err
	}

	if err := submitForm(ctx, r, f, id); err != nil {
		return screenFailure(cmd, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved %s.\n", r.singular)
	return nil
}

// runHeadlessForm applies field flags to the same draft-and-validate
// path the interactive form uses.
func runHeadlessForm[T any](cmd *cobra.Command, r resource[T], id int) error {
	d := GetDeps()
	ctx := cmd.Context()
	edit := id != 0

	f := form.New(r.fields(), edit)
	if edit {
		v, err := r.get(ctx, d, id)
		if err != nil {
			return commandFailure(err)
		}
		f.Seed(r.seed(v))
	}

	for _, fld := range r.fields() {
		if fld.ConfirmOf != "" || (edit && fld.DisabledOnEdit) {
			continue
		}
		if !cmd.Flags().Changed(fld.Name) {
			continue
		}
		v, _ := cmd.Flags().GetString(fld.Name)
		if !f.Set(fld.Name, v) {
			return fmt.Errorf("--%s: %q is not a number", fld.Name, v)
		}
	}
	// Confirmation fields mirror their source so the match rule passes.
	for _, fld := range r.fields() {
		if fld.ConfirmOf != "" {
			f.Set(fld.Name, f.Value(fld.ConfirmOf))
		}
	}

	if errs := f.Validate(); len(errs) > 0 {
		return validationFailure(errs)
	}
	if err := submitForm(ctx, r, f, id); err != nil {
		return commandFailure(err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved %s.\n", r.singular)
	return nil
}

func submitForm[T any](ctx context.Context, r resource[T], f *form.Form, id int) error {
	d := GetDeps()
	if id != 0 {
		return r.update(ctx, d, id, f)
	}
	return r.create(ctx, d, f)
}

func newDeleteCommand[T any](r resource[T]) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one " + r.singular,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			d := GetDeps()
			ctx := cmd.Context()

			v, err := r.get(ctx, d, id)
			if err != nil {
				return commandFailure(err)
			}

			if !yes {
				if d.Headless.IsHeadless() {
					return errors.New("refusing to delete without --yes")
				}
				ok, err := confirm(fmt.Sprintf("Delete %s %q?", r.singular, r.name(v)))
				if err != nil || !ok {
					return err
				}
			}

			if err := r.remove(ctx, d, id); err != nil {
				return commandFailure(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s %q.\n", r.singular, r.name(v))
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "skip the confirmation prompt")
	return cmd
}

// confirm asks a yes/no question, defaulting to no.
func confirm(title string) (bool, error) {
	var ok bool
	err := huh.NewConfirm().Title(title).Value(&ok).Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return false, nil
	}
	return ok, err
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

// anyFieldFlagSet reports whether the operator provided at least one
// schema field on the command line.
func anyFieldFlagSet(cmd *cobra.Command, fields []form.Field) bool {
	for _, fld := range fields {
		if cmd.Flags().Changed(fld.Name) {
			return true
		}
	}
	return false
}

// commandFailure maps an API error to the command's exit error. A 401
// becomes the sign-in instruction, everything else keeps the backend's
// message.
func commandFailure(err error) error {
	if errors.Is(err, api.ErrUnauthorized) {
		return sessionRejected(err)
	}
	return errors.New(errorText(err))
}

// screenFailure is commandFailure for flows that return to the list
// screen: backend errors are shown and swallowed so the loop survives.
func screenFailure(cmd *cobra.Command, err error) error {
	if errors.Is(err, api.ErrUnauthorized) {
		return sessionRejected(err)
	}
	ui.Alert(cmd.ErrOrStderr(), GetDeps().Theme, errorText(err))
	return nil
}

// validationFailure formats field errors for headless output, sorted by
// field name for stable messages.
func validationFailure(errs map[string]string) error {
	names := make([]string, 0, len(errs))
	for name := range errs {
		names = append(names, name)
	}
	sort.Strings(names)
	lines := make([]string, 0, len(names))
	for _, name := range names {
		lines = append(lines, fmt.Sprintf("%s: %s", name, errs[name]))
	}
	return errors.New("invalid input:\n  " + strings.Join(lines, "\n  "))
}

// errorText picks the operator-facing message, preferring the backend's
// own text.
func errorText(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.Message()
	}
	return err.Error()
}
