package list

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"storeadmin/internal/api"
	"storeadmin/internal/ui"
)

// Action is what the user asked for when the screen exited.
type Action int

const (
	// ActionQuit exits the screen with nothing else to do.
	ActionQuit Action = iota
	// ActionCreate opens the create form and returns to the list.
	ActionCreate
	// ActionEdit opens the edit form for Result.ID and returns to the list.
	ActionEdit
)

// Result is returned by Run when the screen exits.
type Result struct {
	Action Action
	ID     int
	// Err is set when the screen aborted; api.ErrUnauthorized means the
	// session is no longer accepted and the caller must send the user
	// back through login.
	Err error
}

// Column describes one table column.
type Column struct {
	Title string
	Width int
}

// Config wires one resource into the generic screen.
type Config[T any] struct {
	Title    string
	Columns  []Column
	Row      func(T) []string
	ID       func(T) int
	Name     func(T) string
	Fetch    func(ctx context.Context, keyword string, page, limit int) (api.Page[T], error)
	Delete   func(ctx context.Context, id int) error
	PageSize int
	Theme    *ui.Theme

	// InitialPage and InitialKeyword preload the first fetch, so a
	// screen can open mid-result-set.
	InitialPage    int
	InitialKeyword string
}

type mode int

const (
	modeBrowse mode = iota
	modeSearch
	modeConfirmDelete
	modeConfirmBulk
	modeError
)

// pageMsg carries one fetched page or the fetch error.
type pageMsg[T any] struct {
	page api.Page[T]
	err  error
}

// deleteMsg carries the outcome of a single-row delete.
type deleteMsg struct {
	err error
}

// Model is the bubbletea model behind one resource list screen.
type Model[T any] struct {
	cfg  Config[T]
	ctrl *Controller

	ctx     context.Context
	mode    mode
	loading bool

	items  []T
	table  table.Model
	search textinput.Model
	spin   spinner.Model

	confirmID   int
	confirmName string
	errText     string

	result Result
}

// NewModel builds the screen around a fresh Controller.
func NewModel[T any](ctx context.Context, cfg Config[T]) *Model[T] {
	if cfg.PageSize <= 0 {
		cfg.PageSize = 10
	}

	cols := make([]table.Column, 0, len(cfg.Columns)+1)
	cols = append(cols, table.Column{Title: " ", Width: 3})
	for _, c := range cfg.Columns {
		cols = append(cols, table.Column{Title: c.Title, Width: c.Width})
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithHeight(cfg.PageSize+1),
		table.WithFocused(true),
	)
	if !cfg.Theme.NoColor {
		s := table.DefaultStyles()
		s.Header = cfg.Theme.Header
		s.Selected = cfg.Theme.Selected
		t.SetStyles(s)
	}

	in := textinput.New()
	in.Placeholder = "search"
	in.CharLimit = 128

	ctrl := NewController()
	if cfg.InitialPage > 1 {
		ctrl.SetPage(cfg.InitialPage)
	}
	if cfg.InitialKeyword != "" {
		ctrl.SetSearchInput(cfg.InitialKeyword)
		ctrl.CommitSearch()
	}

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	if !cfg.Theme.NoColor {
		sp.Style = cfg.Theme.Selected
	}

	return &Model[T]{
		cfg:    cfg,
		ctrl:   ctrl,
		ctx:    ctx,
		table:  t,
		search: in,
		spin:   sp,
	}
}

func (m *Model[T]) Init() tea.Cmd {
	return m.fetchCmd()
}

// fetchCmd loads the current page with the committed keyword.
func (m *Model[T]) fetchCmd() tea.Cmd {
	m.loading = true
	keyword, page, limit := m.ctrl.Keyword(), m.ctrl.Page(), m.cfg.PageSize
	return tea.Batch(m.spin.Tick, func() tea.Msg {
		p, err := m.cfg.Fetch(m.ctx, keyword, page, limit)
		return pageMsg[T]{page: p, err: err}
	})
}

func (m *Model[T]) deleteCmd(id int) tea.Cmd {
	m.loading = true
	return tea.Batch(m.spin.Tick, func() tea.Msg {
		return deleteMsg{err: m.cfg.Delete(m.ctx, id)}
	})
}

func (m *Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pageMsg[T]:
		m.loading = false
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.items = msg.page.Records
		ids := make([]int, len(msg.page.Records))
		for i, it := range msg.page.Records {
			ids[i] = m.cfg.ID(it)
		}
		m.ctrl.ApplyPage(ids, msg.page.Total)
		m.refreshRows()
		return m, nil

	case deleteMsg:
		m.loading = false
		if msg.err != nil {
			return m.fail(msg.err)
		}
		return m, m.fetchCmd()

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// fail routes an operation error: an expired or rejected session ends
// the screen so the caller can restart login, anything else becomes a
// dismissable modal showing the backend's own message.
func (m *Model[T]) fail(err error) (tea.Model, tea.Cmd) {
	if errors.Is(err, api.ErrUnauthorized) {
		m.result = Result{Action: ActionQuit, Err: err}
		return m, tea.Quit
	}
	m.errText = errorText(err)
	m.mode = modeError
	return m, nil
}

func (m *Model[T]) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.result = Result{Action: ActionQuit}
		return m, tea.Quit
	}

	switch m.mode {
	case modeSearch:
		return m.handleSearchKey(msg)
	case modeConfirmDelete, modeConfirmBulk:
		return m.handleConfirmKey(msg)
	case modeError:
		m.mode = modeBrowse
		return m, nil
	}

	if m.loading {
		return m, nil
	}

	switch msg.String() {
	case "q", "esc":
		m.result = Result{Action: ActionQuit}
		return m, tea.Quit

	case "/":
		m.mode = modeSearch
		m.search.SetValue(m.ctrl.SearchInput())
		m.search.Focus()
		return m, textinput.Blink

	case "n", "right":
		if m.ctrl.Page() < m.ctrl.PageCount(m.cfg.PageSize) {
			m.ctrl.SetPage(m.ctrl.Page() + 1)
			return m, m.fetchCmd()
		}
		return m, nil

	case "p", "left":
		if m.ctrl.Page() > 1 {
			m.ctrl.SetPage(m.ctrl.Page() - 1)
			return m, m.fetchCmd()
		}
		return m, nil

	case "r":
		return m, m.fetchCmd()

	case " ":
		if id, ok := m.cursorID(); ok {
			m.ctrl.Toggle(id)
			m.refreshRows()
		}
		return m, nil

	case "a":
		m.ctrl.ToggleAll()
		m.refreshRows()
		return m, nil

	case "c":
		m.result = Result{Action: ActionCreate}
		return m, tea.Quit

	case "e", "enter":
		if id, ok := m.cursorID(); ok {
			m.result = Result{Action: ActionEdit, ID: id}
			return m, tea.Quit
		}
		return m, nil

	case "d":
		if id, ok := m.cursorID(); ok {
			m.confirmID = id
			m.confirmName = m.cfg.Name(m.items[m.table.Cursor()])
			m.mode = modeConfirmDelete
		}
		return m, nil

	case "D":
		if m.ctrl.SelectedCount() > 0 {
			m.mode = modeConfirmBulk
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *Model[T]) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.ctrl.SetSearchInput(m.search.Value())
		m.ctrl.CommitSearch()
		m.search.Blur()
		m.mode = modeBrowse
		return m, m.fetchCmd()
	case tea.KeyEsc:
		m.search.Blur()
		m.mode = modeBrowse
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.ctrl.SetSearchInput(m.search.Value())
	return m, cmd
}

func (m *Model[T]) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	bulk := m.mode == modeConfirmBulk
	m.mode = modeBrowse
	switch msg.String() {
	case "y", "Y", "enter":
		if bulk {
			// TODO: call Delete per selected id once the backend grows a
			// batch endpoint; for now confirming only reloads the page.
			return m, m.fetchCmd()
		}
		return m, m.deleteCmd(m.confirmID)
	}
	return m, nil
}

// cursorID resolves the highlighted row to its record identifier.
func (m *Model[T]) cursorID() (int, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.items) {
		return 0, false
	}
	return m.cfg.ID(m.items[i]), true
}

// selectedNames joins the display names of the selected rows in
// visible order, truncating past the first few so the confirmation
// stays on one line.
func (m *Model[T]) selectedNames() string {
	const maxNamed = 5
	names := make([]string, 0, m.ctrl.SelectedCount())
	for _, it := range m.items {
		if m.ctrl.IsSelected(m.cfg.ID(it)) {
			names = append(names, m.cfg.Name(it))
		}
	}
	if len(names) > maxNamed {
		return strings.Join(names[:maxNamed], ", ") + ", ..."
	}
	return strings.Join(names, ", ")
}

// refreshRows rebuilds the table rows, keeping the cursor in range.
func (m *Model[T]) refreshRows() {
	rows := make([]table.Row, 0, len(m.items))
	for _, it := range m.items {
		mark := "[ ]"
		if m.ctrl.IsSelected(m.cfg.ID(it)) {
			mark = "[x]"
		}
		rows = append(rows, append(table.Row{mark}, m.cfg.Row(it)...))
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) && len(rows) > 0 {
		m.table.SetCursor(len(rows) - 1)
	}
}

func (m *Model[T]) View() string {
	th := m.cfg.Theme
	var b strings.Builder

	b.WriteString(th.Title.Render(m.cfg.Title))
	b.WriteString("\n")

	switch m.mode {
	case modeSearch:
		b.WriteString("search: " + m.search.View() + "\n")
	default:
		if kw := m.ctrl.Keyword(); kw != "" {
			b.WriteString(th.Muted.Render("search: "+kw) + "\n")
		}
	}

	switch m.mode {
	case modeError:
		b.WriteString("\n" + th.Error.Render(m.errText) + "\n")
		b.WriteString(th.Help.Render("press any key to continue") + "\n")
		return b.String()
	case modeConfirmDelete:
		b.WriteString("\n" + fmt.Sprintf("Delete %q? (y/N)", m.confirmName) + "\n")
		return b.String()
	case modeConfirmBulk:
		b.WriteString("\n" + fmt.Sprintf("Delete %d selected record(s) [%s]? (y/N)",
			m.ctrl.SelectedCount(), m.selectedNames()) + "\n")
		return b.String()
	}

	b.WriteString(m.table.View())
	b.WriteString("\n")

	status := fmt.Sprintf("page %d/%d, %d record(s)",
		m.ctrl.Page(), m.ctrl.PageCount(m.cfg.PageSize), m.ctrl.Total())
	if n := m.ctrl.SelectedCount(); n > 0 {
		status += fmt.Sprintf(", %d selected", n)
	}
	if m.loading {
		status += "  " + m.spin.View() + "loading"
	}
	b.WriteString(th.Muted.Render(status) + "\n")
	b.WriteString(th.Help.Render("/ search  n/p page  space select  a all  c create  e edit  d delete  D delete selected  r reload  q quit") + "\n")

	return b.String()
}

// Run drives the screen to completion and reports what to do next.
func Run[T any](ctx context.Context, cfg Config[T]) (Result, error) {
	m := NewModel(ctx, cfg)
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return Result{}, fmt.Errorf("list: run %s screen: %w", cfg.Title, err)
	}
	fm, ok := final.(*Model[T])
	if !ok {
		return Result{}, fmt.Errorf("list: unexpected final model %T", final)
	}
	return fm.result, fm.result.Err
}

// errorText picks the message shown in the error modal, preferring the
// backend's own status text.
func errorText(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.Message()
	}
	return err.Error()
}
