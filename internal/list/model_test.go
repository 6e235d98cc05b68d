package list

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"storeadmin/internal/api"
	"storeadmin/internal/ui"
)

type row struct {
	id   int
	name string
}

func testConfig(fetch func(ctx context.Context, keyword string, page, limit int) (api.Page[row], error)) Config[row] {
	return Config[row]{
		Title:   "Rows",
		Columns: []Column{{Title: "ID", Width: 6}, {Title: "Name", Width: 20}},
		Row:     func(r row) []string { return []string{"", r.name} },
		ID:      func(r row) int { return r.id },
		Name:    func(r row) string { return r.name },
		Fetch:   fetch,
		Delete:  func(ctx context.Context, id int) error { return nil },
		Theme:   ui.NewTheme(true),
	}
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// exec runs a command synchronously, unwrapping batches so the fetch
// closures inside them actually execute.
func exec(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	if batch, ok := cmd().(tea.BatchMsg); ok {
		for _, c := range batch {
			exec(c)
		}
	}
}

func TestModelAppliesPageAndClearsSelection(t *testing.T) {
	t.Parallel()

	m := NewModel(context.Background(), testConfig(nil))
	m.Update(pageMsg[row]{page: api.Page[row]{Records: []row{{1, "a"}, {2, "b"}}, Total: 12}})

	m.Update(key(" "))
	if m.ctrl.SelectedCount() != 1 {
		t.Fatalf("SelectedCount = %d, want 1", m.ctrl.SelectedCount())
	}

	m.Update(pageMsg[row]{page: api.Page[row]{Records: []row{{3, "c"}}, Total: 12}})
	if m.ctrl.SelectedCount() != 0 {
		t.Fatalf("selection survived a reload: %d selected", m.ctrl.SelectedCount())
	}
	if got := m.ctrl.Total(); got != 12 {
		t.Fatalf("Total = %d, want 12", got)
	}
}

func TestModelQuitsOnUnauthorized(t *testing.T) {
	t.Parallel()

	m := NewModel(context.Background(), testConfig(nil))
	_, cmd := m.Update(pageMsg[row]{err: &api.Error{Status: 401, StatusText: "Unauthorized"}})

	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if !errors.Is(m.result.Err, api.ErrUnauthorized) {
		t.Fatalf("result.Err = %v, want ErrUnauthorized", m.result.Err)
	}
}

func TestModelShowsBackendErrorText(t *testing.T) {
	t.Parallel()

	m := NewModel(context.Background(), testConfig(nil))
	m.Update(pageMsg[row]{err: &api.Error{Status: 409, StatusText: "Conflict", Body: "duplicate sku"}})

	if m.mode != modeError {
		t.Fatalf("mode = %v, want modeError", m.mode)
	}
	if m.errText != "Conflict" {
		t.Fatalf("errText = %q, want the server status text", m.errText)
	}

	m.Update(key("x"))
	if m.mode != modeBrowse {
		t.Fatal("error modal should dismiss on any key")
	}
}

func TestModelSearchCommitKeepsPage(t *testing.T) {
	t.Parallel()

	var gotKeyword string
	var gotPage int
	fetch := func(ctx context.Context, keyword string, page, limit int) (api.Page[row], error) {
		gotKeyword, gotPage = keyword, page
		return api.Page[row]{}, nil
	}

	m := NewModel(context.Background(), testConfig(fetch))
	m.ctrl.SetPage(3)

	m.Update(key("/"))
	if m.mode != modeSearch {
		t.Fatalf("mode = %v, want modeSearch", m.mode)
	}
	m.search.SetValue("chair")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a fetch command")
	}
	exec(cmd)

	if gotKeyword != "chair" {
		t.Fatalf("fetched keyword = %q, want %q", gotKeyword, "chair")
	}
	if gotPage != 3 {
		t.Fatalf("fetched page = %d, want the page the user was on", gotPage)
	}
}

func TestModelBulkConfirmOnlyReloads(t *testing.T) {
	t.Parallel()

	fetches := 0
	deletes := 0
	cfg := testConfig(func(ctx context.Context, keyword string, page, limit int) (api.Page[row], error) {
		fetches++
		return api.Page[row]{Records: []row{{1, "a"}}, Total: 1}, nil
	})
	cfg.Delete = func(ctx context.Context, id int) error {
		deletes++
		return nil
	}

	m := NewModel(context.Background(), cfg)
	m.Update(pageMsg[row]{page: api.Page[row]{Records: []row{{1, "a"}}, Total: 1}})
	m.Update(key(" "))
	m.Update(key("D"))
	if m.mode != modeConfirmBulk {
		t.Fatalf("mode = %v, want modeConfirmBulk", m.mode)
	}

	_, cmd := m.Update(key("y"))
	if cmd == nil {
		t.Fatal("expected a reload command")
	}
	exec(cmd)

	if deletes != 0 {
		t.Fatalf("bulk confirm issued %d deletes, want 0", deletes)
	}
	if fetches != 1 {
		t.Fatalf("bulk confirm issued %d fetches, want 1", fetches)
	}
}

func TestModelBulkConfirmNamesTargets(t *testing.T) {
	t.Parallel()

	m := NewModel(context.Background(), testConfig(nil))
	m.Update(pageMsg[row]{page: api.Page[row]{Records: []row{{1, "alice"}, {2, "bob"}}, Total: 2}})
	m.Update(key("a"))
	m.Update(key("D"))

	view := m.View()
	for _, name := range []string{"alice", "bob"} {
		if !strings.Contains(view, name) {
			t.Errorf("bulk confirmation does not name %q:\n%s", name, view)
		}
	}
}

func TestModelBulkConfirmTruncatesLongSelections(t *testing.T) {
	t.Parallel()

	rows := make([]row, 8)
	for i := range rows {
		rows[i] = row{id: i + 1, name: fmt.Sprintf("user%d", i+1)}
	}
	m := NewModel(context.Background(), testConfig(nil))
	m.Update(pageMsg[row]{page: api.Page[row]{Records: rows, Total: 8}})
	m.Update(key("a"))
	m.Update(key("D"))

	view := m.View()
	if !strings.Contains(view, "user5") || strings.Contains(view, "user6") {
		t.Fatalf("expected the prompt to stop after five names:\n%s", view)
	}
	if !strings.Contains(view, "...") {
		t.Fatalf("expected a truncation marker:\n%s", view)
	}
}

func TestModelEditReturnsHighlightedID(t *testing.T) {
	t.Parallel()

	m := NewModel(context.Background(), testConfig(nil))
	m.Update(pageMsg[row]{page: api.Page[row]{Records: []row{{7, "a"}, {9, "b"}}, Total: 2}})

	_, cmd := m.Update(key("e"))
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if m.result.Action != ActionEdit || m.result.ID != 7 {
		t.Fatalf("result = %+v, want edit of id 7", m.result)
	}
}
