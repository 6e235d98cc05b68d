package ui

import (
	"strings"
	"testing"
)

func TestRenderTableFooter(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	err := RenderTable(&b, []string{"ID", "Name"}, [][]string{
		{"1", "alpha"},
		{"2", "beta"},
	}, 2, 5, 42)
	if err != nil {
		t.Fatalf("RenderTable: %v", err)
	}

	out := b.String()
	for _, want := range []string{"alpha", "beta", "page 2/5, 42 record(s)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestNewThemeNoColorIsPassthrough(t *testing.T) {
	t.Parallel()

	theme := NewTheme(true)
	if got := theme.Error.Render("boom"); got != "boom" {
		t.Fatalf("no-color style altered text: %q", got)
	}
}
