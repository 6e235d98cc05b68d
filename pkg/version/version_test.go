package version

import (
	"strings"
	"testing"
)

func TestGetVersion(t *testing.T) {
	t.Parallel()

	if got := GetVersion(); got != Version {
		t.Fatalf("GetVersion() = %q, want %q", got, Version)
	}
}

func TestGetFullVersionIncludesBuildInfo(t *testing.T) {
	t.Parallel()

	full := GetFullVersion()
	for _, want := range []string{Version, Commit, Date} {
		if !strings.Contains(full, want) {
			t.Errorf("GetFullVersion() = %q, missing %q", full, want)
		}
	}
}
