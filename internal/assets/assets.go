// Package assets resolves static resource paths served by the backend.
package assets

import "strings"

// StaticURL builds the absolute URL for a backend-hosted static asset.
// An empty relative path resolves to an empty string so callers can
// render "no image" without a special case.
func StaticURL(base, path string) string {
	if path == "" {
		return ""
	}
	return strings.TrimRight(base, "/") + "/assets/" + strings.TrimLeft(path, "/")
}
