package preview

import "strings"

// DefaultAccentColor is the embed side-bar colour used when no colour is configured.
const DefaultAccentColor = "#ff00af"

// ResolveAccentColor returns the configured colour or DefaultAccentColor when empty.
func ResolveAccentColor(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return DefaultAccentColor
	}
	return trimmed
}
