package utils

// TruncateWithEllipsis shortens s to at most max runes, appending "..." when
// anything was cut off.
func TruncateWithEllipsis(s string, max int) string {
	if max <= 3 {
		max = 3
	}

	runes := []rune(s)
	if len(runes) <= max {
		return s
	}

	return string(runes[:max-3]) + "..."
}
