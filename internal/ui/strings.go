package ui

import "fmt"

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

// truncateMiddle truncates a string in the middle, preserving start and end.
func truncateMiddle(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(s) <= max {
		return s
	}
	if max <= 5 {
		return s[:max]
	}
	// Keep more of the end (file name) than the start
	endLen := (max - 3) * 2 / 3
	startLen := max - 3 - endLen
	return s[:startLen] + "..." + s[len(s)-endLen:]
}

// formatLatency renders a latency pointer for the outcome line.
func formatLatency(ms *int64) string {
	if ms == nil {
		return "--"
	}
	if *ms >= 1000 {
		return fmt.Sprintf("%.2fs", float64(*ms)/1000)
	}
	return fmt.Sprintf("%dms", *ms)
}

// shortID abbreviates an attempt UUID for display.
func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

// formatStatusCode renders an HTTP status pointer for the outcome line.
func formatStatusCode(code *int) string {
	if code == nil {
		return "--"
	}
	return fmt.Sprintf("%d", *code)
}
