// Package state provides thread-safe view-state holders for the earshot
// panels.
//
// Each panel owns exactly one Holder. A submission writes a loading view,
// the completion (running on its own goroutine via a Bubble Tea command)
// writes the terminal view, and the UI reads whatever is current when it
// renders. Holders are safe for concurrent use from their zero value.
//
// Overlapping attempts within one panel are allowed and not ordered: the
// holder stores whichever completion arrives last. That is the documented
// behavior, not an accident — the UI always shows the most recent
// completion, and the per-attempt ID makes stale results recognizable.
package state
