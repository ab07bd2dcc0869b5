package state

import (
	"sync"

	"github.com/earshot-tools/earshot/internal/forensic"
	"github.com/earshot-tools/earshot/internal/probe"
)

// Holder is a mutex-guarded container for one panel's latest view state.
// Completions simply overwrite whatever is stored: when two attempts
// overlap, the last one to finish wins and its AttemptID tells them apart.
type Holder[T any] struct {
	mu    sync.RWMutex
	value T
}

// Set replaces the stored value.
func (h *Holder[T]) Set(v T) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.value = v
}

// Get returns the stored value.
func (h *Holder[T]) Get() T {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.value
}

// AnalysisView is the forensics panel's renderable state.
type AnalysisView struct {
	Status    probe.Status
	AttemptID string
	ClipPath  string
	ClipMIME  string
	Language  string
	Verdict   *forensic.Verdict
	Err       string
	LatencyMS *int64
}

// ProbeView is the endpoint tester panel's renderable state.
type ProbeView struct {
	Request probe.Request
	Outcome probe.Outcome
}

// HoneypotView is the honeypot tester panel's renderable state.
type HoneypotView struct {
	Endpoint    string
	HeaderName  string
	HeaderValue string
	Outcome     probe.Outcome
}

// Panels bundles the three independent per-panel holders. Nothing is
// shared between them; each is mutated only by its own panel's
// completions.
type Panels struct {
	Analysis Holder[AnalysisView]
	Probe    Holder[ProbeView]
	Honeypot Holder[HoneypotView]
}
