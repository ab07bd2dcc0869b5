// Package probe issues single-shot test requests against third-party
// endpoints and honeypot traps.
//
// # Overview
//
// Two operations share one client and one Outcome shape:
//
//   - Probe: POSTs the audio-contract payload ({"Language", "Audio Format",
//     "Audio Base64 Format"}, names byte-exact) with an x-api-key header and
//     measures wall-clock latency.
//   - ProbeHoneypot: POSTs a fixed decoy body with one caller-named header
//     and captures status, all response headers, and the body verbatim.
//
// # Failure Policy
//
// Neither operation ever returns a Go error. These tools exist to poke at
// endpoints that are missing, misconfigured, or intentionally hostile, so
// every failure mode resolves to a terminal StatusError outcome carrying a
// descriptive body: missing inputs short-circuit before any network call,
// transport failures surface the underlying message, and non-JSON reply
// bodies are reported rather than rejected.
//
// There is no retry, no backoff, and no client-imposed timeout; one click
// equals one request. Overlapping attempts are permitted and race
// naturally, which is why each Outcome carries a fresh AttemptID.
package probe
