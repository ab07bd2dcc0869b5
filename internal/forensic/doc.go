// Package forensic provides the HTTP client for the multimodal inference
// engine that classifies audio authenticity.
//
// # Overview
//
// The client builds a generateContent-style request carrying the raw audio
// bytes inline, a fixed forensic instruction (spectral signature, prosody
// and breathing, known-engine artifacts, target language), and a structured
// output schema that pins the report to exactly five fields with the
// classification constrained to HUMAN or AI_GENERATED.
//
// # Error Handling
//
// Failures are typed so callers can present them distinctly:
//
//   - *TransportError: network failure before a reply arrived
//   - *RemoteError: the engine answered with a non-2xx status
//   - *InvalidReportError: the reply was not JSON or the report was
//     missing fields; partial reports are never returned
//
// # Request Semantics
//
// Every Analyze call is one fresh attempt. There is no retry, no backoff,
// and no caching: the engine is authoritative and non-deterministic from
// this client's point of view, so analyzing the same clip twice may yield
// different verdicts. The client enforces no timeout of its own; context
// cancellation and transport defaults apply.
package forensic
