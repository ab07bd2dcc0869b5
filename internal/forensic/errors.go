package forensic

import "fmt"

// TransportError reports a network-level failure reaching the engine.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("reach forensic engine: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// RemoteError reports a non-2xx reply from the engine.
type RemoteError struct {
	StatusCode int
	Body       string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("forensic engine returned status %d", e.StatusCode)
}

// InvalidReportError reports a reply that could not be decoded into a
// complete verdict. Partial reports are rejected wholesale.
type InvalidReportError struct {
	Reason string
}

func (e *InvalidReportError) Error() string {
	return "forensic engine failed to provide a valid JSON report: " + e.Reason
}
