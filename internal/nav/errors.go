package nav

import "errors"

// Failure taxonomy. Each sentinel is wrapped with call-specific detail and
// converted into an Outcome only at the orchestrator boundary; nothing below
// it aborts a verification run.
var (
	// ErrNotFound means the locator never resolved within its wait budget.
	ErrNotFound = errors.New("nav item not found")
	// ErrDisclosureTimeout means a dropdown's disclosure container never
	// became visible. A missing dropdown is a real UI regression signal, so
	// this is reported, not retried.
	ErrDisclosureTimeout = errors.New("dropdown did not appear")
	// ErrStaleElement means the DOM changed between resolution and click.
	ErrStaleElement = errors.New("element detached from DOM")
	// ErrSettlementTimeout means a spawned tab never reached a stable,
	// comparable state within its budget.
	ErrSettlementTimeout = errors.New("new tab never settled")
)
