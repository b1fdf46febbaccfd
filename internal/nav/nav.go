// Package nav verifies a site's top navigation: each menu entry is resolved,
// classified as a direct link or a hover dropdown, clicked into a fresh tab,
// waited into a stable state, and its landing URL matched against the
// authored href.
package nav

// MenuItem is one top-level entry of the navigation bar, identified by its
// rendered text. Classification is recomputed on every verification; the live
// DOM is the source of truth.
type MenuItem struct {
	Name       string
	IsDropdown bool
}

// LinkTarget is a clickable destination. For a dropdown sub-link SourceIndex
// is its position within the disclosed group; for a direct link it is -1.
type LinkTarget struct {
	Href        string
	SourceIndex int

	el Element
}

// Kind tags a Classification.
type Kind int

const (
	// KindDirect marks an entry that is itself an anchor.
	KindDirect Kind = iota
	// KindDropdown marks an entry that discloses a group of sub-links on hover.
	KindDropdown
)

// Classification is the shape of a menu entry: a single target for a direct
// link, or the ordered sub-targets of a disclosed dropdown.
type Classification struct {
	Kind    Kind
	Targets []LinkTarget
}

// Status is the verdict of one verification call.
type Status string

const (
	StatusPassed  Status = "passed"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
	StatusError   Status = "error"
)

// Outcome is the structured verdict for one menu item. Expected and Actual
// are populated whenever available so a failing case is diagnosable without
// re-running.
type Outcome struct {
	Item     string `json:"item"`
	Status   Status `json:"status"`
	Message  string `json:"message"`
	Expected string `json:"expected,omitempty"`
	Actual   string `json:"actual,omitempty"`
}

// ValidHref reports whether an href points somewhere worth verifying. Empty
// strings, bare hashes and the root path are placeholders, never compared.
func ValidHref(href string) bool {
	switch href {
	case "", "#", "/":
		return false
	}
	return true
}

// firstValid returns the first target in document order whose href survives
// the placeholder filter, keeping its original position.
func firstValid(targets []LinkTarget) (LinkTarget, bool) {
	for _, t := range targets {
		if ValidHref(t.Href) {
			return t, true
		}
	}
	return LinkTarget{}, false
}

// countValid returns how many targets carry a verifiable href.
func countValid(targets []LinkTarget) int {
	n := 0
	for _, t := range targets {
		if ValidHref(t.Href) {
			n++
		}
	}
	return n
}
