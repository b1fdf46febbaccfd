package nav

import "time"

// Page is the browsing capability the verifier consumes. The rod adapter in
// internal/browser implements it against a live Chromium; tests use fakes.
type Page interface {
	// Locate resolves a selector to the first matching element, waiting up
	// to the adapter's default budget for it to appear.
	Locate(selector string) (Element, error)
	// LocateAll returns every element matching the selector, in document
	// order, without waiting.
	LocateAll(selector string) ([]Element, error)
	// WaitVisible blocks until an element matching the selector is visible
	// or the timeout expires.
	WaitVisible(selector string, timeout time.Duration) error
	// ExpectTab subscribes to the next tab spawned by this page, runs the
	// click, and returns the captured tab. The subscription is registered
	// before the click so the spawned tab is deterministically the one this
	// click produced.
	ExpectTab(click func() error) (Tab, error)
	// WaitReady blocks until the page's document has been parsed.
	WaitReady(timeout time.Duration) error
}

// Element is a handle to a located DOM node.
type Element interface {
	Text() (string, error)
	TagName() (string, error)
	Attribute(name string) (string, error)
	Hover() error
	// Click clicks the element. With newTab set, the platform's open-in-new-tab
	// modifier is held for the duration of the click.
	Click(newTab bool) error
}

// Tab is an isolated browsing context spawned by a modifier click. Its
// lifetime is scoped to one verification call; Close must be called on every
// exit path.
type Tab interface {
	URL() (string, error)
	// WaitURL blocks until the tab's URL satisfies pred or the timeout expires.
	WaitURL(pred func(url string) bool, timeout time.Duration) error
	WaitReady(timeout time.Duration) error
	Close() error
}
