package nav

import (
	"errors"
	"fmt"
	"time"
)

// In-memory implementations of the capability ports. Selectors are plain
// strings produced by the test locator set below.
func testLocators() LocatorSet {
	return LocatorSet{
		NavMenu:       "nav",
		NavItems:      "nav-items",
		ItemByText:    "item:%s",
		DropdownLinks: "drop:%s",
	}
}

type fakeElement struct {
	text     string
	tag      string
	href     string
	hoverErr error
	clickErr error

	hovered       bool
	clicked       bool
	clickedNewTab bool
}

func (e *fakeElement) Text() (string, error)    { return e.text, nil }
func (e *fakeElement) TagName() (string, error) { return e.tag, nil }
func (e *fakeElement) Attribute(name string) (string, error) {
	if name != "href" {
		return "", fmt.Errorf("unexpected attribute %q", name)
	}
	return e.href, nil
}
func (e *fakeElement) Hover() error { e.hovered = true; return e.hoverErr }
func (e *fakeElement) Click(newTab bool) error {
	e.clicked = true
	e.clickedNewTab = newTab
	return e.clickErr
}

type fakeTab struct {
	url        string
	waitURLErr error
	readyErr   error
	closed     bool
}

func (t *fakeTab) URL() (string, error) { return t.url, nil }
func (t *fakeTab) WaitURL(pred func(string) bool, timeout time.Duration) error {
	if t.waitURLErr != nil {
		return t.waitURLErr
	}
	if !pred(t.url) {
		return errors.New("predicate never satisfied")
	}
	return nil
}
func (t *fakeTab) WaitReady(timeout time.Duration) error { return t.readyErr }
func (t *fakeTab) Close() error                          { t.closed = true; return nil }

type fakePage struct {
	elements map[string]*fakeElement
	lists    map[string][]*fakeElement
	visible  map[string]error

	tab          *fakeTab
	expectTabErr error
	spawnCount   int
}

func newFakePage() *fakePage {
	return &fakePage{
		elements: map[string]*fakeElement{},
		lists:    map[string][]*fakeElement{},
		visible:  map[string]error{},
	}
}

func (p *fakePage) Locate(sel string) (Element, error) {
	el, ok := p.elements[sel]
	if !ok {
		return nil, fmt.Errorf("no element for %q", sel)
	}
	return el, nil
}

func (p *fakePage) LocateAll(sel string) ([]Element, error) {
	els, ok := p.lists[sel]
	if !ok {
		return nil, fmt.Errorf("no elements for %q", sel)
	}
	out := make([]Element, len(els))
	for i, el := range els {
		out[i] = el
	}
	return out, nil
}

func (p *fakePage) WaitVisible(sel string, timeout time.Duration) error {
	err, ok := p.visible[sel]
	if !ok {
		return fmt.Errorf("nothing visible for %q", sel)
	}
	return err
}

func (p *fakePage) ExpectTab(click func() error) (Tab, error) {
	if err := click(); err != nil {
		return nil, err
	}
	if p.expectTabErr != nil {
		return nil, p.expectTabErr
	}
	p.spawnCount++
	return p.tab, nil
}

func (p *fakePage) WaitReady(timeout time.Duration) error { return nil }
