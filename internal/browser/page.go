package browser

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/input"
	"github.com/go-rod/rod/lib/proto"

	"github.com/Shehzz/multibank-automation-framework/internal/nav"
)

const pollInterval = 200 * time.Millisecond

// pageAdapter implements nav.Page against a rod page.
type pageAdapter struct {
	p       *rod.Page
	timeout time.Duration
}

var _ nav.Page = (*pageAdapter)(nil)

func isXPath(sel string) bool {
	return strings.HasPrefix(sel, "//") || strings.HasPrefix(sel, "(")
}

func (a *pageAdapter) element(sel string, timeout time.Duration) (*rod.Element, error) {
	p := a.p.Timeout(timeout)
	if isXPath(sel) {
		return p.ElementX(sel)
	}
	return p.Element(sel)
}

func (a *pageAdapter) Locate(sel string) (nav.Element, error) {
	el, err := a.element(sel, a.timeout)
	if err != nil {
		return nil, fmt.Errorf("locating %s: %w", sel, err)
	}
	return &element{el: el, page: a.p}, nil
}

func (a *pageAdapter) LocateAll(sel string) ([]nav.Element, error) {
	var els rod.Elements
	var err error
	if isXPath(sel) {
		els, err = a.p.ElementsX(sel)
	} else {
		els, err = a.p.Elements(sel)
	}
	if err != nil {
		return nil, fmt.Errorf("locating all %s: %w", sel, err)
	}
	out := make([]nav.Element, len(els))
	for i, el := range els {
		out[i] = &element{el: el, page: a.p}
	}
	return out, nil
}

func (a *pageAdapter) WaitVisible(sel string, timeout time.Duration) error {
	el, err := a.element(sel, timeout)
	if err != nil {
		return fmt.Errorf("waiting for %s: %w", sel, err)
	}
	if err := el.WaitVisible(); err != nil {
		return fmt.Errorf("waiting for %s to be visible: %w", sel, err)
	}
	return nil
}

// ExpectTab subscribes to the page's next spawned target before running the
// click, so the captured tab is the one this click produced and not an
// unrelated popup.
func (a *pageAdapter) ExpectTab(click func() error) (nav.Tab, error) {
	wait := a.p.Timeout(a.timeout).WaitOpen()
	if err := click(); err != nil {
		return nil, err
	}
	spawned, err := wait()
	if err != nil {
		return nil, fmt.Errorf("capturing spawned tab: %w", err)
	}
	return &tab{p: spawned.CancelTimeout()}, nil
}

func (a *pageAdapter) WaitReady(timeout time.Duration) error {
	return waitReady(a.p, timeout)
}

// element implements nav.Element. The owning page is kept for the modifier
// keyboard during new-tab clicks.
type element struct {
	el   *rod.Element
	page *rod.Page
}

var _ nav.Element = (*element)(nil)

func (e *element) Text() (string, error) {
	return e.el.Text()
}

func (e *element) TagName() (string, error) {
	obj, err := e.el.Eval(`() => this.tagName`)
	if err != nil {
		return "", mapStale(err)
	}
	return obj.Value.Str(), nil
}

func (e *element) Attribute(name string) (string, error) {
	v, err := e.el.Attribute(name)
	if err != nil {
		return "", mapStale(err)
	}
	if v == nil {
		return "", nil
	}
	return *v, nil
}

func (e *element) Hover() error {
	return mapStale(e.el.Hover())
}

func (e *element) Click(newTab bool) error {
	if !newTab {
		return mapStale(e.el.Click(proto.InputMouseButtonLeft, 1))
	}

	mod := input.ControlLeft
	if runtime.GOOS == "darwin" {
		mod = input.MetaLeft
	}
	if err := e.page.Keyboard.Press(mod); err != nil {
		return fmt.Errorf("pressing modifier: %w", err)
	}
	defer func() { _ = e.page.Keyboard.Release(mod) }()
	return mapStale(e.el.Click(proto.InputMouseButtonLeft, 1))
}

// mapStale tags CDP failures caused by the node going away between
// resolution and interaction.
func mapStale(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	if strings.Contains(msg, "detached") ||
		strings.Contains(msg, "Cannot find context") ||
		strings.Contains(msg, "Could not find node") {
		return fmt.Errorf("%w: %v", nav.ErrStaleElement, err)
	}
	return err
}

// tab implements nav.Tab over a spawned rod page.
type tab struct {
	p *rod.Page
}

var _ nav.Tab = (*tab)(nil)

func (t *tab) URL() (string, error) {
	info, err := t.p.Info()
	if err != nil {
		return "", fmt.Errorf("reading tab info: %w", err)
	}
	return info.URL, nil
}

func (t *tab) WaitURL(pred func(string) bool, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		u, err := t.URL()
		if err != nil {
			return err
		}
		if pred(u) {
			return nil
		}
		time.Sleep(pollInterval)
	}
	return fmt.Errorf("url did not change within %s", timeout)
}

func (t *tab) WaitReady(timeout time.Duration) error {
	return waitReady(t.p, timeout)
}

func (t *tab) Close() error {
	return t.p.Close()
}

// waitReady polls document.readyState until the DOM has been parsed. A plain
// load-event wait can hang on pages with slow subresources; readyState
// "interactive" is enough for the URL to be trustworthy.
func waitReady(p *rod.Page, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		obj, err := p.Eval(`() => document.readyState`)
		if err == nil {
			switch obj.Value.Str() {
			case "interactive", "complete":
				return nil
			}
		}
		time.Sleep(pollInterval)
	}
	return fmt.Errorf("document not ready within %s", timeout)
}
