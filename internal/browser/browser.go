// Package browser implements the nav capability ports on top of go-rod.
package browser

import (
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/Shehzz/multibank-automation-framework/internal/nav"
)

// Options configures the browser session.
type Options struct {
	Headless   bool
	Width      int
	Height     int
	SlowMo     time.Duration
	Timeout    time.Duration // default element wait budget
	ProfileDir string        // Chrome/Chromium profile directory for authenticated sessions
}

// Browser wraps the rod browser and the original page for reuse across
// verification calls. Spawned tabs are separate rod pages handed out by
// ExpectTab; only the original page lives here.
type Browser struct {
	browser *rod.Browser
	page    *rod.Page
	opts    Options
}

// Open launches a browser, navigates to url, and waits for the document to
// parse.
func Open(url string, opts Options) (*Browser, error) {
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.Width == 0 {
		opts.Width = 1920
	}
	if opts.Height == 0 {
		opts.Height = 1080
	}

	path, _ := launcher.LookPath()
	l := launcher.New().Bin(path).Headless(opts.Headless)
	if opts.ProfileDir != "" {
		l = l.UserDataDir(opts.ProfileDir)
	}

	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	b := rod.New().ControlURL(u)
	if opts.SlowMo > 0 {
		b = b.SlowMotion(opts.SlowMo)
	}
	if err := b.Connect(); err != nil {
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	page, err := b.Page(proto.TargetCreateTarget{URL: url})
	if err != nil {
		_ = b.Close()
		return nil, fmt.Errorf("opening %s: %w", url, err)
	}

	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             opts.Width,
		Height:            opts.Height,
		DeviceScaleFactor: 1,
	}); err != nil {
		_ = b.Close()
		return nil, fmt.Errorf("setting viewport: %w", err)
	}

	br := &Browser{browser: b, page: page, opts: opts}
	if err := waitReady(page, opts.Timeout); err != nil {
		br.Close()
		return nil, fmt.Errorf("loading %s: %w", url, err)
	}
	return br, nil
}

// Page returns the original page as a nav capability.
func (b *Browser) Page() nav.Page {
	return &pageAdapter{p: b.page, timeout: b.opts.Timeout}
}

// Screenshot captures the original page as PNG bytes.
func (b *Browser) Screenshot() ([]byte, error) {
	return b.page.Screenshot(false, nil)
}

// Close cleans up browser resources.
func (b *Browser) Close() {
	if b.page != nil {
		_ = b.page.Close()
	}
	if b.browser != nil {
		_ = b.browser.Close()
	}
}
