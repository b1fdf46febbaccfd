package nav

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// Options bounds every wait the verifier performs. No operation blocks
// without a deadline and no operation retries; a timeout converts directly
// into a typed failure.
type Options struct {
	// DisclosureTimeout bounds the wait for a hover dropdown to appear.
	DisclosureTimeout time.Duration
	// PlaceholderTimeout bounds the wait for a spawned tab to leave
	// about:blank. Only applied in headless runs.
	PlaceholderTimeout time.Duration
	// NavigationTimeout bounds document-ready waits.
	NavigationTimeout time.Duration
	// Headless enables the placeholder stage of settlement.
	Headless bool
}

func (o *Options) withDefaults() {
	if o.DisclosureTimeout == 0 {
		o.DisclosureTimeout = 5 * time.Second
	}
	if o.PlaceholderTimeout == 0 {
		o.PlaceholderTimeout = 10 * time.Second
	}
	if o.NavigationTimeout == 0 {
		o.NavigationTimeout = 30 * time.Second
	}
}

// Verifier composes resolution, classification, dispatch, settlement, and
// matching into one call per menu item. It is the sole boundary converting
// failures into outcomes; one item's failure never aborts the run. Calls are
// independent: each owns its spawned tab, so an outer runner may issue them
// in any order.
type Verifier struct {
	page    Page
	locs    LocatorSet
	matcher *Matcher
	opts    Options
	log     logrus.FieldLogger
}

// New builds a verifier. The locator set and exception table are supplied
// explicitly here, never read from ambient state.
func New(page Page, locs LocatorSet, exceptions []RedirectException, opts Options, log logrus.FieldLogger) *Verifier {
	opts.withDefaults()
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Verifier{
		page:    page,
		locs:    locs,
		matcher: NewMatcher(exceptions),
		opts:    opts,
		log:     log,
	}
}

// Verify resolves one menu item, clicks its first valid destination into a
// fresh tab, and matches the settled URL against the authored href. Items
// whose only hrefs are placeholders are skipped before any tab is spawned.
// The spawned tab is closed on every exit path.
func (v *Verifier) Verify(item MenuItem) Outcome {
	log := v.log.WithField("item", item.Name)

	handle, err := v.resolve(item.Name)
	if err != nil {
		return v.failure(item.Name, err, "", "")
	}

	cls, err := v.classify(item.Name, handle)
	if err != nil {
		return v.failure(item.Name, err, "", "")
	}

	var target LinkTarget
	var passMessage string
	switch cls.Kind {
	case KindDirect:
		target = cls.Targets[0]
		if !ValidHref(target.Href) {
			log.WithField("href", target.Href).Debug("skipping placeholder link")
			return Outcome{Item: item.Name, Status: StatusSkipped, Message: "root/hash link", Expected: target.Href}
		}
		passMessage = "direct link verified"
	case KindDropdown:
		first, ok := firstValid(cls.Targets)
		if !ok {
			log.Debug("dropdown has no valid links")
			return Outcome{Item: item.Name, Status: StatusSkipped, Message: "no valid links"}
		}
		target = first
		passMessage = fmt.Sprintf("dropdown verified (%d valid links)", countValid(cls.Targets))
		log.WithFields(logrus.Fields{"href": target.Href, "index": target.SourceIndex}).
			Debug("selected first valid dropdown link")
	}

	expected, tab, err := v.dispatch(target, true)
	if err != nil {
		return v.failure(item.Name, err, expected, "")
	}
	defer func() {
		if cerr := tab.Close(); cerr != nil {
			log.WithError(cerr).Warn("closing spawned tab")
		}
	}()

	actual, err := v.settle(tab)
	if err != nil {
		return v.failure(item.Name, err, expected, actual)
	}

	if !v.matcher.Matches(expected, actual) {
		log.WithFields(logrus.Fields{"expected": expected, "actual": actual}).Info("url mismatch")
		return Outcome{Item: item.Name, Status: StatusFailed, Message: "url mismatch", Expected: expected, Actual: actual}
	}

	log.WithField("actual", actual).Debug("verified")
	return Outcome{Item: item.Name, Status: StatusPassed, Message: passMessage, Expected: expected, Actual: actual}
}

// VerifyAll runs Verify over each item sequentially, one outcome per item.
func (v *Verifier) VerifyAll(items []MenuItem) []Outcome {
	outcomes := make([]Outcome, 0, len(items))
	for _, item := range items {
		outcomes = append(outcomes, v.Verify(item))
	}
	return outcomes
}

// failure maps a chain error onto an outcome. A click through a DOM that
// changed underneath is a Failed verdict; everything else, timeouts included,
// is an Error with the failure's detail.
func (v *Verifier) failure(name string, err error, expected, actual string) Outcome {
	status := StatusError
	if errors.Is(err, ErrStaleElement) {
		status = StatusFailed
	}
	v.log.WithField("item", name).WithError(err).Info("verification did not pass")
	return Outcome{Item: name, Status: status, Message: err.Error(), Expected: expected, Actual: actual}
}
