package nav

import "fmt"

// placeholderURL is what a freshly spawned tab holds before the real
// navigation lands.
const placeholderURL = "about:blank"

// settle drives a spawned tab through its readiness protocol and returns the
// URL once it is stable enough to compare. In headless runs the tab can sit
// on the placeholder page for a while, so the URL is first waited off the
// sentinel; headed browsers navigate immediately and skip that stage. Then
// the document must finish parsing within the navigation budget.
func (v *Verifier) settle(tab Tab) (string, error) {
	if v.opts.Headless {
		offPlaceholder := func(u string) bool { return u != placeholderURL }
		if err := tab.WaitURL(offPlaceholder, v.opts.PlaceholderTimeout); err != nil {
			return "", fmt.Errorf("%w: url still %s after %s: %v",
				ErrSettlementTimeout, placeholderURL, v.opts.PlaceholderTimeout, err)
		}
	}

	if err := tab.WaitReady(v.opts.NavigationTimeout); err != nil {
		return "", fmt.Errorf("%w: document not parsed within %s: %v",
			ErrSettlementTimeout, v.opts.NavigationTimeout, err)
	}

	u, err := tab.URL()
	if err != nil {
		return "", fmt.Errorf("%w: reading settled url: %v", ErrSettlementTimeout, err)
	}
	return u, nil
}
