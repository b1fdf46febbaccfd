package nav

import "fmt"

// dispatch clicks the target. With openNewTab the spawned-tab subscription is
// registered before the click so the captured tab is the one this click
// produced; the original page is left undisturbed and not waited on. Without
// openNewTab the current page navigates in place and no tab is returned.
func (v *Verifier) dispatch(target LinkTarget, openNewTab bool) (string, Tab, error) {
	if !openNewTab {
		if err := target.el.Click(false); err != nil {
			return target.Href, nil, fmt.Errorf("clicking %q: %w", target.Href, err)
		}
		if err := v.page.WaitReady(v.opts.NavigationTimeout); err != nil {
			return target.Href, nil, fmt.Errorf("waiting for in-place navigation to %q: %w", target.Href, err)
		}
		return target.Href, nil, nil
	}

	tab, err := v.page.ExpectTab(func() error {
		return target.el.Click(true)
	})
	if err != nil {
		return target.Href, nil, fmt.Errorf("opening %q in new tab: %w", target.Href, err)
	}
	return target.Href, tab, nil
}
