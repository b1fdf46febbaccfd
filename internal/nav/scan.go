package nav

import (
	"fmt"
	"strings"
)

// MenuItems scans the navigation bar and returns its top-level entries in
// document order, whitespace trimmed and empties dropped. Entries that are
// not anchors are marked as dropdowns.
func (v *Verifier) MenuItems() ([]MenuItem, error) {
	els, err := v.page.LocateAll(v.locs.NavItems)
	if err != nil {
		return nil, fmt.Errorf("scanning nav items (%s): %w", v.locs.NavItems, err)
	}

	items := make([]MenuItem, 0, len(els))
	for _, el := range els {
		text, err := el.Text()
		if err != nil {
			return nil, fmt.Errorf("reading nav item text: %w", err)
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		tag, err := el.TagName()
		if err != nil {
			return nil, fmt.Errorf("reading nav item tag: %w", err)
		}
		items = append(items, MenuItem{Name: text, IsDropdown: !strings.EqualFold(tag, "a")})
	}
	return items, nil
}

// NavigationVisible reports whether the navigation bar itself is present.
func (v *Verifier) NavigationVisible() bool {
	return v.page.WaitVisible(v.locs.NavMenu, v.opts.DisclosureTimeout) == nil
}
