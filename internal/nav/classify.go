package nav

import (
	"fmt"
	"strings"
)

// resolve returns a handle to the top-level navigation element whose visible
// text equals name. With multiple matches the first in document order wins;
// markup duplication is tolerated, not an error.
func (v *Verifier) resolve(name string) (Element, error) {
	sel := v.locs.itemSelector(name)
	el, err := v.page.Locate(sel)
	if err != nil {
		return nil, fmt.Errorf("%w: %q (%s): %v", ErrNotFound, name, sel, err)
	}
	return el, nil
}

// classify determines the shape of a menu entry. An element that is itself an
// anchor is a direct link; anything else is hovered and its disclosure
// container enumerated, each sub-anchor paired with its href and position.
func (v *Verifier) classify(name string, handle Element) (Classification, error) {
	tag, err := handle.TagName()
	if err != nil {
		return Classification{}, fmt.Errorf("reading tag of %q: %w", name, err)
	}

	if strings.EqualFold(tag, "a") {
		href, err := handle.Attribute("href")
		if err != nil {
			return Classification{}, fmt.Errorf("reading href of %q: %w", name, err)
		}
		return Classification{
			Kind:    KindDirect,
			Targets: []LinkTarget{{Href: href, SourceIndex: -1, el: handle}},
		}, nil
	}

	if err := handle.Hover(); err != nil {
		return Classification{}, fmt.Errorf("hovering %q: %w", name, err)
	}

	sel := v.locs.dropdownSelector(name)
	if err := v.page.WaitVisible(sel, v.opts.DisclosureTimeout); err != nil {
		return Classification{}, fmt.Errorf("%w: %q within %s: %v",
			ErrDisclosureTimeout, name, v.opts.DisclosureTimeout, err)
	}

	links, err := v.page.LocateAll(sel)
	if err != nil {
		return Classification{}, fmt.Errorf("enumerating dropdown of %q: %w", name, err)
	}

	targets := make([]LinkTarget, 0, len(links))
	for i, link := range links {
		href, err := link.Attribute("href")
		if err != nil {
			return Classification{}, fmt.Errorf("reading href %d of %q: %w", i, name, err)
		}
		targets = append(targets, LinkTarget{Href: href, SourceIndex: i, el: link})
	}
	return Classification{Kind: KindDropdown, Targets: targets}, nil
}
