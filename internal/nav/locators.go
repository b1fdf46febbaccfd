package nav

import "fmt"

// LocatorSet carries the selector templates for one site's navigation bar.
// It is passed to the verifier at construction, never read from globals.
// ItemByText and DropdownLinks are printf templates taking the menu item's
// rendered text; selectors starting with "//" are XPath, everything else CSS.
type LocatorSet struct {
	NavMenu       string `yaml:"nav_menu"`
	NavItems      string `yaml:"nav_items"`
	ItemByText    string `yaml:"nav_item_by_text"`
	DropdownLinks string `yaml:"nav_dropdown_links"`
}

// DefaultLocators matches the trade.multibank.io header markup, where a menu
// entry is either a direct <a> or a <span> that discloses a dropdown of
// sub-links on hover.
func DefaultLocators() LocatorSet {
	return LocatorSet{
		NavMenu:       "header nav",
		NavItems:      "header nav li > a, header nav li > span",
		ItemByText:    `//header//nav//li/*[self::a or self::span][normalize-space()=%q]`,
		DropdownLinks: `//header//nav//li[*[normalize-space()=%q]]//div[contains(@class,"dropdown")]//a`,
	}
}

func (l LocatorSet) itemSelector(name string) string {
	return fmt.Sprintf(l.ItemByText, name)
}

func (l LocatorSet) dropdownSelector(name string) string {
	return fmt.Sprintf(l.DropdownLinks, name)
}
