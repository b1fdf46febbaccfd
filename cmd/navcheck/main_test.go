package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Shehzz/multibank-automation-framework/internal/nav"
)

func TestMenuMismatch(t *testing.T) {
	menu := []nav.MenuItem{{Name: "Markets"}, {Name: "About Us"}}

	assert.Empty(t, menuMismatch(menu, nil), "no expectation means no warning")
	assert.Empty(t, menuMismatch(menu, []string{"Markets", "About Us"}))
	assert.Contains(t, menuMismatch(menu, []string{"Markets"}), "count mismatch")
	assert.Contains(t, menuMismatch(menu, []string{"About Us", "Markets"}), `item 0 is "Markets"`)
}

func TestSelectItems(t *testing.T) {
	menu := []nav.MenuItem{{Name: "Markets"}, {Name: "About Us"}, {Name: "Academy"}}

	assert.Equal(t, menu, selectItems(menu, nil))

	got := selectItems(menu, []string{"Academy", "Markets"})
	assert.Equal(t, []nav.MenuItem{{Name: "Markets"}, {Name: "Academy"}}, got,
		"selection keeps document order")

	assert.Empty(t, selectItems(menu, []string{"Ghost"}))
}
