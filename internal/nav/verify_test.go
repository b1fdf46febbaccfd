package nav

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestVerifier(page Page, opts Options) *Verifier {
	return New(page, testLocators(), multibankExceptions(), opts, quietLogger())
}

func TestVerifyDirectLinkPassed(t *testing.T) {
	page := newFakePage()
	page.elements["item:Markets"] = &fakeElement{tag: "A", href: "https://multibank.io/markets"}
	page.tab = &fakeTab{url: "https://multibank.io/en-AE/markets?_gl=abc"}

	v := newTestVerifier(page, Options{Headless: true})
	out := v.Verify(MenuItem{Name: "Markets"})

	assert.Equal(t, StatusPassed, out.Status)
	assert.Equal(t, "direct link verified", out.Message)
	assert.Equal(t, "https://multibank.io/markets", out.Expected)
	assert.Equal(t, "https://multibank.io/en-AE/markets?_gl=abc", out.Actual)
	assert.Equal(t, 1, page.spawnCount)
	assert.True(t, page.tab.closed, "spawned tab must be closed")
	assert.True(t, page.elements["item:Markets"].clickedNewTab, "click must carry the new-tab modifier")
}

func TestVerifyDirectLinkMismatchFailed(t *testing.T) {
	page := newFakePage()
	page.elements["item:Markets"] = &fakeElement{tag: "a", href: "https://multibank.io/features/spot-exchange"}
	page.tab = &fakeTab{url: "https://multibank.io/en-AE/features/otc-desk"}

	v := newTestVerifier(page, Options{Headless: true})
	out := v.Verify(MenuItem{Name: "Markets"})

	assert.Equal(t, StatusFailed, out.Status)
	assert.Equal(t, "url mismatch", out.Message)
	assert.Equal(t, "https://multibank.io/features/spot-exchange", out.Expected)
	assert.Equal(t, "https://multibank.io/en-AE/features/otc-desk", out.Actual)
	assert.True(t, page.tab.closed)
}

func TestVerifyInvalidHrefsSkippedWithoutSpawning(t *testing.T) {
	for _, href := range []string{"", "#", "/"} {
		t.Run(fmt.Sprintf("href %q", href), func(t *testing.T) {
			page := newFakePage()
			page.elements["item:Home"] = &fakeElement{tag: "a", href: href}

			v := newTestVerifier(page, Options{Headless: true})
			out := v.Verify(MenuItem{Name: "Home"})

			assert.Equal(t, StatusSkipped, out.Status)
			assert.Equal(t, "root/hash link", out.Message)
			assert.Zero(t, page.spawnCount, "a skipped item must never spawn a tab")
		})
	}
}

func TestVerifyDropdownSelectsFirstValidTarget(t *testing.T) {
	page := newFakePage()
	page.elements["item:About Us"] = &fakeElement{tag: "SPAN"}
	links := []*fakeElement{
		{tag: "a", href: "#"},
		{tag: "a", href: ""},
		{tag: "a", href: "/real/path"},
		{tag: "a", href: "/other/path"},
	}
	page.lists["drop:About Us"] = links
	page.visible["drop:About Us"] = nil
	page.tab = &fakeTab{url: "https://multibank.io/en-AE/real/path"}

	v := newTestVerifier(page, Options{Headless: true})
	out := v.Verify(MenuItem{Name: "About Us", IsDropdown: true})

	require.Equal(t, StatusPassed, out.Status)
	assert.Equal(t, "dropdown verified (2 valid links)", out.Message)
	assert.Equal(t, "/real/path", out.Expected)
	assert.True(t, page.elements["item:About Us"].hovered)
	assert.True(t, links[2].clicked, "the first valid link in document order must be clicked")
	assert.False(t, links[0].clicked)
	assert.False(t, links[1].clicked)
	assert.False(t, links[3].clicked)
	assert.True(t, page.tab.closed)
}

func TestVerifyDropdownAllPlaceholdersSkipped(t *testing.T) {
	page := newFakePage()
	page.elements["item:Company"] = &fakeElement{tag: "span"}
	page.lists["drop:Company"] = []*fakeElement{
		{tag: "a", href: "#"},
		{tag: "a", href: "/"},
	}
	page.visible["drop:Company"] = nil

	v := newTestVerifier(page, Options{Headless: true})
	out := v.Verify(MenuItem{Name: "Company"})

	assert.Equal(t, StatusSkipped, out.Status)
	assert.Equal(t, "no valid links", out.Message)
	assert.Zero(t, page.spawnCount)
}

func TestVerifyDisclosureTimeoutIsError(t *testing.T) {
	page := newFakePage()
	page.elements["item:Products"] = &fakeElement{tag: "span"}
	page.visible["drop:Products"] = errors.New("still hidden")

	v := newTestVerifier(page, Options{Headless: true})
	out := v.Verify(MenuItem{Name: "Products"})

	assert.Equal(t, StatusError, out.Status)
	assert.Contains(t, out.Message, ErrDisclosureTimeout.Error())
	assert.Zero(t, page.spawnCount)
}

func TestVerifySettlementTimeoutIsErrorAndTabClosed(t *testing.T) {
	page := newFakePage()
	page.elements["item:Markets"] = &fakeElement{tag: "a", href: "/markets"}
	page.tab = &fakeTab{url: placeholderURL, waitURLErr: errors.New("deadline exceeded")}

	v := newTestVerifier(page, Options{Headless: true})
	out := v.Verify(MenuItem{Name: "Markets"})

	assert.Equal(t, StatusError, out.Status)
	assert.Contains(t, out.Message, ErrSettlementTimeout.Error())
	assert.Equal(t, "/markets", out.Expected)
	assert.True(t, page.tab.closed, "tab must be closed even when settlement times out")
}

func TestVerifyPlaceholderWaitSkippedWhenHeaded(t *testing.T) {
	page := newFakePage()
	page.elements["item:Markets"] = &fakeElement{tag: "a", href: "/markets"}
	// The tab reports about:blank forever; a headed run never waits on it and
	// compares whatever URL the tab settles into.
	page.tab = &fakeTab{url: placeholderURL, waitURLErr: errors.New("deadline exceeded")}

	v := newTestVerifier(page, Options{Headless: false})
	out := v.Verify(MenuItem{Name: "Markets"})

	assert.Equal(t, StatusFailed, out.Status, "headed run skips the placeholder stage and reaches the matcher")
	assert.True(t, page.tab.closed)
}

func TestVerifyStaleElementIsFailed(t *testing.T) {
	page := newFakePage()
	page.elements["item:Markets"] = &fakeElement{
		tag: "a", href: "/markets",
		clickErr: fmt.Errorf("%w: node 12 gone", ErrStaleElement),
	}

	v := newTestVerifier(page, Options{Headless: true})
	out := v.Verify(MenuItem{Name: "Markets"})

	assert.Equal(t, StatusFailed, out.Status)
	assert.Contains(t, out.Message, ErrStaleElement.Error())
}

func TestVerifyLocatorMissIsError(t *testing.T) {
	page := newFakePage()

	v := newTestVerifier(page, Options{Headless: true})
	out := v.Verify(MenuItem{Name: "Ghost"})

	assert.Equal(t, StatusError, out.Status)
	assert.Contains(t, out.Message, ErrNotFound.Error())
}

func TestVerifyAllIsolatesFailures(t *testing.T) {
	page := newFakePage()
	page.elements["item:Good"] = &fakeElement{tag: "a", href: "/markets"}
	page.tab = &fakeTab{url: "https://multibank.io/markets"}

	v := newTestVerifier(page, Options{Headless: true})
	outs := v.VerifyAll([]MenuItem{{Name: "Missing"}, {Name: "Good"}})

	require.Len(t, outs, 2)
	assert.Equal(t, StatusError, outs[0].Status)
	assert.Equal(t, StatusPassed, outs[1].Status)
}

func TestDispatchInPlaceNavigatesCurrentPage(t *testing.T) {
	page := newFakePage()
	el := &fakeElement{tag: "a", href: "/markets"}

	v := newTestVerifier(page, Options{Headless: true})
	href, tab, err := v.dispatch(LinkTarget{Href: "/markets", SourceIndex: -1, el: el}, false)

	require.NoError(t, err)
	assert.Equal(t, "/markets", href)
	assert.Nil(t, tab, "in-place navigation captures no tab")
	assert.True(t, el.clicked)
	assert.False(t, el.clickedNewTab)
	assert.Zero(t, page.spawnCount)
}

func TestMenuItemsScan(t *testing.T) {
	page := newFakePage()
	page.lists["nav-items"] = []*fakeElement{
		{tag: "A", text: " Markets "},
		{tag: "span", text: "About Us"},
		{tag: "a", text: "   "},
		{tag: "a", text: "Academy"},
	}

	v := newTestVerifier(page, Options{})
	items, err := v.MenuItems()
	require.NoError(t, err)

	assert.Equal(t, []MenuItem{
		{Name: "Markets", IsDropdown: false},
		{Name: "About Us", IsDropdown: true},
		{Name: "Academy", IsDropdown: false},
	}, items)
}
