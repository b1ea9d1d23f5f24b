package views

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"g1.vc/site/internal/config"
	"g1.vc/site/internal/feed"
	"g1.vc/site/internal/shell"
	"g1.vc/site/internal/theme"
)

func renderPage(t *testing.T, mutate func(*PageData)) string {
	t.Helper()
	site, err := config.LoadSite()
	require.NoError(t, err)

	d := PageData{
		Site:      site,
		Styles:    theme.Default(),
		Feeds:     feed.Live{},
		FeedDelay: time.Second,
	}
	if mutate != nil {
		mutate(&d)
	}

	var b strings.Builder
	require.NoError(t, Page(d).Render(&b))
	return b.String()
}

func TestPageSectionOrder(t *testing.T) {
	out := renderPage(t, nil)

	markers := []string{
		`href="#main-content"`,
		`role="banner"`,
		`id="main-content"`,
		`id="approach"`,
		`id="partners-showcase-heading"`,
		`id="partners"`,
		`id="portfolio"`,
		`id="social-heading"`,
		`id="contact"`,
		`<footer`,
	}
	last := -1
	for _, m := range markers {
		idx := strings.Index(out, m)
		require.GreaterOrEqual(t, idx, 0, "missing %s", m)
		assert.Greater(t, idx, last, "%s out of order", m)
		last = idx
	}
}

func TestLayoutMetadata(t *testing.T) {
	out := renderPage(t, nil)

	assert.True(t, strings.HasPrefix(out, "<!doctype html>"))
	assert.Contains(t, out, "<title>G1 - Proactive Web3 Investor</title>")
	assert.Contains(t, out, `content="G1 is a proactive investor redefining web3 investing"`)
	assert.Contains(t, out, `data-reduced-motion="false"`)
	assert.NotContains(t, out, "app.wasm")

	withClient := renderPage(t, func(d *PageData) { d.WithClient = true })
	assert.Contains(t, withClient, `src="/client/wasm_exec.js"`)
	assert.Contains(t, withClient, "/client/app.wasm")
}

func TestHeaderStartsClosed(t *testing.T) {
	out := renderPage(t, nil)

	assert.Contains(t, out, `aria-label="Open menu"`)
	assert.Contains(t, out, `aria-expanded="false"`)
	assert.Contains(t, out, `aria-controls="mobile-menu"`)
	assert.Contains(t, out, `class="md:hidden bg-white border-t border-gray-100 py-4 hidden"`)
	for _, anchor := range []string{"#approach", "#partners", "#portfolio", "#contact"} {
		assert.Contains(t, out, `href="`+anchor+`"`)
	}
}

func TestHeaderOpenMenu(t *testing.T) {
	out := renderPage(t, func(d *PageData) { d.State = shell.State{MenuOpen: true} })
	assert.Contains(t, out, `aria-label="Close menu"`)
	assert.Contains(t, out, `aria-expanded="true"`)
	assert.Contains(t, out, "animate-fade-in-down")
}

func TestShowcaseScrollTargets(t *testing.T) {
	out := renderPage(t, nil)
	for _, id := range []string{"capital-card", "liquidity-card", "growth-card", "infrastructure-card"} {
		assert.Contains(t, out, `data-scroll-target="`+id+`"`)
		assert.Contains(t, out, `id="`+id+`"`)
	}
}

func TestCategoriesHiddenUntilClientReveals(t *testing.T) {
	out := renderPage(t, func(d *PageData) { d.WithClient = true })
	assert.Equal(t, 4, strings.Count(out, "opacity-0 translate-y-10"))
	assert.Equal(t, 4, strings.Count(out, "data-reveal-base="))

	reduced := renderPage(t, func(d *PageData) {
		d.WithClient = true
		d.State.ReducedMotion = true
	})
	assert.NotContains(t, reduced, "opacity-0 translate-y-10")
	assert.Contains(t, reduced, `data-reduced-motion="true"`)
	assert.Contains(t, reduced, "group-hover:opacity-100")
}

func TestCategoriesVisibleWithoutClient(t *testing.T) {
	out := renderPage(t, nil)
	assert.NotContains(t, out, "opacity-0 translate-y-10")
	assert.NotContains(t, out, "data-reveal")
	assert.Equal(t, 4, strings.Count(out, "opacity-100 translate-y-0"))
	assert.Contains(t, out, `id="capital-card"`)
}

func TestHeroIllustrations(t *testing.T) {
	out := renderPage(t, nil)
	for _, name := range []string{"pen", "cup", "hammer", "coin"} {
		assert.Contains(t, out, `data-illustration="`+name+`"`)
	}
	assert.Contains(t, out, `src="/static/img/capital.svg"`)
}

func TestPortfolioGrid(t *testing.T) {
	out := renderPage(t, nil)
	assert.Equal(t, 8, strings.Count(out, `data-portfolio-item=`))
	assert.Contains(t, out, "_01")
	assert.Contains(t, out, "_08")
	assert.Contains(t, out, `aria-label="View portfolio item Saline details"`)
	assert.Contains(t, out, "View All Investments")
}

func TestSocialFeedsFollowProvider(t *testing.T) {
	live := renderPage(t, func(d *PageData) { d.WithClient = true })
	assert.Contains(t, live, "Loading LinkedIn content...")
	assert.Contains(t, live, "Loading Twitter feed...")
	assert.Contains(t, live, `data-feed-delay="1000"`)

	preview := renderPage(t, func(d *PageData) { d.Feeds = feed.Preview{} })
	assert.Contains(t, preview, "Twitter Feed Preview")
	assert.Contains(t, preview, "LinkedIn Company Page Preview")
	assert.NotContains(t, preview, "data-feed-delay")
}

func TestLiveFeedsLoadedWithoutClient(t *testing.T) {
	out := renderPage(t, nil)
	assert.NotContains(t, out, "Loading LinkedIn content...")
	assert.NotContains(t, out, "Loading Twitter feed...")
	assert.NotContains(t, out, "data-feed-delay")
	assert.NotContains(t, out, "<template")
	assert.Contains(t, out, `class="twitter-timeline"`)
	assert.Contains(t, out, `src="https://platform.twitter.com/widgets.js"`)
	assert.Contains(t, out, `src="https://www.linkedin.com/company/embed/g1vc/"`)
}

func TestFooter(t *testing.T) {
	out := renderPage(t, nil)
	assert.Contains(t, out, "© 2024 G1 Investments. All rights reserved.")
	for _, text := range []string{"Company", "Resources", "Connect", "Privacy Policy", "Cookie Policy"} {
		assert.Contains(t, out, text)
	}
}
