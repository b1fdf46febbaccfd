package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Shehzz/multibank-automation-framework/internal/browser"
	"github.com/Shehzz/multibank-automation-framework/internal/config"
	"github.com/Shehzz/multibank-automation-framework/internal/nav"
	"github.com/Shehzz/multibank-automation-framework/internal/report"
	"github.com/Shehzz/multibank-automation-framework/internal/triage"
)

var (
	headless   bool
	configPath string
	items      []string
	listOnly   bool
	noReport   bool
	provider   string
	model      string
	profile    string
	verbose    bool
)

func main() {
	// Load .env file if present (silently ignore if not found)
	_ = godotenv.Load()

	settings := config.FromEnv()

	rootCmd := &cobra.Command{
		Use:   "navcheck [url]",
		Short: "Verify a trading site's navigation menu end to end",
		Long: `navcheck opens the site, scans its top navigation, and clicks every menu
entry into a fresh tab: direct links are clicked as-is, hover dropdowns are
disclosed and their first valid sub-link is used. Each landing URL is matched
against the authored href, tolerating locale prefixes, query noise, and
known redirects.

Example:
  navcheck https://trade.multibank.io/ --headless`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(settings, args)
		},
	}

	rootCmd.Flags().BoolVar(&headless, "headless", settings.Headless, "Run the browser headless")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML verification config (locators, expected menu, redirect exceptions)")
	rootCmd.Flags().StringSliceVar(&items, "items", nil, "Verify only these menu items (default: all scanned)")
	rootCmd.Flags().BoolVar(&listOnly, "list", false, "Only scan and print the menu items")
	rootCmd.Flags().BoolVar(&noReport, "no-report", false, "Skip writing the JSON report")
	rootCmd.Flags().StringVar(&provider, "triage", "", "Diagnose failures via AI: claude, openai")
	rootCmd.Flags().StringVar(&model, "model", "", "Specific model override for triage")
	rootCmd.Flags().StringVar(&profile, "profile", "", "Chrome/Chromium profile directory for authenticated sessions")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show detailed progress")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(settings config.Settings, args []string) error {
	url := settings.BaseURL
	if len(args) > 0 {
		url = args[0]
	}
	settings.Headless = headless

	log := newLogger(settings.LogLevel)

	verifyCfg := config.DefaultVerifyConfig()
	if configPath != "" {
		var err error
		verifyCfg, err = config.LoadVerifyConfig(configPath)
		if err != nil {
			return err
		}
	}

	fmt.Printf("→ Opening %s... ", url)
	b, err := browser.Open(url, browser.Options{
		Headless:   settings.Headless,
		Width:      settings.ViewportWidth,
		Height:     settings.ViewportHeight,
		SlowMo:     settings.SlowMo,
		Timeout:    settings.DefaultTimeout,
		ProfileDir: profile,
	})
	if err != nil {
		fmt.Println("failed")
		return fmt.Errorf("opening browser: %w", err)
	}
	defer b.Close()
	fmt.Println("done")

	verifier := nav.New(b.Page(), verifyCfg.Locators, verifyCfg.RedirectExceptions, nav.Options{
		NavigationTimeout: settings.NavigationTimeout,
		Headless:          settings.Headless,
	}, log)

	if !verifier.NavigationVisible() {
		return fmt.Errorf("navigation menu not visible on %s", url)
	}

	menu, err := verifier.MenuItems()
	if err != nil {
		return fmt.Errorf("scanning menu: %w", err)
	}
	fmt.Printf("→ Found %d menu items\n", len(menu))

	if listOnly {
		for _, item := range menu {
			kind := "link"
			if item.IsDropdown {
				kind = "dropdown"
			}
			fmt.Printf("  %-20s %s\n", item.Name, kind)
		}
		return nil
	}

	if warn := menuMismatch(menu, verifyCfg.ExpectedMenuItems); warn != "" {
		fmt.Printf("⚠ %s\n", warn)
	}

	selected := selectItems(menu, items)
	summary := report.NewSummary(url)

	fmt.Println("→ Verifying...")
	for _, item := range selected {
		outcome := verifier.Verify(item)
		summary.Add(outcome)
		printOutcome(outcome)

		if settings.ScreenshotOnFailure &&
			(outcome.Status == nav.StatusFailed || outcome.Status == nav.StatusError) {
			saveFailureShot(b, settings.ScreenshotsDir, item.Name, log)
		}
	}

	fmt.Println()
	summary.Render(os.Stdout)

	if !noReport {
		path, err := summary.WriteJSON(settings.ReportsDir)
		if err != nil {
			log.WithError(err).Warn("writing report")
		} else {
			fmt.Printf("→ Report saved to %s\n", path)
		}
	}

	if provider != "" && !summary.OK() {
		fmt.Printf("→ Triaging failures via %s... ", provider)
		p, err := triage.NewProvider(provider, model)
		if err != nil {
			fmt.Println("failed")
			return fmt.Errorf("triage provider init failed: %w", err)
		}
		note, err := p.Diagnose(summary)
		if err != nil {
			fmt.Println("failed")
			log.WithError(err).Warn("triage")
		} else {
			fmt.Printf("done\n\n%s\n", note)
		}
	}

	if !summary.OK() {
		return fmt.Errorf("%d of %d menu items failed verification", len(summary.Failures()), len(selected))
	}
	fmt.Println("✓ Navigation verified")
	return nil
}

func newLogger(level string) *logrus.Logger {
	log := logrus.New()
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	if verbose {
		lvl = logrus.DebugLevel
	}
	log.SetLevel(lvl)
	return log
}

func printOutcome(o nav.Outcome) {
	switch o.Status {
	case nav.StatusPassed:
		fmt.Printf("  ✓ %s\n", o.Item)
	case nav.StatusSkipped:
		fmt.Printf("  ⊘ %s (%s)\n", o.Item, o.Message)
	default:
		fmt.Printf("  ✗ %s: %s\n", o.Item, o.Message)
	}
}

// menuMismatch compares the scanned menu against the configured expectation,
// count and order both.
func menuMismatch(menu []nav.MenuItem, expected []string) string {
	if len(expected) == 0 {
		return ""
	}
	if len(menu) != len(expected) {
		return fmt.Sprintf("menu item count mismatch: found %d, expected %d", len(menu), len(expected))
	}
	for i, item := range menu {
		if item.Name != expected[i] {
			return fmt.Sprintf("menu item %d is %q, expected %q", i, item.Name, expected[i])
		}
	}
	return ""
}

func selectItems(menu []nav.MenuItem, names []string) []nav.MenuItem {
	if len(names) == 0 {
		return menu
	}
	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[n] = true
	}
	var out []nav.MenuItem
	for _, item := range menu {
		if wanted[item.Name] {
			out = append(out, item)
		}
	}
	return out
}

func saveFailureShot(b *browser.Browser, dir, item string, log *logrus.Logger) {
	data, err := b.Screenshot()
	if err != nil {
		log.WithError(err).WithField("item", item).Warn("capturing failure screenshot")
		return
	}
	path, err := report.SaveScreenshot(data, dir, item)
	if err != nil {
		log.WithError(err).WithField("item", item).Warn("saving failure screenshot")
		return
	}
	fmt.Printf("    screenshot: %s\n", path)
}
