package scraper

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// fetchRendered loads the page through headless Chromium, for job
// boards that serve an empty shell to plain HTTP clients. Every
// spawned resource is released via defer, including on error paths.
func (f *Fetcher) fetchRendered(url string) (string, error) {
	pw, err := playwright.Run()
	if err != nil {
		return "", fmt.Errorf("failed to start playwright: %w", err)
	}
	defer pw.Stop()

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("failed to launch browser: %w", err)
	}
	defer browser.Close()

	page, err := browser.NewPage(playwright.BrowserNewPageOptions{
		UserAgent: playwright.String(userAgent),
	})
	if err != nil {
		return "", fmt.Errorf("failed to open page: %w", err)
	}
	defer page.Close()

	if _, err := page.Goto(url, playwright.PageGotoOptions{
		Timeout:   playwright.Float(f.timeout),
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
	}); err != nil {
		return "", fmt.Errorf("navigation failed: %w", err)
	}

	return page.Content()
}
