package browser

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// Manager owns the playwright driver and browser processes for one run.
type Manager struct {
	pw      *playwright.Playwright
	browser playwright.Browser
}

func NewManager(headless bool) (*Manager, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(headless),
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	return &Manager{pw: pw, browser: browser}, nil
}

// NewContext creates an authenticated browsing context. The viewport,
// locale and timezone match a plausible desktop session.
func (m *Manager) NewContext(cookies []playwright.OptionalCookie) (playwright.BrowserContext, error) {
	ctx, err := m.browser.NewContext(playwright.BrowserNewContextOptions{
		Viewport:   &playwright.Size{Width: 1920, Height: 1080},
		Locale:     playwright.String("en-US"),
		TimezoneId: playwright.String("America/New_York"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create browser context: %w", err)
	}

	if len(cookies) > 0 {
		if err := ctx.AddCookies(cookies); err != nil {
			ctx.Close()
			return nil, fmt.Errorf("failed to add cookies: %w", err)
		}
	}
	return ctx, nil
}

func (m *Manager) Close() error {
	if m.browser != nil {
		m.browser.Close()
	}
	return m.pw.Stop()
}
