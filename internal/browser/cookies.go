package browser

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/playwright-community/playwright-go"
)

// Cookie represents a browser cookie from the exported JSON file.
type Cookie struct {
	Name     string  `json:"name"`
	Value    string  `json:"value"`
	Domain   string  `json:"domain"`
	Path     string  `json:"path"`
	Expires  float64 `json:"expires"`
	HTTPOnly bool    `json:"httpOnly"`
	Secure   bool    `json:"secure"`
	SameSite string  `json:"sameSite"`
}

// requiredCookies must all be present for the X session to be usable.
var requiredCookies = []string{"auth_token", "ct0"}

type cookieFile struct {
	Cookies []Cookie `json:"cookies"`
}

// LoadCookies reads a cookie export, either the `{"cookies": [...]}`
// wrapper the session saver produces or a bare array, validates that the
// auth cookies are present and converts them for playwright.
func LoadCookies(path string) ([]playwright.OptionalCookie, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading cookies file: %w", err)
	}

	var wrapped cookieFile
	if err := json.Unmarshal(data, &wrapped); err != nil {
		//fall back to the bare-array export format
		var bare []Cookie
		if bareErr := json.Unmarshal(data, &bare); bareErr != nil {
			return nil, fmt.Errorf("parsing cookies file: %w", bareErr)
		}
		wrapped.Cookies = bare
	}

	if len(wrapped.Cookies) == 0 {
		return nil, fmt.Errorf("no cookies found in %s", path)
	}

	for _, required := range requiredCookies {
		if !hasCookie(wrapped.Cookies, required) {
			return nil, fmt.Errorf("missing required cookie: %s", required)
		}
	}

	pwCookies := make([]playwright.OptionalCookie, len(wrapped.Cookies))
	for i, c := range wrapped.Cookies {
		pwCookies[i] = c.ToPlaywright()
	}
	return pwCookies, nil
}

func hasCookie(cookies []Cookie, name string) bool {
	for _, c := range cookies {
		if c.Name == name {
			return true
		}
	}
	return false
}

func (c Cookie) ToPlaywright() playwright.OptionalCookie {
	pwCookie := playwright.OptionalCookie{
		Name:  c.Name,
		Value: c.Value,
	}

	if c.Domain != "" {
		pwCookie.Domain = playwright.String(c.Domain)
	}
	if c.Path != "" {
		pwCookie.Path = playwright.String(c.Path)
	}
	if c.Expires > 0 {
		pwCookie.Expires = playwright.Float(c.Expires)
	}
	if c.HTTPOnly {
		pwCookie.HttpOnly = playwright.Bool(true)
	}
	if c.Secure {
		pwCookie.Secure = playwright.Bool(true)
	}

	switch c.SameSite {
	case "Lax":
		pwCookie.SameSite = playwright.SameSiteAttributeLax
	case "Strict":
		pwCookie.SameSite = playwright.SameSiteAttributeStrict
	case "None":
		pwCookie.SameSite = playwright.SameSiteAttributeNone
	}

	return pwCookie
}
