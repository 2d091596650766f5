// Smoke check for a cookie export file.

package main

import (
	"log"
	"os"

	"go-leadgen-automation/internal/browser"
)

func main() {
	path := os.Getenv("TWITTER_COOKIES_PATH")
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	if path == "" {
		log.Fatal("usage: cookies <path-to-cookies.json> (or set TWITTER_COOKIES_PATH)")
	}

	cookies, err := browser.LoadCookies(path)
	if err != nil {
		log.Fatalf("❌ Cookie check failed: %v", err)
	}

	log.Printf("✅ Loaded %d cookies from %s (auth_token and ct0 present)", len(cookies), path)
}
