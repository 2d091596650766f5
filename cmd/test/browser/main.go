// Smoke check for the browser stack: launch, open the search page, count
// post containers with the default selector chain.

package main

import (
	"log"

	"go-leadgen-automation/internal/browser"
	"go-leadgen-automation/internal/driver"
	"go-leadgen-automation/internal/selectors"
)

func main() {
	manager, err := browser.NewManager(true)
	if err != nil {
		log.Fatalf("❌ Failed to start browser: %v", err)
	}
	defer manager.Close()

	ctx, err := manager.NewContext(nil)
	if err != nil {
		log.Fatalf("❌ Failed to create context: %v", err)
	}

	pwPage, err := ctx.NewPage()
	if err != nil {
		log.Fatalf("❌ Failed to create page: %v", err)
	}

	page := driver.NewPage(pwPage)
	if err := page.Navigate("https://x.com/search?q=golang&src=typed_query&f=live", 60000); err != nil {
		log.Fatalf("❌ Navigation failed: %v", err)
	}

	for _, sel := range selectors.Default().Chain(selectors.FieldContainer) {
		found, err := page.QueryAll(sel)
		if err != nil {
			log.Printf("⚠️ Selector %q failed: %v", sel, err)
			continue
		}
		log.Printf("Selector %q matched %d elements", sel, len(found))
	}

	log.Println("✅ Browser smoke check complete")
}
