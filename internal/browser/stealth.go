package browser

import (
	"fmt"
	"math/rand"
	"time"

	"go-leadgen-automation/internal/driver"
)

// RandomDelay pauses execution for a random time between min and max
// (milliseconds). The jitter is a deliberate throttle: evenly spaced
// requests are an easy automation signature.
func RandomDelay(min, max int) {
	if min >= max {
		time.Sleep(time.Duration(min) * time.Millisecond)
		return
	}
	duration := time.Duration(rand.Intn(max-min)+min) * time.Millisecond
	time.Sleep(duration)
}

// HumanScroll performs bursts of incremental scrolling with variable step
// size and pacing, triggering lazy-loaded posts the way a reading human
// would. pauseMin/pauseMax bound the pause between bursts in milliseconds.
func HumanScroll(page driver.Page, bursts, pauseMin, pauseMax int) error {
	for i := 0; i < bursts; i++ {
		distance := rand.Intn(500) + 300
		position := scrollOffset(page)
		target := position + distance

		for position < target {
			position += rand.Intn(100) + 50
			if position > target {
				position = target
			}
			if _, err := page.Evaluate(fmt.Sprintf("window.scrollTo(0, %d)", position)); err != nil {
				return err
			}
			RandomDelay(10, 50)
		}

		RandomDelay(pauseMin, pauseMax)
	}
	return nil
}

func scrollOffset(page driver.Page) int {
	v, err := page.Evaluate("window.pageYOffset")
	if err != nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	}
	return 0
}
