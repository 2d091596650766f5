package utils

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"go-leadgen-automation/internal/driver"
)

// ScreenshotDebugger captures full-page screenshots when a query goes
// sideways, so layout changes can be diagnosed after the run.
type ScreenshotDebugger struct {
	outputDir string
	logger    *slog.Logger
}

func NewScreenshotDebugger(logger *slog.Logger) *ScreenshotDebugger {
	dir := filepath.Join(".", "logs", "screenshots")
	os.MkdirAll(dir, 0755)
	return &ScreenshotDebugger{
		outputDir: dir,
		logger:    logger,
	}
}

func (s *ScreenshotDebugger) Capture(page driver.Page, name string) error {
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	filename := fmt.Sprintf("%s_%s.png", name, timestamp)
	path := filepath.Join(s.outputDir, filename)

	if err := page.Screenshot(path); err != nil {
		s.logger.Warn("failed to capture screenshot", "name", name, "error", err)
		return err
	}

	s.logger.Info("screenshot saved", "path", path)
	return nil
}
