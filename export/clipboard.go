package export

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aymanbagabas/go-osc52/v2"
)

// OSC52Copier writes clipboard escape sequences to the attached terminal.
// Works over SSH since the terminal on the user's side does the copying.
type OSC52Copier struct {
	Out io.Writer
}

func (c *OSC52Copier) Copy(text string) error {
	out := c.Out
	if out == nil {
		out = os.Stderr
	}
	if _, err := osc52.New(text).WriteTo(out); err != nil {
		return fmt.Errorf("failed to emit clipboard sequence: %w", err)
	}
	return nil
}

// SpoolCopier is the legacy path: the text lands in a well-known file the
// desktop side can pick up when no terminal clipboard is available.
type SpoolCopier struct {
	Path string
}

func (c *SpoolCopier) Copy(text string) error {
	if err := os.MkdirAll(filepath.Dir(c.Path), 0755); err != nil {
		return err
	}
	return os.WriteFile(c.Path, []byte(text), 0644)
}

// FallbackCopier tries the primary copier and falls back transparently.
// A copy only counts as failed when both paths fail.
type FallbackCopier struct {
	Primary  TextCopier
	Fallback TextCopier
}

func (c *FallbackCopier) Copy(text string) error {
	err := c.Primary.Copy(text)
	if err == nil {
		return nil
	}
	slog.Warn("Primary clipboard unavailable. Using fallback.", slog.String("stack", err.Error()))
	return c.Fallback.Copy(text)
}
