package report

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nfnt/resize"
)

// MaxScreenshotWidth bounds saved failure screenshots so a long run does not
// fill the disk with full-viewport captures.
const MaxScreenshotWidth = 1024

// SaveScreenshot decodes a captured frame, downscales it to the bounded width
// preserving aspect ratio, and writes it under dir named after the menu item.
// Returns the saved path.
func SaveScreenshot(data []byte, dir, item string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating screenshots dir: %w", err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("decoding screenshot: %w", err)
	}

	if img.Bounds().Dx() > MaxScreenshotWidth {
		img = resize.Resize(MaxScreenshotWidth, 0, img, resize.Lanczos3)
	}

	name := fmt.Sprintf("%s-%s.png", slug(item), time.Now().UTC().Format("20060102-150405"))
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating screenshot file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return "", fmt.Errorf("encoding screenshot: %w", err)
	}
	return path, nil
}

func slug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_', r == '/':
			b.WriteByte('-')
		}
	}
	out := strings.Trim(b.String(), "-")
	if out == "" {
		out = "item"
	}
	return out
}
