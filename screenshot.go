package cinder

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot queues a labeled screenshot to be captured at the end of the
// current frame's Draw. The resulting PNG is written to ScreenshotDir with a
// timestamped filename. Safe to call from the update callback.
func (n *EbitenNative) Screenshot(label string) {
	n.screenshotQueue = append(n.screenshotQueue, label)
}

// flushScreenshots captures the rendered frame once and writes it as a PNG
// file per queued label. Called at the end of Draw; the queue is emptied even
// when a write fails.
func (n *EbitenNative) flushScreenshots(screen *ebiten.Image) {
	if len(n.screenshotQueue) == 0 {
		return
	}
	queue := n.screenshotQueue
	n.screenshotQueue = n.screenshotQueue[:0]

	dir := n.ScreenshotDir
	if dir == "" {
		dir = "screenshots"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Warn("screenshot dir create failed", "dir", dir, "error", err)
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, captureFrame(screen)); err != nil {
		logger.Warn("screenshot encode failed", "error", err)
		return
	}

	stamp := time.Now().Format("20060102_150405")
	for _, label := range queue {
		path := filepath.Join(dir, stamp+"_"+sanitizeLabel(label)+".png")
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			logger.Warn("screenshot write failed", "path", path, "error", err)
		}
	}
}

// captureFrame reads the screen into a straight-alpha image. ReadPixels
// returns premultiplied RGBA, so partially transparent pixels are scaled
// back up by their alpha.
func captureFrame(screen *ebiten.Image) *image.NRGBA {
	b := screen.Bounds()
	img := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	screen.ReadPixels(img.Pix)

	for i := 0; i < len(img.Pix); i += 4 {
		a := img.Pix[i+3]
		if a == 0 || a == 255 {
			continue
		}
		for j := i; j < i+3; j++ {
			v := int(img.Pix[j]) * 255 / int(a)
			if v > 255 {
				v = 255
			}
			img.Pix[j] = uint8(v)
		}
	}
	return img
}

// sanitizeLabel maps characters that are unsafe in file names to underscores
// and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}
