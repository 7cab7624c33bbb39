// Package preview captures still thumbnails of the editor viewport.
package preview

import (
	"fmt"
	"os"

	"github.com/HugoSmits86/nativewebp"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// CaptureScreen saves the current framebuffer as a lossless WebP. Call
// after EndDrawing so the frame is complete.
func CaptureScreen(path string) error {
	screen := rl.LoadImageFromScreen()
	defer rl.UnloadImage(screen)

	return saveWebP(path, screen)
}

func saveWebP(path string, img *rl.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create preview: %w", err)
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img.ToImage(), nil); err != nil {
		return fmt.Errorf("encode preview: %w", err)
	}
	return nil
}
