package preview

import (
	"fmt"
	"image"
	"os"

	"github.com/HugoSmits86/nativewebp"
)

// SaveWebP encodes img to path as lossless WebP.
func SaveWebP(path string, img *image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("preview: create %s: %w", path, err)
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return fmt.Errorf("preview: webp encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("preview: close %s: %w", path, err)
	}
	return nil
}
