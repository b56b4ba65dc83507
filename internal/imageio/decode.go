// Package imageio loads the displayed picture and watches it for changes.
package imageio

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Patterns lists the file patterns Load understands, for file dialogs.
var Patterns = []string{"*.png", "*.jpg", "*.jpeg", "*.gif", "*.bmp", "*.tif", "*.tiff", "*.webp"}

// Load decodes the image at path.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	if b := img.Bounds(); b.Empty() {
		return nil, fmt.Errorf("image %s (%s) is empty", path, format)
	}
	return img, nil
}

// CleanPath strips whitespace and the quotes a pasted path often carries.
func CleanPath(p string) string {
	return strings.Trim(strings.TrimSpace(p), `"`)
}
