//go:build !windows

package icon

import (
	"fmt"
	"image"
)

func extract(path string, index int) (image.Image, error) {
	return nil, fmt.Errorf("%s: %w", path, ErrUnsupported)
}
