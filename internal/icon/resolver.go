// Package icon turns program paths into fyne resources for the grid.
package icon

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"github.com/fyne-io/image/ico"

	"grid-launcher/internal/logger"
	"grid-launcher/internal/shortcut"
)

var ErrUnsupported = errors.New("icon extraction not supported for this file")

type Resolver struct {
	logger logger.Logger
}

func NewResolver(log logger.Logger) *Resolver {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &Resolver{logger: log}
}

// Load returns the icon for path. Callers fall back to a generic icon on
// error; Cache does this.
func (r *Resolver) Load(path string) (fyne.Resource, error) {
	source, index := path, 0
	if shortcut.IsShortcut(path) {
		info, err := shortcut.Resolve(path)
		if err != nil {
			r.logger.Warning("IconResolver", "shortcut not readable", map[string]interface{}{
				"path":  path,
				"error": err.Error(),
			})
		} else {
			source, index = shortcut.IconSource(info)
		}
	}

	img, err := r.decode(source, index)
	if err != nil && source != path {
		// the shell can still draw an icon for the shortcut file itself
		img, err = extract(path, 0)
	}
	if err != nil {
		return nil, err
	}

	return ToResource(shortcut.DisplayName(path), img)
}

func (r *Resolver) decode(source string, index int) (image.Image, error) {
	switch strings.ToLower(filepath.Ext(source)) {
	case ".png", ".jpg", ".jpeg", ".gif":
		return decodeFile(source, decodeImage)
	case ".ico":
		return decodeFile(source, ico.Decode)
	default:
		return extract(source, index)
	}
}

func decodeFile(path string, decode func(r io.Reader) (image.Image, error)) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	img, err := decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return img, nil
}

func decodeImage(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	return img, err
}

// ToResource encodes img as PNG under a name derived from hint.
func ToResource(hint string, img image.Image) (fyne.Resource, error) {
	if img == nil {
		return nil, errors.New("nil image")
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return fyne.NewStaticResource(resourceName(hint)+".png", buf.Bytes()), nil
}

func resourceName(hint string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, hint)
	if name == "" {
		return "icon"
	}
	return name
}
