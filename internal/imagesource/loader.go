package imagesource

import (
	"errors"
	"image"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/disintegration/imaging"

	"github.com/alexisbeaulieu97/borderkit/internal/border"
	bkerrors "github.com/alexisbeaulieu97/borderkit/pkg/errors"
)

// ErrNoFile is returned when a load is requested without a file. Callers
// treat it as "nothing selected" and keep the current image.
var ErrNoFile = errors.New("no file selected")

// Image is a decoded upload together with the reference handed to the
// controller.
type Image struct {
	Source border.ImageSource
	Pixels image.Image
}

// Thumbnail scales the image to fit within width x height, preserving its
// aspect ratio.
func (i *Image) Thumbnail(width, height int) image.Image {
	if i == nil || i.Pixels == nil || width <= 0 || height <= 0 {
		return nil
	}
	return imaging.Fit(i.Pixels, width, height, imaging.Lanczos)
}

// Cover scales and centre-crops the image so it fills exactly width x height.
func (i *Image) Cover(width, height int) image.Image {
	if i == nil || i.Pixels == nil || width <= 0 || height <= 0 {
		return nil
	}
	return imaging.Fill(i.Pixels, width, height, imaging.Center, imaging.Lanczos)
}

// Loader decodes image files and caches the results by absolute path. Loads
// run from background commands, so Loader is safe for concurrent use.
type Loader struct {
	mu     sync.RWMutex
	images map[string]*Image
}

// NewLoader creates an empty loader.
func NewLoader() *Loader {
	return &Loader{images: make(map[string]*Image)}
}

// Load decodes the image at path, applying EXIF orientation. Supported
// formats are those of disintegration/imaging: JPEG, PNG, GIF, TIFF and BMP.
func (l *Loader) Load(path string) (*Image, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, ErrNoFile
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, bkerrors.NewLoadError(path, err)
	}

	l.mu.RLock()
	if img, ok := l.images[abs]; ok {
		l.mu.RUnlock()
		return img, nil
	}
	l.mu.RUnlock()

	info, err := os.Stat(abs)
	if err != nil {
		return nil, bkerrors.NewLoadError(path, err)
	}
	if info.IsDir() {
		return nil, bkerrors.NewLoadError(path, errors.New("is a directory"))
	}

	format, err := imaging.FormatFromFilename(abs)
	if err != nil {
		return nil, bkerrors.NewLoadError(path, err)
	}

	pixels, err := imaging.Open(abs, imaging.AutoOrientation(true))
	if err != nil {
		return nil, bkerrors.NewLoadError(path, err)
	}

	bounds := pixels.Bounds()
	img := &Image{
		Source: border.ImageSource{
			URI:    (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String(),
			Name:   filepath.Base(abs),
			Format: strings.ToLower(format.String()),
			Width:  bounds.Dx(),
			Height: bounds.Dy(),
		},
		Pixels: pixels,
	}

	l.mu.Lock()
	l.images[abs] = img
	l.mu.Unlock()

	return img, nil
}

// Evict drops a cached image.
func (l *Loader) Evict(path string) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return
	}
	l.mu.Lock()
	delete(l.images, abs)
	l.mu.Unlock()
}
