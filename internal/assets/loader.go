package assets

import (
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/image/draw"

	"raycore/internal/logging"
)

// Loader decodes images from a file system. Every failure is returned as an
// error; callers treat it as fatal since assets are a precondition.
type Loader struct {
	fsys fs.FS
}

// NewLoader returns a loader reading from fsys.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// Image decodes the image at name.
func (l *Loader) Image(name string) (image.Image, error) {
	f, err := l.fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture %s: %w", name, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode texture %s: %w", name, err)
	}
	return img, nil
}

// Scaled decodes the image at name and resamples it to w x h.
func (l *Loader) Scaled(name string, w, h int) (image.Image, error) {
	img, err := l.Image(name)
	if err != nil {
		return nil, err
	}
	return Resize(img, w, h), nil
}

// Resize resamples img to w x h. Images already at that size are returned as is.
func Resize(img image.Image, w, h int) image.Image {
	b := img.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}

// Frames decodes every regular file in dir as one animation frame, ordered
// by the number in the file name (0.png, 1.png, ..., 10.png).
func (l *Loader) Frames(dir string) ([]image.Image, error) {
	entries, err := fs.ReadDir(l.fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read frame directory %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("frame directory %s is empty", dir)
	}
	sort.Slice(names, func(i, j int) bool { return frameLess(names[i], names[j]) })

	frames := make([]image.Image, 0, len(names))
	for _, name := range names {
		img, err := l.Image(path.Join(dir, name))
		if err != nil {
			return nil, err
		}
		frames = append(frames, img)
	}
	logging.For("assets").WithField("dir", dir).Debugf("loaded %d frames", len(frames))
	return frames, nil
}

func frameLess(a, b string) bool {
	na, errA := strconv.Atoi(strings.TrimSuffix(a, path.Ext(a)))
	nb, errB := strconv.Atoi(strings.TrimSuffix(b, path.Ext(b)))
	if errA == nil && errB == nil && na != nb {
		return na < nb
	}
	return a < b
}
