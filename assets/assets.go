package assets

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"
)

// DefaultRoot is where sprites are looked up when no -assets flag is given.
const DefaultRoot = "assets/images"

// ErrNoRoot is returned by a loader created with an empty root, which is how
// headless runs turn image loading off.
var ErrNoRoot = errors.New("no asset directory")

// Loader reads sprites from a directory on disk and caches the result,
// including failures, so a missing file is only reported once.
type Loader struct {
	root   string
	cache  map[string]*ebiten.Image
	failed map[string]error
}

func NewLoader(root string) *Loader {
	return &Loader{
		root:   root,
		cache:  make(map[string]*ebiten.Image),
		failed: make(map[string]error),
	}
}

// Root returns the directory the loader reads from.
func (l *Loader) Root() string {
	return l.root
}

// Image returns the sprite at name relative to the loader root.
func (l *Loader) Image(name string) (*ebiten.Image, error) {
	if img, ok := l.cache[name]; ok {
		return img, nil
	}
	if err, ok := l.failed[name]; ok {
		return nil, err
	}
	if l.root == "" {
		return nil, ErrNoRoot
	}

	path := filepath.Join(l.root, name)
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		err = fmt.Errorf("load image %s: %w", path, err)
		l.failed[name] = err
		zap.L().Debug("sprite unavailable", zap.String("name", name), zap.Error(err))
		return nil, err
	}
	l.cache[name] = img
	return img, nil
}

// Missing returns the number of distinct sprites that failed to load.
func (l *Loader) Missing() int {
	return len(l.failed)
}

var images = NewLoader(DefaultRoot)

// SetRoot replaces the global loader with one reading from dir.
func SetRoot(dir string) {
	images = NewLoader(dir)
}

// Images returns the global loader.
func Images() *Loader {
	return images
}

// Sprite returns the named sprite from the global loader, or nil when it
// cannot be loaded. Callers treat nil as "draw nothing".
func Sprite(name string) *ebiten.Image {
	img, _ := images.Image(name)
	return img
}
