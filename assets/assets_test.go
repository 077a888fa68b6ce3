package assets

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissingImageIsNilAndCached(t *testing.T) {
	l := NewLoader(t.TempDir())

	img, err := l.Image("bird_red.png")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Nil(t, img)

	_, again := l.Image("bird_red.png")
	assert.Same(t, err, again)
	assert.Equal(t, 1, l.Missing())
}

func TestSpriteFallsBackToNil(t *testing.T) {
	prev := images
	defer func() { images = prev }()

	SetRoot(t.TempDir())
	assert.Nil(t, Sprite("pig_green.png"))
	assert.Equal(t, 1, Images().Missing())
}

func TestEmptyRootLoadsNothing(t *testing.T) {
	l := NewLoader("")
	img, err := l.Image("slingshot.png")
	assert.ErrorIs(t, err, ErrNoRoot)
	assert.Nil(t, img)
	assert.Zero(t, l.Missing(), "disabled loading is not a missing sprite")
}
