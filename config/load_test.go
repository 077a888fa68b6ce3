package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// snapshot restores the tuning globals after a test mutates them.
func snapshot(t *testing.T) {
	t.Helper()
	physics, launch, destruction := Physics, Launch, Destruction
	respawn, projectile := Respawn, Projectile
	t.Cleanup(func() {
		Physics, Launch, Destruction = physics, launch, destruction
		Respawn, Projectile = respawn, projectile
	})
}

func TestDefaults(t *testing.T) {
	require.NoError(t, Validate())
	assert.Equal(t, 800.0, Destruction.Steel)
	assert.Equal(t, 600.0, Destruction.Wood)
	assert.Equal(t, 600.0, Destruction.InvisibleSupport)
	assert.Equal(t, 600.0, Destruction.Target)
	assert.Equal(t, 50.0, Launch.PickRadius)
	assert.Equal(t, 15.0, Launch.ImpulseScale)
	assert.Equal(t, 2.0, Respawn.Delay)
	assert.InDelta(t, -980.0, Physics.Gravity.Y, 1e-9)
}

func TestApplyOverlaysOnlyPresentKeys(t *testing.T) {
	snapshot(t)

	err := Apply([]byte(`
destruction:
  steel: 900
launch:
  impulseScale: 12.5
`))
	require.NoError(t, err)
	assert.Equal(t, 900.0, Destruction.Steel)
	assert.Equal(t, 600.0, Destruction.Wood)
	assert.Equal(t, 12.5, Launch.ImpulseScale)
	assert.Equal(t, 50.0, Launch.PickRadius)
}

func TestApplyRejectsInvalidValues(t *testing.T) {
	snapshot(t)

	err := Apply([]byte("respawn:\n  delay: 0\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "respawn.delay")
}

func TestApplyRejectedDocumentChangesNothing(t *testing.T) {
	snapshot(t)
	before := current()

	err := Apply([]byte(`
destruction:
  steel: 950
launch:
  pickRadius: -1
`))
	require.Error(t, err)
	assert.Equal(t, before, current())
	assert.Equal(t, 800.0, Destruction.Steel)
}

func TestValidateReportsThresholdsInOrder(t *testing.T) {
	snapshot(t)
	doc := current()
	doc.Destruction = DestructionConfig{}

	for range 5 {
		err := doc.validate()
		require.Error(t, err)
		assert.Equal(t, "destruction.steel must be positive, got 0\n"+
			"destruction.wood must be positive, got 0\n"+
			"destruction.invisibleSupport must be positive, got 0\n"+
			"destruction.target must be positive, got 0", err.Error())
	}
}

func TestApplyRejectsMalformedYAML(t *testing.T) {
	snapshot(t)

	err := Apply([]byte("launch: [1, 2"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse yaml")
}

func TestLoadFile(t *testing.T) {
	snapshot(t)

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("world:\n  anchor: {x: -250, y: -200}\n"), 0o600))
	snapWorld := World
	t.Cleanup(func() { World = snapWorld })

	require.NoError(t, LoadFile(path))
	assert.Equal(t, -250.0, World.Anchor.X)
	assert.Equal(t, -200.0, World.Anchor.Y)

	err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
