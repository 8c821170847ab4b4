package levels

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/levels/formats"
)

// testdataPath returns path to testdata/levels.
func testdataPath() string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(filename), "testdata", "levels")
}

func TestBuiltin(t *testing.T) {
	lvls := Builtin()
	require.NotEmpty(t, lvls)

	ids := make([]string, len(lvls))
	for i, l := range lvls {
		ids[i] = l.ID
		assert.NoError(t, l.Validate(), l.ID)
		assert.Empty(t, l.FilePath)
	}
	assert.IsIncreasing(t, ids)
	assert.Contains(t, ids, "prototype")
}

func TestBuiltinPrototypeLayout(t *testing.T) {
	var proto Level
	for _, l := range Builtin() {
		if l.ID == "prototype" {
			proto = l
		}
	}
	require.Equal(t, "prototype", proto.ID)
	require.Len(t, proto.Obstacles, 1)

	slab := proto.Obstacles[0]
	bb := cp.NewBBForExtents(slab.Center, slab.Width/2, slab.Height/2)
	assert.Equal(t, cp.BB{L: -50, B: -25, R: 50, T: -15}, bb)
	assert.Equal(t, core.ColorGreen, slab.Color)
	assert.Equal(t, cp.Vector{}, proto.Spawn)
	assert.Equal(t, -25-killMargin, proto.KillY, "default kill plane sits below the lowest edge")
}

func TestLoaderLoadAll(t *testing.T) {
	loader := NewLoader(testdataPath())

	lvls, err := loader.LoadAll()
	require.NoError(t, err)

	// broken.yaml is skipped, readme.txt ignored, nested/ walked.
	require.Len(t, lvls, 2)
	assert.Equal(t, "flat", lvls[0].ID)
	assert.Equal(t, "ledge", lvls[1].ID)
}

func TestLoaderLoadByID(t *testing.T) {
	loader := NewLoader(testdataPath())

	lvl, err := loader.LoadByID("ledge")
	require.NoError(t, err)

	assert.Equal(t, "ledge", lvl.Name, "name defaults to the id")
	assert.Equal(t, -40.0, lvl.KillY)
	assert.Equal(t, filepath.Join(testdataPath(), "nested", "ledge.yml"), lvl.FilePath)

	_, err = loader.LoadByID("missing")
	assert.Error(t, err)
}

func TestLoadFileRejectsInvalid(t *testing.T) {
	_, err := LoadFile(filepath.Join(testdataPath(), "broken.yaml"))
	assert.ErrorIs(t, err, ErrInvalidLevel)
	assert.ErrorContains(t, err, "broken.yaml")
}

func TestValidate(t *testing.T) {
	valid := Level{
		ID:        "ok",
		Spawn:     cp.Vector{Y: 10},
		KillY:     -50,
		Obstacles: []formats.Box{{Center: cp.Vector{}, Width: 10, Height: 2}},
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Level)
	}{
		{"missing id", func(l *Level) { l.ID = "" }},
		{"no obstacles", func(l *Level) { l.Obstacles = nil }},
		{"kill plane above spawn", func(l *Level) { l.KillY = 20 }},
		{"zero-width obstacle", func(l *Level) { l.Obstacles = []formats.Box{{Width: 0, Height: 1}} }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := valid
			tc.mutate(&l)
			assert.ErrorIs(t, l.Validate(), ErrInvalidLevel)
		})
	}
}

func TestBounds(t *testing.T) {
	l := Level{
		Spawn: cp.Vector{X: -70, Y: 5},
		Obstacles: []formats.Box{
			{Center: cp.Vector{Y: -20}, Width: 100, Height: 10},
			{Center: cp.Vector{X: 40, Y: 30}, Width: 10, Height: 10},
		},
	}

	assert.Equal(t, cp.BB{L: -70, B: -25, R: 50, T: 35}, l.Bounds())
}
