package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

type stubGame struct {
	id  string
	cfg config.Config
}

func (g *stubGame) ID() string                                    { return g.id }
func (g *stubGame) Title() string                                 { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig)                      {}
func (g *stubGame) Step(float64, core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                           {}
func (g *stubGame) State() core.GameState                         { return core.GameState{} }

func stubFactory(id string) Factory {
	return func(cfg config.Config) (Game, error) {
		return &stubGame{id: id, cfg: cfg}, nil
	}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("test-alpha", "Alpha", stubFactory("test-alpha"))

	require.True(t, Exists("test-alpha"))
	assert.Contains(t, List(), GameInfo{ID: "test-alpha", Title: "Alpha"})

	cfg := config.Default()
	cfg.Physics.RunSpeed = 77
	g, err := Create("test-alpha", cfg)
	require.NoError(t, err)
	assert.Equal(t, "test-alpha", g.ID())
	assert.Equal(t, 77.0, g.(*stubGame).cfg.Physics.RunSpeed)
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test-dup", "Dup", stubFactory("test-dup"))

	assert.Panics(t, func() {
		Register("test-dup", "Dup again", stubFactory("test-dup"))
	})
	assert.Error(t, TryRegister("test-dup", "Dup again", stubFactory("test-dup")))
	assert.Error(t, TryRegister("", "Empty", stubFactory("")))
}

func TestCreateErrors(t *testing.T) {
	_, err := Create("test-missing", config.Default())
	assert.Error(t, err)
	assert.False(t, Exists("test-missing"))

	boom := errors.New("boom")
	require.NoError(t, TryRegister("test-failing", "Failing", func(config.Config) (Game, error) {
		return nil, boom
	}))
	_, err = Create("test-failing", config.Default())
	assert.ErrorIs(t, err, boom)
}

func TestListSorted(t *testing.T) {
	require.NoError(t, TryRegister("test-zz", "ZZ", stubFactory("test-zz")))
	require.NoError(t, TryRegister("test-aa", "AA", stubFactory("test-aa")))

	list := List()
	ids := make([]string, len(list))
	for i, info := range list {
		ids[i] = info.ID
	}
	assert.IsIncreasing(t, ids)
}
