package graphrender

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kegliz/graphstate/graphsim"
)

func TestRenderProducesNonEmptyImage(t *testing.T) {
	g := graphsim.NewSeeded(3, 1)
	g.H(0)
	g.CZ(0, 1)
	g.CZ(1, 2)

	img, err := New(60).Render(g)
	require.NoError(t, err)

	bounds := img.Bounds()
	assert.Greater(t, bounds.Dx(), 0)
	assert.Greater(t, bounds.Dy(), 0)
}

func TestRenderRejectsEmptyGraph(t *testing.T) {
	g := graphsim.NewSeeded(0, 1)
	_, err := New(60).Render(g)
	assert.Error(t, err)
}
