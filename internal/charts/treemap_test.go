package charts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/botscope/internal/models"
)

func TestSquarifyAreasProportional(t *testing.T) {
	bounds := Rect{X: 0, Y: 0, W: 100, H: 100}
	sizes := []float64{6, 3, 1}

	cells := Squarify(sizes, bounds)
	require.Len(t, cells, 3)

	assert.InDelta(t, 6000.0, cells[0].W*cells[0].H, 1e-6)
	assert.InDelta(t, 3000.0, cells[1].W*cells[1].H, 1e-6)
	assert.InDelta(t, 1000.0, cells[2].W*cells[2].H, 1e-6)
}

func TestSquarifyCellsWithinBounds(t *testing.T) {
	bounds := Rect{X: 10, Y: 20, W: 300, H: 200}
	sizes := []float64{10, 8, 6, 5, 4, 3, 2, 2, 1, 1}

	for _, cell := range Squarify(sizes, bounds) {
		assert.GreaterOrEqual(t, cell.X, bounds.X-1e-6)
		assert.GreaterOrEqual(t, cell.Y, bounds.Y-1e-6)
		assert.LessOrEqual(t, cell.X+cell.W, bounds.X+bounds.W+1e-6)
		assert.LessOrEqual(t, cell.Y+cell.H, bounds.Y+bounds.H+1e-6)
	}
}

func TestSquarifyDegenerateInput(t *testing.T) {
	assert.Empty(t, Squarify(nil, Rect{W: 100, H: 100}))

	cells := Squarify([]float64{0, 0}, Rect{W: 100, H: 100})
	assert.Len(t, cells, 2)
}

func TestRenderTokenTreemap(t *testing.T) {
	stats := []models.TokenStat{
		{Token: "impeach", Count: 30, Pct: 0.5, Rank: 1},
		{Token: "trump", Count: 18, Pct: 0.3, Rank: 2},
		{Token: "senate", Count: 12, Pct: 0.2, Rank: 3},
	}

	path := filepath.Join(t.TempDir(), "wordcloud.png")
	require.NoError(t, RenderTokenTreemap("Word Cloud for Community 0 (n=60)", stats, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRenderTokenTreemapEmpty(t *testing.T) {
	err := RenderTokenTreemap("empty", nil, filepath.Join(t.TempDir(), "x.png"))
	assert.Error(t, err)
}
