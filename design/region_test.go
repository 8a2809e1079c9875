package design

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sketchtostitch-me/models"
)

func TestRegionFor_FrontBackShareChestPanel(t *testing.T) {
	front := RegionFor(models.ViewFront, 500, 500)
	back := RegionFor(models.ViewBack, 500, 500)

	assert.Equal(t, front, back)
	assert.Equal(t, 120.0, front.Width)
	assert.Equal(t, 160.0, front.Height)

	// Stage 500x500 centers the 300x360 silhouette at (100, 70); the chest
	// panel sits 90 further in on both axes.
	assert.Equal(t, 190.0, front.X)
	assert.Equal(t, 160.0, front.Y)
}

func TestRegionFor_SideViewsUseNarrowPanel(t *testing.T) {
	left := RegionFor(models.ViewLeft, 500, 500)
	right := RegionFor(models.ViewRight, 500, 500)

	assert.Equal(t, left, right)
	assert.Equal(t, 80.0, left.Width)
	assert.Equal(t, 160.0, left.Height)
	assert.Equal(t, 210.0, left.X)
	assert.Equal(t, 160.0, left.Y)
}

func TestRegion_Contains(t *testing.T) {
	region := Region{X: 100, Y: 100, Width: 120, Height: 160}

	assert.True(t, region.Contains(0, 0, 120, 160))
	assert.True(t, region.Contains(30, 30, 60, 60))
	assert.False(t, region.Contains(-1, 0, 60, 60))
	assert.False(t, region.Contains(61, 0, 60, 60))
	assert.False(t, region.Contains(0, 101, 60, 60))
}
