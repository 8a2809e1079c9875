package design

import (
	"sketchtostitch-me/models"
)

// Garment silhouette dimensions in stage units. The silhouette is drawn
// centered on the stage; the printable design region sits inside it at a
// fixed offset that depends on the view.
const (
	SilhouetteWidth  = 300
	SilhouetteHeight = 360
)

// MinStickerSize is the floor for sticker width and height, enforced on
// both resize and programmatic creation.
const MinStickerSize = 20

// Region is the axis-aligned rectangle (absolute stage coordinates) within
// which stickers may be placed for a given view.
type Region struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// RegionFor returns the design region for a view on a stage of the given
// size. Front and back share the wide chest panel; left and right use the
// narrower side panel. The lookup is deterministic and has no side effects.
func RegionFor(view models.View, stageWidth, stageHeight float64) Region {
	baseX := (stageWidth - SilhouetteWidth) / 2
	baseY := (stageHeight - SilhouetteHeight) / 2

	switch view {
	case models.ViewLeft, models.ViewRight:
		return Region{
			X:      baseX + 110,
			Y:      baseY + 90,
			Width:  80,
			Height: 160,
		}
	default: // front, back
		return Region{
			X:      baseX + 90,
			Y:      baseY + 90,
			Width:  120,
			Height: 160,
		}
	}
}

// Contains reports whether a rectangle at region-relative position (x, y)
// with the given size lies fully inside the region.
func (r Region) Contains(x, y, width, height float64) bool {
	return x >= 0 && y >= 0 && x+width <= r.Width && y+height <= r.Height
}
