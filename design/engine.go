package design

import (
	"math"
	"math/rand"

	"sketchtostitch-me/models"
)

// Default sticker sizes at creation time, in stage units
const (
	defaultTemplateSize = 60
	defaultCustomSize   = 80
)

// clamp restricts v to [lo, hi]. When the interval is inverted (sticker
// larger than the region) it collapses to lo so the top-left corner never
// leaves the region.
func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	return math.Max(lo, math.Min(v, hi))
}

// ClampPosition constrains an absolute top-left corner so the full extent
// of a width×height rectangle stays inside the region.
func ClampPosition(region Region, x, y, width, height float64) (float64, float64) {
	cx := clamp(x, region.X, region.X+region.Width-width)
	cy := clamp(y, region.Y, region.Y+region.Height-height)
	return cx, cy
}

// ApplyDrag clamps the proposed absolute position for a drag and converts
// it back to region-relative coordinates. Width, height and rotation are
// untouched.
func ApplyDrag(region Region, sticker models.Sticker, proposed models.DragRequest) models.Sticker {
	x, y := ClampPosition(region, proposed.X, proposed.Y, sticker.Width, sticker.Height)
	sticker.X = x - region.X
	sticker.Y = y - region.Y
	return sticker
}

// ApplyTransform bakes transient scale factors into the sticker's stored
// width/height (floored at MinStickerSize), re-clamps the proposed absolute
// position using the new dimensions, and commits the rotation. The scale is
// reset to neutral by construction: only the resulting dimensions persist.
func ApplyTransform(region Region, sticker models.Sticker, t models.TransformRequest) models.Sticker {
	newWidth := math.Max(MinStickerSize, sticker.Width*t.ScaleX)
	newHeight := math.Max(MinStickerSize, sticker.Height*t.ScaleY)

	x, y := ClampPosition(region, t.X, t.Y, newWidth, newHeight)

	sticker.X = x - region.X
	sticker.Y = y - region.Y
	sticker.Width = newWidth
	sticker.Height = newHeight
	sticker.Rotation = t.Rotation
	return sticker
}

// BoundResize enforces the interactive resize constraint: proposals below
// the 20×20 floor or larger than the region in either dimension keep the
// prior frame's size. Returns the accepted dimensions and whether the
// proposal was applied.
func BoundResize(region Region, oldWidth, oldHeight, newWidth, newHeight float64) (float64, float64, bool) {
	if newWidth < MinStickerSize || newHeight < MinStickerSize {
		return oldWidth, oldHeight, false
	}
	if newWidth > region.Width || newHeight > region.Height {
		return oldWidth, oldHeight, false
	}
	return newWidth, newHeight, true
}

// DefaultPlacement returns the region-relative start position and size for
// a newly placed sticker. Templates spawn at a randomized offset, customs
// near the region origin; either way the result is clamped fully inside
// the region.
func DefaultPlacement(region Region, stickerType models.StickerType, rng *rand.Rand) (x, y, width, height float64) {
	switch stickerType {
	case models.StickerCustom:
		width, height = defaultCustomSize, defaultCustomSize
		x, y = 30, 30
	default:
		width, height = defaultTemplateSize, defaultTemplateSize
		x = 30 + rng.Float64()*60
		y = 30 + rng.Float64()*60
	}

	// Shrink first if the region is smaller than the default size, then
	// clamp the relative offset into the remaining range.
	width = math.Min(width, region.Width)
	height = math.Min(height, region.Height)
	x = clamp(x, 0, region.Width-width)
	y = clamp(y, 0, region.Height-height)
	return x, y, width, height
}

// ClampForRender clamps a sticker's geometry into its region for display
// only. Stored geometry that already violates the bounds (for example
// after a data-format change) is rendered clamped but deliberately not
// corrected in place.
func ClampForRender(region Region, sticker models.Sticker) models.Sticker {
	sticker.Width = math.Min(math.Max(sticker.Width, MinStickerSize), region.Width)
	sticker.Height = math.Min(math.Max(sticker.Height, MinStickerSize), region.Height)
	sticker.X = clamp(sticker.X, 0, region.Width-sticker.Width)
	sticker.Y = clamp(sticker.Y, 0, region.Height-sticker.Height)
	return sticker
}
