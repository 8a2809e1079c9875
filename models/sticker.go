package models

// View identifies one of the four garment perspectives
type View string

const (
	ViewFront View = "front"
	ViewBack  View = "back"
	ViewLeft  View = "left"
	ViewRight View = "right"
)

// IsValid reports whether the view is one of the four garment perspectives
func (v View) IsValid() bool {
	switch v {
	case ViewFront, ViewBack, ViewLeft, ViewRight:
		return true
	}
	return false
}

// StickerType distinguishes catalog designs from user uploads
type StickerType string

const (
	StickerTemplate StickerType = "template"
	StickerCustom   StickerType = "custom"
)

// Sticker represents a decorative element placed on the garment.
// X and Y are relative to the design region origin of the sticker's view.
// Insertion order in the session is the z-order used for rendering.
type Sticker struct {
	ID       string      `json:"id"`
	Type     StickerType `json:"type"`
	Src      string      `json:"src"` // image URL or data URI
	X        float64     `json:"x"`
	Y        float64     `json:"y"`
	Width    float64     `json:"width"`
	Height   float64     `json:"height"`
	Rotation float64     `json:"rotation"` // degrees
	Price    int64       `json:"price"`
	Name     string      `json:"name"`
	View     View        `json:"view"`
}

// StickerUpdate carries a partial geometry update for an existing sticker.
// Nil fields are left untouched.
type StickerUpdate struct {
	X        *float64 `json:"x,omitempty"`
	Y        *float64 `json:"y,omitempty"`
	Width    *float64 `json:"width,omitempty"`
	Height   *float64 `json:"height,omitempty"`
	Rotation *float64 `json:"rotation,omitempty"`
}

// PlaceStickerRequest represents the request body for placing a sticker
// Example: {"designId": 3, "view": "front"}
// For custom uploads the src/name/price come from the upload step instead of designId.
type PlaceStickerRequest struct {
	DesignID int    `json:"designId,omitempty"`
	Src      string `json:"src,omitempty"`
	Name     string `json:"name,omitempty"`
	View     View   `json:"view"`
}

// DragRequest represents the proposed absolute top-left position at the end of a drag
// Example: {"x": 250.5, "y": 180}
type DragRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// TransformRequest represents the transient scale/rotation applied by a resize handle.
// Scale factors are baked into width/height and never persisted.
// Example: {"scaleX": 1.4, "scaleY": 1.4, "rotation": 15, "x": 250.5, "y": 180}
type TransformRequest struct {
	ScaleX   float64 `json:"scaleX"`
	ScaleY   float64 `json:"scaleY"`
	Rotation float64 `json:"rotation"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
}
