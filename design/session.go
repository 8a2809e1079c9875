package design

import (
	"fmt"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"sketchtostitch-me/models"
)

// DefaultGarmentColor is the color a fresh or cleared design starts with
const DefaultGarmentColor = "#ffffff"

// Default stage size used when the caller does not provide one
const (
	defaultStageWidth  = 500
	defaultStageHeight = 500
)

// Session owns the mutable design state: garment color, active view and
// the ordered sticker sequence. All mutations funnel through its methods;
// sticker slices are replaced, never aliased, so snapshots handed out to
// callers stay consistent.
type Session struct {
	mu          sync.Mutex
	stageWidth  float64
	stageHeight float64

	garmentColor string
	currentView  models.View
	stickers     []models.Sticker
	selectedID   string

	basePrice int64
	rng       *rand.Rand
}

// NewSession creates a design session with the default color, the front
// view and an empty sticker sequence.
func NewSession(basePrice int64) *Session {
	return &Session{
		stageWidth:   defaultStageWidth,
		stageHeight:  defaultStageHeight,
		garmentColor: DefaultGarmentColor,
		currentView:  models.ViewFront,
		basePrice:    basePrice,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// newStickerID generates an opaque id unique within the session, derived
// from the current timestamp plus a random suffix.
func (s *Session) newStickerID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10) + strconv.FormatInt(s.rng.Int63n(1<<45), 36)
}

// Region returns the design region for the currently active view
func (s *Session) Region() Region {
	s.mu.Lock()
	defer s.mu.Unlock()
	return RegionFor(s.currentView, s.stageWidth, s.stageHeight)
}

// regionFor is the unlocked region lookup used by mutators
func (s *Session) regionFor(view models.View) Region {
	return RegionFor(view, s.stageWidth, s.stageHeight)
}

// Snapshot returns a read-only copy of the session state, including the
// derived total price.
func (s *Session) Snapshot() models.DesignSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	stickers := make([]models.Sticker, len(s.stickers))
	copy(stickers, s.stickers)

	return models.DesignSnapshot{
		GarmentColor: s.garmentColor,
		CurrentView:  s.currentView,
		Stickers:     stickers,
		SelectedID:   s.selectedID,
		BasePrice:    s.basePrice,
		TotalPrice:   s.totalPriceLocked(),
	}
}

// TotalPrice returns basePrice + the sum of all sticker prices
func (s *Session) TotalPrice() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalPriceLocked()
}

func (s *Session) totalPriceLocked() int64 {
	total := s.basePrice
	for _, sticker := range s.stickers {
		total += sticker.Price
	}
	return total
}

// BasePrice returns the fixed garment base price
func (s *Session) BasePrice() int64 {
	return s.basePrice
}

// SetColor changes the garment color
func (s *Session) SetColor(color string) error {
	if len(color) == 0 || color[0] != '#' {
		return fmt.Errorf("invalid color %q: expected hex string", color)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.garmentColor = color
	return nil
}

// SetView switches the active view. Stickers bound to other views persist
// unchanged; only visibility changes.
func (s *Session) SetView(view models.View) error {
	if !view.IsValid() {
		return fmt.Errorf("invalid view %q", view)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentView = view
	return nil
}

// CurrentView returns the active view
func (s *Session) CurrentView() models.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentView
}

// AddSticker places a new sticker on the given view. The caller provides
// type, image source, display name and price; the session assigns the id
// and a default start position guaranteed to lie fully inside the view's
// design region.
func (s *Session) AddSticker(stickerType models.StickerType, src, name string, price int64, view models.View) (models.Sticker, error) {
	if !view.IsValid() {
		return models.Sticker{}, fmt.Errorf("invalid view %q", view)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	region := s.regionFor(view)
	x, y, width, height := DefaultPlacement(region, stickerType, s.rng)

	sticker := models.Sticker{
		ID:       s.newStickerID(),
		Type:     stickerType,
		Src:      src,
		X:        x,
		Y:        y,
		Width:    width,
		Height:   height,
		Rotation: 0,
		Price:    price,
		Name:     name,
		View:     view,
	}

	next := make([]models.Sticker, len(s.stickers), len(s.stickers)+1)
	copy(next, s.stickers)
	s.stickers = append(next, sticker)
	return sticker, nil
}

// findLocked returns the index of the sticker with the given id, or -1
func (s *Session) findLocked(id string) int {
	for i := range s.stickers {
		if s.stickers[i].ID == id {
			return i
		}
	}
	return -1
}

// replaceLocked swaps the sticker at index i for updated, replacing the
// backing slice so previously returned snapshots are unaffected.
func (s *Session) replaceLocked(i int, updated models.Sticker) {
	next := make([]models.Sticker, len(s.stickers))
	copy(next, s.stickers)
	next[i] = updated
	s.stickers = next
}

// UpdateSticker applies a partial geometry update to an existing sticker
func (s *Session) UpdateSticker(id string, update models.StickerUpdate) (models.Sticker, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findLocked(id)
	if i < 0 {
		return models.Sticker{}, fmt.Errorf("sticker %s not found", id)
	}

	sticker := s.stickers[i]
	if update.X != nil {
		sticker.X = *update.X
	}
	if update.Y != nil {
		sticker.Y = *update.Y
	}
	if update.Width != nil {
		sticker.Width = *update.Width
	}
	if update.Height != nil {
		sticker.Height = *update.Height
	}
	if update.Rotation != nil {
		sticker.Rotation = *update.Rotation
	}

	s.replaceLocked(i, sticker)
	return sticker, nil
}

// DragSticker clamps the proposed absolute position so the sticker's full
// extent stays inside its view's design region, then commits the resulting
// region-relative coordinates.
func (s *Session) DragSticker(id string, proposed models.DragRequest) (models.Sticker, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findLocked(id)
	if i < 0 {
		return models.Sticker{}, fmt.Errorf("sticker %s not found", id)
	}

	region := s.regionFor(s.stickers[i].View)
	updated := ApplyDrag(region, s.stickers[i], proposed)
	s.replaceLocked(i, updated)
	return updated, nil
}

// TransformSticker bakes the transient scale into width/height, re-clamps
// the position with the new dimensions and commits the rotation. Proposals
// that would take the sticker below 20×20 or beyond the region's size keep
// the prior dimensions.
func (s *Session) TransformSticker(id string, t models.TransformRequest) (models.Sticker, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findLocked(id)
	if i < 0 {
		return models.Sticker{}, fmt.Errorf("sticker %s not found", id)
	}

	sticker := s.stickers[i]
	region := s.regionFor(sticker.View)

	proposedWidth := sticker.Width * t.ScaleX
	proposedHeight := sticker.Height * t.ScaleY
	if _, _, ok := BoundResize(region, sticker.Width, sticker.Height, proposedWidth, proposedHeight); !ok {
		// Size rejected: keep prior dimensions, still clamp the position
		// and commit the rotation.
		t.ScaleX, t.ScaleY = 1, 1
	}

	updated := ApplyTransform(region, sticker, t)
	s.replaceLocked(i, updated)
	return updated, nil
}

// Select marks a sticker as the single selected one. An empty target (a
// click on the background or the garment silhouette) clears the selection.
func (s *Session) Select(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == "" {
		s.selectedID = ""
		return nil
	}
	if s.findLocked(id) < 0 {
		return fmt.Errorf("sticker %s not found", id)
	}
	s.selectedID = id
	return nil
}

// Deselect clears the selection
func (s *Session) Deselect() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedID = ""
}

// SelectedID returns the id of the selected sticker, or "" when none
func (s *Session) SelectedID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedID
}

// RemoveSticker removes exactly one sticker by id, clearing the selection
// if it pointed at the removed sticker.
func (s *Session) RemoveSticker(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findLocked(id)
	if i < 0 {
		return fmt.Errorf("sticker %s not found", id)
	}

	next := make([]models.Sticker, 0, len(s.stickers)-1)
	next = append(next, s.stickers[:i]...)
	next = append(next, s.stickers[i+1:]...)
	s.stickers = next

	if s.selectedID == id {
		s.selectedID = ""
	}
	return nil
}

// RemoveSelected removes the currently selected sticker, if any. Returns
// the removed id and whether anything was removed; a delete signal with no
// selection is a no-op.
func (s *Session) RemoveSelected() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.selectedID
	if id == "" {
		return "", false
	}
	i := s.findLocked(id)
	if i < 0 {
		s.selectedID = ""
		return "", false
	}

	next := make([]models.Sticker, 0, len(s.stickers)-1)
	next = append(next, s.stickers[:i]...)
	next = append(next, s.stickers[i+1:]...)
	s.stickers = next
	s.selectedID = ""
	return id, true
}

// Clear resets the session to an empty sticker sequence and the default
// garment color. The active view is kept.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stickers = nil
	s.selectedID = ""
	s.garmentColor = DefaultGarmentColor
}
