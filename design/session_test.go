package design

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sketchtostitch-me/models"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	return NewSession(25)
}

func TestSession_TotalPrice_SumsBaseAndStickers(t *testing.T) {
	s := newTestSession(t)
	assert.Equal(t, int64(25), s.TotalPrice())

	_, err := s.AddSticker(models.StickerTemplate, "cat.jpg", "Cat", 5, models.ViewFront)
	require.NoError(t, err)
	_, err = s.AddSticker(models.StickerTemplate, "rose.jpg", "Rose", 3, models.ViewBack)
	require.NoError(t, err)

	assert.Equal(t, int64(33), s.TotalPrice())
}

func TestSession_RemoveSticker_AdjustsTotal(t *testing.T) {
	s := newTestSession(t)
	cat, err := s.AddSticker(models.StickerTemplate, "cat.jpg", "Cat", 5, models.ViewFront)
	require.NoError(t, err)
	_, err = s.AddSticker(models.StickerTemplate, "rose.jpg", "Rose", 3, models.ViewFront)
	require.NoError(t, err)

	require.NoError(t, s.RemoveSticker(cat.ID))
	assert.Equal(t, int64(28), s.TotalPrice())
	assert.Len(t, s.Snapshot().Stickers, 1)
}

func TestSession_RemoveSticker_UnknownIDErrors(t *testing.T) {
	s := newTestSession(t)
	assert.Error(t, s.RemoveSticker("nope"))
}

func TestSession_RemoveSticker_RemovesExactlyOne(t *testing.T) {
	s := newTestSession(t)
	var ids []string
	for i := 0; i < 5; i++ {
		sticker, err := s.AddSticker(models.StickerTemplate, "cat.jpg", "Cat", 5, models.ViewFront)
		require.NoError(t, err)
		ids = append(ids, sticker.ID)
	}

	require.NoError(t, s.RemoveSticker(ids[2]))

	remaining := s.Snapshot().Stickers
	assert.Len(t, remaining, 4)
	for _, sticker := range remaining {
		assert.NotEqual(t, ids[2], sticker.ID)
	}
	// Order of the survivors is preserved
	assert.Equal(t, ids[0], remaining[0].ID)
	assert.Equal(t, ids[1], remaining[1].ID)
	assert.Equal(t, ids[3], remaining[2].ID)
	assert.Equal(t, ids[4], remaining[3].ID)
}

func TestSession_SetView_DoesNotMutateStickers(t *testing.T) {
	s := newTestSession(t)
	placed, err := s.AddSticker(models.StickerTemplate, "cat.jpg", "Cat", 5, models.ViewFront)
	require.NoError(t, err)

	require.NoError(t, s.SetView(models.ViewBack))
	require.NoError(t, s.SetView(models.ViewLeft))
	require.NoError(t, s.SetView(models.ViewFront))

	after := s.Snapshot().Stickers
	require.Len(t, after, 1)
	assert.Equal(t, placed, after[0])
}

func TestSession_SetView_RejectsInvalid(t *testing.T) {
	s := newTestSession(t)
	assert.Error(t, s.SetView("diagonal"))
	assert.Equal(t, models.ViewFront, s.CurrentView())
}

func TestSession_SetColor(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.SetColor("#dc2626"))
	assert.Equal(t, "#dc2626", s.Snapshot().GarmentColor)

	assert.Error(t, s.SetColor("red"))
	assert.Error(t, s.SetColor(""))
}

func TestSession_Select_AndClear(t *testing.T) {
	s := newTestSession(t)
	sticker, err := s.AddSticker(models.StickerTemplate, "cat.jpg", "Cat", 5, models.ViewFront)
	require.NoError(t, err)

	require.NoError(t, s.Select(sticker.ID))
	assert.Equal(t, sticker.ID, s.SelectedID())

	// Background click clears the selection
	require.NoError(t, s.Select(""))
	assert.Equal(t, "", s.SelectedID())

	assert.Error(t, s.Select("nope"))
}

func TestSession_RemoveSelected(t *testing.T) {
	s := newTestSession(t)

	// Delete with no selection is a no-op
	id, removed := s.RemoveSelected()
	assert.False(t, removed)
	assert.Equal(t, "", id)

	sticker, err := s.AddSticker(models.StickerTemplate, "cat.jpg", "Cat", 5, models.ViewFront)
	require.NoError(t, err)
	require.NoError(t, s.Select(sticker.ID))

	id, removed = s.RemoveSelected()
	assert.True(t, removed)
	assert.Equal(t, sticker.ID, id)
	assert.Equal(t, "", s.SelectedID())
	assert.Empty(t, s.Snapshot().Stickers)
}

func TestSession_RemoveSticker_ClearsMatchingSelection(t *testing.T) {
	s := newTestSession(t)
	sticker, err := s.AddSticker(models.StickerTemplate, "cat.jpg", "Cat", 5, models.ViewFront)
	require.NoError(t, err)
	require.NoError(t, s.Select(sticker.ID))

	require.NoError(t, s.RemoveSticker(sticker.ID))
	assert.Equal(t, "", s.SelectedID())
}

func TestSession_Clear_ResetsColorKeepsView(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.SetColor("#000000"))
	require.NoError(t, s.SetView(models.ViewBack))
	_, err := s.AddSticker(models.StickerTemplate, "cat.jpg", "Cat", 5, models.ViewFront)
	require.NoError(t, err)

	s.Clear()

	snapshot := s.Snapshot()
	assert.Empty(t, snapshot.Stickers)
	assert.Equal(t, DefaultGarmentColor, snapshot.GarmentColor)
	assert.Equal(t, models.ViewBack, snapshot.CurrentView)
	assert.Equal(t, int64(25), snapshot.TotalPrice)
}

func TestSession_AddSticker_PlacementInsideRegion(t *testing.T) {
	s := newTestSession(t)

	for i := 0; i < 50; i++ {
		sticker, err := s.AddSticker(models.StickerTemplate, "cat.jpg", "Cat", 5, models.ViewRight)
		require.NoError(t, err)
		region := RegionFor(models.ViewRight, 500, 500)
		assert.True(t, region.Contains(sticker.X, sticker.Y, sticker.Width, sticker.Height))
	}
}

func TestSession_AddSticker_UniqueIDs(t *testing.T) {
	s := newTestSession(t)
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		sticker, err := s.AddSticker(models.StickerTemplate, "cat.jpg", "Cat", 5, models.ViewFront)
		require.NoError(t, err)
		assert.False(t, seen[sticker.ID], "duplicate sticker id %s", sticker.ID)
		seen[sticker.ID] = true
	}
}

func TestSession_DragSticker_ClampsAtBoundary(t *testing.T) {
	s := newTestSession(t)
	sticker, err := s.AddSticker(models.StickerTemplate, "cat.jpg", "Cat", 5, models.ViewFront)
	require.NoError(t, err)

	region := RegionFor(models.ViewFront, 500, 500)
	updated, err := s.DragSticker(sticker.ID, models.DragRequest{X: region.X + 200, Y: region.Y + 300})
	require.NoError(t, err)

	assert.Equal(t, region.Width-sticker.Width, updated.X)
	assert.Equal(t, region.Height-sticker.Height, updated.Y)
}

func TestSession_TransformSticker_RejectedSizeKeepsDimensions(t *testing.T) {
	s := newTestSession(t)
	sticker, err := s.AddSticker(models.StickerTemplate, "cat.jpg", "Cat", 5, models.ViewFront)
	require.NoError(t, err)

	region := RegionFor(models.ViewFront, 500, 500)
	updated, err := s.TransformSticker(sticker.ID, models.TransformRequest{
		ScaleX:   0.1,
		ScaleY:   0.1,
		Rotation: 45,
		X:        region.X + sticker.X,
		Y:        region.Y + sticker.Y,
	})
	require.NoError(t, err)

	// Dimensions unchanged, rotation still committed
	assert.Equal(t, sticker.Width, updated.Width)
	assert.Equal(t, sticker.Height, updated.Height)
	assert.Equal(t, 45.0, updated.Rotation)
}

func TestSession_Snapshot_IsolatedFromMutations(t *testing.T) {
	s := newTestSession(t)
	_, err := s.AddSticker(models.StickerTemplate, "cat.jpg", "Cat", 5, models.ViewFront)
	require.NoError(t, err)

	snapshot := s.Snapshot()
	_, err = s.AddSticker(models.StickerTemplate, "rose.jpg", "Rose", 3, models.ViewFront)
	require.NoError(t, err)

	assert.Len(t, snapshot.Stickers, 1)
	assert.Equal(t, int64(30), snapshot.TotalPrice)
}
