package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sketchtostitch-me/models"
	"sketchtostitch-me/pricing"
)

// mockDriveService is a hand-rolled DriveServiceInterface for tests
type mockDriveService struct {
	designs []models.CatalogDesign
	err     error
}

func (m *mockDriveService) ListCatalogDesigns(folderID string) ([]models.CatalogDesign, error) {
	return m.designs, m.err
}

func (m *mockDriveService) DownloadImage(fileID string) ([]byte, error) {
	return nil, nil
}

func TestCatalogService_GetCatalog_BuiltinOnly(t *testing.T) {
	pricing.ResetForTest()
	t.Cleanup(pricing.ResetForTest)

	s := NewCatalogService(nil, nil, "")
	catalog, err := s.GetCatalog(context.Background())
	require.NoError(t, err)

	require.Len(t, catalog.Categories, 3)
	assert.Equal(t, "Animals", catalog.Categories[0].Name)
	assert.Equal(t, "Nature", catalog.Categories[1].Name)
	assert.Equal(t, "Symbols", catalog.Categories[2].Name)

	animals := catalog.Categories[0].Designs
	require.Len(t, animals, 3)
	assert.Equal(t, "Cat", animals[0].Name)
	assert.Equal(t, int64(5), animals[0].Price)
	assert.Equal(t, "Bird", animals[2].Name)
	assert.Equal(t, int64(4), animals[2].Price)
}

func TestCatalogService_GetCatalog_MergesDriveSource(t *testing.T) {
	pricing.ResetForTest()
	t.Cleanup(pricing.ResetForTest)

	drive := &mockDriveService{designs: []models.CatalogDesign{
		{Src: "https://drive.google.com/uc?id=abc", Name: "Dragon", Price: 4, Category: "Community"},
	}}

	s := NewCatalogService(nil, drive, "folder-1")
	catalog, err := s.GetCatalog(context.Background())
	require.NoError(t, err)

	require.Len(t, catalog.Categories, 4)
	community := catalog.Categories[3]
	assert.Equal(t, "Community", community.Name)
	require.Len(t, community.Designs, 1)
	assert.Equal(t, "Dragon", community.Designs[0].Name)
	assert.Equal(t, 2001, community.Designs[0].ID)
}

func TestCatalogService_GetCatalog_DriveFailureKeepsBuiltin(t *testing.T) {
	pricing.ResetForTest()
	t.Cleanup(pricing.ResetForTest)

	drive := &mockDriveService{err: assert.AnError}
	s := NewCatalogService(nil, drive, "folder-1")

	catalog, err := s.GetCatalog(context.Background())
	require.NoError(t, err)
	assert.Len(t, catalog.Categories, 3)
}

func TestCatalogService_FindDesign_Builtin(t *testing.T) {
	pricing.ResetForTest()
	t.Cleanup(pricing.ResetForTest)

	s := NewCatalogService(nil, nil, "")

	design, err := s.FindDesign(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Cat", design.Name)
	assert.Equal(t, int64(5), design.Price)

	_, err = s.FindDesign(context.Background(), 99)
	assert.Error(t, err)
}

func TestCatalogService_FindDesign_PricebookOverride(t *testing.T) {
	pricing.ResetForTest()
	t.Cleanup(pricing.ResetForTest)
	pricing.NewDefaultEngine()

	s := NewCatalogService(nil, nil, "")
	design, err := s.FindDesign(context.Background(), 1)
	require.NoError(t, err)
	// Default config has no pricebook entry: catalog price stands
	assert.Equal(t, int64(5), design.Price)
}

func TestCatalogService_FindDesign_DriveRange(t *testing.T) {
	pricing.ResetForTest()
	t.Cleanup(pricing.ResetForTest)

	drive := &mockDriveService{designs: []models.CatalogDesign{
		{Name: "Dragon", Price: 4, Category: "Community"},
	}}
	s := NewCatalogService(nil, drive, "folder-1")

	design, err := s.FindDesign(context.Background(), 2001)
	require.NoError(t, err)
	assert.Equal(t, "Dragon", design.Name)
	assert.Equal(t, 2001, design.ID)

	_, err = s.FindDesign(context.Background(), 2002)
	assert.Error(t, err)
}

func TestCatalogService_FindDesign_NoSourceConfigured(t *testing.T) {
	pricing.ResetForTest()
	t.Cleanup(pricing.ResetForTest)

	s := NewCatalogService(nil, nil, "")

	_, err := s.FindDesign(context.Background(), 1001)
	assert.Error(t, err)
	_, err = s.FindDesign(context.Background(), 2001)
	assert.Error(t, err)
}

func TestCatalogService_Colors(t *testing.T) {
	s := NewCatalogService(nil, nil, "")
	colors := s.Colors()

	assert.Len(t, colors, 15)
	assert.Equal(t, models.ColorOption{Name: "White", Value: "#ffffff"}, colors[0])
	for _, color := range colors {
		assert.True(t, len(color.Value) == 7 && color.Value[0] == '#', "bad color value %q", color.Value)
	}
}
