package service

import (
	"context"
	"fmt"
	"log"

	"sketchtostitch-me/models"
	"sketchtostitch-me/pricing"
	"sketchtostitch-me/repository"
)

// ID ranges for merged catalog sources. Built-in designs stay below the
// database offset; Drive designs above both.
const (
	dbIDOffset    = 1000
	driveIDOffset = 2000
)

// builtinCategories is the fixed in-memory template catalog
var builtinCategories = []models.CatalogCategory{
	{
		Name: "Animals",
		Designs: []models.CatalogDesign{
			{ID: 1, Src: "https://images.pexels.com/photos/45201/kitty-cat-kitten-pet-45201.jpeg?auto=compress&cs=tinysrgb&w=100&h=100&fit=crop", Name: "Cat", Price: 5, Category: "Animals"},
			{ID: 2, Src: "https://images.pexels.com/photos/1108099/pexels-photo-1108099.jpeg?auto=compress&cs=tinysrgb&w=100&h=100&fit=crop", Name: "Dog", Price: 5, Category: "Animals"},
			{ID: 3, Src: "https://images.pexels.com/photos/326900/pexels-photo-326900.jpeg?auto=compress&cs=tinysrgb&w=100&h=100&fit=crop", Name: "Bird", Price: 4, Category: "Animals"},
		},
	},
	{
		Name: "Nature",
		Designs: []models.CatalogDesign{
			{ID: 4, Src: "https://images.pexels.com/photos/56866/garden-rose-red-pink-56866.jpeg?auto=compress&cs=tinysrgb&w=100&h=100&fit=crop", Name: "Rose", Price: 3, Category: "Nature"},
			{ID: 5, Src: "https://images.pexels.com/photos/414612/pexels-photo-414612.jpeg?auto=compress&cs=tinysrgb&w=100&h=100&fit=crop", Name: "Tree", Price: 4, Category: "Nature"},
			{ID: 6, Src: "https://images.pexels.com/photos/158251/forest-the-sun-morning-tucholskie-158251.jpeg?auto=compress&cs=tinysrgb&w=100&h=100&fit=crop", Name: "Forest", Price: 6, Category: "Nature"},
		},
	},
	{
		Name: "Symbols",
		Designs: []models.CatalogDesign{
			{ID: 7, Src: "https://images.pexels.com/photos/1166644/pexels-photo-1166644.jpeg?auto=compress&cs=tinysrgb&w=100&h=100&fit=crop", Name: "Heart", Price: 2, Category: "Symbols"},
			{ID: 8, Src: "https://images.pexels.com/photos/1166644/pexels-photo-1166644.jpeg?auto=compress&cs=tinysrgb&w=100&h=100&fit=crop", Name: "Star", Price: 2, Category: "Symbols"},
			{ID: 9, Src: "https://images.pexels.com/photos/1166644/pexels-photo-1166644.jpeg?auto=compress&cs=tinysrgb&w=100&h=100&fit=crop", Name: "Lightning", Price: 3, Category: "Symbols"},
		},
	},
}

// garmentColors is the fixed garment color palette
var garmentColors = []models.ColorOption{
	{Name: "White", Value: "#ffffff"},
	{Name: "Black", Value: "#000000"},
	{Name: "Red", Value: "#dc2626"},
	{Name: "Blue", Value: "#2563eb"},
	{Name: "Green", Value: "#16a34a"},
	{Name: "Yellow", Value: "#eab308"},
	{Name: "Purple", Value: "#9333ea"},
	{Name: "Pink", Value: "#ec4899"},
	{Name: "Orange", Value: "#ea580c"},
	{Name: "Gray", Value: "#6b7280"},
	{Name: "Navy", Value: "#1e3a8a"},
	{Name: "Teal", Value: "#0d9488"},
	{Name: "Lime", Value: "#65a30d"},
	{Name: "Indigo", Value: "#4f46e5"},
	{Name: "Rose", Value: "#f43f5e"},
}

// CatalogService merges the built-in template catalog with the optional
// database and Google Drive sources.
type CatalogService struct {
	repository    repository.CatalogRepositoryInterface
	driveService  DriveServiceInterface
	driveFolderID string
}

// NewCatalogService creates a new CatalogService. Both repository and
// driveService may be nil; the built-in catalog is always served.
func NewCatalogService(repo repository.CatalogRepositoryInterface, driveService DriveServiceInterface, driveFolderID string) *CatalogService {
	return &CatalogService{
		repository:    repo,
		driveService:  driveService,
		driveFolderID: driveFolderID,
	}
}

// Colors returns the garment color palette
func (s *CatalogService) Colors() []models.ColorOption {
	return garmentColors
}

// applyPricebook lets the pricing config override a design's price
func applyPricebook(design models.CatalogDesign) models.CatalogDesign {
	if engine := pricing.GetEngine(); engine != nil {
		design.Price = engine.TemplatePrice(design.Name, design.Price)
	}
	return design
}

// GetCatalog returns the full template catalog grouped by category
func (s *CatalogService) GetCatalog(ctx context.Context) (*models.CatalogResponse, error) {
	byCategory := make(map[string][]models.CatalogDesign)
	var order []string

	for _, category := range builtinCategories {
		order = append(order, category.Name)
		for _, design := range category.Designs {
			byCategory[category.Name] = append(byCategory[category.Name], applyPricebook(design))
		}
	}

	if s.repository != nil {
		designs, err := s.repository.GetActiveDesigns(ctx)
		if err != nil {
			log.Printf("⚠️  Warning: Failed to load catalog designs from database: %v", err)
		} else {
			for _, design := range designs {
				design.ID += dbIDOffset
				if _, seen := byCategory[design.Category]; !seen {
					order = append(order, design.Category)
				}
				byCategory[design.Category] = append(byCategory[design.Category], applyPricebook(design))
			}
		}
	}

	if s.driveService != nil && s.driveFolderID != "" {
		designs, err := s.driveService.ListCatalogDesigns(s.driveFolderID)
		if err != nil {
			log.Printf("⚠️  Warning: Failed to load catalog designs from Drive: %v", err)
		} else {
			for i, design := range designs {
				design.ID = driveIDOffset + i + 1
				if _, seen := byCategory[design.Category]; !seen {
					order = append(order, design.Category)
				}
				byCategory[design.Category] = append(byCategory[design.Category], design)
			}
		}
	}

	response := &models.CatalogResponse{}
	for _, name := range order {
		response.Categories = append(response.Categories, models.CatalogCategory{
			Name:    name,
			Designs: byCategory[name],
		})
	}
	return response, nil
}

// FindDesign resolves a design id across all catalog sources
func (s *CatalogService) FindDesign(ctx context.Context, id int) (*models.CatalogDesign, error) {
	if id < dbIDOffset {
		for _, category := range builtinCategories {
			for _, design := range category.Designs {
				if design.ID == id {
					resolved := applyPricebook(design)
					return &resolved, nil
				}
			}
		}
		return nil, fmt.Errorf("design %d not found", id)
	}

	if id < driveIDOffset {
		if s.repository == nil {
			return nil, fmt.Errorf("design %d not found: no database configured", id)
		}
		design, err := s.repository.GetDesignByID(ctx, id-dbIDOffset)
		if err != nil {
			return nil, err
		}
		design.ID = id
		resolved := applyPricebook(*design)
		return &resolved, nil
	}

	if s.driveService == nil || s.driveFolderID == "" {
		return nil, fmt.Errorf("design %d not found: no Drive source configured", id)
	}
	designs, err := s.driveService.ListCatalogDesigns(s.driveFolderID)
	if err != nil {
		return nil, err
	}
	index := id - driveIDOffset - 1
	if index < 0 || index >= len(designs) {
		return nil, fmt.Errorf("design %d not found", id)
	}
	design := designs[index]
	design.ID = id
	return &design, nil
}

// DesignImage returns an optimized thumb/medium rendition of a design's
// image, using the on-disk cache when possible.
func (s *CatalogService) DesignImage(ctx context.Context, id int, size string) ([]byte, error) {
	cachePath := CachePath(id, size)
	if data, ok := ReadFromCache(cachePath); ok {
		return data, nil
	}

	design, err := s.FindDesign(ctx, id)
	if err != nil {
		return nil, err
	}

	raw, err := FetchImage(design.Src)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch design image: %w", err)
	}

	optimized, err := OptimizeImage(raw, size)
	if err != nil {
		return nil, err
	}

	if err := SaveToCache(cachePath, optimized); err != nil {
		log.Printf("⚠️  Warning: Failed to cache design image %d: %v", id, err)
	}
	return optimized, nil
}
