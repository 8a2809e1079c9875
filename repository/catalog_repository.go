package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"sketchtostitch-me/db"
	"sketchtostitch-me/models"
)

// CatalogRepository handles database operations for the template catalog
type CatalogRepository struct{}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{}
}

// Ensure CatalogRepository implements CatalogRepositoryInterface
var _ CatalogRepositoryInterface = (*CatalogRepository)(nil)

// GetActiveDesigns retrieves all active template designs ordered by
// category then name.
func (r *CatalogRepository) GetActiveDesigns(ctx context.Context) ([]models.CatalogDesign, error) {
	log.Printf("🔍 GetActiveDesigns: Fetching catalog designs from database")

	query := `
		SELECT id, name, category, image_url, price
		FROM catalog_designs
		WHERE is_active = true
		ORDER BY category ASC, name ASC
	`

	rows, err := db.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog designs: %w", err)
	}
	defer rows.Close()

	var designs []models.CatalogDesign
	for rows.Next() {
		var design models.CatalogDesign
		if err := rows.Scan(&design.ID, &design.Name, &design.Category, &design.Src, &design.Price); err != nil {
			log.Printf("❌ GetActiveDesigns: Error scanning row: %v", err)
			continue
		}
		designs = append(designs, design)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate catalog designs: %w", err)
	}

	log.Printf("✅ GetActiveDesigns: Found %d designs", len(designs))
	return designs, nil
}

// GetDesignByID retrieves a single active design by id
func (r *CatalogRepository) GetDesignByID(ctx context.Context, id int) (*models.CatalogDesign, error) {
	query := `
		SELECT id, name, category, image_url, price
		FROM catalog_designs
		WHERE id = $1 AND is_active = true
	`

	var design models.CatalogDesign
	err := db.DB.QueryRowContext(ctx, query, id).Scan(&design.ID, &design.Name, &design.Category, &design.Src, &design.Price)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("design not found")
		}
		return nil, fmt.Errorf("failed to fetch design: %w", err)
	}
	return &design, nil
}
