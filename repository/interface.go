package repository

import (
	"context"

	"sketchtostitch-me/models"
)

// CatalogRepositoryInterface defines the contract for the database-backed
// template catalog. The built-in catalog works without it; the repository
// only adds designs when a database is configured.
type CatalogRepositoryInterface interface {
	GetActiveDesigns(ctx context.Context) ([]models.CatalogDesign, error)
	GetDesignByID(ctx context.Context, id int) (*models.CatalogDesign, error)
}
