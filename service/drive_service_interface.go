package service

import "sketchtostitch-me/models"

// DriveServiceInterface defines the contract for the optional Google Drive
// catalog source
type DriveServiceInterface interface {
	ListCatalogDesigns(folderID string) ([]models.CatalogDesign, error)
	DownloadImage(fileID string) ([]byte, error)
}
