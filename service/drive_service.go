package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"sketchtostitch-me/models"
	"sketchtostitch-me/pricing"
)

// driveCategory is the catalog category assigned to designs sourced from
// the Drive folder
const driveCategory = "Community"

// defaultDrivePrice applies to Drive designs with no pricebook entry
const defaultDrivePrice = 4

// DriveService handles Google Drive API operations
type DriveService struct {
	client *drive.Service
}

// NewDriveService creates a new DriveService instance.
// credentialsPath should be the path to the Service Account JSON file.
func NewDriveService(credentialsPath string) (*DriveService, error) {
	ctx := context.Background()

	driveService, err := drive.NewService(ctx, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}

	return &DriveService{client: driveService}, nil
}

// Ensure DriveService implements DriveServiceInterface
var _ DriveServiceInterface = (*DriveService)(nil)

// displayName derives a design name from an image file name, mirroring
// how uploaded file names become sticker names.
func displayName(fileName string) string {
	name := strings.TrimSuffix(fileName, filepath.Ext(fileName))
	return strings.TrimSpace(name)
}

// ListCatalogDesigns lists all image files in a Drive folder as template
// catalog designs. Non-image files are skipped.
func (ds *DriveService) ListCatalogDesigns(folderID string) ([]models.CatalogDesign, error) {
	query := fmt.Sprintf("'%s' in parents and trashed=false", folderID)

	var allFiles []*drive.File
	pageToken := ""
	for {
		call := ds.client.Files.List().
			Q(query).
			Fields("nextPageToken, files(id, name, mimeType)")

		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		r, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list files: %w", err)
		}

		allFiles = append(allFiles, r.Files...)
		pageToken = r.NextPageToken

		if pageToken == "" {
			break
		}
	}

	imageMimeTypes := map[string]bool{
		"image/png":  true,
		"image/jpeg": true,
		"image/jpg":  true,
	}

	engine := pricing.GetEngine()

	var designs []models.CatalogDesign
	for _, file := range allFiles {
		if !imageMimeTypes[strings.ToLower(file.MimeType)] {
			continue
		}

		name := displayName(file.Name)
		if name == "" {
			log.Printf("warning: skipping Drive file with empty name (id=%s)", file.Id)
			continue
		}

		price := int64(defaultDrivePrice)
		if engine != nil {
			price = engine.TemplatePrice(name, price)
		}

		designs = append(designs, models.CatalogDesign{
			Src:      fmt.Sprintf("https://drive.google.com/uc?id=%s", file.Id),
			Name:     name,
			Price:    price,
			Category: driveCategory,
		})
	}

	return designs, nil
}

// DownloadImage downloads a file's content from Drive
func (ds *DriveService) DownloadImage(fileID string) ([]byte, error) {
	resp, err := ds.client.Files.Get(fileID).Download()
	if err != nil {
		return nil, fmt.Errorf("failed to download file %s: %w", fileID, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", fileID, err)
	}
	return data, nil
}
