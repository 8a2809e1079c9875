package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"sketchtostitch-me/models"
	"sketchtostitch-me/pricing"
	"sketchtostitch-me/service"
)

// CatalogController handles HTTP requests for the template catalog, the
// garment color palette and custom sticker uploads.
type CatalogController struct {
	catalogService *service.CatalogService
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalogService *service.CatalogService) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

// validImageSizes is a map of valid image size values
var validImageSizes = map[string]bool{
	"thumb":  true,
	"medium": true,
}

// GetCatalog handles GET /catalog
func (c *CatalogController) GetCatalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		log.Printf("❌ GetCatalog: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	catalog, err := c.catalogService.GetCatalog(context.Background())
	if err != nil {
		log.Printf("❌ GetCatalog: Error building catalog: %v", err)
		http.Error(w, fmt.Sprintf("Failed to build catalog: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(catalog); err != nil {
		log.Printf("❌ GetCatalog: Error encoding response: %v", err)
	}
}

// GetColors handles GET /catalog/colors
func (c *CatalogController) GetColors(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		log.Printf("❌ GetColors: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(c.catalogService.Colors()); err != nil {
		log.Printf("❌ GetColors: Error encoding response: %v", err)
	}
}

// GetDesignImage handles GET /catalog/designs/{id}/image?size=thumb|medium
func (c *CatalogController) GetDesignImage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		log.Printf("❌ GetDesignImage: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Path: /catalog/designs/{id}/image
	path := strings.TrimPrefix(r.URL.Path, "/catalog/designs/")
	idStr := strings.TrimSuffix(path, "/image")
	id, err := strconv.Atoi(idStr)
	if err != nil || id < 1 {
		log.Printf("❌ GetDesignImage: Invalid design id: %s", idStr)
		http.Error(w, "Invalid design id", http.StatusBadRequest)
		return
	}

	size := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("size")))
	if size == "" {
		size = "thumb"
	}
	if !validImageSizes[size] {
		log.Printf("❌ GetDesignImage: Invalid size: %s", size)
		http.Error(w, "Invalid size. Valid sizes: thumb, medium", http.StatusBadRequest)
		return
	}

	data, err := c.catalogService.DesignImage(context.Background(), id, size)
	if err != nil {
		log.Printf("❌ GetDesignImage: Error loading image for design %d: %v", id, err)
		http.Error(w, fmt.Sprintf("Failed to load image: %v", err), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.Printf("❌ GetDesignImage: Error writing image response: %v", err)
	}
}

// Upload handles POST /catalog/upload (multipart form, field "image")
func (c *CatalogController) Upload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		log.Printf("❌ Upload: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseMultipartForm(service.MaxUploadSize); err != nil {
		log.Printf("❌ Upload: Error parsing multipart form: %v", err)
		http.Error(w, "File size must be less than 10MB", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		log.Printf("❌ Upload: Missing image field: %v", err)
		http.Error(w, "image field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	dataURI, width, height, err := service.ProcessUpload(file, header.Size)
	if err != nil {
		log.Printf("❌ Upload: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	name := strings.TrimSuffix(header.Filename, filepath.Ext(header.Filename))
	if strings.TrimSpace(name) == "" {
		name = "Custom Design"
	}

	var fee int64
	if engine := pricing.GetEngine(); engine != nil {
		fee = engine.CustomUploadFee()
	}

	log.Printf("✅ Upload: Processed custom design %q (%dx%d)", name, width, height)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	response := models.UploadResponse{
		Src:    dataURI,
		Name:   name,
		Price:  fee,
		Width:  width,
		Height: height,
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("❌ Upload: Error encoding response: %v", err)
	}
}
