package app

import (
	"fmt"
	"log"
	"os"

	"sketchtostitch-me/app/controller"
	"sketchtostitch-me/app/router"
	"sketchtostitch-me/auth"
	"sketchtostitch-me/db"
	"sketchtostitch-me/design"
	"sketchtostitch-me/preview"
	"sketchtostitch-me/pricing"
	"sketchtostitch-me/repository"
	"sketchtostitch-me/service"
	"sketchtostitch-me/storage"
)

// Initialize wires up the application: optional database, pricing engine,
// order storage, auth sessions, the design session, the preview manager
// and every controller behind the routes.
func Initialize() (*preview.Manager, error) {
	// Database is optional: without one the catalog serves the built-in
	// designs only.
	var catalogRepo repository.CatalogRepositoryInterface
	if db.Configured() {
		if err := db.InitDB(); err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		catalogRepo = repository.NewCatalogRepository()
	} else {
		log.Printf("⚠️  No database configured, serving built-in catalog only")
	}

	// Pricing engine: PRICING_CONFIG path or compiled-in defaults
	var pricingEngine *pricing.Engine
	if configPath := os.Getenv("PRICING_CONFIG"); configPath != "" {
		var err error
		pricingEngine, err = pricing.NewEngine(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize pricing engine: %w", err)
		}
	} else {
		pricingEngine = pricing.NewDefaultEngine()
	}

	// Order storage
	storageDir := os.Getenv("STORAGE_DIR")
	if storageDir == "" {
		storageDir = "data"
	}
	store, err := storage.NewLocalStore(storageDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize order storage: %w", err)
	}

	// Optional Google Drive catalog source
	var driveService service.DriveServiceInterface
	driveFolderID := os.Getenv("CATALOG_DRIVE_FOLDER_ID")
	credentialsPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	if driveFolderID != "" && credentialsPath != "" {
		ds, err := service.NewDriveService(credentialsPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Drive service: %w", err)
		}
		driveService = ds
	}

	if err := service.EnsureCacheDir(); err != nil {
		return nil, err
	}

	// 3D preview manager
	modelPath := os.Getenv("MODEL_PATH")
	if modelPath == "" {
		modelPath = "models/tshirt_model.glb"
	}
	previewManager := preview.NewManager(modelPath)

	sessions := auth.NewSessionManager()
	designSession := design.NewSession(pricingEngine.BasePrice())
	catalogService := service.NewCatalogService(catalogRepo, driveService, driveFolderID)

	controllers := &router.Controllers{
		Auth:         controller.NewAuthController(sessions),
		Catalog:      controller.NewCatalogController(catalogService),
		Design:       controller.NewDesignController(designSession, catalogService),
		Preview:      controller.NewPreviewController(previewManager, designSession),
		Order:        controller.NewOrderController(designSession, store),
		Payment:      controller.NewPaymentController(store, service.NewSimulatedProcessor()),
		Confirmation: controller.NewConfirmationController(store, service.NewProofService()),
	}

	// Setup routes using standard http router
	router.SetupRoutes(controllers, sessions)

	return previewManager, nil
}
