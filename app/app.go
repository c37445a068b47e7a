package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"pavexpert/app/controller"
	"pavexpert/app/router"
	"pavexpert/db"
	"pavexpert/gallery"
	"pavexpert/repository"
	"pavexpert/service"
	"pavexpert/utils"
)

// App is the wired application
type App struct {
	Config    *Config
	Handler   http.Handler
	Galleries *service.GalleryService
}

// Initialize initializes the application
func Initialize(ctx context.Context, cfg *Config) (*App, error) {
	// Initialize database connection
	if err := db.InitDB(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	site, err := utils.LoadSiteConfig(cfg.SiteConfigPath)
	if err != nil {
		return nil, err
	}

	optimizer := service.NewImageOptimizer(cfg.ImagesDir, cfg.CacheDir)
	if err := optimizer.EnsureCacheDir(); err != nil {
		return nil, err
	}

	// Initialize repositories
	productImageRepo := repository.NewProductImageRepository(db.DB)
	productRepo := repository.NewProductRepository(db.DB, productImageRepo)
	estimateRepo := repository.NewEstimateRepository(db.DB)
	supplierRepo := repository.NewSupplierRepository(db.DB)

	// Initialize services
	productService := service.NewProductService(productRepo, site)
	galleryService := service.NewGalleryService(productService, cfg.GallerySessionTTL, cfg.GalleryMaxSessions)
	specSheetService := service.NewSpecSheetService(cfg.BaseURL, cfg.ChromePath)
	estimateService := service.NewEstimateService(estimateRepo, optimizer, site)
	supplierService := service.NewSupplierService(supplierRepo)

	// Drive import is optional
	var syncService service.SyncServiceInterface
	if cfg.CredentialsPath != "" {
		driveService, err := service.NewDriveService(ctx, cfg.CredentialsPath)
		if err != nil {
			return nil, err
		}
		syncService = service.NewSyncService(driveService, productImageRepo, optimizer)
	} else {
		log.Printf("⚠️  GOOGLE_APPLICATION_CREDENTIALS is not set, product image import is disabled")
	}

	renderer, err := gallery.NewRenderer()
	if err != nil {
		return nil, err
	}
	pages, err := controller.NewPages(renderer)
	if err != nil {
		return nil, err
	}

	// Create controllers
	controllers := &router.Controllers{
		Product:      controller.NewProductController(productService, galleryService, specSheetService, pages),
		Gallery:      controller.NewGalleryController(galleryService, renderer),
		Image:        controller.NewImageController(optimizer),
		Estimate:     controller.NewEstimateController(estimateService),
		Supplier:     controller.NewSupplierController(supplierService),
		ProductImage: controller.NewProductImageController(syncService, cfg.ProductImagesFolderID),
	}

	return &App{
		Config:    cfg,
		Handler:   router.NewRouter(controllers),
		Galleries: galleryService,
	}, nil
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully
func (a *App) Run(ctx context.Context) error {
	go a.Galleries.Run(ctx, time.Minute)

	srv := &http.Server{
		Addr:              a.Config.Addr(),
		Handler:           a.Handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Printf("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
