package service

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
)

// SpecSheetServiceInterface defines the contract for product spec sheet generation
type SpecSheetServiceInterface interface {
	GeneratePDF(ctx context.Context, productID int) ([]byte, error)
}

// SpecSheetService prints the product print page to PDF with headless Chrome
type SpecSheetService struct {
	baseURL    string // Base URL the print page is served from (e.g., "http://localhost:8080")
	chromePath string
	timeout    time.Duration
}

// NewSpecSheetService creates a new SpecSheetService
// chromePath may be empty, in which case common install locations are probed
func NewSpecSheetService(baseURL, chromePath string) *SpecSheetService {
	return &SpecSheetService{
		baseURL:    baseURL,
		chromePath: detectChromePath(chromePath),
		timeout:    30 * time.Second,
	}
}

// Ensure SpecSheetService implements SpecSheetServiceInterface
var _ SpecSheetServiceInterface = (*SpecSheetService)(nil)

// detectChromePath returns the configured path when it exists, otherwise the first common install found
func detectChromePath(configured string) string {
	if configured != "" {
		if _, err := os.Stat(configured); err == nil {
			return configured
		}
		log.Printf("⚠️  CHROME_PATH %s not found, probing common locations", configured)
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// PrintURL returns the page printed for a product
func (s *SpecSheetService) PrintURL(productID int) string {
	return fmt.Sprintf("%s/products/%d/print", s.baseURL, productID)
}

// GeneratePDF renders the product print page as a US Letter PDF
func (s *SpecSheetService) GeneratePDF(ctx context.Context, productID int) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // Required for running in Docker/containers
		chromedp.Flag("enable-print-preview", true),
	)
	if s.chromePath != "" {
		opts = append(opts, chromedp.ExecPath(s.chromePath))
	}
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	defer chromedpCancel()

	renderURL := s.PrintURL(productID)
	log.Printf("🖨️  Rendering spec sheet from %s", renderURL)

	var pdfBuf []byte
	err := chromedp.Run(chromedpCtx,
		chromedp.EmulateViewport(816, 1056), // Letter at 96 DPI
		chromedp.Navigate(renderURL),
		chromedp.WaitReady("body"),
		// Wait for fonts and images to load
		chromedp.Evaluate(`
			(function() {
				return Promise.all([
					document.fonts.ready,
					Promise.all(Array.from(document.querySelectorAll('img')).map(img => {
						return new Promise((resolve) => {
							if (img.complete && img.naturalWidth > 0) {
								resolve();
								return;
							}
							const timeout = setTimeout(() => resolve(), 5000);
							img.onload = () => { clearTimeout(timeout); resolve(); };
							img.onerror = () => { clearTimeout(timeout); resolve(); };
						});
					}))
				]);
			})();
		`, nil, func(p *runtime.EvaluateParams) *runtime.EvaluateParams {
			return p.WithAwaitPromise(true)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.5).
				WithPaperHeight(11).
				WithMarginTop(0.4).
				WithMarginBottom(0.4).
				WithMarginLeft(0.4).
				WithMarginRight(0.4).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	log.Printf("✓ Spec sheet for product %d generated (%d bytes)", productID, len(pdfBuf))
	return pdfBuf, nil
}
