package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/mail"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"pavexpert/models"
	"pavexpert/repository"
	"pavexpert/utils"
)

const (
	// MaxEstimateImages is the number of photos accepted with one estimate request
	MaxEstimateImages = 10
	// MaxEstimateImageBytes caps each uploaded photo
	MaxEstimateImageBytes = 10 << 20

	estimateImagesPrefix = "/images/estimates/"
)

// ErrValidation is wrapped by ValidationError
var ErrValidation = errors.New("validation failed")

// ValidationError carries one message per invalid field
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s: %s", name, e.Fields[name])
	}
	return fmt.Sprintf("%v: %s", ErrValidation, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// UploadedImage is one photo attached to an estimate request
type UploadedImage struct {
	FileName string
	Data     []byte
}

// EstimateServiceInterface defines the contract for free estimate requests
type EstimateServiceInterface interface {
	Submit(ctx context.Context, req models.EstimateRequest) (*models.Estimate, error)
	UploadImages(ctx context.Context, images []UploadedImage) ([]string, error)
}

var (
	phoneRegex = regexp.MustCompile(`^\(\d{3}\) \d{3}-\d{4}$`)
	zipRegex   = regexp.MustCompile(`^\d{5}$`)
)

// EstimateService validates and stores estimate requests
type EstimateService struct {
	repository repository.EstimateRepositoryInterface
	optimizer  *ImageOptimizer
	site       *utils.SiteConfig
	policy     *bluemonday.Policy
}

// NewEstimateService creates a new EstimateService
func NewEstimateService(repo repository.EstimateRepositoryInterface, optimizer *ImageOptimizer, site *utils.SiteConfig) *EstimateService {
	return &EstimateService{
		repository: repo,
		optimizer:  optimizer,
		site:       site,
		policy:     bluemonday.StrictPolicy(),
	}
}

// Ensure EstimateService implements EstimateServiceInterface
var _ EstimateServiceInterface = (*EstimateService)(nil)

// Validate checks an estimate request. It returns a *ValidationError listing every invalid field.
func (s *EstimateService) Validate(req models.EstimateRequest) error {
	fields := map[string]string{}

	if !s.site.IsReferralOption(req.Referral) {
		fields["referral"] = "Please select how you heard about us"
	} else if req.Referral == "Other" && strings.TrimSpace(req.OtherReferral) == "" {
		fields["other_referral"] = "Please specify how you heard about us"
	}
	if strings.TrimSpace(req.FirstName) == "" {
		fields["first_name"] = "First name is required"
	}
	if strings.TrimSpace(req.LastName) == "" {
		fields["last_name"] = "Last name is required"
	}
	if addr, err := mail.ParseAddress(req.Email); err != nil || addr.Address != req.Email {
		fields["email"] = "Invalid email address"
	}
	if req.Phone == "" {
		fields["phone"] = "Phone is required"
	} else if !phoneRegex.MatchString(req.Phone) {
		fields["phone"] = "Phone must be in format (XXX) XXX-XXXX"
	}
	if strings.TrimSpace(req.Address) == "" {
		fields["address"] = "Street address is required"
	}
	if !s.site.IsCityOption(req.City) {
		fields["city"] = "Please select your city"
	}
	if req.Zip == "" {
		fields["zip"] = "ZIP code is required"
	} else if !zipRegex.MatchString(req.Zip) {
		fields["zip"] = "ZIP code must be 5 digits"
	}
	if len(req.Images) > MaxEstimateImages {
		fields["images"] = fmt.Sprintf("At most %d images can be attached", MaxEstimateImages)
	}
	for _, img := range req.Images {
		if !strings.HasPrefix(img, estimateImagesPrefix) || strings.Contains(img, "..") {
			fields["images"] = "Images must be uploaded first"
			break
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Submit validates, sanitizes and stores an estimate request
func (s *EstimateService) Submit(ctx context.Context, req models.EstimateRequest) (*models.Estimate, error) {
	if err := s.Validate(req); err != nil {
		log.Printf("⚠️  Estimate request rejected: %v", err)
		return nil, err
	}

	estimate := &models.Estimate{
		Referral:           req.Referral,
		FirstName:          strings.TrimSpace(req.FirstName),
		LastName:           strings.TrimSpace(req.LastName),
		Email:              req.Email,
		Phone:              req.Phone,
		Address:            strings.TrimSpace(req.Address),
		City:               req.City,
		Zip:                req.Zip,
		ProjectDescription: strings.TrimSpace(s.policy.Sanitize(req.ProjectDescription)),
		Images:             req.Images,
	}
	if req.Referral == "Other" {
		estimate.OtherReferral = strings.TrimSpace(s.policy.Sanitize(req.OtherReferral))
	}

	if err := s.repository.Insert(ctx, estimate); err != nil {
		return nil, err
	}
	log.Printf("✓ Estimate %d stored for %s %s (%d images)", estimate.ID, estimate.FirstName, estimate.LastName, len(estimate.Images))
	return estimate, nil
}

// UploadImages stores estimate photos as JPEG under unique names and returns their public paths
func (s *EstimateService) UploadImages(ctx context.Context, images []UploadedImage) ([]string, error) {
	if len(images) == 0 {
		return nil, &ValidationError{Fields: map[string]string{"images": "No images provided"}}
	}
	if len(images) > MaxEstimateImages {
		return nil, &ValidationError{Fields: map[string]string{"images": fmt.Sprintf("At most %d images can be uploaded", MaxEstimateImages)}}
	}
	for _, img := range images {
		switch strings.ToLower(filepath.Ext(img.FileName)) {
		case ".jpg", ".jpeg", ".png":
		default:
			return nil, &ValidationError{Fields: map[string]string{"images": fmt.Sprintf("%s is not a JPEG or PNG image", img.FileName)}}
		}
		if len(img.Data) > MaxEstimateImageBytes {
			return nil, &ValidationError{Fields: map[string]string{"images": fmt.Sprintf("%s is larger than 10MB", img.FileName)}}
		}
	}

	// every photo must decode before any of the batch is written
	optimized := make([][]byte, len(images))
	for i, img := range images {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := OptimizeImage(img.Data, SizeFull)
		if err != nil {
			log.Printf("⚠️  Estimate image %s rejected: %v", img.FileName, err)
			return nil, &ValidationError{Fields: map[string]string{"images": fmt.Sprintf("%s is not a valid image", img.FileName)}}
		}
		optimized[i] = data
	}

	paths := make([]string, 0, len(images))
	for i, img := range images {
		path := estimateImagesPrefix + uuid.NewString() + ".jpg"
		if err := s.optimizer.WriteOptimized(path, optimized[i]); err != nil {
			log.Printf("❌ Failed to store estimate image %s: %v", img.FileName, err)
			s.removeUploads(paths)
			return nil, fmt.Errorf("failed to store %s: %w", img.FileName, err)
		}
		paths = append(paths, path)
	}

	log.Printf("📸 Stored %d estimate images", len(paths))
	return paths, nil
}

func (s *EstimateService) removeUploads(paths []string) {
	for _, path := range paths {
		if err := s.optimizer.Remove(path); err != nil {
			log.Printf("⚠️  %v", err)
		}
	}
}
