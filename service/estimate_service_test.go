package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"pavexpert/models"
	"pavexpert/utils"
)

func validEstimateRequest() models.EstimateRequest {
	return models.EstimateRequest{
		Referral:           "Google",
		FirstName:          "Dana",
		LastName:           "Reyes",
		Email:              "dana@example.com",
		Phone:              "(702) 555-0142",
		Address:            "123 Paver Ln",
		City:               "Henderson",
		Zip:                "89052",
		ProjectDescription: "Backyard patio <b>and</b> walkway<script>x()</script>",
	}
}

func newTestEstimateService(t *testing.T) (*EstimateService, *fakeEstimateRepository, string) {
	t.Helper()

	root := t.TempDir()
	repo := &fakeEstimateRepository{}
	return NewEstimateService(repo, NewImageOptimizer(root, t.TempDir()), utils.DefaultSiteConfig()), repo, root
}

func TestEstimateValidation(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestEstimateService(t)

	tests := []struct {
		name   string
		modify func(*models.EstimateRequest)
		field  string
	}{
		{name: "unknown referral", modify: func(r *models.EstimateRequest) { r.Referral = "Radio" }, field: "referral"},
		{name: "other without detail", modify: func(r *models.EstimateRequest) { r.Referral = "Other" }, field: "other_referral"},
		{name: "first name", modify: func(r *models.EstimateRequest) { r.FirstName = " " }, field: "first_name"},
		{name: "last name", modify: func(r *models.EstimateRequest) { r.LastName = "" }, field: "last_name"},
		{name: "email", modify: func(r *models.EstimateRequest) { r.Email = "dana@" }, field: "email"},
		{name: "email with name", modify: func(r *models.EstimateRequest) { r.Email = "Dana <dana@example.com>" }, field: "email"},
		{name: "phone format", modify: func(r *models.EstimateRequest) { r.Phone = "702-555-0142" }, field: "phone"},
		{name: "address", modify: func(r *models.EstimateRequest) { r.Address = "" }, field: "address"},
		{name: "city", modify: func(r *models.EstimateRequest) { r.City = "Reno" }, field: "city"},
		{name: "zip", modify: func(r *models.EstimateRequest) { r.Zip = "8905" }, field: "zip"},
		{name: "foreign image", modify: func(r *models.EstimateRequest) { r.Images = []string{"https://evil.example/x.jpg"} }, field: "images"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := validEstimateRequest()
			tt.modify(&req)

			err := svc.Validate(req)
			require.ErrorIs(t, err, ErrValidation)
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			require.Contains(t, verr.Fields, tt.field)
			require.Len(t, verr.Fields, 1)
		})
	}

	require.NoError(t, svc.Validate(validEstimateRequest()))
}

func TestEstimateSubmitSanitizesAndStores(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newTestEstimateService(t)
	req := validEstimateRequest()
	req.Referral = "Other"
	req.OtherReferral = "Yard sign"
	req.Images = []string{"/images/estimates/8f14e45f.jpg"}

	estimate, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, 1, estimate.ID)
	require.Equal(t, "Yard sign", estimate.OtherReferral)
	require.Equal(t, "Backyard patio and walkway", estimate.ProjectDescription)
	require.Len(t, repo.stored, 1)

	_, err = svc.Submit(context.Background(), models.EstimateRequest{})
	require.ErrorIs(t, err, ErrValidation)
	require.Len(t, repo.stored, 1)
}

func TestEstimateUploadImages(t *testing.T) {
	t.Parallel()

	svc, _, root := newTestEstimateService(t)

	paths, err := svc.UploadImages(context.Background(), []UploadedImage{
		{FileName: "patio.png", Data: testPNG(t, 64, 48)},
		{FileName: "yard.PNG", Data: testPNG(t, 64, 48)},
	})
	require.NoError(t, err)
	require.Len(t, paths, 2)
	require.NotEqual(t, paths[0], paths[1])
	for _, p := range paths {
		require.True(t, strings.HasPrefix(p, "/images/estimates/"))
		require.True(t, strings.HasSuffix(p, ".jpg"))
		_, err := os.Stat(filepath.Join(root, "estimates", filepath.Base(p)))
		require.NoError(t, err)
	}

	_, err = svc.UploadImages(context.Background(), nil)
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.UploadImages(context.Background(), []UploadedImage{{FileName: "plan.pdf", Data: []byte("%PDF")}})
	require.ErrorIs(t, err, ErrValidation)

	tooMany := make([]UploadedImage, MaxEstimateImages+1)
	for i := range tooMany {
		tooMany[i] = UploadedImage{FileName: "x.jpg"}
	}
	_, err = svc.UploadImages(context.Background(), tooMany)
	require.ErrorIs(t, err, ErrValidation)
}

func TestEstimateUploadImagesRejectsUndecodableBatch(t *testing.T) {
	t.Parallel()

	svc, _, root := newTestEstimateService(t)

	_, err := svc.UploadImages(context.Background(), []UploadedImage{
		{FileName: "patio.png", Data: testPNG(t, 64, 48)},
		{FileName: "driveway.jpg", Data: []byte("this is not a jpeg")},
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Fields["images"], "driveway.jpg")

	entries, err := os.ReadDir(filepath.Join(root, "estimates"))
	if err == nil {
		require.Empty(t, entries, "nothing from a rejected batch is kept")
	} else {
		require.True(t, os.IsNotExist(err))
	}
}
