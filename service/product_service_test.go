package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"pavexpert/models"
	"pavexpert/repository"
	"pavexpert/utils"
)

func newTestProductService() *ProductService {
	repo := &fakeProductRepository{
		products: map[int]*models.Product{
			9: {
				ID:            9,
				Name:          "Holland Stone",
				Brand:         "Belgard",
				MainImage:     "images/products/9/main.jpg",
				Note:          "**Permeable** option.\n\n<script>alert(1)</script>",
				ColorImages:   []string{"/images/products/9/color/01.jpg", "/images/products/9/color/02.jpg"},
				ProjectImages: []string{},
			},
		},
		list: []models.ProductSummary{
			{ID: 9, Name: "Holland Stone", Brand: "Belgard", Thumbnail: "images/products/9/color/01.jpg"},
			{ID: 10, Name: "Fremont", Brand: "Keystone"},
		},
	}
	return NewProductService(repo, utils.DefaultSiteConfig())
}

func TestProductServiceGetPadsRows(t *testing.T) {
	t.Parallel()

	detail, err := newTestProductService().Get(context.Background(), 9)
	require.NoError(t, err)

	require.Len(t, detail.ColorSlots, 10)
	require.Equal(t, "/images/products/9/color/02.jpg", detail.ColorSlots[1])
	require.Equal(t, "PC-1", detail.ColorSlots[2])
	require.Equal(t, "PC-8", detail.ColorSlots[9])
	require.Len(t, detail.ProjectSlots, 10)
	require.Equal(t, "PI-1", detail.ProjectSlots[0])

	require.Equal(t, "#1A3057", detail.BrandColor)
	require.Equal(t, "/images/products/9/main.jpg", detail.MainImage)
	require.Contains(t, detail.NoteHTML, "<strong>Permeable</strong>")
	require.NotContains(t, detail.NoteHTML, "<script>")
}

func TestProductServiceGetMissing(t *testing.T) {
	t.Parallel()

	_, err := newTestProductService().Get(context.Background(), 404)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProductServiceListAddsBrandColors(t *testing.T) {
	t.Parallel()

	products, err := newTestProductService().List(context.Background(), repository.ProductFilterParams{})
	require.NoError(t, err)
	require.Len(t, products, 2)
	require.Equal(t, "#1A3057", products[0].BrandColor)
	require.Equal(t, "/images/products/9/color/01.jpg", products[0].Thumbnail)
	require.Equal(t, "#005596", products[1].BrandColor)
	require.Empty(t, products[1].Thumbnail)
}

func TestRenderNoteEmpty(t *testing.T) {
	t.Parallel()

	html, err := newTestProductService().RenderNote("   ")
	require.NoError(t, err)
	require.Empty(t, html)
}
