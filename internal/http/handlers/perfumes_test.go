package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"perfume-shop/internal/repo"
	"perfume-shop/pkg/models"
)

type fakeCatalogService struct {
	filtered models.SearchFilter
	catalog  []models.Perfume
}

func (f *fakeCatalogService) GetOne(_ context.Context, id string) (models.Perfume, error) {
	for _, p := range f.catalog {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Perfume{}, repo.ErrNotFound
}

func (f *fakeCatalogService) FindAll(context.Context) ([]models.Perfume, error) {
	return f.catalog, nil
}

func (f *fakeCatalogService) Filter(_ context.Context, filter models.SearchFilter) ([]models.Perfume, error) {
	f.filtered = filter
	return f.catalog, nil
}

func (f *fakeCatalogService) FindByPerfumer(context.Context, string) ([]models.Perfume, error) {
	return f.catalog, nil
}

func (f *fakeCatalogService) FindByGender(context.Context, string) ([]models.Perfume, error) {
	return f.catalog, nil
}

func (f *fakeCatalogService) Save(_ context.Context, p models.Perfume) (models.Perfume, error) {
	return p, nil
}

func (f *fakeCatalogService) UpdateProductInfo(context.Context, models.PerfumeInfo, string) error {
	return nil
}

func TestSearch_PassesFilterThrough(t *testing.T) {
	svc := &fakeCatalogService{catalog: []models.Perfume{{ID: "p1"}}}
	h := &PerfumesHandler{Svc: svc, Log: zerolog.Nop()}

	body := `{"perfumers":["Creed"],"genders":["male"],"prices":[10,20]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/perfumes/search", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Search(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, []string{"Creed"}, svc.filtered.Perfumers)
	require.Equal(t, []int{10, 20}, svc.filtered.Prices)
}

func TestSearch_RejectsMalformedPriceRange(t *testing.T) {
	h := &PerfumesHandler{Svc: &fakeCatalogService{}, Log: zerolog.Nop()}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/perfumes/search", strings.NewReader(`{"prices":[10]}`))
	rec := httptest.NewRecorder()
	h.Search(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGet_NotFound(t *testing.T) {
	h := &PerfumesHandler{Svc: &fakeCatalogService{}, Log: zerolog.Nop()}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/perfumes/missing", nil)
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}
