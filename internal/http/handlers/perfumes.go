package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"perfume-shop/internal/repo"
	"perfume-shop/pkg/models"
)

type CatalogService interface {
	GetOne(ctx context.Context, id string) (models.Perfume, error)
	FindAll(ctx context.Context) ([]models.Perfume, error)
	Filter(ctx context.Context, f models.SearchFilter) ([]models.Perfume, error)
	FindByPerfumer(ctx context.Context, perfumer string) ([]models.Perfume, error)
	FindByGender(ctx context.Context, gender string) ([]models.Perfume, error)
	Save(ctx context.Context, p models.Perfume) (models.Perfume, error)
	UpdateProductInfo(ctx context.Context, info models.PerfumeInfo, id string) error
}

type PerfumesHandler struct {
	Svc CatalogService
	Log zerolog.Logger
}

func (h *PerfumesHandler) List(w http.ResponseWriter, r *http.Request) {
	perfumes, err := h.Svc.FindAll(r.Context())
	if err != nil {
		h.Log.Error().Err(err).Msg("list perfumes failed")
		http.Error(w, "failed to list perfumes", http.StatusInternalServerError)
		return
	}
	writeJSON(w, perfumes)
}

func (h *PerfumesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, err := h.Svc.GetOne(r.Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			http.Error(w, "perfume not found", http.StatusNotFound)
			return
		}
		h.Log.Error().Err(err).Str("id", id).Msg("get perfume failed")
		http.Error(w, "failed to get perfume", http.StatusInternalServerError)
		return
	}
	writeJSON(w, p)
}

func (h *PerfumesHandler) Search(w http.ResponseWriter, r *http.Request) {
	var f models.SearchFilter
	if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if len(f.Prices) != 0 && len(f.Prices) != 2 {
		http.Error(w, "prices must be empty or [low, high]", http.StatusBadRequest)
		return
	}

	perfumes, err := h.Svc.Filter(r.Context(), f)
	if err != nil {
		h.Log.Error().Err(err).Msg("filter perfumes failed")
		http.Error(w, "failed to filter perfumes", http.StatusInternalServerError)
		return
	}
	writeJSON(w, perfumes)
}

func (h *PerfumesHandler) ByPerfumer(w http.ResponseWriter, r *http.Request) {
	perfumes, err := h.Svc.FindByPerfumer(r.Context(), chi.URLParam(r, "perfumer"))
	if err != nil {
		h.Log.Error().Err(err).Msg("list by perfumer failed")
		http.Error(w, "failed to list perfumes", http.StatusInternalServerError)
		return
	}
	writeJSON(w, perfumes)
}

func (h *PerfumesHandler) ByGender(w http.ResponseWriter, r *http.Request) {
	perfumes, err := h.Svc.FindByGender(r.Context(), chi.URLParam(r, "gender"))
	if err != nil {
		h.Log.Error().Err(err).Msg("list by gender failed")
		http.Error(w, "failed to list perfumes", http.StatusInternalServerError)
		return
	}
	writeJSON(w, perfumes)
}

func (h *PerfumesHandler) Save(w http.ResponseWriter, r *http.Request) {
	var p models.Perfume
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	saved, err := h.Svc.Save(r.Context(), p)
	if err != nil {
		h.Log.Error().Err(err).Msg("save perfume failed")
		http.Error(w, "failed to save perfume", http.StatusInternalServerError)
		return
	}
	writeJSON(w, saved)
}

func (h *PerfumesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var info models.PerfumeInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if err := h.Svc.UpdateProductInfo(r.Context(), info, id); err != nil {
		h.Log.Error().Err(err).Str("id", id).Msg("update perfume failed")
		http.Error(w, "failed to update perfume", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
