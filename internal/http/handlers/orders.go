package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"perfume-shop/internal/repo"
	"perfume-shop/pkg/models"
)

type OrderService interface {
	FindAll(ctx context.Context) ([]models.Order, error)
	FindOrderByUser(ctx context.Context, user models.User) ([]models.Order, error)
	PostOrder(ctx context.Context, candidate models.Order, sessionUser models.User) (models.Order, error)
}

type UserLookup interface {
	FindByEmail(ctx context.Context, email string) (models.User, error)
}

type OrdersHandler struct {
	Svc   OrderService
	Users UserLookup
	Log   zerolog.Logger
}

func (h *OrdersHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Svc.FindAll(r.Context())
	if err != nil {
		h.Log.Error().Err(err).Msg("list orders failed")
		http.Error(w, "failed to list orders", http.StatusInternalServerError)
		return
	}
	writeJSON(w, orders)
}

func (h *OrdersHandler) ByUser(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		http.Error(w, "email is required", http.StatusBadRequest)
		return
	}

	user, err := h.Users.FindByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		h.Log.Error().Err(err).Msg("find user failed")
		http.Error(w, "failed to list orders", http.StatusInternalServerError)
		return
	}

	orders, err := h.Svc.FindOrderByUser(r.Context(), user)
	if err != nil {
		h.Log.Error().Err(err).Msg("list orders by user failed")
		http.Error(w, "failed to list orders", http.StatusInternalServerError)
		return
	}
	writeJSON(w, orders)
}

type checkoutReq struct {
	UserEmail   string `json:"user_email"`
	TotalPrice  int    `json:"total_price"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	City        string `json:"city"`
	Address     string `json:"address"`
	PostIndex   string `json:"post_index"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

type CheckoutHandler struct {
	Svc OrderService
	Log zerolog.Logger
}

func (h *CheckoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req checkoutReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if req.UserEmail == "" || req.Email == "" || req.FirstName == "" {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}

	candidate := models.Order{
		TotalPrice:  req.TotalPrice,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		City:        req.City,
		Address:     req.Address,
		PostIndex:   req.PostIndex,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	}

	order, err := h.Svc.PostOrder(r.Context(), candidate, models.User{Email: req.UserEmail})
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		h.Log.Error().Err(err).Msg("checkout failed")
		http.Error(w, "failed to create order", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(order)
}
