package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"perfume-shop/internal/repo"
	"perfume-shop/pkg/models"
)

type fakeOrderService struct {
	posted   *models.Order
	known    string
	response models.Order
}

func (f *fakeOrderService) FindAll(context.Context) ([]models.Order, error) {
	return []models.Order{f.response}, nil
}

func (f *fakeOrderService) FindOrderByUser(_ context.Context, user models.User) ([]models.Order, error) {
	return []models.Order{f.response}, nil
}

func (f *fakeOrderService) PostOrder(_ context.Context, candidate models.Order, sessionUser models.User) (models.Order, error) {
	if sessionUser.Email != f.known {
		return models.Order{}, repo.ErrNotFound
	}
	f.posted = &candidate
	return f.response, nil
}

func TestCheckout_Created(t *testing.T) {
	svc := &fakeOrderService{
		known:    "alice@example.com",
		response: models.Order{ID: "order-1", TotalPrice: 370},
	}
	h := &CheckoutHandler{Svc: svc, Log: zerolog.Nop()}

	body := `{"user_email":"alice@example.com","total_price":370,"first_name":"Alice",
		"last_name":"Smith","city":"Kyiv","address":"Khreshchatyk 1","post_index":"01001",
		"email":"alice@example.com","phone_number":"+380501234567"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/order", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var got models.Order
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Equal(t, "order-1", got.ID)

	require.NotNil(t, svc.posted)
	require.Equal(t, 370, svc.posted.TotalPrice)
	require.Equal(t, "Kyiv", svc.posted.City)
}

func TestCheckout_BadJSON(t *testing.T) {
	h := &CheckoutHandler{Svc: &fakeOrderService{}, Log: zerolog.Nop()}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/order", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckout_MissingFields(t *testing.T) {
	h := &CheckoutHandler{Svc: &fakeOrderService{}, Log: zerolog.Nop()}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/order", strings.NewReader(`{"email":"a@b.c"}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckout_UnknownUser(t *testing.T) {
	h := &CheckoutHandler{Svc: &fakeOrderService{known: "alice@example.com"}, Log: zerolog.Nop()}

	body := `{"user_email":"ghost@example.com","first_name":"Ghost","email":"ghost@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/order", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}
