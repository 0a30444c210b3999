package orderclient_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/emel-water/emel-api/internal/models"
	"github.com/emel-water/emel-api/pkg/orderclient"
)

func TestClient_SubmitOrder(t *testing.T) {
	var received models.OrderRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/orders", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true, "message": "Заказ успешно оформлен"}`))
	}))
	defer srv.Close()

	client := orderclient.New(srv.URL)
	resp, err := client.SubmitOrder(context.Background(), &models.OrderRequest{
		Name:     "Aida",
		Phone:    "0700123456",
		Email:    "a@b.com",
		Product:  "0.5",
		Quantity: "2",
	})

	assert.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "Заказ успешно оформлен", resp.Message)
	assert.Equal(t, "Aida", received.Name)
	assert.Equal(t, "2", received.Quantity.String())
}

func TestClient_SubmitOrder_ValidationErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"success": false, "errors": ["Некорректный email адрес"]}`))
	}))
	defer srv.Close()

	client := orderclient.New(srv.URL)
	resp, err := client.SubmitOrder(context.Background(), &models.OrderRequest{})

	assert.Error(t, err)

	var statusErr *orderclient.StatusError
	assert.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusBadRequest, statusErr.StatusCode)

	// The decoded envelope carries the field errors
	assert.NotNil(t, resp)
	assert.False(t, resp.Success)
	assert.Equal(t, []string{"Некорректный email адрес"}, resp.Errors)
}

func TestClient_SubmitOrder_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"success": false, "message": "Произошла ошибка при обработке заказа"}`))
	}))
	defer srv.Close()

	client := orderclient.New(srv.URL)
	_, err := client.SubmitOrder(context.Background(), &models.OrderRequest{})

	var statusErr *orderclient.StatusError
	assert.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	assert.Equal(t, "order api: unexpected status 500", statusErr.Error())
}

func TestClient_Health(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/health", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": "OK", "timestamp": "2025-03-14T09:05:00Z", "uptime": 42.5}`))
	}))
	defer srv.Close()

	client := orderclient.New(srv.URL)
	health, err := client.Health(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "OK", health.Status)
	assert.Equal(t, 42.5, health.Uptime)
}

func TestClient_Prices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/prices", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true, "prices": {"0.5": 50, "1": 80, "1.5": 100}}`))
	}))
	defer srv.Close()

	client := orderclient.New(srv.URL)
	prices, err := client.Prices(context.Background())

	assert.NoError(t, err)
	assert.True(t, prices.Success)
	assert.Equal(t, map[string]int{"0.5": 50, "1": 80, "1.5": 100}, prices.Prices)
}

func TestClient_Prices_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := orderclient.New(srv.URL)
	_, err := client.Prices(context.Background())

	var statusErr *orderclient.StatusError
	assert.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
}
