package createorder_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hngpack/packaging-svc/internal/service/models/docid"
	"github.com/hngpack/packaging-svc/internal/service/models/money"
	"github.com/hngpack/packaging-svc/internal/service/models/order"
	"github.com/hngpack/packaging-svc/internal/service/models/product"
	createorder "github.com/hngpack/packaging-svc/internal/transport/http/create_order"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	createOrder func(ctx context.Context, o order.Order) (order.Order, error)
}

func (s *stubService) CreateOrder(ctx context.Context, o order.Order) (order.Order, error) {
	return s.createOrder(ctx, o)
}

func doRequest(t *testing.T, body string, svc *stubService) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	rec := httptest.NewRecorder()
	createorder.CreateOrder(rec, req, svc)

	return rec
}

func TestCreateOrderSuccess(t *testing.T) {
	svc := &stubService{
		createOrder: func(_ context.Context, o order.Order) (order.Order, error) {
			require.Equal(t, "Ada", o.CustomerName)
			require.Len(t, o.Items, 2)
			require.Equal(t, docid.ID("68b0000000000000000000aa"), o.Items[0].ProductID)
			require.Equal(t, 2, o.Items[0].Quantity)

			o.ID = "68b0000000000000000000ff"
			o.TotalAmount = money.Round2(decimal.RequireFromString("45.48"))
			return o, nil
		},
	}

	rec := doRequest(t, `{
		"customer_name": "Ada",
		"email": "ada@example.com",
		"shipping_address": "12 Lovelace St",
		"items": [
			{"product_id": "68b0000000000000000000aa", "quantity": 2},
			{"product_id": "68b0000000000000000000bb", "quantity": 1}
		]
	}`, svc)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		ID    string  `json:"id"`
		Total float64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "68b0000000000000000000ff", resp.ID)
	require.InDelta(t, 45.48, resp.Total, 0.0001)
}

func TestCreateOrderProductNotFound(t *testing.T) {
	svc := &stubService{
		createOrder: func(_ context.Context, _ order.Order) (order.Order, error) {
			return order.Order{}, &product.NotFoundError{ID: "68b000000000000000000099"}
		},
	}

	rec := doRequest(t, `{"items": [{"product_id": "68b000000000000000000099", "quantity": 1}]}`, svc)

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "68b000000000000000000099")
}

func TestCreateOrderStoreFailure(t *testing.T) {
	svc := &stubService{
		createOrder: func(_ context.Context, _ order.Order) (order.Order, error) {
			return order.Order{}, errors.New("store unavailable")
		},
	}

	rec := doRequest(t, `{"items": []}`, svc)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestCreateOrderEmptyItemsAccepted(t *testing.T) {
	svc := &stubService{
		createOrder: func(_ context.Context, o order.Order) (order.Order, error) {
			require.Empty(t, o.Items)
			o.ID = "68b0000000000000000000ff"
			o.TotalAmount = decimal.Zero
			return o, nil
		},
	}

	rec := doRequest(t, `{"customer_name": "Ada", "items": []}`, svc)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"total":0`)
}

func TestCreateOrderInvalidQuantity(t *testing.T) {
	called := false
	svc := &stubService{
		createOrder: func(_ context.Context, _ order.Order) (order.Order, error) {
			called = true
			return order.Order{}, nil
		},
	}

	rec := doRequest(t, `{"items": [{"product_id": "68b0000000000000000000aa", "quantity": 0}]}`, svc)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.False(t, called)
}

func TestCreateOrderMalformedBody(t *testing.T) {
	svc := &stubService{
		createOrder: func(_ context.Context, _ order.Order) (order.Order, error) {
			t.Fatal("service must not be called")
			return order.Order{}, nil
		},
	}

	rec := doRequest(t, `{"items": `, svc)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
