package adaptor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"coffee-shop/internal/dto/request"
	"coffee-shop/internal/dto/response"
	"coffee-shop/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubOrderService struct {
	createFn func(ctx context.Context, req *request.CreateOrderRequest) (*response.OrderResponse, error)
	getFn    func(ctx context.Context, number string) (*response.OrderResponse, error)
	userFn   func(ctx context.Context, userID int64, limit int) ([]response.OrderResponse, error)
	recentFn func(ctx context.Context, limit int) ([]response.OrderResponse, error)
}

func (s *stubOrderService) CreateOrder(ctx context.Context, req *request.CreateOrderRequest) (*response.OrderResponse, error) {
	return s.createFn(ctx, req)
}

func (s *stubOrderService) GetOrder(ctx context.Context, number string) (*response.OrderResponse, error) {
	return s.getFn(ctx, number)
}

func (s *stubOrderService) GetUserOrders(ctx context.Context, userID int64, limit int) ([]response.OrderResponse, error) {
	return s.userFn(ctx, userID, limit)
}

func (s *stubOrderService) ListRecent(ctx context.Context, limit int) ([]response.OrderResponse, error) {
	return s.recentFn(ctx, limit)
}

func orderRouter(service *stubOrderService) *chi.Mux {
	handler := NewOrderHandler(service, zap.NewNop())

	r := chi.NewRouter()
	r.Post("/api/orders", handler.CreateOrder)
	r.Get("/api/orders/{number}", handler.GetOrder)
	r.Get("/api/users/{id}/orders", handler.GetUserOrders)
	r.Get("/api/admin/orders", handler.ListRecent)
	return r
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) utils.Response {
	t.Helper()
	var resp utils.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestCreateOrderHandler(t *testing.T) {
	service := &stubOrderService{
		createFn: func(ctx context.Context, req *request.CreateOrderRequest) (*response.OrderResponse, error) {
			return &response.OrderResponse{
				Number:       "ORD-1234",
				UserID:       req.UserID,
				ItemsSummary: req.ItemsSummary,
				TotalPrice:   req.TotalPrice,
				PointsEarned: 17,
			}, nil
		},
	}

	body := `{"user_id": 42, "items_summary": "Капучино x1", "total_price": 350}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	rec := httptest.NewRecorder()
	orderRouter(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	resp := decodeResponse(t, rec)
	assert.True(t, resp.Status)
}

func TestCreateOrderHandlerInvalidBody(t *testing.T) {
	service := &stubOrderService{}

	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	orderRouter(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateOrderHandlerValidation(t *testing.T) {
	service := &stubOrderService{}

	// total_price missing
	body := `{"user_id": 42, "items_summary": "Капучино x1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	rec := httptest.NewRecorder()
	orderRouter(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	assert.False(t, resp.Status)
}

func TestCreateOrderHandlerInsufficientPoints(t *testing.T) {
	service := &stubOrderService{
		createFn: func(ctx context.Context, req *request.CreateOrderRequest) (*response.OrderResponse, error) {
			return nil, fmt.Errorf("redeem 80 with balance 50: insufficient points")
		},
	}

	body := `{"user_id": 42, "items_summary": "Капучино x1", "total_price": 350, "points_used": 80}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	rec := httptest.NewRecorder()
	orderRouter(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetOrderHandler(t *testing.T) {
	service := &stubOrderService{
		getFn: func(ctx context.Context, number string) (*response.OrderResponse, error) {
			assert.Equal(t, "ORD-1234", number)
			return &response.OrderResponse{Number: number}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/orders/ORD-1234", nil)
	rec := httptest.NewRecorder()
	orderRouter(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetOrderHandlerNotFound(t *testing.T) {
	service := &stubOrderService{
		getFn: func(ctx context.Context, number string) (*response.OrderResponse, error) {
			return nil, fmt.Errorf("order %s not found", number)
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/orders/ORD-0000", nil)
	rec := httptest.NewRecorder()
	orderRouter(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetUserOrdersHandler(t *testing.T) {
	service := &stubOrderService{
		userFn: func(ctx context.Context, userID int64, limit int) ([]response.OrderResponse, error) {
			assert.Equal(t, int64(42), userID)
			assert.Equal(t, 5, limit)
			return []response.OrderResponse{{Number: "ORD-1111"}}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/users/42/orders?limit=5", nil)
	rec := httptest.NewRecorder()
	orderRouter(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetUserOrdersHandlerBadID(t *testing.T) {
	service := &stubOrderService{}

	req := httptest.NewRequest(http.MethodGet, "/api/users/abc/orders", nil)
	rec := httptest.NewRecorder()
	orderRouter(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListRecentHandler(t *testing.T) {
	service := &stubOrderService{
		recentFn: func(ctx context.Context, limit int) ([]response.OrderResponse, error) {
			assert.Equal(t, 50, limit)
			return []response.OrderResponse{}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/admin/orders", nil)
	rec := httptest.NewRecorder()
	orderRouter(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
