package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/seller-console/infrastructure/integrator/astro/astroclient"
	"github.com/vfg2006/seller-console/infrastructure/integrator/astro/mocks"
	"github.com/vfg2006/seller-console/internal/api/handler/router"
	"github.com/vfg2006/seller-console/internal/domain"
	"github.com/vfg2006/seller-console/internal/session"
	"github.com/vfg2006/seller-console/internal/usecases/ordering"
	"github.com/vfg2006/seller-console/pkg/apiErrors"
)

func newOrdersRouter(t *testing.T, withSession bool) (router.Router, *mocks.MockSellerAPI, *ordering.Service) {
	t.Helper()

	ctrl := gomock.NewController(t)
	api := mocks.NewMockSellerAPI(ctrl)
	service := ordering.NewService(api)

	store := session.NewMemoryStore()
	if withSession {
		require.NoError(t, store.Set("tok"))
	}

	rt := router.New(router.WithRoutes(Orders(service, store)...))
	return rt, api, service
}

func decodeErrorBody(t *testing.T, recorder *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var body apiErrors.APIError
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

func refreshOrders(t *testing.T, rt router.Router, api *mocks.MockSellerAPI, orders []*domain.Order) {
	t.Helper()
	api.EXPECT().ListOrders(gomock.Any()).Return(orders, nil)

	recorder := httptest.NewRecorder()
	rt.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/orders", nil))
	require.Equal(t, http.StatusOK, recorder.Code)
}

func TestListOrders_SemSessaoRedirecionaParaLogin(t *testing.T) {
	rt, _, _ := newOrdersRouter(t, false)

	recorder := httptest.NewRecorder()
	rt.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/orders", nil))

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	body := decodeErrorBody(t, recorder)
	assert.Equal(t, apiErrors.ErrUnauthenticated, body.Code)
}

func TestListOrders_FalhaDeComunicacao(t *testing.T) {
	rt, api, _ := newOrdersRouter(t, true)

	api.EXPECT().ListOrders(gomock.Any()).Return(nil, errors.New("connection refused"))

	recorder := httptest.NewRecorder()
	rt.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/orders", nil))

	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	body := decodeErrorBody(t, recorder)
	assert.Equal(t, apiErrors.ErrCommunication, body.Code)
}

func TestUpdateOrderStatus(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		payload    string
		setup      func(api *mocks.MockSellerAPI)
		wantStatus int
		wantCode   string
	}{
		{
			name:    "Sucesso devolve o pedido resolvido",
			target:  "/v1/orders/7",
			payload: `{"status":"Shipped"}`,
			setup: func(api *mocks.MockSellerAPI) {
				api.EXPECT().
					UpdateOrderStatus(gomock.Any(), 7, domain.StatusShipped).
					Return(map[string]any{"status": "Shipped", "trackingNumber": "TRK1"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "Status fora do conjunto aceito",
			target:     "/v1/orders/7",
			payload:    `{"status":"Returned"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidStatus,
		},
		{
			name:       "Pedido inexistente",
			target:     "/v1/orders/99",
			payload:    `{"status":"Shipped"}`,
			wantStatus: http.StatusNotFound,
			wantCode:   apiErrors.ErrNotFound,
		},
		{
			name:       "ID não numérico",
			target:     "/v1/orders/abc",
			payload:    `{"status":"Shipped"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidRequest,
		},
		{
			name:    "Sessão expirada durante a chamada",
			target:  "/v1/orders/7",
			payload: `{"status":"Shipped"}`,
			setup: func(api *mocks.MockSellerAPI) {
				api.EXPECT().
					UpdateOrderStatus(gomock.Any(), 7, domain.StatusShipped).
					Return(nil, &astroclient.APIError{Status: http.StatusUnauthorized})
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrSessionExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt, api, _ := newOrdersRouter(t, true)
			refreshOrders(t, rt, api, []*domain.Order{{ID: 7, Status: domain.StatusPending}})
			if tt.setup != nil {
				tt.setup(api)
			}

			recorder := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPatch, tt.target, strings.NewReader(tt.payload))
			rt.ServeHTTP(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			if tt.wantCode != "" {
				body := decodeErrorBody(t, recorder)
				assert.Equal(t, tt.wantCode, body.Code)
			}
		})
	}
}

func TestUpdateOrderStatus_FalhaDevolveOEstadoRestaurado(t *testing.T) {
	rt, api, _ := newOrdersRouter(t, true)
	refreshOrders(t, rt, api, []*domain.Order{{ID: 7, Status: domain.StatusPending}})

	api.EXPECT().
		UpdateOrderStatus(gomock.Any(), 7, domain.StatusShipped).
		Return(nil, errors.New("connection refused"))

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/v1/orders/7", strings.NewReader(`{"status":"Shipped"}`))
	rt.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)

	body := decodeErrorBody(t, recorder)
	details, ok := body.Details.(map[string]any)
	require.True(t, ok)
	restored, ok := details["order"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Pending", restored["status"], "o corpo de erro carrega o snapshot restaurado")
}

func TestGenerateInvoice(t *testing.T) {
	rt, api, _ := newOrdersRouter(t, true)
	refreshOrders(t, rt, api, []*domain.Order{{ID: 3, Status: domain.StatusDelivered}})

	api.EXPECT().
		GenerateInvoice(gomock.Any(), 3).
		Return(&domain.Invoice{OrderID: 3, InvoiceNumber: "INV-001"}, nil)

	recorder := httptest.NewRecorder()
	rt.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/v1/orders/3/invoice", nil))

	require.Equal(t, http.StatusOK, recorder.Code)

	var invoice domain.Invoice
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &invoice))
	assert.Equal(t, "INV-001", invoice.InvoiceNumber)
}
