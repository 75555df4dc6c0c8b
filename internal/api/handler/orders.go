package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/seller-console/internal/domain"
	"github.com/vfg2006/seller-console/internal/usecases/ordering"
	"github.com/vfg2006/seller-console/pkg/apiErrors"
	"github.com/vfg2006/seller-console/pkg/log"
)

type UpdateOrderStatusRequest struct {
	Status domain.OrderStatus `json:"status"`
}

// ListOrders recarrega a coleção de pedidos a cada ativação da view.
func ListOrders(service ordering.OrderService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		orders, err := service.Refresh(r.Context())
		if err != nil {
			writeUpstreamError(w, r, err, "Falha ao carregar os pedidos")
			return
		}

		writeJSON(w, http.StatusOK, orders)
	})
}

// UpdateOrderStatus despacha a mutação otimista de status. A resposta traz o
// estado resolvido do pedido: o retorno autoritativo do servidor em caso de
// sucesso, e em caso de falha o corpo de erro carrega o snapshot restaurado
// para o controle de seleção da view se realinhar.
func UpdateOrderStatus(service ordering.OrderService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		orderID, err := orderIDFromRequest(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "ID de pedido inválido", nil)
			return
		}

		var req UpdateOrderStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		updated, err := service.UpdateStatus(r.Context(), orderID, req.Status)
		if err != nil {
			handleUpdateStatusError(w, r, service, orderID, err)
			return
		}

		logger.WithFields(log.Fields{
			"order_id": orderID,
			"status":   updated.Status,
		}).Info("orders: status atualizado")

		writeJSON(w, http.StatusOK, updated)
	})
}

// GenerateInvoice gera a fatura de um pedido entregue.
func GenerateInvoice(service ordering.OrderService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		orderID, err := orderIDFromRequest(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "ID de pedido inválido", nil)
			return
		}

		invoice, err := service.GenerateInvoice(r.Context(), orderID)
		if err != nil {
			writeUpstreamError(w, r, err, "Falha ao gerar a fatura")
			return
		}

		writeJSON(w, http.StatusOK, invoice)
	})
}

func handleUpdateStatusError(w http.ResponseWriter, r *http.Request, service ordering.OrderService, orderID int, err error) {
	switch {
	case errors.Is(err, ordering.ErrInvalidStatus):
		apiErrors.WriteError(w, apiErrors.ErrInvalidStatus, "Status de pedido inválido", map[string]any{
			"allowed": domain.ValidStatuses,
		})

	case errors.Is(err, ordering.ErrOrderNotFound):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Pedido não encontrado", nil)

	case errors.Is(err, ordering.ErrMutationInFlight):
		apiErrors.WriteError(w, apiErrors.ErrMutationInFlight,
			"Aguarde a atualização anterior deste pedido terminar", nil)

	default:
		// Rollback já aplicado pelo serviço; devolve o estado restaurado para
		// a view realinhar o controle de seleção.
		if restored, ok := snapshotAfterRollback(service, orderID); ok {
			writeUpstreamErrorWithDetails(w, r, err, "Falha ao atualizar o status do pedido. Tente novamente.", map[string]any{
				"order": restored,
			})
			return
		}
		writeUpstreamError(w, r, err, "Falha ao atualizar o status do pedido. Tente novamente.")
	}
}

func snapshotAfterRollback(service ordering.OrderService, orderID int) (*domain.Order, bool) {
	for _, order := range service.Orders() {
		if order.ID == orderID {
			return &order, true
		}
	}
	return nil, false
}

func orderIDFromRequest(r *http.Request) (int, error) {
	raw := httprouter.ParamsFromContext(r.Context()).ByName("id")
	return strconv.Atoi(raw)
}
