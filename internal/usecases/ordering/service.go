package ordering

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/seller-console/infrastructure/integrator/astro"
	"github.com/vfg2006/seller-console/internal/domain"
	"github.com/vfg2006/seller-console/internal/optimistic"
)

// OrderService é o controlador da view de pedidos: mantém a cópia transitória
// da coleção para renderização e despacha mutações para a API da Astro.
type OrderService interface {
	Refresh(ctx context.Context) ([]domain.Order, error)
	Orders() []domain.Order
	UpdateStatus(ctx context.Context, orderID int, status domain.OrderStatus) (*domain.Order, error)
	GenerateInvoice(ctx context.Context, orderID int) (*domain.Invoice, error)
}

type Service struct {
	api    astro.SellerAPI
	orders *optimistic.Collection[domain.Order]
}

func NewService(api astro.SellerAPI) *Service {
	return &Service{
		api: api,
		orders: optimistic.NewCollection(func(o domain.Order) int {
			return o.ID
		}),
	}
}

// Refresh busca a coleção de pedidos e substitui o estado local. Chamado a
// cada ativação da view; não existe cache entre ativações.
func (s *Service) Refresh(ctx context.Context) ([]domain.Order, error) {
	fetched, err := s.api.ListOrders(ctx)
	if err != nil {
		return nil, err
	}

	orders := make([]domain.Order, 0, len(fetched))
	for _, order := range fetched {
		orders = append(orders, *order)
	}
	s.orders.Replace(orders)

	return s.orders.Items(), nil
}

// Orders devolve o estado corrente da view, incluindo escritas otimistas
// ainda não confirmadas.
func (s *Service) Orders() []domain.Order {
	return s.orders.Items()
}

// UpdateStatus aplica a mutação otimista de status e emite a chamada de rede.
// A escrita local precede a chamada; o desfecho (commit ou rollback) só
// acontece quando esta chamada específica se resolve.
func (s *Service) UpdateStatus(ctx context.Context, orderID int, status domain.OrderStatus) (*domain.Order, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	mutation, err := s.orders.Begin(orderID, func(o *domain.Order) {
		o.Status = status
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"order_id": orderID,
		"status":   status,
	}).Info("ordering: atualizando status do pedido")

	partial, err := s.api.UpdateOrderStatus(ctx, orderID, status)
	if err != nil {
		// Restaura o snapshot exato capturado antes da escrita otimista.
		mutation.Rollback()
		return nil, err
	}

	patch, err := decodeOrderPatch(partial)
	if err != nil {
		// Resposta fora do contrato: mantém a escrita otimista, mas avisa.
		logrus.WithError(err).WithField("order_id", orderID).
			Warn("ordering: resposta de atualização fora do contrato, mesclagem ignorada")
		mutation.Commit(nil)
	} else {
		mutation.Commit(func(o *domain.Order) {
			patch.applyTo(o)
		})
	}

	updated, _ := s.orders.Get(orderID)
	return &updated, nil
}

// GenerateInvoice solicita a fatura de um pedido entregue. Não altera o
// estado local: o número de fatura passa a aparecer no próximo refresh.
func (s *Service) GenerateInvoice(ctx context.Context, orderID int) (*domain.Invoice, error) {
	invoice, err := s.api.GenerateInvoice(ctx, orderID)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"order_id": orderID,
		"invoice":  invoice.InvoiceNumber,
	}).Info("ordering: fatura gerada")

	return invoice, nil
}
