package astro

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/seller-console/infrastructure/integrator/astro/astroclient"
	"github.com/vfg2006/seller-console/internal/domain"
)

// SellerAPI são as operações da API da Astro consumidas pelo console.
// As respostas de mutação devolvem a entidade atualizada (ou um parcial dela)
// para ser mesclada de volta no estado local da view.
type SellerAPI interface {
	Login(ctx context.Context, credentials domain.Credentials) (string, error)

	Dashboard(ctx context.Context) (*domain.DashboardSummary, error)

	ListOrders(ctx context.Context) ([]*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID int, status domain.OrderStatus) (map[string]any, error)
	GenerateInvoice(ctx context.Context, orderID int) (*domain.Invoice, error)

	ListProducts(ctx context.Context) ([]*domain.Product, error)
	CreateProduct(ctx context.Context, product domain.NewProduct) (*domain.Product, error)
	UploadImages(ctx context.Context, files []astroclient.UploadFile) ([]string, error)
	UpdateProductPricing(ctx context.Context, productID int, pricing domain.ProductPricing) (*domain.Product, error)
	ToggleProduct(ctx context.Context, productID int) error
	DeleteProduct(ctx context.Context, productID int) (string, error)
}

type Integrator struct {
	client astroclient.Client
}

func New(client astroclient.Client) *Integrator {
	return &Integrator{client: client}
}

func (s *Integrator) Login(ctx context.Context, credentials domain.Credentials) (string, error) {
	var resp struct {
		Token string `json:"token"`
	}
	if err := s.client.Post(ctx, "/auth/login", credentials, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

func (s *Integrator) Dashboard(ctx context.Context) (*domain.DashboardSummary, error) {
	summary := &domain.DashboardSummary{}
	if err := s.client.Get(ctx, "/seller/dashboard", summary); err != nil {
		return nil, err
	}
	return summary, nil
}

func (s *Integrator) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	var orders []*domain.Order
	if err := s.client.Get(ctx, "/orders", &orders); err != nil {
		return nil, err
	}

	logrus.WithField("count", len(orders)).Debug("astro: pedidos carregados")
	return orders, nil
}

// UpdateOrderStatus devolve os campos retornados pelo servidor como um mapa
// cru. O servidor pode incluir campos derivados (rastreio, fatura), então a
// mescla no estado local é feita pelo chamador via contrato tipado.
func (s *Integrator) UpdateOrderStatus(ctx context.Context, orderID int, status domain.OrderStatus) (map[string]any, error) {
	body := map[string]any{"status": status}

	var updated map[string]any
	route := fmt.Sprintf("/orders/%d", orderID)
	if err := s.client.Patch(ctx, route, body, &updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Integrator) GenerateInvoice(ctx context.Context, orderID int) (*domain.Invoice, error) {
	invoice := &domain.Invoice{}
	route := fmt.Sprintf("/orders/%d/invoice", orderID)
	if err := s.client.Get(ctx, route, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

func (s *Integrator) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	var products []*domain.Product
	if err := s.client.Get(ctx, "/products", &products); err != nil {
		return nil, err
	}

	logrus.WithField("count", len(products)).Debug("astro: produtos carregados")
	return products, nil
}

func (s *Integrator) CreateProduct(ctx context.Context, product domain.NewProduct) (*domain.Product, error) {
	created := &domain.Product{}
	if err := s.client.Post(ctx, "/products", product, created); err != nil {
		return nil, err
	}
	return created, nil
}

// UploadImages envia os arquivos e devolve as URLs duráveis geradas pelo
// servidor. Apenas essas URLs podem aparecer na criação do produto.
func (s *Integrator) UploadImages(ctx context.Context, files []astroclient.UploadFile) ([]string, error) {
	var resp struct {
		URLs []string `json:"urls"`
	}
	if err := s.client.Upload(ctx, "/products/upload", files, &resp); err != nil {
		return nil, err
	}
	return resp.URLs, nil
}

func (s *Integrator) UpdateProductPricing(ctx context.Context, productID int, pricing domain.ProductPricing) (*domain.Product, error) {
	updated := &domain.Product{}
	route := fmt.Sprintf("/products/%d", productID)
	if err := s.client.Patch(ctx, route, pricing, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Integrator) ToggleProduct(ctx context.Context, productID int) error {
	route := fmt.Sprintf("/products/%d/toggle", productID)
	return s.client.Patch(ctx, route, map[string]any{}, nil)
}

// DeleteProduct devolve a mensagem de confirmação do servidor, exibida ao
// vendedor sem reformulação.
func (s *Integrator) DeleteProduct(ctx context.Context, productID int) (string, error) {
	var resp struct {
		Message string `json:"message"`
	}
	route := fmt.Sprintf("/products/%d", productID)
	if err := s.client.Delete(ctx, route, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}
