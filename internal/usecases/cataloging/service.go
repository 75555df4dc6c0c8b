package cataloging

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/seller-console/infrastructure/integrator/astro"
	"github.com/vfg2006/seller-console/infrastructure/integrator/astro/astroclient"
	"github.com/vfg2006/seller-console/internal/domain"
	"github.com/vfg2006/seller-console/internal/optimistic"
	"github.com/vfg2006/seller-console/internal/uploads"
)

// ErrMissingRequiredFields indica campos obrigatórios ausentes na criação de
// um produto. A checagem local é apenas de presença; toda validação de
// negócio é do servidor.
var ErrMissingRequiredFields = errors.New("nome, descrição, preço, categoria e estoque são obrigatórios")

// NewProductInput são os campos do formulário de criação. As imagens vêm do
// staging de previews, nunca deste payload.
type NewProductInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
}

// ProductService é o controlador da view de produtos.
type ProductService interface {
	Refresh(ctx context.Context) ([]domain.Product, error)
	Products() []domain.Product
	StageImages(files []uploads.IncomingFile) ([]uploads.StagedImage, error)
	OpenPreview(id string) (io.ReadCloser, *uploads.StagedImage, error)
	Create(ctx context.Context, input NewProductInput) (*domain.Product, error)
	UpdatePricing(ctx context.Context, productID int, pricing domain.ProductPricing) (*domain.Product, error)
	Toggle(ctx context.Context, productID int) (*domain.Product, error)
	Delete(ctx context.Context, productID int) (string, error)
}

type Service struct {
	api      astro.SellerAPI
	staging  *uploads.Staging
	products *optimistic.Collection[domain.Product]
}

func NewService(api astro.SellerAPI, staging *uploads.Staging) *Service {
	return &Service{
		api:     api,
		staging: staging,
		products: optimistic.NewCollection(func(p domain.Product) int {
			return p.ID
		}),
	}
}

// Refresh busca a coleção de produtos e substitui o estado local.
func (s *Service) Refresh(ctx context.Context) ([]domain.Product, error) {
	fetched, err := s.api.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	products := make([]domain.Product, 0, len(fetched))
	for _, product := range fetched {
		products = append(products, *product)
	}
	s.products.Replace(products)

	return s.products.Items(), nil
}

func (s *Service) Products() []domain.Product {
	return s.products.Items()
}

// StageImages substitui o conjunto de previews pelo novo. O conjunto anterior
// é liberado na troca.
func (s *Service) StageImages(files []uploads.IncomingFile) ([]uploads.StagedImage, error) {
	return s.staging.Stage(files)
}

func (s *Service) OpenPreview(id string) (io.ReadCloser, *uploads.StagedImage, error) {
	return s.staging.Open(id)
}

// Create executa o commit em duas fases: primeiro o upload dos arquivos em
// staging, que devolve as URLs duráveis; só então a criação do produto
// carregando essas URLs. As referências locais nunca chegam ao payload de
// criação e são liberadas após o sucesso.
func (s *Service) Create(ctx context.Context, input NewProductInput) (*domain.Product, error) {
	if err := validateNewProduct(input); err != nil {
		return nil, err
	}

	imageURLs, err := s.uploadStagedImages(ctx)
	if err != nil {
		return nil, err
	}

	created, err := s.api.CreateProduct(ctx, domain.NewProduct{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		Stock:       input.Stock,
		Images:      imageURLs,
	})
	if err != nil {
		// Os previews ficam em staging: o vendedor pode corrigir e reenviar
		// sem selecionar os arquivos de novo.
		return nil, err
	}

	s.staging.Release()

	logrus.WithFields(logrus.Fields{
		"product_id": created.ID,
		"images":     len(imageURLs),
	}).Info("cataloging: produto criado")

	if _, err := s.Refresh(ctx); err != nil {
		logrus.WithError(err).Warn("cataloging: falha ao recarregar produtos após criação")
	}

	return created, nil
}

// uploadStagedImages abre cada preview e envia o payload multipart.
func (s *Service) uploadStagedImages(ctx context.Context) ([]string, error) {
	staged := s.staging.List()
	if len(staged) == 0 {
		return nil, nil
	}

	files := make([]astroclient.UploadFile, 0, len(staged))
	readers := make([]io.ReadCloser, 0, len(staged))
	defer func() {
		for _, r := range readers {
			r.Close()
		}
	}()

	for _, image := range staged {
		reader, _, err := s.staging.Open(image.ID)
		if err != nil {
			return nil, err
		}
		readers = append(readers, reader)
		files = append(files, astroclient.UploadFile{
			FieldName: "files",
			FileName:  image.FileName,
			Reader:    reader,
		})
	}

	return s.api.UploadImages(ctx, files)
}

// UpdatePricing altera preço e estoque e mescla a resposta autoritativa no
// estado local.
func (s *Service) UpdatePricing(ctx context.Context, productID int, pricing domain.ProductPricing) (*domain.Product, error) {
	updated, err := s.api.UpdateProductPricing(ctx, productID, pricing)
	if err != nil {
		return nil, err
	}

	s.products.Update(productID, func(p *domain.Product) {
		*p = *updated
	})
	return updated, nil
}

// Toggle alterna a flag de ativo do produto.
func (s *Service) Toggle(ctx context.Context, productID int) (*domain.Product, error) {
	if err := s.api.ToggleProduct(ctx, productID); err != nil {
		return nil, err
	}

	s.products.Update(productID, func(p *domain.Product) {
		p.IsActive = !p.IsActive
	})

	product, ok := s.products.Get(productID)
	if !ok {
		return nil, nil
	}
	return &product, nil
}

// Delete remove o produto no servidor e, confirmado, tira-o imediatamente da
// coleção local. A mensagem do servidor é devolvida sem reformulação.
func (s *Service) Delete(ctx context.Context, productID int) (string, error) {
	message, err := s.api.DeleteProduct(ctx, productID)
	if err != nil {
		return "", err
	}

	s.products.Remove(productID)
	return message, nil
}

func validateNewProduct(input NewProductInput) error {
	if strings.TrimSpace(input.Name) == "" ||
		strings.TrimSpace(input.Description) == "" ||
		strings.TrimSpace(input.Category) == "" ||
		input.Price <= 0 || input.Stock < 0 {
		return ErrMissingRequiredFields
	}
	return nil
}
