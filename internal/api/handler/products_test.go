package handler

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/seller-console/infrastructure/integrator/astro/astroclient"
	"github.com/vfg2006/seller-console/infrastructure/integrator/astro/mocks"
	"github.com/vfg2006/seller-console/internal/api/handler/router"
	"github.com/vfg2006/seller-console/internal/domain"
	"github.com/vfg2006/seller-console/internal/session"
	"github.com/vfg2006/seller-console/internal/uploads"
	"github.com/vfg2006/seller-console/internal/usecases/cataloging"
	"github.com/vfg2006/seller-console/pkg/apiErrors"
)

func newProductsRouter(t *testing.T) (router.Router, *mocks.MockSellerAPI) {
	t.Helper()

	ctrl := gomock.NewController(t)
	api := mocks.NewMockSellerAPI(ctrl)

	staging, err := uploads.NewStaging(t.TempDir())
	require.NoError(t, err)
	service := cataloging.NewService(api, staging)

	store := session.NewMemoryStore()
	require.NoError(t, store.Set("tok"))

	rt := router.New(router.WithRoutes(Products(service, store)...))
	return rt, api
}

func multipartBody(t *testing.T, files map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for name, content := range files {
		part, err := writer.CreateFormFile("files", name)
		require.NoError(t, err)
		_, err = io.WriteString(part, content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	return &buf, writer.FormDataContentType()
}

func stageViaHTTP(t *testing.T, rt router.Router, files map[string]string) StageImagesResponse {
	t.Helper()

	body, contentType := multipartBody(t, files)
	req := httptest.NewRequest(http.MethodPost, "/v1/products/images", body)
	req.Header.Set("Content-Type", contentType)

	recorder := httptest.NewRecorder()
	rt.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)

	var staged StageImagesResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &staged))
	return staged
}

func TestStageImagesEGetPreview(t *testing.T) {
	rt, _ := newProductsRouter(t)

	staged := stageViaHTTP(t, rt, map[string]string{"capa.png": "imagem-capa"})
	require.Len(t, staged.Images, 1)
	assert.Equal(t, "capa.png", staged.Images[0].FileName)

	recorder := httptest.NewRecorder()
	rt.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/products/images/"+staged.Images[0].ID, nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "image/png", recorder.Header().Get("Content-Type"))
	assert.Equal(t, "imagem-capa", recorder.Body.String())
}

func TestGetPreview_IDInexistente(t *testing.T) {
	rt, _ := newProductsRouter(t)

	recorder := httptest.NewRecorder()
	rt.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/products/images/nao-existe", nil))

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	body := decodeErrorBody(t, recorder)
	assert.Equal(t, apiErrors.ErrNotFound, body.Code)
}

func TestStageImages_SemArquivos(t *testing.T) {
	rt, _ := newProductsRouter(t)

	body, contentType := multipartBody(t, nil)
	req := httptest.NewRequest(http.MethodPost, "/v1/products/images", body)
	req.Header.Set("Content-Type", contentType)

	recorder := httptest.NewRecorder()
	rt.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	body2 := decodeErrorBody(t, recorder)
	assert.Equal(t, apiErrors.ErrMissingRequiredData, body2.Code)
}

func TestCreateProduct_FluxoEmDuasFases(t *testing.T) {
	rt, api := newProductsRouter(t)

	stageViaHTTP(t, rt, map[string]string{"capa.png": "imagem-capa"})

	api.EXPECT().
		UploadImages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, files []astroclient.UploadFile) ([]string, error) {
			require.Len(t, files, 1)
			return []string{"https://cdn.astro.dev/capa.png"}, nil
		})
	api.EXPECT().
		CreateProduct(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, product domain.NewProduct) (*domain.Product, error) {
			assert.Equal(t, []string{"https://cdn.astro.dev/capa.png"}, product.Images)
			return &domain.Product{ID: 42, Name: product.Name}, nil
		})
	api.EXPECT().ListProducts(gomock.Any()).Return([]*domain.Product{{ID: 42}}, nil)

	payload := `{"name":"Óculos","description":"Armação metálica","price":199.9,"category":"acessorios","stock":10}`
	recorder := httptest.NewRecorder()
	rt.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/v1/products", strings.NewReader(payload)))

	require.Equal(t, http.StatusCreated, recorder.Code)

	var created domain.Product
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &created))
	assert.Equal(t, 42, created.ID)
}

func TestCreateProduct_CamposObrigatoriosAusentes(t *testing.T) {
	rt, _ := newProductsRouter(t)

	recorder := httptest.NewRecorder()
	rt.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/v1/products", strings.NewReader(`{"name":""}`)))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	body := decodeErrorBody(t, recorder)
	assert.Equal(t, apiErrors.ErrMissingRequiredData, body.Code)
}

func TestUpdateProductPricing(t *testing.T) {
	rt, api := newProductsRouter(t)

	api.EXPECT().ListProducts(gomock.Any()).Return([]*domain.Product{{ID: 5, Price: 100}}, nil)
	recorder := httptest.NewRecorder()
	rt.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/products", nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	api.EXPECT().
		UpdateProductPricing(gomock.Any(), 5, domain.ProductPricing{Price: 149.9, Stock: 3}).
		Return(&domain.Product{ID: 5, Price: 149.9, Stock: 3}, nil)

	recorder = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/v1/products/5", strings.NewReader(`{"price":149.9,"stock":3}`))
	rt.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var updated domain.Product
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &updated))
	assert.Equal(t, 149.9, updated.Price)
}

func TestDeleteProduct_RepassaAMensagemDoServidor(t *testing.T) {
	rt, api := newProductsRouter(t)

	api.EXPECT().ListProducts(gomock.Any()).Return([]*domain.Product{{ID: 5}}, nil)
	recorder := httptest.NewRecorder()
	rt.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/products", nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	api.EXPECT().DeleteProduct(gomock.Any(), 5).Return("Produto removido com sucesso", nil)

	recorder = httptest.NewRecorder()
	rt.ServeHTTP(recorder, httptest.NewRequest(http.MethodDelete, "/v1/products/5", nil))

	require.Equal(t, http.StatusOK, recorder.Code)

	var resp DeleteProductResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, "Produto removido com sucesso", resp.Message)
}
