package handler

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/seller-console/internal/domain"
	"github.com/vfg2006/seller-console/internal/uploads"
	"github.com/vfg2006/seller-console/internal/usecases/cataloging"
	"github.com/vfg2006/seller-console/pkg/apiErrors"
	"github.com/vfg2006/seller-console/pkg/log"
)

// maxStagingMemory limita quanto do formulário multipart fica em memória
// antes de transbordar para disco.
const maxStagingMemory = 32 << 20

type DeleteProductResponse struct {
	Message string `json:"message"`
}

type StageImagesResponse struct {
	Images []uploads.StagedImage `json:"images"`
}

// ListProducts recarrega a coleção de produtos a cada ativação da view.
func ListProducts(service cataloging.ProductService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		products, err := service.Refresh(r.Context())
		if err != nil {
			writeUpstreamError(w, r, err, "Falha ao carregar os produtos")
			return
		}

		writeJSON(w, http.StatusOK, products)
	})
}

// CreateProduct submete o formulário de criação. As imagens não vêm no corpo:
// são os previews já em staging, enviados ao servidor antes da criação.
func CreateProduct(service cataloging.ProductService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var input cataloging.NewProductInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		created, err := service.Create(r.Context(), input)
		if err != nil {
			if errors.Is(err, cataloging.ErrMissingRequiredFields) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
				return
			}
			writeUpstreamError(w, r, err, "Falha ao criar o produto. Tente novamente.")
			return
		}

		log.ForContext(r.Context()).
			WithField("product_id", created.ID).
			Info("products: produto criado")

		writeJSON(w, http.StatusCreated, created)
	})
}

// UpdateProductPricing altera preço e estoque de um produto.
func UpdateProductPricing(service cataloging.ProductService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		productID, err := productIDFromRequest(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "ID de produto inválido", nil)
			return
		}

		var pricing domain.ProductPricing
		if err := json.NewDecoder(r.Body).Decode(&pricing); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		updated, err := service.UpdatePricing(r.Context(), productID, pricing)
		if err != nil {
			writeUpstreamError(w, r, err, "Falha ao atualizar o produto. Tente novamente.")
			return
		}

		writeJSON(w, http.StatusOK, updated)
	})
}

// ToggleProduct alterna a visibilidade do produto na loja.
func ToggleProduct(service cataloging.ProductService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		productID, err := productIDFromRequest(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "ID de produto inválido", nil)
			return
		}

		updated, err := service.Toggle(r.Context(), productID)
		if err != nil {
			writeUpstreamError(w, r, err, "Falha ao alterar a visibilidade do produto. Tente novamente.")
			return
		}

		writeJSON(w, http.StatusOK, updated)
	})
}

// DeleteProduct remove o produto. A mensagem de confirmação do servidor é
// repassada sem reformulação.
func DeleteProduct(service cataloging.ProductService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		productID, err := productIDFromRequest(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "ID de produto inválido", nil)
			return
		}

		message, err := service.Delete(r.Context(), productID)
		if err != nil {
			writeUpstreamError(w, r, err, "Falha ao excluir o produto. Tente novamente.")
			return
		}

		log.ForContext(r.Context()).
			WithField("product_id", productID).
			Info("products: produto excluído")

		writeJSON(w, http.StatusOK, DeleteProductResponse{Message: message})
	})
}

// StageImages recebe os arquivos selecionados no formulário e os coloca em
// staging para preview. A seleção substitui a anterior; nada sobe para a API
// da Astro neste momento.
func StageImages(service cataloging.ProductService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxStagingMemory); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formulário multipart inválido", nil)
			return
		}
		defer r.MultipartForm.RemoveAll()

		headers := r.MultipartForm.File["files"]
		if len(headers) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nenhum arquivo enviado", nil)
			return
		}

		files := make([]uploads.IncomingFile, 0, len(headers))
		opened := make([]io.Closer, 0, len(headers))
		defer func() {
			for _, f := range opened {
				f.Close()
			}
		}()

		for _, header := range headers {
			file, err := header.Open()
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Falha ao ler o arquivo enviado", nil)
				return
			}
			opened = append(opened, file)
			files = append(files, uploads.IncomingFile{
				FileName: header.Filename,
				Reader:   file,
			})
		}

		staged, err := service.StageImages(files)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("products: falha ao preparar previews")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Falha ao preparar os previews", nil)
			return
		}

		writeJSON(w, http.StatusOK, StageImagesResponse{Images: staged})
	})
}

// GetPreview serve o conteúdo de um preview em staging para o <img> da view.
func GetPreview(service cataloging.ProductService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		reader, image, err := service.OpenPreview(id)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				apiErrors.WriteError(w, apiErrors.ErrNotFound, "Preview não encontrado", nil)
				return
			}
			log.ForContext(r.Context()).WithError(err).Error("products: falha ao abrir preview")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Falha ao abrir o preview", nil)
			return
		}
		defer reader.Close()

		contentType := mime.TypeByExtension(filepath.Ext(image.FileName))
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Length", strconv.FormatInt(image.Size, 10))
		if _, err := io.Copy(w, reader); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("products: falha ao transmitir preview")
		}
	})
}

func productIDFromRequest(r *http.Request) (int, error) {
	raw := httprouter.ParamsFromContext(r.Context()).ByName("id")
	return strconv.Atoi(raw)
}
