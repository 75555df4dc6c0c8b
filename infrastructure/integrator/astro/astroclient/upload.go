package astroclient

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/pkg/errors"
)

// UploadFile é um arquivo a enviar no payload multipart. Reader é consumido
// integralmente durante o envio.
type UploadFile struct {
	FieldName string
	FileName  string
	Reader    io.Reader
}

// Upload envia os arquivos como multipart/form-data. Segue as mesmas regras
// de credencial e normalização das chamadas JSON.
func (c *AstroClient) Upload(ctx context.Context, route string, files []UploadFile, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for _, file := range files {
		part, err := writer.CreateFormFile(file.FieldName, file.FileName)
		if err != nil {
			return errors.Wrap(err, "erro ao montar o payload multipart")
		}
		if _, err := io.Copy(part, file.Reader); err != nil {
			return errors.Wrapf(err, "erro ao copiar o arquivo %s", file.FileName)
		}
	}

	if err := writer.Close(); err != nil {
		return errors.Wrap(err, "erro ao finalizar o payload multipart")
	}

	req, err := c.newRequest(ctx, http.MethodPost, route, &buf)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	respBody, err := c.execute(req)
	if err != nil {
		return err
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return errors.Wrap(err, "erro ao decodificar a resposta do upload")
	}
	return nil
}
