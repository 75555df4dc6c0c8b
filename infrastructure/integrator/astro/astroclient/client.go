package astroclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"path"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/seller-console/internal/session"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client é o único ponto de saída HTTP para a API da Astro. Dois
// comportamentos acompanham toda chamada:
//
//   - aumento da requisição: se o Store tiver um token no momento da chamada,
//     ele é anexado como credencial Bearer; ausente, a requisição segue sem
//     autenticação e o servidor recusa as rotas protegidas;
//   - normalização da resposta: qualquer 401 limpa o Store de forma síncrona
//     antes do erro ser propagado intacto ao chamador. Quem chama não pode
//     assumir que o token sobrevive a um caminho de erro.
type Client interface {
	Get(ctx context.Context, route string, out any, opts ...RequestOption) error
	Post(ctx context.Context, route string, body any, out any, opts ...RequestOption) error
	Patch(ctx context.Context, route string, body any, out any, opts ...RequestOption) error
	Delete(ctx context.Context, route string, out any, opts ...RequestOption) error
	Upload(ctx context.Context, route string, files []UploadFile, out any) error
}

// RequestOption ajusta cabeçalhos de uma única requisição.
type RequestOption func(*http.Request)

// WithHeader sobrescreve um cabeçalho apenas nesta requisição.
func WithHeader(key, value string) RequestOption {
	return func(r *http.Request) {
		r.Header.Set(key, value)
	}
}

type AstroClient struct {
	baseURL    string
	httpClient *http.Client
	store      session.Store
}

// NewClient cria o cliente apontando para o endereço fixo da API.
// Sem timeout próprio: uma chamada ou se resolve ou fica pendente; nenhuma
// requisição é repetida automaticamente.
func NewClient(baseURL string, store session.Store) *AstroClient {
	return &AstroClient{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		store:      store,
	}
}

func (c *AstroClient) Get(ctx context.Context, route string, out any, opts ...RequestOption) error {
	return c.doJSON(ctx, http.MethodGet, route, nil, out, opts)
}

func (c *AstroClient) Post(ctx context.Context, route string, body any, out any, opts ...RequestOption) error {
	return c.doJSON(ctx, http.MethodPost, route, body, out, opts)
}

func (c *AstroClient) Patch(ctx context.Context, route string, body any, out any, opts ...RequestOption) error {
	return c.doJSON(ctx, http.MethodPatch, route, body, out, opts)
}

func (c *AstroClient) Delete(ctx context.Context, route string, out any, opts ...RequestOption) error {
	return c.doJSON(ctx, http.MethodDelete, route, nil, out, opts)
}

// doJSON serializa o corpo, executa a chamada e decodifica a resposta 2xx em
// out (quando out não é nil).
func (c *AstroClient) doJSON(ctx context.Context, method, route string, body any, out any, opts []RequestOption) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "erro ao serializar o corpo da requisição")
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := c.newRequest(ctx, method, route, reader)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for _, opt := range opts {
		opt(req)
	}

	respBody, err := c.execute(req)
	if err != nil {
		return err
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return errors.Wrap(err, "erro ao decodificar a resposta da API")
	}
	return nil
}

// newRequest monta a requisição relativa ao endereço base.
func (c *AstroClient) newRequest(ctx context.Context, method, route string, body io.Reader) (*http.Request, error) {
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao analisar a URL base")
	}
	endpoint.Path = path.Join(endpoint.Path, route)

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}
	return req, nil
}

// execute dispara a requisição aplicando o aumento de credencial e a
// normalização de resposta.
func (c *AstroClient) execute(req *http.Request) ([]byte, error) {
	// O token é relido a cada chamada: pode ter sido limpo por uma chamada
	// concorrente entre a checagem do guard e este ponto.
	if token, ok := c.store.Get(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler a resposta")
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return respBody, nil
	}

	if resp.StatusCode == http.StatusUnauthorized {
		// Sessão recusada pelo servidor: derruba o token antes de devolver o
		// erro. Quem decide redirecionar é o chamador.
		if clearErr := c.store.Clear(); clearErr != nil {
			logrus.WithError(clearErr).Error("astro: falha ao limpar a sessão após 401")
		}
		logrus.WithFields(logrus.Fields{
			"method": req.Method,
			"path":   req.URL.Path,
		}).Warn("astro: sessão expirada, token removido")
	}

	return nil, newAPIError(resp.StatusCode, respBody)
}
