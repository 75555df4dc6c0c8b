package middleware

import (
	"net/http"

	"github.com/vfg2006/seller-console/internal/session"
	"github.com/vfg2006/seller-console/pkg/apiErrors"
	"github.com/vfg2006/seller-console/pkg/log"
)

// NavigationGuard protege a ativação de uma view: sem token na sessão, a
// resposta manda o navegador para a tela de login e o handler nem executa —
// nenhuma busca de dados acontece nesse ramo. Com token presente, segue para
// o handler, que relê o token por conta própria na hora da chamada; um token
// removido entre a checagem do guard e a chamada vira uma requisição sem
// credencial, tratada pelo 401 do interceptor.
func NavigationGuard(store session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := store.Get(); !ok {
				log.ForContext(r.Context()).WithField("path", r.URL.Path).
					Info("guard: sem sessão, redirecionando para login")

				apiErrors.WriteError(w, apiErrors.ErrUnauthenticated,
					"Faça login para acessar o console", map[string]any{
						"redirect": "/login",
					})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
