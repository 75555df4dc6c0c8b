package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/seller-console/internal/session"
	"github.com/vfg2006/seller-console/pkg/apiErrors"
)

func TestNavigationGuard_SemSessaoBloqueiaAAtivacao(t *testing.T) {
	store := session.NewMemoryStore()

	handlerCalled := false
	guarded := NavigationGuard(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
	}))

	recorder := httptest.NewRecorder()
	guarded.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/orders", nil))

	assert.False(t, handlerCalled, "o handler não pode executar sem sessão")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	var body apiErrors.APIError
	require.NoError(t, jsoniter.ConfigCompatibleWithStandardLibrary.
		Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, apiErrors.ErrUnauthenticated, body.Code)

	details, ok := body.Details.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "/login", details["redirect"])
}

func TestNavigationGuard_ComSessaoSegueParaOHandler(t *testing.T) {
	store := session.NewMemoryStore()
	require.NoError(t, store.Set("tok"))

	handlerCalled := false
	guarded := NavigationGuard(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		w.WriteHeader(http.StatusOK)
	}))

	recorder := httptest.NewRecorder()
	guarded.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/orders", nil))

	assert.True(t, handlerCalled)
	assert.Equal(t, http.StatusOK, recorder.Code)
}
