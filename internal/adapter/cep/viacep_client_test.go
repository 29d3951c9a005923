package cep

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hugohenrick/confeitaria-orcamentos/internal/config"
	"github.com/hugohenrick/confeitaria-orcamentos/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *ViaCEPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewViaCEPClient(config.ViaCEPConfig{BaseURL: srv.URL, Timeout: 2 * time.Second}, logger.Nop())
}

func TestFindAddress(t *testing.T) {
	var path string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"cep":"01001-000","logradouro":"Praça da Sé","bairro":"Sé","localidade":"São Paulo","uf":"SP"}`))
	})

	addr, err := c.Find(context.Background(), "01001-000")
	require.NoError(t, err)
	assert.Equal(t, "/ws/01001000/json/", path)
	assert.Equal(t, "01001000", addr.ZipCode)
	assert.Equal(t, "Praça da Sé", addr.Street)
	assert.Equal(t, "Sé", addr.Neighborhood)
	assert.Equal(t, "São Paulo", addr.City)
	assert.Equal(t, "SP", addr.State)
}

func TestFindNotFound(t *testing.T) {
	for _, body := range []string{`{"erro": true}`, `{"erro": "true"}`} {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(body))
		})
		_, err := c.Find(context.Background(), "99999999")
		assert.ErrorIs(t, err, ErrCEPNotFound, body)
	}
}

func TestFindInvalidCEPDoesNotCallService(t *testing.T) {
	called := false
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	_, err := c.Find(context.Background(), "1234")
	assert.ErrorIs(t, err, ErrInvalidCEP)
	assert.False(t, called)
}

func TestFindServiceError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	_, err := c.Find(context.Background(), "01001000")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCEPNotFound)
}
