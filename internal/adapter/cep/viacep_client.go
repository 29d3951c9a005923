package cep

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/hugohenrick/confeitaria-orcamentos/internal/config"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/domain/client"
	"github.com/hugohenrick/confeitaria-orcamentos/pkg/logger"
	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"
)

var (
	ErrInvalidCEP  = errors.New("CEP deve ter 8 dígitos")
	ErrCEPNotFound = errors.New("CEP não encontrado")
)

// Address é o endereço devolvido pela consulta
type Address struct {
	ZipCode      string
	Street       string
	Neighborhood string
	City         string
	State        string
}

// Lookup consulta endereços pelo CEP
type Lookup interface {
	Find(ctx context.Context, cep string) (*Address, error)
}

// ViaCEPClient consulta o serviço público ViaCEP
type ViaCEPClient struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     logger.Logger
}

// NewViaCEPClient cria o cliente com timeout e limite de chamadas por segundo
func NewViaCEPClient(cfg config.ViaCEPConfig, log logger.Logger) *ViaCEPClient {
	limit := rate.Inf
	if cfg.RequestsPerSec > 0 {
		limit = rate.Limit(cfg.RequestsPerSec)
	}
	return &ViaCEPClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(limit, 1),
		logger:     log,
	}
}

// Find busca o endereço de um CEP. O CEP pode vir com máscara.
func (c *ViaCEPClient) Find(ctx context.Context, cep string) (*Address, error) {
	digits := client.OnlyDigits(cep)
	if len(digits) != 8 {
		return nil, ErrInvalidCEP
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("erro ao aguardar limite de consultas: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/ws/%s/json/", c.baseURL, digits), nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao montar consulta de CEP: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar CEP: %w", err)
	}
	defer resp.Body.Close()

	// ViaCEP responde 400 para formato inválido
	if resp.StatusCode == http.StatusBadRequest {
		return nil, ErrInvalidCEP
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("erro ao consultar CEP: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta do CEP: %w", err)
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("erro ao consultar CEP: resposta inválida")
	}

	result := gjson.ParseBytes(body)
	// o campo erro vem como booleano ou como string "true"
	if e := result.Get("erro"); e.Exists() && e.Bool() {
		return nil, ErrCEPNotFound
	}

	addr := &Address{
		ZipCode:      digits,
		Street:       result.Get("logradouro").String(),
		Neighborhood: result.Get("bairro").String(),
		City:         result.Get("localidade").String(),
		State:        result.Get("uf").String(),
	}
	c.logger.Debug("CEP consultado", "cep", digits, "city", addr.City)
	return addr, nil
}
