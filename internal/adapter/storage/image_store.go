package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/config"
	"github.com/hugohenrick/confeitaria-orcamentos/pkg/logger"
)

const (
	maxImageDimension = 800
	jpegQuality       = 85
)

var (
	ErrStorageDisabled = errors.New("armazenamento de imagens não configurado")
	ErrInvalidImage    = errors.New("arquivo enviado não é uma imagem válida")
)

// ImageStore grava imagens de produtos e devolve a URL pública
type ImageStore interface {
	Upload(ctx context.Context, productID string, r io.Reader) (string, error)
}

// SupabaseStore grava no Supabase Storage pela API REST
type SupabaseStore struct {
	baseURL    string
	apiKey     string
	bucket     string
	httpClient *http.Client
	logger     logger.Logger
	now        func() time.Time
}

// NewSupabaseStore cria o cliente do bucket configurado
func NewSupabaseStore(cfg config.StorageConfig, log logger.Logger) *SupabaseStore {
	return &SupabaseStore{
		baseURL:    strings.TrimRight(cfg.URL, "/"),
		apiKey:     cfg.APIKey,
		bucket:     cfg.Bucket,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     log,
		now:        time.Now,
	}
}

// Optimize reduz a imagem para no máximo 800px no maior lado e converte para JPEG
func Optimize(r io.Reader) ([]byte, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	// Fit só reduz; imagens menores são mantidas
	resized := imaging.Fit(img, maxImageDimension, maxImageDimension, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return nil, fmt.Errorf("erro ao converter imagem para JPEG: %w", err)
	}
	return buf.Bytes(), nil
}

// ObjectPath monta o caminho do arquivo dentro do bucket
func (s *SupabaseStore) ObjectPath(productID string) string {
	return fmt.Sprintf("%s/%d.jpg", productID, s.now().Unix())
}

// PublicURL devolve a URL pública de um objeto do bucket
func (s *SupabaseStore) PublicURL(path string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, s.bucket, path)
}

// Upload otimiza a imagem e grava no bucket, sobrescrevendo se já existir
func (s *SupabaseStore) Upload(ctx context.Context, productID string, r io.Reader) (string, error) {
	if s.baseURL == "" || s.apiKey == "" {
		return "", ErrStorageDisabled
	}

	data, err := Optimize(r)
	if err != nil {
		return "", err
	}

	path := s.ObjectPath(productID)
	url := fmt.Sprintf("%s/storage/v1/object/%s/%s", s.baseURL, s.bucket, path)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("erro ao montar upload: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("apikey", s.apiKey)
	req.Header.Set("Content-Type", "image/jpeg")
	req.Header.Set("x-upsert", "true")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("erro ao enviar imagem: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("erro ao enviar imagem: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	s.logger.Info("imagem de produto enviada", "product_id", productID, "path", path, "bytes", len(data))
	return s.PublicURL(path), nil
}
