package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"
)

// Config reúne as configurações da aplicação lidas do ambiente
type Config struct {
	HTTP     HTTPConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Log      LogConfig
	Redis    RedisConfig
	ViaCEP   ViaCEPConfig
	Storage  StorageConfig
	PDF      PDFConfig
}

// HTTPConfig configura o servidor HTTP
type HTTPConfig struct {
	Port        string `env:"PORT,default=8080"`
	BasePath    string `env:"API_BASE_PATH,default=/api/v1"`
	GinMode     string `env:"GIN_MODE,default=debug"`
	CORSOrigins string `env:"CORS_ORIGINS,default=*"` // separados por vírgula
}

// DatabaseConfig configura a conexão com o PostgreSQL
type DatabaseConfig struct {
	URL             string        `env:"DATABASE_URL"`
	Host            string        `env:"DB_HOST,default=localhost"`
	Port            int           `env:"DB_PORT,default=5432"`
	User            string        `env:"DB_USER,default=postgres"`
	Password        string        `env:"DB_PASSWORD,default=postgres"`
	Name            string        `env:"DB_NAME,default=confeitaria"`
	SSLMode         string        `env:"DB_SSL_MODE,default=disable"`
	MaxConnections  int32         `env:"DB_MAX_CONNECTIONS,default=10"`
	MinConnections  int32         `env:"DB_MIN_CONNECTIONS,default=1"`
	MaxConnLifetime time.Duration `env:"DB_MAX_LIFETIME,default=1h"`
	MigrationsPath  string        `env:"MIGRATIONS_PATH,default=migrations"`
}

// JWTConfig configura a emissão de tokens
type JWTConfig struct {
	SecretKey       string `env:"JWT_SECRET_KEY"`
	ExpirationHours int    `env:"JWT_EXPIRATION_HOURS,default=24"`
}

// LogConfig configura o logger
type LogConfig struct {
	Level  string `env:"LOG_LEVEL,default=info"`
	Format string `env:"LOG_FORMAT,default=text"`
}

// RedisConfig configura o armazenamento dos rascunhos
type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR,default=localhost:6379"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB,default=0"`
	DraftTTL time.Duration `env:"DRAFT_TTL,default=72h"`
}

// ViaCEPConfig configura a consulta de CEP
type ViaCEPConfig struct {
	BaseURL        string        `env:"VIACEP_URL,default=https://viacep.com.br"`
	Timeout        time.Duration `env:"VIACEP_TIMEOUT,default=10s"`
	RequestsPerSec float64       `env:"VIACEP_RATE,default=5"`
}

// StorageConfig configura o bucket de imagens de produtos
type StorageConfig struct {
	URL    string `env:"SUPABASE_URL"`
	APIKey string `env:"SUPABASE_SERVICE_KEY"`
	Bucket string `env:"STORAGE_BUCKET,default=products"`
}

// PDFConfig configura a geração dos PDFs de orçamento
type PDFConfig struct {
	ChromePath string        `env:"CHROME_PATH"`
	Timeout    time.Duration `env:"PDF_TIMEOUT,default=30s"`
}

// Load lê a configuração do ambiente
func Load() (*Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, fmt.Errorf("erro ao ler configuração: %w", err)
	}
	return &cfg, nil
}

// ConnectionString retorna a string de conexão para o PostgreSQL
func (c DatabaseConfig) ConnectionString() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode,
	)
}

// Origins devolve a lista de origens permitidas no CORS
func (c HTTPConfig) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// StorageEnabled indica se o upload de imagens está configurado
func (c StorageConfig) StorageEnabled() bool {
	return c.URL != "" && c.APIKey != ""
}
