package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hugohenrick/confeitaria-orcamentos/internal/config"
	"github.com/hugohenrick/confeitaria-orcamentos/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

func main() {
	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Erro ao carregar configuração: %v", err)
	}

	appLogger := logger.NewLogger(logger.Options{Level: cfg.Log.Level, Format: cfg.Log.Format})

	// Valores monetários saem como número no JSON
	decimal.MarshalJSONWithoutQuotes = true

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Criar aplicação
	app, err := NewApp(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Error("erro ao iniciar aplicação", "error", err)
		os.Exit(1)
	}

	// Iniciar o servidor
	err = app.Run(ctx)
	app.Close()
	if err != nil {
		appLogger.Error("servidor encerrado com erro", "error", err)
		os.Exit(1)
	}
}
