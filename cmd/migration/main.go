package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"time"

	"github.com/hugohenrick/confeitaria-orcamentos/internal/adapter/repository"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/config"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/domain/user"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/infrastructure/database"
	"github.com/hugohenrick/confeitaria-orcamentos/pkg/logger"
	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// adminSeed é o administrador criado na primeira execução
type adminSeed struct {
	Name     string `env:"ADMIN_NAME,default=Administrador"`
	Email    string `env:"ADMIN_EMAIL"`
	Password string `env:"ADMIN_PASSWORD"`
}

func main() {
	down := flag.Bool("down", false, "desfaz a última migração")
	flag.Parse()

	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Erro ao carregar configuração: %v", err)
	}
	appLogger := logger.NewLogger(logger.Options{Level: cfg.Log.Level, Format: cfg.Log.Format})

	if *down {
		if err := database.RollbackMigration(cfg.Database, appLogger); err != nil {
			appLogger.Error("erro ao desfazer migração", "error", err)
			os.Exit(1)
		}
		return
	}

	// Executar as migrações
	if err := database.RunMigrations(cfg.Database, appLogger); err != nil {
		appLogger.Error("erro ao executar migrações", "error", err)
		os.Exit(1)
	}

	if err := seedAdmin(cfg, appLogger); err != nil {
		appLogger.Error("erro ao criar administrador", "error", err)
		os.Exit(1)
	}
}

// seedAdmin cria o administrador aprovado quando ADMIN_EMAIL está definido e ainda não existe
func seedAdmin(cfg *config.Config, log logger.Logger) error {
	var seed adminSeed
	if err := envdecode.Decode(&seed); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return err
	}
	if seed.Email == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := database.NewPostgresDB(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	repo := repository.NewUserRepository(db)
	if _, err := repo.FindByEmail(ctx, seed.Email); err == nil {
		log.Info("administrador já existe", "email", seed.Email)
		return nil
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return err
	}

	admin, err := user.NewUser(seed.Name, seed.Email, seed.Password, user.RoleAdmin)
	if err != nil {
		return err
	}
	admin.Approved = true
	if err := repo.Create(ctx, admin); err != nil {
		return err
	}
	log.Info("administrador criado", "email", admin.Email)
	return nil
}
