package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hugohenrick/confeitaria-orcamentos/docs"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/adapter/api/controller"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/adapter/api/route"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/adapter/cep"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/adapter/draftstore"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/adapter/pdf"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/adapter/repository"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/adapter/storage"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/config"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/infrastructure/database"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/infrastructure/metrics"
	"github.com/hugohenrick/confeitaria-orcamentos/pkg/auth"
	"github.com/hugohenrick/confeitaria-orcamentos/pkg/logger"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// App representa a aplicação e suas dependências
type App struct {
	cfg     *config.Config
	logger  logger.Logger
	router  *gin.Engine
	db      *pgxpool.Pool
	redis   *redis.Client
	metrics *metrics.Metrics
	jwt     *auth.JWTService

	authController    *controller.AuthController
	userController    *controller.UserController
	catalogController *controller.CatalogController
	clientController  *controller.ClientController
	pricingController *controller.PricingController
	draftController   *controller.DraftController
	budgetController  *controller.BudgetController
}

// NewApp cria uma nova instância do aplicativo
func NewApp(ctx context.Context, cfg *config.Config, log logger.Logger) (*App, error) {
	jwtService, err := auth.NewJWTService(cfg.JWT.SecretKey, time.Duration(cfg.JWT.ExpirationHours)*time.Hour)
	if err != nil {
		return nil, err
	}

	// Configurar banco de dados
	db, err := database.NewPostgresDB(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	// Rascunhos de orçamento ficam no Redis
	redisClient, err := draftstore.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		db.Close()
		return nil, err
	}

	m := metrics.New()

	// Criar repositórios
	userRepo := repository.NewUserRepository(db)
	catalogRepo := repository.NewCatalogRepository(db, log)
	clientRepo := repository.NewClientRepository(db)
	budgetRepo := repository.NewBudgetRepository(db, log)
	drafts := draftstore.NewRedisStore(redisClient, cfg.Redis.DraftTTL)

	// Serviços externos
	var images storage.ImageStore
	if cfg.Storage.StorageEnabled() {
		images = storage.NewSupabaseStore(cfg.Storage, log)
	} else {
		log.Warn("armazenamento de imagens não configurado; upload desabilitado")
	}
	cepLookup := cep.NewViaCEPClient(cfg.ViaCEP, log)
	pdfGenerator := pdf.NewChromeGenerator(cfg.PDF, log)

	// Criar controllers
	items := controller.NewItemBuilder(catalogRepo, m)

	app := &App{
		cfg:     cfg,
		logger:  log,
		db:      db,
		redis:   redisClient,
		metrics: m,
		jwt:     jwtService,

		authController:    controller.NewAuthController(userRepo, jwtService, log),
		userController:    controller.NewUserController(userRepo, log),
		catalogController: controller.NewCatalogController(catalogRepo, images, log),
		clientController:  controller.NewClientController(clientRepo, cepLookup, log),
		pricingController: controller.NewPricingController(items, m, log),
		draftController:   controller.NewDraftController(drafts, clientRepo, budgetRepo, items, m, log),
		budgetController:  controller.NewBudgetController(budgetRepo, clientRepo, catalogRepo, items, pdfGenerator, m, log),
	}
	app.setupRouter()
	return app, nil
}

func (a *App) setupRouter() {
	gin.SetMode(a.cfg.HTTP.GinMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(a.metrics.Middleware())

	// O app mobile e o painel web acessam de origens diferentes
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	origins := a.cfg.HTTP.Origins()
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = origins
	}
	router.Use(cors.New(corsConfig))

	router.GET("/health", a.health)
	router.GET("/metrics", gin.WrapH(a.metrics.Handler()))

	docs.SwaggerInfo.BasePath = a.cfg.HTTP.BasePath
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group(a.cfg.HTTP.BasePath)
	route.SetupAuthRoutes(api, a.authController, a.jwt)
	route.SetupUserRoutes(api, a.userController, a.jwt)
	route.SetupCatalogRoutes(api, a.catalogController, a.jwt)
	route.SetupClientRoutes(api, a.clientController, a.jwt)
	route.SetupPricingRoutes(api, a.pricingController, a.jwt)
	route.SetupDraftRoutes(api, a.draftController, a.jwt)
	route.SetupBudgetRoutes(api, a.budgetController, a.jwt)

	a.router = router
}

// health verifica banco e Redis
func (a *App) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	checks := gin.H{"database": "ok", "redis": "ok"}
	if err := a.db.Ping(ctx); err != nil {
		status = http.StatusServiceUnavailable
		checks["database"] = err.Error()
	}
	if err := a.redis.Ping(ctx).Err(); err != nil {
		status = http.StatusServiceUnavailable
		checks["redis"] = err.Error()
	}

	c.JSON(status, gin.H{
		"status":  http.StatusText(status),
		"version": docs.SwaggerInfo.Version,
		"checks":  checks,
	})
}

// Run atende as requisições até o contexto ser cancelado
func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              ":" + a.cfg.HTTP.Port,
		Handler:           a.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("servidor HTTP iniciado", "addr", srv.Addr, "base_path", a.cfg.HTTP.BasePath)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("erro no servidor HTTP: %w", err)
	case <-ctx.Done():
	}

	a.logger.Info("encerrando servidor HTTP")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Warn("erro ao fechar conexão com Redis", "error", err)
		}
	}
	if a.db != nil {
		a.db.Close()
	}
}
