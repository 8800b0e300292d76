package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/cadastrodev/usuarios-backend/internal/handlers/dto"
	httphandlers "github.com/cadastrodev/usuarios-backend/internal/handlers/http"
	"github.com/cadastrodev/usuarios-backend/internal/handlers/middleware"
	"github.com/cadastrodev/usuarios-backend/internal/infrastructure/config"
	"github.com/cadastrodev/usuarios-backend/internal/infrastructure/i18n"
	"github.com/cadastrodev/usuarios-backend/internal/infrastructure/logging"
	"github.com/cadastrodev/usuarios-backend/internal/infrastructure/persistence/database"
	"github.com/cadastrodev/usuarios-backend/internal/services"
)

func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting usuarios backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := database.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	// Criar a tabela Usuarios fora de produção
	if cfg.Env != "production" {
		if err := database.Migrate(db); err != nil {
			logger.Error("failed to migrate database", "error", err)
			log.Fatal(err)
		}
	}

	// Inicializar i18n
	i18nService, err := i18n.NewService("./internal/infrastructure/i18n/locales", "en")
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Validações de negócio do binding (maioridade, telefone)
	if err := dto.RegisterCustomValidations(); err != nil {
		logger.Error("failed to register custom validations", "error", err)
		log.Fatal(err)
	}

	// Inicializar repositories e unidade de trabalho
	usuarioRepo := database.NewUsuarioRepository(db)
	uow := database.NewUnitOfWork(db)

	// Inicializar services
	usuarioService := services.NewUsuarioService(usuarioRepo, uow, logger)

	// Inicializar handlers
	usuarioHandler := httphandlers.NewUsuarioHandler(usuarioService)

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Middleware global para adicionar base URL ao contexto
	router.Use(func(c *gin.Context) {
		c.Set("base_url", cfg.Server.BaseURL)
		c.Next()
	})

	// Correlação de requisições
	router.Use(middleware.RequestID())

	// Middleware i18n
	i18nMiddleware := middleware.NewI18nMiddleware(i18nService)
	router.Use(i18nMiddleware.DetectLanguage())

	// Middleware CORS
	router.Use(cors.New(corsConfig(cfg.CORS.AllowedOrigins)))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})

	// Documentação da API
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Rotas do recurso usuários
	usuarios := router.Group("/usuarios")
	{
		usuarios.GET("", usuarioHandler.Listar)
		usuarios.GET("/:id", usuarioHandler.Obter)
		usuarios.POST("", usuarioHandler.Criar)
		usuarios.PUT("/:id", usuarioHandler.Atualizar)
		usuarios.DELETE("/:id", usuarioHandler.Remover)
	}

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}

// corsConfig monta a configuração de CORS a partir da lista de origens
// separada por vírgula; "*" libera qualquer origem (sem credenciais,
// como o CORS exige para wildcard).
func corsConfig(allowedOrigins string) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "Accept-Language"}

	origins := strings.Split(allowedOrigins, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}

	for _, origin := range origins {
		if origin == "*" {
			corsCfg.AllowAllOrigins = true
			return corsCfg
		}
	}

	corsCfg.AllowOrigins = origins
	corsCfg.AllowCredentials = true
	return corsCfg
}
