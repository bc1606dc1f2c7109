package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	api_utils "github.com/ethanbaker/api/pkg/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/paarad/27-backroom-generator/internal/api/middleware"
	"github.com/paarad/27-backroom-generator/internal/generator"
	"github.com/paarad/27-backroom-generator/pkg/backroom"
	"github.com/paarad/27-backroom-generator/pkg/utils"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	generate_module "github.com/paarad/27-backroom-generator/internal/api/modules/generate"
	health_module "github.com/paarad/27-backroom-generator/internal/api/modules/health"
	levels_module "github.com/paarad/27-backroom-generator/internal/api/modules/levels"
)

// Services are the collaborators the HTTP handlers call into
type Services struct {
	Text   backroom.TextGenerator
	Images backroom.ImageGenerator
	Store  backroom.Store
}

// NewEngine builds the gin engine with every route registered
func NewEngine(cfg *utils.Config, logger *zap.Logger, services Services) *gin.Engine {
	engine := gin.New()
	engine.Use(middleware.ZapLogger(logger), gin.Recovery())
	engine.NoRoute(api_utils.NoRouteHandler)

	// Add trusted proxies
	engine.SetTrustedProxies(nil)

	// Add CORS using gin-contrib/cors (https://github.com/gin-contrib/cors for documentation)
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.GetWithDefault("CORS_ALLOWED_ORIGINS", "*"), ","),
		AllowMethods:     []string{"OPTIONS", "GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Base group '/api' for all API routes
	baseGroup := engine.Group("/api")

	// Adding custom modules
	health_module.RegisterRoutes(baseGroup)
	generate_module.RegisterRoutes(baseGroup, generate_module.NewController(services.Text, services.Images))
	levels_module.RegisterRoutes(baseGroup, levels_module.NewController(services.Store))

	return engine
}

// ginMode returns the gin mode for the server, release unless GIN_DEBUG is set
func ginMode(cfg *utils.Config) string {
	if cfg.GetBool("GIN_DEBUG") {
		return gin.DebugMode
	}
	return gin.ReleaseMode
}

// Start builds every collaborator from the configuration and serves the API until the server fails
func Start(cfg *utils.Config, logger *zap.Logger) error {
	if err := cfg.Require("OPENAI_API_KEY"); err != nil {
		return err
	}

	// Load model options, letting PROMPTS_DIR fill in an unset prompts directory
	opts, err := generator.LoadOptions(cfg.GetWithDefault("GENERATOR_CONFIG_PATH", "generator.yaml"))
	if err != nil {
		return err
	}
	if opts.PromptsDir == "" {
		opts.PromptsDir = cfg.GetWithDefault("PROMPTS_DIR", "prompts")
	}

	store, closeStore, err := OpenStore(cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	client := generator.NewClient(cfg.Get("OPENAI_API_KEY"), cfg.Get("OPENAI_BASE_URL"))
	services := Services{
		Text:   generator.NewTextGenerator(client, opts, logger),
		Images: generator.NewImageGenerator(client, opts, logger),
		Store:  store,
	}

	gin.SetMode(ginMode(cfg))

	port := cfg.GetIntWithDefault("API_PORT", 8080)
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           NewEngine(cfg, logger, services),
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("Starting API server",
		zap.Int("port", port),
		zap.String("text_model", opts.TextModel),
		zap.String("image_model", opts.ImageModel),
	)

	if err := server.ListenAndServe(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
