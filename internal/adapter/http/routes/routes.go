package routes

import (
	_ "gift_contribution/docs"
	"gift_contribution/internal/adapter/http/handlers"
	"gift_contribution/internal/infrastructure/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

// Options configures the HTTP router.
type Options struct {
	ServiceName string
	CORSOrigins []string
	Logger      *zap.Logger
}

// Handlers groups the HTTP handlers mounted under /v1.
type Handlers struct {
	Contribution *handlers.ContributionHandler
	Fulfillment  *handlers.FulfillmentHandler
}

// NewRouter builds the gin engine with middlewares, swagger and the /v1 routes.
func NewRouter(opts Options, h Handlers) *gin.Engine {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	router := gin.New()
	setMiddlewares(router, opts, log)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addGiftRoutes(v1, h.Contribution)
	addOrderRoutes(v1, h.Fulfillment)
	return router
}

func setMiddlewares(router *gin.Engine, opts Options, log *zap.Logger) {
	router.Use(logger.Recovery(log))
	router.Use(otelgin.Middleware(opts.ServiceName))
	router.Use(spanEnricher())
	router.Use(logger.GinMiddleware(log))
	router.Use(cors.New(corsConfig(opts.CORSOrigins)))
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization", handlers.HeaderUserID},
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}
