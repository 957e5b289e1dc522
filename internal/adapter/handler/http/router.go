package http

import (
	"net/http"

	"github.com/sm8ta/webike_wear_microservice/internal/config"
	"github.com/sm8ta/webike_wear_microservice/internal/core/ports"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Router struct {
	router *gin.Engine
}

func NewRouter(
	cfg *config.HTTP,
	tokenService ports.TokenService,
	bikeHandler *BikeHandler,
	componentHandler *ComponentHandler,
	syncHandler *SyncHandler,
) (*Router, error) {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.AllowedOrigins},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := AuthMiddleware(tokenService)

	// Bikes routes
	bikes := router.Group("/bikes")
	bikes.Use(auth)
	{
		bikes.GET("/my", bikeHandler.GetMyBikes)
		bikes.GET("/:id", bikeHandler.GetBike)
		bikes.GET("/:id/with-components", bikeHandler.GetBikeWithComponents)
		bikes.PUT("/:id/config", bikeHandler.SaveConfig)
		bikes.PUT("/:id/retired", bikeHandler.SetRetired)
		bikes.GET("/:id/components/history", componentHandler.GetHistory)
	}
	// Components routes
	components := router.Group("/components")
	components.Use(auth)
	{
		components.POST("", componentHandler.CreateComponent)
		components.GET("/:id", componentHandler.GetComponent)
		components.PUT("/:id", componentHandler.UpdateComponent)
		components.DELETE("/:id", componentHandler.DeleteComponent)
		components.POST("/:id/replace", componentHandler.ReplaceComponent)
	}
	// Sync routes
	sync := router.Group("/sync")
	sync.Use(auth)
	{
		sync.POST("", syncHandler.Sync)
		sync.GET("/status", syncHandler.GetStatus)
	}

	router.GET("/dashboard/stats", auth, bikeHandler.GetDashboardStats)
	router.GET("/activities/stats", auth, bikeHandler.GetActivityStats)

	return &Router{router: router}, nil
}

func (r *Router) Engine() *gin.Engine {
	return r.router
}
