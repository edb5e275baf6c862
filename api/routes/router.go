// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	_ "triply/docs"
	"triply/internal/audit"
	"triply/internal/auth"
	"triply/internal/itineraries"
	"triply/internal/shared/config"
	"triply/internal/shared/database"
	"triply/internal/shared/middleware"
	"triply/internal/shared/password"
	"triply/internal/shared/validation"
	"triply/internal/tokens"
	"triply/internal/users"
	"triply/pkg/logger"
	"triply/pkg/metrics"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Models returns every persisted model in migration order
func Models() []any {
	models := []any{&users.User{}, &tokens.RefreshToken{}}
	return append(models, itineraries.Models()...)
}

// Router holds all route dependencies
type Router struct {
	config  *config.Config
	db      *database.DB
	log     *logger.Logger
	audit   *audit.Recorder
	metrics *metrics.Metrics

	validator *validation.Validator
	hasher    *password.Hasher
	tokens    tokens.Service
	authGate  gin.HandlerFunc
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB, log *logger.Logger, recorder *audit.Recorder, m *metrics.Metrics) *Router {
	r := &Router{
		config:    cfg,
		db:        db,
		log:       log,
		audit:     recorder,
		metrics:   m,
		validator: validation.New(),
		hasher:    password.NewHasher(password.DefaultCost),
	}
	r.tokens = tokens.NewService(r.refreshStore(), cfg.JWT)
	r.authGate = middleware.AuthGate(r.tokens, log)
	return r
}

// refreshStore picks where refresh tokens live
func (r *Router) refreshStore() tokens.RefreshStore {
	if r.config.JWT.RefreshStore == config.StoreRedis && r.db.GetRedisClient() != nil {
		return tokens.NewRedisRefreshStore(r.db.GetRedisClient())
	}
	return tokens.NewGormRefreshStore(r.db.GetPostgreSQL())
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.setupHealthRoutes(engine)

	api := &engine.RouterGroup
	r.setupUserRoutes(api)
	r.setupAuthRoutes(api)
	r.setupItineraryRoutes(api)
}

// setupHealthRoutes sets up liveness, health, metrics and docs routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Server is running!"})
	})

	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "triply-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "triply-backend",
		})
	})

	engine.GET("/metrics", r.metrics.Handler())
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// setupUserRoutes configures registration and profile routes
func (r *Router) setupUserRoutes(rg *gin.RouterGroup) {
	userRepo := users.NewRepository(r.db.GetPostgreSQL())
	userService := users.NewService(userRepo, r.hasher, r.audit)
	userController := users.NewController(userService, r.log)

	users.NewRouter(userController, r.validator, r.authGate).SetupRoutes(rg)
}

// setupAuthRoutes configures login, logout and token refresh routes
func (r *Router) setupAuthRoutes(rg *gin.RouterGroup) {
	userRepo := users.NewRepository(r.db.GetPostgreSQL())
	authService := auth.NewService(userRepo, r.hasher, r.tokens, r.audit, r.metrics)
	authController := auth.NewController(authService, r.log)

	auth.NewRouter(authController, r.validator, r.authGate).SetupRoutes(rg)
}

// setupItineraryRoutes configures itinerary, details, optional and media routes
func (r *Router) setupItineraryRoutes(rg *gin.RouterGroup) {
	itineraryRepo := itineraries.NewRepository(r.db.GetPostgreSQL())
	itineraryService := itineraries.NewService(itineraryRepo, r.audit)
	itineraryController := itineraries.NewController(itineraryService, r.log)

	itineraries.NewRouter(itineraryController, r.validator, r.authGate).SetupRoutes(rg)
}
