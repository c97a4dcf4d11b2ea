package bootstrap

import (
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/emre/progtrack/internal/app/controllers"
	appRoutes "github.com/emre/progtrack/internal/app/routes"
	appServices "github.com/emre/progtrack/internal/app/services"
	"github.com/emre/progtrack/internal/config"
	"github.com/emre/progtrack/internal/pkg/helpers"
	"github.com/emre/progtrack/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	ScheduleService    appServices.ScheduleService
	MetricsService     appServices.MetricsService
	ScheduleController *appControllers.ScheduleController
	MetricsController  *appControllers.MetricsController
	Logger             zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger // Get the configured global logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// BuildDependencies initializes application services and controllers.
func BuildDependencies(cfg *config.Config, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	location := cfg.Location()
	lgr.Info().Str("timezone", location.String()).Msg("Program time zone resolved")

	metricsConfig := appServices.MetricsConfig{
		Location:    location,
		FinalMarker: cfg.Program.FinalMarker,
	}
	if start, end, ok := cfg.ExclusionWindow(); ok {
		metricsConfig.ExclusionStart = start
		metricsConfig.ExclusionEnd = end
		metricsConfig.HasExclusion = true
		lgr.Info().
			Str("start", cfg.Program.ExclusionStart).
			Str("end", cfg.Program.ExclusionEnd).
			Msg("Weekend exclusion window configured")
	}

	refreshInterval := helpers.ParseDuration(cfg.Program.RefreshInterval, time.Second)

	deps.ScheduleService = appServices.NewScheduleService(location, lgr)
	deps.MetricsService = appServices.NewMetricsService(metricsConfig)

	deps.ScheduleController = appControllers.NewScheduleController(deps.ScheduleService, deps.MetricsService, location)
	deps.MetricsController = appControllers.NewMetricsController(deps.ScheduleService, deps.MetricsService, location, refreshInterval)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	// The dashboard frontend polls from the browser.
	router.Use(cors.Default())

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.ScheduleController, deps.MetricsController)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
