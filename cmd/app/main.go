package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"dronedelivery/cmd"
	httpadapter "dronedelivery/internal/adapters/in/http"
	"dronedelivery/internal/adapters/out/postgres/dronerepo"
	"dronedelivery/internal/adapters/out/postgres/orderrepo"
	fleetprom "dronedelivery/internal/adapters/out/prometheus"
	"dronedelivery/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustOpenDatabase(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)

	registry := prom.NewRegistry()
	hub := app.TrackingHub()
	metrics, err := fleetprom.NewFleetMetrics(registry, func() float64 {
		return float64(hub.ActiveConnections())
	})
	if err != nil {
		log.Fatalf("Failed to register fleet metrics: %v", err)
	}

	jobManager := jobs.NewJobManager(
		app.CreateGetDroneStatusCountsQueryHandler(),
		metrics,
		time.Duration(configs.MetricsIntervalSeconds)*time.Second,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, registry, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                  goDotEnvVariable("HTTP_PORT"),
		DBHost:                    goDotEnvVariable("DB_HOST"),
		DBPort:                    goDotEnvVariable("DB_PORT"),
		DBUser:                    goDotEnvVariable("DB_USER"),
		DBPassword:                goDotEnvVariable("DB_PASSWORD"),
		DBName:                    goDotEnvVariable("DB_NAME"),
		DBSslMode:                 goDotEnvVariable("DB_SSLMODE"),
		MetricsIntervalSeconds:    intEnvVariable("METRICS_INTERVAL_SECONDS", 30),
		MinDispatchBatteryPercent: floatEnvVariable("MIN_DISPATCH_BATTERY_PERCENT", 20),
		TrackingBufferSize:        intEnvVariable("TRACKING_BUFFER_SIZE", 16),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func intEnvVariable(key string, fallback int) int {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}
	return value
}

func floatEnvVariable(key string, fallback float64) float64 {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}
	return value
}

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	// TranslateError maps unique violations to gorm.ErrDuplicatedKey, which
	// the drone repository relies on for duplicate serial numbers.
	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&dronerepo.DroneDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return gormDB
}

func startWebServer(app cmd.CompositionRoot, registry *prom.Registry, port string) {
	requestMetrics, err := fleetprom.NewHTTPMetrics(registry)
	if err != nil {
		log.Fatalf("Failed to register request metrics: %v", err)
	}

	server := httpadapter.NewServer(
		app.CreateRegisterDroneCommandHandler(),
		app.CreateSetDroneStatusCommandHandler(),
		app.CreateSetBatteryLevelCommandHandler(),
		app.CreateCreateOrderCommandHandler(),
		app.CreateSetOrderStatusCommandHandler(),
		app.CreateAssignDroneCommandHandler(),
		app.CreateCompleteDeliveryCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateGetAvailableDronesQueryHandler(),
		app.CreateGetOrdersByUserQueryHandler(),
		app.CreateGetOrdersByStatusQueryHandler(),
		httpadapter.NewTrackingHandler(app.TrackingHub()),
	)

	e := echo.New()
	e.Use(requestMetrics.Middleware())
	server.RegisterRoutes(e)
	e.GET("/metrics", echo.WrapHandler(
		promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
