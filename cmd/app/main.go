package main

import (
	"fmt"
	nethttp "net/http"
	"os"

	"dockyard/cmd"
	httpadapter "dockyard/internal/adapters/in/http"
	"dockyard/internal/jobs"

	"log/slog"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB, err := gorm.Open(postgres.Open(databaseDSN(configs)), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	listener := app.CreateChangeListener(configs)
	if err = listener.Start(); err != nil {
		log.Fatalf("Failed to start change listener: %v", err)
	}
	defer func() {
		_ = listener.Stop()
	}()

	jobManager := jobs.NewJobManager(
		app.CreateSweepOverdueTrucksCommandHandler(),
		app.QueryCache(),
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
		CacheTTL:   os.Getenv("CACHE_TTL"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func databaseDSN(config cmd.Config) string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DBHost, config.DBPort, config.DBUser,
		config.DBPassword, config.DBName, config.DBSslMode,
	)
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(nethttp.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		app.CreateScheduleTruckCommandHandler(),
		app.CreateAssignRampCommandHandler(),
		app.CreateMarkArrivedCommandHandler(),
		app.CreateStartWorkCommandHandler(),
		app.CreateMarkDoneCommandHandler(),
		app.CreateRescheduleTruckCommandHandler(),
		app.CreateDeleteTruckCommandHandler(),
		app.CreateReportExceptionCommandHandler(),
		app.CreateUpdateExceptionStatusCommandHandler(),
		app.CreateGetRampBoardQueryHandler(),
		app.CreateGetTrucksForDateQueryHandler(),
		app.CreateGetExceptionSummaryQueryHandler(),
		app.CreateGetTruckPhotoComplianceQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
