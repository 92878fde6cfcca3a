package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"dietboard/cmd"
	httpin "dietboard/internal/adapters/in/http"
	"dietboard/internal/adapters/out/postgres/orderrepo"
	"dietboard/internal/adapters/out/postgres/patientrepo"
	"dietboard/internal/adapters/out/postgres/prescriptionrepo"
	"dietboard/internal/adapters/out/rabbitmq"
	"dietboard/internal/core/ports"
	"dietboard/internal/generated/servers"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultOverdueThreshold = 45 * time.Minute

func main() {
	configs := getConfigs()

	db := mustOpenDB(configs)
	publisher := connectPublisher(configs)

	app := cmd.NewCompositionRoot(configs, db, publisher)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := app.CreateJobManager(overdueThreshold(configs), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:         goDotEnvVariable("HTTP_PORT"),
		DBHost:           goDotEnvVariable("DB_HOST"),
		DBPort:           goDotEnvVariable("DB_PORT"),
		DBUser:           goDotEnvVariable("DB_USER"),
		DBPassword:       goDotEnvVariable("DB_PASSWORD"),
		DBName:           goDotEnvVariable("DB_NAME"),
		DBSslMode:        goDotEnvVariable("DB_SSLMODE"),
		RabbitHost:       goDotEnvVariable("RABBIT_HOST"),
		RabbitPort:       goDotEnvVariable("RABBIT_PORT"),
		RabbitUser:       goDotEnvVariable("RABBIT_USER"),
		RabbitPassword:   goDotEnvVariable("RABBIT_PASSWORD"),
		OverdueThreshold: goDotEnvVariable("OVERDUE_THRESHOLD"),
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

func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&prescriptionrepo.PrescriptionDTO{},
		&patientrepo.PatientDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return db
}

// connectPublisher dials the broker when one is configured. Without a
// broker the service still works; screens just poll instead of reacting to
// change events.
func connectPublisher(configs cmd.Config) ports.OrderEventPublisher {
	if configs.RabbitHost == "" {
		return nil
	}

	port, err := strconv.Atoi(configs.RabbitPort)
	if err != nil {
		log.Fatalf("Invalid RABBIT_PORT: %v", err)
	}

	client, err := rabbitmq.Dial(rabbitmq.Config{
		Host:     configs.RabbitHost,
		Port:     port,
		User:     configs.RabbitUser,
		Password: configs.RabbitPassword,
	})
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}

	publisher, err := rabbitmq.NewOrderEventPublisher(client)
	if err != nil {
		log.Fatalf("Failed to set up order event publisher: %v", err)
	}

	return publisher
}

func overdueThreshold(configs cmd.Config) time.Duration {
	if configs.OverdueThreshold == "" {
		return defaultOverdueThreshold
	}

	threshold, err := time.ParseDuration(configs.OverdueThreshold)
	if err != nil {
		log.Fatalf("Invalid OVERDUE_THRESHOLD: %v", err)
	}
	return threshold
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateCreatePrescriptionCommandHandler(),
		app.CreateTransitionOrderCommandHandler(),
		app.CreateGetBoardQueryHandler(),
		app.CreateGetDeliveryQueueQueryHandler(),
		app.CreateGetPatientsQueryHandler(),
	)
	servers.RegisterHandlers(e, server)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
