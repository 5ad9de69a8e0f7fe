package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"storefront/cmd"
	httpserver "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/notify"
	"storefront/internal/adapters/out/postgres/cartrepo"
	"storefront/internal/adapters/out/postgres/catalogrepo"
	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/core/ports"
	"storefront/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultStalePendingAfter = 30 * time.Minute

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	hub := notify.NewHub()
	publishers := []ports.NotificationPublisher{hub}

	kafkaClient := notify.NewKafkaClient(configs.KafkaHost)
	if kafkaClient.Enabled() {
		kafkaPublisher := notify.NewKafkaPublisher(
			kafkaClient, configs.KafkaOrderCreatedTopic, configs.KafkaOrderStatusTopic)
		defer kafkaPublisher.Close()
		publishers = append(publishers, kafkaPublisher)
	}

	app := cmd.NewCompositionRoot(
		configs,
		gormDB,
		notify.NewFanout(publishers...),
	)

	jobManager := jobs.NewJobManager(
		app.CreateGetStalePendingOrdersQueryHandler(),
		stalePendingAfter(configs),
		slog.Default(),
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, hub, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:               goDotEnvVariable("HTTP_PORT"),
		DBHost:                 goDotEnvVariable("DB_HOST"),
		DBPort:                 goDotEnvVariable("DB_PORT"),
		DBUser:                 goDotEnvVariable("DB_USER"),
		DBPassword:             goDotEnvVariable("DB_PASSWORD"),
		DBName:                 goDotEnvVariable("DB_NAME"),
		DBSslMode:              goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:              goDotEnvVariable("KAFKA_HOST"),
		KafkaOrderCreatedTopic: goDotEnvVariable("KAFKA_ORDER_CREATED_TOPIC"),
		KafkaOrderStatusTopic:  goDotEnvVariable("KAFKA_ORDER_STATUS_TOPIC"),
		StalePendingAfter:      goDotEnvVariable("STALE_PENDING_AFTER"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	_ = godotenv.Load(".env")
	return os.Getenv(key)
}

func stalePendingAfter(configs cmd.Config) time.Duration {
	if configs.StalePendingAfter == "" {
		return defaultStalePendingAfter
	}
	threshold, err := time.ParseDuration(configs.StalePendingAfter)
	if err != nil || threshold <= 0 {
		return defaultStalePendingAfter
	}
	return threshold
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&catalogrepo.ProductDTO{},
		&cartrepo.CartDTO{},
		&cartrepo.CartItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(app cmd.CompositionRoot, hub *notify.Hub, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpserver.NewServer(
		app.CreateAddCartItemCommandHandler(),
		app.CreateUpdateCartItemCommandHandler(),
		app.CreateRemoveCartItemCommandHandler(),
		app.CreateClearCartCommandHandler(),
		app.CreateCheckoutCommandHandler(),
		app.CreateCheckoutGuestCommandHandler(),
		app.CreateChangeOrderStatusCommandHandler(),
		app.CreateUpdateOrderCommandHandler(),
		app.CreateDeleteOrderCommandHandler(),
		app.CreateGetCartQueryHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetAllOrdersQueryHandler(),
		app.CreateGetOrdersByCustomerQueryHandler(),
		hub,
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
