package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"restaurant/cmd"
	httpadapter "restaurant/internal/adapters/in/http"
	"restaurant/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := openDatabase(configs)
	app := cmd.NewCompositionRoot(configs, db)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(
		app.CreateGetLowStockItemsQueryHandler(),
		configs.LowStockThreshold,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:          goDotEnvVariable("HTTP_PORT"),
		DBHost:            goDotEnvVariable("DB_HOST"),
		DBPort:            goDotEnvVariable("DB_PORT"),
		DBUser:            goDotEnvVariable("DB_USER"),
		DBPassword:        goDotEnvVariable("DB_PASSWORD"),
		DBName:            goDotEnvVariable("DB_NAME"),
		DBSslMode:         goDotEnvVariable("DB_SSLMODE"),
		JWTSecret:         goDotEnvVariable("JWT_SECRET"),
		OpenAPIPath:       goDotEnvVariable("OPENAPI_PATH"),
		LowStockThreshold: intEnvVariable("LOW_STOCK_THRESHOLD"),
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

func intEnvVariable(key string) int {
	value, err := strconv.Atoi(goDotEnvVariable(key))
	if err != nil {
		log.Fatalf("Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()

	validator, err := httpadapter.NewOpenAPIValidator(configs.OpenAPIPath)
	if err != nil {
		log.Fatalf("Failed to load OpenAPI contract: %v", err)
	}
	e.Use(validator)

	auth := httpadapter.NewAuthMiddleware([]byte(configs.JWTSecret), app.CreateStaffDirectory())

	server := httpadapter.NewServer(
		app.CreatePlaceWalkInOrderCommandHandler(),
		app.CreatePlaceCustomerOrderCommandHandler(),
		app.CreateConfirmPaymentCommandHandler(),
		app.CreateCashierConfirmOrderCommandHandler(),
		app.CreateAdvanceKitchenStatusCommandHandler(),
		app.CreateConfirmCollectionCommandHandler(),
		app.CreateAddMenuItemCommandHandler(),
		app.CreateRestockMenuItemCommandHandler(),
		app.CreateChangeMenuItemPriceCommandHandler(),
		app.CreateCreateBranchCommandHandler(),
		app.CreateAssignBranchManagerCommandHandler(),
		app.CreateGetPendingOrdersQueryHandler(),
		app.CreateGetKitchenOrdersQueryHandler(),
		app.CreateGetCustomerOrdersQueryHandler(),
		app.CreateGetStaffOrdersQueryHandler(),
		app.CreateGetMenuItemsQueryHandler(),
		app.CreateGetBranchesQueryHandler(),
	)
	server.RegisterRoutes(e, auth)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
