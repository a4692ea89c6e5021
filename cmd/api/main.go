package main

import (
	authrepository "skyfare/internal/auth/repository"
	authservice "skyfare/internal/auth/service"
	basketshandler "skyfare/internal/baskets/handler"
	basketsrepository "skyfare/internal/baskets/repository"
	basketsservice "skyfare/internal/baskets/service"
	basketsvalidator "skyfare/internal/baskets/validator"
	"skyfare/internal/events"
	inventoryrepository "skyfare/internal/inventory/repository"
	inventoryservice "skyfare/internal/inventory/service"
	reservationshandler "skyfare/internal/reservations/handler"
	reservationsrepository "skyfare/internal/reservations/repository"
	reservationsservice "skyfare/internal/reservations/service"
	reservationsvalidator "skyfare/internal/reservations/validator"
	searchhandler "skyfare/internal/search/handler"
	searchservice "skyfare/internal/search/service"
	"skyfare/internal/sweeper"
	"skyfare/pkg/app"
	"skyfare/pkg/config"
	"skyfare/pkg/kafka"
	kafkaconfig "skyfare/pkg/kafka/config"
)

const ServiceName = "api"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	cfg.Log.Info("Starting Skyfare API service")

	serverApp := app.NewApplication(cfg)
	publisher := initPublisher(cfg, serverApp)

	flightRepo := inventoryrepository.NewMongoFlightRepository(cfg)
	seatMapRepo := inventoryrepository.NewMongoSeatMapRepository(cfg)
	airportRepo := inventoryrepository.NewMongoAirportRepository(cfg)
	ledger := inventoryservice.NewLedgerService(flightRepo, seatMapRepo, cfg)

	auth := authservice.NewAuthService(authrepository.NewMongoTokenRepository(cfg), cfg)

	baskets := basketsservice.NewBasketService(
		basketsrepository.NewMongoBasketRepository(cfg),
		ledger,
		basketsvalidator.NewBasketValidator(cfg.Log),
		publisher,
		cfg,
	)

	reservations := reservationsservice.NewReservationService(
		reservationsrepository.NewMongoReservationRepository(cfg),
		baskets,
		ledger,
		reservationsvalidator.NewReservationValidator(cfg.Log),
		publisher,
		cfg,
	)

	search := searchservice.NewSearchService(flightRepo, airportRepo, seatMapRepo, cfg)

	expirySweeper := sweeper.NewSweeper(baskets, reservations, cfg)

	serverApp.SetApp(expirySweeper,
		basketshandler.NewBasketHandler(baskets, auth, cfg.Log),
		reservationshandler.NewReservationHandler(reservations, auth, cfg.Log),
		searchhandler.NewSearchHandler(search, cfg.Log),
	)
	serverApp.Run()
}

func initPublisher(cfg *config.Config, serverApp *app.Application) *events.Publisher {
	if !cfg.KafkaEnabled {
		cfg.Log.Info("Kafka disabled, booking events will not be published")
		return nil
	}

	producer, err := kafka.NewProducer(kafkaconfig.Load(), cfg.BookingEventsTopic)
	if err != nil {
		cfg.Log.Fatal("Failed to initialize Kafka producer", "error", err)
	}
	serverApp.OnShutdown(func() {
		if err := producer.Close(); err != nil {
			cfg.Log.Error("Failed to close Kafka producer", "error", err)
		}
	})

	cfg.Log.Info("Kafka producer initialized", "topic", cfg.BookingEventsTopic)
	return events.NewPublisher(producer, cfg.Log)
}
