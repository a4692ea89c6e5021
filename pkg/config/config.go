package config

import (
	"fmt"
	"os"
	"regexp"
	"skyfare/pkg/client"
	"skyfare/pkg/logger"
	"strconv"
	"time"
)

type Config struct {
	MongoURI          string
	MongoDatabaseName string
	MongoConnTimeout  time.Duration

	Port string

	RequestTimeout time.Duration
	MaxRequestSize int

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	BasketExpiry      time.Duration
	ReservationExpiry time.Duration
	SweepInterval     time.Duration
	SweepTimeout      time.Duration

	ReservationNumberLength     int
	ReservationNumberMaxRetries int

	CheckedBaggagePrice float64
	HandBaggagePrice    float64
	SeatPrice           float64
	FreeHandBaggage     int

	KafkaEnabled       bool
	BookingEventsTopic string

	Log    *logger.Logger
	Client *client.Client
}

func Load(serviceName string) *Config {
	cfg := &Config{
		MongoURI:          getEnvStr(EnvMongoURI, DefaultMongoURI),
		MongoDatabaseName: getEnvStr(EnvMongoDatabaseName, DefaultMongoDatabaseName),
		MongoConnTimeout:  getEnvDuration(EnvMongoConnTimeout, DefaultMongoConnTimeout),

		Port: getEnvStr(EnvPort, DefaultPort),

		RequestTimeout: getEnvDuration(EnvRequestTimeout, DefaultRequestTimeout),
		MaxRequestSize: getEnvNum(EnvMaxRequestSize, DefaultMaxRequestSize),

		ReadTimeout:     getEnvDuration(EnvReadTimeout, DefaultReadTimeout),
		WriteTimeout:    getEnvDuration(EnvWriteTimeout, DefaultWriteTimeout),
		IdleTimeout:     getEnvDuration(EnvIdleTimeout, DefaultIdleTimeout),
		ShutdownTimeout: getEnvDuration(EnvShutdownTimeout, DefaultShutdownTimeout),

		BasketExpiry:      getEnvDuration(EnvBasketExpiry, DefaultBasketExpiry),
		ReservationExpiry: getEnvDuration(EnvReservationExpiry, DefaultReservationExpiry),
		SweepInterval:     getEnvDuration(EnvSweepInterval, DefaultSweepInterval),
		SweepTimeout:      getEnvDuration(EnvSweepTimeout, DefaultSweepTimeout),

		ReservationNumberLength:     DefaultReservationNumberLength,
		ReservationNumberMaxRetries: getEnvNum(EnvReservationNumberMaxRetries, DefaultReservationNumberMaxRetries),

		CheckedBaggagePrice: getEnvPrice(EnvCheckedBaggagePrice, DefaultCheckedBaggagePrice),
		HandBaggagePrice:    getEnvPrice(EnvHandBaggagePrice, DefaultHandBaggagePrice),
		SeatPrice:           getEnvPrice(EnvSeatPrice, DefaultSeatPrice),
		FreeHandBaggage:     DefaultFreeHandBaggage,

		KafkaEnabled:       getEnvBool(EnvKafkaEnabled, false),
		BookingEventsTopic: getEnvStr(EnvBookingEventsTopic, DefaultBookingEventsTopic),

		Log: logger.New(logger.Config{
			Level:     getEnvStr(EnvLogLevel, DefaultLogLevel),
			Format:    logger.JSON,
			AddSource: true,
			Service:   serviceName,
		}),
		Client: client.NewClient(),
	}

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal(err.Error())
	}
	cfg.LogConfiguration()
	return cfg
}

func (cfg *Config) SetMongo() {
	cfg.Client.SetMongo(cfg.Log, cfg.MongoURI, cfg.MongoConnTimeout)
}

func (cfg *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("Port must be between 1 and 65535, got: %s", cfg.Port))
	}

	if cfg.MongoURI == "" {
		errors = append(errors, "MongoURI cannot be empty")
	} else if !regexp.MustCompile(`^mongodb(\+srv)?://`).MatchString(cfg.MongoURI) {
		errors = append(errors, fmt.Sprintf("MongoURI must start with 'mongodb://' or 'mongodb+srv://', got: %s", cfg.MongoURI))
	}

	if cfg.MongoDatabaseName == "" {
		errors = append(errors, "MongoDatabaseName cannot be empty")
	}

	if cfg.MongoConnTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("MongoConnTimeout must be positive, got: %s", cfg.MongoConnTimeout))
	}
	if cfg.RequestTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("RequestTimeout must be positive, got: %s", cfg.RequestTimeout))
	}
	if cfg.MaxRequestSize <= 0 {
		errors = append(errors, fmt.Sprintf("MaxRequestSize must be positive, got: %d", cfg.MaxRequestSize))
	}
	if cfg.ReadTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("ReadTimeout must be positive, got: %s", cfg.ReadTimeout))
	}
	if cfg.WriteTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("WriteTimeout must be positive, got: %s", cfg.WriteTimeout))
	}
	if cfg.IdleTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("IdleTimeout must be positive, got: %s", cfg.IdleTimeout))
	}
	if cfg.ShutdownTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("ShutdownTimeout must be positive, got: %s", cfg.ShutdownTimeout))
	}

	if cfg.BasketExpiry <= 0 {
		errors = append(errors, fmt.Sprintf("BasketExpiry must be positive, got: %s", cfg.BasketExpiry))
	}
	if cfg.ReservationExpiry <= 0 {
		errors = append(errors, fmt.Sprintf("ReservationExpiry must be positive, got: %s", cfg.ReservationExpiry))
	}
	if cfg.SweepInterval <= 0 {
		errors = append(errors, fmt.Sprintf("SweepInterval must be positive, got: %s", cfg.SweepInterval))
	}
	if cfg.SweepTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("SweepTimeout must be positive, got: %s", cfg.SweepTimeout))
	}

	if cfg.ReservationNumberLength < 4 {
		errors = append(errors, fmt.Sprintf("ReservationNumberLength must be at least 4, got: %d", cfg.ReservationNumberLength))
	}
	if cfg.ReservationNumberMaxRetries <= 0 {
		errors = append(errors, fmt.Sprintf("ReservationNumberMaxRetries must be positive, got: %d", cfg.ReservationNumberMaxRetries))
	}

	if cfg.CheckedBaggagePrice < 0 {
		errors = append(errors, fmt.Sprintf("CheckedBaggagePrice cannot be negative, got: %.2f", cfg.CheckedBaggagePrice))
	}
	if cfg.HandBaggagePrice < 0 {
		errors = append(errors, fmt.Sprintf("HandBaggagePrice cannot be negative, got: %.2f", cfg.HandBaggagePrice))
	}
	if cfg.SeatPrice < 0 {
		errors = append(errors, fmt.Sprintf("SeatPrice cannot be negative, got: %.2f", cfg.SeatPrice))
	}
	if cfg.FreeHandBaggage < 0 {
		errors = append(errors, fmt.Sprintf("FreeHandBaggage cannot be negative, got: %d", cfg.FreeHandBaggage))
	}

	if cfg.KafkaEnabled && cfg.BookingEventsTopic == "" {
		errors = append(errors, "BookingEventsTopic cannot be empty when Kafka is enabled")
	}

	if len(errors) > 0 {
		errMsg := "Configuration validation failed:\n"
		for i, err := range errors {
			errMsg += fmt.Sprintf("  %d. %s\n", i+1, err)
		}
		return fmt.Errorf("%s", errMsg)
	}

	return nil
}

func (cfg *Config) LogConfiguration() {
	cfg.Log.Info("Configuration loaded successfully",
		"mongo_uri", redactMongoURI(cfg.MongoURI),
		"mongo_database", cfg.MongoDatabaseName,
		"mongo_conn_timeout", cfg.MongoConnTimeout,
		"port", cfg.Port,
		"request_timeout", cfg.RequestTimeout,
		"max_request_size", cfg.MaxRequestSize,
		"read_timeout", cfg.ReadTimeout,
		"write_timeout", cfg.WriteTimeout,
		"idle_timeout", cfg.IdleTimeout,
		"shutdown_timeout", cfg.ShutdownTimeout,
		"basket_expiry", cfg.BasketExpiry,
		"reservation_expiry", cfg.ReservationExpiry,
		"sweep_interval", cfg.SweepInterval,
		"sweep_timeout", cfg.SweepTimeout,
		"reservation_number_length", cfg.ReservationNumberLength,
		"reservation_number_max_retries", cfg.ReservationNumberMaxRetries,
		"checked_baggage_price", cfg.CheckedBaggagePrice,
		"hand_baggage_price", cfg.HandBaggagePrice,
		"seat_price", cfg.SeatPrice,
		"free_hand_baggage", cfg.FreeHandBaggage,
		"kafka_enabled", cfg.KafkaEnabled,
		"booking_events_topic", cfg.BookingEventsTopic,
	)
}

func redactMongoURI(uri string) string {
	credentialRegex := regexp.MustCompile(`(mongodb(\+srv)?://)[^:]+:[^@]+@`)
	return credentialRegex.ReplaceAllString(uri, "${1}***:***@")
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvNum(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvPrice(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func (cfg *Config) GracefulShutdown() {
	cfg.Client.GracefulShutdown()
}

func NormalizePaginationLimit(limit int) int {
	if limit <= 0 {
		limit = 10
	} else if limit > DefaultPaginationLimit {
		limit = DefaultPaginationLimit
	}
	return limit
}

func NormalizeOffset(offset int64) int64 {
	return max(0, offset)
}
