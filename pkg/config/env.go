package config

const (
	EnvMongoURI          = "MONGO_URI"
	EnvMongoDatabaseName = "MONGO_DATABASE_NAME"
	EnvMongoConnTimeout  = "MONGO_CONN_TIMEOUT"

	EnvPort     = "PORT"
	EnvLogLevel = "LOG_LEVEL"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvMaxRequestSize = "MAX_REQUEST_SIZE"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"

	EnvBasketExpiry      = "BASKET_EXPIRY"
	EnvReservationExpiry = "RESERVATION_EXPIRY"
	EnvSweepInterval     = "SWEEP_INTERVAL"
	EnvSweepTimeout      = "SWEEP_TIMEOUT"

	EnvReservationNumberMaxRetries = "RESERVATION_NUMBER_MAX_RETRIES"

	EnvCheckedBaggagePrice = "CHECKED_BAGGAGE_PRICE"
	EnvHandBaggagePrice    = "HAND_BAGGAGE_PRICE"
	EnvSeatPrice           = "SEAT_PRICE"

	EnvKafkaEnabled       = "KAFKA_ENABLED"
	EnvBookingEventsTopic = "BOOKING_EVENTS_TOPIC"
)
