package config

import "time"

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "skyfare"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	// A basket holds inventory for 15 idle minutes; an unconfirmed
	// reservation holds it for 30. Sweeps run every 5 minutes.
	DefaultBasketExpiry      = 15 * time.Minute
	DefaultReservationExpiry = 30 * time.Minute
	DefaultSweepInterval     = 5 * time.Minute
	DefaultSweepTimeout      = 2 * time.Minute

	DefaultReservationNumberLength     = 6
	DefaultReservationNumberMaxRetries = 100

	DefaultCheckedBaggagePrice = 30.0
	DefaultHandBaggagePrice    = 10.0
	DefaultSeatPrice           = 10.0
	// Every passenger may bring one hand bag free of charge.
	DefaultFreeHandBaggage = 1

	DefaultBookingEventsTopic = "skyfare.bookings"

	DefaultPaginationLimit = 100
)
