package structs

import "time"

type Config struct {
	Server   *ServerConfig
	Cors     *CorsConfig
	Store    *StoreConfig
	Database *DatabaseConfig
	Booking  *BookingConfig
	Sale     *SaleConfig
}

type ServerConfig struct {
	AppName        string        // MaizonMarie
	Environment    string        // development, production
	Port           string        // :8083
	ReadTimeout    time.Duration // in seconds
	WriteTimeout   time.Duration // in seconds
	IdleTimeout    time.Duration // in seconds
	MaxHeaderBytes int           // in bytes
}

type CorsConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

// StoreConfig configures the persistence gateway: which backend holds the state
// snapshot and the single fixed key it lives under.
type StoreConfig struct {
	Backend     string // "redis" or "postgres"
	SnapshotKey string

	// Redis backend
	Address      string
	Username     string
	Password     string
	DB           int
	PoolSize     int
	MinIdleConns int
	MaxIdleConns int
	PoolTimeout  time.Duration
	IdleTimeout  time.Duration
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	MaxRetries   int
}

// DatabaseConfig configures the Postgres gateway backend.
type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	MaxConns     int
	ReadTimeout  time.Duration // in seconds
	WriteTimeout time.Duration // in seconds
}

type BookingConfig struct {
	// How long the "received" confirmation stays up before reverting.
	ConfirmationWindow time.Duration
}

type SaleConfig struct {
	// Defaults applied by AddSale when the operator supplies nothing.
	DefaultDuration        time.Duration
	DefaultOriginalPrice   uint64
	DefaultDiscountedPrice uint64
}
