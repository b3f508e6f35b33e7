package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	NSQ      NSQConfig
	JWT      JWTConfig
	Migrator MigratorConfig
	Rides    RidesConfig
	FCM      FCMConfig
	NewRelic NewRelicConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// NSQConfig contains NSQ daemon and lookupd configuration
type NSQConfig struct {
	Address        string
	LookupdAddress string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// MigratorConfig contains lifecycle migrator configuration
type MigratorConfig struct {
	CronSpec  string // cron expression for the migration schedule
	BatchSize int    // max rides processed per run, 0 for unlimited
}

// RidesConfig contains rides service specific configuration
type RidesConfig struct {
	DefaultPageLimit int     `json:"default_page_limit"`
	NearbyRadiusKm   float64 `json:"nearby_radius_km"` // Radius in kilometers for nearby ride search
}

// FCMConfig contains push delivery configuration
type FCMConfig struct {
	Endpoint  string
	ServerKey string
}

// NewRelicConfig contains New Relic agent configuration
type NewRelicConfig struct {
	LicenseKey   string
	AppName      string
	Enabled      bool
	LogsEnabled  bool
	ForwardLogs  bool
	LogsEndpoint string
	LogsAPIKey   string
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level      string
	FilePath   string
	MaxSize    int64
	MaxAge     int
	MaxBackups int
	Compress   bool
	Type       string
}
