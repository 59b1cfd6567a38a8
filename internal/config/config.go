package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Dictionary DictionaryConfig `yaml:"dictionary"`
	WordOfDay  WordOfDayConfig  `yaml:"word_of_day"`
	WordList   WordListConfig   `yaml:"word_list"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
	Metrics    MetricsConfig    `yaml:"metrics"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id,X-Search-Session"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`

	// TrustProxyHeaders takes the client IP from X-Forwarded-For and
	// X-Real-IP. Enable it only behind a proxy that overwrites them.
	TrustProxyHeaders bool `yaml:"trust_proxy_headers" env:"SERVER_TRUST_PROXY_HEADERS"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`

	// SkipMigrations disables goose migrations at startup. Boolean switches
	// stay false by default: cleanenv applies env-default over a YAML false.
	SkipMigrations bool `yaml:"skip_migrations" env:"DATABASE_SKIP_MIGRATIONS"`
}

// DictionaryConfig holds the upstream dictionary API settings.
type DictionaryConfig struct {
	BaseURL       string        `yaml:"base_url"       env:"DICTIONARY_BASE_URL"       env-default:"https://www.dictionaryapi.com/api/v3/references/collegiate/json"`
	APIKey        string        `yaml:"api_key"        env:"DICTIONARY_API_KEY"        env-required:"true"`
	LookupTimeout time.Duration `yaml:"lookup_timeout" env:"DICTIONARY_LOOKUP_TIMEOUT" env-default:"10s"`
	// RateLimit caps lookups per client IP per minute; 0 disables it.
	RateLimit int `yaml:"rate_limit" env:"DICTIONARY_RATE_LIMIT" env-default:"60"`
}

// WordOfDayConfig holds word-of-the-day rotation settings.
type WordOfDayConfig struct {
	EpochRaw string `yaml:"epoch"    env:"WORD_OF_DAY_EPOCH"    env-default:"2024-01-01"`
	Timezone string `yaml:"timezone" env:"WORD_OF_DAY_TIMEZONE" env-default:"UTC"`

	// Epoch is parsed from EpochRaw during validation.
	Epoch time.Time `yaml:"-" env:"-"`
	// Location is resolved from Timezone during validation.
	Location *time.Location `yaml:"-" env:"-"`
}

// WordListConfig points at the word list used by the catalog and the seeder.
// An empty Path means the bundled list.
type WordListConfig struct {
	Path         string        `yaml:"path"          env:"WORD_LIST_PATH"`
	RemoteURL    string        `yaml:"remote_url"    env:"WORD_LIST_REMOTE_URL"`
	FetchTimeout time.Duration `yaml:"fetch_timeout" env:"WORD_LIST_FETCH_TIMEOUT" env-default:"15s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// MetricsConfig holds Prometheus exposition settings.
type MetricsConfig struct {
	Disabled bool   `yaml:"disabled" env:"METRICS_DISABLED"`
	Path     string `yaml:"path"     env:"METRICS_PATH"     env-default:"/metrics"`
}
