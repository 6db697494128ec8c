package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	App        AppConfig        `yaml:"app"`
	Database   DatabaseConfig   `yaml:"database"`
	Encryption EncryptionConfig `yaml:"encryption"`
	Scanner    ScannerConfig    `yaml:"scanner"`
	Log        LogConfig        `yaml:"log"`
}

// AppConfig holds process-level settings.
type AppConfig struct {
	Env string `yaml:"env" env:"APP_ENV" env-default:"development"`
}

// IsProduction reports whether the process runs in a production posture.
func (c AppConfig) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// EncryptionConfig holds the process-wide secret protecting medical
// record fields. The key is expected to be 64 hexadecimal characters
// (a raw 256-bit key); any other non-empty value is treated as a
// passphrase. An empty key is rejected in production.
type EncryptionConfig struct {
	Key string `yaml:"key" env:"ENCRYPTION_KEY"`
}

// ScannerConfig holds barcode scanning session settings.
type ScannerConfig struct {
	// Cooldown is the minimum time between accepted scans of the same
	// code. One physical barcode pass can trigger the decoder dozens of
	// times per second; this suppresses the duplicates.
	Cooldown time.Duration `yaml:"cooldown" env:"SCANNER_COOLDOWN" env-default:"2s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
