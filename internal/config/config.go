// Package config loads and exposes application configuration.
// Configuration lives in a TOML file; secrets may be overridden from the
// environment (a local .env file is honored when present).
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// MainConfig carries application identity and listen address.
type MainConfig struct {
	AppName string `toml:"appName"`
	Host    string `toml:"host"`
	Port    int    `toml:"port"`
	Mode    string `toml:"mode"` // "dev" or "release"
}

// MysqlConfig holds MySQL connection settings.
type MysqlConfig struct {
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	User         string `toml:"user"`
	Password     string `toml:"password"`
	DatabaseName string `toml:"databaseName"`
}

// RedisConfig holds Redis connection settings for the contact list cache.
type RedisConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Password string `toml:"password"`
	Db       int    `toml:"db"`
}

// GoogleConfig configures the external people-directory client.
// APIToken is the OAuth bearer token used for every call; BaseURL is
// overridable for tests.
type GoogleConfig struct {
	BaseURL     string `toml:"baseURL"`
	APIToken    string `toml:"apiToken"`
	CallTimeout int    `toml:"callTimeout"` // seconds
	PageSize    int    `toml:"pageSize"`
}

// LogConfig configures zap output and lumberjack rotation.
type LogConfig struct {
	LogPath    string `toml:"logPath"`
	FileName   string `toml:"fileName"`
	MaxSize    int    `toml:"maxSize"`
	MaxBackups int    `toml:"maxBackups"`
	MaxAge     int    `toml:"maxAge"`
	Level      string `toml:"level"`
}

// EventsConfig selects the sync progress event transport.
// Mode "channel" keeps events in-process (websocket feed only);
// mode "kafka" additionally publishes them to a topic.
type EventsConfig struct {
	Mode      string `toml:"mode"`
	HostPort  string `toml:"hostPort"`
	SyncTopic string `toml:"syncTopic"`
	Timeout   int    `toml:"timeout"` // seconds
}

// JWTConfig holds token signing settings.
type JWTConfig struct {
	Secret             string `toml:"secret"`
	AccessTokenExpiry  int    `toml:"accessTokenExpiry"`  // minutes
	RefreshTokenExpiry int    `toml:"refreshTokenExpiry"` // hours
}

// Config aggregates all sections.
type Config struct {
	MainConfig   `toml:"mainConfig"`
	MysqlConfig  `toml:"mysqlConfig"`
	RedisConfig  `toml:"redisConfig"`
	GoogleConfig `toml:"googleConfig"`
	LogConfig    `toml:"logConfig"`
	EventsConfig `toml:"eventsConfig"`
	JWTConfig    `toml:"jwtConfig"`
}

var config *Config

// LoadConfig reads the first config file found among the candidate paths,
// then applies environment overrides for secrets.
func LoadConfig() error {
	paths := []string{
		"configs/config_local.toml",
		"configs/config.toml",
		"../../configs/config_local.toml",
		"../../configs/config.toml",
	}

	loaded := false
	for _, path := range paths {
		if _, err := toml.DecodeFile(path, config); err == nil {
			loaded = true
			break
		}
	}
	if !loaded {
		return fmt.Errorf("could not find configuration file in any of the search paths")
	}

	applyEnvOverrides(config)
	return nil
}

// applyEnvOverrides lets deployments keep secrets out of the TOML file.
// A .env file beside the binary is loaded first when present.
func applyEnvOverrides(c *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("KIND_MYSQL_PASSWORD"); v != "" {
		c.MysqlConfig.Password = v
	}
	if v := os.Getenv("KIND_GOOGLE_API_TOKEN"); v != "" {
		c.GoogleConfig.APIToken = v
	}
	if v := os.Getenv("KIND_JWT_SECRET"); v != "" {
		c.JWTConfig.Secret = v
	}
}

// Validate checks the process-wide requirements: without a database target
// and a directory credential the server must not start.
func (c *Config) Validate() error {
	if c.MysqlConfig.Host == "" || c.MysqlConfig.DatabaseName == "" {
		return fmt.Errorf("mysql host and database name are required")
	}
	if c.GoogleConfig.APIToken == "" {
		return fmt.Errorf("google api token is required (googleConfig.apiToken or KIND_GOOGLE_API_TOKEN)")
	}
	if c.JWTConfig.Secret == "" {
		return fmt.Errorf("jwt secret is required (jwtConfig.secret or KIND_JWT_SECRET)")
	}
	return nil
}

// GetConfig returns the lazily loaded configuration singleton.
func GetConfig() *Config {
	if config == nil {
		config = new(Config)
		_ = LoadConfig()
	}
	return config
}
