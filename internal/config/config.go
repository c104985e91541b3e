package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultHTTPPort        = 8000
	defaultMetricsPort     = 8080
	defaultHTTPReadTimeout = 10 * time.Second
)

type Config struct {
	Env             string        // Env is the current environment: local, development, production.
	DatabaseURL     string        // DatabaseURL is the Postgres connection string.
	CORSOrigins     []string      // CORSOrigins lists the allowed browser origins, "*" allows any.
	HTTPPort        int           // HTTPPort is the port of the API server.
	MetricsPort     int           // MetricsPort is the port of the /metrics and /readyz server.
	HTTPReadTimeout time.Duration // HTTPReadTimeout bounds reading request headers.
}

// MustLoad builds the configuration from the environment, an optional .env file
// and an optional YAML file named by CONFIG_PATH. Environment variables win.
func MustLoad() *Config {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("env", "local")
	v.SetDefault("cors_origins", "*")
	v.SetDefault("http_port", defaultHTTPPort)
	v.SetDefault("metrics_port", defaultMetricsPort)
	v.SetDefault("http_read_timeout", defaultHTTPReadTimeout.String())

	mustBindEnv(v, "env", "HRMS_ENV")
	mustBindEnv(v, "database_url", "DATABASE_URL")
	mustBindEnv(v, "cors_origins", "CORS_ORIGINS")
	mustBindEnv(v, "http_port", "HTTP_PORT")
	mustBindEnv(v, "metrics_port", "METRICS_PORT")
	mustBindEnv(v, "http_read_timeout", "HTTP_READ_TIMEOUT")

	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			panic("config file does not exist: " + configPath)
		}

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			panic("config error: " + err.Error())
		}
	}

	databaseURL := strings.TrimSpace(v.GetString("database_url"))
	if databaseURL == "" {
		panic("database url is empty")
	}

	readTimeout, err := time.ParseDuration(v.GetString("http_read_timeout"))
	if err != nil {
		panic("failed to parse http read timeout from configuration")
	}

	return &Config{
		Env:             v.GetString("env"),
		DatabaseURL:     databaseURL,
		CORSOrigins:     mustParseCORSOrigins(v.GetString("cors_origins")),
		HTTPPort:        mustParsePort(v.GetString("http_port"), "http port"),
		MetricsPort:     mustParsePort(v.GetString("metrics_port"), "metrics port"),
		HTTPReadTimeout: readTimeout,
	}
}

// ParseCORSOrigins splits a comma separated origin list. A blank list means "*".
func ParseCORSOrigins(raw string) []string {
	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}

	if len(origins) == 0 {
		return []string{"*"}
	}

	return origins
}

// mustParseCORSOrigins accepts either "*" alone or a list of http(s) origins.
func mustParseCORSOrigins(raw string) []string {
	origins := ParseCORSOrigins(raw)
	if len(origins) == 1 && origins[0] == "*" {
		return origins
	}

	for _, origin := range origins {
		if !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			panic("failed to parse cors origin " + origin + " from configuration")
		}
	}

	return origins
}

func mustBindEnv(v *viper.Viper, key, env string) {
	if err := v.BindEnv(key, env); err != nil {
		panic("config error: " + err.Error())
	}
}

func mustParsePort(raw, name string) int {
	const maxPort = 65535

	port, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || port < 1 || port > maxPort {
		panic("failed to parse " + name + " from configuration")
	}

	return port
}
