package config

import (
	"fmt"
	"log"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	UserServicePort = "3000"
	BotServicePort  = "8000"
)

type Config struct {
	Server  ServerConfig
	Log     LogConfig
	CORS    CORSConfig
	HTTP    HTTPConfig
	Swagger SwaggerConfig
}

type ServerConfig struct {
	Host            string
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// Addr is the listen address, e.g. ":3000".
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, s.Port)
}

type LogConfig struct {
	Level  string
	Format string
}

type CORSConfig struct {
	MaxAge int
	Debug  bool
}

type HTTPConfig struct {
	GinMode         string
	SecurityHeaders bool
}

type SwaggerConfig struct {
	Enabled bool
}

// Load reads the environment (after an optional .env file) and falls back
// to defaultPort when PORT is unset or empty.
func Load(defaultPort string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	port, err := getPort("PORT", defaultPort)
	if err != nil {
		return nil, err
	}

	ginMode := getEnv("GIN_MODE", "release")
	switch ginMode {
	case "debug", "release", "test":
	default:
		return nil, fmt.Errorf("invalid GIN_MODE %q: must be debug, release or test", ginMode)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:            getEnv("HOST", ""),
			Port:            port,
			ReadTimeout:     getDuration("READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getDuration("WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:     getDuration("IDLE_TIMEOUT", 60*time.Second),
			ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		CORS: CORSConfig{
			MaxAge: getEnvAsInt("CORS_MAX_AGE", 0),
			Debug:  getEnvAsBool("CORS_DEBUG", false),
		},
		HTTP: HTTPConfig{
			GinMode:         ginMode,
			SecurityHeaders: getEnvAsBool("SECURITY_HEADERS", true),
		},
		Swagger: SwaggerConfig{
			Enabled: getEnvAsBool("SWAGGER_ENABLED", false),
		},
	}

	return cfg, nil
}

func getPort(key, defaultVal string) (string, error) {
	value := getEnv(key, defaultVal)
	port, err := strconv.Atoi(value)
	if err != nil || port < 0 || port > 65535 {
		return "", fmt.Errorf("invalid %s %q: must be an integer between 0 and 65535", key, value)
	}
	return strconv.Itoa(port), nil
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvAsBool(key string, defaultVal bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultVal
}
