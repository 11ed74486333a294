package config

import (
	"flag"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	defaultPort            = "8080"
	defaultLogLevel        = "info"
	defaultShutdownTimeout = 10 * time.Second
)

type Config struct {
	Port            string
	GRPCAddress     string
	LogLevel        string
	ShutdownTimeout time.Duration
}

// NewConfig builds the configuration from defaults, command-line flags and
// environment variables, in increasing order of priority. Variables from a
// .env file in the working directory are loaded unless already set.
func NewConfig() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("Failed to load .env file")
	}

	cfg := &Config{
		Port:            defaultPort,
		GRPCAddress:     "",
		LogLevel:        defaultLogLevel,
		ShutdownTimeout: defaultShutdownTimeout,
	}

	flag.StringVar(&cfg.Port, "p", cfg.Port, "HTTP port to listen on (all interfaces)")
	flag.StringVar(&cfg.GRPCAddress, "g", cfg.GRPCAddress, "gRPC listen address (e.g. :9090), empty disables gRPC")
	flag.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "Log level (debug, info, warn, error)")
	flag.DurationVar(&cfg.ShutdownTimeout, "t", cfg.ShutdownTimeout, "Graceful shutdown timeout")

	flag.Parse()

	if envPort := os.Getenv("PORT"); envPort != "" {
		cfg.Port = envPort
	}

	if envGRPCAddress := os.Getenv("GRPC_ADDRESS"); envGRPCAddress != "" {
		cfg.GRPCAddress = envGRPCAddress
	}

	if envLogLevel := os.Getenv("LOG_LEVEL"); envLogLevel != "" {
		cfg.LogLevel = envLogLevel
	}

	if envShutdownTimeout := os.Getenv("SHUTDOWN_TIMEOUT"); envShutdownTimeout != "" {
		if d, err := time.ParseDuration(envShutdownTimeout); err == nil {
			cfg.ShutdownTimeout = d
		} else {
			log.Warn().Str("value", envShutdownTimeout).Msg("Invalid SHUTDOWN_TIMEOUT, ignoring")
		}
	}

	if !validPort(cfg.Port) {
		log.Warn().Str("port", cfg.Port).Str("fallback", defaultPort).Msg("Invalid port, using default")
		cfg.Port = defaultPort
	}

	return cfg
}

// Addr returns the HTTP listen address on all interfaces.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func validPort(port string) bool {
	n, err := strconv.ParseUint(port, 10, 16)
	return err == nil && n > 0
}
