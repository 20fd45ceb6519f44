package config

import "fmt"

// Store backends for the demo shop
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

// ServerConfig holds demo shop server settings
type ServerConfig struct {
	Port    string
	Backend string
}

// LoadServerConfig loads server configuration from environment variables
func LoadServerConfig(getenv func(string) string) (ServerConfig, error) {
	config := ServerConfig{
		Port:    getenv("PORT"),
		Backend: getenv("STORE_BACKEND"),
	}

	if config.Port == "" {
		config.Port = "8080" // Default to port 8080
	}

	switch config.Backend {
	case "":
		config.Backend = BackendMemory
	case BackendMemory, BackendPostgres:
	default:
		return ServerConfig{}, fmt.Errorf("STORE_BACKEND must be %s or %s, got %q", BackendMemory, BackendPostgres, config.Backend)
	}

	return config, nil
}
