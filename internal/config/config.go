package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	do "github.com/samber/do/v2"
)

var Package = do.Package(
	do.Lazy[*Config](NewConfig),
)

const defaultBaseURL = "https://fakestoreapi.com"

// Config holds the application configuration.
type Config struct {
	BaseURL            string
	SessionFile        string
	ProductURLTemplate string
}

// NewConfig creates a new configuration from environment variables (for DI).
func NewConfig(_ do.Injector) (*Config, error) {
	return New()
}

// New creates a new configuration from environment variables. A .env file in
// the working directory is loaded first when present.
func New() (*Config, error) {
	_ = godotenv.Load()

	baseURL := os.Getenv("STOREADMIN_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	sessionFile := os.Getenv("STOREADMIN_SESSION_FILE")
	if sessionFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		sessionFile = filepath.Join(home, ".storeadmin", "session.json")
	}

	productURLTemplate := os.Getenv("STOREADMIN_PRODUCT_URL_TEMPLATE")
	if productURLTemplate == "" {
		productURLTemplate = baseURL + "/products/{{.ID}}"
	}

	return &Config{
		BaseURL:            baseURL,
		SessionFile:        sessionFile,
		ProductURLTemplate: productURLTemplate,
	}, nil
}
