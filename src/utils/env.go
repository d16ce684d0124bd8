package utils

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// InitEnvironmentVariables loads a .env file from the working directory. In
// production the environment is provisioned externally and no file is read.
func InitEnvironmentVariables() error {
	if os.Getenv("GO_ENV") == "production" {
		log.Info("Running in production environment")
		return nil
	}

	if err := godotenv.Load(); err != nil {
		return fmt.Errorf("InitEnvironmentVariables: failed to load .env file: %w", err)
	}

	return nil
}

// GetEnv returns the named environment variable or an error when unset.
func GetEnv(name string) (string, error) {
	value := os.Getenv(name)
	if value == "" {
		return "", fmt.Errorf("GetEnv: environment variable %s not set", name)
	}

	return value, nil
}
