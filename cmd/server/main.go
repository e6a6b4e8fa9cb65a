package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/AbhishekGiri04/InvoiceQC-Service/api"
	"github.com/AbhishekGiri04/InvoiceQC-Service/internal/logging"
	"github.com/AbhishekGiri04/InvoiceQC-Service/internal/models"
)

func main() {
	_ = godotenv.Load()

	config, err := loadConfig(configPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(config.Logging.Level, config.Logging.Pretty)

	handler := api.NewHandler(config, logger)
	router := handler.SetupRoutes()

	addr := fmt.Sprintf("%s:%d", config.Host, config.Port)
	logger.Info().Str("addr", addr).Msg("starting invoice QC service")
	logger.Info().Msg("endpoints: GET /health, POST /validate-json, POST /extract-and-validate")

	if err := http.ListenAndServe(addr, api.CORS(router)); err != nil {
		logger.Fatal().Err(err).Msg("server failed")
	}
}

func configPath() string {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}
	return "config.yaml"
}

func loadConfig(path string) (*models.Config, error) {
	config := models.DefaultConfig()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Override with environment variables if present
	if port := os.Getenv("PORT"); port != "" {
		fmt.Sscanf(port, "%d", &config.Port)
	}
	if host := os.Getenv("HOST"); host != "" {
		config.Host = host
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	return config, nil
}
