// Package config loads environment-based settings for the console API.
package config

// File: internal/config/config.go
// Purpose: Centralized configuration parsing and derived helpers (webhook
// URLs, DSN, Rabbit URL).

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config stores parsed environment configuration for the console API.
type Config struct {
	Port int

	WorkflowBaseURL string
	ScenarioPath    string
	MappingGetPath  string
	MappingSavePath string
	HeadersGetPath  string
	FetchTimeout    time.Duration

	MySQLHost     string
	MySQLPort     string
	MySQLUser     string
	MySQLPassword string
	MySQLDB       string

	RabbitHost   string
	RabbitPort   string
	RabbitUser   string
	RabbitPass   string
	ExchangeName string
}

// Load parses environment variables and returns a validated Config.
func Load() (*Config, error) {
	port, err := atoiWithDefault(os.Getenv("CONSOLE_API_PORT"), 8080)
	if err != nil {
		return nil, err
	}
	timeoutSec, err := atoiWithDefault(os.Getenv("WORKFLOW_FETCH_TIMEOUT_S"), 90)
	if err != nil {
		return nil, err
	}
	if timeoutSec <= 0 {
		return nil, fmt.Errorf("WORKFLOW_FETCH_TIMEOUT_S must be > 0")
	}

	cfg := &Config{
		Port:            port,
		WorkflowBaseURL: getenv("WORKFLOW_BASE_URL", "https://wbdemo.shipsy.io/webhook"),
		ScenarioPath:    getenv("WORKFLOW_SCENARIO_PATH", "/RPO"),
		MappingGetPath:  getenv("WORKFLOW_MAPPING_GET_PATH", "/get-scenario-mapping"),
		MappingSavePath: getenv("WORKFLOW_MAPPING_SAVE_PATH", "/save-mappings"),
		HeadersGetPath:  getenv("WORKFLOW_HEADERS_GET_PATH", "/get-scenario-raw-file-headers"),
		FetchTimeout:    time.Duration(timeoutSec) * time.Second,
		MySQLHost:       os.Getenv("MYSQL_HOST"),
		MySQLPort:       getenv("MYSQL_PORT", "3306"),
		MySQLUser:       getenv("MYSQL_USER", "rpo"),
		MySQLPassword:   getenv("MYSQL_PASSWORD", "rpopass"),
		MySQLDB:         getenv("MYSQL_DB", "rpo_console"),
		RabbitHost:      os.Getenv("RABBITMQ_HOST"),
		RabbitPort:      getenv("RABBITMQ_PORT", "5672"),
		RabbitUser:      getenv("RABBITMQ_USER", "rpo"),
		RabbitPass:      getenv("RABBITMQ_PASS", "rpopass"),
		ExchangeName:    "rpo.events",
	}
	return cfg, nil
}

// ScenarioMetricsURL returns the scenario metrics webhook URL.
func (c *Config) ScenarioMetricsURL() string {
	return c.WorkflowBaseURL + c.ScenarioPath
}

// GetMappingURL returns the stored-mapping webhook URL.
func (c *Config) GetMappingURL() string {
	return c.WorkflowBaseURL + c.MappingGetPath
}

// GetHeadersURL returns the raw-file-headers webhook URL.
func (c *Config) GetHeadersURL() string {
	return c.WorkflowBaseURL + c.HeadersGetPath
}

// SaveMappingURL returns the save-mappings webhook URL.
func (c *Config) SaveMappingURL() string {
	return c.WorkflowBaseURL + c.MappingSavePath
}

// AuditEnabled reports whether the MySQL audit store is configured.
func (c *Config) AuditEnabled() bool {
	return c.MySQLHost != ""
}

// EventsEnabled reports whether the AMQP event stream is configured.
func (c *Config) EventsEnabled() bool {
	return c.RabbitHost != ""
}

// DSN returns a MySQL DSN string based on the config.
func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&multiStatements=true", c.MySQLUser, c.MySQLPassword, c.MySQLHost, c.MySQLPort, c.MySQLDB)
}

// RabbitURL returns the AMQP URL used by the publisher.
func (c *Config) RabbitURL() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%s/", c.RabbitUser, c.RabbitPass, c.RabbitHost, c.RabbitPort)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func atoiWithDefault(raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid int %q: %w", raw, err)
	}
	return v, nil
}
