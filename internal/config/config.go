package config

import (
	"fmt"
	"os"
	"time"
)

const (
	defaultLogLevel         = "info"
	defaultLogFormat        = "json"
	defaultHTTPPort         = "8080"
	defaultMetricsPort      = "9090"
	defaultSnapshotSchedule = "*/15 * * * *"
	defaultPingerInterval   = 10 * time.Second
)

type Config struct {
	KubeConfig       string
	KubeMaster       string
	LogLevel         string
	LogFormat        string
	HTTPPort         string
	MetricsPort      string
	SnapshotSchedule string
	SnapshotTZ       string
	PingerInterval   time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		KubeConfig:       getEnvOrFallback(envKeyKubeConfig, envKeyKubeConfigFallback),
		KubeMaster:       getEnvOrFallback(envKeyKubeMaster, envKeyKubeMasterFallback),
		LogLevel:         getEnvOrDefault(envKeyLogLevel, defaultLogLevel),
		LogFormat:        getEnvOrDefault(envKeyLogFormat, defaultLogFormat),
		HTTPPort:         getEnvOrDefault(envKeyHTTPPort, defaultHTTPPort),
		MetricsPort:      getEnvOrDefault(envKeyMetricsPort, defaultMetricsPort),
		SnapshotSchedule: getEnvOrDefault(envKeySnapshotSchedule, defaultSnapshotSchedule),
		SnapshotTZ:       os.Getenv(envKeySnapshotTZ),
	}

	pingerInterval, err := getDuration(envKeyPingerInterval, defaultPingerInterval, envMinPingerInterval)
	if err != nil {
		return nil, err
	}

	cfg.PingerInterval = pingerInterval

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	return value
}

func getEnvOrFallback(key, fallbackKey string) string {
	value := os.Getenv(key)
	if value == "" {
		return os.Getenv(fallbackKey)
	}

	return value
}

func getDuration(key string, defaultValue, minValue time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}

	value, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}

	if value < minValue {
		return 0, fmt.Errorf("%s must be at least %s, got %s", key, minValue, value)
	}

	return value, nil
}
