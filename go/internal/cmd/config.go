package main

import (
	"os"

	"github.com/matchdayhq/matchday/go/internal/schedule"
)

type appConfig struct {
	Token      string
	StorePath  string
	PolicyPath string
}

func loadAppConfig() appConfig {
	return appConfig{
		Token:      os.Getenv("FOOTBALL_DATA_TOKEN"),
		StorePath:  getEnv("MATCHDAY_DB_PATH", "matchday.db"),
		PolicyPath: os.Getenv("MATCHDAY_POLICY"),
	}
}

func loadPolicy(path string) (schedule.Config, error) {
	if path == "" {
		return schedule.DefaultConfig(), nil
	}

	return schedule.LoadConfig(path)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}
