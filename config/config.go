package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"connect4/meta"
	"connect4/searcher"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Iterations  int
	Exploration float64
	Games       int
	ResultsFile string
	ChartFile   string
	MovesFile   string
	Seed        int64
	LogLevel    string
}

// Load reads files (".env" by default) into the environment, without
// overriding variables already set, and builds a Config from it.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}

	return Config{
		Iterations:  GetEnvAsInt("C4_ITERATIONS", searcher.DefaultIterations),
		Exploration: GetEnvAsFloat("C4_EXPLORATION", searcher.DefaultExploration),
		Games:       GetEnvAsInt("C4_GAMES", meta.GAMES),
		ResultsFile: GetEnv("C4_RESULTS_FILE", meta.RESULTS_FILE),
		ChartFile:   GetEnv("C4_CHART_FILE", ""),
		MovesFile:   GetEnv("C4_MOVES_FILE", ""),
		Seed:        GetEnvAsInt64("C4_SEED", 0),
		LogLevel:    GetEnv("LOG_LEVEL", meta.LOG_LEVEL),
	}, nil
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Warn().Msgf("invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		log.Warn().Msgf("invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Warn().Msgf("invalid float value for %s: %s, using default: %g", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
