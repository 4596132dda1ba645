package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/iamasit07/connect4/engine/internal/domain"
)

type Config struct {
	Port               string
	BoardRows          int
	BoardColumns       int
	SearchDepth        int
	BotDifficulty      string
	AllowedOrigins     []string
	FrontendURL        string
	SessionIdleTTL     time.Duration
	SessionFinishedTTL time.Duration
	CleanupInterval    time.Duration
}

func LoadConfig() *Config {
	port := GetEnv("PORT", "8080")

	// Board & Bot
	rows := GetEnvAsInt("BOARD_ROWS", domain.DefaultRows)
	cols := GetEnvAsInt("BOARD_COLS", domain.DefaultColumns)
	if rows < domain.ToWin || cols < domain.ToWin {
		log.Printf("Board %dx%d cannot hold a line of %d, using %dx%d", rows, cols, domain.ToWin, domain.DefaultRows, domain.DefaultColumns)
		rows, cols = domain.DefaultRows, domain.DefaultColumns
	}

	searchDepth := GetEnvAsInt("BOT_SEARCH_DEPTH", 6)
	if searchDepth < 1 {
		log.Printf("Invalid BOT_SEARCH_DEPTH %d, using default: 6", searchDepth)
		searchDepth = 6
	}
	botDifficulty := GetEnv("BOT_DIFFICULTY", "hard")

	// Frontend & CORS
	frontendURL := GetEnv("FRONTEND_URL", "http://localhost:5173")
	allowedOrigins := []string{frontendURL}
	if extra := GetEnv("ALLOWED_ORIGINS", ""); extra != "" {
		for _, origin := range strings.Split(extra, ",") {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				allowedOrigins = append(allowedOrigins, trimmed)
			}
		}
	}

	// Session housekeeping
	idleTTL := GetEnvAsDuration("SESSION_IDLE_TTL", 24*time.Hour)
	finishedTTL := GetEnvAsDuration("SESSION_FINISHED_TTL", time.Hour)
	cleanupInterval := GetEnvAsDuration("CLEANUP_INTERVAL", time.Hour)

	return &Config{
		Port:               port,
		BoardRows:          rows,
		BoardColumns:       cols,
		SearchDepth:        searchDepth,
		BotDifficulty:      botDifficulty,
		AllowedOrigins:     allowedOrigins,
		FrontendURL:        frontendURL,
		SessionIdleTTL:     idleTTL,
		SessionFinishedTTL: finishedTTL,
		CleanupInterval:    cleanupInterval,
	}
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
		log.Printf("Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsDuration accepts Go duration strings such as "90m" or "24h".
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil || value <= 0 {
		log.Printf("Invalid duration value for %s: %s, using default: %s", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
