package config

import (
	"bufio"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	defaultPort        = "8080"
	defaultCORSOrigins = "http://localhost:5173,http://127.0.0.1:5173"
	defaultWeekStart   = time.Monday
)

// Config holds the runtime settings for the API process.
type Config struct {
	Port        string
	CORSOrigins []string
	WeekStart   time.Weekday
}

// Load reads settings from the environment, first merging any .env file
// found in the current or parent directories. Missing values fall back
// to defaults with a warning.
func Load(logger *log.Logger) Config {
	if logger == nil {
		logger = log.Default()
	}
	loadEnvFile(logger)

	cfg := Config{
		Port:      defaultPort,
		WeekStart: defaultWeekStart,
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	} else {
		logger.Printf("WARN: PORT not set, using default %s", defaultPort)
	}

	corsEnv := os.Getenv("CORS_ORIGINS")
	if corsEnv == "" {
		logger.Printf("WARN: CORS_ORIGINS not set, using default local origins")
		corsEnv = defaultCORSOrigins
	}
	cfg.CORSOrigins = ParseCSV(corsEnv)

	if raw := os.Getenv("WEEK_START"); raw != "" {
		day, ok := ParseWeekday(raw)
		if !ok {
			logger.Printf("WARN: WEEK_START %q not recognized, using %s", raw, defaultWeekStart)
		} else {
			cfg.WeekStart = day
		}
	}

	return cfg
}

// ParseCSV splits a comma-separated value into trimmed non-empty parts.
func ParseCSV(input string) []string {
	if input == "" {
		return nil
	}
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}

// ParseWeekday maps an English weekday name (case-insensitive) to its
// time.Weekday value.
func ParseWeekday(raw string) (time.Weekday, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "sunday":
		return time.Sunday, true
	case "monday":
		return time.Monday, true
	case "tuesday":
		return time.Tuesday, true
	case "wednesday":
		return time.Wednesday, true
	case "thursday":
		return time.Thursday, true
	case "friday":
		return time.Friday, true
	case "saturday":
		return time.Saturday, true
	}
	return time.Sunday, false
}

func loadEnvFile(logger *log.Logger) {
	path, err := findEnvFile()
	if err != nil {
		logger.Printf("WARN: failed to locate .env: %v", err)
		return
	}
	if path == "" {
		return
	}

	file, err := os.Open(path)
	if err != nil {
		logger.Printf("WARN: failed to open %s: %v", path, err)
		return
	}
	defer func() { _ = file.Close() }()

	if err := applyEnvFile(logger, file); err != nil {
		logger.Printf("WARN: failed to load %s: %v", path, err)
		return
	}
	logger.Printf("loaded env from %s", path)
}

func findEnvFile() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for i := 0; i < 6; i++ {
		path := filepath.Join(dir, ".env")
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", nil
}

// applyEnvFile sets KEY=VALUE lines from r into the process environment.
// Existing environment variables win over file entries.
func applyEnvFile(logger *log.Logger, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if lineNum == 1 {
			line = strings.TrimPrefix(line, "\uFEFF")
		}
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "export ") {
			line = strings.TrimSpace(strings.TrimPrefix(line, "export "))
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		value = trimQuotes(strings.TrimSpace(value))
		if _, exists := os.LookupEnv(key); exists {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			logger.Printf("WARN: failed to set %s from env file", key)
		}
	}
	return scanner.Err()
}

func trimQuotes(value string) string {
	if len(value) < 2 {
		return value
	}
	if (value[0] == '"' && value[len(value)-1] == '"') ||
		(value[0] == '\'' && value[len(value)-1] == '\'') {
		return value[1 : len(value)-1]
	}
	return value
}
