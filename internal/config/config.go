// Package config reads runtime settings from the environment. main loads
// an optional .env file (joho/godotenv) before calling Load.
//
// Environment variables:
//
//	WORDLE_DB           word database path        (words.db)
//	WORDLE_SETTINGS     settings.ini path         (settings.ini)
//	WORDS_FILE          seed dictionary for init  (embedded list)
//	WORDLE_DB_AUTOINIT  create a missing database (true)
//	PORT                HTTP listen port          (5175)
//	LOG_LEVEL           zerolog level             (info)
package config

import (
	"os"
	"strconv"
)

// Config holds resolved settings.
type Config struct {
	DBPath       string
	SettingsPath string
	WordsFile    string
	AutoInit     bool
	Port         string
	LogLevel     string
}

// Load resolves Config from the environment.
func Load() Config {
	return Config{
		DBPath:       getEnv("WORDLE_DB", "words.db"),
		SettingsPath: getEnv("WORDLE_SETTINGS", "settings.ini"),
		WordsFile:    os.Getenv("WORDS_FILE"),
		AutoInit:     getBool("WORDLE_DB_AUTOINIT", true),
		Port:         getEnv("PORT", "5175"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getBool(k string, def bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
