package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Port      string
	DBDSN     string
	JWTSecret string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// DevMode relaxes auth responses (e.g. echoes reset tokens) the way
	// the development backend does. Never enable in production.
	DevMode bool

	// Client side
	APIBaseURL      string
	DefaultLanguage string
	LocalDBPath     string

	// Placeholder chat server limits
	MaxConversations int
	MaxMessageChars  int
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// DSN demo:
	// app:apppass@tcp(127.0.0.1:3306)/amal?charset=utf8mb4&parseTime=true&loc=Local
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
			"app", "apppass", "127.0.0.1", "3306", "amal",
		)
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-secret-change-me"
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "127.0.0.1:6379"
	}

	redisDB := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			redisDB = n
		}
	}

	devMode := false
	if v := os.Getenv("DEV_MODE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			devMode = b
		}
	}

	apiBaseURL := os.Getenv("API_BASE_URL")
	if apiBaseURL == "" {
		apiBaseURL = "http://localhost:8080"
	}

	defaultLanguage := os.Getenv("DEFAULT_LANGUAGE")
	if defaultLanguage == "" {
		defaultLanguage = "ar"
	}

	localDBPath := os.Getenv("LOCAL_DB_PATH")
	if localDBPath == "" {
		localDBPath = "amal-local.db"
	}

	maxConversations := 100
	if v := os.Getenv("MAX_CONVERSATIONS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			maxConversations = n
		}
	}

	maxMessageChars := 4000
	if v := os.Getenv("MAX_MESSAGE_CHARS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			maxMessageChars = n
		}
	}

	return Config{
		Port:      port,
		DBDSN:     dsn,
		JWTSecret: secret,

		RedisAddr:     redisAddr,
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       redisDB,

		DevMode: devMode,

		APIBaseURL:      apiBaseURL,
		DefaultLanguage: defaultLanguage,
		LocalDBPath:     localDBPath,

		MaxConversations: maxConversations,
		MaxMessageChars:  maxMessageChars,
	}
}
