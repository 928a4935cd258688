package config

import "os"

// Config holds everything the server reads from the environment.
type Config struct {
	Addr          string // listen address, e.g. ":8080"
	DBDSN         string // postgres DSN, or a sqlite file path
	SessionSecret string
	UploadDir     string
}

// Load builds a Config from environment variables with local-dev defaults.
// godotenv loading happens in main before this is called.
func Load() Config {
	addr := ":" + envOr("PORT", "8080")
	return Config{
		Addr:          addr,
		DBDSN:         envOr("DB_DSN", "data/tradeboard.db"),
		SessionSecret: envOr("SESSION_SECRET", "dev_fallback_secret"),
		UploadDir:     envOr("UPLOAD_DIR", "uploads"),
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
