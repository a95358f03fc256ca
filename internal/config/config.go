package config

import "os"

// Config carries all runtime configuration. Values come from the
// environment (optionally seeded from a .env file by the entry point).
type Config struct {
	MongoURI  string
	MongoDB   string
	RedisAddr string
	HTTPPort  string
	JWTSecret string
	UploadDir string
}

// Load reads configuration from the environment. JWTSecret deliberately
// has no default: secret material is injected, never embedded in source.
func Load() *Config {
	return &Config{
		MongoURI:  getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:   getEnv("MONGO_DB", "gamers_challenge"),
		RedisAddr: getEnv("REDIS_ADDR", ""),
		HTTPPort:  getEnv("PORT", "3000"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		UploadDir: getEnv("UPLOAD_DIR", "uploads"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
