package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	Env       string
	DBDriver  string
	DBSource  string
	Namespace string
	SeedDemo  bool
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		Port:      getEnv("PORT", "8000"),
		Env:       getEnv("APP_ENV", "development"),
		DBDriver:  getEnv("DB_DRIVER", "sqlite"),
		DBSource:  getEnv("DB_SOURCE", "backoffice.db"),
		Namespace: getEnv("STATE_NAMESPACE", "cloud-kitchen"),
		SeedDemo:  getEnv("SEED_DEMO", "true") == "true",
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
