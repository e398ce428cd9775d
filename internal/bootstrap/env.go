package bootstrap

import (
	"log"

	"github.com/joho/godotenv"
)

// LoadEnv loads variables from a local .env file if one is present. Runs
// before the fx container (and therefore the zap logger) exists.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
}
