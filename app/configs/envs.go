package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type ENV struct {
	Port          string
	StorageDriver string
	DBFile        string
	MongoURI      string
	MongoDB       string
	PublicDir     string
	AppAuthKey    string
	AppEncKey     string
	AdminUsername string
	AdminPassword string
	APP_ENV       string
}

func LoadEnv() ENV {

	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: No .env file found ")
	}

	return ENV{
		Port:          getEnv("APP_PORT", ":3000"),
		StorageDriver: getEnv("STORAGE_DRIVER", "json"),
		DBFile:        getEnv("DB_FILE", "database.json"),
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:       getEnv("MONGO_DB", "qrmenu"),
		PublicDir:     getEnv("PUBLIC_DIR", "public"),
		AppAuthKey:    os.Getenv("APP_AUTH_KEY"),
		AppEncKey:     os.Getenv("APP_ENC_KEY"),
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		APP_ENV:       getEnv("APP_ENV", "development"),
	}

}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
