// config/config.go
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all environment-driven settings for the service
type Config struct {
	DBUser          string
	DBPass          string
	DBHost          string
	DBName          string
	JWTSecret       string
	StripeSecretKey string
	SendGridAPIKey  string
	EmailSender     string
	Port            string
}

// Load reads the .env file (if present) and builds the Config from the environment
func Load() *Config {
	godotenv.Load()

	conf := &Config{
		DBUser:          os.Getenv("DB_USER"),
		DBPass:          os.Getenv("DB_PASS"),
		DBHost:          os.Getenv("DB_HOST"),
		DBName:          os.Getenv("DB_NAME"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		SendGridAPIKey:  os.Getenv("SENDGRID_API_KEY"),
		EmailSender:     os.Getenv("EMAIL_SENDER"),
		Port:            os.Getenv("PORT"),
	}

	if conf.DBName == "" {
		conf.DBName = "e-mart"
	}
	if conf.Port == "" {
		conf.Port = "5000"
	}

	return conf
}

// MongoURI builds the connection string. An Atlas-style SRV URI is used when
// credentials are set, a plain URI otherwise.
func (c *Config) MongoURI() string {
	if c.DBHost == "" {
		return "mongodb://localhost:27017"
	}
	if c.DBUser != "" {
		return fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority", c.DBUser, c.DBPass, c.DBHost)
	}
	return fmt.Sprintf("mongodb://%s", c.DBHost)
}
