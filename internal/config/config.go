package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBPort          string
	AppPort         string
	AppEnv          string
	AppSecret       string
	FrontendURL     string
	StripeSecretKey string
	MailHost        string
	MailPort        string
	MailUser        string
	MailPassword    string
	MailFrom        string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:          os.Getenv("DB_HOST"),
		DBUser:          os.Getenv("DB_USER"),
		DBPassword:      os.Getenv("DB_PASSWORD"),
		DBName:          os.Getenv("DB_NAME"),
		DBPort:          os.Getenv("DB_PORT"),
		AppPort:         os.Getenv("APP_PORT"),
		AppEnv:          os.Getenv("APP_ENV"),
		AppSecret:       os.Getenv("APP_SECRET"),
		FrontendURL:     os.Getenv("FRONTEND_URL"),
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		MailHost:        os.Getenv("MAIL_HOST"),
		MailPort:        os.Getenv("MAIL_PORT"),
		MailUser:        os.Getenv("MAIL_USER"),
		MailPassword:    os.Getenv("MAIL_PASSWORD"),
		MailFrom:        os.Getenv("MAIL_FROM"),
	}

	if cfg.DBHost == "" {
		log.Fatal("Environment variables not loaded properly")
	}
	if cfg.AppSecret == "" {
		log.Fatal("APP_SECRET must be set")
	}

	return cfg
}
