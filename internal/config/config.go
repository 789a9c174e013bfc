// Package config loads runtime settings from .env and the process environment.
package config

import (
	"errors"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrMissingAPIKey is returned when no Gemini API key is configured.
var ErrMissingAPIKey = errors.New("missing GOOGLE_API_KEY in .env")

type Config struct {
	Server struct {
		Port string `mapstructure:"port"`
		Env  string `mapstructure:"env"`
	} `mapstructure:"server"`
	Gemini struct {
		APIKey     string `mapstructure:"api_key"`
		TextModel  string `mapstructure:"text_model"`
		ImageModel string `mapstructure:"image_model"`
	} `mapstructure:"gemini"`
	Chat struct {
		MaxHistory int `mapstructure:"max_history"`
	} `mapstructure:"chat"`
}

func LoadConfig() (Config, error) {
	var cfg Config

	if err := godotenv.Load(); err != nil {
		log.Println("warning: .env file not found, using environment only")
	}

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.env", "development")
	viper.SetDefault("chat.max_history", 40)

	viper.BindEnv("server.port", "APP_PORT")
	viper.BindEnv("server.env", "APP_ENV")
	viper.BindEnv("gemini.api_key", "GOOGLE_API_KEY")
	viper.BindEnv("gemini.text_model", "GEMINI_TEXT_MODEL")
	viper.BindEnv("gemini.image_model", "GEMINI_IMAGE_MODEL")
	viper.BindEnv("chat.max_history", "CHAT_MAX_HISTORY")

	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, err
	}

	if cfg.Gemini.APIKey == "" {
		return cfg, ErrMissingAPIKey
	}

	return cfg, nil
}
