package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	Storage StorageConfig
	Log     LogConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type StorageConfig struct {
	// File is the path of the combined clinic state file.
	File string
}

type LogConfig struct {
	Level string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("STORAGE_FILE", "clinic_data.csv")
	viper.SetDefault("LOG_LEVEL", "info")

	// A missing .env is fine; environment variables and defaults apply.
	_ = viper.ReadInConfig()

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		Storage: StorageConfig{
			File: viper.GetString("STORAGE_FILE"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	return config, nil
}
