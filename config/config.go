package config

import (
	"errors"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	DB      DBConfig
	Redis   RedisConfig
	Storage StorageConfig
	OpenAI  OpenAIConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	Enabled  bool
}

// StorageConfig selects the persistence backend. Driver is "memory" or
// "postgres"; the in-memory driver needs no database at all.
type StorageConfig struct {
	Driver string
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// A missing .env is fine; environment variables alone are enough,
	// especially with the in-memory storage driver.
	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	openAITimeout, err := time.ParseDuration(viper.GetString("OPENAI_TIMEOUT"))
	if err != nil {
		openAITimeout = 60 * time.Second
	}

	storageDriver := viper.GetString("STORAGE_DRIVER")
	if storageDriver == "" {
		storageDriver = "memory"
	}

	openAIModel := viper.GetString("OPENAI_MODEL")
	if openAIModel == "" {
		openAIModel = "gpt-5"
	}

	openAIBaseURL := viper.GetString("OPENAI_BASE_URL")
	if openAIBaseURL == "" {
		openAIBaseURL = "https://api.openai.com/v1"
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
			Enabled:  viper.GetBool("REDIS_ENABLED"),
		},
		Storage: StorageConfig{
			Driver: storageDriver,
		},
		OpenAI: OpenAIConfig{
			APIKey:  viper.GetString("OPENAI_API_KEY"),
			Model:   openAIModel,
			BaseURL: openAIBaseURL,
			Timeout: openAITimeout,
		},
	}

	if config.App.Port == "" {
		config.App.Port = "8080"
	}

	return config, nil
}
