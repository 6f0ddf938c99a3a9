package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Settings holds the runtime configuration, sourced from the environment.
type Settings struct {
	TelegramBotToken string `envconfig:"TELEGRAM_BOT_TOKEN" required:"true"`
	TelegramChatID   int64  `envconfig:"TELEGRAM_CHAT_ID" required:"true"`
	StorageDir       string `envconfig:"STORAGE_DIR" default:"file-storage"`
	ServerPort       int    `envconfig:"SERVER_PORT" default:"6090"`
	FXURL            string `envconfig:"FX_URL" default:"https://api.frankfurter.app"`
	LogLevel         string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads the settings from the environment,
// an optional .env file is applied first.
func Load() (Settings, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}
	var settings Settings
	if err := envconfig.Process("", &settings); err != nil {
		return Settings{}, fmt.Errorf("could not process config: %w", err)
	}
	return settings, nil
}
