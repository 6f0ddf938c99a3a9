package main

import (
	"context"
	"log"

	"github.com/drakos74/coin-chat/client/binance"
	"github.com/drakos74/coin-chat/client/fx"
	"github.com/drakos74/coin-chat/infra/config"
	"github.com/drakos74/coin-chat/internal/favorites"
	"github.com/drakos74/coin-chat/internal/handler"
	"github.com/drakos74/coin-chat/internal/resolver"
	"github.com/drakos74/coin-chat/internal/server"
	json_storage "github.com/drakos74/coin-chat/internal/storage/file/json"
	"github.com/drakos74/coin-chat/user/telegram"
	"github.com/rs/zerolog"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %s", err.Error())
	}
	level, err := zerolog.ParseLevel(settings.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	shard := json_storage.BlobShard(settings.StorageDir)
	store, err := favorites.NewStore(shard)
	if err != nil {
		log.Fatalf("error creating favorites store: %s", err.Error())
	}
	prefs, err := favorites.NewPreferences(shard)
	if err != nil {
		log.Fatalf("error creating preferences: %s", err.Error())
	}

	fxClient := fx.NewClient().WithURL(settings.FXURL)
	quotes := resolver.New(fxClient, binance.NewClient())

	bot, err := telegram.NewBot(settings.TelegramBotToken, settings.TelegramChatID)
	if err != nil {
		log.Fatalf("error creating user: %s", err.Error())
	}

	ctx := context.Background()
	if err := bot.Run(ctx); err != nil {
		log.Fatalf("error running user: %s", err.Error())
	}

	service := handler.New(bot, quotes, fxClient, store, prefs)
	go func() {
		if err := service.Run(ctx); err != nil {
			log.Fatalf("error running handler: %s", err.Error())
		}
	}()

	srv := server.NewServer("coin-chat", settings.ServerPort).
		Add(server.Live()).
		Add(server.Quote(quotes)).
		Add(server.Series(quotes))
	if err := srv.Run(); err != nil {
		log.Fatalf("error running server: %s", err.Error())
	}
}
