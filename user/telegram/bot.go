package telegram

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/drakos74/coin-chat/internal/api"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	"github.com/rs/zerolog/log"
)

// favoriteCallback is the callback payload of the favorite button.
const favoriteCallback = "fav"

// allow to change this for the tests
var consumerTimeout = 1 * time.Second

type botAPI interface {
	GetUpdatesChan(config tgbotapi.UpdateConfig) (tgbotapi.UpdatesChannel, error)
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	AnswerCallbackQuery(config tgbotapi.CallbackConfig) (tgbotapi.APIResponse, error)
}

// Bot defines the telegram bot api.User implementation.
type Bot struct {
	api       botAPI
	chatID    int64
	selfID    int
	lock      sync.Mutex
	consumers map[api.ConsumerKey]chan api.Command
	reactions map[string]chan api.Reaction
}

// NewBot creates a new telegram bot implementing the api.User interface.
func NewBot(token string, chatID int64) (*Bot, error) {
	botClient, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("error creating bot: %w", err)
	}
	botClient.Buffer = 0
	return &Bot{
		api:       botClient,
		chatID:    chatID,
		selfID:    botClient.Self.ID,
		consumers: make(map[api.ConsumerKey]chan api.Command),
		reactions: make(map[string]chan api.Reaction),
	}, nil
}

// Run starts the Bot and polls for updates from telegram.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 10

	updates, err := b.api.GetUpdatesChan(u)
	if err != nil {
		return err
	}

	go b.listenToUpdates(ctx, updates)
	return nil
}

// Listen exposes a channel to the caller with updates for the given prefix.
func (b *Bot) Listen(key, prefix string) <-chan api.Command {
	b.lock.Lock()
	defer b.lock.Unlock()
	ch := make(chan api.Command)
	b.consumers[api.ConsumerKey{
		Key:    key,
		Prefix: prefix,
	}] = ch
	return ch
}

// Reactions exposes a channel with the favorite marks left on the bots own messages.
func (b *Bot) Reactions(key string) <-chan api.Reaction {
	b.lock.Lock()
	defer b.lock.Unlock()
	ch := make(chan api.Reaction)
	b.reactions[key] = ch
	return ch
}

// Send sends the given message to the configured telegram chat.
func (b *Bot) Send(message *api.Message) int {
	sent, err := b.api.Send(b.newMessage(message))
	if err != nil {
		log.Err(err).Msg("could not send message")
		return 0
	}
	return sent.MessageID
}
