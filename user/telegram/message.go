package telegram

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/drakos74/coin-chat/internal/api"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	"github.com/rs/zerolog/log"
)

// newMessage creates a new telegram message config.
// Favorite candidates get the heart button attached,
// pressing it comes back as a callback query.
func (b *Bot) newMessage(message *api.Message) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(b.chatID, message.Text)
	if message.Reply > 0 {
		msg.ReplyToMessageID = message.Reply
	}
	if message.Favorite {
		msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("❤️", favoriteCallback)))
	}
	return msg
}

// listenToUpdates listens to updates for the telegram bot.
func (b *Bot) listenToUpdates(ctx context.Context, updates tgbotapi.UpdatesChannel) {
	for {
		select {
		case update := <-updates:
			if update.CallbackQuery != nil {
				b.react(update.CallbackQuery)
				continue
			}
			if update.Message == nil { // ignore any non-Message Updates
				continue
			}
			b.propagate(update.Message)
		case <-ctx.Done():
			log.Info().Msg("closing bot")
			return
		}
	}
}

// propagate forwards the message to the consumers matching its prefix.
func (b *Bot) propagate(message *tgbotapi.Message) {
	var chatID int64
	if message.Chat != nil {
		chatID = message.Chat.ID
	}
	log.Info().
		Str("from", userName(message.From)).
		Str("text", message.Text).
		Int64("chat", chatID).
		Msg("message received")

	var userID int64
	if message.From != nil {
		userID = int64(message.From.ID)
	}

	b.lock.Lock()
	defer b.lock.Unlock()
	for k, consumer := range b.consumers {
		if strings.HasPrefix(message.Text, k.Prefix) {
			select {
			case consumer <- api.ParseCommand(message.MessageID, userName(message.From), userID, message.Text):
			case <-time.After(consumerTimeout):
				log.Warn().
					Str("consumer", fmt.Sprintf("%+v", k)).
					Str("command", message.Text).
					Msg("consumer did not receive command")
			}
		}
	}
}

// react turns a favorite button press into a reaction for the subscribers.
func (b *Bot) react(query *tgbotapi.CallbackQuery) {
	if query.Data != favoriteCallback || query.Message == nil || query.From == nil {
		return
	}
	// marks from bots, including our own, do not count
	if query.From.IsBot || query.From.ID == b.selfID {
		return
	}
	if _, err := b.api.AnswerCallbackQuery(tgbotapi.NewCallback(query.ID, "❤️")); err != nil {
		log.Warn().Err(err).Msg("could not answer callback query")
	}

	reaction := api.Reaction{
		MessageID: query.Message.MessageID,
		User:      userName(query.From),
		UserID:    int64(query.From.ID),
		Text:      query.Message.Text,
	}
	b.lock.Lock()
	defer b.lock.Unlock()
	for key, subscriber := range b.reactions {
		select {
		case subscriber <- reaction:
		case <-time.After(consumerTimeout):
			log.Warn().Str("consumer", key).Msg("consumer did not receive reaction")
		}
	}
}

func userName(u *tgbotapi.User) string {
	if u == nil {
		return ""
	}
	if u.UserName != "" {
		return u.UserName
	}
	return u.FirstName
}
