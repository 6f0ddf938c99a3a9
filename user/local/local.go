package local

import (
	"context"
	"strings"
	"sync"

	"github.com/drakos74/coin-chat/internal/api"
	"github.com/rs/zerolog/log"
)

// User is an in memory api.User implementation.
// It is used in tests and for running the bot without a telegram connection.
type User struct {
	lock      sync.Mutex
	counter   int
	consumers map[api.ConsumerKey]chan api.Command
	reactions map[string]chan api.Reaction
	// Outgoing receives every sent message in order.
	Outgoing chan api.Message
}

// NewUser creates a new local user.
func NewUser() *User {
	return &User{
		consumers: make(map[api.ConsumerKey]chan api.Command),
		reactions: make(map[string]chan api.Reaction),
		Outgoing:  make(chan api.Message, 100),
	}
}

func (u *User) Run(ctx context.Context) error {
	return nil
}

func (u *User) Listen(key, prefix string) <-chan api.Command {
	u.lock.Lock()
	defer u.lock.Unlock()
	ch := make(chan api.Command)
	u.consumers[api.ConsumerKey{
		Key:    key,
		Prefix: prefix,
	}] = ch
	return ch
}

func (u *User) Reactions(key string) <-chan api.Reaction {
	u.lock.Lock()
	defer u.lock.Unlock()
	ch := make(chan api.Reaction)
	u.reactions[key] = ch
	return ch
}

// Send records the message and returns an incrementing message id.
func (u *User) Send(message *api.Message) int {
	u.lock.Lock()
	defer u.lock.Unlock()
	u.counter++
	log.Debug().Str("text", message.Text).Int("id", u.counter).Msg("message sent")
	u.Outgoing <- *message
	return u.counter
}

// TriggerCommand pushes a raw user message to the consumers matching its prefix.
// It returns the id assigned to the message.
func (u *User) TriggerCommand(user string, userID int64, content string) int {
	u.lock.Lock()
	u.counter++
	id := u.counter
	consumers := make(map[api.ConsumerKey]chan api.Command, len(u.consumers))
	for k, ch := range u.consumers {
		consumers[k] = ch
	}
	u.lock.Unlock()

	for k, ch := range consumers {
		if strings.HasPrefix(content, k.Prefix) {
			ch <- api.ParseCommand(id, user, userID, content)
		}
	}
	return id
}

// TriggerReaction pushes a reaction to all subscribers.
func (u *User) TriggerReaction(reaction api.Reaction) {
	u.lock.Lock()
	reactions := make([]chan api.Reaction, 0, len(u.reactions))
	for _, ch := range u.reactions {
		reactions = append(reactions, ch)
	}
	u.lock.Unlock()

	for _, ch := range reactions {
		ch <- reaction
	}
}
