package api

import "context"

// Index defines the channel visibility of a message.
type Index bool

const (
	// Public is the public channel index.
	Public Index = false
	// Private is the private channel index.
	Private Index = true
)

// ConsumerKey is the internal consumer key for indexing and managing consumers.
type ConsumerKey struct {
	Key    string
	Prefix string
}

// Reaction is a mark a user left on one of the bots own messages,
// e.g. by pressing the attached favorite button.
type Reaction struct {
	// MessageID is the id of the marked message.
	MessageID int
	// User is the display name of the reacting user.
	User string
	// UserID is the stable identifier of the reacting user.
	UserID int64
	// Text is the content of the marked message at the time of the reaction.
	Text string
}

// User defines an external interface for exchanging information and sharing control with the user(s)
type User interface {
	// Run starts the user interface implementation and initialises any external connections.
	Run(ctx context.Context) error
	// Listen returns a channel of commands to the caller to interact with the user.
	// the caller needs to provide a unique subscription key.
	// additionally the caller can define a prefix to avoid being spammed with messages not relevant to them.
	Listen(key, prefix string) <-chan Command
	// Reactions returns a channel of reactions on the bots own messages.
	Reactions(key string) <-chan Reaction
	// Send sends a message to the user and returns the message ID.
	Send(message *Message) int
}
