package favorites

import (
	"fmt"
	"sync"

	"github.com/drakos74/coin-chat/internal/i18n"
	"github.com/drakos74/coin-chat/internal/model"
	"github.com/drakos74/coin-chat/internal/storage"
	"github.com/rs/zerolog/log"
)

var prefsKey = storage.Key{
	Name:  "preferences",
	Label: "users",
}

type settings struct {
	Language string         `json:"language,omitempty"`
	Currency model.Currency `json:"currency,omitempty"`
}

// Preferences keeps the per user settings, persisted on every mutation.
type Preferences struct {
	mutex sync.Mutex
	state storage.Persistence
	users map[string]settings
}

// NewPreferences creates a preferences store on top of the given storage shard.
func NewPreferences(shard storage.Shard) (*Preferences, error) {
	state, err := shard(storage.PreferencesDir)
	if err != nil {
		return nil, fmt.Errorf("could not init preferences storage: %w", err)
	}
	prefs := &Preferences{
		state: state,
		users: make(map[string]settings),
	}
	if err := state.Load(prefsKey, &prefs.users); err != nil {
		log.Warn().Err(err).Msg("could not load preferences")
		prefs.users = make(map[string]settings)
	}
	return prefs, nil
}

// Language returns the user language, defaulting to english.
func (p *Preferences) Language(user string) string {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if s, ok := p.users[user]; ok && s.Language != "" {
		return s.Language
	}
	return i18n.EN
}

// SetLanguage stores the user language.
func (p *Preferences) SetLanguage(user, lang string) error {
	if !i18n.Supported(lang) {
		return fmt.Errorf("unsupported language '%s': %w", lang, model.ArgumentErr)
	}
	p.mutex.Lock()
	defer p.mutex.Unlock()
	s := p.users[user]
	s.Language = lang
	p.users[user] = s
	return p.save()
}

// Currency returns the preferred target currency,
// or NoCurrency when the user never picked one.
func (p *Preferences) Currency(user string) model.Currency {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return p.users[user].Currency
}

// SetCurrency stores the preferred target currency.
func (p *Preferences) SetCurrency(user string, currency model.Currency) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	s := p.users[user]
	s.Currency = currency
	p.users[user] = s
	return p.save()
}

func (p *Preferences) save() error {
	if err := p.state.Store(prefsKey, p.users); err != nil {
		return fmt.Errorf("could not persist preferences: %w", err)
	}
	return nil
}
