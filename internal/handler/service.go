package handler

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/drakos74/coin-chat/internal/api"
	"github.com/drakos74/coin-chat/internal/favorites"
	"github.com/drakos74/coin-chat/internal/i18n"
	"github.com/drakos74/coin-chat/internal/metrics"
	"github.com/drakos74/coin-chat/internal/model"
	"github.com/rs/zerolog/log"
)

const (
	consumerKey   = "handler"
	commandPrefix = "!"

	recentFavorites   = 5
	defaultAttachment = "Attachment"
)

// commands maps every accepted command token, aliases included, to its canonical name.
var commands = map[string]string{
	"!hello":           "hello",
	"!hej":             "hello",
	"!lang":            "lang",
	"!jezyk":           "lang",
	"!price":           "price",
	"!cena":            "price",
	"!currencies":      "currencies",
	"!waluta":          "currencies",
	"!chart":           "chart",
	"!wykres":          "chart",
	"!favorite":        "favorite",
	"!ulubione":        "favorite",
	"!fav":             "favorite",
	"!remove-favorite": "remove-favorite",
	"!usun_ulubione":   "remove-favorite",
	"!rmfav":           "remove-favorite",
	"!usunfav":         "remove-favorite",
	"!help":            "help",
	"!pomoc":           "help",
}

// Quotes resolves rates and historical series for user lookups.
type Quotes interface {
	favorites.QuoteSource
	Quote(ctx context.Context, symbol, preferred model.Currency) (model.RateQuote, error)
	History(ctx context.Context, request model.ChartRequest) (model.Series, error)
}

// Directory exposes the currency directory of the fx provider.
type Directory interface {
	Latest(ctx context.Context, from model.Currency, to ...model.Currency) (map[model.Currency]float64, error)
	Currencies(ctx context.Context) (map[string]string, error)
}

// Service handles the user commands and reactions,
// gluing the user interface to the data resolution and the favorites.
type Service struct {
	user      api.User
	quotes    Quotes
	directory Directory
	store     *favorites.Store
	prefs     *favorites.Preferences
	index     *favorites.Index
	renderer  *favorites.Renderer
	commands  <-chan api.Command
	reactions <-chan api.Reaction
}

// New creates a new command handler and subscribes it to the user updates.
func New(user api.User, quotes Quotes, directory Directory, store *favorites.Store, prefs *favorites.Preferences) *Service {
	return &Service{
		user:      user,
		quotes:    quotes,
		directory: directory,
		store:     store,
		prefs:     prefs,
		index:     favorites.NewIndex(),
		renderer:  favorites.NewRenderer(quotes),
		commands:  user.Listen(consumerKey, commandPrefix),
		reactions: user.Reactions(consumerKey),
	}
}

// Run consumes the user commands and reactions until the context is done.
func (s *Service) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case command := <-s.commands:
			s.handle(ctx, command)
		case reaction := <-s.reactions:
			s.favorite(ctx, reaction)
		}
	}
}

func (s *Service) handle(ctx context.Context, command api.Command) {
	user := userKey(command.UserID)
	lang := s.prefs.Language(user)

	name, ok := commands[command.Exec()]
	if !ok {
		name = "unknown"
	}
	metrics.Observer.IncrementCommand(name)
	log.Info().
		Str("command", name).
		Str("user", command.User).
		Msg("handle command")

	switch name {
	case "hello":
		s.reply(command.ID, i18n.T(lang, helloText))
	case "lang":
		s.language(command, user, lang)
	case "price":
		s.price(ctx, command, user, lang)
	case "currencies":
		s.currencies(ctx, command, user, lang)
	case "chart":
		s.chart(ctx, command, user, lang)
	case "favorite":
		s.favorites(ctx, command, user, lang)
	case "remove-favorite":
		s.remove(command, user, lang)
	case "help":
		s.reply(command.ID, i18n.T(lang, helpText))
	default:
		s.reply(command.ID, fmt.Sprintf(i18n.T(lang, unknownCommandText), command.Content))
	}
}

func (s *Service) reply(msgID int, text string) {
	s.user.Send(api.NewMessage(text).ReplyTo(msgID))
}

func (s *Service) language(command api.Command, user, lang string) {
	args := command.Args()
	if len(args) > 0 {
		code := strings.ToLower(args[0])
		if err := s.prefs.SetLanguage(user, code); err == nil {
			// confirm in the language that was just picked
			s.reply(command.ID, langSetText[code])
			return
		}
	}
	s.reply(command.ID, i18n.T(lang, langUsageText))
}

func (s *Service) price(ctx context.Context, command api.Command, user, lang string) {
	args := command.Args()
	if len(args) == 0 {
		s.reply(command.ID, fmt.Sprintf(i18n.T(lang, missingArgsText), "price"))
		return
	}
	quote, err := s.quotes.Quote(ctx, model.NewCurrency(args[0]), s.prefs.Currency(user))
	if err != nil {
		log.Warn().Err(err).Str("symbol", args[0]).Msg("could not resolve quote")
		s.reply(command.ID, fmt.Sprintf(i18n.T(lang, errorText), err))
		return
	}
	msgID := s.user.Send(api.NewMessage(quote.Format()).
		ReplyTo(command.ID).
		WithFavorite())
	s.index.Track(msgID, favorites.NewPriceEntry(quote.Symbol, quote.Target, quote.FiatConversion))
}

func (s *Service) currencies(ctx context.Context, command api.Command, user, lang string) {
	args := command.Args()
	if len(args) > 0 {
		s.setCurrency(ctx, command, user, lang, model.NewCurrency(args[0]))
		return
	}

	current := s.prefs.Currency(user)
	if current == model.NoCurrency {
		current = model.USD
	}
	// tether is not a valid fx base
	base := current
	if base == model.USDT {
		base = model.USD
	}

	rates, err := s.directory.Latest(ctx, base, model.EUR, model.GBP, model.PLN, model.USD)
	if err != nil {
		s.reply(command.ID, fmt.Sprintf("⚠️ %s\n%v", i18n.T(lang, currencyFetchErrorText), err))
		return
	}
	names, err := s.listCurrencies(ctx)
	if err != nil {
		s.reply(command.ID, fmt.Sprintf("⚠️ %s\n%v", i18n.T(lang, currencyFetchErrorText), err))
		return
	}

	codes := make([]string, 0, len(rates))
	for code := range rates {
		codes = append(codes, string(code))
	}
	sort.Strings(codes)
	lines := make([]string, len(codes))
	for i, code := range codes {
		lines[i] = fmt.Sprintf("• `%s`: %v", code, rates[model.Currency(code)])
	}

	s.reply(command.ID, fmt.Sprintf("🌍 %s **%s – %s**\n\n%s\n%s",
		i18n.T(lang, currentCurrencyText), current, names[string(current)],
		i18n.T(lang, availableCurrenciesText), strings.Join(lines, "\n")))
}

func (s *Service) setCurrency(ctx context.Context, command api.Command, user, lang string, currency model.Currency) {
	names, err := s.listCurrencies(ctx)
	if err != nil {
		s.reply(command.ID, fmt.Sprintf("⚠️ %s\n%v", i18n.T(lang, currencySetErrorText), err))
		return
	}
	name, ok := names[string(currency)]
	if !ok {
		s.reply(command.ID, i18n.T(lang, unknownCurrencyText))
		return
	}
	if err := s.prefs.SetCurrency(user, currency); err != nil {
		s.reply(command.ID, fmt.Sprintf("⚠️ %s\n%v", i18n.T(lang, currencySetErrorText), err))
		return
	}
	s.reply(command.ID, fmt.Sprintf("✅ %s **%s – %s**", i18n.T(lang, currencySetText), currency, name))
}

func (s *Service) listCurrencies(ctx context.Context) (map[string]string, error) {
	names, err := s.directory.Currencies(ctx)
	if err != nil {
		return nil, err
	}
	// the fx provider does not list tether
	if _, ok := names[string(model.USDT)]; !ok {
		names[string(model.USDT)] = "Tether (US Dollar Pegged)"
	}
	return names, nil
}

func (s *Service) chart(ctx context.Context, command api.Command, user, lang string) {
	args := command.Args()
	request, err := model.ResolveChartArgs(args)
	if err != nil {
		s.reply(command.ID, fmt.Sprintf(i18n.T(lang, chartErrorText), err))
		return
	}
	// without an explicit target the user preference wins over the default
	if model.TargetOmitted(args) {
		target := s.prefs.Currency(user)
		if target == model.NoCurrency {
			target = model.USD
		}
		request.Target = target
	}

	series, err := s.quotes.History(ctx, request)
	if err != nil {
		log.Warn().Err(err).Str("symbol", string(request.Symbol)).Msg("could not resolve series")
		s.reply(command.ID, fmt.Sprintf(i18n.T(lang, chartErrorText), err))
		return
	}

	summary := series.Summary()
	s.user.Send(api.NewMessage(fmt.Sprintf("📈 %s", series.Title)).
		AddLine(fmt.Sprintf("high: %s %s", model.FormatAmount(summary.High), request.Target)).
		AddLine(fmt.Sprintf("low: %s %s", model.FormatAmount(summary.Low), request.Target)).
		AddLine(fmt.Sprintf("avg: %s %s", model.FormatAmount(summary.Mean), request.Target)).
		ReplyTo(command.ID).
		WithFavorite())
}

func (s *Service) favorites(ctx context.Context, command api.Command, user, lang string) {
	entries := s.store.Recent(user, recentFavorites)
	if len(entries) == 0 {
		s.reply(command.ID, i18n.T(lang, noFavoritesText))
		return
	}
	lines := make([]string, len(entries))
	for i, entry := range entries {
		lines[i] = fmt.Sprintf("🔸 %s", s.renderer.Render(ctx, entry))
	}
	s.reply(command.ID, fmt.Sprintf(i18n.T(lang, favoritesText), strings.Join(lines, "\n\n")))
}

func (s *Service) remove(command api.Command, user, lang string) {
	var index int
	if err := command.Validate(api.Int(&index)); err != nil {
		s.reply(command.ID, fmt.Sprintf(i18n.T(lang, badFavoriteIndexText), s.store.Count(user)))
		return
	}
	removed, err := s.store.Remove(user, index)
	if err != nil {
		if errors.Is(err, model.IndexErr) {
			s.reply(command.ID, fmt.Sprintf(i18n.T(lang, badFavoriteIndexText), s.store.Count(user)))
			return
		}
		s.reply(command.ID, fmt.Sprintf(i18n.T(lang, errorText), err))
		return
	}
	s.reply(command.ID, fmt.Sprintf(i18n.T(lang, removedFavoriteText), removed))
}

func (s *Service) favorite(ctx context.Context, reaction api.Reaction) {
	user := userKey(reaction.UserID)
	entry, ok := s.index.Get(reaction.MessageID)
	if !ok {
		// untracked messages, e.g. from before a restart, degrade to a static snapshot
		log.Debug().Int("message", reaction.MessageID).Msg("no tracked entry for message")
		content := reaction.Text
		if content == "" {
			content = defaultAttachment
		}
		entry = favorites.NewStaticEntry(content)
	}
	added, err := s.store.Add(user, entry)
	if err != nil {
		log.Warn().Err(err).Msg("could not store favorite")
		return
	}
	if added {
		s.user.Send(api.NewMessage(fmt.Sprintf("💾 %s, added to your favorites!", reaction.User)).
			ReplyTo(reaction.MessageID))
	}
}

func userKey(id int64) string {
	return strconv.FormatInt(id, 10)
}
