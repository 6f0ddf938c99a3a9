package handler

import "github.com/drakos74/coin-chat/internal/i18n"

var (
	helloText = i18n.Text{
		i18n.EN: "Hello!",
		i18n.PL: "Cześć!",
	}
	langSetText = map[string]string{
		i18n.EN: "✅ Language set to **English** 🇬🇧",
		i18n.PL: "✅ Język ustawiony na **polski** 🇵🇱",
	}
	langUsageText = i18n.Text{
		i18n.EN: "Please enter `!jezyk en/pl` or `!lang en/pl`.",
		i18n.PL: "Wpisz `!jezyk en/pl` albo `!lang en/pl`",
	}
	errorText = i18n.Text{
		i18n.EN: "⚠️ An error occurred: %v",
		i18n.PL: "⚠️ Wystąpił błąd: %v",
	}
	missingArgsText = i18n.Text{
		i18n.EN: "⚠️ Missing required arguments in command `%s`. Check the correct usage with `!help`.",
		i18n.PL: "⚠️ Brakuje wymaganych argumentów w komendzie `%s`. Sprawdź poprawne użycie za pomocą `!pomoc`.",
	}
	unknownCommandText = i18n.Text{
		i18n.EN: "⚠️ Unknown command: `%s`. Use `!help` or `!pomoc` to see the list of available commands.",
		i18n.PL: "⚠️ Nieznana komenda: `%s`. Użyj `!pomoc` lub `!help`, aby zobaczyć listę dostępnych komend.",
	}
	currencySetText = i18n.Text{
		i18n.EN: "Currency set to",
		i18n.PL: "Ustawiono walutę na",
	}
	unknownCurrencyText = i18n.Text{
		i18n.EN: "❌ Unknown currency code.",
		i18n.PL: "❌ Nieznany kod waluty.",
	}
	currencySetErrorText = i18n.Text{
		i18n.EN: "Error setting currency.",
		i18n.PL: "Błąd podczas ustawiania waluty.",
	}
	currencyFetchErrorText = i18n.Text{
		i18n.EN: "Error fetching currencies.",
		i18n.PL: "Błąd pobierania walut.",
	}
	currentCurrencyText = i18n.Text{
		i18n.EN: "Your current currency:",
		i18n.PL: "Twoja aktualna waluta:",
	}
	availableCurrenciesText = i18n.Text{
		i18n.EN: "Available currencies:",
		i18n.PL: "Dostępne waluty:",
	}
	chartErrorText = i18n.Text{
		i18n.EN: "⚠️ Error generating chart: %v",
		i18n.PL: "⚠️ Błąd generowania wykresu: %v",
	}
	noFavoritesText = i18n.Text{
		i18n.EN: "You don't have any favorites yet. ❤️",
		i18n.PL: "Nie masz jeszcze żadnych ulubionych. ❤️",
	}
	favoritesText = i18n.Text{
		i18n.EN: "📌 Your recent favorites:\n%s",
		i18n.PL: "📌 Twoje ostatnie ulubione:\n%s",
	}
	removedFavoriteText = i18n.Text{
		i18n.EN: "✅ Removed from favorites: %s",
		i18n.PL: "✅ Usunięto z ulubionych: %s",
	}
	badFavoriteIndexText = i18n.Text{
		i18n.EN: "❌ Please provide a valid number. You have %d favorite items.",
		i18n.PL: "❌ Podaj poprawny numer. Masz %d ulubionych elementów.",
	}
	helpText = i18n.Text{
		i18n.EN: helpEN,
		i18n.PL: helpPL,
	}
)

const helpEN = "**📜 Help - List of available commands and features:**\n\n" +
	"**Basic commands:**\n" +
	"**👋 !hello / !hej**\n" +
	"  - Greets the user. Example: `!hello` or `!hej` returns \"Hello!\" or \"Cześć!\".\n\n" +
	"**🇵🇱🇬🇧 !lang / !jezyk [en/pl]**\n" +
	"  - Sets the bot's language. Example: `!jezyk en` sets the language to English.\n\n" +
	"**💲 !price / !cena [symbol]**\n" +
	"  - Displays the current price of a cryptocurrency in your selected currency. Example: `!price BTC`.\n\n" +
	"**💱 !currencies / !waluta [currency code]**\n" +
	"  - Sets your preferred currency or displays the list of available currencies. For example, `!waluta USD` sets your currency to USD.\n\n" +
	"**📈 !chart / !wykres [symbol] [target] [days] [interval optional] [color optional]**\n" +
	"  - Generates a chart for the selected symbol.\n" +
	"    - **Examples:**\n" +
	"      - `!chart BTC 30d` → chart for BTC/USDT over 30 days (default target, interval, and color applied)\n" +
	"      - `!chart ETH USDT 7d 4h` → chart for ETH/USDT over 7 days with a 4-hour interval\n" +
	"      - `!chart USD PLN 90d` → chart for USD/PLN over 90 days\n\n" +
	"**⭐ Favorites and management:**\n" +
	"• **❤️ (reaction)**\n" +
	"  - To add a bot's message (e.g., a price result or chart) to your favorites, simply react with ❤️.\n\n" +
	"• **!fav / !ulubione**\n" +
	"  - Displays a list of your recent favorite entries.\n\n" +
	"• **!remove-favorite [number] / !usun_ulubione [number] / !rmfav [number]**\n" +
	"  - Removes the selected favorite entry. Indexing starts at 1. Example: `!rmfav 2` removes the second entry.\n\n" +
	"**Additional information:**\n" +
	"• Dynamic entries (like prices) update in real-time, ensuring that your favorites display the most current data.\n" +
	"• The bot integrates with Binance and Frankfurter APIs to retrieve currency data and generate charts.\n\n" +
	"**Usage examples:**\n" +
	"• `!hello`\n" +
	"• `!lang en`\n" +
	"• `!price USD`\n" +
	"• `!price BTC`\n" +
	"• `!currencies EUR`\n" +
	"• `!chart BTC 30d`\n" +
	"• `!chart BTC usd 30d 1h purple`\n\n" +
	"To add an entry to your favorites, simply react with ❤️ to the bot's message (such as a price result or chart)."

const helpPL = "**📜 Pomoc - Lista dostępnych komend i funkcji:**\n\n" +
	"**Podstawowe komendy:**\n" +
	"**👋 !hej / !hello**\n" +
	"  - Pozdrawia użytkownika. Przykład: `!hello` lub `!hej` zwraca \"Hello!\" lub \"Cześć!\".\n\n" +
	"**🇵🇱🇬🇧 !jezyk / !lang [en/pl]**\n" +
	"  - Ustawia język bota. Przykład: `!jezyk pl` ustawi język polski.\n\n" +
	"**💲 !price / !cena [symbol]**\n" +
	"  - Wyświetla aktualną cenę kryptowaluty w ustawionej walucie. Przykład: `!price BTC`.\n\n" +
	"**💱 !waluta / !currencies [kod waluty]**\n" +
	"  - Ustawia Twoją preferowaną walutę lub wyświetla listę dostępnych walut. Przykład: `!waluta USD` ustawi walutę na USD.\n\n" +
	"**📈 !wykres / !chart [symbol] [target] [dni] [interwał opcjonalnie] [kolor opcjonalnie]**\n" +
	"  - Generuje wykres dla wybranego symbolu.\n" +
	"    - **Przykłady:**\n" +
	"      - `!wykres BTC 30d` → wykres BTC/USDT z 30 dniowym okresem (domyślne ustawienia target, interwału i koloru)\n" +
	"      - `!wykres ETH USDT 7d 4h` → wykres ETH/USDT z 7 dniowym okresem i interwałem 4-godzinnym\n" +
	"      - `!wykres USD PLN 90d` → wykres USD/PLN z 90 dniowym okresem\n\n" +
	"**⭐ Ulubione i zarządzanie:**\n" +
	"• **❤️ (reakcja)**\n" +
	"  - Aby dodać wiadomość (np. wynik ceny lub wykres) do ulubionych, wystarczy zareagować emoji ❤️.\n\n" +
	"• **!ulubione / !fav**\n" +
	"  - Wyświetla listę Twoich ostatnich ulubionych wpisów.\n\n" +
	"• **!usun_ulubione [numer] / !remove-favorite [numer] / !rmfav [numer]**\n" +
	"  - Usuwa wybrany wpis ulubionych. Numeracja zaczyna się od 1. Przykład: `!usunfav 2` usunie drugi wpis.\n\n" +
	"**Dodatkowe informacje:**\n" +
	"• Dynamiczne wpisy (np. ceny) są aktualizowane na bieżąco, co oznacza, że Twoje ulubione mogą zawsze prezentować aktualne dane.\n" +
	"• Bot korzysta z API Binance i Frankfurter, aby pobierać kursy walut oraz generować wykresy.\n\n" +
	"**Przykłady użycia:**\n" +
	"• `!hej`\n" +
	"• `!jezyk en`\n" +
	"• `!cena USD`\n" +
	"• `!cena BTC`\n" +
	"• `!waluta EUR`\n" +
	"• `!wykres BTC 30d`\n" +
	"• `!wykres BTC usd 30d 1h purple`\n\n" +
	"Aby dodać wpis do ulubionych, zareaguj emoji ❤️ na wiadomość bota (np. cenę lub wykres)."
