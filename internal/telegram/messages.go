package telegram

type messages struct {
	usage     string
	failed    string
	noSender  string
	cancelled string
	saved     string
	noRanges  string
	ranges    string
	days      string

	deleteUsage string
	deleted     string
	notFound    string
	stale       string

	token    string
	noTokens string
}

var (
	enMessages = messages{
		usage: "Available commands:\n" +
			"/pick - choose a date range\n" +
			"/ranges - show my saved ranges\n" +
			"/delete <ID> - delete a saved range\n" +
			"/token - get a token for the HTTP API\n",
		failed:    "Something went wrong",
		noSender:  "Can't tell who you are",
		cancelled: "Selection cancelled",
		saved:     "Saved range %s",
		noRanges:  "You have no saved ranges",
		ranges:    "Your ranges:",
		days:      "days",

		deleteUsage: "Usage: /delete <ID>",
		deleted:     "Deleted",
		notFound:    "No such range",
		stale:       "This picker is closed, send /pick to open a new one",

		token:    "API token, valid for %s:\n%s",
		noTokens: "The HTTP API does not use tokens",
	}

	ruMessages = messages{
		usage: "Доступные команды:\n" +
			"/pick - выбрать диапазон дат\n" +
			"/ranges - показать сохранённые диапазоны\n" +
			"/delete <ID> - удалить диапазон\n" +
			"/token - получить токен для HTTP API\n",
		failed:    "Что-то пошло не так",
		noSender:  "Не удалось определить пользователя",
		cancelled: "Выбор отменён",
		saved:     "Сохранили диапазон %s",
		noRanges:  "У вас нет сохранённых диапазонов",
		ranges:    "Ваши диапазоны:",
		days:      "дн.",

		deleteUsage: "Использование: /delete <ID>",
		deleted:     "Удалено",
		notFound:    "Такого диапазона нет",
		stale:       "Этот календарь закрыт, отправьте /pick, чтобы открыть новый",

		token:    "Токен API, действует %s:\n%s",
		noTokens: "HTTP API работает без токенов",
	}
)

func messagesFor(lang string) messages {
	if lang == "ru" {
		return ruMessages
	}
	return enMessages
}
