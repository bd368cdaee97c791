package calendar

// Unique is the telebot endpoint all picker buttons are bound to.
const Unique = "rp"

type texts struct {
	prompt     string
	from       string
	to         string
	selectDate string
	done       string
	cancel     string
}

var (
	enTexts = texts{
		prompt:     "Choose the start and the end date:",
		from:       "From",
		to:         "To",
		selectDate: "Select Date",
		done:       "Done",
		cancel:     "Cancel",
	}

	ruTexts = texts{
		prompt:     "Выберите начальную и конечную дату:",
		from:       "С",
		to:         "По",
		selectDate: "Выберите дату",
		done:       "Готово",
		cancel:     "Отмена",
	}
)

const (
	prevText    = "«"
	nextText    = "»"
	blankText   = " "
	blockedText = "×"
)

func textsFor(lang string) texts {
	if lang == "ru" {
		return ruTexts
	}
	return enTexts
}
