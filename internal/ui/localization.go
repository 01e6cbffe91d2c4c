package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization. Column keys match lower-cased column names.
const (
	KeyAppTitle      = "app_title"
	KeyTitle         = "title"
	KeyYear          = "year"
	KeyRating        = "rating"
	KeyAddMovie      = "add_movie"
	KeyDeleteMovie   = "delete_movie"
	KeyQuit          = "quit"
	KeyFile          = "file"
	KeyLanguage      = "language"
	KeyEnterTitle    = "enter_title"
	KeyBadYear       = "bad_year"
	KeyBadRating     = "bad_rating"
	KeyErrorAdding   = "error_adding"
	KeyChooseMovie   = "choose_movie"
	KeyErrorDeleting = "error_deleting"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. Unknown languages are ignored.
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:      "Movie Database Application",
		KeyTitle:         "Title",
		KeyYear:          "Year",
		KeyRating:        "Rating",
		KeyAddMovie:      "Add New Movie",
		KeyDeleteMovie:   "Delete Movie",
		KeyQuit:          "Quit",
		KeyFile:          "File",
		KeyLanguage:      "Language",
		KeyEnterTitle:    "Please enter a title for the new movie",
		KeyBadYear:       "Year needs to be a number between 1900 and now",
		KeyBadRating:     "Rating is out of range",
		KeyErrorAdding:   "Error adding new movie",
		KeyChooseMovie:   "Please choose a movie to delete",
		KeyErrorDeleting: "Error deleting movie",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:      "База данных фильмов",
		KeyTitle:         "Название",
		KeyYear:          "Год",
		KeyRating:        "Оценка",
		KeyAddMovie:      "Добавить фильм",
		KeyDeleteMovie:   "Удалить фильм",
		KeyQuit:          "Выход",
		KeyFile:          "Файл",
		KeyLanguage:      "Язык",
		KeyEnterTitle:    "Введите название нового фильма",
		KeyBadYear:       "Год должен быть числом от 1900 до текущего",
		KeyBadRating:     "Оценка вне допустимого диапазона",
		KeyErrorAdding:   "Ошибка добавления фильма",
		KeyChooseMovie:   "Выберите фильм для удаления",
		KeyErrorDeleting: "Ошибка удаления фильма",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:      "Banco de Dados de Filmes",
		KeyTitle:         "Título",
		KeyYear:          "Ano",
		KeyRating:        "Nota",
		KeyAddMovie:      "Adicionar Filme",
		KeyDeleteMovie:   "Excluir Filme",
		KeyQuit:          "Sair",
		KeyFile:          "Arquivo",
		KeyLanguage:      "Idioma",
		KeyEnterTitle:    "Informe o título do novo filme",
		KeyBadYear:       "O ano deve ser um número entre 1900 e o atual",
		KeyBadRating:     "Nota fora do intervalo",
		KeyErrorAdding:   "Erro ao adicionar filme",
		KeyChooseMovie:   "Escolha um filme para excluir",
		KeyErrorDeleting: "Erro ao excluir filme",
	}
}
