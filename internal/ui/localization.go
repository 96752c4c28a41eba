package ui

import "fmt"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle              = "app_title"
	KeySearch                = "search"
	KeyDownloadSelected      = "download_selected"
	KeyEnterQuery            = "enter_query"
	KeyFile                  = "file"
	KeyOpenDownloads         = "open_downloads"
	KeyLanguage              = "language"
	KeyInfo                  = "info"
	KeySuccess               = "success"
	KeySearching             = "searching"
	KeyResultsFound          = "results_found"
	KeyNoResults             = "no_results"
	KeySelectedCount         = "selected_count"
	KeySelectAtLeastOne      = "select_at_least_one"
	KeyDownloadStartedTitle  = "download_started_title"
	KeyDownloadStarted       = "download_started"
	KeyAllDownloadsCompleted = "all_downloads_completed"
	KeyBatchSummary          = "batch_summary"
	KeyErrorOpeningFolder    = "error_opening_folder"
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

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
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

	// Final fallback - return key itself
	return key
}

// Format returns the localized text for key used as a fmt format string
func (l *Localization) Format(key string, args ...any) string {
	return fmt.Sprintf(l.GetText(key), args...)
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

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:              "YT Search Downloader",
		KeySearch:                "Search",
		KeyDownloadSelected:      "Download Selected",
		KeyEnterQuery:            "Search YouTube or paste a playlist link",
		KeyFile:                  "File",
		KeyOpenDownloads:         "Open Downloads Folder",
		KeyLanguage:              "Language",
		KeyInfo:                  "Info",
		KeySuccess:               "Success",
		KeySearching:             "Searching...",
		KeyResultsFound:          "%d results",
		KeyNoResults:             "No results",
		KeySelectedCount:         "%d selected",
		KeySelectAtLeastOne:      "Please select at least one video to download!",
		KeyDownloadStartedTitle:  "Download Started",
		KeyDownloadStarted:       "Download started... please wait a few moments.",
		KeyAllDownloadsCompleted: "All downloads completed!",
		KeyBatchSummary:          "%d succeeded, %d failed",
		KeyErrorOpeningFolder:    "Error opening folder",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:              "YT Поиск и загрузка",
		KeySearch:                "Найти",
		KeyDownloadSelected:      "Скачать выбранное",
		KeyEnterQuery:            "Поиск на YouTube или ссылка на плейлист",
		KeyFile:                  "Файл",
		KeyOpenDownloads:         "Открыть папку загрузок",
		KeyLanguage:              "Язык",
		KeyInfo:                  "Информация",
		KeySuccess:               "Готово",
		KeySearching:             "Поиск...",
		KeyResultsFound:          "Найдено: %d",
		KeyNoResults:             "Ничего не найдено",
		KeySelectedCount:         "Выбрано: %d",
		KeySelectAtLeastOne:      "Выберите хотя бы одно видео для загрузки!",
		KeyDownloadStartedTitle:  "Загрузка начата",
		KeyDownloadStarted:       "Загрузка начата... подождите немного.",
		KeyAllDownloadsCompleted: "Все загрузки завершены!",
		KeyBatchSummary:          "успешно: %d, с ошибкой: %d",
		KeyErrorOpeningFolder:    "Ошибка открытия папки",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:              "YT Search Downloader",
		KeySearch:                "Pesquisar",
		KeyDownloadSelected:      "Baixar Selecionados",
		KeyEnterQuery:            "Pesquise no YouTube ou cole um link de playlist",
		KeyFile:                  "Arquivo",
		KeyOpenDownloads:         "Abrir Pasta de Downloads",
		KeyLanguage:              "Idioma",
		KeyInfo:                  "Informação",
		KeySuccess:               "Sucesso",
		KeySearching:             "Pesquisando...",
		KeyResultsFound:          "%d resultados",
		KeyNoResults:             "Nenhum resultado",
		KeySelectedCount:         "%d selecionados",
		KeySelectAtLeastOne:      "Selecione pelo menos um vídeo para baixar!",
		KeyDownloadStartedTitle:  "Download Iniciado",
		KeyDownloadStarted:       "Download iniciado... aguarde alguns instantes.",
		KeyAllDownloadsCompleted: "Todos os downloads concluídos!",
		KeyBatchSummary:          "%d concluídos, %d com erro",
		KeyErrorOpeningFolder:    "Erro ao abrir pasta",
	}
}
