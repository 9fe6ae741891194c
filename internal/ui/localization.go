package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyTagline           = "tagline"
	KeySearch            = "search"
	KeySmartSearch       = "smart_search"
	KeyEnterQuery        = "enter_query"
	KeyRefinePlaceholder = "refine_placeholder"
	KeyRefine            = "refine"
	KeyDownload          = "download"
	KeyCancel            = "cancel"
	KeyVideoTab          = "video_tab"
	KeyAudioTab          = "audio_tab"
	KeyCompleted         = "completed"
	KeyFailed            = "failed"
	KeyHistoryTitle      = "history_title"
	KeyClearHistory      = "clear_history"
	KeySignIn            = "sign_in"
	KeySignOut           = "sign_out"
	KeySignedOutHint     = "signed_out_hint"
	KeyChannel           = "channel"
	KeyViews             = "views"
	KeyLikes             = "likes"
	KeyUploaded          = "uploaded"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyAppearance        = "appearance"
	KeySave              = "save"
	KeyDisclaimer        = "disclaimer"

	KeyErrInvalidURL      = "err_invalid_url"
	KeyErrEmptySmartQuery = "err_empty_smart_query"
	KeyErrSmartSearch     = "err_smart_search"
	KeyErrRefine          = "err_refine"
	KeyErrNoSession       = "err_no_session"
	KeyErrClearHistory    = "err_clear_history"
	KeyErrLoadHistory     = "err_load_history"
	KeyErrAuthUnavailable = "err_auth_unavailable"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "pt",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
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

	// Fallback to Portuguese
	if texts, exists := l.texts["pt"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// Portuguese texts (primary language of the prototype)
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Downloader de Mídia",
		KeyTagline:           "Cole o link do vídeo do YouTube para baixar em vídeo ou áudio.",
		KeySearch:            "Buscar",
		KeySmartSearch:       "Busca Inteligente",
		KeyEnterQuery:        "Cole um link do YouTube ou descreva o vídeo...",
		KeyRefinePlaceholder: "Refine a busca (ex.: \"mais recente\", \"do mesmo canal\")...",
		KeyRefine:            "Refinar",
		KeyDownload:          "Baixar",
		KeyCancel:            "Cancelar",
		KeyVideoTab:          "Vídeo",
		KeyAudioTab:          "Áudio",
		KeyCompleted:         "Concluído!",
		KeyFailed:            "Falhou",
		KeyHistoryTitle:      "Histórico de Downloads",
		KeyClearHistory:      "Limpar Histórico",
		KeySignIn:            "Entrar com Google",
		KeySignOut:           "Sair",
		KeySignedOutHint:     "👋 Entre com sua conta Google para salvar seu histórico de downloads.",
		KeyChannel:           "Canal",
		KeyViews:             "visualizações",
		KeyLikes:             "curtidas",
		KeyUploaded:          "Publicado em",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyAppearance:        "Aparência",
		KeySave:              "Salvar",
		KeyDisclaimer:        "Este é um protótipo de UI e não realiza downloads reais.",

		KeyErrInvalidURL:      "Por favor, insira um URL válido do YouTube.",
		KeyErrEmptySmartQuery: "Por favor, digite algo para a busca inteligente.",
		KeyErrSmartSearch:     "A busca inteligente falhou. Tente novamente.",
		KeyErrRefine:          "O refinamento da busca falhou. Tente novamente.",
		KeyErrNoSession:       "Sessão de busca inteligente não encontrada. Inicie uma nova busca.",
		KeyErrClearHistory:    "Falha ao limpar o histórico.",
		KeyErrLoadHistory:     "Não foi possível carregar o histórico.",
		KeyErrAuthUnavailable: "O login não está configurado. Defina as credenciais OAuth para habilitar a autenticação.",
	}

	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Media Downloader",
		KeyTagline:           "Paste a YouTube video link to download it as video or audio.",
		KeySearch:            "Search",
		KeySmartSearch:       "Smart Search",
		KeyEnterQuery:        "Paste a YouTube link or describe the video...",
		KeyRefinePlaceholder: "Refine the search (e.g. \"a newer one\", \"same channel\")...",
		KeyRefine:            "Refine",
		KeyDownload:          "Download",
		KeyCancel:            "Cancel",
		KeyVideoTab:          "Video",
		KeyAudioTab:          "Audio",
		KeyCompleted:         "Done!",
		KeyFailed:            "Failed",
		KeyHistoryTitle:      "Download History",
		KeyClearHistory:      "Clear History",
		KeySignIn:            "Sign in with Google",
		KeySignOut:           "Sign out",
		KeySignedOutHint:     "👋 Sign in with your Google account to save your download history.",
		KeyChannel:           "Channel",
		KeyViews:             "views",
		KeyLikes:             "likes",
		KeyUploaded:          "Uploaded",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyAppearance:        "Appearance",
		KeySave:              "Save",
		KeyDisclaimer:        "This is a UI prototype and performs no real downloads.",

		KeyErrInvalidURL:      "Please enter a valid YouTube URL.",
		KeyErrEmptySmartQuery: "Please type something for the smart search.",
		KeyErrSmartSearch:     "Smart search failed. Please try again.",
		KeyErrRefine:          "Refining the search failed. Please try again.",
		KeyErrNoSession:       "No smart search session found. Start a new search.",
		KeyErrClearHistory:    "Failed to clear the history.",
		KeyErrLoadHistory:     "Could not load the history.",
		KeyErrAuthUnavailable: "Sign-in is not configured. Set the OAuth credentials to enable authentication.",
	}
}
