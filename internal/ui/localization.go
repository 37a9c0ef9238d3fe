package ui

import "sync"

// Localization manages UI text translations and notifies registered
// listeners when the language changes so open views can retranslate.
type Localization struct {
	mu              sync.Mutex
	currentLanguage string
	texts           map[string]map[string]string
	listeners       map[int]func()
	nextListenerID  int
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeySettings         = "settings"
	KeyFile             = "file"
	KeyLanguage         = "language"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeyBrowse           = "browse"
	KeyError            = "error"
	KeyBinaryHeading    = "binary_heading"
	KeyUseStandardBin   = "use_standard_binary"
	KeyBinaryPath       = "binary_path"
	KeyInputHeading     = "input_heading"
	KeyWriteComments    = "write_comments"
	KeyFileDoesNotExist = "file_does_not_exist"
	KeyEmail            = "email"
	KeyPassword         = "password"
	KeyLogIn            = "log_in"
	KeyLogOut           = "log_out"
	KeyLoggedIn         = "logged_in"
	KeyLoggedOut        = "logged_out"
	KeyWorkingDirectory = "working_directory"
	KeyWriteInput       = "write_input"
	KeySubmitJob        = "submit_job"
	KeyFetchJobs        = "fetch_jobs"
	KeyPullResults      = "pull_results"
	KeyCancelJob        = "cancel_job"
	KeyRemoveJob        = "remove_job"
	KeyConfirmCancel    = "confirm_cancel"
	KeyConfirmRemove    = "confirm_remove"
	KeySelectJobFirst   = "select_job_first"
	KeyNotLoggedIn      = "not_logged_in"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
		listeners:       make(map[int]func()),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language and notifies listeners when the
// language actually changed.
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	l.mu.Lock()
	if _, exists := l.texts[lang]; !exists || lang == l.currentLanguage {
		l.mu.Unlock()
		return
	}
	l.currentLanguage = lang
	notify := make([]func(), 0, len(l.listeners))
	for _, fn := range l.listeners {
		notify = append(notify, fn)
	}
	l.mu.Unlock()

	for _, fn := range notify {
		fn()
	}
}

// AddListener registers fn to run after every language change. The returned
// function removes the registration; calling it more than once is safe.
func (l *Localization) AddListener(fn func()) (remove func()) {
	l.mu.Lock()
	id := l.nextListenerID
	l.nextListenerID++
	l.listeners[id] = fn
	l.mu.Unlock()

	return func() {
		l.mu.Lock()
		delete(l.listeners, id)
		l.mu.Unlock()
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	l.mu.Lock()
	defer l.mu.Unlock()

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

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"fr": "Français",
		"de": "Deutsch",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "Suqaba Companion",
		KeySettings:         "Settings",
		KeyFile:             "File",
		KeyLanguage:         "Language",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeyBrowse:           "Browse",
		KeyError:            "Error",
		KeyBinaryHeading:    "Suqaba binary",
		KeyUseStandardBin:   "Use standard Suqaba binary",
		KeyBinaryPath:       "Path to custom Suqaba binary",
		KeyInputHeading:     "Input files",
		KeyWriteComments:    "Write comments to input files",
		KeyFileDoesNotExist: "The file\n%s\ndoes not exist.\nSpecify another file please.",
		KeyEmail:            "Email",
		KeyPassword:         "Password",
		KeyLogIn:            "Log In",
		KeyLogOut:           "Log Out",
		KeyLoggedIn:         "Logged in to the Suqaba cluster",
		KeyLoggedOut:        "Logged out",
		KeyWorkingDirectory: "Working Directory",
		KeyWriteInput:       "Write Input Files",
		KeySubmitJob:        "Submit Job",
		KeyFetchJobs:        "Fetch Jobs",
		KeyPullResults:      "Pull Results",
		KeyCancelJob:        "Cancel Job",
		KeyRemoveJob:        "Remove Job",
		KeyConfirmCancel:    "Cancel job %.8s on the cluster?",
		KeyConfirmRemove:    "Remove job %.8s from the cluster?",
		KeySelectJobFirst:   "Please select a job first",
		KeyNotLoggedIn:      "Please log in first",
	}

	// French texts
	l.texts["fr"] = map[string]string{
		KeyAppTitle:         "Compagnon Suqaba",
		KeySettings:         "Paramètres",
		KeyFile:             "Fichier",
		KeyLanguage:         "Langue",
		KeySave:             "Enregistrer",
		KeyCancel:           "Annuler",
		KeyBrowse:           "Parcourir",
		KeyError:            "Erreur",
		KeyBinaryHeading:    "Binaire Suqaba",
		KeyUseStandardBin:   "Utiliser le binaire Suqaba standard",
		KeyBinaryPath:       "Chemin du binaire Suqaba personnalisé",
		KeyInputHeading:     "Fichiers d'entrée",
		KeyWriteComments:    "Écrire des commentaires dans les fichiers d'entrée",
		KeyFileDoesNotExist: "Le fichier\n%s\nn'existe pas.\nVeuillez spécifier un autre fichier.",
		KeyEmail:            "Email",
		KeyPassword:         "Mot de passe",
		KeyLogIn:            "Se connecter",
		KeyLogOut:           "Se déconnecter",
		KeyLoggedIn:         "Connecté au cluster Suqaba",
		KeyLoggedOut:        "Déconnecté",
		KeyWorkingDirectory: "Répertoire de travail",
		KeyWriteInput:       "Écrire les fichiers d'entrée",
		KeySubmitJob:        "Soumettre le calcul",
		KeyFetchJobs:        "Lister les calculs",
		KeyPullResults:      "Récupérer les résultats",
		KeyCancelJob:        "Annuler le calcul",
		KeyRemoveJob:        "Supprimer le calcul",
		KeyConfirmCancel:    "Annuler le calcul %.8s sur le cluster ?",
		KeyConfirmRemove:    "Supprimer le calcul %.8s du cluster ?",
		KeySelectJobFirst:   "Veuillez d'abord sélectionner un calcul",
		KeyNotLoggedIn:      "Veuillez d'abord vous connecter",
	}

	// German texts
	l.texts["de"] = map[string]string{
		KeyAppTitle:         "Suqaba Companion",
		KeySettings:         "Einstellungen",
		KeyFile:             "Datei",
		KeyLanguage:         "Sprache",
		KeySave:             "Speichern",
		KeyCancel:           "Abbrechen",
		KeyBrowse:           "Durchsuchen",
		KeyError:            "Fehler",
		KeyBinaryHeading:    "Suqaba-Binärdatei",
		KeyUseStandardBin:   "Standard-Suqaba-Binärdatei verwenden",
		KeyBinaryPath:       "Pfad zur eigenen Suqaba-Binärdatei",
		KeyInputHeading:     "Eingabedateien",
		KeyWriteComments:    "Kommentare in Eingabedateien schreiben",
		KeyFileDoesNotExist: "Die Datei\n%s\nexistiert nicht.\nBitte geben Sie eine andere Datei an.",
		KeyEmail:            "E-Mail",
		KeyPassword:         "Passwort",
		KeyLogIn:            "Anmelden",
		KeyLogOut:           "Abmelden",
		KeyLoggedIn:         "Am Suqaba-Cluster angemeldet",
		KeyLoggedOut:        "Abgemeldet",
		KeyWorkingDirectory: "Arbeitsverzeichnis",
		KeyWriteInput:       "Eingabedateien schreiben",
		KeySubmitJob:        "Berechnung einreichen",
		KeyFetchJobs:        "Berechnungen abrufen",
		KeyPullResults:      "Ergebnisse laden",
		KeyCancelJob:        "Berechnung abbrechen",
		KeyRemoveJob:        "Berechnung entfernen",
		KeyConfirmCancel:    "Berechnung %.8s auf dem Cluster abbrechen?",
		KeyConfirmRemove:    "Berechnung %.8s vom Cluster entfernen?",
		KeySelectJobFirst:   "Bitte zuerst eine Berechnung auswählen",
		KeyNotLoggedIn:      "Bitte zuerst anmelden",
	}
}
