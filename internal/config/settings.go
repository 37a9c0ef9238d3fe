package config

import (
	"fyne.io/fyne/v2"

	"github.com/suqaba/suqaba-companion/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyUseStandardBinary = "use_standard_binary"
	KeyBinaryPath        = "binary_path"
	KeyWriteComments     = "write_comments"
	KeyLanguage          = "app_language"
	KeyWorkingDirectory  = "working_directory"
	KeyErrorThreshold    = "error_threshold"
	KeyAPIBaseURL        = "api_base_url"
)

// Default values
const (
	DefaultUseStandardBinary = true
	DefaultWriteComments     = false
	DefaultLanguage          = "system"
	DefaultErrorThreshold    = 20.0
	DefaultAPIBaseURL        = "https://api.suqaba.com"
)

// MinErrorThreshold is the lowest accepted quality requirement. Compute
// resources on the cluster are limited, so tighter thresholds are rejected.
const MinErrorThreshold = 2.5

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetUseStandardBinary returns whether the preprocessor is looked up on PATH
func (s *Settings) GetUseStandardBinary() bool {
	return s.app.Preferences().BoolWithFallback(KeyUseStandardBinary, DefaultUseStandardBinary)
}

// SetUseStandardBinary sets whether the preprocessor is looked up on PATH
func (s *Settings) SetUseStandardBinary(std bool) {
	s.app.Preferences().SetBool(KeyUseStandardBinary, std)
}

// GetBinaryPath returns the custom preprocessor executable location
func (s *Settings) GetBinaryPath() string {
	return s.app.Preferences().String(KeyBinaryPath)
}

// SetBinaryPath sets the custom preprocessor executable location. The path is
// stored as entered; existence is advisory and checked by the settings panel.
func (s *Settings) SetBinaryPath(path string) {
	s.app.Preferences().SetString(KeyBinaryPath, path)
}

// GetWriteComments returns whether generated input files carry comments
func (s *Settings) GetWriteComments() bool {
	return s.app.Preferences().BoolWithFallback(KeyWriteComments, DefaultWriteComments)
}

// SetWriteComments sets whether generated input files carry comments
func (s *Settings) SetWriteComments(write bool) {
	s.app.Preferences().SetBool(KeyWriteComments, write)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetWorkingDirectory returns the directory job inputs and results live in
func (s *Settings) GetWorkingDirectory() string {
	dir := s.app.Preferences().String(KeyWorkingDirectory)
	if dir == "" {
		defaultDir, err := platform.DefaultWorkingDirectory()
		if err != nil {
			defaultDir = "/tmp/suqaba-jobs"
		}
		s.SetWorkingDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetWorkingDirectory sets the job working directory
func (s *Settings) SetWorkingDirectory(dir string) {
	s.app.Preferences().SetString(KeyWorkingDirectory, dir)
}

// GetErrorThreshold returns the solver quality requirement in percent
func (s *Settings) GetErrorThreshold() float64 {
	value := s.app.Preferences().FloatWithFallback(KeyErrorThreshold, DefaultErrorThreshold)
	if value < MinErrorThreshold {
		return MinErrorThreshold
	}
	return value
}

// SetErrorThreshold sets the solver quality requirement, clamped to the
// minimum the cluster accepts.
func (s *Settings) SetErrorThreshold(threshold float64) {
	if threshold < MinErrorThreshold {
		threshold = MinErrorThreshold
	}
	s.app.Preferences().SetFloat(KeyErrorThreshold, threshold)
}

// GetAPIBaseURL returns the solver API endpoint
func (s *Settings) GetAPIBaseURL() string {
	url := s.app.Preferences().String(KeyAPIBaseURL)
	if url == "" {
		s.SetAPIBaseURL(DefaultAPIBaseURL)
		return DefaultAPIBaseURL
	}
	return url
}

// SetAPIBaseURL sets the solver API endpoint
func (s *Settings) SetAPIBaseURL(url string) {
	s.app.Preferences().SetString(KeyAPIBaseURL, url)
}

// EffectiveBinaryPath resolves the preprocessor executable the app would run:
// the PATH lookup when the standard-location flag is on, the custom path
// otherwise. An empty string means no binary could be resolved.
func (s *Settings) EffectiveBinaryPath() string {
	if s.GetUseStandardBinary() {
		path, err := platform.LookupStandardBinary()
		if err != nil {
			return ""
		}
		return path
	}
	return s.GetBinaryPath()
}
