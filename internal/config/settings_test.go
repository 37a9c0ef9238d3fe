package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestUseStandardBinary(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if !settings.GetUseStandardBinary() {
		t.Error("Standard binary location should be enabled by default")
	}

	// Test setting custom value
	settings.SetUseStandardBinary(false)
	if settings.GetUseStandardBinary() {
		t.Error("Expected standard binary location to be disabled")
	}
}

func TestBinaryPath(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if path := settings.GetBinaryPath(); path != "" {
		t.Errorf("Default binary path should be empty, got %s", path)
	}

	// Test setting custom value
	customPath := "/usr/bin/suqaba"
	settings.SetBinaryPath(customPath)
	if got := settings.GetBinaryPath(); got != customPath {
		t.Errorf("Expected binary path %s, got %s", customPath, got)
	}

	// A path that does not exist is stored anyway; validation is advisory.
	settings.SetBinaryPath("/no/such/file")
	if got := settings.GetBinaryPath(); got != "/no/such/file" {
		t.Errorf("Nonexistent paths must still be persisted, got %s", got)
	}
}

func TestWriteComments(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if settings.GetWriteComments() {
		t.Error("Comment emission should be disabled by default")
	}

	// Test setting custom value
	settings.SetWriteComments(true)
	if !settings.GetWriteComments() {
		t.Error("Expected comment emission to be enabled")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if lang := settings.GetLanguage(); lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("fr")
	if lang := settings.GetLanguage(); lang != "fr" {
		t.Errorf("Expected language 'fr', got %s", lang)
	}
}

func TestWorkingDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if dir := settings.GetWorkingDirectory(); dir == "" {
		t.Error("Working directory should not be empty")
	}

	// Test setting custom value
	customDir := "/custom/jobs"
	settings.SetWorkingDirectory(customDir)
	if dir := settings.GetWorkingDirectory(); dir != customDir {
		t.Errorf("Expected working directory %s, got %s", customDir, dir)
	}
}

func TestErrorThreshold(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if got := settings.GetErrorThreshold(); got != DefaultErrorThreshold {
		t.Errorf("Expected default threshold %v, got %v", DefaultErrorThreshold, got)
	}

	// Test setting custom value
	settings.SetErrorThreshold(10.0)
	if got := settings.GetErrorThreshold(); got != 10.0 {
		t.Errorf("Expected threshold 10.0, got %v", got)
	}

	// Test boundary value: the cluster rejects thresholds below the minimum.
	settings.SetErrorThreshold(1.0)
	if got := settings.GetErrorThreshold(); got != MinErrorThreshold {
		t.Errorf("Threshold should be clamped to %v, got %v", MinErrorThreshold, got)
	}
}

func TestAPIBaseURL(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if url := settings.GetAPIBaseURL(); url != DefaultAPIBaseURL {
		t.Errorf("Expected default API URL %s, got %s", DefaultAPIBaseURL, url)
	}

	// Test setting custom value
	settings.SetAPIBaseURL("http://localhost:8000")
	if url := settings.GetAPIBaseURL(); url != "http://localhost:8000" {
		t.Errorf("Expected custom API URL, got %s", url)
	}
}

func TestEffectiveBinaryPath(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	settings.SetUseStandardBinary(false)
	settings.SetBinaryPath("/opt/suqaba/bin/suqaba")
	if got := settings.EffectiveBinaryPath(); got != "/opt/suqaba/bin/suqaba" {
		t.Errorf("Expected the custom path, got %s", got)
	}
}
