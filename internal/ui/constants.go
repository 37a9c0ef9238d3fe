package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconLanguage = "🌐"
	IconFolder   = "📁"
	IconCloud    = "☁"
)

// Window and dialog sizing
const (
	MainWindowWidth  float32 = 760
	MainWindowHeight float32 = 560

	settingsDialogWidth  float32 = 520
	settingsDialogHeight float32 = 320

	JobListMinHeight float32 = 160
	LogMinHeight     float32 = 140
)

// Cluster polling
const (
	LiveStatusInterval = 15 * time.Second
)
