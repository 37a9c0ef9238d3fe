package main

import (
	"fmt"

	"fyne.io/fyne/v2/app"

	"github.com/suqaba/suqaba-companion/internal/config"
	"github.com/suqaba/suqaba-companion/internal/platform"
	"github.com/suqaba/suqaba-companion/internal/solver"
	"github.com/suqaba/suqaba-companion/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.suqaba.companion"
	AppName = "Suqaba Companion"
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))

	// Initialize services
	settings := config.NewSettings(myApp)
	workdir := settings.GetWorkingDirectory()
	if err := platform.CreateDirectoryIfNotExists(workdir); err != nil {
		fmt.Printf("failed to ensure working dir: %v\n", err)
	}

	client := solver.NewClient(settings.GetAPIBaseURL(), solver.NewKeyringStore())

	locale := ui.NewLocalization()
	locale.SetLanguage(settings.GetLanguage())

	// Create and setup UI
	ui.NewRootUI(myWindow, settings, client, locale)

	// Show and run
	myWindow.ShowAndRun()
}
