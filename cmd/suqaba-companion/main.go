package main

import (
	"fyne.io/fyne/v2/app"

	"github.com/suqaba/suqaba-companion/internal/config"
	"github.com/suqaba/suqaba-companion/internal/solver"
	"github.com/suqaba/suqaba-companion/internal/ui"
)

func main() {
	// Create new Fyne app
	myApp := app.NewWithID("com.suqaba.companion")
	myApp.Settings().SetTheme(ui.NewCompactTheme())
	myWindow := myApp.NewWindow("Suqaba Companion")

	settings := config.NewSettings(myApp)
	client := solver.NewClient(settings.GetAPIBaseURL(), solver.NewKeyringStore())
	locale := ui.NewLocalization()
	locale.SetLanguage(settings.GetLanguage())

	// Create and setup UI
	ui.NewRootUI(myWindow, settings, client, locale)

	// Show and run
	myWindow.ShowAndRun()
}
