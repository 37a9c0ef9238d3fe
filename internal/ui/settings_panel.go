package ui

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/suqaba/suqaba-companion/internal/config"
	"github.com/suqaba/suqaba-companion/internal/platform"
)

// SettingsPanel edits the Suqaba preferences: standard versus custom solver
// binary, the custom binary path and comment emission in written input files.
// Entering a path that does not exist raises a blocking error naming the
// path, but the entered text is kept so it can be corrected or saved as-is.
type SettingsPanel struct {
	settings *config.Settings
	window   fyne.Window
	locale   *Localization

	binaryHeading   *widget.Label
	stdBinaryCheck  *widget.Check
	pathLabel       *widget.Label
	binaryPathEntry *widget.Entry
	browseButton    *widget.Button
	inputHeading    *widget.Label
	commentsCheck   *widget.Check

	content fyne.CanvasObject

	loading        bool   // suppresses validation while LoadSettings runs
	lastWarnedPath string // last path already warned about, to warn once per entry

	// presentError raises the blocking validation error; tests replace it
	presentError func(message string)

	removeLocaleListener func()
}

// NewSettingsPanel creates a settings panel bound to the stored preferences
func NewSettingsPanel(settings *config.Settings, window fyne.Window, locale *Localization) *SettingsPanel {
	sp := &SettingsPanel{
		settings: settings,
		window:   window,
		locale:   locale,
	}
	sp.presentError = func(message string) {
		dialog.ShowError(errors.New(message), sp.window)
	}

	sp.createUI()
	sp.applyLocale()
	sp.removeLocaleListener = locale.AddListener(sp.applyLocale)
	return sp
}

// createUI creates the settings panel UI
func (sp *SettingsPanel) createUI() {
	sp.binaryHeading = widget.NewLabel("")
	sp.stdBinaryCheck = widget.NewCheck("", sp.onStandardBinaryToggled)

	sp.pathLabel = widget.NewLabel("")
	sp.binaryPathEntry = widget.NewEntry()
	sp.binaryPathEntry.OnChanged = sp.onBinaryPathChanged

	sp.browseButton = widget.NewButton("", sp.onBrowseBinary)
	pathRow := container.NewBorder(nil, nil, nil, sp.browseButton, sp.binaryPathEntry)

	sp.inputHeading = widget.NewLabel("")
	sp.commentsCheck = widget.NewCheck("", nil)

	sp.content = container.NewVBox(
		sp.binaryHeading,
		widget.NewSeparator(),
		sp.stdBinaryCheck,
		sp.pathLabel,
		pathRow,

		sp.inputHeading,
		widget.NewSeparator(),
		sp.commentsCheck,
	)
}

// Content returns the panel for embedding into a dialog or window
func (sp *SettingsPanel) Content() fyne.CanvasObject {
	return sp.content
}

// LoadSettings loads the stored preferences into the UI
func (sp *SettingsPanel) LoadSettings() {
	sp.loading = true
	defer func() { sp.loading = false }()

	sp.stdBinaryCheck.SetChecked(sp.settings.GetUseStandardBinary())
	sp.binaryPathEntry.SetText(sp.settings.GetBinaryPath())
	sp.commentsCheck.SetChecked(sp.settings.GetWriteComments())
	sp.lastWarnedPath = ""
}

// SaveSettings persists the panel state. A path that failed validation is
// stored unchanged; the warning never blocks saving.
func (sp *SettingsPanel) SaveSettings() {
	sp.settings.SetUseStandardBinary(sp.stdBinaryCheck.Checked)
	sp.settings.SetBinaryPath(sp.binaryPathEntry.Text)
	sp.settings.SetWriteComments(sp.commentsCheck.Checked)
}

// Teardown releases the locale registration. Must be called when the panel
// leaves the screen; safe to call more than once.
func (sp *SettingsPanel) Teardown() {
	if sp.removeLocaleListener != nil {
		sp.removeLocaleListener()
		sp.removeLocaleListener = nil
	}
}

// Show displays the panel in a modal dialog with Save/Cancel buttons
func (sp *SettingsPanel) Show() {
	sp.LoadSettings()

	d := dialog.NewCustomConfirm(
		sp.locale.GetText(KeySettings),
		sp.locale.GetText(KeySave),
		sp.locale.GetText(KeyCancel),
		sp.content,
		func(confirmed bool) {
			if confirmed {
				sp.SaveSettings()
			}
			sp.Teardown()
		},
		sp.window,
	)
	d.Resize(fyne.NewSize(settingsDialogWidth, settingsDialogHeight))
	d.Show()
}

// onStandardBinaryToggled enables the custom path controls only when the
// standard binary is not used.
func (sp *SettingsPanel) onStandardBinaryToggled(useStandard bool) {
	if useStandard {
		sp.binaryPathEntry.Disable()
		sp.browseButton.Disable()
	} else {
		sp.binaryPathEntry.Enable()
		sp.browseButton.Enable()
	}
}

// onBinaryPathChanged validates the entered path. A missing file raises one
// blocking error per distinct entry; the text itself is never reverted.
func (sp *SettingsPanel) onBinaryPathChanged(path string) {
	if sp.loading || path == "" {
		return
	}
	if platform.FileExists(path) {
		sp.lastWarnedPath = ""
		return
	}
	if path == sp.lastWarnedPath {
		return
	}
	sp.lastWarnedPath = path
	sp.presentError(fmt.Sprintf(sp.locale.GetText(KeyFileDoesNotExist), path))
}

// onBrowseBinary handles picking the binary through the file dialog
func (sp *SettingsPanel) onBrowseBinary() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		sp.binaryPathEntry.SetText(reader.URI().Path())
	}, sp.window)
}

// applyLocale retranslates every caption on the panel
func (sp *SettingsPanel) applyLocale() {
	sp.binaryHeading.SetText(sp.locale.GetText(KeyBinaryHeading))
	sp.stdBinaryCheck.SetText(sp.locale.GetText(KeyUseStandardBin))
	sp.pathLabel.SetText(sp.locale.GetText(KeyBinaryPath) + ":")
	sp.browseButton.SetText(sp.locale.GetText(KeyBrowse))
	sp.inputHeading.SetText(sp.locale.GetText(KeyInputHeading))
	sp.commentsCheck.SetText(sp.locale.GetText(KeyWriteComments))
}
