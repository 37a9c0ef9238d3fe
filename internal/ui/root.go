package ui

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"

	"github.com/suqaba/suqaba-companion/internal/archive"
	"github.com/suqaba/suqaba-companion/internal/config"
	"github.com/suqaba/suqaba-companion/internal/model"
	"github.com/suqaba/suqaba-companion/internal/platform"
	"github.com/suqaba/suqaba-companion/internal/solver"
	"github.com/suqaba/suqaba-companion/internal/writer"
)

// RootUI is the main window: cluster session controls, the working
// directory, job actions, the job list and the activity log.
type RootUI struct {
	window   fyne.Window
	settings *config.Settings
	locale   *Localization
	client   *solver.Client
	watcher  *solver.Watcher

	emailEntry    *widget.Entry
	passwordEntry *widget.Entry
	loginButton   *widget.Button
	logoutButton  *widget.Button

	workdirLabel *widget.Label
	workdirEntry *widget.Entry
	openDirBtn   *widget.Button

	writeInputButton *widget.Button
	submitButton     *widget.Button
	fetchButton      *widget.Button
	pullButton       *widget.Button
	cancelButton     *widget.Button
	removeButton     *widget.Button

	jobs        []model.Job
	jobList     *widget.List
	selectedJob int

	logLabel *widget.Label
	logView  *container.Scroll

	removeLocaleListener func()
}

// NewRootUI builds the main window content and menus
func NewRootUI(window fyne.Window, settings *config.Settings, client *solver.Client, locale *Localization) *RootUI {
	ru := &RootUI{
		window:      window,
		settings:    settings,
		locale:      locale,
		client:      client,
		selectedJob: -1,
	}
	ru.watcher = solver.NewWatcher(client, LiveStatusInterval,
		ru.appendLog,
		func(err error) { ru.appendLog(fmt.Sprintf("Live status stopped: %v\n", err)) },
	)

	ru.createUI()
	ru.createMenus()
	ru.applyLocale()
	ru.removeLocaleListener = locale.AddListener(func() {
		ru.applyLocale()
		ru.createMenus()
	})

	window.SetContent(ru.content())
	window.Resize(fyne.NewSize(MainWindowWidth, MainWindowHeight))
	window.SetOnClosed(func() {
		ru.watcher.Stop()
		ru.removeLocaleListener()
	})
	return ru
}

// createUI creates all widgets of the main window
func (ru *RootUI) createUI() {
	ru.emailEntry = widget.NewEntry()
	ru.passwordEntry = widget.NewPasswordEntry()
	ru.loginButton = widget.NewButton("", ru.onLogin)
	ru.logoutButton = widget.NewButton("", ru.onLogout)

	ru.workdirLabel = widget.NewLabel("")
	ru.workdirEntry = widget.NewEntry()
	ru.workdirEntry.SetText(ru.settings.GetWorkingDirectory())
	ru.workdirEntry.OnChanged = func(dir string) {
		ru.settings.SetWorkingDirectory(dir)
	}
	ru.openDirBtn = widget.NewButton(IconFolder, ru.onOpenWorkdir)

	ru.writeInputButton = widget.NewButton("", ru.onWriteInput)
	ru.submitButton = widget.NewButton("", ru.onSubmitJob)
	ru.fetchButton = widget.NewButton("", ru.onFetchJobs)
	ru.pullButton = widget.NewButton("", ru.onPullResults)
	ru.cancelButton = widget.NewButton("", ru.onCancelJob)
	ru.removeButton = widget.NewButton("", ru.onRemoveJob)

	ru.jobList = widget.NewList(
		func() int { return len(ru.jobs) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(i widget.ListItemID, item fyne.CanvasObject) {
			item.(*widget.Label).SetText(ru.jobs[i].Label())
		},
	)
	ru.jobList.OnSelected = func(i widget.ListItemID) { ru.selectedJob = i }
	ru.jobList.OnUnselected = func(widget.ListItemID) { ru.selectedJob = -1 }

	ru.logLabel = widget.NewLabel("")
	ru.logLabel.Wrapping = fyne.TextWrapWord
	ru.logView = container.NewVScroll(ru.logLabel)
	ru.logView.SetMinSize(fyne.NewSize(0, LogMinHeight))
}

// content lays the widgets out
func (ru *RootUI) content() fyne.CanvasObject {
	authRow := container.NewGridWithColumns(4,
		ru.emailEntry, ru.passwordEntry, ru.loginButton, ru.logoutButton)

	workdirRow := container.NewBorder(nil, nil, ru.workdirLabel, ru.openDirBtn, ru.workdirEntry)

	actionRow := container.NewGridWithColumns(3,
		ru.writeInputButton, ru.submitButton, ru.fetchButton)
	jobActionRow := container.NewGridWithColumns(3,
		ru.pullButton, ru.cancelButton, ru.removeButton)

	listView := container.NewVScroll(ru.jobList)
	listView.SetMinSize(fyne.NewSize(0, JobListMinHeight))

	return container.NewVBox(
		authRow,
		workdirRow,
		actionRow,
		jobActionRow,
		listView,
		widget.NewSeparator(),
		ru.logView,
	)
}

// createMenus builds the main menu with the language submenu. Rebuilt after
// every language change so the checkmarks and captions stay current.
func (ru *RootUI) createMenus() {
	settingsItem := fyne.NewMenuItem(IconSettings+" "+ru.locale.GetText(KeySettings), func() {
		panel := NewSettingsPanel(ru.settings, ru.window, ru.locale)
		panel.Show()
	})

	languages := ru.locale.GetAvailableLanguages()
	langItems := make([]*fyne.MenuItem, 0, len(languages))
	for _, code := range []string{"en", "fr", "de"} {
		code := code
		label := languages[code]
		if code == ru.locale.GetCurrentLanguage() {
			label = "✓ " + label
		}
		langItems = append(langItems, fyne.NewMenuItem(label, func() {
			ru.settings.SetLanguage(code)
			ru.locale.SetLanguage(code)
		}))
	}
	languageMenu := fyne.NewMenu(IconLanguage+" "+ru.locale.GetText(KeyLanguage), langItems...)

	fileMenu := fyne.NewMenu(ru.locale.GetText(KeyFile), settingsItem)
	ru.window.SetMainMenu(fyne.NewMainMenu(fileMenu, languageMenu))
}

// applyLocale retranslates window title, captions and placeholders
func (ru *RootUI) applyLocale() {
	ru.window.SetTitle(ru.locale.GetText(KeyAppTitle))
	ru.emailEntry.SetPlaceHolder(ru.locale.GetText(KeyEmail))
	ru.passwordEntry.SetPlaceHolder(ru.locale.GetText(KeyPassword))
	ru.loginButton.SetText(ru.locale.GetText(KeyLogIn))
	ru.logoutButton.SetText(ru.locale.GetText(KeyLogOut))
	ru.workdirLabel.SetText(ru.locale.GetText(KeyWorkingDirectory) + ":")
	ru.writeInputButton.SetText(ru.locale.GetText(KeyWriteInput))
	ru.submitButton.SetText(IconCloud + " " + ru.locale.GetText(KeySubmitJob))
	ru.fetchButton.SetText(ru.locale.GetText(KeyFetchJobs))
	ru.pullButton.SetText(ru.locale.GetText(KeyPullResults))
	ru.cancelButton.SetText(ru.locale.GetText(KeyCancelJob))
	ru.removeButton.SetText(ru.locale.GetText(KeyRemoveJob))
}

// appendLog adds a line to the activity log. Safe to call from any goroutine.
func (ru *RootUI) appendLog(line string) {
	if !strings.HasSuffix(line, "\n") {
		line += "\n"
	}
	fyne.Do(func() {
		ru.logLabel.SetText(ru.logLabel.Text + line)
		ru.logView.ScrollToBottom()
	})
}

// requireSession logs a hint and returns false when no session is active
func (ru *RootUI) requireSession() bool {
	if ru.client.IsAuthenticated() {
		return true
	}
	ru.appendLog(ru.locale.GetText(KeyNotLoggedIn))
	return false
}

// currentJob returns the selected job, logging a hint when none is selected
func (ru *RootUI) currentJob() (model.Job, bool) {
	if ru.selectedJob < 0 || ru.selectedJob >= len(ru.jobs) {
		ru.appendLog(ru.locale.GetText(KeySelectJobFirst))
		return model.Job{}, false
	}
	return ru.jobs[ru.selectedJob], true
}

// onLogin authenticates against the cluster with the entered credentials
func (ru *RootUI) onLogin() {
	email := ru.emailEntry.Text
	password := ru.passwordEntry.Text

	go func() {
		if err := ru.client.Authenticate(context.Background(), email, password); err != nil {
			log.Printf("Login failed: %v", err)
			ru.appendLog(fmt.Sprintf("Login failed: %v\n", err))
			return
		}
		fyne.Do(func() { ru.passwordEntry.SetText("") })
		ru.appendLog(ru.locale.GetText(KeyLoggedIn))
		ru.refreshJobs()
		ru.watcher.Start()
	}()
}

// onLogout forgets the stored session
func (ru *RootUI) onLogout() {
	ru.watcher.Stop()
	if err := ru.client.Logout(); err != nil {
		log.Printf("Logout failed: %v", err)
		ru.appendLog(fmt.Sprintf("Logout failed: %v\n", err))
		return
	}
	ru.appendLog(ru.locale.GetText(KeyLoggedOut))
}

// onOpenWorkdir reveals the working directory in the system file manager
func (ru *RootUI) onOpenWorkdir() {
	dir := ru.settings.GetWorkingDirectory()
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		ru.appendLog(fmt.Sprintf("Failed to create %s: %v\n", dir, err))
		return
	}
	if err := platform.OpenFileInManager(dir); err != nil {
		log.Printf("Failed to open file manager: %v", err)
	}
}

// onWriteInput translates every case definition in the working directory
// into solver input files.
func (ru *RootUI) onWriteInput() {
	dir := ru.settings.GetWorkingDirectory()
	matches, err := filepath.Glob(filepath.Join(dir, "*.case.json"))
	if err != nil || len(matches) == 0 {
		ru.appendLog(fmt.Sprintf("No case definitions (*.case.json) found in %s\n", dir))
		return
	}

	w := writer.NewInputWriter(dir, ru.settings.GetWriteComments(), ru.appendLog)
	for _, path := range matches {
		c, err := writer.LoadCase(path)
		if err != nil {
			ru.appendLog(fmt.Sprintf("Skipping %s: %v\n", filepath.Base(path), err))
			continue
		}
		if _, err := w.WriteCase(c); err != nil {
			ru.appendLog(fmt.Sprintf("Failed to write input for %s: %v\n", c.Name, err))
		}
	}
}

// onSubmitJob packs the working directory's input files and uploads them
func (ru *RootUI) onSubmitJob() {
	if !ru.requireSession() {
		return
	}
	dir := ru.settings.GetWorkingDirectory()
	submission := submissionName(dir)

	go func() {
		archivePath, packed, err := archive.Pack(dir, submission)
		if err != nil {
			ru.appendLog(fmt.Sprintf("Failed to pack job files: %v\n", err))
			return
		}
		ru.appendLog(fmt.Sprintf("Packed %d input file(s) for upload\n", len(packed)))

		jobID, err := ru.client.Submit(context.Background(), archivePath)
		if err != nil {
			ru.appendLog(fmt.Sprintf("Submission failed: %v\n", err))
			return
		}
		ru.appendLog(fmt.Sprintf("Job submitted (ID: %.8s)\n", jobID))
		ru.refreshJobs()
		ru.watcher.Start()
	}()
}

// submissionName builds the upload archive name for one submission from the
// working directory: <dirname>_<short-uuid>.zip.
func submissionName(dir string) string {
	return fmt.Sprintf("%s_%.8s.zip", filepath.Base(dir), uuid.NewString())
}

// onFetchJobs refreshes the job list and prints the check-in summary
func (ru *RootUI) onFetchJobs() {
	if !ru.requireSession() {
		return
	}
	go ru.refreshJobs()
}

// refreshJobs pulls the job list and counts from the cluster
func (ru *RootUI) refreshJobs() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	counts, err := ru.client.CheckIn(ctx)
	if err != nil {
		ru.appendLog(fmt.Sprintf("Check-in failed: %v\n", err))
		return
	}
	ru.appendLog(counts.Summary())

	jobs, err := ru.client.Fetch(ctx)
	if err != nil {
		ru.appendLog(fmt.Sprintf("Failed to fetch jobs: %v\n", err))
		return
	}
	fyne.Do(func() {
		ru.jobs = jobs
		ru.selectedJob = -1
		ru.jobList.UnselectAll()
		ru.jobList.Refresh()
	})
}

// onPullResults downloads and unpacks the selected job's results
func (ru *RootUI) onPullResults() {
	if !ru.requireSession() {
		return
	}
	job, ok := ru.currentJob()
	if !ok {
		return
	}
	dir := ru.settings.GetWorkingDirectory()

	go func() {
		resultDir, err := ru.client.PullResults(context.Background(), job.ID, dir)
		if err != nil {
			ru.appendLog(fmt.Sprintf("Failed to pull results for job %s: %v\n", job.ShortID(), err))
			return
		}
		ru.appendLog(fmt.Sprintf("Results for job %s downloaded to %s\n", job.ShortID(), resultDir))
		if err := platform.OpenFileInManager(resultDir); err != nil {
			log.Printf("Failed to open file manager: %v", err)
		}
	}()
}

// onCancelJob cancels the selected job after confirmation
func (ru *RootUI) onCancelJob() {
	ru.confirmJobAction(KeyConfirmCancel, ru.client.Cancel)
}

// onRemoveJob removes the selected job after confirmation
func (ru *RootUI) onRemoveJob() {
	ru.confirmJobAction(KeyConfirmRemove, ru.client.Remove)
}

// confirmJobAction runs a cancel/remove style cluster call on the selected
// job once the user confirms it.
func (ru *RootUI) confirmJobAction(promptKey string, action func(context.Context, string) (string, error)) {
	if !ru.requireSession() {
		return
	}
	job, ok := ru.currentJob()
	if !ok {
		return
	}

	prompt := fmt.Sprintf(ru.locale.GetText(promptKey), job.ID)
	dialog.ShowConfirm(ru.locale.GetText(KeyAppTitle), prompt, func(confirmed bool) {
		if !confirmed {
			return
		}
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			msg, err := action(ctx, job.ID)
			if err != nil {
				ru.appendLog(fmt.Sprintf("Request for job %s failed: %v\n", job.ShortID(), err))
				return
			}
			if msg != "" {
				ru.appendLog(msg)
			}
			ru.refreshJobs()
		}()
	}, ru.window)
}
