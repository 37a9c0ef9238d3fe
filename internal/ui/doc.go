// Package ui contains the Fyne user interface: the main window with the
// session, job and log views, the settings panel, localization and the
// compact theme.
package ui
