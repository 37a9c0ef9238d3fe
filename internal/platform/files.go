package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// StandardBinaryName is the preprocessor executable looked up on PATH when
// the standard-location preference is enabled.
const StandardBinaryName = "suqaba"

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
)

// Command parameters
const (
	MacOSSelectFlag    = "-R"
	WindowsSelectParam = "/select,"
)

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// FileExists reports whether path names an existing file or directory
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// LookupStandardBinary resolves the preprocessor executable on PATH
func LookupStandardBinary() (string, error) {
	path, err := exec.LookPath(StandardBinaryName)
	if err != nil {
		return "", fmt.Errorf("preprocessor binary %q not found on PATH: %w", StandardBinaryName, err)
	}
	return path, nil
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// DefaultWorkingDirectory returns the standard job directory for the user
func DefaultWorkingDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, "suqaba-jobs"), nil
}

// UniqueFileName returns name unchanged when it is free in dir; otherwise it
// appends a counter to the stem so an existing file is never overwritten.
func UniqueFileName(dir, name string) string {
	if !FileExists(filepath.Join(dir, name)) {
		return name
	}

	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return name
	}

	occurrences := 0
	for _, entry := range entries {
		entryStem := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		if strings.Contains(entryStem, stem) {
			occurrences++
		}
	}

	return fmt.Sprintf("%s_%d%s", stem, occurrences, ext)
}

// OpenFileInManager opens the file in the system file manager and highlights it
func OpenFileInManager(filePath string) error {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}
	if !FileExists(absPath) {
		return fmt.Errorf("file does not exist: %s", absPath)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, MacOSSelectFlag, absPath).Run()
	case OSWindows:
		return exec.Command(ExplorerCommand, WindowsSelectParam, absPath).Run()
	case OSLinux:
		return openFileInManagerLinux(absPath)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openFileInManagerLinux opens the directory containing the file on Linux.
// File selection is not standardized on Linux, so the parent directory is opened.
func openFileInManagerLinux(filePath string) error {
	dir := filepath.Dir(filePath)

	if err := exec.Command(XDGOpenCommand, dir).Run(); err == nil {
		return nil
	}

	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			return exec.Command(fm, dir).Run()
		}
	}

	return fmt.Errorf("no suitable file manager found")
}
