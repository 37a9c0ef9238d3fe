// Package archive packs solver input files into the job archive uploaded to
// the cluster and unpacks downloaded result archives.
package archive

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoInputFiles means the job directory held nothing worth submitting
var ErrNoInputFiles = errors.New("no input files to archive")

// InputExtensions are the file types included in a job archive
var InputExtensions = map[string]bool{
	".brep": true,
	".step": true,
	".geo":  true,
	".json": true,
}

// Pack zips every input file found directly in dir into dir/name and returns
// the archive path plus the packed file names. Subdirectories are skipped so
// previously unpacked results never leak into a new submission.
func Pack(dir, name string) (string, []string, error) {
	archivePath := filepath.Join(dir, name)

	out, err := os.Create(archivePath)
	if err != nil {
		return "", nil, fmt.Errorf("failed to create archive: %w", err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)

	entries, err := os.ReadDir(dir)
	if err != nil {
		zw.Close()
		return "", nil, fmt.Errorf("failed to read job directory: %w", err)
	}

	var packed []string
	for _, entry := range entries {
		if entry.IsDir() || !InputExtensions[filepath.Ext(entry.Name())] {
			continue
		}

		if err := addFile(zw, dir, entry.Name()); err != nil {
			zw.Close()
			return "", nil, err
		}
		packed = append(packed, entry.Name())
	}

	if err := zw.Close(); err != nil {
		return "", nil, fmt.Errorf("failed to finalize archive: %w", err)
	}

	if len(packed) == 0 {
		os.Remove(archivePath)
		return "", nil, ErrNoInputFiles
	}
	return archivePath, packed, nil
}

// addFile copies one file into the archive under its bare name
func addFile(zw *zip.Writer, dir, name string) error {
	in, err := os.Open(filepath.Join(dir, name))
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer in.Close()

	w, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("failed to add %s to archive: %w", name, err)
	}
	if _, err := io.Copy(w, in); err != nil {
		return fmt.Errorf("failed to write %s to archive: %w", name, err)
	}
	return nil
}

// Unpack extracts archivePath into destDir and returns the extracted paths.
// Entries that would escape destDir are rejected.
func Unpack(archivePath, destDir string) ([]string, error) {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open result archive: %w", err)
	}
	defer r.Close()

	var extracted []string
	for _, f := range r.File {
		target, err := sanitizePath(destDir, f.Name)
		if err != nil {
			return nil, err
		}

		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0755); err != nil {
				return nil, fmt.Errorf("failed to create %s: %w", f.Name, err)
			}
			continue
		}

		if err := extractFile(f, target); err != nil {
			return nil, err
		}
		extracted = append(extracted, target)
	}
	return extracted, nil
}

// sanitizePath joins name under destDir, rejecting traversal outside it
func sanitizePath(destDir, name string) (string, error) {
	target := filepath.Join(destDir, filepath.FromSlash(name))
	if !strings.HasPrefix(target, filepath.Clean(destDir)+string(os.PathSeparator)) {
		return "", fmt.Errorf("archive entry escapes destination: %s", name)
	}
	return target, nil
}

// extractFile writes one archive entry to target
func extractFile(f *zip.File, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", f.Name, err)
	}

	in, err := f.Open()
	if err != nil {
		return fmt.Errorf("failed to read archive entry %s: %w", f.Name, err)
	}
	defer in.Close()

	out, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", target, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("failed to extract %s: %w", f.Name, err)
	}
	return nil
}
