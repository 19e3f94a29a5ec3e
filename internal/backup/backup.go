// Package backup preserves the pre-run content of the local destination
// file as a timestamp-suffixed sibling.
package backup

import (
	"fmt"
	"io"
	"os"
	"time"
)

// TimestampLayout is the second-granularity suffix format, e.g.
// CLAUDE.md.backup.20260824_153012.
const TimestampLayout = "20060102_150405"

// Record tracks a backup file for the duration of one sync run. It is
// created before the download and either restored onto the source,
// removed, or retained at the end of the run.
type Record struct {
	// Path is the backup file location.
	Path string
	// Source is the file the backup was taken from.
	Source string
	// CreatedAt is when the backup was written.
	CreatedAt time.Time
}

// Exists reports whether a regular file is present at path.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Create copies localPath to a timestamped sibling and returns the
// record. The original file is left untouched; its mode is preserved
// on the copy.
func Create(localPath string) (*Record, error) {
	return createAt(localPath, time.Now())
}

func createAt(localPath string, now time.Time) (*Record, error) {
	backupPath := fmt.Sprintf("%s.backup.%s", localPath, now.Format(TimestampLayout))

	src, err := os.Open(localPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", localPath, err)
	}
	defer func() { _ = src.Close() }()

	info, err := src.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", localPath, err)
	}

	dst, err := os.OpenFile(backupPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return nil, fmt.Errorf("failed to create backup %s: %w", backupPath, err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		_ = os.Remove(backupPath)
		return nil, fmt.Errorf("failed to copy %s to %s: %w", localPath, backupPath, err)
	}

	if err := dst.Close(); err != nil {
		_ = os.Remove(backupPath)
		return nil, fmt.Errorf("failed to finalize backup %s: %w", backupPath, err)
	}

	return &Record{
		Path:      backupPath,
		Source:    localPath,
		CreatedAt: now,
	}, nil
}

// Restore moves the backup back onto its source, consuming the backup
// file. Used when a download fails after the original was overwritten
// (or was about to be).
func (r *Record) Restore() error {
	if err := os.Rename(r.Path, r.Source); err != nil {
		return fmt.Errorf("failed to restore %s from %s: %w", r.Source, r.Path, err)
	}
	return nil
}

// Remove deletes the backup file.
func (r *Record) Remove() error {
	if err := os.Remove(r.Path); err != nil {
		return fmt.Errorf("failed to remove backup %s: %w", r.Path, err)
	}
	return nil
}
