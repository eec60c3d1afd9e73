// Package landing places one raw source file into an idempotent,
// date-partitioned bronze location and marks completion.
package landing

import (
	"io"
	"os"
	"path/filepath"

	"milagros/domain/partition"
	"milagros/internal"
	"milagros/internal/errors"
)

// Stage copies the source spreadsheet byte-for-byte into the bronze
// partition for one ingest date.
type Stage struct {
	SourcePath string
	RawBase    string
	Key        partition.Key

	Logger *internal.Logger
}

// Result reports where the landing artifacts live and whether this run was a
// no-op.
type Result struct {
	Dest    string
	Marker  string
	Skipped bool
}

// NewStage creates a landing stage for one partition key.
func NewStage(sourcePath, rawBase string, key partition.Key, logger *internal.Logger) *Stage {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Stage{SourcePath: sourcePath, RawBase: rawBase, Key: key, Logger: logger}
}

// Run lands the source file. If both the destination file and the completion
// marker already exist the stage performs no I/O and reports skipped; an
// existence check only, never a content comparison. Otherwise the file's
// bytes and metadata are copied, and the marker is created only after the
// copy fully succeeds: marker present means the file is complete and stable.
func (s *Stage) Run() (*Result, error) {
	landingDir := s.Key.Dir(s.RawBase)
	if err := os.MkdirAll(landingDir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create landing directory %s", landingDir)
	}

	dest := filepath.Join(landingDir, filepath.Base(s.SourcePath))
	marker := s.Key.MarkerPath(s.RawBase)
	result := &Result{Dest: dest, Marker: marker}

	if fileExists(dest) && fileExists(marker) {
		s.Logger.Info("raw already present for %s; skipping", s.Key)
		result.Skipped = true
		return result, nil
	}

	srcInfo, err := os.Stat(s.SourcePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.SourceNotFound(s.SourcePath)
		}
		return nil, errors.Wrapf(err, "failed to stat source %s", s.SourcePath)
	}

	s.Logger.Info("copying source -> raw: %s -> %s", s.SourcePath, dest)
	if err := copyFile(s.SourcePath, dest, srcInfo); err != nil {
		// A partial dest without a marker is re-copied on the next run;
		// success must never be marked for a failed copy.
		return nil, err
	}

	if err := touch(marker); err != nil {
		return nil, errors.Wrapf(err, "failed to create completion marker %s", marker)
	}

	s.Logger.Info("wrote %s", dest)
	s.Logger.Info("wrote %s", marker)
	return result, nil
}

// copyFile copies full byte content plus file metadata (permission bits and
// modification time), matching what downstream consumers expect of a raw
// landing copy.
func copyFile(src, dest string, srcInfo os.FileInfo) error {
	in, err := os.Open(src)
	if err != nil {
		return errors.Wrapf(err, "failed to open source %s", src)
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, srcInfo.Mode().Perm())
	if err != nil {
		return errors.Wrapf(err, "failed to create destination %s", dest)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return errors.Wrapf(err, "failed to copy %s to %s", src, dest)
	}
	if err := out.Close(); err != nil {
		return errors.Wrapf(err, "failed to flush destination %s", dest)
	}
	if err := os.Chtimes(dest, srcInfo.ModTime(), srcInfo.ModTime()); err != nil {
		return errors.Wrapf(err, "failed to set timestamps on %s", dest)
	}
	return nil
}

func touch(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	return f.Close()
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
