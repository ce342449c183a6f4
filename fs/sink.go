package fs

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/fwojciec/doccorpus"
)

// Ensure ArchiveSink implements doccorpus.UploadSink at compile time.
var _ doccorpus.UploadSink = (*ArchiveSink)(nil)

// timestampSuffix matches the _YYYYMMDD_HHMMSS tail of writer output
// names, so files from different runs of the same crawl share a prefix.
var timestampSuffix = regexp.MustCompile(`_\d{8}_\d{6}$`)

// ArchiveSink publishes corpus files to a shared directory, keeping
// only the latest run visible: older files with the same prefix and
// extension are swept into an archive subdirectory first.
type ArchiveSink struct {
	uploadDir  string
	archiveDir string
	logger     *slog.Logger
}

// NewArchiveSink creates an ArchiveSink publishing to uploadDir and
// archiving displaced files under uploadDir/archive.
func NewArchiveSink(uploadDir string, logger *slog.Logger) *ArchiveSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &ArchiveSink{
		uploadDir:  uploadDir,
		archiveDir: filepath.Join(uploadDir, "archive"),
		logger:     logger,
	}
}

// Upload copies the file at localPath into the upload directory after
// archiving any prior run's file of the same kind.
func (s *ArchiveSink) Upload(ctx context.Context, localPath string) error {
	if err := os.MkdirAll(s.archiveDir, 0o755); err != nil {
		return fmt.Errorf("create archive dir: %w", err)
	}

	name := filepath.Base(localPath)
	if err := s.archiveMatching(name); err != nil {
		return err
	}

	dst := filepath.Join(s.uploadDir, name)
	if err := copyFile(localPath, dst); err != nil {
		return fmt.Errorf("publish %s: %w", name, err)
	}
	s.logger.Info("published corpus file", "path", dst)
	return nil
}

// archiveMatching moves prior files with the same prefix and extension
// out of the upload directory.
func (s *ArchiveSink) archiveMatching(newName string) error {
	prefix, ext := splitName(newName)

	entries, err := os.ReadDir(s.uploadDir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() || entry.Name() == newName {
			continue
		}
		p, e := splitName(entry.Name())
		if p != prefix || e != ext {
			continue
		}
		from := filepath.Join(s.uploadDir, entry.Name())
		to := filepath.Join(s.archiveDir, entry.Name())
		if err := os.Rename(from, to); err != nil {
			return fmt.Errorf("archive %s: %w", entry.Name(), err)
		}
		s.logger.Info("archived previous corpus file", "path", to)
	}
	return nil
}

// splitName separates a writer output name into its run-independent
// prefix and extension.
func splitName(name string) (string, string) {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	return timestampSuffix.ReplaceAllString(base, ""), ext
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
