// Package export packages evidence attachments referenced by a site's
// records. Evidence paths are opaque strings recorded at submission time; the
// core never inspects file contents, and references to files that no longer
// exist are skipped rather than failing the export.
package export

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/dotcommander/greenseal/internal/metrics"
)

// ZipEvidence writes every existing evidence file referenced by recs into a
// zip archive at zipPath. A non-empty doublestar pattern filters by the
// evidence file name, so category-prefixed uploads (e.g. "*oil*") can be
// exported selectively. Returns the number of files archived; zero means no
// evidence matched, which is not an error.
func ZipEvidence(zipPath string, recs []*metrics.Record, pattern string) (int, error) {
	f, err := os.Create(zipPath)
	if err != nil {
		return 0, fmt.Errorf("failed to create archive: %w", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	added := 0
	for _, rec := range recs {
		if rec.Evidence == "" {
			continue
		}
		name := filepath.Base(rec.Evidence)
		if pattern != "" {
			ok, err := doublestar.Match(pattern, name)
			if err != nil {
				zw.Close()
				return added, fmt.Errorf("bad evidence pattern %q: %w", pattern, err)
			}
			if !ok {
				continue
			}
		}
		if err := addFile(zw, rec.Evidence, name); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			zw.Close()
			return added, err
		}
		added++
	}
	if err := zw.Close(); err != nil {
		return added, fmt.Errorf("failed to finalize archive: %w", err)
	}
	return added, nil
}

func addFile(zw *zip.Writer, path, name string) error {
	src, err := os.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("failed to add %s to archive: %w", name, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to write %s to archive: %w", name, err)
	}
	return nil
}
