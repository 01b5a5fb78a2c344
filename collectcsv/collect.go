// Package collectcsv flattens and removes the CSV output of simulation runs.
package collectcsv

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// Collect copies every .csv file below each folder under root into out,
// renamed "<folder>_<base>" so files from different runs cannot collide on
// name alone. Files with the same prefixed name overwrite each other
// (last write wins). Returns the number of files copied.
func Collect(root, out string) (int, error) {
	if err := os.MkdirAll(out, 0o755); err != nil {
		return 0, fmt.Errorf("create output directory %s: %w", out, err)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return 0, fmt.Errorf("read root directory %s: %w", root, err)
	}

	copied := 0
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		folder := entry.Name()

		err := filepath.WalkDir(filepath.Join(root, folder), func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !strings.HasSuffix(d.Name(), ".csv") {
				return nil
			}

			target := filepath.Join(out, folder+"_"+d.Name())
			if err := copyFile(path, target); err != nil {
				return err
			}
			logrus.Infof("Copied: %s -> %s", path, target)
			copied++
			return nil
		})
		if err != nil {
			return copied, fmt.Errorf("collect from %s: %w", folder, err)
		}
	}

	return copied, nil
}

// Clean deletes every .csv file below each folder under root. With dryRun
// set, files are only listed, not removed. Returns the number of files
// deleted (or that would have been).
func Clean(root string, dryRun bool) (int, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return 0, fmt.Errorf("read root directory %s: %w", root, err)
	}

	deleted := 0
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		err := filepath.WalkDir(filepath.Join(root, entry.Name()), func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !strings.HasSuffix(d.Name(), ".csv") {
				return nil
			}

			if dryRun {
				logrus.Infof("Would delete: %s", path)
				deleted++
				return nil
			}
			if err := os.Remove(path); err != nil {
				return err
			}
			logrus.Infof("Deleted: %s", path)
			deleted++
			return nil
		})
		if err != nil {
			return deleted, fmt.Errorf("clean %s: %w", entry.Name(), err)
		}
	}

	return deleted, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copy %s: %w", src, err)
	}
	return out.Close()
}
