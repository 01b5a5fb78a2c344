package stats

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// FailurePolicy decides what a malformed CSV file does to the rest of a run.
type FailurePolicy string

const (
	// FailAbort stops the whole run on the first malformed file.
	FailAbort FailurePolicy = "abort"
	// FailSkip logs the malformed file at WARN and keeps going.
	FailSkip FailurePolicy = "skip"
)

// validFailurePolicies maps accepted policy strings.
var validFailurePolicies = map[FailurePolicy]bool{
	FailAbort: true,
	FailSkip:  true,
	"":        true, // empty defaults to abort
}

// IsValidFailurePolicy returns true if the given policy string is recognized.
func IsValidFailurePolicy(policy FailurePolicy) bool {
	return validFailurePolicies[policy]
}

// RatePair holds the normalized cache access rates for one (folder, file)
// pair. Hit and Miss each lie in [0,1] and sum to 1.
type RatePair struct {
	Hit  float64
	Miss float64
}

// RateTable maps CSV filename → folder name → RatePair. A (folder, filename)
// entry exists only when the file recorded at least one hit or miss.
type RateTable map[string]map[string]RatePair

// Folders returns the sorted folder names that have an entry for filename.
func (t RateTable) Folders(filename string) []string {
	byFolder := t[filename]
	folders := make([]string, 0, len(byFolder))
	for folder := range byFolder {
		folders = append(folders, folder)
	}
	sort.Strings(folders)
	return folders
}

// Filenames returns the sorted distinct CSV filenames in the table.
func (t RateTable) Filenames() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Aggregate walks every immediate subdirectory of root, sums the hit and
// miss counts of each CSV file below it (any depth), and returns the
// resulting rate table. Files whose hit+miss total is zero contribute no
// entry. Regular files at the root level are skipped.
//
// Per-file failures (unreadable file, missing column, non-numeric value)
// follow the given policy; errors enumerating root itself always abort.
func Aggregate(root string, policy FailurePolicy) (RateTable, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read root directory %s: %w", root, err)
	}

	table := make(RateTable)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		folder := entry.Name()

		files, err := findCSVFiles(filepath.Join(root, folder))
		if err != nil {
			return nil, err
		}

		for _, path := range files {
			pair, ok, err := rateFromFile(path)
			if err != nil {
				if policy == FailSkip {
					logrus.Warnf("Skipping %s: %v", path, err)
					continue
				}
				return nil, err
			}
			if !ok {
				logrus.Debugf("No hit/miss samples in %s, omitting", path)
				continue
			}

			name := filepath.Base(path)
			if table[name] == nil {
				table[name] = make(map[string]RatePair)
			}
			table[name][folder] = pair
		}
	}

	return table, nil
}

// findCSVFiles recursively lists the .csv files below dir.
func findCSVFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".csv") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", dir, err)
	}
	return files, nil
}

// rateFromFile folds a file's samples into hit/miss sums and normalizes.
// ok is false when the file recorded no hits and no misses.
func rateFromFile(path string) (pair RatePair, ok bool, err error) {
	file, err := os.Open(path)
	if err != nil {
		return RatePair{}, false, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	samples, err := ReadSamples(file)
	if err != nil {
		return RatePair{}, false, fmt.Errorf("load %s: %w", path, err)
	}

	var totalHit, totalMiss float64
	for _, s := range samples {
		switch s.What {
		case "hit":
			totalHit += s.Value
		case "miss":
			totalMiss += s.Value
		}
		// Other categories (mshr-hit, ...) are not counted.
	}

	total := totalHit + totalMiss
	if total == 0 {
		return RatePair{}, false, nil
	}

	return RatePair{Hit: totalHit / total, Miss: totalMiss / total}, true, nil
}
