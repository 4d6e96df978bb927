package csvfind

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// SkipReason says why the walker passed over a directory entry. The three
// values are the machine contract between the walker and its callers.
type SkipReason string

const (
	// SkipNotAFile marks directories and other non-regular entries.
	SkipNotAFile SkipReason = "not_a_file"
	// SkipNotReadable marks files the process cannot open.
	SkipNotReadable SkipReason = "not_readable"
	// SkipNotCSVFile marks files without a supported extension.
	SkipNotCSVFile SkipReason = "not_csv_file"
)

// SkippedFile records one ineligible entry met during a walk.
type SkippedFile struct {
	Path   string
	Reason SkipReason
}

// Text file extensions eligible for scanning, before any compression
// suffix is stripped.
var scanExtensions = map[string]bool{
	".csv":  true,
	".tsv":  true,
	extXLSX: true,
}

// eligible judges one path. Compression suffixes are stripped first, so
// data.csv.gz is as eligible as data.csv.
func eligible(path string) bool {
	ext := strings.ToLower(filepath.Ext(trimCompressionExt(path)))
	return scanExtensions[ext]
}

// WalkFiles walks root recursively and splits its entries into scan
// candidates and skip records. Candidates come back in walk order
// (lexical within each directory); skip reasons are judged in the order
// not_a_file, not_csv_file, not_readable.
func WalkFiles(root string) (paths []string, skipped []SkippedFile, err error) {
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		if !d.Type().IsRegular() {
			skipped = append(skipped, SkippedFile{Path: path, Reason: SkipNotAFile})
			return nil
		}
		if !eligible(path) {
			skipped = append(skipped, SkippedFile{Path: path, Reason: SkipNotCSVFile})
			return nil
		}
		f, openErr := os.Open(path)
		if openErr != nil {
			skipped = append(skipped, SkippedFile{Path: path, Reason: SkipNotReadable})
			return nil
		}
		_ = f.Close()
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return paths, skipped, nil
}
