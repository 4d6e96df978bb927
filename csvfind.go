package csvfind

import (
	"fmt"
	"os"
)

// Find scans path with the given conditions. A regular file is scanned
// directly; a directory is walked and every eligible file is scanned in
// walk order, strictly sequentially, each producing its own Result.
//
// The batch is fail-fast: an error while scanning one file aborts the
// remaining batch and is returned as-is. Callers wanting per-file
// isolation must drive SourceFile themselves.
func Find(path string, conditions []*QueryCondition, opts ...SourceOption) ([]*Result, []SkippedFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %v", ErrAccess, path, err)
	}

	if !info.IsDir() {
		result, err := findInFile(path, conditions, opts)
		if err != nil {
			return nil, nil, err
		}
		return []*Result{result}, nil, nil
	}

	paths, skipped, err := WalkFiles(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %v", ErrAccess, path, err)
	}

	results := make([]*Result, 0, len(paths))
	for _, p := range paths {
		result, err := findInFile(p, conditions, opts)
		if err != nil {
			return nil, nil, err
		}
		results = append(results, result)
	}
	return results, skipped, nil
}

func findInFile(path string, conditions []*QueryCondition, opts []SourceOption) (*Result, error) {
	src, err := OpenSource(path, opts...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = src.Close() }()

	return src.FindBy(conditions...)
}
