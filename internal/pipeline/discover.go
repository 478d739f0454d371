package pipeline

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/edforge/qconvert/internal/question"
)

// Discover resolves the input path to the list of JSON files to process.
// A file path yields itself; a directory is scanned recursively for *.json.
// When filterTypes is non-empty only documents containing at least one of
// those part types are kept; files that cannot be read or parsed are
// dropped by the filter rather than failing discovery, so the pipeline can
// report them in its own terms.
func Discover(path string, filterTypes []string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	var files []string
	if !info.IsDir() {
		files = []string{path}
	} else {
		err := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.EqualFold(filepath.Ext(p), ".json") {
				files = append(files, p)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	if len(filterTypes) == 0 {
		return files, nil
	}

	wanted := make(map[string]bool, len(filterTypes))
	for _, t := range filterTypes {
		wanted[strings.TrimSpace(t)] = true
	}

	var kept []string
	for _, f := range files {
		doc, err := question.LoadFile(f)
		if err != nil {
			continue
		}
		for _, t := range question.DetectPartTypes(doc) {
			if wanted[t] {
				kept = append(kept, f)
				break
			}
		}
	}
	return kept, nil
}
