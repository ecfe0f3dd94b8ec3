package checker

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// CollectFiles expands the command-line targets into a list of SQL
// files. A target may be a file, a directory (searched recursively for
// .sql files) or a doublestar glob pattern. Explicit files are taken
// as-is regardless of extension. The result is sorted and deduplicated.
func CollectFiles(targets []string) ([]string, error) {
	seen := make(map[string]struct{})
	var files []string

	add := func(path string) {
		path = filepath.Clean(path)
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, target := range targets {
		info, err := os.Stat(target)
		switch {
		case err == nil && info.IsDir():
			if err := walkSQLFiles(target, add); err != nil {
				return nil, err
			}
		case err == nil:
			add(target)
		case isGlobPattern(target):
			matches, err := doublestar.FilepathGlob(target)
			if err != nil {
				return nil, fmt.Errorf("invalid pattern %q: %w", target, err)
			}
			for _, m := range matches {
				if mi, err := os.Stat(m); err == nil && !mi.IsDir() {
					add(m)
				}
			}
		default:
			return nil, fmt.Errorf("no such file or directory: %s", target)
		}
	}

	sort.Strings(files)
	return files, nil
}

func walkSQLFiles(root string, add func(string)) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".sql") {
			add(path)
		}
		return nil
	})
}

func isGlobPattern(s string) bool {
	return strings.ContainsAny(s, "*?[{")
}
