package dialect

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

var (
	dialectsMu sync.RWMutex
	dialects   = make(map[string]*Dialect)
)

// UnsupportedError is returned when a dialect name is not registered.
// It is a configuration error and is detected before any file is processed.
type UnsupportedError struct {
	Name string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("unsupported dialect %q (available: %s)", e.Name, strings.Join(List(), ", "))
}

// Register adds a dialect to the global registry under its name and all
// aliases. Called by dialect definitions in their init() functions.
func Register(d *Dialect) {
	dialectsMu.Lock()
	defer dialectsMu.Unlock()
	dialects[d.Name] = d
	for _, alias := range d.Aliases {
		dialects[strings.ToLower(alias)] = d
	}
}

// Get returns a dialect by name or alias (case-insensitive).
func Get(name string) (*Dialect, error) {
	dialectsMu.RLock()
	defer dialectsMu.RUnlock()
	d, ok := dialects[strings.ToLower(name)]
	if !ok {
		return nil, &UnsupportedError{Name: name}
	}
	return d, nil
}

// List returns all canonical registered dialect names, sorted.
// Aliases are not included.
func List() []string {
	dialectsMu.RLock()
	defer dialectsMu.RUnlock()
	seen := make(map[string]struct{}, len(dialects))
	names := make([]string, 0, len(dialects))
	for _, d := range dialects {
		if _, ok := seen[d.Name]; ok {
			continue
		}
		seen[d.Name] = struct{}{}
		names = append(names, d.Name)
	}
	sort.Strings(names)
	return names
}
