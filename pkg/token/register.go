package token

import (
	"strings"
	"sync"
)

// Dynamic token registration for dialect-specific keywords.
// Dialects call Register at init time; the lexer resolves registered
// keywords through Lookup.

var (
	dynamicMu    sync.RWMutex
	dynamicNames = map[TokenType]string{}
	dynamicTypes = map[string]TokenType{}
	nextDynamic  = WITH + 1
)

// Register assigns a token type to a dialect keyword. The name is
// case-insensitive; registering the same name twice returns the same type.
func Register(name string) TokenType {
	upper := strings.ToUpper(name)

	dynamicMu.Lock()
	defer dynamicMu.Unlock()

	if t, ok := dynamicTypes[upper]; ok {
		return t
	}
	t := nextDynamic
	nextDynamic++
	dynamicNames[t] = upper
	dynamicTypes[upper] = t
	return t
}

// Lookup resolves a registered dialect keyword by name.
func Lookup(name string) (TokenType, bool) {
	upper := strings.ToUpper(name)

	dynamicMu.RLock()
	defer dynamicMu.RUnlock()

	t, ok := dynamicTypes[upper]
	return t, ok
}

func getDynamicName(t TokenType) (string, bool) {
	dynamicMu.RLock()
	defer dynamicMu.RUnlock()

	name, ok := dynamicNames[t]
	return name, ok
}
