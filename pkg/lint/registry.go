package lint

import (
	"fmt"
	"sort"
	"sync"
)

var (
	rulesMu sync.RWMutex
	rules   = make(map[string]RuleDef)
)

// Register adds a rule to the global registry. Called by rule definitions
// in their init() functions; duplicate ids are a programming error.
func Register(def RuleDef) {
	rulesMu.Lock()
	defer rulesMu.Unlock()
	if _, ok := rules[def.ID]; ok {
		panic(fmt.Sprintf("lint: duplicate rule id %q", def.ID))
	}
	rules[def.ID] = def
}

// All returns all registered rules sorted by id.
func All() []RuleDef {
	rulesMu.RLock()
	defer rulesMu.RUnlock()
	defs := make([]RuleDef, 0, len(rules))
	for _, def := range rules {
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].ID < defs[j].ID })
	return defs
}

// Get returns a rule by id.
func Get(id string) (RuleDef, bool) {
	rulesMu.RLock()
	defer rulesMu.RUnlock()
	def, ok := rules[id]
	return def, ok
}
