package syntax

import (
	"fmt"
	"path/filepath"
	"sync"
)

// The registry holds every Language activated so far. Registration happens
// once per language; opening more files of the same type finds the existing
// definition and leaves the tables untouched.
var (
	registryMu sync.Mutex
	registered []*Language
	byName     = make(map[string]*Language)
)

// Register activates a highlighting definition. If a language with the same
// name was registered before, the previous definition is returned unchanged:
// registering is idempotent and never duplicates rule or link tables.
//
// A definition whose rules use a kind with no entry in Links is a
// programming error and panics.
func Register(lang *Language) *Language {
	registryMu.Lock()
	defer registryMu.Unlock()

	if prior, ok := byName[lang.Name]; ok {
		return prior
	}

	for _, rule := range lang.Rules {
		if _, ok := lang.Links[rule.Kind]; !ok {
			panic(fmt.Sprintf("syntax: language %q links no group for kind %v", lang.Name, rule.Kind))
		}
		for _, special := range rule.Specials {
			if lang.rule(special) == nil {
				panic(fmt.Sprintf("syntax: language %q has no contained rule for kind %v", lang.Name, special))
			}
		}
	}

	byName[lang.Name] = lang
	registered = append(registered, lang)
	return lang
}

// Lookup returns the registered language with the given name, or nil. This
// is how the viewer reports which highlighting scheme is active.
func Lookup(name string) *Language {
	registryMu.Lock()
	defer registryMu.Unlock()
	return byName[name]
}

// ForFile resolves a registered language from a file name by extension.
// Returns nil when no registered language claims the extension; the caller
// renders the file unstyled.
func ForFile(path string) *Language {
	ext := filepath.Ext(path)
	registryMu.Lock()
	defer registryMu.Unlock()
	for _, lang := range registered {
		for _, ft := range lang.Filetypes {
			if ft == ext {
				return lang
			}
		}
	}
	return nil
}
