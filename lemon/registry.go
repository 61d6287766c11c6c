package lemon

import (
	"fmt"
	"sort"
)

// ident is the identity of one argument definition: a flag, a key, or both.
// A zero flag or an empty key means "not set".
type ident struct {
	flag rune
	key  string
}

func (id ident) hasFlag() bool { return id.flag != 0 }
func (id ident) hasKey() bool  { return id.key != "" }

func (id ident) matches(token string) bool {
	return (id.hasFlag() && token == flagToken(id.flag)) ||
		(id.hasKey() && token == keyToken(id.key))
}

// label names the definition in error messages: "--key (-f)", "--key" or "-f".
func (id ident) label() string {
	switch {
	case id.hasKey() && id.hasFlag():
		return keyToken(id.key) + " (" + flagToken(id.flag) + ")"
	case id.hasKey():
		return keyToken(id.key)
	case id.hasFlag():
		return flagToken(id.flag)
	default:
		return ""
	}
}

// helpLabel is the first column of the help table: "--key or -f".
func (id ident) helpLabel() string {
	switch {
	case id.hasKey() && id.hasFlag():
		return keyToken(id.key) + " or " + flagToken(id.flag)
	case id.hasKey():
		return keyToken(id.key)
	default:
		return flagToken(id.flag)
	}
}

// uniqueRegistry tracks every flag and key handed out in one session.
// It only grows.
type uniqueRegistry struct {
	flags map[rune]struct{}
	keys  map[string]struct{}
}

func newUniqueRegistry() *uniqueRegistry {
	r := &uniqueRegistry{
		flags: make(map[rune]struct{}),
		keys:  make(map[string]struct{}),
	}
	r.flags[helpFlag] = struct{}{}
	r.keys[helpKey] = struct{}{}
	return r
}

// register claims the flag and key of id. Nothing is recorded when either
// one is already taken.
func (r *uniqueRegistry) register(id ident) error {
	if id.hasFlag() {
		if _, taken := r.flags[id.flag]; taken {
			return NewParseError(ErrorTypeDuplicateDefinition,
				fmt.Sprintf("duplicate flag: %s", flagToken(id.flag))).WithLabel(id.label())
		}
	}
	if id.hasKey() {
		if _, taken := r.keys[id.key]; taken {
			return NewParseError(ErrorTypeDuplicateDefinition,
				fmt.Sprintf("duplicate key: %s", keyToken(id.key))).WithLabel(id.label())
		}
	}
	if id.hasFlag() {
		r.flags[id.flag] = struct{}{}
	}
	if id.hasKey() {
		r.keys[id.key] = struct{}{}
	}
	return nil
}

// keyNames returns registered keys, reserved ones included, for suggestions.
func (r *uniqueRegistry) keyNames() []string {
	names := make([]string, 0, len(r.keys))
	for k := range r.keys {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// DocEntry is the help-table metadata captured when a definition is parsed.
type DocEntry struct {
	Flag        rune
	Key         string
	Description string
	Default     string // rendered default value or list
	HasDefault  bool
	Options     string // rendered allowed options, "" when unrestricted
	Required    bool
}

func (d DocEntry) ident() ident { return ident{flag: d.Flag, key: d.Key} }

// docRegistry keeps entries in definition order.
type docRegistry struct {
	entries []DocEntry
}

func (r *docRegistry) add(entry DocEntry) {
	r.entries = append(r.entries, entry)
}

func (r *docRegistry) all() []DocEntry {
	out := make([]DocEntry, len(r.entries))
	copy(out, r.entries)
	return out
}
