package domain

import (
	"maps"
	"slices"
	"strings"
)

// Environ is a process environment keyed by variable name.
type Environ map[string]string

// EnvironFromList parses "KEY=VALUE" entries as returned by os.Environ.
// Entries without '=' are dropped; later entries win.
func EnvironFromList(list []string) Environ {
	env := make(Environ, len(list))
	for _, entry := range list {
		k, v, ok := strings.Cut(entry, "=")
		if ok && k != "" {
			env[k] = v
		}
	}
	return env
}

// Lookup returns the value of key and whether it is set.
func (e Environ) Lookup(key string) (string, bool) {
	v, ok := e[key]
	return v, ok
}

// Get returns the value of key, or "" when unset.
func (e Environ) Get(key string) string {
	return e[key]
}

// Keys returns the variable names in sorted order.
func (e Environ) Keys() []string {
	return slices.Sorted(maps.Keys(e))
}

// List renders the environment as sorted "KEY=VALUE" entries.
func (e Environ) List() []string {
	keys := e.Keys()
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k+"="+e[k])
	}
	return out
}

// toolVars name compilers and linkers. Values already present are never replaced.
var toolVars = map[string]struct{}{
	"CC":       {},
	"CXX":      {},
	"CPP":      {},
	"AS":       {},
	"AR":       {},
	"LD":       {},
	"RANLIB":   {},
	"OBJCOPY":  {},
	"OBJDUMP":  {},
	"STRIP":    {},
	"HOST_CC":  {},
	"HOST_CXX": {},
	"HOST_LD":  {},
	"YASM":     {},
}

// IsToolVar reports whether key names a compiler or linker.
func IsToolVar(key string) bool {
	if _, ok := toolVars[key]; ok {
		return true
	}
	return strings.HasPrefix(key, "CARGO_TARGET_") && strings.HasSuffix(key, "_LINKER")
}

// EnvBuilder accumulates the build environment on top of an inherited one.
type EnvBuilder struct {
	vars Environ
}

// NewEnvBuilder starts a builder from a copy of base.
func NewEnvBuilder(base Environ) *EnvBuilder {
	vars := make(Environ, len(base))
	maps.Copy(vars, base)
	return &EnvBuilder{vars: vars}
}

// Get returns the current value of key.
func (b *EnvBuilder) Get(key string) string {
	return b.vars[key]
}

// Has reports whether key is set.
func (b *EnvBuilder) Has(key string) bool {
	_, ok := b.vars[key]
	return ok
}

// Set assigns key. Compiler and linker variables behave like SetDefault.
func (b *EnvBuilder) Set(key, value string) {
	if IsToolVar(key) {
		b.SetDefault(key, value)
		return
	}
	b.vars[key] = value
}

// SetDefault assigns key only when it is not set yet.
func (b *EnvBuilder) SetDefault(key, value string) {
	if _, ok := b.vars[key]; !ok {
		b.vars[key] = value
	}
}

// Append adds value to key, separated by sep when key already has a value.
func (b *EnvBuilder) Append(key, value, sep string) {
	if cur := b.vars[key]; cur != "" {
		b.vars[key] = cur + sep + value
		return
	}
	b.vars[key] = value
}

// Prepend puts value in front of key, separated by sep when key already has a value.
func (b *EnvBuilder) Prepend(key, value, sep string) {
	if cur := b.vars[key]; cur != "" {
		b.vars[key] = value + sep + cur
		return
	}
	b.vars[key] = value
}

// Build returns a copy of the accumulated environment.
func (b *EnvBuilder) Build() Environ {
	out := make(Environ, len(b.vars))
	maps.Copy(out, b.vars)
	return out
}
