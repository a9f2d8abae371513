package scripts

import (
	"slices"
	"strings"
)

// Aggregate describes one fan-out script such as "dev".
type Aggregate struct {
	Name           string   // root script key, e.g. "dev"
	Suffix         string   // script name looked up per member, e.g. "dev"
	Runner         string   // concurrent process runner, e.g. "concurrently"
	PackageManager string   // used as "{pm} run {key}"
	Lead           string   // key always run first, empty for none
	Exclude        []string // member names never included
}

// Member is an app sub-project considered for an aggregate.
type Member struct {
	Name      string
	Namespace string
}

// Build returns the aggregate command. The lead comes first, followed by
// every member whose name is not excluded and whose "{namespace}:{suffix}"
// key exists in t, in members order. Each sub-command is double-quoted.
//
// Members without that key are left out rather than added as a
// "{pm} run" of a missing script, so an app with no dev script does not
// make the whole aggregate fail at startup.
func (a Aggregate) Build(members []Member, t *Table) string {
	keys := a.Keys(members, t)
	if a.Lead != "" {
		keys = append([]string{a.Lead}, keys...)
	}

	var b strings.Builder
	b.WriteString(a.Runner)
	for _, key := range keys {
		b.WriteByte(' ')
		b.WriteString(doubleQuote(a.PackageManager + " run " + key))
	}
	return b.String()
}

// Keys returns the member keys Build would include, without the lead.
func (a Aggregate) Keys(members []Member, t *Table) []string {
	var keys []string
	for _, m := range members {
		key := m.Namespace + ":" + a.Suffix
		if slices.Contains(a.Exclude, m.Name) || !t.Has(key) || slices.Contains(keys, key) || key == a.Lead {
			continue
		}
		keys = append(keys, key)
	}
	return keys
}

// doubleQuote wraps s in double quotes, escaping the characters the shell
// still interprets inside them.
func doubleQuote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"', '\\', '$', '`':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('"')
	return b.String()
}
