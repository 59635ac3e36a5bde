package catalog

import (
	"sort"
	"strings"
)

// BuildFQN joins name parts with dots, quoting parts that contain a dot. Parts must not
// contain double quotes; see ValidName.
func BuildFQN(parts ...string) string {
	quoted := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.Contains(p, ".") {
			p = `"` + p + `"`
		}
		quoted = append(quoted, p)
	}
	return strings.Join(quoted, ".")
}

// ValidName reports whether name can be a part of a fully-qualified name.
func ValidName(name string) bool {
	return name != "" && !strings.Contains(name, `"`)
}

// SplitFQN splits on dots outside double quotes and strips the quotes.
func SplitFQN(fqn string) []string {
	if fqn == "" {
		return nil
	}
	var (
		parts   []string
		b       strings.Builder
		inQuote bool
	)
	for _, r := range fqn {
		switch {
		case r == '"':
			inQuote = !inQuote
		case r == '.' && !inQuote:
			parts = append(parts, b.String())
			b.Reset()
		default:
			b.WriteRune(r)
		}
	}
	return append(parts, b.String())
}

// FQNParts returns fqn, every parent prefix and every child suffix, plus extra inputs,
// deduplicated and sorted.
func FQNParts(fqn string, extra ...string) []string {
	set := map[string]struct{}{}
	add := func(s string) {
		if s != "" {
			set[s] = struct{}{}
		}
	}
	add(fqn)
	parts := SplitFQN(fqn)
	for i := 1; i < len(parts); i++ {
		add(BuildFQN(parts[:i]...))
		add(BuildFQN(parts[i:]...))
	}
	for _, e := range extra {
		add(e)
	}
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
