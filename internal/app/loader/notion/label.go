package notion

import (
	"strings"
	"unicode"
)

// DisplayName reduces a link-style cell like "Mohamed Hany (https://…)" to
// just the display name: everything before the first opening parenthesis,
// trimmed. Plain cells fall back to their first comma-separated part.
func DisplayName(cell string) string {
	if cell == "" {
		return ""
	}
	if i := strings.Index(cell, "("); i > 0 {
		if name := strings.TrimSpace(cell[:i]); name != "" {
			return name
		}
	}
	first, _, _ := strings.Cut(cell, ",")
	return strings.TrimSpace(first)
}

// DisplayNames splits a multi-value cell into display names. Parts are split
// on commas followed by an uppercase letter — a best-effort heuristic that
// avoids splitting inside a single compound name, with a known failure mode
// on names containing embedded commas or lowercase-starting components.
func DisplayNames(cell string) []string {
	if cell == "" {
		return nil
	}

	var names []string
	start := 0
	for i := 0; i < len(cell); i++ {
		if cell[i] != ',' {
			continue
		}
		rest := strings.TrimLeft(cell[i+1:], " ")
		if rest == "" {
			continue
		}
		if r := []rune(rest)[0]; !unicode.IsUpper(r) {
			continue
		}
		names = append(names, cell[start:i])
		start = i + 1
	}
	names = append(names, cell[start:])

	out := make([]string, 0, len(names))
	for _, part := range names {
		if name := DisplayName(strings.TrimSpace(part)); name != "" {
			out = append(out, name)
		}
	}
	return out
}
