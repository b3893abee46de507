// Package treetext parses the textual output of directory-listing
// commands that draw hierarchy with box-drawing or ASCII connector
// glyphs (the `tree` family). It converts individual lines into
// depth/name items; assembling those items into a tree is handled by
// the treeast package.
package treetext

import "strings"

// unitWidth is the number of characters one indentation level occupies
// in well-formed listing output ("│   ", "    ", "├── ", "└── ").
const unitWidth = 4

// Item is the result of parsing a single listing line: the inferred
// indentation depth and the bare entry name with all connector glyphs
// stripped.
type Item struct {
	Depth int
	Name  string
}

// connectorPrefixes are the branch prefixes stripped from the start of
// a name, longest forms first so 4-character variants win over the
// compact 2-character ones.
//
//nolint:gochecknoglobals // Read-only lookup table.
var connectorPrefixes = []string{
	"├── ", "└── ",
	"├──", "└──",
	"+---", "\\---",
	"└─ ", "├─ ",
	"└─", "├─",
}

// isConnector reports whether r marks the start of a branch ("this
// entry begins here").
func isConnector(r rune) bool {
	return r == '├' || r == '└' || r == '+' || r == '\\'
}

// isContinuation reports whether r is a vertical continuation glyph
// (an ancestor branch still open at this column).
func isContinuation(r rune) bool {
	return r == '│' || r == '|'
}

// isSpacer reports whether r can appear inside an indentation unit.
func isSpacer(r rune) bool {
	return r == ' ' || isContinuation(r)
}

// ParseLine parses one listing line into an Item.
//
// Depth is inferred by consuming fixed-width indentation units from the
// left. A unit beginning with a connector terminates the scan without
// counting; a unit beginning with a continuation glyph or space counts
// one level. Units may be internally truncated by malformed or
// compressed output: a second continuation glyph inside a unit opens a
// new level early, and an embedded connector or name character ends the
// scan at that position. Malformed indentation therefore degrades to a
// best-effort depth, never an error.
//
// The second return value is false for pure spacer lines (empty
// remainder or a lone continuation glyph); such lines carry no entry.
func ParseLine(line string) (Item, bool) {
	runes := []rune(line)
	total := len(runes)

	depth := 0
	idx := 0

	for idx+unitWidth <= total {
		unit := runes[idx : idx+unitWidth]

		// A connector at the unit boundary means the name starts here;
		// its own level was counted by the preceding units.
		if isConnector(unit[0]) {
			break
		}
		if !isSpacer(unit[0]) {
			// Neither spacer nor connector: the name starts here.
			break
		}

		advance := unitWidth
		nameFollows := false

		for pos, r := range unit {
			if isSpacer(r) {
				if pos > 0 && isContinuation(r) {
					// Compressed indentation: a second continuation
					// glyph before the unit boundary opens a new level.
					// Count this level, resume scanning at the glyph.
					advance = pos
					break
				}
				continue
			}
			// Embedded connector or name character: count the level and
			// stop scanning, the name begins at this position.
			advance = pos
			nameFollows = true
			break
		}

		depth++
		idx += advance

		if nameFollows {
			break
		}
	}

	rest := string(runes[idx:])
	return splitName(rest, depth)
}

// splitName classifies the post-indentation remainder and strips the
// connector prefix from the name.
func splitName(rest string, depth int) (Item, bool) {
	trimmed := strings.TrimSpace(rest)
	if trimmed == "" || trimmed == "│" || trimmed == "|" {
		return Item{Depth: depth}, false
	}

	name := rest
	stripped := false
	for _, prefix := range connectorPrefixes {
		if strings.HasPrefix(name, prefix) {
			name = name[len(prefix):]
			stripped = true
			break
		}
	}

	if !stripped {
		// A remainder that still opens with a continuation glyph is a
		// spacer the unit loop could not consume (short trailing chunk).
		if strings.HasPrefix(name, "│") || strings.HasPrefix(name, "|") {
			return Item{Depth: depth}, false
		}
		// Tolerate remnants of a mangled connector.
		if strings.HasPrefix(name, "─ ") {
			name = strings.TrimPrefix(name, "─ ")
		} else if strings.HasPrefix(name, "─") {
			name = strings.TrimPrefix(name, "─")
		}
	}

	return Item{Depth: depth, Name: name}, true
}
