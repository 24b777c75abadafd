package extractor

import "strings"

// parsedHeader is the result of peeling export/default/declare keywords off
// a top-level statement's raw text, leaving rest positioned at the real
// declaration keyword (function/class/const/...).
type parsedHeader struct {
	isExported bool
	isDefault  bool
	isAmbient  bool // explicit leading `declare`
	rest       string
	// exportForm is set only for the export sub-forms that don't reduce to
	// an ordinary declaration: "default", "equals", "star", "named",
	// "asNamespace". Empty for `export <decl>` and non-export statements.
	exportForm string
}

func isIdentByte(b byte) bool {
	return b == '_' || b == '$' || (b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// peelWord strips a leading keyword from s (after leading whitespace) if it
// is present as a whole word, returning the remainder.
func peelWord(s, word string) (bool, string) {
	t := strings.TrimLeft(s, " \t\r\n")
	if !strings.HasPrefix(t, word) {
		return false, s
	}
	after := t[len(word):]
	if after != "" && isIdentByte(after[0]) {
		return false, s
	}
	return true, after
}

func parseHeader(raw string) parsedHeader {
	var h parsedHeader
	rest := raw

	if ok, r := peelWord(rest, "export"); ok {
		h.isExported = true
		rest = r
		trimmed := strings.TrimLeft(rest, " \t\r\n")
		switch {
		case strings.HasPrefix(trimmed, "default"):
			h.exportForm = "default"
			if ok2, r2 := peelWord(trimmed, "default"); ok2 {
				rest = r2
			}
		case strings.HasPrefix(trimmed, "="):
			h.exportForm = "equals"
			rest = trimmed[1:]
		case strings.HasPrefix(trimmed, "*"):
			h.exportForm = "star"
			rest = trimmed
		case strings.HasPrefix(trimmed, "{"):
			h.exportForm = "named"
			rest = trimmed
		case strings.HasPrefix(trimmed, "as"):
			if ok2, r2 := peelWord(trimmed, "as"); ok2 {
				if ok3, r3 := peelWord(r2, "namespace"); ok3 {
					h.exportForm = "asNamespace"
					rest = r3
				} else {
					rest = trimmed
				}
			} else {
				rest = trimmed
			}
		default:
			rest = trimmed
		}
	}

	if ok, r := peelWord(rest, "declare"); ok {
		h.isAmbient = true
		rest = r
	}

	h.rest = strings.TrimLeft(rest, " \t\r\n")
	return h
}

// leadKeyword returns the first whole word of s, used to dispatch on a
// declaration's introducing keyword (function/class/const/...).
func leadKeyword(s string) string {
	i := 0
	for i < len(s) && isIdentByte(s[i]) {
		i++
	}
	return s[:i]
}

// stripTrailingSemicolon trims one optional trailing ';' plus surrounding
// whitespace — statements that are terminated this way in source (variable,
// type-alias, import/export, export=) carry it in their raw text.
func stripTrailingSemicolon(s string) string {
	s = strings.TrimRight(s, " \t\r\n")
	s = strings.TrimSuffix(s, ";")
	return strings.TrimRight(s, " \t\r\n")
}
