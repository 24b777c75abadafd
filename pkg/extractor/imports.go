package extractor

import (
	"strings"

	"github.com/dtsgen/dtsgen/pkg/decl"
	"github.com/dtsgen/dtsgen/pkg/tsscan"
)

// parseImport parses `import ...;` (never exported — ES imports are always
// module-local bindings). Forms handled: side-effect, default, namespace,
// named (with per-specifier `type`), and any combination of
// default+namespace or default+named, plus a statement-level `import type`.
// raw is the statement's full original text; the canonical emission is this
// text verbatim, not a reconstruction from the parsed fields — parsing is
// still done in full so the fields remain available for inspection.
func parseImport(h parsedHeader, span decl.Span, raw string) (decl.Declaration, bool) {
	body := stripTrailingSemicolon(h.rest)
	ok, rest := peelWord(body, "import")
	if !ok {
		return decl.Declaration{}, false
	}

	d := decl.Declaration{Kind: decl.KindImport, Span: span, RawText: verbatimStatementText(raw)}

	if ok2, r2 := peelWord(rest, "type"); ok2 {
		// `import type X from "m"` — but not `import type { X } from`, which
		// is statement-level too; both set IsTypeOnly at the statement.
		d.IsTypeOnly = true
		rest = r2
	}

	rest = strings.TrimLeft(rest, " \t\r\n")
	if rest == "" {
		return decl.Declaration{}, false
	}

	if rest[0] == '"' || rest[0] == '\'' {
		// Side-effect import: `import "mod";`
		d.IsSideEffect = true
		d.ImportSource = unquote(rest)
		return d, true
	}

	fromIdx := tsscan.FindTopLevelWord(rest, "from")
	if fromIdx < 0 {
		return decl.Declaration{}, false
	}
	clause := strings.TrimSpace(rest[:fromIdx])
	source := strings.TrimSpace(rest[fromIdx+len("from"):])
	d.ImportSource = unquote(source)

	for _, part := range tsscan.SplitTopLevel(clause, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		switch {
		case strings.HasPrefix(part, "*"):
			_, r := peelWord(part, "*")
			if ok3, r3 := peelWord(r, "as"); ok3 {
				ns, _ := tsscan.LeadingIdentifier(r3)
				d.ImportNamespace = ns
				d.HasNamespace = true
			}
		case strings.HasPrefix(part, "{"):
			inner := strings.TrimSuffix(strings.TrimPrefix(part, "{"), "}")
			for _, spec := range tsscan.SplitTopLevel(inner, ",") {
				spec = strings.TrimSpace(spec)
				if spec == "" {
					continue
				}
				d.Specifiers = append(d.Specifiers, parseSpecifier(spec))
			}
		default:
			ident, _ := tsscan.LeadingIdentifier(part)
			d.ImportDefault = ident
			d.HasDefaultImport = true
		}
	}

	d.Name = declImportName(d)
	return d, true
}

func declImportName(d decl.Declaration) string {
	switch {
	case d.HasDefaultImport:
		return d.ImportDefault
	case d.HasNamespace:
		return d.ImportNamespace
	case len(d.Specifiers) > 0:
		return d.Specifiers[0].Name
	default:
		return d.ImportSource
	}
}

// parseSpecifier parses one `Name`, `Name as Alias`, `type Name`, or
// `type Name as Alias` entry from an import/export named-specifier list.
func parseSpecifier(s string) decl.Specifier {
	var spec decl.Specifier
	if ok, r := peelWord(s, "type"); ok {
		spec.IsType = true
		s = r
	}
	s = strings.TrimSpace(s)
	if idx := tsscan.FindTopLevelWord(s, "as"); idx >= 0 {
		spec.Name = strings.TrimSpace(s[:idx])
		spec.Alias = strings.TrimSpace(s[idx+len("as"):])
	} else {
		spec.Name = s
	}
	return spec
}

// verbatimStatementText trims raw to its content and ensures a single
// trailing ";" — the canonical terminator for a statement whose emission is
// its original text, not a reconstruction.
func verbatimStatementText(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasSuffix(s, ";") {
		s += ";"
	}
	return s
}

func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		q := s[0]
		if (q == '"' || q == '\'' || q == '`') && s[len(s)-1] == q {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// parseExportForm handles the export sub-forms that don't reduce to
// `export <declaration>`: export default <expr>, export = <expr>,
// export * [as NS] from "m", export { ... } [from "m"], and
// export as namespace Name.
func parseExportForm(h parsedHeader, span decl.Span, raw string) (decl.Declaration, bool) {
	switch h.exportForm {
	case "default":
		body := stripTrailingSemicolon(h.rest)
		return decl.Declaration{
			Kind:          decl.KindExport,
			Span:          span,
			IsExported:    true,
			IsDefault:     true,
			ExportDefault: strings.TrimSpace(body),
			Name:          "default",
			RawText:       verbatimStatementText(raw),
		}, true
	case "equals":
		body := stripTrailingSemicolon(h.rest)
		return decl.Declaration{
			Kind:               decl.KindExportEquals,
			Span:               span,
			IsExported:         true,
			ExportEqualsTarget: strings.TrimSpace(body),
			Name:               strings.TrimSpace(body),
		}, true
	case "asNamespace":
		body := stripTrailingSemicolon(h.rest)
		name, _ := tsscan.LeadingIdentifier(body)
		return decl.Declaration{
			Kind:          decl.KindExportAsNamespace,
			Span:          span,
			IsExported:    true,
			NamespaceName: name,
			Name:          name,
		}, true
	case "star":
		body := stripTrailingSemicolon(h.rest)
		d := decl.Declaration{Kind: decl.KindExport, Span: span, IsExported: true, IsExportStar: true, RawText: verbatimStatementText(raw)}
		rest := body[1:] // drop '*'
		if ok, r := peelWord(rest, "as"); ok {
			ns, r2 := tsscan.LeadingIdentifier(r)
			d.NamespaceName = ns
			rest = r2
		}
		if idx := tsscan.FindTopLevelWord(rest, "from"); idx >= 0 {
			d.ExportSource = unquote(rest[idx+len("from"):])
		}
		d.Name = d.NamespaceName
		return d, true
	case "named":
		body := stripTrailingSemicolon(h.rest)
		closeIdx := tsscan.MatchBracket(body, 0)
		if closeIdx < 0 {
			return decl.Declaration{}, false
		}
		inner := body[1:closeIdx]
		remainder := strings.TrimSpace(body[closeIdx+1:])
		d := decl.Declaration{Kind: decl.KindExport, Span: span, IsExported: true, RawText: verbatimStatementText(raw)}
		for _, spec := range tsscan.SplitTopLevel(inner, ",") {
			spec = strings.TrimSpace(spec)
			if spec == "" {
				continue
			}
			d.Specifiers = append(d.Specifiers, parseSpecifier(spec))
		}
		if ok, r := peelWord(remainder, "from"); ok {
			d.ExportSource = unquote(r)
		}
		if len(d.Specifiers) > 0 {
			d.Name = d.Specifiers[0].Name
		}
		return d, true
	}
	return decl.Declaration{}, false
}
