// Package extractor turns a parsed TypeScript source (pkg/parser.SourceFile)
// into the Declaration IR (pkg/decl). It deliberately does not lean on
// tree-sitter-typescript's internal grammar node/field names beyond the
// generic, grammar-agnostic surface every tree-sitter language exposes
// (child iteration, comment nodes, byte spans, ERROR/MISSING flags): the
// top-level segmentation tree-sitter gives us is already byte-accurate, so
// classifying *which kind* of declaration each top-level statement is can be
// done on its own raw text with the tsscan keyword/bracket primitives,
// a "skip-with-brace-depth" scan for everything past the statement
// boundary.
package extractor

import (
	"strings"

	ts "github.com/tree-sitter/go-tree-sitter"

	"github.com/dtsgen/dtsgen/pkg/decl"
	"github.com/dtsgen/dtsgen/pkg/parser"
	"github.com/dtsgen/dtsgen/pkg/tsscan"
)

// Options controls extraction behavior.
type Options struct {
	// KeepComments, when true, attaches leading comment trivia to
	// declarations and members. When false, LeadingComments is always nil.
	KeepComments bool
}

// Warning is a recoverable anomaly surfaced instead of failing extraction
// outright: a parse-recovery point, or a top-level statement this extractor
// could not classify.
type Warning struct {
	Span    decl.Span
	Message string
}

// Extract walks sf's top-level statements and returns the Declarations for
// each statement it recognizes: one per statement, except a variable
// statement, which yields one per binding (sharing the statement's span)
// when exported and none otherwise. Declarations are returned in source
// order. Other non-exported declarations are still returned — filtering by
// export/closure reachability is the caller's job (pkg/core, via the
// closure pass).
func Extract(sf *parser.SourceFile, opts Options) ([]decl.Declaration, []Warning) {
	var warnings []Warning
	for _, pe := range sf.ParseErrors() {
		warnings = append(warnings, Warning{
			Span:    decl.Span{Start: pe.StartByte, End: pe.EndByte},
			Message: pe.Message,
		})
	}

	root := sf.Root()
	var decls []decl.Declaration
	n := root.ChildCount()
	for i := uint(0); i < n; i++ {
		child := root.Child(i)
		if child == nil || isCommentNode(child) {
			continue
		}
		raw := sf.Text(child.StartByte(), child.EndByte())
		if strings.TrimSpace(raw) == "" {
			continue
		}

		leading := collectLeadingComments(sf.Source, root, i, opts.KeepComments)

		group, ok := classify(sf, *child, raw)
		if !ok {
			warnings = append(warnings, Warning{
				Span:    decl.Span{Start: child.StartByte(), End: child.EndByte()},
				Message: "unrecognized top-level statement: " + firstLine(raw),
			})
			continue
		}
		for i := range group {
			group[i].LeadingComments = leading
		}
		decls = append(decls, group...)
	}
	return decls, warnings
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		s = s[:idx]
	}
	if len(s) > 80 {
		s = s[:80] + "..."
	}
	return strings.TrimSpace(s)
}

func isCommentNode(n *ts.Node) bool {
	return n.GrammarName() == "comment"
}

// collectLeadingComments gathers the run of comment nodes directly
// preceding child index idx among root's children, merging adjacent
// comments (no blank line between them) into single CommentBlocks, and
// discarding the whole run if a blank line separates the last comment from
// the declaration itself — a blank line breaks trivia attachment per the
// doc-comment convention every TypeScript tool follows.
func collectLeadingComments(source []byte, root ts.Node, idx uint, keep bool) []decl.CommentBlock {
	if !keep {
		return nil
	}
	var comments []ts.Node
	for j := int(idx) - 1; j >= 0; j-- {
		c := root.Child(uint(j))
		if c == nil || !isCommentNode(c) {
			break
		}
		comments = append(comments, *c)
	}
	if len(comments) == 0 {
		return nil
	}
	for l, r := 0, len(comments)-1; l < r; l, r = l+1, r-1 {
		comments[l], comments[r] = comments[r], comments[l]
	}

	declStart := root.Child(idx).StartByte()
	lastEnd := comments[len(comments)-1].EndByte()
	if hasBlankLine(source, lastEnd, declStart) {
		return nil
	}

	var blocks []decl.CommentBlock
	i := 0
	for i < len(comments) {
		start := comments[i].StartByte()
		end := comments[i].EndByte()
		j := i + 1
		for j < len(comments) && !hasBlankLine(source, comments[j-1].EndByte(), comments[j].StartByte()) {
			end = comments[j].EndByte()
			j++
		}
		blocks = append(blocks, decl.CommentBlock{
			Span: decl.Span{Start: start, End: end},
			Text: string(source[start:end]),
		})
		i = j
	}
	return blocks
}

// hasBlankLine reports whether the gap source[from:to] contains a blank
// line (two or more newlines) or any non-whitespace content.
func hasBlankLine(source []byte, from, to uint32) bool {
	if to > uint32(len(source)) || from > to {
		return true
	}
	gap := string(source[from:to])
	if strings.TrimSpace(gap) != "" {
		return true
	}
	return strings.Count(gap, "\n") > 1
}

func one(d decl.Declaration, ok bool) ([]decl.Declaration, bool) {
	if !ok {
		return nil, false
	}
	return []decl.Declaration{d}, true
}

// classify dispatches one top-level statement's raw text (backed by a real
// tree-sitter node) to the per-kind parser.
func classify(sf *parser.SourceFile, node ts.Node, raw string) ([]decl.Declaration, bool) {
	span := decl.Span{Start: node.StartByte(), End: node.EndByte()}
	return classifyText(raw, span)
}

// classifyText is the text-only declaration classifier: given a statement's
// raw text and the absolute span it occupies in the source, it returns the
// Declaration(s) that statement produces. It needs no tree-sitter node,
// which lets module/namespace/global bodies recurse into it for their own
// nested statements (pkg/tsscan.SplitStatements finds those statement
// boundaries in plain text).
func classifyText(raw string, span decl.Span) ([]decl.Declaration, bool) {
	h := parseHeader(raw)

	if h.isExported && h.exportForm != "" {
		return one(parseExportForm(h, span, raw))
	}

	kw := leadKeyword(h.rest)
	switch kw {
	case "import":
		if h.isExported {
			break
		}
		return one(parseImport(h, span, raw))
	case "function", "async":
		return one(parseFunction(h, span))
	case "class", "abstract":
		return one(parseClass(h, span))
	case "interface":
		return one(parseInterface(h, span))
	case "type":
		return one(parseTypeAlias(h, span))
	case "enum":
		return one(parseEnum(h, span, false))
	case "const":
		if strings.HasPrefix(strings.TrimLeft(h.rest[len("const"):], " \t"), "enum") {
			return one(parseEnum(h, span, true))
		}
		return parseVariableGroup(h, span, decl.BindingConst)
	case "let":
		return parseVariableGroup(h, span, decl.BindingLet)
	case "var":
		return parseVariableGroup(h, span, decl.BindingVar)
	case "namespace", "module":
		return one(parseModule(h, span, raw))
	case "global":
		if h.isAmbient {
			return one(parseGlobalAugment(h, span, raw))
		}
	}
	return nil, false
}

// subDeclarations recurses classifyText over a module/namespace/global
// body's statements, translating each statement's offset within body into
// an absolute span using bodyAbsStart (body's own absolute start byte).
func subDeclarations(body string, bodyAbsStart uint32) []decl.Declaration {
	var out []decl.Declaration
	for _, seg := range tsscan.SplitStatements(body) {
		start := bodyAbsStart + uint32(seg.Start)
		end := start + uint32(len(seg.Text))
		group, ok := classifyText(seg.Text, decl.Span{Start: start, End: end})
		if ok {
			out = append(out, group...)
		}
	}
	return out
}
