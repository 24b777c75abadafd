package extractor

import (
	"strings"

	"github.com/dtsgen/dtsgen/pkg/decl"
	"github.com/dtsgen/dtsgen/pkg/tsscan"
)

// parseFunction parses `[async] function[*] name[<T>](params)[: ret] { ... }`
// or its ambient/overload form without a body (`...: ret;`).
func parseFunction(h parsedHeader, span decl.Span) (decl.Declaration, bool) {
	rest := h.rest
	isAsync := false
	if ok, r := peelWord(rest, "async"); ok {
		isAsync = true
		rest = r
	}
	ok, rest := peelWord(rest, "function")
	if !ok {
		return decl.Declaration{}, false
	}
	rest = strings.TrimLeft(rest, " \t\r\n")
	isGenerator := false
	if strings.HasPrefix(rest, "*") {
		isGenerator = true
		rest = strings.TrimLeft(rest[1:], " \t\r\n")
	}

	name, rest := tsscan.LeadingIdentifier(rest)
	if name == "" {
		return decl.Declaration{}, false
	}
	rest = strings.TrimLeft(rest, " \t\r\n")
	generics, rest := tsscan.SplitGenerics(rest)
	rest = strings.TrimLeft(rest, " \t\r\n")
	if rest == "" || rest[0] != '(' {
		return decl.Declaration{}, false
	}
	closeParen := tsscan.MatchBracket(rest, 0)
	if closeParen < 0 {
		return decl.Declaration{}, false
	}
	paramsText := rest[1:closeParen]
	afterParams := strings.TrimLeft(rest[closeParen+1:], " \t\r\n")

	returnType := ""
	if strings.HasPrefix(afterParams, ":") {
		retAndBody := afterParams[1:]
		returnType = extractReturnType(retAndBody)
	}
	// An absent return type is left empty here; the emitter synthesizes it
	// from IsAsync/IsGenerator.

	return decl.Declaration{
		Kind:        decl.KindFunction,
		Name:        name,
		Span:        span,
		IsExported:  h.isExported,
		IsDefault:   h.isDefault,
		IsAsync:     isAsync,
		IsGenerator: isGenerator,
		Generics:    generics,
		Parameters:  parseParamList(paramsText),
		ReturnType:  strings.TrimSpace(returnType),
	}, true
}

// extractReturnType separates a return-type clause from the function body
// (or statement terminator) that follows it. A return type may itself be an
// object-type literal ("{ a: number }"), so the real body/terminator is
// found by matching the first top-level '{' and checking what comes right
// after it: another '{' means the first one was the return type. When the
// return type itself starts with that '{', a ';' or end of input after it
// means the return type was the whole thing with no body. Otherwise the
// first '{' opens the body.
func extractReturnType(s string) string {
	idx := tsscan.FirstTopLevelByte(s, '{')
	if idx < 0 {
		return stripTrailingSemicolon(s)
	}
	end := tsscan.MatchBracket(s, idx)
	if end < 0 {
		return strings.TrimSpace(s[:idx])
	}
	after := strings.TrimLeft(s[end+1:], " \t\r\n")
	if strings.HasPrefix(after, "{") {
		return strings.TrimSpace(s[:end+1])
	}
	if strings.TrimSpace(s[:idx]) == "" && (after == "" || strings.HasPrefix(after, ";")) {
		return stripTrailingSemicolon(s)
	}
	return strings.TrimSpace(s[:idx])
}

// parseParamList splits a parameter list's interior text into Parameters,
// handling rest params, optional/default markers, destructured bindings,
// and parameter-property modifiers (constructor-only; harmless elsewhere).
func parseParamList(s string) []decl.Parameter {
	var params []decl.Parameter
	for _, raw := range tsscan.SplitTopLevel(s, ",") {
		text := strings.TrimSpace(raw)
		if text == "" {
			continue
		}
		params = append(params, parseParam(text))
	}
	return params
}

func parseParam(text string) decl.Parameter {
	var p decl.Parameter

	for {
		switch {
		case hasWord(text, "public"):
			p.Modifiers |= decl.ModFlagPublic
			_, text = peelWord(text, "public")
		case hasWord(text, "private"):
			p.Modifiers |= decl.ModFlagPrivate
			_, text = peelWord(text, "private")
		case hasWord(text, "protected"):
			p.Modifiers |= decl.ModFlagProtected
			_, text = peelWord(text, "protected")
		case hasWord(text, "readonly"):
			p.Modifiers |= decl.ModFlagReadonly
			_, text = peelWord(text, "readonly")
		default:
			goto modsdone
		}
		text = strings.TrimLeft(text, " \t\r\n")
	}
modsdone:
	text = strings.TrimLeft(text, " \t\r\n")

	if strings.HasPrefix(text, "...") {
		p.IsRest = true
		text = text[3:]
	}

	if strings.HasPrefix(text, "{") || strings.HasPrefix(text, "[") {
		end := tsscan.MatchBracket(text, 0)
		if end >= 0 {
			p.BindingText = text[:end+1]
			text = text[end+1:]
		}
	} else {
		p.Name, text = tsscan.LeadingIdentifier(text)
	}

	text = strings.TrimLeft(text, " \t\r\n")
	if strings.HasPrefix(text, "?") {
		p.Optional = true
		text = text[1:]
	}
	text = strings.TrimLeft(text, " \t\r\n")
	if strings.HasPrefix(text, ":") {
		typ, initializer, hasInit := splitAssign(text[1:])
		p.Type = strings.TrimSpace(typ)
		if hasInit {
			p.HasDefault = true
			_ = initializer
		}
	} else if strings.HasPrefix(text, "=") {
		p.HasDefault = true
	}
	return p
}

func hasWord(s, word string) bool {
	ok, _ := peelWord(s, word)
	return ok
}
