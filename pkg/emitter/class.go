package emitter

import (
	"strings"

	"github.com/dtsgen/dtsgen/pkg/decl"
)

// emitClass renders `[export ]declare [abstract ]class NAME[GENERICS][ extends T][ implements L] { MEMBERS }`.
func emitClass(d decl.Declaration, ctx Context, depth int) (string, bool) {
	if d.Name == "" {
		return "", false
	}
	s := exportPrefix(d) + declareKeyword(ctx)
	if d.IsAbstract {
		s += "abstract "
	}
	s += "class " + d.Name + d.Generics
	if len(d.Extends) > 0 {
		s += " extends " + d.Extends[0]
	}
	if len(d.Implements) > 0 {
		s += " implements " + strings.Join(d.Implements, ", ")
	}
	s += " {\n" + formatClassMembers(d.Members) + "}"
	return s, true
}

func formatClassMembers(members []decl.Member) string {
	var b strings.Builder
	for _, m := range members {
		if isPrivateName(m) {
			continue
		}
		for _, line := range parameterPropertyLines(m) {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteByte('\n')
		}
		line, ok := formatClassMember(m)
		if !ok {
			continue
		}
		b.WriteString("  ")
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// isPrivateName reports whether m is an ECMAScript `#`-private member,
// which never appears in a `.d.ts` surface.
func isPrivateName(m decl.Member) bool {
	return strings.HasPrefix(m.Name, "#")
}

// parameterPropertyLines renders the field members a constructor's
// parameter properties imply, emitted immediately before the constructor
// line in source order.
func parameterPropertyLines(m decl.Member) []string {
	if m.Kind != decl.MemberConstructor {
		return nil
	}
	var lines []string
	for _, p := range m.Parameters {
		if !p.Modifiers.IsParameterProperty() {
			continue
		}
		opt := ""
		if p.Optional {
			opt = "?"
		}
		lines = append(lines, p.Modifiers.Text()+" "+p.DisplayName()+opt+": "+emptyOr(p.Type, "any")+";")
	}
	return lines
}

func formatClassMember(m decl.Member) (string, bool) {
	mods := classModifiers(m)
	switch m.Kind {
	case decl.MemberConstructor:
		return "constructor" + parenthesize(stripParamModifiers(m.Parameters)) + ";", true
	case decl.MemberMethod:
		name := memberName(m)
		if name == "" {
			return "", false
		}
		return mods + name + m.Generics + parenthesize(m.Parameters) + ": " + returnTypeOfMember(m) + ";", true
	default:
		name := memberName(m)
		if name == "" {
			return "", false
		}
		opt := ""
		if m.IsOptional {
			opt = "?"
		}
		return mods + name + opt + ": " + emptyOr(m.Type, "any") + ";", true
	}
}

// returnTypeOfMember applies the same generator/async return-type synthesis
// functions get, for class methods.
func returnTypeOfMember(m decl.Member) string {
	if m.ReturnType != "" {
		return m.ReturnType
	}
	switch {
	case m.IsGenerator && m.IsAsync:
		return "AsyncGenerator<any, any, any>"
	case m.IsGenerator:
		return "Generator<any, any, any>"
	case m.IsAsync:
		return "Promise<void>"
	default:
		return "void"
	}
}

func classModifiers(m decl.Member) string {
	var b strings.Builder
	if m.IsStatic {
		b.WriteString("static ")
	}
	if m.IsAbstract {
		b.WriteString("abstract ")
	}
	if m.IsReadonly && m.Kind != decl.MemberMethod {
		b.WriteString("readonly ")
	}
	if m.Visibility != "" {
		b.WriteString(m.Visibility + " ")
	}
	return b.String()
}

// stripParamModifiers removes a constructor's parameter-property modifiers
// from its emitted parameter list — they were already split out as field
// members (they carry no access modifiers there).
func stripParamModifiers(params []decl.Parameter) []decl.Parameter {
	out := make([]decl.Parameter, len(params))
	for i, p := range params {
		p.Modifiers = 0
		out[i] = p
	}
	return out
}
