package emitter

import (
	"strings"

	"github.com/dtsgen/dtsgen/pkg/decl"
)

// emitInterface renders `[export ]interface NAME[GENERICS][ extends LIST] { MEMBERS }`.
// Interfaces never carry `declare`, in any context.
func emitInterface(d decl.Declaration, depth int) (string, bool) {
	if d.Name == "" {
		return "", false
	}
	s := exportPrefix(d) + "interface " + d.Name + d.Generics
	if len(d.Extends) > 0 {
		s += " extends " + strings.Join(d.Extends, ", ")
	}
	s += " {\n" + formatInterfaceMembers(d.Members) + "}"
	return s, true
}

func formatInterfaceMembers(members []decl.Member) string {
	var b strings.Builder
	for _, m := range members {
		line, ok := formatInterfaceMember(m)
		if !ok {
			continue
		}
		b.WriteString("  ")
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

func formatInterfaceMember(m decl.Member) (string, bool) {
	switch m.Kind {
	case decl.MemberCallSignature:
		return m.Generics + parenthesize(m.Parameters) + ": " + emptyOr(m.ReturnType, "void") + ";", true
	case decl.MemberConstructSignature:
		return "new " + m.Generics + parenthesize(m.Parameters) + ": " + emptyOr(m.ReturnType, "void") + ";", true
	case decl.MemberIndexSignature:
		return "[" + m.IndexKeyName + ": " + m.IndexKeyType + "]: " + m.Type + ";", true
	case decl.MemberMethod:
		name := memberName(m)
		if name == "" {
			return "", false
		}
		opt := ""
		if m.IsOptional {
			opt = "?"
		}
		return name + opt + m.Generics + parenthesize(m.Parameters) + ": " + emptyOr(m.ReturnType, "void") + ";", true
	default: // property
		name := memberName(m)
		if name == "" {
			return "", false
		}
		opt := ""
		if m.IsOptional {
			opt = "?"
		}
		ro := ""
		if m.IsReadonly {
			ro = "readonly "
		}
		return ro + name + opt + ": " + emptyOr(m.Type, "any") + ";", true
	}
}

func memberName(m decl.Member) string {
	if m.Key != "" {
		return m.Key
	}
	return m.Name
}

func emptyOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
