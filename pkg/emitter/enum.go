package emitter

import "github.com/dtsgen/dtsgen/pkg/decl"

// emitEnum renders `[export ]declare [const ]enum NAME { MEMBERS }`.
func emitEnum(d decl.Declaration, ctx Context) (string, bool) {
	if d.Name == "" {
		return "", false
	}
	s := exportPrefix(d) + declareKeyword(ctx)
	if d.IsConst {
		s += "const "
	}
	s += "enum " + d.Name + " {\n"
	for i, m := range d.EnumMembers {
		s += "  " + m.Name
		if m.HasInit {
			s += " = " + m.Initializer
		}
		if i < len(d.EnumMembers)-1 {
			s += ","
		}
		s += "\n"
	}
	return s + "}", true
}
