package emitter

import "github.com/dtsgen/dtsgen/pkg/decl"

// emitTypeAlias renders `[export ]type NAME[GENERICS] = RHS;`. Type aliases
// never carry `declare`, in any context.
func emitTypeAlias(d decl.Declaration) (string, bool) {
	if d.Name == "" || d.RHS == "" {
		return "", false
	}
	return exportPrefix(d) + "type " + d.Name + d.Generics + " = " + d.RHS + ";", true
}
