package emitter

import "github.com/dtsgen/dtsgen/pkg/decl"

// emitFunction renders `[export ][declare ]function NAME[GENERICS](PARAMS): RETURN;`.
// The `*` generator marker is never written — returnTypeOf carries the
// generator/async kind in the return type instead.
func emitFunction(d decl.Declaration, ctx Context) (string, bool) {
	if d.Name == "" {
		return "", false
	}
	s := exportPrefix(d) + declareKeyword(ctx) + "function " + d.Name + d.Generics +
		parenthesize(d.Parameters) + ": " + returnTypeOf(d) + ";"
	return s, true
}

// returnTypeOf applies the return-type synthesis rule: a supplied return
// type is preserved unchanged; otherwise synthesize from async/generator
// kind, falling back to void.
func returnTypeOf(d decl.Declaration) string {
	if d.ReturnType != "" {
		return d.ReturnType
	}
	switch {
	case d.IsGenerator && d.IsAsync:
		return "AsyncGenerator<any, any, any>"
	case d.IsGenerator:
		return "Generator<any, any, any>"
	case d.IsAsync:
		return "Promise<void>"
	default:
		return "void"
	}
}
