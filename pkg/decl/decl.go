// Package decl holds the Declaration intermediate representation shared by
// the extractor, reference-closure pass, emitter, and assembler. Declaration
// is a tagged variant (one struct, a Kind discriminator, per-kind fields)
// rather than an inheritance hierarchy — simpler to serialize, and the IR is
// read by downstream tools (documentation renderers, the optimiser) that
// expect a flat, JSON-friendly shape.
package decl

// Span is a half-open byte range [Start, End) into a source buffer.
type Span struct {
	Start uint32
	End   uint32
}

// Text returns the verbatim substring of source covered by the span.
func (s Span) Text(source []byte) string {
	if int(s.End) > len(source) || s.Start > s.End {
		return ""
	}
	return string(source[s.Start:s.End])
}

// CommentBlock is one leading comment unit attached to a declaration: either
// a JSDoc block (`/** ... */`), a plain block comment (`/* ... */`), or a
// maximal run of line-adjacent `//` comments merged into one block.
type CommentBlock struct {
	Span Span
	Text string
}

// Kind discriminates the Declaration variant.
type Kind int

const (
	KindImport Kind = iota
	KindExport
	KindVariable
	KindFunction
	KindInterface
	KindTypeAlias
	KindClass
	KindEnum
	KindModule
	// KindExportEquals represents TypeScript's `export = expr;` form,
	// re-emitted verbatim from ExportEqualsTarget.
	KindExportEquals
	// KindExportAsNamespace represents `export as namespace Name;`, a UMD
	// global-name declaration preserved verbatim.
	KindExportAsNamespace
)

func (k Kind) String() string {
	switch k {
	case KindImport:
		return "import"
	case KindExport:
		return "export"
	case KindVariable:
		return "variable"
	case KindFunction:
		return "function"
	case KindInterface:
		return "interface"
	case KindTypeAlias:
		return "type_alias"
	case KindClass:
		return "class"
	case KindEnum:
		return "enum"
	case KindModule:
		return "module"
	case KindExportEquals:
		return "export_equals"
	case KindExportAsNamespace:
		return "export_as_namespace"
	default:
		return "unknown"
	}
}

// BindingKind distinguishes const/let/var for a variable Declaration.
type BindingKind int

const (
	BindingConst BindingKind = iota
	BindingLet
	BindingVar
)

func (b BindingKind) String() string {
	switch b {
	case BindingConst:
		return "const"
	case BindingLet:
		return "let"
	default:
		return "var"
	}
}

// ParamModifier is an access-modifier flag carried by a constructor
// parameter. Only meaningful for parameters of a class constructor: any
// parameter carrying one of these becomes a "parameter property" — it
// contributes both a field declaration and a plain constructor parameter.
type ParamModifier int

const (
	ModNone ParamModifier = iota
	ModPublic
	ModPrivate
	ModProtected
	ModReadonly
	// Combinations (e.g. `private readonly`) are stored in the
	// ParamModifiers bitset below.
)

// ParamModifiers is a small bitset of ParamModifier flags.
type ParamModifiers uint8

const (
	ModFlagPublic ParamModifiers = 1 << iota
	ModFlagPrivate
	ModFlagProtected
	ModFlagReadonly
)

func (m ParamModifiers) Has(f ParamModifiers) bool { return m&f != 0 }

// IsParameterProperty reports whether any access/readonly modifier is set.
func (m ParamModifiers) IsParameterProperty() bool { return m != 0 }

// Text renders the modifiers in canonical source order:
// public|private|protected, then readonly.
func (m ParamModifiers) Text() string {
	var out string
	switch {
	case m.Has(ModFlagPublic):
		out = "public"
	case m.Has(ModFlagPrivate):
		out = "private"
	case m.Has(ModFlagProtected):
		out = "protected"
	}
	if m.Has(ModFlagReadonly) {
		if out != "" {
			out += " readonly"
		} else {
			out = "readonly"
		}
	}
	return out
}

// Parameter is one function/method/constructor parameter.
type Parameter struct {
	Name string
	// BindingText holds the full binding pattern text for destructured
	// parameters (e.g. "{ a, b, c }"); empty for simple identifiers, which
	// use Name instead.
	BindingText string
	Type        string
	Optional    bool
	HasDefault  bool
	IsRest      bool
	Modifiers   ParamModifiers
}

// DisplayName returns the parameter's left-hand side as written (identifier
// or destructured binding pattern).
func (p Parameter) DisplayName() string {
	if p.BindingText != "" {
		return p.BindingText
	}
	return p.Name
}

// Specifier is one entry in an import/export specifier list:
// `{ name as alias }`.
type Specifier struct {
	Name   string
	Alias  string
	IsType bool
}

// MemberKind discriminates members inside an interface or class body.
type MemberKind int

const (
	MemberProperty MemberKind = iota
	MemberMethod
	MemberCallSignature
	MemberConstructSignature
	MemberConstructor
	MemberIndexSignature
)

// Member is one member of an interface or class body.
type Member struct {
	Kind MemberKind
	Name string // empty for call/construct/index signatures
	// Key holds a computed/symbol property key verbatim, e.g.
	// "[Symbol.iterator]"; set instead of Name when the member uses one.
	Key string

	IsStatic       bool
	IsAbstract     bool
	IsReadonly     bool
	IsOptional     bool
	Visibility     string // "", "private", "protected" (public is the default, omitted)
	IsGenerator    bool
	IsAsync        bool
	ParamModifiers ParamModifiers // non-zero only for a constructor parameter promoted to a field

	Generics   string
	Parameters []Parameter
	ReturnType string
	Type       string // property type, or index-signature value type

	// IndexKeyName/IndexKeyType hold `[key: string]` for MemberIndexSignature.
	IndexKeyName string
	IndexKeyType string

	LeadingComments []CommentBlock
}

// Declaration is the tagged-variant IR record for one top-level (or
// reference-closure-pulled) declaration. The common fields are populated
// for every kind; the kind-specific fields below are populated only for the
// relevant Kind and left zero otherwise.
type Declaration struct {
	Kind            Kind
	Name            string
	Span            Span
	IsExported      bool
	IsDefault       bool
	LeadingComments []CommentBlock

	// --- import, export ---
	// RawText holds the statement's original source text, verbatim and
	// terminated by ";". Import and re-export statements are emitted
	// bit-for-bit from this field rather than reconstructed from the parsed
	// fields below, which exist for downstream inspection (a tool wanting
	// "what specifiers does this import name") but are not themselves the
	// canonical emission source.
	RawText string

	// --- import ---
	ImportSource     string
	IsTypeOnly       bool
	IsSideEffect     bool
	Specifiers       []Specifier
	ImportNamespace  string // `import * as NAME`
	ImportDefault    string // local name bound by a default import
	HasDefaultImport bool
	HasNamespace     bool

	// --- export ---
	ExportSource  string // re-export source, empty for a local export
	IsExportStar  bool
	ExportDefault string // raw expression text for `export default <expr>`

	// --- export_equals ---
	ExportEqualsTarget string // raw expression text of `export = <expr>`

	// --- export_as_namespace ---
	NamespaceName string

	// --- variable ---
	BindingKind      BindingKind
	TypeAnnotation   string
	InitializerText  string
	HasTypeAnnotated bool

	// --- function ---
	IsAsync     bool
	IsGenerator bool
	Generics    string
	Parameters  []Parameter
	ReturnType  string

	// --- interface ---
	Extends []string
	Members []Member

	// --- type_alias ---
	RHS string

	// --- class ---
	IsAbstract bool
	Implements []string
	// Extends above is reused for the single superclass (0 or 1 entries).

	// --- enum ---
	IsConst     bool
	EnumMembers []EnumMember

	// --- module ---
	IsAmbientModule bool // string-literal name ⇒ ambient module; identifier ⇒ namespace
	IsGlobalAugment bool // `declare global { ... }`
	Body            []Declaration
}

// EnumMember is one `NAME[ = initializer]` entry of an enum.
type EnumMember struct {
	Name        string
	Initializer string
	HasInit     bool
}
