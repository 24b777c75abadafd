package tsscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchBracket(t *testing.T) {
	s := "(a: string, b: Map<string, number>): void"
	end := MatchBracket(s, 0)
	assert.Equal(t, ")", string(s[end]))
	assert.Equal(t, s[:end+1], "(a: string, b: Map<string, number>)")
}

func TestMatchBracketSkipsStringsAndTemplates(t *testing.T) {
	s := `(a: "))" , b: ` + "`${f(1)})`" + `)`
	end := MatchBracket(s, 0)
	assert.Equal(t, len(s)-1, end)
}

func TestMatchAngle(t *testing.T) {
	s := "<T, U extends Map<string, T>>"
	end := MatchAngle(s, 0)
	assert.Equal(t, ">", string(s[end]))
	assert.Equal(t, s, s[:end+1])
}

func TestSplitTopLevel(t *testing.T) {
	s := "a: string, b: Array<number, string>, c: { x: 1, y: 2 }"
	parts := SplitTopLevel(s, ",")
	require := []string{"a: string", " b: Array<number, string>", " c: { x: 1, y: 2 }"}
	assert.Equal(t, require, parts)
}

func TestSplitTopLevelSkipsQuoted(t *testing.T) {
	parts := SplitTopLevel(`"a,b", c`, ",")
	assert.Equal(t, []string{`"a,b"`, " c"}, parts)
}

func TestSplitMembersSemicolonAndComma(t *testing.T) {
	s := "a: number; b: string, c(): void\nd: boolean"
	parts := SplitMembers(s)
	assert.Len(t, parts, 4)
	assert.Contains(t, parts[0], "a: number")
	assert.Contains(t, parts[3], "d: boolean")
}

func TestSplitGenerics(t *testing.T) {
	generics, rest := SplitGenerics("<T, U>(x: T): U")
	assert.Equal(t, "<T, U>", generics)
	assert.Equal(t, "(x: T): U", rest)
}

func TestSplitGenericsNone(t *testing.T) {
	generics, rest := SplitGenerics("(x: number): void")
	assert.Equal(t, "", generics)
	assert.Equal(t, "(x: number): void", rest)
}

func TestFindTopLevelWord(t *testing.T) {
	s := "Base<Extendable> implements Foo, Bar"
	idx := FindTopLevelWord(s, "implements")
	assert.Equal(t, "implements", s[idx:idx+len("implements")])
}

func TestFindTopLevelWordIgnoresInsideGenerics(t *testing.T) {
	s := "Container<implements>"
	idx := FindTopLevelWord(s, "implements")
	assert.Equal(t, -1, idx)
}

func TestLeadingIdentifier(t *testing.T) {
	ident, rest := LeadingIdentifier("  Foo<T> extends Bar")
	assert.Equal(t, "Foo", ident)
	assert.Equal(t, "<T> extends Bar", rest)
}
