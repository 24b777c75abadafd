package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtsgen/dtsgen/pkg/decl"
)

func TestExtractEmitRoundTrip(t *testing.T) {
	src := []byte(`
export interface Point {
  x: number;
  y: number;
}

export function origin(): Point {
  return { x: 0, y: 0 };
}

interface Internal {
  secret: string;
}

export function reveal(): Internal {
  return { secret: "x" };
}
`)

	res, err := Extract(src, "sample.ts", Options{})
	require.NoError(t, err)
	assert.Empty(t, res.Warnings)

	text, warnings, err := Emit(res.Declarations, Options{})
	require.NoError(t, err)
	assert.Empty(t, warnings)

	assert.Contains(t, text, "export interface Point")
	assert.Contains(t, text, "export declare function origin(): Point;")
	assert.Contains(t, text, "export declare function reveal(): Internal;")
	// Internal is non-exported but reachable from reveal's return type, so the
	// reference closure must have pulled it in.
	assert.Contains(t, text, "interface Internal")
	assert.NotContains(t, text, "export interface Internal")
}

func TestExtractEmitIsIdempotent(t *testing.T) {
	src := []byte(`
export type ID = string | number;

export interface User {
  id: ID;
  name: string;
}

export class Repo {
  find(id: ID): User {
    throw new Error("not implemented");
  }
}
`)

	res1, err := Extract(src, "sample.ts", Options{})
	require.NoError(t, err)
	text1, _, err := Emit(res1.Declarations, Options{})
	require.NoError(t, err)

	res2, err := Extract([]byte(text1), "sample.d.ts", Options{})
	require.NoError(t, err)
	text2, _, err := Emit(res2.Declarations, Options{})
	require.NoError(t, err)

	assert.Equal(t, text1, text2, "re-extracting and re-emitting already-canonical output must be a no-op")
}

func TestExtractNeverLeaksFunctionBodies(t *testing.T) {
	src := []byte(`
export function withSecretBody(): void {
  const password = "hunter2";
  doSomethingSensitive(password);
}
`)
	res, err := Extract(src, "sample.ts", Options{})
	require.NoError(t, err)
	text, _, err := Emit(res.Declarations, Options{})
	require.NoError(t, err)

	assert.NotContains(t, text, "hunter2")
	assert.NotContains(t, text, "doSomethingSensitive")
	assert.Contains(t, text, "export declare function withSecretBody(): void;")
}

func TestExtractEmitClosureIsNonTransitive(t *testing.T) {
	src := []byte(`
export function reveal(): Internal {
  return { secret: "x" };
}

interface Internal {
  nested: Hidden;
}

interface Hidden {
  deep: string;
}
`)

	res, err := Extract(src, "sample.ts", Options{})
	require.NoError(t, err)
	text, warnings, err := Emit(res.Declarations, Options{})
	require.NoError(t, err)
	assert.Empty(t, warnings)

	// Internal is referenced directly from reveal's return type, so it is
	// pulled in by the closure's single pass.
	assert.Contains(t, text, "interface Internal")
	// Hidden is only referenced from Internal, a non-surfaced declaration —
	// the closure does not chase references transitively, so Hidden must not
	// appear.
	assert.NotContains(t, text, "interface Hidden")
}

func TestExtractEmitErasesPrivateFieldsAndStaticBlocks(t *testing.T) {
	src := []byte(`export class K { #secret = 1; static { K.init(); } pub = 2; }`)

	res, err := Extract(src, "sample.ts", Options{})
	require.NoError(t, err)
	assert.Empty(t, res.Warnings)

	text, warnings, err := Emit(res.Declarations, Options{})
	require.NoError(t, err)
	assert.Empty(t, warnings)

	assert.Contains(t, text, "pub: any;")
	assert.NotContains(t, text, "secret")
	assert.NotContains(t, text, "static")
	assert.NotContains(t, text, "init")
}

func TestExtractAcceptsEmptySource(t *testing.T) {
	// An empty source is a degenerate but syntactically valid (empty)
	// program for tree-sitter, so extraction returns no error.
	_, err := Extract([]byte(""), "empty.ts", Options{})
	assert.NoError(t, err)
}

func TestEmitSkipsInvalidDeclarationAsWarningNotError(t *testing.T) {
	src := []byte(`export function onlyGood(): void {}`)
	res, err := Extract(src, "sample.ts", Options{})
	require.NoError(t, err)

	// A function Declaration with no Name cannot be emitted.
	decls := append(res.Declarations, decl.Declaration{Kind: decl.KindFunction})
	text, warnings, err := Emit(decls, Options{})
	require.NoError(t, err)
	assert.Len(t, warnings, 1)
	assert.True(t, strings.Contains(text, "onlyGood"))
}
