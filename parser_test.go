package forma

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseSource(t *testing.T, src string, functions FuncRegistry, includeDir IncludeDir, vfs Vfs) (Node, []Error) {
	t.Helper()
	tokens, errs := Scan("f.txt", src)
	require.Empty(t, errs)
	if functions == nil {
		functions = DefaultFunctions()
	}
	if includeDir == nil {
		includeDir = NewLocalIncludeDir("")
	}
	if vfs == nil {
		vfs = &stubVfs{}
	}
	return Parse(tokens, functions, includeDir, ".txt", vfs)
}

type stubVfs struct {
	files map[string]string
}

func (v *stubVfs) ReadAllText(path string) (string, error) {
	if v.files == nil {
		return "", assertNotFoundErr(path)
	}
	content, ok := v.files[path]
	if !ok {
		return "", assertNotFoundErr(path)
	}
	return content, nil
}

func (v *stubVfs) Exists(path string) bool {
	if v.files == nil {
		return false
	}
	_, ok := v.files[path]
	return ok
}

func (v *stubVfs) GetExtension(path string) string { return ".txt" }

type notFoundError struct{ path string }

func (e notFoundError) Error() string { return "not found: " + e.path }

func assertNotFoundErr(path string) error { return notFoundError{path: path} }

func TestParseGroupOfTextAndAttribute(t *testing.T) {
	node, errs := parseSource(t, "hi {{ name }}!", nil, nil, nil)
	require.Empty(t, errs)
	group, ok := node.(GroupNode)
	require.True(t, ok)
	require.Len(t, group.Children, 3)
	assert.Equal(t, TextNode{Value: "hi ", Location: group.Children[0].Loc()}, group.Children[0])
	attr, ok := group.Children[1].(AttributeNode)
	require.True(t, ok)
	assert.Equal(t, "name", attr.Name)
	assert.Equal(t, TextNode{Value: "!", Location: group.Children[2].Loc()}, group.Children[2])
}

func TestParseQuotedAttributeName(t *testing.T) {
	node, errs := parseSource(t, `{{ "artist name" }}`, nil, nil, nil)
	require.Empty(t, errs)
	group := node.(GroupNode)
	require.Len(t, group.Children, 1)
	attr := group.Children[0].(AttributeNode)
	assert.Equal(t, "artist name", attr.Name)
}

func TestParsePipeline(t *testing.T) {
	node, errs := parseSource(t, "{{track | zfill(3)}}", nil, nil, nil)
	require.Empty(t, errs)
	group := node.(GroupNode)
	require.Len(t, group.Children, 1)
	call, ok := group.Children[0].(FunctionCallNode)
	require.True(t, ok)
	assert.Equal(t, "zfill", call.Name)
	_, ok = call.Arg.(AttributeNode)
	assert.True(t, ok)
	assert.Equal(t, "007", call.Func("7"))
}

func TestParseIterateAndIf(t *testing.T) {
	node, errs := parseSource(t, "{{#songs}}[{{title}}]{{/songs}}", nil, nil, nil)
	require.Empty(t, errs)
	group := node.(GroupNode)
	require.Len(t, group.Children, 1)
	iter, ok := group.Children[0].(IterateNode)
	require.True(t, ok)
	assert.Equal(t, "songs", iter.Name)

	node2, errs2 := parseSource(t, "{{if star}}x{{end}}", nil, nil, nil)
	require.Empty(t, errs2)
	group2 := node2.(GroupNode)
	ifNode, ok := group2.Children[0].(IfNode)
	require.True(t, ok)
	assert.Equal(t, "star", ifNode.Name)
}

func TestParseUnknownFunction(t *testing.T) {
	_, errs := parseSource(t, "{{x | nope}}", nil, nil, nil)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "Unknown function named nope")
}

func TestParseMissingEndProducesParsingFailedStub(t *testing.T) {
	node, errs := parseSource(t, "{{#songs}}no closer", nil, nil, nil)
	require.NotEmpty(t, errs)
	text, ok := node.(TextNode)
	require.True(t, ok)
	assert.Equal(t, "Parsing failed", text.Value)
}

func TestParseIncludeInlinesChildAST(t *testing.T) {
	vfs := &stubVfs{files: map[string]string{
		"inc/include.txt": "[{{title}}]",
	}}
	includeDir := NewLocalIncludeDir("inc")

	node, errs := parseSource(t, `{{include "include"}}`, nil, includeDir, vfs)
	require.Empty(t, errs)
	group := node.(GroupNode)
	require.Len(t, group.Children, 1)
	inner := group.Children[0].(GroupNode)
	require.Len(t, inner.Children, 3)
	assert.Equal(t, "[", inner.Children[0].(TextNode).Value)
	assert.Equal(t, "title", inner.Children[1].(AttributeNode).Name)
	assert.Equal(t, "]", inner.Children[2].(TextNode).Value)
}

func TestParseIncludeTriesDefaultExtension(t *testing.T) {
	vfs := &stubVfs{files: map[string]string{
		"inc/include.txt": "body",
	}}
	includeDir := NewLocalIncludeDir("inc")
	node, errs := parseSource(t, `{{include "include"}}`, nil, includeDir, vfs)
	require.Empty(t, errs)
	group := node.(GroupNode)
	inner := group.Children[0].(GroupNode)
	assert.Equal(t, "body", inner.Children[0].(TextNode).Value)
}

func TestParseIncludeMissingFileReportsBothAttempts(t *testing.T) {
	vfs := &stubVfs{}
	includeDir := NewLocalIncludeDir("inc")
	_, errs := parseSource(t, `{{include "missing"}}`, nil, includeDir, vfs)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "Unable to open file: tried")
	assert.Contains(t, errs[0].Message, "inc/missing")
	assert.Contains(t, errs[0].Message, "inc/missing.txt")
}

func TestParseIncludeCycleIsDetected(t *testing.T) {
	vfs := &stubVfs{files: map[string]string{
		"inc/a.txt": `{{include "a"}}`,
	}}
	includeDir := NewLocalIncludeDir("inc")
	_, errs := parseSource(t, `{{include "a"}}`, nil, includeDir, vfs)
	require.NotEmpty(t, errs)
	found := false
	for _, e := range errs {
		if contains(e.Message, "Include cycle detected") {
			found = true
		}
	}
	assert.True(t, found)
}

func contains(s, substr string) bool {
	return len(s) >= len(substr) && (s == substr || (len(substr) > 0 && stringContains(s, substr)))
}

func stringContains(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
