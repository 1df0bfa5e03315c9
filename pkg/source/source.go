// Package source extracts the top-level statements of JavaScript and
// TypeScript files using tree-sitter.
package source

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/siyuan-infoblox/ts-imports-group/pkg/grouper"
)

// ErrUnsupportedLanguage is returned for files whose extension has no grammar.
var ErrUnsupportedLanguage = errors.New("unsupported language")

const (
	nodeImport   = "import_statement"
	nodeComment  = "comment"
	nodeHashBang = "hash_bang_line"
	fieldSource  = "source"
)

// languageFor returns the grammar for a file name based on its extension
func languageFor(name string) *sitter.Language {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".ts", ".mts", ".cts":
		return typescript.GetLanguage()
	case ".tsx":
		return tsx.GetLanguage()
	case ".js", ".jsx", ".mjs", ".cjs":
		return javascript.GetLanguage()
	}
	return nil
}

// IsSupported reports whether files with this name can be parsed.
func IsSupported(name string) bool {
	return languageFor(name) != nil
}

// Parse parses src and returns its top-level statements.
func Parse(ctx context.Context, name string, src []byte) (*grouper.File, error) {
	lang := languageFor(name)
	if lang == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedLanguage, filepath.Ext(name))
	}

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(lang)

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	return &grouper.File{
		Name:       name,
		Src:        src,
		Statements: extractStatements(tree.RootNode(), src),
		Lines:      grouper.NewLineIndex(src),
	}, nil
}

// extractStatements collects the named children of the program node
func extractStatements(root *sitter.Node, src []byte) []grouper.Statement {
	var stmts []grouper.Statement
	for i := 0; i < int(root.NamedChildCount()); i++ {
		node := root.NamedChild(i)
		switch node.Type() {
		case nodeComment, nodeHashBang:
			continue
		}

		span := grouper.Span{Start: int(node.StartByte()), End: int(node.EndByte())}
		stmt := grouper.Statement{Span: span}
		if imp := extractImport(node, src); imp != nil {
			imp.Span = span
			stmt.Import = imp
		}
		stmts = append(stmts, stmt)
	}
	return stmts
}

// extractImport returns the import declared by node, or nil. `import x = require("y")`
// keeps its string inside the require clause and is not reported as an import.
func extractImport(node *sitter.Node, src []byte) *grouper.Import {
	if node.Type() != nodeImport {
		return nil
	}
	source := node.ChildByFieldName(fieldSource)
	if source == nil {
		return nil
	}
	return &grouper.Import{
		Path: unquote(source.Content(src)),
		Text: node.Content(src),
	}
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '\'' || s[0] == '"') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}
