package grouper

import "strings"

// ImportGroup represents the origin of an import
type ImportGroup int

const (
	ModuleGroup     ImportGroup = iota // bare package names, resolved from node_modules
	AliasGroup                         // paths starting with a configured alias prefix
	ParentDirGroup                     // "../"
	CurrentDirGroup                    // "./"
)

const (
	parentDirPrefix  = "../"
	currentDirPrefix = "./"
)

// groupOrder is the canonical precedence: earlier groups must appear earlier in the file
var groupOrder = [...]ImportGroup{ModuleGroup, AliasGroup, ParentDirGroup, CurrentDirGroup}

func (g ImportGroup) String() string {
	switch g {
	case ModuleGroup:
		return "module"
	case AliasGroup:
		return "alias"
	case ParentDirGroup:
		return "parentDirectory"
	case CurrentDirGroup:
		return "currentDirectory"
	}
	return "unknown"
}

// Span is a half-open byte range [Start, End) in a source file.
type Span struct {
	Start int
	End   int
}

// Import represents a single import declaration
type Import struct {
	Path string // module path without quotes
	Text string // full statement text, used when rewriting
	Span
}

// Statement is a top-level statement of a file. Import is nil for anything
// that is not an import declaration.
type Statement struct {
	Span
	Import *Import
}

// IsImport reports whether the statement is an import declaration.
func (s Statement) IsImport() bool {
	return s.Import != nil
}

// File is the view of a source file the analyzer works on.
type File struct {
	Name       string
	Src        []byte
	Statements []Statement
	Lines      LineIndex
}

// Imports returns the import declarations of the file in source order.
func (f *File) Imports() []*Import {
	var imports []*Import
	for _, stmt := range f.Statements {
		if stmt.IsImport() {
			imports = append(imports, stmt.Import)
		}
	}
	return imports
}

// Config holds the options of the rule. It is treated as immutable once built.
type Config struct {
	aliases        []string
	sortByFullPath bool
}

// NewConfig builds a Config. The alias list is copied and empty prefixes are dropped.
func NewConfig(aliases []string, sortByFullPath bool) Config {
	cfg := Config{sortByFullPath: sortByFullPath}
	for _, alias := range aliases {
		if alias = strings.TrimSpace(alias); alias != "" {
			cfg.aliases = append(cfg.aliases, alias)
		}
	}
	return cfg
}

// Aliases returns a copy of the configured alias prefixes.
func (c Config) Aliases() []string {
	return append([]string(nil), c.aliases...)
}

// SortByFullPath reports whether imports are compared by their full path only.
func (c Config) SortByFullPath() bool {
	return c.sortByFullPath
}
