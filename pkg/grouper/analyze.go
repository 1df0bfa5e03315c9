package grouper

// Kind identifies the category of a violation
type Kind int

const (
	OutOfOrder   Kind = iota // blank-line separated blocks not in canonical order
	NotSeparated             // different groups in one block
	NotGrouped               // one group split by a blank line
	NotSorted                // same block, not alphabetical
)

// Violation messages
const (
	MsgOutOfOrder   = "Imports must be in the following order: node_modules, aliases, parentDirectory, currentDirectory"
	MsgNotSeparated = "Imports of different groups must be separated by newlines"
	MsgNotGrouped   = "Imports of the same type must be grouped together"
	MsgNotSorted    = "Must be sorted alphabetically"
)

func (k Kind) String() string {
	switch k {
	case OutOfOrder:
		return "out-of-order"
	case NotSeparated:
		return "not-separated"
	case NotGrouped:
		return "not-grouped"
	case NotSorted:
		return "not-sorted"
	}
	return "unknown"
}

// Message returns the diagnostic text reported for the kind.
func (k Kind) Message() string {
	switch k {
	case OutOfOrder:
		return MsgOutOfOrder
	case NotSeparated:
		return MsgNotSeparated
	case NotGrouped:
		return MsgNotGrouped
	case NotSorted:
		return MsgNotSorted
	}
	return ""
}

// Violation is a problem found between two consecutive imports, anchored at the second one.
type Violation struct {
	Span
	Kind Kind
	Fix  *TextEdit // shared by every violation of a file
}

// Message returns the diagnostic text of the violation.
func (v Violation) Message() string {
	return v.Kind.Message()
}

// Analyze checks every pair of consecutive statements starting with an import.
func Analyze(stmts []Statement, lines LineIndex, cfg Config) []Violation {
	var violations []Violation
	for i := 0; i+1 < len(stmts); i++ {
		current, next := stmts[i], stmts[i+1]
		// a non-import neighbor ends the block
		if !current.IsImport() || !next.IsImport() {
			continue
		}
		if v, ok := checkPair(current, next, lines, cfg); ok {
			violations = append(violations, v)
		}
	}
	return violations
}

func checkPair(current, next Statement, lines LineIndex, cfg Config) (Violation, bool) {
	gap := lines.Line(next.Start) - lines.Line(current.End)
	group := cfg.Classify(current.Import.Path)
	nextGroup := cfg.Classify(next.Import.Path)

	switch {
	case gap == 1:
		if nextGroup != group {
			return Violation{Span: next.Span, Kind: NotSeparated}, true
		}
		if cfg.comparePaths(current.Import.Path, next.Import.Path, group) > 0 {
			return Violation{Span: next.Span, Kind: NotSorted}, true
		}
	case gap > 1:
		if nextGroup == group {
			return Violation{Span: next.Span, Kind: NotGrouped}, true
		}
		if precedence(nextGroup) < precedence(group) {
			return Violation{Span: next.Span, Kind: OutOfOrder}, true
		}
	}
	return Violation{}, false
}

// Check analyzes a file. When withFix is set the rewrite is planned once and
// attached to every violation.
func Check(file *File, cfg Config, withFix bool) []Violation {
	violations := Analyze(file.Statements, file.Lines, cfg)
	if len(violations) == 0 || !withFix {
		return violations
	}
	fix := Plan(file.Statements, file.Src, cfg)
	for i := range violations {
		violations[i].Fix = fix
	}
	return violations
}
