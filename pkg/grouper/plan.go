package grouper

import (
	"sort"
	"strings"
)

// TextEdit replaces the bytes in [Start, End) with NewText.
type TextEdit struct {
	Start   int    `json:"start"`
	End     int    `json:"end"`
	NewText string `json:"newText"`
}

// Plan computes the single edit that rewrites every import of a file into
// canonical form. It returns nil when there are no imports.
func Plan(stmts []Statement, src []byte, cfg Config) *TextEdit {
	var (
		buckets  [len(groupOrder)][]*Import
		first    *Import
		last     *Import
		leftover []string
	)

	for _, stmt := range stmts {
		if !stmt.IsImport() {
			continue
		}
		imp := stmt.Import
		if first == nil {
			first = imp
		} else if extra := strings.TrimSpace(string(src[last.End:imp.Start])); extra != "" {
			// comments or statements between imports survive the rewrite
			leftover = append(leftover, extra)
		}
		last = imp

		group := cfg.Classify(imp.Path)
		buckets[precedence(group)] = append(buckets[precedence(group)], imp)
	}
	if first == nil {
		return nil
	}

	var blocks []string
	for i, bucket := range buckets {
		if len(bucket) == 0 {
			continue
		}
		cfg.sortImportsInGroup(bucket, groupOrder[i])

		lines := make([]string, len(bucket))
		for j, imp := range bucket {
			lines[j] = imp.Text
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	if len(leftover) > 0 {
		blocks = append(blocks, strings.Join(leftover, "\n"))
	}

	return &TextEdit{
		Start:   first.Start,
		End:     last.End,
		NewText: strings.Join(blocks, "\n\n"),
	}
}

// sortImportsInGroup sorts imports within a group
func (c Config) sortImportsInGroup(imports []*Import, group ImportGroup) {
	sort.SliceStable(imports, func(i, j int) bool {
		return c.comparePaths(imports[i].Path, imports[j].Path, group) < 0
	})
}

// Apply returns a copy of src with edit applied.
func Apply(src []byte, edit *TextEdit) []byte {
	if edit == nil {
		return append([]byte(nil), src...)
	}
	out := make([]byte, 0, len(src)-(edit.End-edit.Start)+len(edit.NewText))
	out = append(out, src[:edit.Start]...)
	out = append(out, edit.NewText...)
	out = append(out, src[edit.End:]...)
	return out
}
