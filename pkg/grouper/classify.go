package grouper

import "strings"

// Classify determines which group an import path belongs to.
//
// Prefixes are tested from the last group of the canonical order backwards,
// so a relative path is never mistaken for an alias and ModuleGroup is what
// remains when nothing else matches.
func (c Config) Classify(importPath string) ImportGroup {
	if strings.HasPrefix(importPath, currentDirPrefix) {
		return CurrentDirGroup
	}
	if strings.HasPrefix(importPath, parentDirPrefix) {
		return ParentDirGroup
	}
	if c.isAlias(importPath) {
		return AliasGroup
	}
	return ModuleGroup
}

func (c Config) isAlias(importPath string) bool {
	for _, alias := range c.aliases {
		if strings.HasPrefix(importPath, alias) {
			return true
		}
	}
	return false
}

// precedence returns the position of a group in the canonical order
func precedence(group ImportGroup) int {
	for i, g := range groupOrder {
		if g == group {
			return i
		}
	}
	return len(groupOrder)
}

// comparePaths orders two import paths of the same group. It returns a
// negative number when a sorts before b, zero when they are equivalent and a
// positive number otherwise.
func (c Config) comparePaths(a, b string, group ImportGroup) int {
	if c.sortByFullPath || group == ParentDirGroup || group == CurrentDirGroup {
		return strings.Compare(a, b)
	}
	// package or alias root first, then the imported member name
	if n := strings.Compare(rootSegment(a), rootSegment(b)); n != 0 {
		return n
	}
	if n := strings.Compare(lastSegment(a), lastSegment(b)); n != 0 {
		return n
	}
	return strings.Compare(a, b)
}

func rootSegment(importPath string) string {
	if i := strings.Index(importPath, "/"); i >= 0 {
		return importPath[:i]
	}
	return importPath
}

func lastSegment(importPath string) string {
	return importPath[strings.LastIndex(importPath, "/")+1:]
}
