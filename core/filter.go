package core

import "slices"

// FilterRule is a level predicate configured on a logfile. A level passes
// the rule when it is not blocked and, if Allow is non-empty, it is
// explicitly allowed.
type FilterRule[L comparable] struct {
	Allow []L
	Block []L
}

// Admits reports whether level passes this rule.
func (r FilterRule[L]) Admits(level L) bool {
	if slices.Contains(r.Block, level) {
		return false
	}
	return len(r.Allow) == 0 || slices.Contains(r.Allow, level)
}

// AdmitsAll reports whether level passes every rule. No rules admit everything.
func AdmitsAll[L comparable](rules []FilterRule[L], level L) bool {
	for _, r := range rules {
		if !r.Admits(level) {
			return false
		}
	}
	return true
}
