package picker

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// List is the option selector behind list mode: a fixed ordered set of
// labels and at most one highlighted row.
type List struct {
	options     []string
	cursor      int
	highlighted bool
	query       string
}

func NewList(options []string) *List {
	return &List{options: append([]string(nil), options...)}
}

func (l *List) Len() int { return len(l.options) }

func (l *List) Label(i int) string {
	if i < 0 || i >= len(l.options) {
		return ""
	}
	return l.options[i]
}

func (l *List) Cursor() int { return l.cursor }

// Select highlights row i. Out-of-range rows are ignored.
func (l *List) Select(i int) {
	if i < 0 || i >= len(l.options) {
		return
	}
	l.cursor = i
	l.highlighted = true
}

// Highlighted returns the highlighted option. ok is false until a row has
// been selected, which never happens for an empty list.
func (l *List) Highlighted() (string, bool) {
	if !l.highlighted {
		return "", false
	}
	return l.options[l.cursor], true
}

func (l *List) CursorUp() {
	l.query = ""
	if l.cursor > 0 {
		l.Select(l.cursor - 1)
	}
}

func (l *List) CursorDown() {
	l.query = ""
	if l.cursor < len(l.options)-1 {
		l.Select(l.cursor + 1)
	}
}

func (l *List) Query() string { return l.query }

// Type extends the jump query with ch and highlights the closest option.
func (l *List) Type(ch string) {
	l.query += ch
	if idx := bestMatch(l.options, l.query); idx >= 0 {
		l.Select(idx)
	}
}

// Backspace drops the last query rune.
func (l *List) Backspace() {
	if l.query == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(l.query)
	l.query = l.query[:len(l.query)-size]
	if idx := bestMatch(l.options, l.query); idx >= 0 {
		l.Select(idx)
	}
}

// bestMatch prefers case-insensitive prefix matches, then substring matches,
// then anything; within a tier the smallest edit distance wins and ties go to
// the earlier option.
func bestMatch(options []string, query string) int {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || len(options) == 0 {
		return -1
	}
	best, bestTier, bestDist := -1, 3, 0
	for i, opt := range options {
		label := strings.ToLower(opt)
		tier := 2
		switch {
		case strings.HasPrefix(label, q):
			tier = 0
		case strings.Contains(label, q):
			tier = 1
		}
		dist := levenshtein.ComputeDistance(label, q)
		if tier < bestTier || (tier == bestTier && dist < bestDist) {
			best, bestTier, bestDist = i, tier, dist
		}
	}
	return best
}
