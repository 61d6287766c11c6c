// Package fuzzy finds the closest registered key for a mistyped one.
package fuzzy

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agext/levenshtein"
)

// Matcher ranks candidates by edit distance to an input.
type Matcher struct {
	maxDistance int
	minLength   int
	params      *levenshtein.Params
}

// NewMatcher creates a matcher that ignores candidates further than
// maxDistance edits away.
func NewMatcher(maxDistance int) *Matcher {
	return &Matcher{
		maxDistance: maxDistance,
		minLength:   2,
		params:      levenshtein.NewParams().MaxCost(maxDistance),
	}
}

// Match is one ranked candidate.
type Match struct {
	Value    string
	Distance int
}

// FindBest returns the closest candidate, or "" when none is close enough.
func (m *Matcher) FindBest(input string, candidates []string) string {
	matches := m.FindMatches(input, candidates)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Value
}

// FindMatches returns every candidate within range, closest first. Ties
// keep candidate order. Exact matches and candidates shorter than the
// minimum length are skipped.
func (m *Matcher) FindMatches(input string, candidates []string) []Match {
	if utf8.RuneCountInString(input) < m.minLength {
		return nil
	}
	input = strings.ToLower(input)

	var matches []Match
	for _, candidate := range candidates {
		lower := strings.ToLower(candidate)
		if lower == input || utf8.RuneCountInString(lower) < m.minLength {
			continue
		}
		if d := m.distance(input, lower); d <= m.maxDistance && similar(input, lower, d) {
			matches = append(matches, Match{Value: candidate, Distance: d})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Distance != matches[j].Distance {
			return matches[i].Distance < matches[j].Distance
		}
		return sharedPrefix(input, matches[i].Value) > sharedPrefix(input, matches[j].Value)
	})
	return matches
}

// similar keeps matches whose edit score 1-d/maxLen is at least one half,
// so short inputs only match candidates that differ by a single edit.
func similar(a, b string, d int) bool {
	maxLen := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	return 2*d <= maxLen
}

// distance is the Levenshtein distance. Anything past maxDistance is
// reported as maxDistance+1.
func (m *Matcher) distance(a, b string) int {
	if abs(utf8.RuneCountInString(a)-utf8.RuneCountInString(b)) > m.maxDistance {
		return m.maxDistance + 1
	}
	d := levenshtein.Distance(a, b, m.params)
	if d > m.maxDistance {
		return m.maxDistance + 1
	}
	return d
}

func sharedPrefix(a, b string) int {
	b = strings.ToLower(b)
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

// Suggest is a shortcut for NewMatcher(maxDistance).FindBest.
func Suggest(input string, candidates []string, maxDistance int) string {
	return NewMatcher(maxDistance).FindBest(input, candidates)
}
