package match

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Veraticus/getitem/internal/common"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/sahilm/fuzzy"
)

// Matcher names accepted by NewMatcher.
const (
	MatcherRatio       = "ratio"
	MatcherSubsequence = "subsequence"
)

// Matcher ranks keys by similarity to a query.
type Matcher interface {
	// Rank returns at most limit keys, best first. Equal scores keep the
	// order of keys.
	Rank(query string, keys []string, limit int) []string
	Name() string
}

// NewMatcher returns the matcher registered under name.
func NewMatcher(name string) (Matcher, error) {
	switch strings.ToLower(name) {
	case MatcherRatio, "":
		return RatioMatcher{}, nil
	case MatcherSubsequence:
		return SubsequenceMatcher{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown matcher %q (want %s or %s)",
			common.ErrInvalidConfig, name, MatcherRatio, MatcherSubsequence)
	}
}

// RatioMatcher scores keys with the longest-matching-blocks ratio 2*M/T,
// where M is the number of matched characters and T the combined length.
// There is no cutoff: every key gets a score.
type RatioMatcher struct{}

// Name implements Matcher.
func (RatioMatcher) Name() string { return MatcherRatio }

// Rank implements Matcher.
func (RatioMatcher) Rank(query string, keys []string, limit int) []string {
	if limit <= 0 || len(keys) == 0 {
		return nil
	}

	type scored struct {
		key   string
		score float64
	}

	sm := difflib.NewMatcher(nil, splitChars(query))
	results := make([]scored, 0, len(keys))
	for _, key := range keys {
		sm.SetSeq1(splitChars(key))
		results = append(results, scored{key: key, score: sm.Ratio()})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].score > results[j].score
	})

	if len(results) > limit {
		results = results[:limit]
	}

	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.key
	}
	return out
}

func splitChars(s string) []string {
	return strings.Split(s, "")
}

// SubsequenceMatcher keeps only keys containing the query's characters in
// order, ranked by fuzzy.Find's score. An empty query matches nothing.
type SubsequenceMatcher struct{}

// Name implements Matcher.
func (SubsequenceMatcher) Name() string { return MatcherSubsequence }

// Rank implements Matcher.
func (SubsequenceMatcher) Rank(query string, keys []string, limit int) []string {
	if limit <= 0 || query == "" {
		return nil
	}

	matches := fuzzy.Find(query, keys)
	if len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Str
	}
	return out
}
