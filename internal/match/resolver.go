package match

import (
	"github.com/Veraticus/getitem/internal/common"
	"github.com/Veraticus/getitem/internal/model"
)

// DefaultLimit caps the number of candidates per query.
const DefaultLimit = 20

// Resolution is the outcome of resolving one query. Prefix is the raw
// prefix walk, one entry per matching record; Candidates holds distinct keys.
type Resolution struct {
	Query       string
	Prefix      []string
	Approximate []string
	Candidates  []string
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLimit sets the maximum number of candidates. Non-positive values keep
// the default.
func WithLimit(limit int) Option {
	return func(r *Resolver) {
		if limit > 0 {
			r.limit = limit
		}
	}
}

// WithMatcher sets the approximate matcher.
func WithMatcher(m Matcher) Option {
	return func(r *Resolver) {
		if m != nil {
			r.matcher = m
		}
	}
}

// Resolver turns queries into candidate lists for a fixed catalog.
type Resolver struct {
	matcher Matcher
	index   *PrefixIndex
	keys    []string
	limit   int
}

// NewResolver prepares a resolver over the catalog's keys.
func NewResolver(catalog *model.Catalog, opts ...Option) *Resolver {
	keys := catalog.Keys()

	r := &Resolver{
		matcher: RatioMatcher{},
		index:   NewPrefixIndex(keys),
		keys:    distinct(keys),
		limit:   DefaultLimit,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Limit returns the candidate cap.
func (r *Resolver) Limit() int {
	return r.limit
}

// DistinctKeys returns how many different keys the catalog holds.
func (r *Resolver) DistinctKeys() int {
	return r.index.Len()
}

// Matcher returns the approximate matcher in use.
func (r *Resolver) Matcher() Matcher {
	return r.matcher
}

// Resolve returns the candidates for query. It has no side effects.
func (r *Resolver) Resolve(query string) Resolution {
	normalized := model.NormalizeKey(query)

	prefix := r.index.Match(normalized)
	approximate := r.matcher.Rank(normalized, r.keys, r.limit)
	candidates := Merge(prefix, approximate, r.limit)

	common.LogDebug("Resolved query", common.Fields{
		"query":       normalized,
		"matcher":     r.matcher.Name(),
		"prefix":      len(prefix),
		"approximate": len(approximate),
		"candidates":  len(candidates),
	})

	return Resolution{
		Query:       normalized,
		Prefix:      prefix,
		Approximate: approximate,
		Candidates:  candidates,
	}
}

// Merge places prefix first and fills up to limit from approximate in one
// pass, skipping keys already taken.
func Merge(prefix, approximate []string, limit int) []string {
	if limit <= 0 {
		return []string{}
	}

	merged := make([]string, 0, limit)
	seen := make(map[string]struct{}, limit)

	add := func(key string) {
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		merged = append(merged, key)
	}

	for _, key := range prefix {
		if len(merged) == limit {
			return merged
		}
		add(key)
	}
	for _, key := range approximate {
		if len(merged) == limit {
			break
		}
		add(key)
	}
	return merged
}

func distinct(keys []string) []string {
	seen := make(map[string]struct{}, len(keys))
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
