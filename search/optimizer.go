package search

import (
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Optimizer rewrites queries whose shape reliably trips feed throttling
// and tracks query fingerprints that have been banned after repeated
// failures.
//
// Safe for concurrent use.
type Optimizer struct {
	mu     sync.Mutex
	banned map[uint64]struct{}
}

// NewOptimizer returns an Optimizer with an empty ban list.
func NewOptimizer() *Optimizer {
	return &Optimizer{banned: make(map[uint64]struct{})}
}

func fingerprint(query, lang string) uint64 {
	return xxhash.Sum64String(query + "_" + lang)
}

// Optimize returns the query to actually send, or ok=false when the
// query's fingerprint is banned. Queries with more than six OR clauses
// are cut down to the first four; queries overloaded with parentheses or
// quotes are stripped to their first three plain OR fragments. Anything
// else passes through unchanged.
func (o *Optimizer) Optimize(query, lang string) (string, bool) {
	if o.IsBanned(query, lang) {
		return "", false
	}

	if strings.Count(query, "OR") > 6 {
		parts := strings.Split(query, " OR ")
		if len(parts) > 6 {
			return strings.Join(parts[:4], " OR "), true
		}
	}

	for _, ch := range []string{"(", ")", `"`} {
		if strings.Count(query, ch) > 4 {
			stripped := strings.NewReplacer("(", "", ")", "", `"`, "").Replace(query)
			var parts []string
			for _, p := range strings.Split(stripped, "OR") {
				if p = strings.TrimSpace(p); p != "" {
					parts = append(parts, p)
				}
			}
			if len(parts) > 3 {
				parts = parts[:3]
			}
			if len(parts) > 0 {
				return strings.Join(parts, " OR "), true
			}
			break
		}
	}

	return query, true
}

// Ban blacklists the query's fingerprint until Reset.
func (o *Optimizer) Ban(query, lang string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.banned[fingerprint(query, lang)] = struct{}{}
}

// IsBanned reports whether the query's fingerprint has been banned.
func (o *Optimizer) IsBanned(query, lang string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, ok := o.banned[fingerprint(query, lang)]
	return ok
}

// BannedCount returns the number of banned fingerprints.
func (o *Optimizer) BannedCount() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.banned)
}

// Reset clears the ban list.
func (o *Optimizer) Reset() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.banned = make(map[uint64]struct{})
}
