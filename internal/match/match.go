// Package match scores item phrases against catalog titles with plain token
// overlap. No stemming, no positional weight, no length normalization.
package match

import (
	"regexp"
	"strings"

	"github.com/Ayushgupta208019/Voice-Assistent-Shopping/internal/domain"
)

var tokenPattern = regexp.MustCompile(`[a-z0-9]+`)

func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range tokenPattern.FindAllString(strings.ToLower(s), -1) {
		set[tok] = struct{}{}
	}
	return set
}

// Score returns the number of distinct lowercase alphanumeric tokens the two
// strings share. It depends only on the intersection of the two token sets,
// so Score(a, b) == Score(b, a).
func Score(a, b string) int {
	setA := tokenSet(a)
	setB := tokenSet(b)
	n := 0
	for tok := range setA {
		if _, ok := setB[tok]; ok {
			n++
		}
	}
	return n
}

// BestMatch scans products in catalog order and keeps the first product with
// the strictly highest score so far; ties keep the earlier product. The
// second return is false when no title shares a single token with the query,
// which callers must treat as "no match", not a low-confidence one.
func BestMatch(products []domain.Product, query string) (domain.Product, bool) {
	var best domain.Product
	bestScore := 0
	for _, p := range products {
		if s := Score(p.Title, query); s > bestScore {
			best, bestScore = p, s
		}
	}
	return best, bestScore > 0
}
