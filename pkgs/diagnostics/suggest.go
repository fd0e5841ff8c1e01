package diagnostics

import (
	"fmt"
	"sort"

	"github.com/aledsdavies/trim/pkgs/lexer"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// maxTypoDistance returns how many edits a name of the given length may be
// away from a keyword and still be reported as a likely typo
func maxTypoDistance(n int) int {
	switch {
	case n < 3:
		return 0
	case n < 6:
		return 1
	default:
		return 2
	}
}

// ClosestKeyword returns the keyword nearest to name by edit distance, if
// one is close enough to be a plausible typo
func ClosestKeyword(name string) (string, bool) {
	limit := maxTypoDistance(len(name))
	if limit == 0 || lexer.IsKeyword(name) {
		return "", false
	}

	best, bestDist := "", limit+1
	for _, kw := range lexer.Keywords() {
		if d := fuzzy.LevenshteinDistance(name, kw); d < bestDist {
			best, bestDist = kw, d
		}
	}
	return best, best != ""
}

// SuggestKeywords adds a hint for every NAME token that looks like a
// misspelled keyword
func SuggestKeywords(bag *Bag, tokens []lexer.Token) {
	for _, tok := range tokens {
		if tok.Type != lexer.NAME {
			continue
		}
		kw, ok := ClosestKeyword(tok.Text)
		if !ok {
			continue
		}
		bag.Add(NewHint(fmt.Sprintf("'%s' is not a keyword", tok.Text)).
			At(tok.Position, "did you mean '"+kw+"'?").
			WithNote("names that differ from a keyword by a typo are lexed as NAME"))
	}
}

// FindKeywords returns the keywords matching query as a case-insensitive
// fuzzy subsequence, best matches first. An empty query returns every
// keyword in sorted order.
func FindKeywords(query string) []string {
	keywords := lexer.Keywords()
	if query == "" {
		return keywords
	}

	ranks := fuzzy.RankFindNormalizedFold(query, keywords)
	sort.Stable(ranks)

	out := make([]string, 0, len(ranks))
	for _, r := range ranks {
		out = append(out, r.Target)
	}
	return out
}
