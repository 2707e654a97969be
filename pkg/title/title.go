// Package title provides the title comparisons used to match a spoken title
// against backend library entries.
package title

import (
	"strings"
	"unicode"

	"github.com/hbollon/go-edlib"
	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// SuggestThreshold is the minimum Jaro-Winkler similarity for Suggest to
// report a candidate.
const SuggestThreshold = 0.85

// Fold returns the Unicode case-folded, NFC-normalized form of s.
// Two titles are equal ignoring case iff their folded forms are equal.
func Fold(s string) string {
	return cases.Fold().String(norm.NFC.String(strings.TrimSpace(s)))
}

// Equal reports whether a and b are equal ignoring case.
func Equal(a, b string) bool {
	return Fold(a) == Fold(b)
}

// Contains reports whether needle occurs in haystack ignoring case.
// An empty needle never matches.
func Contains(haystack, needle string) bool {
	n := Fold(needle)
	if n == "" {
		return false
	}
	return strings.Contains(Fold(haystack), n)
}

// Clean normalizes a title for fuzzy comparison.
// Removes articles, punctuation and accents, and collapses whitespace.
func Clean(title string) string {
	s := strings.ToLower(title)
	s = removeAccents(s)

	s = strings.ReplaceAll(s, "&", " and ")
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "'", "")
	s = strings.ReplaceAll(s, ".", " ")

	// Subtitles ("Léon: The Professional") get their own article stripped
	parts := strings.Split(s, ":")
	for i, part := range parts {
		parts[i] = stripLeadingArticle(strings.TrimSpace(part))
	}
	s = strings.Join(parts, " ")

	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}

func stripLeadingArticle(s string) string {
	for _, art := range []string{"the ", "a ", "an "} {
		if strings.HasPrefix(s, art) {
			return strings.TrimPrefix(s, art)
		}
	}
	return s
}

// Suggest returns the candidate most similar to query when its similarity
// reaches SuggestThreshold. It is only used to phrase "did you mean" hints;
// resolution itself never ranks candidates.
func Suggest(query string, candidates []string) (string, bool) {
	q := Clean(query)
	if q == "" {
		return "", false
	}

	var best string
	var bestScore float32
	for _, c := range candidates {
		score := edlib.JaroWinklerSimilarity(q, Clean(c))
		if score > bestScore {
			best, bestScore = c, score
		}
	}

	if bestScore < SuggestThreshold {
		return "", false
	}
	return best, true
}
