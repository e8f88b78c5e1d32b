package slug

// Category and subcategory codes on ledger entries are slugs. The HTTP layer
// normalizes operator input through Slugify and rejects anything IsSlug
// refuses, so classification only ever compares canonical codes.

import (
    "regexp"
    "strings"
)

const maxLen = 40

var reSlug = regexp.MustCompile(`^[a-z0-9_]{2,40}$`)

// IsSlug reports whether s is a canonical category code.
func IsSlug(s string) bool {
    return reSlug.MatchString(s)
}

// Slugify lowercases s, replaces runs of non [a-z0-9_] with a single '_',
// trims the result to 40 runes and strips edge underscores.
func Slugify(s string) string {
    if s == "" {
        return s
    }
    out := make([]rune, 0, len(s))
    prevUnderscore := false
    for _, r := range strings.ToLower(s) {
        switch {
        case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
            out = append(out, r)
            prevUnderscore = false
        default:
            if !prevUnderscore {
                out = append(out, '_')
                prevUnderscore = true
            }
        }
        if len(out) >= maxLen {
            break
        }
    }
    return strings.Trim(string(out), "_")
}
