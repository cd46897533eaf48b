// Package pagestore persists generated landing pages and returns a preview URL.
package pagestore

import (
	"context"
	"strings"
	"unicode"
)

// Prefix is the folder generated pages live under in every store.
const Prefix = "generated"

const contentType = "text/html; charset=utf-8"

// Store saves a page under name and returns where it can be previewed.
type Store interface {
	Put(ctx context.Context, name, html string) (string, error)
}

// SafeName derives a file stem from a business name: letters, digits, space,
// '-' and '_' are kept, spaces become underscores and the result is
// lower-cased. An empty result becomes "site".
func SafeName(businessName string) string {
	var b strings.Builder
	for _, r := range businessName {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	safe := strings.TrimSpace(b.String())
	safe = strings.ToLower(strings.ReplaceAll(safe, " ", "_"))
	if safe == "" {
		return "site"
	}
	return safe
}

// FileName returns the page file name for a business.
func FileName(businessName string) string {
	return SafeName(businessName) + ".html"
}
